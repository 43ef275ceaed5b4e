package mimedetector

import "strings"

// MediaGroup is a coarse categorization of MIME types
type MediaGroup string

const (
	GroupImage    MediaGroup = "image"
	GroupAudio    MediaGroup = "audio"
	GroupVideo    MediaGroup = "video"
	GroupText     MediaGroup = "text"
	GroupArchive  MediaGroup = "archive"
	GroupDocument MediaGroup = "document"
	GroupFont     MediaGroup = "font"
	GroupOther    MediaGroup = "other"
)

var archiveTypes = setOf(
	MIMETypeApplicationZip,
	MIMETypeApplicationGzip,
	MIMETypeApplicationTar,
	"application/x-gzip",
	"application/x-bzip2",
	"application/x-xz",
	"application/x-7z-compressed",
	"application/x-rar-compressed",
	"application/vnd.rar",
)

var documentTypes = setOf(
	MIMETypeApplicationPDF,
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"application/vnd.oasis.opendocument.text",
	"application/vnd.oasis.opendocument.spreadsheet",
	"application/epub+zip",
	"application/rtf",
)

func setOf(values ...string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// GroupOf returns the media group of a MIME string. Parameters such as
// charset are ignored.
func GroupOf(mimeType string) MediaGroup {
	base := baseType(mimeType)
	switch {
	case base == "":
		return GroupOther
	case strings.HasPrefix(base, "image/"):
		return GroupImage
	case strings.HasPrefix(base, "audio/"):
		return GroupAudio
	case strings.HasPrefix(base, "video/"):
		return GroupVideo
	case strings.HasPrefix(base, "font/"), base == "application/vnd.ms-fontobject":
		return GroupFont
	case archiveTypes[base]:
		return GroupArchive
	case documentTypes[base]:
		return GroupDocument
	case IsTextType(base):
		return GroupText
	default:
		return GroupOther
	}
}

// IsTextType returns true if the MIME type describes textual content
func IsTextType(mimeType string) bool {
	base := baseType(mimeType)
	return strings.HasPrefix(base, "text/") ||
		base == MIMETypeApplicationJSON ||
		base == MIMETypeApplicationXML ||
		base == "application/yaml" ||
		base == "application/javascript" ||
		base == "application/x-javascript"
}

// IsArchiveType returns true if the MIME type describes a compressed or
// archive format
func IsArchiveType(mimeType string) bool {
	return archiveTypes[baseType(mimeType)]
}
