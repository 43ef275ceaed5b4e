package mimedetector

import (
	"mime"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/go-enry/go-enry/v2"
	"github.com/go-enry/go-enry/v2/data"
)

// Common MIME types
const (
	MIMETypeTextPlain       = "text/plain"
	MIMETypeTextHTML        = "text/html"
	MIMETypeTextCSS         = "text/css"
	MIMETypeTextCSV         = "text/csv"
	MIMETypeTextMarkdown    = "text/markdown"
	MIMETypeTextJavaScript  = "text/javascript"
	MIMETypeApplicationJSON = "application/json"
	MIMETypeApplicationXML  = "application/xml"
	MIMETypeImageJPEG       = "image/jpeg"
	MIMETypeImagePNG        = "image/png"
	MIMETypeImageGIF        = "image/gif"
	MIMETypeImageSVG        = "image/svg+xml"
	MIMETypeImageWebP       = "image/webp"
	MIMETypeAudioMP3        = "audio/mpeg"
	MIMETypeAudioOGG        = "audio/ogg"
	MIMETypeVideoMP4        = "video/mp4"
	MIMETypeVideoWebM       = "video/webm"
	MIMETypeApplicationPDF  = "application/pdf"
	MIMETypeApplicationZip  = "application/zip"
	MIMETypeApplicationGzip = "application/gzip"
	MIMETypeApplicationTar  = "application/x-tar"
)

// Source names the table a local lookup was answered from
type Source string

const (
	SourceTable    Source = "table"
	SourceSystem   Source = "system"
	SourceLinguist Source = "linguist"
	SourceHeader   Source = "header"
)

// builtinTypes is the embedded extension to MIME type mapping
var builtinTypes = map[string]string{
	".txt":      MIMETypeTextPlain,
	".text":     MIMETypeTextPlain,
	".log":      MIMETypeTextPlain,
	".html":     MIMETypeTextHTML,
	".htm":      MIMETypeTextHTML,
	".css":      MIMETypeTextCSS,
	".csv":      MIMETypeTextCSV,
	".md":       MIMETypeTextMarkdown,
	".markdown": MIMETypeTextMarkdown,
	".rtf":      "application/rtf",
	".js":       MIMETypeTextJavaScript,
	".mjs":      MIMETypeTextJavaScript,
	".json":     MIMETypeApplicationJSON,
	".xml":      MIMETypeApplicationXML,
	".yaml":     "application/yaml",
	".yml":      "application/yaml",

	".jpg":  MIMETypeImageJPEG,
	".jpeg": MIMETypeImageJPEG,
	".png":  MIMETypeImagePNG,
	".gif":  MIMETypeImageGIF,
	".svg":  MIMETypeImageSVG,
	".webp": MIMETypeImageWebP,
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".bmp":  "image/bmp",
	".ico":  "image/vnd.microsoft.icon",
	".heic": "image/heic",
	".heif": "image/heif",

	".mp3":  MIMETypeAudioMP3,
	".ogg":  MIMETypeAudioOGG,
	".wav":  "audio/wav",
	".flac": "audio/flac",
	".aac":  "audio/aac",
	".m4a":  "audio/mp4",
	".mid":  "audio/midi",
	".midi": "audio/midi",

	".mp4":  MIMETypeVideoMP4,
	".webm": MIMETypeVideoWebM,
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".wmv":  "video/x-ms-wmv",
	".3gp":  "video/3gpp",

	".pdf":  MIMETypeApplicationPDF,
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".odt":  "application/vnd.oasis.opendocument.text",
	".ods":  "application/vnd.oasis.opendocument.spreadsheet",
	".epub": "application/epub+zip",

	".zip": MIMETypeApplicationZip,
	".gz":  MIMETypeApplicationGzip,
	".tgz": MIMETypeApplicationGzip,
	".tar": MIMETypeApplicationTar,
	".bz2": "application/x-bzip2",
	".xz":  "application/x-xz",
	".7z":  "application/x-7z-compressed",
	".rar": "application/vnd.rar",

	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".eot":   "application/vnd.ms-fontobject",

	".wasm": "application/wasm",
}

// Table is a read-only extension to MIME type lookup. The embedded entries
// are consulted first, then the platform table and the linguist table when
// they are enabled. A Table is never mutated after construction, so it is
// safe for concurrent use.
type Table struct {
	entries  map[string]string
	system   bool
	linguist bool
}

// DefaultTable returns a table backed by the embedded entries and the
// platform table.
func DefaultTable() *Table {
	return &Table{entries: builtinTypes, system: true}
}

// NewTable creates a table from the given entries only. Extensions are
// normalised to lower case with a leading dot.
func NewTable(entries map[string]string) *Table {
	t := &Table{entries: make(map[string]string, len(entries))}
	for ext, mimeType := range entries {
		t.entries[normalizeExt(ext)] = mimeType
	}
	return t
}

// With returns a copy of the table with the given entries added on top
func (t *Table) With(entries map[string]string) *Table {
	merged := make(map[string]string, len(t.entries)+len(entries))
	for ext, mimeType := range t.entries {
		merged[ext] = mimeType
	}
	for ext, mimeType := range entries {
		merged[normalizeExt(ext)] = mimeType
	}
	return &Table{entries: merged, system: t.system, linguist: t.linguist}
}

// WithSystem returns a copy of the table with the platform table enabled or
// disabled
func (t *Table) WithSystem(enabled bool) *Table {
	return &Table{entries: t.entries, system: enabled, linguist: t.linguist}
}

// WithLinguist returns a copy of the table with the linguist table enabled
// or disabled
func (t *Table) WithLinguist(enabled bool) *Table {
	return &Table{entries: t.entries, system: t.system, linguist: enabled}
}

// Len returns the number of embedded entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the MIME type registered for ext
func (t *Table) Lookup(ext string) (string, bool) {
	mimeType, _, ok := t.lookup(ext)
	return mimeType, ok
}

// LookupPath returns the MIME type for the extension of path
func (t *Table) LookupPath(path string) (string, bool) {
	return t.Lookup(filepath.Ext(path))
}

func (t *Table) lookup(ext string) (string, Source, bool) {
	if ext == "" || ext == "." {
		return "", "", false
	}
	ext = normalizeExt(ext)

	if mimeType, ok := t.entries[ext]; ok {
		return mimeType, SourceTable, true
	}

	if t.system {
		if mimeType := mime.TypeByExtension(ext); mimeType != "" {
			return mimeType, SourceSystem, true
		}
	}

	if t.linguist {
		if mimeType, ok := linguistType(ext); ok {
			return mimeType, SourceLinguist, true
		}
	}

	return "", "", false
}

// linguistType resolves an extension through the linguist language data.
// Extensions claimed by more than one language are skipped.
func linguistType(ext string) (string, bool) {
	language, safe := enry.GetLanguageByExtension("file" + ext)
	if language == "" || !safe {
		return "", false
	}
	mimeType, ok := data.LanguagesMime[language]
	if !ok || mimeType == "" {
		return "", false
	}
	return mimeType, true
}

// ExtensionsByType returns the embedded extensions registered for mimeType,
// sorted. Parameters on mimeType are ignored.
func (t *Table) ExtensionsByType(mimeType string) []string {
	want := baseType(mimeType)
	var exts []string
	for ext, candidate := range t.entries {
		if candidate == want {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// Fingerprint returns an xxhash digest of the embedded entries. Two tables
// with the same entries have the same fingerprint regardless of how they
// were built.
func (t *Table) Fingerprint() uint64 {
	exts := make([]string, 0, len(t.entries))
	for ext := range t.entries {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	h := xxhash.New()
	for _, ext := range exts {
		_, _ = h.WriteString(ext)
		_, _ = h.WriteString("=")
		_, _ = h.WriteString(t.entries[ext])
		_, _ = h.WriteString("\n")
	}
	return h.Sum64()
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// baseType strips parameters and surrounding space from a MIME string
func baseType(mimeType string) string {
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = mimeType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
