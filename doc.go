// Package mimedetector guesses the MIME type of local files and remote URLs
// behind a single entry point.
//
// A path is first classified by [Detector.CheckFileLocation]:
//
//   - a URL with both a scheme and a host is remote, whether or not it is
//     reachable;
//   - anything else that exists on the local filesystem is local;
//   - everything else is invalid and never resolved.
//
// Local paths are resolved from their extension through an immutable
// [Table]. Remote URLs are resolved with a HEAD request whose Content-Type
// header is returned verbatim, parameters included.
//
// # Basic Usage
//
//	d := mimedetector.New(
//	    mimedetector.WithHeader("User-Agent", "my-crawler/1.0"),
//	    mimedetector.WithTimeout(10*time.Second),
//	)
//
//	ctx := context.Background()
//
//	if mimeType, ok := d.GetMIME(ctx, "README.md"); ok {
//	    fmt.Println(mimeType) // text/markdown
//	}
//
//	if mimeType, ok := d.GetMIME(ctx, "https://example.com/file.pdf"); ok {
//	    fmt.Println(mimeType) // application/pdf
//	}
//
// # Failures
//
// Lookups never return errors. An unknown extension, a non-200 response or
// a transport failure all come back as "no result". Callers that need the
// cause use [Detector.Detect], whose [Result] carries it in Err, or enable
// diagnostics:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	d := mimedetector.New(mimedetector.WithLogger(logger), mimedetector.WithDebug(true))
//
// Remote lookups are bounded by the configured timeout (30 seconds by
// default) and by the caller's context.
//
// # Tables
//
// The default table holds the embedded entries and falls back to the
// platform table from the mime package. The linguist table, built from the
// go-enry language data, can be enabled as a last fallback for source code
// extensions:
//
//	table := mimedetector.DefaultTable().
//	    With(map[string]string{".ipynb": "application/x-ipynb+json"}).
//	    WithLinguist(true)
//	d := mimedetector.New(mimedetector.WithTable(table))
//
// # Configuration
//
// [NewFromEnv] and [Init] read a [Config] from BEAVER_MIMEDETECT_* variables:
//
//	BEAVER_MIMEDETECT_TIMEOUT=10s
//	BEAVER_MIMEDETECT_HEADERS=Accept=text/html, */*,X-Api-Key=secret
//	BEAVER_MIMEDETECT_DEBUG=true
//
// Use [WithPrefix] to read from a different prefix.
package mimedetector
