package mimedetector

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// maxDrainBytes caps how much of an unexpected response body is read
// before the connection is released
const maxDrainBytes = 4 << 10

// ResolveRemote issues a HEAD request for rawURL and returns the
// Content-Type header of a 200 response verbatim. Any other status and any
// transport failure yield no result; with debug enabled the cause is logged.
func (d *Detector) ResolveRemote(ctx context.Context, rawURL string) (string, bool) {
	res := d.resolveRemote(ctx, rawURL)
	return res.MIMEType, res.Found
}

func (d *Detector) resolveRemote(ctx context.Context, rawURL string) Result {
	res := Result{Path: rawURL, Location: LocationRemote}
	lookupID := uuid.NewString()

	mimeType, found, err := d.headContentType(ctx, rawURL)
	if err != nil {
		res.Err = err
		d.diagnose(ctx, lookupID, rawURL, err)
		return res
	}
	if found {
		res.MIMEType = mimeType
		res.Source = SourceHeader
		res.Found = true
	}
	return res
}

func (d *Detector) headContentType(ctx context.Context, rawURL string) (string, bool, error) {
	if !isRemoteURL(rawURL) {
		return "", false, &LookupError{Op: "head", Path: rawURL, Err: ErrNotRemote}
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return "", false, &LookupError{Op: "head", Path: rawURL, Err: err}
	}
	for name, value := range d.headers {
		req.Header.Set(name, value)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", false, &LookupError{Op: "head", Path: rawURL, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode != http.StatusOK {
		return "", false, &LookupError{
			Op:         "head",
			Path:       rawURL,
			StatusCode: resp.StatusCode,
			Err:        ErrUnexpectedStatus,
		}
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		return "", false, nil
	}
	return mimeType, true, nil
}

func (d *Detector) diagnose(ctx context.Context, lookupID, rawURL string, err error) {
	if !d.debug {
		return
	}

	attrs := []slog.Attr{
		slog.String("lookup_id", lookupID),
		slog.String("url", rawURL),
	}
	if code := StatusCode(err); code != 0 {
		attrs = append(attrs, slog.Int("status", code))
		d.logger.LogAttrs(ctx, slog.LevelWarn, "url returned unexpected status code", attrs...)
		return
	}

	attrs = append(attrs, slog.String("error", err.Error()))
	d.logger.LogAttrs(ctx, slog.LevelWarn, "remote lookup failed", attrs...)
}
