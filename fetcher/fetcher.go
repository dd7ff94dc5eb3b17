// Package fetcher retrieves raw feed documents over HTTP. Every fetch is
// bounded by a hard timeout and failures are returned to the caller so one
// dead feed never takes down a build.
package fetcher

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Fetcher is an HTTP client for feed documents with a politeness delay
// between requests.
type Fetcher struct {
	client    *http.Client
	userAgent string
	delay     time.Duration
}

func New(timeout, delay time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		delay:     delay,
	}
}

// Fetch GETs the given URL and returns the decoded text of the response.
// The body is treated as UTF-8 with invalid bytes replaced, a leading BOM is
// dropped, and leading whitespace is trimmed so dialect detection sees the
// true start of the document. Any transport failure or non-2xx status is an
// error.
func (f *Fetcher) Fetch(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}

	raw = bytes.TrimPrefix(raw, utf8BOM)
	text := strings.ToValidUTF8(string(raw), "�")
	return strings.TrimLeftFunc(text, unicode.IsSpace), nil
}

// Throttle sleeps for the configured inter-request delay. Callers invoke it
// between feeds to avoid hammering remote servers.
func (f *Fetcher) Throttle() {
	time.Sleep(f.delay)
}
