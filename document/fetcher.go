// Package document fetches external documents referenced by Chamber data and extracts
// their content.
package document

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/deputados/extract"
	"github.com/a-h/deputados/models"
)

const (
	// DefaultTimeout applies to the whole fetch, including reading the body.
	DefaultTimeout = 15 * time.Second

	// RawContentLimit caps the raw content echoed back to the caller.
	RawContentLimit = 10000

	UserAgent = "Mozilla/5.0 (compatible; VotacoesParlamentares/1.0)"
	Accept    = "text/html,application/xhtml+xml,application/xml,text/xml,*/*"
)

func NewFetcher(log *slog.Logger, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		log:     log,
		client:  &http.Client{},
		timeout: timeout,
	}
}

type Fetcher struct {
	log     *slog.Logger
	client  *http.Client
	timeout time.Duration
}

// Fetch downloads url and extracts its content. Failures are reported in the response,
// never as an error.
func (f *Fetcher) Fetch(ctx context.Context, url string, kind models.DocumentKind) (resp models.DocumentsFetchPostResponse) {
	f.log.Info("fetching document", slog.String("url", url), slog.String("kind", string(kind)))
	contentType, body, err := f.get(ctx, url)
	if err != nil {
		f.log.Warn("failed to fetch document", slog.String("url", url), slog.Any("error", err))
		return models.DocumentsFetchPostResponse{
			Success: false,
			Error:   err.Error(),
		}
	}

	body = extract.TrimBOM(body)
	ck := extract.Classify(contentType, body)
	content := string(body)
	var doc models.ExtractedDocument
	switch ck {
	case extract.ContentKindPDF:
		doc = extract.PDF(ctx, body)
		content = doc.Text
	case extract.ContentKindXML:
		doc = extract.XML(content, kind)
	case extract.ContentKindHTML:
		doc = extract.HTML(content)
	default:
		doc = extract.Text(content)
	}

	title := doc.Metadata["title"]
	if title == "" {
		title = extract.DefaultTitle(ck)
	}

	return models.DocumentsFetchPostResponse{
		Success:       true,
		ContentType:   contentType,
		Title:         title,
		ParsedContent: &doc,
		RawContent:    rawContent(content),
	}
}

func (f *Fetcher) get(ctx context.Context, url string) (contentType string, body []byte, err error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", Accept)

	res, err := f.client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", nil, fmt.Errorf("HTTP Error: %s", res.Status)
	}
	body, err = io.ReadAll(res.Body)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return res.Header.Get("Content-Type"), body, nil
}

func rawContent(s string) string {
	truncated := extract.Truncate(s, RawContentLimit)
	if len(truncated) < len(s) {
		return truncated + "..."
	}
	return s
}
