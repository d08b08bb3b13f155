// Package extract pulls a title, body text, tables and links out of fetched markup.
//
// Extraction is best effort. Malformed input never produces an error, it produces
// less structure: when anything goes wrong the result falls back to the input's
// text content with all markup removed.
package extract

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/a-h/deputados/models"
)

// TextLimit is the maximum length, in characters, of extracted body text.
const TextLimit = 5000

type ContentKind string

const (
	ContentKindText ContentKind = "text"
	ContentKindHTML ContentKind = "html"
	ContentKindXML  ContentKind = "xml"
	ContentKindPDF  ContentKind = "pdf"
)

// Classify decides how to parse content from its declared content type and first bytes.
func Classify(contentType string, content []byte) ContentKind {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "pdf") || bytes.HasPrefix(content, []byte("%PDF-")):
		return ContentKindPDF
	case strings.Contains(ct, "xml") || bytes.HasPrefix(bytes.TrimSpace(TrimBOM(content)), []byte("<?xml")):
		return ContentKindXML
	case strings.Contains(ct, "html"):
		return ContentKindHTML
	}
	return ContentKindText
}

var bom = []byte("\xef\xbb\xbf")

// TrimBOM removes a leading UTF-8 byte order mark.
func TrimBOM(content []byte) []byte {
	return bytes.TrimPrefix(content, bom)
}

// DefaultTitle is used when a document has no title of its own.
func DefaultTitle(kind ContentKind) string {
	switch kind {
	case ContentKindXML:
		return "XML Document"
	case ContentKindHTML:
		return "HTML Document"
	case ContentKindPDF:
		return "PDF Document"
	}
	return "Text Document"
}

// Text treats content as plain text: any markup is removed, whitespace is collapsed
// and the result is capped at TextLimit.
func Text(content string) models.ExtractedDocument {
	doc := newDocument()
	doc.Text = PlainText(content)
	return doc
}

// Truncate returns at most n characters of s.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	var count int
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func newDocument() models.ExtractedDocument {
	return models.ExtractedDocument{
		Metadata: map[string]string{},
		Tables:   [][][]string{},
		Links:    []models.Link{},
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// safely runs f, returning the plain text fallback for content if f panics.
func safely(content string, f func() models.ExtractedDocument) (doc models.ExtractedDocument) {
	defer func() {
		if r := recover(); r != nil {
			doc = Text(content)
		}
	}()
	return f()
}
