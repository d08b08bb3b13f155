package models

type DocumentKind string

const (
	DocumentKindDocument DocumentKind = "document"
	DocumentKindRegistry DocumentKind = "registro"
	DocumentKindFront    DocumentKind = "frente"
)

func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentKindDocument, DocumentKindRegistry, DocumentKindFront:
		return true
	}
	return false
}

type DocumentsFetchPostRequest struct {
	URL  string       `json:"url"`
	Kind DocumentKind `json:"type"`
}

type Link struct {
	Text string `json:"text" yaml:"text"`
	URL  string `json:"url" yaml:"url"`
}

// ExtractedDocument is the best-effort content pulled out of a fetched resource.
type ExtractedDocument struct {
	Text     string            `json:"text" yaml:"text"`
	Metadata map[string]string `json:"metadata" yaml:"metadata"`
	Tables   [][][]string      `json:"tables" yaml:"tables"`
	Links    []Link            `json:"links" yaml:"links"`
}

type DocumentsFetchPostResponse struct {
	Success       bool               `json:"success" yaml:"success"`
	ContentType   string             `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	Title         string             `json:"title,omitempty" yaml:"title,omitempty"`
	ParsedContent *ExtractedDocument `json:"parsedContent,omitempty" yaml:"parsedContent,omitempty"`
	RawContent    string             `json:"rawContent,omitempty" yaml:"rawContent,omitempty"`
	Error         string             `json:"error,omitempty" yaml:"error,omitempty"`
}

type VersionGetResponse struct {
	Version string `json:"version" yaml:"version"`
}
