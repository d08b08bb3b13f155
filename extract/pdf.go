package extract

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/a-h/deputados/models"
	"github.com/tmc/langchaingo/documentloaders"
)

// PDF extracts the text of each page. A PDF that can't be read yields an empty document.
func PDF(ctx context.Context, content []byte) models.ExtractedDocument {
	return safely("", func() models.ExtractedDocument {
		doc := newDocument()
		pdf := documentloaders.NewPDF(bytes.NewReader(content), int64(len(content)))
		pages, err := pdf.Load(ctx)
		if err != nil {
			return doc
		}
		var sb strings.Builder
		for _, page := range pages {
			sb.WriteString(page.PageContent)
			sb.WriteString("\n")
		}
		doc.Text = Truncate(collapse(sb.String()), TextLimit)
		doc.Metadata["pages"] = strconv.Itoa(len(pages))
		return doc
	})
}
