package extract

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/a-h/deputados/models"
	"golang.org/x/net/html"
)

// PlainText removes all markup from content, collapses whitespace and caps the
// result at TextLimit.
func PlainText(content string) string {
	var parts []string
	z := html.NewTokenizer(strings.NewReader(closeMarkup(content, false)))
	z.AllowCDATA(true)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			parts = append(parts, string(z.Text()))
		}
	}
	return Truncate(collapse(strings.Join(parts, " ")), TextLimit)
}

// stripTags removes markup from s without adding separators.
func stripTags(s string) string {
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(closeMarkup(s, false)))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			sb.Write(z.Text())
		}
	}
	return sb.String()
}

// closeMarkup escapes any tag or comment left open at the end of content, so
// that its bytes are read as text instead of being dropped.
func closeMarkup(content string, xml bool) string {
	if i := openMarkup(content, xml); i >= 0 {
		return content[:i] + html.EscapeString(content[i:])
	}
	return content
}

// openMarkup returns the offset of markup that is still open when content
// ends, or -1.
func openMarkup(content string, xml bool) int {
	z := html.NewTokenizer(strings.NewReader(content))
	z.AllowCDATA(true)
	var offset int
	for {
		tt := z.Next()
		raw := z.Raw()
		switch tt {
		case html.ErrorToken:
			if len(raw) > 0 {
				return offset
			}
			return -1
		case html.TextToken:
		default:
			if !bytes.HasSuffix(raw, []byte(">")) {
				return offset
			}
			if xml {
				name, _ := z.TagName()
				resetRawText(z, tt, string(name))
			}
		}
		offset += len(raw)
	}
}

// resetRawText stops HTML raw text elements such as plaintext and xmp from
// swallowing the rest of an XML document. Scripts and styles stay raw.
func resetRawText(z *html.Tokenizer, tt html.TokenType, name string) {
	if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
		return
	}
	if tt == html.StartTagToken && (name == "script" || name == "style") {
		return
	}
	z.NextIsNotRawText()
}

var xmlMetadata = map[models.DocumentKind][]string{
	models.DocumentKindDocument: {"tipoDocumento", "valor"},
}

// XML extracts from an XML document with a streaming tokenizer. Tables are not
// extracted from XML.
func XML(content string, kind models.DocumentKind) models.ExtractedDocument {
	return safely(content, func() models.ExtractedDocument {
		doc, err := tokenizeXML(content, kind)
		if err != nil {
			return Text(content)
		}
		return doc
	})
}

func tokenizeXML(content string, kind models.DocumentKind) (doc models.ExtractedDocument, err error) {
	doc = newDocument()

	// Element names are lower-cased by the tokenizer.
	wanted := map[string]string{"title": "title"}
	for _, key := range xmlMetadata[kind] {
		wanted[strings.ToLower(key)] = key
	}
	open := map[string]*strings.Builder{}

	var text []string
	var skipping bool
	var link *models.Link
	var linkText strings.Builder

	z := html.NewTokenizer(strings.NewReader(closeMarkup(content, true)))
	z.AllowCDATA(true)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err = z.Err(); errors.Is(err, io.EOF) {
				err = nil
			}
			break
		}
		tok := z.Token()
		resetRawText(z, tt, tok.Data)
		switch tt {
		case html.StartTagToken:
			switch tok.Data {
			case "script", "style":
				skipping = true
			case "a":
				if href, ok := attr(tok, "href"); ok && link == nil {
					link = &models.Link{URL: href}
					linkText.Reset()
				}
			}
			if _, ok := wanted[tok.Data]; ok && open[tok.Data] == nil {
				open[tok.Data] = new(strings.Builder)
			}
		case html.EndTagToken:
			switch tok.Data {
			case "script", "style":
				skipping = false
			case "a":
				if link != nil {
					link.Text = strings.TrimSpace(linkText.String())
					doc.Links = append(doc.Links, *link)
					link = nil
				}
			}
			if sb, ok := open[tok.Data]; ok {
				key := wanted[tok.Data]
				value := strings.TrimSpace(stripTags(sb.String()))
				if key != "title" || value != "" {
					doc.Metadata[key] = value
				}
				delete(open, tok.Data)
				delete(wanted, tok.Data)
			}
		case html.TextToken:
			if skipping {
				continue
			}
			text = append(text, tok.Data)
			for _, sb := range open {
				sb.WriteString(tok.Data)
			}
			if link != nil {
				linkText.WriteString(tok.Data)
			}
		}
	}
	doc.Text = Truncate(collapse(strings.Join(text, " ")), TextLimit)
	return doc, err
}

func attr(tok html.Token, name string) (value string, ok bool) {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
