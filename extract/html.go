package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/deputados/models"
	"golang.org/x/net/html"
)

// noise is removed before text, tables and links are read.
const noise = "script, style, nav, header, footer"

// HTML extracts the title, text, tables and links from an HTML page.
func HTML(content string) models.ExtractedDocument {
	return safely(content, func() models.ExtractedDocument {
		d, err := goquery.NewDocumentFromReader(strings.NewReader(closeMarkup(content, false)))
		if err != nil {
			return Text(content)
		}
		return fromHTML(d)
	})
}

func fromHTML(d *goquery.Document) models.ExtractedDocument {
	doc := newDocument()

	if title := strings.TrimSpace(stripTags(d.Find("title").First().Text())); title != "" {
		doc.Metadata["title"] = title
	}

	d.Find(noise).Remove()

	var text []string
	for _, n := range d.Nodes {
		text = appendText(text, n)
	}
	doc.Text = Truncate(collapse(strings.Join(text, " ")), TextLimit)

	d.Find("table").Each(func(_ int, table *goquery.Selection) {
		if rows := tableRows(table); len(rows) > 0 {
			doc.Tables = append(doc.Tables, rows)
		}
	})

	d.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		doc.Links = append(doc.Links, models.Link{
			Text: strings.TrimSpace(a.Text()),
			URL:  href,
		})
	})

	return doc
}

// rawText elements hold unparsed markup as text.
var rawText = map[string]bool{"title": true, "textarea": true, "noscript": true}

func appendText(text []string, n *html.Node) []string {
	if n.Type == html.TextNode {
		if n.Parent != nil && rawText[n.Parent.Data] {
			return append(text, stripTags(n.Data))
		}
		return append(text, n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text = appendText(text, c)
	}
	return text
}

// tableRows returns the rows that belong to table itself, not to tables nested in its cells.
func tableRows(table *goquery.Selection) (rows [][]string) {
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if !tr.Closest("table").IsSelection(table) {
			return
		}
		var row []string
		tr.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, strings.TrimSpace(cell.Text()))
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})
	return rows
}
