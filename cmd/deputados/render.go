package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/a-h/deputados/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Dracula color scheme.
var (
	Background  = lipgloss.Color("#282a36")
	CurrentLine = lipgloss.Color("#44475a")
	Comment     = lipgloss.Color("#6272a4")
	Cyan        = lipgloss.Color("#8be9fd")
	Pink        = lipgloss.Color("#ff79c6")
	Purple      = lipgloss.Color("#bd93f9")
	Red         = lipgloss.Color("#ff5555")
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(Purple).Bold(true)
	currentStyle = lipgloss.NewStyle().Background(CurrentLine).Foreground(Pink).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(Comment)
	errorStyle   = lipgloss.NewStyle().Foreground(Red).Bold(true)
	linkStyle    = lipgloss.NewStyle().Foreground(Cyan)
)

func renderRanking(resp models.RankingGetResponse) string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render("Expenses ranking"))
	sb.WriteString("\n\n")
	for _, e := range resp.Ranking {
		party := e.Party
		if party == "" {
			party = "-"
		}
		line := fmt.Sprintf("%3d  %-40s %-12s %18s", e.Position, e.Name, party, formatCurrency(e.TotalExpenses))
		if e.IsCurrent {
			line = currentStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	if resp.CurrentPosition == 0 {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("Not ranked among %d deputies.", resp.TotalDeputies)))
	} else {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("Position %d of %d deputies.", resp.CurrentPosition, resp.TotalDeputies)))
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderDocument(resp models.DocumentsFetchPostResponse, width int) string {
	if !resp.Success {
		return errorStyle.Render("Failed to fetch document: "+resp.Error) + "\n"
	}
	var sb strings.Builder
	sb.WriteString(headingStyle.Render(resp.Title))
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render(resp.ContentType))
	sb.WriteString("\n\n")
	if resp.ParsedContent == nil {
		return sb.String()
	}
	doc := resp.ParsedContent
	for _, k := range slices.Sorted(maps.Keys(doc.Metadata)) {
		if k == "title" {
			continue
		}
		fmt.Fprintf(&sb, "%s: %s\n", k, doc.Metadata[k])
	}
	if doc.Text != "" {
		sb.WriteString(wordwrap.String(doc.Text, width))
		sb.WriteString("\n")
	}
	for i, table := range doc.Tables {
		sb.WriteString("\n")
		sb.WriteString(headingStyle.Render(fmt.Sprintf("Table %d", i+1)))
		sb.WriteString("\n")
		for _, row := range table {
			sb.WriteString(strings.Join(row, " | "))
			sb.WriteString("\n")
		}
	}
	if len(doc.Links) > 0 {
		sb.WriteString("\n")
		sb.WriteString(headingStyle.Render("Links"))
		sb.WriteString("\n")
		for _, l := range doc.Links {
			fmt.Fprintf(&sb, "%s %s\n", l.Text, linkStyle.Render(l.URL))
		}
	}
	return sb.String()
}

func renderDeputy(d models.Deputy, ranking models.RankingGetResponse, events []models.Event, expenses []models.Expense, fronts []models.Front, width int) string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render(d.Name))
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render(strings.Join(nonEmpty(d.Party, d.State, d.Email), " · ")))
	sb.WriteString("\n\n")
	sb.WriteString(renderRanking(ranking))

	sb.WriteString("\n")
	sb.WriteString(headingStyle.Render("Events"))
	sb.WriteString("\n")
	if len(events) == 0 {
		sb.WriteString(mutedStyle.Render("None."))
		sb.WriteString("\n")
	}
	for _, e := range events {
		title := e.Description
		if title == "" {
			title = e.TypeDescription
		}
		sb.WriteString(wordwrap.String("- "+title, width))
		sb.WriteString("\n")
		if details := nonEmpty(e.Start, e.Location(), e.Status); len(details) > 0 {
			sb.WriteString(mutedStyle.Render(wordwrap.String("  "+strings.Join(details, " · "), width)))
			sb.WriteString("\n")
		}
	}

	var net, disallowed float64
	for _, e := range expenses {
		net += e.Net
		disallowed += e.Disallowed
	}
	sb.WriteString("\n")
	sb.WriteString(headingStyle.Render("Expenses"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%d records, %s net, %s disallowed\n", len(expenses), formatCurrency(net), formatCurrency(disallowed))

	sb.WriteString("\n")
	sb.WriteString(headingStyle.Render("Parliamentary fronts"))
	sb.WriteString("\n")
	if len(fronts) == 0 {
		sb.WriteString(mutedStyle.Render("None."))
		sb.WriteString("\n")
	}
	for _, f := range fronts {
		sb.WriteString(wordwrap.String("- "+f.Title, width))
		sb.WriteString("\n")
	}
	return sb.String()
}

func nonEmpty(values ...string) (result []string) {
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
