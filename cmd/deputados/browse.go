package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/a-h/deputados/client"
	"github.com/a-h/deputados/models"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

type BrowseCommand struct {
	ServerURL string `help:"The URL of the deputados server." env:"DEPUTADOS_SERVER_URL" default:"http://localhost:9020"`
	Year      int    `help:"The year to show expenses for, defaults to the current year." default:"0"`
}

func (c BrowseCommand) Run(ctx context.Context) (err error) {
	m := newBrowseModel(ctx, client.New(c.ServerURL), c.Year)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

type browseState int

const (
	browseLoading browseState = iota
	browseList
	browseDetail
	browseDocuments
	browseDocument
	browseFailed
)

type deputyItem models.Deputy

func (d deputyItem) Title() string       { return d.Name }
func (d deputyItem) Description() string { return d.Party + " · " + d.State }
func (d deputyItem) FilterValue() string { return d.Name }

// documentItem is an event registry or expense receipt that can be fetched.
type documentItem struct {
	title       string
	description string
	url         string
	kind        models.DocumentKind
}

func (d documentItem) Title() string       { return d.title }
func (d documentItem) Description() string { return d.description }
func (d documentItem) FilterValue() string { return d.title }

func documentItems(events []models.Event, expenses []models.Expense) (items []list.Item) {
	for _, e := range events {
		if e.RegistryURL == "" {
			continue
		}
		title := e.Description
		if title == "" {
			title = e.TypeDescription
		}
		items = append(items, documentItem{
			title:       title,
			description: "Registro · " + e.Start,
			url:         e.RegistryURL,
			kind:        models.DocumentKindRegistry,
		})
	}
	for _, e := range expenses {
		if e.DocumentURL == "" {
			continue
		}
		items = append(items, documentItem{
			title:       e.ExpenseType,
			description: fmt.Sprintf("%s · %s · %s", e.SupplierName, formatCurrency(e.Net), e.DocumentDate),
			url:         e.DocumentURL,
			kind:        models.DocumentKindDocument,
		})
	}
	return items
}

type deputiesMsg struct {
	deputies []models.Deputy
	err      error
}

type detailMsg struct {
	deputy   models.Deputy
	ranking  models.RankingGetResponse
	events   []models.Event
	expenses []models.Expense
	fronts   []models.Front
	err      error
}

type documentMsg struct {
	url  string
	resp models.DocumentsFetchPostResponse
	err  error
}

type browseModel struct {
	ctx    context.Context
	client client.Client
	year   int

	state     browseState
	err       error
	selected  models.Deputy
	detail    *detailMsg
	document  *documentItem
	width     int
	list      list.Model
	documents list.Model
	viewport  viewport.Model
}

func newBrowseModel(ctx context.Context, c client.Client, year int) browseModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Deputies"
	l.Styles.Title = l.Styles.Title.Background(Purple).Foreground(Background)
	docs := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	docs.Title = "Documents"
	docs.Styles.Title = docs.Styles.Title.Background(Cyan).Foreground(Background)
	return browseModel{
		ctx:       ctx,
		client:    c,
		year:      year,
		state:     browseLoading,
		width:     80,
		list:      l,
		documents: docs,
		viewport:  viewport.New(80, 20),
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.loadDeputies
}

func (m browseModel) loadDeputies() tea.Msg {
	resp, err := m.client.DeputiesGet(m.ctx)
	return deputiesMsg{deputies: resp.Deputies, err: err}
}

func (m browseModel) loadDetail(d models.Deputy) tea.Cmd {
	return func() tea.Msg {
		msg := detailMsg{deputy: d}
		id := strconv.Itoa(d.ID)
		var eg errgroup.Group
		eg.Go(func() error {
			resp, err := m.client.RankingGet(m.ctx, models.RankingGetRequest{DeputyID: id, Year: m.year})
			msg.ranking = resp
			return err
		})
		eg.Go(func() error {
			resp, err := m.client.EventsGet(m.ctx, id)
			msg.events = resp.Events
			return err
		})
		eg.Go(func() error {
			resp, err := m.client.ExpensesGet(m.ctx, id)
			msg.expenses = resp.Expenses
			return err
		})
		eg.Go(func() error {
			resp, err := m.client.FrontsGet(m.ctx, id)
			msg.fronts = resp.Fronts
			return err
		})
		msg.err = eg.Wait()
		return msg
	}
}

func (m browseModel) loadDocument(d documentItem) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.client.DocumentsFetchPost(m.ctx, models.DocumentsFetchPostRequest{URL: d.url, Kind: d.kind})
		return documentMsg{url: d.url, resp: resp, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.SetSize(msg.Width, msg.Height)
		m.documents.SetSize(msg.Width, msg.Height)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2
		if m.state == browseDetail && m.detail != nil {
			m.viewport.SetContent(m.renderDetail())
		}
		return m, nil
	case deputiesMsg:
		if msg.err != nil {
			m.state, m.err = browseFailed, msg.err
			return m, nil
		}
		items := make([]list.Item, len(msg.deputies))
		for i, d := range msg.deputies {
			items[i] = deputyItem(d)
		}
		m.state = browseList
		return m, m.list.SetItems(items)
	case detailMsg:
		if msg.deputy.ID != m.selected.ID || m.state != browseDetail {
			return m, nil
		}
		if msg.err != nil {
			m.state, m.err = browseFailed, msg.err
			return m, nil
		}
		m.detail = &msg
		m.viewport.SetContent(m.renderDetail())
		m.viewport.GotoTop()
		return m, m.documents.SetItems(documentItems(msg.events, msg.expenses))
	case documentMsg:
		if m.state != browseDocument || m.document == nil || msg.url != m.document.url {
			return m, nil
		}
		if msg.err != nil {
			m.state, m.err = browseFailed, msg.err
			return m, nil
		}
		m.viewport.SetContent(renderDocument(msg.resp, m.width))
		m.viewport.GotoTop()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case browseLoading:
			if msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		case browseFailed:
			return m.updateFailed(msg)
		case browseDetail:
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "esc":
				m.state, m.selected, m.detail = browseList, models.Deputy{}, nil
				return m, nil
			case "d":
				if m.detail != nil {
					m.state = browseDocuments
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case browseDocuments:
			if m.documents.FilterState() == list.Filtering {
				break
			}
			switch msg.String() {
			case "esc":
				m.state = browseDetail
				m.viewport.SetContent(m.renderDetail())
				return m, nil
			case "enter":
				item, ok := m.documents.SelectedItem().(documentItem)
				if !ok {
					return m, nil
				}
				m.state, m.document = browseDocument, &item
				m.viewport.SetContent("Loading...")
				return m, m.loadDocument(item)
			}
		case browseDocument:
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "esc":
				m.state, m.document = browseDocuments, nil
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case browseList:
			if m.list.FilterState() == list.Filtering {
				break
			}
			if msg.String() == "enter" {
				item, ok := m.list.SelectedItem().(deputyItem)
				if !ok {
					return m, nil
				}
				m.state, m.selected = browseDetail, models.Deputy(item)
				m.viewport.SetContent("Loading...")
				return m, m.loadDetail(m.selected)
			}
		}
	}
	var cmd tea.Cmd
	switch m.state {
	case browseList:
		m.list, cmd = m.list.Update(msg)
	case browseDocuments:
		m.documents, cmd = m.documents.Update(msg)
	}
	return m, cmd
}

func (m browseModel) updateFailed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		m.err = nil
		if m.document != nil {
			m.state = browseDocument
			m.viewport.SetContent("Loading...")
			return m, m.loadDocument(*m.document)
		}
		if m.selected.ID != 0 {
			m.state = browseDetail
			m.viewport.SetContent("Loading...")
			return m, m.loadDetail(m.selected)
		}
		m.state = browseLoading
		return m, m.loadDeputies
	case "esc":
		if m.document != nil {
			m.state, m.err, m.document = browseDocuments, nil, nil
			return m, nil
		}
		if len(m.list.Items()) > 0 {
			m.state, m.err, m.selected, m.detail = browseList, nil, models.Deputy{}, nil
		}
	}
	return m, nil
}

func (m browseModel) renderDetail() string {
	d := m.detail
	if d == nil {
		return "Loading..."
	}
	return renderDeputy(d.deputy, d.ranking, d.events, d.expenses, d.fronts, m.width)
}

func (m browseModel) View() string {
	switch m.state {
	case browseLoading:
		return mutedStyle.Render("Loading deputies...")
	case browseFailed:
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" + mutedStyle.Render("r: retry • esc: back • q: quit")
	case browseDetail:
		return m.viewport.View() + "\n" + mutedStyle.Render("d: documents • esc: back • q: quit")
	case browseDocuments:
		return m.documents.View()
	case browseDocument:
		return m.viewport.View() + "\n" + mutedStyle.Render("esc: back • q: quit")
	}
	return m.list.View()
}
