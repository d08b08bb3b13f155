// Package camara is a client for the Chamber of Deputies open data API.
package camara

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/deputados/models"
	"github.com/a-h/jsonapi"
	"github.com/patrickmn/go-cache"
)

const DefaultBaseURL = "https://dadosabertos.camara.leg.br/api/v2"

// New creates a client for the API at baseURL. A positive cacheTTL keeps successful
// responses in memory for that long, keyed by request URL.
func New(baseURL string, cacheTTL time.Duration) Client {
	c := Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
	if cacheTTL > 0 {
		c.cache = cache.New(cacheTTL, 2*cacheTTL)
	}
	return c
}

type Client struct {
	baseURL string
	cache   *cache.Cache
}

// StatusError is returned when the API responds with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e StatusError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("HTTP Error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return "HTTP Error: " + e.Status
}

// ListDeputies returns the roster ordered by name. A limit of zero leaves the page
// size to the API.
func (c Client) ListDeputies(ctx context.Context, limit int) (deputies []models.Deputy, err error) {
	query := map[string]string{
		"ordem":      "ASC",
		"ordenarPor": "nome",
	}
	if limit > 0 {
		query["itens"] = strconv.Itoa(limit)
	}
	deputies, err = list[models.Deputy](ctx, c, query, "deputados")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deputies: %w", err)
	}
	return deputies, nil
}

func (c Client) ListEvents(ctx context.Context, deputyID string) (events []models.Event, err error) {
	query := map[string]string{
		"ordem":      "ASC",
		"ordenarPor": "dataHoraInicio",
	}
	events, err = list[models.Event](ctx, c, query, "deputados", deputyID, "eventos")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deputy events: %w", err)
	}
	return events, nil
}

// ListExpenses returns the deputy's expenses, filtered to year when it is non-zero.
func (c Client) ListExpenses(ctx context.Context, deputyID string, year int) (expenses []models.Expense, err error) {
	query := map[string]string{
		"ordem":      "ASC",
		"ordenarPor": "ano",
	}
	if year != 0 {
		query["ano"] = strconv.Itoa(year)
	}
	expenses, err = list[models.Expense](ctx, c, query, "deputados", deputyID, "despesas")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deputy expenses: %w", err)
	}
	return expenses, nil
}

func (c Client) ListFronts(ctx context.Context, deputyID string) (fronts []models.Front, err error) {
	fronts, err = list[models.Front](ctx, c, nil, "deputados", deputyID, "frentes")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deputy fronts: %w", err)
	}
	return fronts, nil
}

type envelope[T any] struct {
	Data []T `json:"dados"`
}

func list[T any](ctx context.Context, c Client, query map[string]string, path ...string) (items []T, err error) {
	url, err := jsonapi.URL(c.baseURL).Path(path...).Query(query).String()
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		if cached, found := c.cache.Get(url); found {
			return cached.([]T), nil
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	res, err := jsonapi.Raw(req, jsonapi.WithRequestHeader("Accept", "application/json"))
	if err != nil {
		return nil, fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, StatusError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
		}
	}
	var env envelope[T]
	if err = json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	items = env.Data
	if items == nil {
		items = []T{}
	}
	if c.cache != nil {
		c.cache.Set(url, items, cache.DefaultExpiration)
	}
	return items, nil
}
