package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/deputados/models"
	"github.com/a-h/jsonapi"
	"github.com/a-h/respond"
)

func New(baseURL string) Client {
	return Client{
		baseURL: baseURL,
	}
}

type Client struct {
	baseURL string
}

// Error is returned when the server responds with an error message.
type Error respond.Error

func (e Error) Error() string {
	return e.Message
}

func (c Client) DeputiesGet(ctx context.Context) (resp models.DeputiesGetResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("deputies").String()
	if err != nil {
		return resp, err
	}
	return get[models.DeputiesGetResponse](ctx, url)
}

func (c Client) EventsGet(ctx context.Context, deputyID string) (resp models.EventsGetResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("deputies", deputyID, "events").String()
	if err != nil {
		return resp, err
	}
	return get[models.EventsGetResponse](ctx, url)
}

func (c Client) ExpensesGet(ctx context.Context, deputyID string) (resp models.ExpensesGetResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("deputies", deputyID, "expenses").String()
	if err != nil {
		return resp, err
	}
	return get[models.ExpensesGetResponse](ctx, url)
}

func (c Client) FrontsGet(ctx context.Context, deputyID string) (resp models.FrontsGetResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("deputies", deputyID, "fronts").String()
	if err != nil {
		return resp, err
	}
	return get[models.FrontsGetResponse](ctx, url)
}

func (c Client) RankingGet(ctx context.Context, req models.RankingGetRequest) (resp models.RankingGetResponse, err error) {
	ub := jsonapi.URL(c.baseURL).Path("deputies", req.DeputyID, "ranking")
	if req.Year != 0 {
		ub = ub.Query(map[string]string{"year": strconv.Itoa(req.Year)})
	}
	url, err := ub.String()
	if err != nil {
		return resp, err
	}
	return get[models.RankingGetResponse](ctx, url)
}

func (c Client) DocumentsFetchPost(ctx context.Context, req models.DocumentsFetchPostRequest) (resp models.DocumentsFetchPostResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("documents", "fetch").String()
	if err != nil {
		return resp, err
	}
	return jsonapi.Post[models.DocumentsFetchPostRequest, models.DocumentsFetchPostResponse](ctx, url, req)
}

func (c Client) VersionGet(ctx context.Context) (resp models.VersionGetResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("version").String()
	if err != nil {
		return resp, err
	}
	return get[models.VersionGetResponse](ctx, url)
}

func get[T any](ctx context.Context, url string) (resp T, err error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to create request: %w", err)
	}
	res, err := jsonapi.Raw(httpReq)
	if err != nil {
		return resp, fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return resp, newError(res)
	}
	if err = json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return resp, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp, nil
}

func newError(res *http.Response) error {
	body, _ := io.ReadAll(res.Body)
	var re respond.Error
	if err := json.Unmarshal(body, &re); err != nil || re.Message == "" {
		return jsonapi.InvalidStatusError{
			Status: res.StatusCode,
			Body:   string(body),
		}
	}
	re.StatusCode = res.StatusCode
	return Error(re)
}
