package post

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/a-h/deputados/models"
	"github.com/a-h/respond"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string, kind models.DocumentKind) models.DocumentsFetchPostResponse
}

func New(log *slog.Logger, fetcher Fetcher) Handler {
	return Handler{
		log:     log,
		fetcher: fetcher,
	}
}

type Handler struct {
	log     *slog.Logger
	fetcher Fetcher
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.DocumentsFetchPostRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.log.Error("failed to decode body", slog.Any("error", err))
		respond.WithError(w, "failed to decode body", http.StatusBadRequest)
		return
	}
	if !req.Kind.Valid() {
		respond.WithError(w, "type must be one of document, registro or frente", http.StatusBadRequest)
		return
	}

	// Fetch failures are part of the response, not an HTTP error.
	respond.WithJSON(w, h.fetcher.Fetch(r.Context(), req.URL, req.Kind), http.StatusOK)
}
