package get

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/deputados/camara"
	"github.com/a-h/deputados/models"
	"github.com/google/go-cmp/cmp"
)

type listerFunc func(ctx context.Context, limit int) ([]models.Deputy, error)

func (f listerFunc) ListDeputies(ctx context.Context, limit int) ([]models.Deputy, error) {
	return f(ctx, limit)
}

func TestHandler(t *testing.T) {
	log := slog.New(slog.DiscardHandler)

	t.Run("deputies are returned", func(t *testing.T) {
		var requestedLimit int
		h := New(log, listerFunc(func(ctx context.Context, limit int) ([]models.Deputy, error) {
			requestedLimit = limit
			return []models.Deputy{{ID: 204554, Name: "Abilio Brunini", Party: "PL", State: "MT"}}, nil
		}))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deputies", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
		if requestedLimit != RosterSize {
			t.Errorf("expected limit %d, got %d", RosterSize, requestedLimit)
		}
		var actual models.DeputiesGetResponse
		if err := json.NewDecoder(w.Body).Decode(&actual); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		expected := models.DeputiesGetResponse{
			Deputies: []models.Deputy{{ID: 204554, Name: "Abilio Brunini", Party: "PL", State: "MT"}},
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("upstream failures are bad gateway errors", func(t *testing.T) {
		h := New(log, listerFunc(func(ctx context.Context, limit int) ([]models.Deputy, error) {
			return nil, camara.StatusError{StatusCode: http.StatusInternalServerError}
		}))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deputies", nil))
		if w.Code != http.StatusBadGateway {
			t.Errorf("expected status %d, got %d", http.StatusBadGateway, w.Code)
		}
	})
}
