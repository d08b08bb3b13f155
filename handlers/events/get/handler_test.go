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

type listerFunc func(ctx context.Context, deputyID string) ([]models.Event, error)

func (f listerFunc) ListEvents(ctx context.Context, deputyID string) ([]models.Event, error) {
	return f(ctx, deputyID)
}

func TestHandler(t *testing.T) {
	log := slog.New(slog.DiscardHandler)
	newRequest := func(id string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/deputies/"+id+"/events", nil)
		r.SetPathValue("id", id)
		return r
	}

	t.Run("events are returned for the deputy", func(t *testing.T) {
		h := New(log, listerFunc(func(ctx context.Context, deputyID string) ([]models.Event, error) {
			if deputyID != "204554" {
				t.Errorf("unexpected deputy %q", deputyID)
			}
			return []models.Event{{ID: 1, Description: "Sessão Deliberativa"}}, nil
		}))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, newRequest("204554"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
		var actual models.EventsGetResponse
		if err := json.NewDecoder(w.Body).Decode(&actual); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		expected := models.EventsGetResponse{Events: []models.Event{{ID: 1, Description: "Sessão Deliberativa"}}}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("unknown deputies are not found", func(t *testing.T) {
		h := New(log, listerFunc(func(ctx context.Context, deputyID string) ([]models.Event, error) {
			return nil, camara.StatusError{StatusCode: http.StatusNotFound, Status: "404 Not Found"}
		}))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, newRequest("0"))
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})
}
