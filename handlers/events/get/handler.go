package get

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/deputados/handlers"
	"github.com/a-h/deputados/models"
	"github.com/a-h/respond"
)

type Lister interface {
	ListEvents(ctx context.Context, deputyID string) ([]models.Event, error)
}

func New(log *slog.Logger, events Lister) Handler {
	return Handler{
		log:    log,
		events: events,
	}
}

type Handler struct {
	log    *slog.Logger
	events Lister
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	events, err := h.events.ListEvents(r.Context(), id)
	if err != nil {
		h.log.Error("failed to list events", slog.String("deputyId", id), slog.Any("error", err))
		respond.WithError(w, err.Error(), handlers.UpstreamStatus(err))
		return
	}
	respond.WithJSON(w, models.EventsGetResponse{Events: events}, http.StatusOK)
}
