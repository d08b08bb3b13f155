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
	ListFronts(ctx context.Context, deputyID string) ([]models.Front, error)
}

func New(log *slog.Logger, fronts Lister) Handler {
	return Handler{
		log:    log,
		fronts: fronts,
	}
}

type Handler struct {
	log    *slog.Logger
	fronts Lister
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	fronts, err := h.fronts.ListFronts(r.Context(), id)
	if err != nil {
		h.log.Error("failed to list fronts", slog.String("deputyId", id), slog.Any("error", err))
		respond.WithError(w, err.Error(), handlers.UpstreamStatus(err))
		return
	}
	respond.WithJSON(w, models.FrontsGetResponse{Fronts: fronts}, http.StatusOK)
}
