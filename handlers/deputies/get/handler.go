package get

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/deputados/handlers"
	"github.com/a-h/deputados/models"
	"github.com/a-h/respond"
)

// RosterSize is the number of deputies requested from the Chamber API.
const RosterSize = 50

type Lister interface {
	ListDeputies(ctx context.Context, limit int) ([]models.Deputy, error)
}

func New(log *slog.Logger, deputies Lister) Handler {
	return Handler{
		log:      log,
		deputies: deputies,
	}
}

type Handler struct {
	log      *slog.Logger
	deputies Lister
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deputies, err := h.deputies.ListDeputies(r.Context(), RosterSize)
	if err != nil {
		h.log.Error("failed to list deputies", slog.Any("error", err))
		respond.WithError(w, err.Error(), handlers.UpstreamStatus(err))
		return
	}
	respond.WithJSON(w, models.DeputiesGetResponse{Deputies: deputies}, http.StatusOK)
}
