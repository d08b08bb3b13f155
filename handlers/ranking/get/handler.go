package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/deputados/handlers"
	"github.com/a-h/deputados/models"
	"github.com/a-h/respond"
)

type Ranker interface {
	Rank(ctx context.Context, currentID string, year int) (models.RankingGetResponse, error)
}

func New(log *slog.Logger, ranker Ranker) Handler {
	return Handler{
		log:    log,
		ranker: ranker,
	}
}

type Handler struct {
	log    *slog.Logger
	ranker Ranker
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := models.RankingGetRequest{
		DeputyID: r.PathValue("id"),
	}
	if y := r.URL.Query().Get("year"); y != "" {
		var err error
		if req.Year, err = strconv.Atoi(y); err != nil {
			respond.WithError(w, "year must be a number", http.StatusBadRequest)
			return
		}
	}

	h.log.Info("ranking deputies by expenses", slog.String("deputyId", req.DeputyID), slog.Int("year", req.Year))
	resp, err := h.ranker.Rank(r.Context(), req.DeputyID, req.Year)
	if err != nil {
		h.log.Error("failed to rank deputies", slog.Any("error", err))
		respond.WithError(w, err.Error(), handlers.UpstreamStatus(err))
		return
	}
	respond.WithJSON(w, resp, http.StatusOK)
}
