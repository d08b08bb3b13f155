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
	ListExpenses(ctx context.Context, deputyID string, year int) ([]models.Expense, error)
}

func New(log *slog.Logger, expenses Lister) Handler {
	return Handler{
		log:      log,
		expenses: expenses,
	}
}

type Handler struct {
	log      *slog.Logger
	expenses Lister
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	// All years, in the order the API returns them.
	expenses, err := h.expenses.ListExpenses(r.Context(), id, 0)
	if err != nil {
		h.log.Error("failed to list expenses", slog.String("deputyId", id), slog.Any("error", err))
		respond.WithError(w, err.Error(), handlers.UpstreamStatus(err))
		return
	}
	respond.WithJSON(w, models.ExpensesGetResponse{Expenses: expenses}, http.StatusOK)
}
