package get

import (
	"net/http"

	"github.com/a-h/deputados"
	"github.com/a-h/deputados/models"
	"github.com/a-h/respond"
)

type Handler struct{}

func (Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.WithJSON(w, models.VersionGetResponse{Version: deputados.Version}, http.StatusOK)
}
