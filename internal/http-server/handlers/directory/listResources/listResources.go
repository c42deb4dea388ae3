package listResources

import (
	"log/slog"
	"net/http"
	"strings"

	"campusHub/internal/lib/api/response"
	"campusHub/internal/models"

	"github.com/go-chi/render"
)

type ResourcesResponse struct {
	response.Response
	Resources []models.Resource `json:"resources"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ResourceLister
type ResourceLister interface {
	Resources(tag string) []models.Resource
}

func New(log *slog.Logger, dir ResourceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.directory.listResources.New"

		tag := strings.TrimSpace(r.URL.Query().Get("tag"))
		resources := dir.Resources(tag)

		log.Debug("resources listed", slog.String("op", op), slog.String("tag", tag), slog.Int("count", len(resources)))

		render.JSON(w, r, ResourcesResponse{
			Response:  response.OK(),
			Resources: resources,
		})
	}
}
