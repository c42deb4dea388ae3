package listClubs

import (
	"log/slog"
	"net/http"
	"strings"

	"campusHub/internal/lib/api/response"
	"campusHub/internal/models"
	"campusHub/internal/services/directory"

	"github.com/go-chi/render"
)

type ClubsResponse struct {
	response.Response
	Categories []string      `json:"categories"`
	Clubs      []models.Club `json:"clubs"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClubLister
type ClubLister interface {
	Clubs(category string) []models.Club
}

func New(log *slog.Logger, dir ClubLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.directory.listClubs.New"

		category := strings.TrimSpace(r.URL.Query().Get("category"))
		if strings.EqualFold(category, "all") {
			category = ""
		}

		clubs := dir.Clubs(category)

		log.Debug("clubs listed", slog.String("op", op), slog.String("category", category), slog.Int("count", len(clubs)))

		render.JSON(w, r, ClubsResponse{
			Response:   response.OK(),
			Categories: directory.ClubCategories,
			Clubs:      clubs,
		})
	}
}
