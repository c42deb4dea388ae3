package listAnnouncements

import (
	"log/slog"
	"net/http"

	"campusHub/internal/lib/api/response"
	"campusHub/internal/models"

	"github.com/go-chi/render"
)

type AnnouncementsResponse struct {
	response.Response
	Announcements []models.Announcement `json:"announcements"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AnnouncementLister
type AnnouncementLister interface {
	Announcements() []models.Announcement
}

func New(log *slog.Logger, dir AnnouncementLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.directory.listAnnouncements.New"

		announcements := dir.Announcements()

		log.Debug("announcements listed", slog.String("op", op), slog.Int("count", len(announcements)))

		render.JSON(w, r, AnnouncementsResponse{
			Response:      response.OK(),
			Announcements: announcements,
		})
	}
}
