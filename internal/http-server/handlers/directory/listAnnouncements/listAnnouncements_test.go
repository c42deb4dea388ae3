package listAnnouncements

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campusHub/internal/http-server/handlers/directory/listAnnouncements/mocks"
	"campusHub/internal/lib/logger/handlers/slogdiscard"
	"campusHub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestListAnnouncementsHandler(t *testing.T) {
	t.Parallel()

	lister := mocks.NewAnnouncementLister(t)
	lister.On("Announcements").Return([]models.Announcement{
		{ID: "1", Title: "Hackathon signups open", Content: "Form teams of four", Timestamp: "1 hour ago", Club: "Coding Club"},
	})

	req := httptest.NewRequest(http.MethodGet, "/announcements", nil)
	rr := httptest.NewRecorder()

	New(slogdiscard.NewDiscardLogger(), lister).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK","announcements":[{"id":"1","title":"Hackathon signups open",
		"content":"Form teams of four","timestamp":"1 hour ago","club":"Coding Club"}]}`, rr.Body.String())
}
