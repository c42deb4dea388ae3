package getAttendees

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusHub/internal/http-server/handlers/event/getAttendees/mocks"
	"campusHub/internal/lib/logger/handlers/slogdiscard"
	"campusHub/internal/models"
	"campusHub/internal/services/catalog"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetAttendeesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.AttendeeLister)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.AttendeeLister) {
				m.On("Attendees", mock.Anything, "e1").Return([]models.Attendee{
					{ID: "a", Name: "Alice", Avatar: "https://placehold.co/100x100?text=A"},
					{ID: "c", Name: "Carol", Avatar: "https://placehold.co/100x100?text=C"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","attendees":[
				{"id":"a","name":"Alice","avatar":"https://placehold.co/100x100?text=A"},
				{"id":"c","name":"Carol","avatar":"https://placehold.co/100x100?text=C"}
			]}`,
		},
		{
			name: "Nobody registered",
			mockSetup: func(m *mocks.AttendeeLister) {
				m.On("Attendees", mock.Anything, "e1").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","attendees":[]}`,
		},
		{
			name: "Event not found",
			mockSetup: func(m *mocks.AttendeeLister) {
				m.On("Attendees", mock.Anything, "e1").Return(nil, fmt.Errorf("op: %w", catalog.ErrEventNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name: "Store error",
			mockSetup: func(m *mocks.AttendeeLister) {
				m.On("Attendees", mock.Anything, "e1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get attendees"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewAttendeeLister(t)
			tc.mockSetup(lister)

			router := chi.NewRouter()
			router.Get("/events/{id}/attendees", New(logger, lister))

			req := httptest.NewRequest(http.MethodGet, "/events/e1/attendees", nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
