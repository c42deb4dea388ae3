package getMessages

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusHub/internal/http-server/handlers/chat/getMessages/mocks"
	"campusHub/internal/lib/logger/handlers/slogdiscard"
	"campusHub/internal/models"
	"campusHub/internal/services/chat"
	"campusHub/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetMessagesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	sess := &session.Session{UserID: "u1"}

	testCases := []struct {
		name           string
		session        *session.Session
		contactID      string
		mockSetup      func(m *mocks.MessageLister)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Thread",
			session:   sess,
			contactID: "ai-friend",
			mockSetup: func(m *mocks.MessageLister) {
				m.On("Messages", mock.Anything, sess, "ai-friend").Return([]models.Message{
					{ID: "1", Sender: models.SenderOther, Text: "Hi there!", Timestamp: 1},
					{ID: "2", Sender: models.SenderMe, Text: "Hello", Timestamp: 2},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","messages":[
				{"id":"1","sender":"other","text":"Hi there!","timestamp":1},
				{"id":"2","sender":"me","text":"Hello","timestamp":2}
			]}`,
		},
		{
			name:      "Anonymous",
			contactID: "ai-friend",
			mockSetup: func(m *mocks.MessageLister) {
				m.On("Messages", mock.Anything, (*session.Session)(nil), "ai-friend").
					Return(nil, fmt.Errorf("op: %w", session.ErrAuthRequired))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required","redirect":"/login?redirect=%2Fchat%2Fai-friend%2Fmessages"}`,
		},
		{
			name:      "Unknown contact",
			session:   sess,
			contactID: "stranger",
			mockSetup: func(m *mocks.MessageLister) {
				m.On("Messages", mock.Anything, sess, "stranger").Return(nil, fmt.Errorf("op: %w", chat.ErrContactNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"contact not found"}`,
		},
		{
			name:      "Store error",
			session:   sess,
			contactID: "2",
			mockSetup: func(m *mocks.MessageLister) {
				m.On("Messages", mock.Anything, sess, "2").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to load messages"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewMessageLister(t)
			tc.mockSetup(lister)

			router := chi.NewRouter()
			router.Get("/chat/{contactId}/messages", New(logger, lister))

			req := httptest.NewRequest(http.MethodGet, "/chat/"+tc.contactID+"/messages", nil)
			if tc.session != nil {
				req = req.WithContext(session.With(req.Context(), tc.session))
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
