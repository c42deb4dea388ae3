package updateProfile

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusHub/internal/http-server/handlers/profile/updateProfile/mocks"
	"campusHub/internal/lib/logger/handlers/slogdiscard"
	"campusHub/internal/models"
	"campusHub/internal/services/profile"
	"campusHub/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateProfileHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	sess := &session.Session{UserID: "u1"}
	major := "Physics"
	year := 3
	username := "Ada"
	blank := "   "

	testCases := []struct {
		name           string
		session        *session.Session
		requestBody    string
		mockSetup      func(m *mocks.ProfileUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			session:     sess,
			requestBody: `{"major":"Physics","year":3}`,
			mockSetup: func(m *mocks.ProfileUpdater) {
				m.On("Update", mock.Anything, sess, profile.Patch{Major: &major, Year: &year}).
					Return(&models.User{ID: "u1", Name: "Ada", Major: "Physics", Year: 3}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","user":{"id":"u1","name":"Ada","email":"","avatar":"",
				"major":"Physics","year":3,"bio":""}}`,
		},
		{
			name:           "Anonymous",
			requestBody:    `{"major":"Physics"}`,
			mockSetup:      func(m *mocks.ProfileUpdater) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required","redirect":"/login?redirect=%2Fprofile"}`,
		},
		{
			name:           "Year must be positive",
			session:        sess,
			requestBody:    `{"year":0}`,
			mockSetup:      func(m *mocks.ProfileUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Year must be greater than 0"}`,
		},
		{
			name:           "Invalid JSON",
			session:        sess,
			requestBody:    `[]`,
			mockSetup:      func(m *mocks.ProfileUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Username taken",
			session:     sess,
			requestBody: `{"username":"Ada"}`,
			mockSetup: func(m *mocks.ProfileUpdater) {
				m.On("Update", mock.Anything, sess, profile.Patch{Username: &username}).
					Return(nil, fmt.Errorf("op: %w", profile.ErrUsernameTaken))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"username is already taken"}`,
		},
		{
			name:        "Blank name",
			session:     sess,
			requestBody: `{"name":"   "}`,
			mockSetup: func(m *mocks.ProfileUpdater) {
				m.On("Update", mock.Anything, sess, profile.Patch{Name: &blank}).
					Return(nil, fmt.Errorf("op: %w", profile.ErrBlankName))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"name must not be blank"}`,
		},
		{
			name:        "No profile yet",
			session:     sess,
			requestBody: `{"major":"Physics"}`,
			mockSetup: func(m *mocks.ProfileUpdater) {
				m.On("Update", mock.Anything, sess, profile.Patch{Major: &major}).
					Return(nil, fmt.Errorf("op: %w", profile.ErrProfileNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"profile not found"}`,
		},
		{
			name:        "Store error",
			session:     sess,
			requestBody: `{"major":"Physics"}`,
			mockSetup: func(m *mocks.ProfileUpdater) {
				m.On("Update", mock.Anything, sess, profile.Patch{Major: &major}).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update profile"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewProfileUpdater(t)
			tc.mockSetup(updater)

			req := httptest.NewRequest(http.MethodPatch, "/profile", bytes.NewBufferString(tc.requestBody))
			if tc.session != nil {
				req = req.WithContext(session.With(req.Context(), tc.session))
			}
			rr := httptest.NewRecorder()

			New(logger, updater).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
