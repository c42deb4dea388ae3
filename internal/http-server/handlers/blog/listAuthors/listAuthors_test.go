package listAuthors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusHub/internal/http-server/handlers/blog/listAuthors/mocks"
	"campusHub/internal/lib/logger/handlers/slogdiscard"
	"campusHub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListAuthorsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.AuthorLister)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.AuthorLister) {
				m.On("Authors", mock.Anything).Return([]models.User{
					{ID: "u1", Name: "Ada", Email: "ada@campus.edu", Username: "ada", Avatar: "a.png", Major: "Math"},
					{ID: "u2", Name: "Grace", Email: "grace@campus.edu", Username: "grace", Avatar: "g.png"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","authors":[
				{"id":"u1","name":"Ada","username":"ada","avatar":"a.png","major":"Math"},
				{"id":"u2","name":"Grace","username":"grace","avatar":"g.png"}
			]}`,
		},
		{
			name: "Nobody blogs yet",
			mockSetup: func(m *mocks.AuthorLister) {
				m.On("Authors", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","authors":[]}`,
		},
		{
			name: "Store error",
			mockSetup: func(m *mocks.AuthorLister) {
				m.On("Authors", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list authors"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewAuthorLister(t)
			tc.mockSetup(lister)

			req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
			rr := httptest.NewRecorder()

			New(logger, lister).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
