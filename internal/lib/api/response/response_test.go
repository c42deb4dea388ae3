package response

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUp struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Date     string `validate:"omitempty,datetime=2006-01-02"`
	Year     int    `validate:"gt=0"`
	Capacity int    `validate:"gte=0,max=1000"`
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   signUp
		wantErr string
	}{
		{
			name:    "Missing username",
			input:   signUp{Email: "ana@campus.edu", Year: 1},
			wantErr: "field Username is a required field",
		},
		{
			name:    "Bad email and date",
			input:   signUp{Username: "ana", Email: "ana", Date: "12/01/2026", Year: 1},
			wantErr: "field Email is not a valid email, field Date must be a date in 2006-01-02 format",
		},
		{
			name:    "Zero year",
			input:   signUp{Username: "ana", Email: "ana@campus.edu"},
			wantErr: "field Year must be greater than 0",
		},
		{
			name:    "Capacity bounds",
			input:   signUp{Username: "ana", Email: "ana@campus.edu", Year: 2, Capacity: 5000},
			wantErr: "field Capacity must be at most 1000",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := validator.New().Struct(tc.input)
			require.Error(t, err)

			var validateErr validator.ValidationErrors
			require.True(t, errors.As(err, &validateErr))

			resp := ValidationError(validateErr)
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tc.wantErr, resp.Error)
		})
	}
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()

	resp := AuthRequired("/login?redirect=%2Fprofile")

	assert.Equal(t, Response{
		Status:   StatusError,
		Error:    "authentication required",
		Redirect: "/login?redirect=%2Fprofile",
	}, resp)
	assert.Equal(t, Response{Status: StatusOK}, OK())
}
