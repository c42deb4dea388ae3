package submitIssue

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/services/issues"
	"campusHub/internal/session"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type IssueResponse struct {
	response.Response
	IssueID string `json:"issue_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=IssueSubmitter
type IssueSubmitter interface {
	Submit(ctx context.Context, sess *session.Session, r issues.Report) (*models.Issue, error)
}

// New accepts a problem report. Signing in is optional.
func New(log *slog.Logger, reports IssueSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.issue.submitIssue.New"

		log := log.With(slog.String("op", op))

		var req issues.Report

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("category", req.Category))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		issue, err := reports.Submit(r.Context(), session.From(r.Context()), req)
		if err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}

			log.Error("failed to submit issue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to submit issue"))
			return
		}

		log.Info("issue submitted", slog.String("issue_id", issue.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, IssueResponse{
			Response: response.OK(),
			IssueID:  issue.ID,
		})
	}
}
