package models

const IssueStatusNew = "new"

// Issue is a problem report stored at issues/{id}.
type Issue struct {
	ID          string `json:"id,omitempty"`
	UserID      string `json:"userId"`
	UserEmail   string `json:"userEmail"`
	Category    string `json:"category" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status"`
	Timestamp   int64  `json:"timestamp"`
}
