package models

import "time"

// Outcomes of a background progress push.
const (
	SyncPushed = "pushed"
	SyncFailed = "failed"
)

// SyncRecord is one attempt to push a ProgressUpdate to the portal API.
type SyncRecord struct {
	ID          int64     `json:"id"`
	IdentityID  string    `json:"identityId"`
	ProblemID   string    `json:"problemId"`
	Status      string    `json:"status"`
	Outcome     string    `json:"outcome"`
	Error       string    `json:"error,omitempty"`
	AttemptedAt time.Time `json:"attemptedAt"`
}
