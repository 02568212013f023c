package jobs

// ProgressPush is one queued progress update. Token is the credential of the session
// that produced it; the push is sent with it even if the session changes meanwhile.
type ProgressPush struct {
	IdentityID string
	Token      string
	ProblemID  string
	Status     string
}

// ProgressQueue accepts background progress pushes.
type ProgressQueue interface {
	EnqueueProgress(push ProgressPush) error
}
