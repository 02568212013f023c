package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// IDSet is an ordered set of problem ids. Decoding drops duplicates and keeps first-seen order.
type IDSet []string

func NewIDSet(ids ...string) IDSet {
	var s IDSet
	for _, id := range ids {
		s = s.Add(id)
	}
	return s
}

func (s *IDSet) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NewIDSet(raw...)
	return nil
}

func (s IDSet) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Add returns s with id appended unless it is already present or empty.
func (s IDSet) Add(id string) IDSet {
	if id == "" || s.Contains(id) {
		return s
	}
	return append(s, id)
}

// Lookup returns the set as a map for repeated membership checks.
func (s IDSet) Lookup() map[string]struct{} {
	m := make(map[string]struct{}, len(s))
	for _, id := range s {
		m[id] = struct{}{}
	}
	return m
}

func (s IDSet) Clone() IDSet {
	if s == nil {
		return nil
	}
	out := make(IDSet, len(s))
	copy(out, s)
	return out
}

// Identity is the signed-in user as reported by the portal API.
type Identity struct {
	ID                string `json:"_id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	SolvedProblems    IDSet  `json:"solvedProblems"`
	AttemptedProblems IDSet  `json:"attemptedProblems"`
}

func (i Identity) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("identity: missing _id")
	}
	return nil
}

// Clone returns a deep copy so callers can never alias session state.
func (i Identity) Clone() Identity {
	i.SolvedProblems = i.SolvedProblems.Clone()
	i.AttemptedProblems = i.AttemptedProblems.Clone()
	return i
}

// WithProgress returns a copy of i whose progress sets are replaced by p.
func (i Identity) WithProgress(p Progress) Identity {
	out := i.Clone()
	out.SolvedProblems = p.SolvedProblems.Clone()
	out.AttemptedProblems = p.AttemptedProblems.Clone()
	return out
}

// AuthResult is the payload of /auth/login and /auth/register.
type AuthResult struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

func (a AuthResult) Validate() error {
	if a.Token == "" {
		return fmt.Errorf("auth: missing token")
	}
	return a.User.Validate()
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Progress is the response of POST /problems/:id/complete.
type Progress struct {
	SolvedProblems    IDSet `json:"solvedProblems"`
	AttemptedProblems IDSet `json:"attemptedProblems"`

	// set by UnmarshalJSON when the key was present and not null
	hasSolved, hasAttempted bool
}

func (p *Progress) UnmarshalJSON(data []byte) error {
	var wire struct {
		SolvedProblems    *IDSet `json:"solvedProblems"`
		AttemptedProblems *IDSet `json:"attemptedProblems"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*p = Progress{}
	if wire.SolvedProblems != nil {
		p.SolvedProblems, p.hasSolved = *wire.SolvedProblems, true
	}
	if wire.AttemptedProblems != nil {
		p.AttemptedProblems, p.hasAttempted = *wire.AttemptedProblems, true
	}
	return nil
}

// Validate requires both progress sets in the decoded body. The reply replaces the
// session's sets wholesale, so a missing key must never read as "nothing solved".
func (p Progress) Validate() error {
	if !p.hasSolved {
		return fmt.Errorf("progress: missing solvedProblems")
	}
	if !p.hasAttempted {
		return fmt.Errorf("progress: missing attemptedProblems")
	}
	return nil
}

// ProgressUpdate is the body of POST /users/progress.
type ProgressUpdate struct {
	ProblemID string    `json:"problemId"`
	Status    string    `json:"status"`
	At        time.Time `json:"timestamp"`
}

const (
	ProgressSolved    = "solved"
	ProgressAttempted = "attempted"
)

// Activity is one server-reported recent-activity entry.
type Activity struct {
	Type   string    `json:"type"`
	Name   string    `json:"name"`
	Action string    `json:"action"`
	At     time.Time `json:"timestamp"`
}

// Profile is the extended profile served by GET /users/profile.
type Profile struct {
	Streak         int        `json:"streak"`
	RecentActivity []Activity `json:"recentActivity"`
}

func (p Profile) Validate() error {
	if p.Streak < 0 {
		return fmt.Errorf("profile: negative streak %d", p.Streak)
	}
	return nil
}
