package models

// Completion is a solved/total pair.
type Completion struct {
	Solved int `json:"solved"`
	Total  int `json:"total"`
}

// Percent returns the completion percentage, 0 for an empty total.
func (c Completion) Percent() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Solved) * 100 / float64(c.Total)
}

// ProgressSnapshot is derived on demand and never stored.
type ProgressSnapshot struct {
	SolvedCount        int                   `json:"solvedCount"`
	AttemptedCount     int                   `json:"attemptedCount"`
	StreakDays         int                   `json:"streakDays"`
	PerTopicCompletion map[string]Completion `json:"perTopicCompletion"`
}

// RecentActivity distinguishes "the server sent nothing" from "the server sent an empty list".
type RecentActivity struct {
	Available bool       `json:"available"`
	Items     []Activity `json:"items"`
}

type Dashboard struct {
	Identity Identity         `json:"identity"`
	Stats    ProgressSnapshot `json:"stats"`
	Activity RecentActivity   `json:"recentActivity"`
}

type TopicDetail struct {
	Topic    Topic     `json:"topic"`
	Problems []Problem `json:"problems"`
	// Unresolved counts problemIds that had no match in the catalog.
	Unresolved int `json:"unresolved"`
}

type SheetProgress = Completion

type SheetDetail struct {
	Sheet          Sheet         `json:"sheet"`
	Progress       SheetProgress `json:"progress"`
	EstimatedHours int           `json:"estimatedHours"`
}
