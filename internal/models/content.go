package models

import "fmt"

// TopicLevel is the difficulty vocabulary for topics.
type TopicLevel string

const (
	LevelBeginner     TopicLevel = "beginner"
	LevelIntermediate TopicLevel = "intermediate"
	LevelAdvanced     TopicLevel = "advanced"

	// LevelAll is a filter value, never a topic's own level.
	LevelAll TopicLevel = "all"
)

func (l TopicLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Difficulty is the vocabulary shared by sheets and problems.
// It is a separate type from TopicLevel so the two are never compared.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Topic struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Difficulty  TopicLevel `json:"difficulty"`
	Content     string     `json:"content,omitempty"`
	ProblemIDs  []string   `json:"problemIds"`
}

func (t Topic) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("topic: missing _id")
	}
	if !t.Difficulty.Valid() {
		return fmt.Errorf("topic %s: unknown difficulty %q", t.ID, t.Difficulty)
	}
	return nil
}

type Problem struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
}

func (p Problem) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("problem: missing _id")
	}
	if !p.Difficulty.Valid() {
		return fmt.Errorf("problem %s: unknown difficulty %q", p.ID, p.Difficulty)
	}
	return nil
}

type Sheet struct {
	ID              string     `json:"_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	DifficultyLevel Difficulty `json:"difficultyLevel"`
	Problems        []Problem  `json:"problems"`
}

func (s Sheet) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("sheet: missing _id")
	}
	if !s.DifficultyLevel.Valid() {
		return fmt.Errorf("sheet %s: unknown difficultyLevel %q", s.ID, s.DifficultyLevel)
	}
	for i, p := range s.Problems {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("sheet %s: problems[%d]: %w", s.ID, i, err)
		}
	}
	return nil
}
