// Package roadmap serves the fixed catalog of guided learning paths.
package roadmap

import (
	"strings"

	"github.com/gosimple/slug"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/models"
)

type Roadmap struct {
	Slug          string            `json:"slug"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	DurationWeeks int               `json:"durationWeeks"`
	Level         models.TopicLevel `json:"level"`
	Topics        []string          `json:"topics"`
}

var catalog = build([]Roadmap{
	{
		Title:         "Beginner's Path",
		Description:   "Start your DSA journey with fundamental concepts and basic problem-solving techniques",
		DurationWeeks: 8,
		Level:         models.LevelBeginner,
		Topics:        []string{"Arrays", "Strings", "Basic Sorting", "Simple Recursion"},
	},
	{
		Title:         "Interview Preparation",
		Description:   "Comprehensive path covering all essential topics for technical interviews",
		DurationWeeks: 12,
		Level:         models.LevelIntermediate,
		Topics:        []string{"Trees", "Graphs", "Dynamic Programming", "System Design Basics"},
	},
	{
		Title:         "Advanced Algorithms",
		Description:   "Master complex algorithms and competitive programming techniques",
		DurationWeeks: 16,
		Level:         models.LevelAdvanced,
		Topics:        []string{"Advanced DP", "Graph Algorithms", "Number Theory", "Segment Trees"},
	},
	{
		Title:         "Frontend Focused",
		Description:   "DSA concepts most relevant for frontend development interviews",
		DurationWeeks: 6,
		Level:         models.LevelIntermediate,
		Topics:        []string{"Arrays", "Strings", "Object Manipulation", "DOM Tree Problems"},
	},
})

func build(in []Roadmap) []Roadmap {
	for i := range in {
		// "Beginner's Path" becomes beginners-path, not beginner-s-path.
		in[i].Slug = slug.Make(strings.ReplaceAll(in[i].Title, "'", ""))
	}
	return in
}

func clone(r Roadmap) Roadmap {
	r.Topics = append([]string(nil), r.Topics...)
	return r
}

// List returns every roadmap in display order.
func List() []Roadmap {
	out := make([]Roadmap, len(catalog))
	for i, r := range catalog {
		out[i] = clone(r)
	}
	return out
}

// BySlug looks a roadmap up by its slug, ignoring case and surrounding space.
func BySlug(s string) (*Roadmap, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range catalog {
		if r.Slug == s {
			out := clone(r)
			return &out, nil
		}
	}
	return nil, errors.NewNotFoundError("roadmap", s)
}

// ByLevel keeps roadmaps at level. LevelAll or "" returns every roadmap; any other
// unknown level is a validation error.
func ByLevel(level models.TopicLevel) ([]Roadmap, error) {
	if level == "" || level == models.LevelAll {
		return List(), nil
	}
	if !level.Valid() {
		return nil, errors.NewValidationError("level", "must be one of all, beginner, intermediate, advanced")
	}
	var out []Roadmap
	for _, r := range catalog {
		if r.Level == level {
			out = append(out, clone(r))
		}
	}
	return out, nil
}
