package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/services"
)

func catalog() []models.Problem {
	return []models.Problem{
		{ID: "p2", Title: "Two Sum", Difficulty: models.DifficultyEasy},
		{ID: "p1", Title: "Reverse String", Difficulty: models.DifficultyEasy},
		{ID: "p4", Title: "LRU Cache", Difficulty: models.DifficultyHard},
	}
}

func TestFilterTopicsByDifficulty(t *testing.T) {
	topics := []models.Topic{
		{ID: "t1", Difficulty: models.LevelBeginner},
		{ID: "t2", Difficulty: models.LevelAdvanced},
		{ID: "t3", Difficulty: models.LevelBeginner},
	}

	t.Run("all passes through unchanged", func(t *testing.T) {
		assert.Equal(t, topics, services.FilterTopicsByDifficulty(topics, models.LevelAll))
	})

	t.Run("exact match keeps order", func(t *testing.T) {
		got := services.FilterTopicsByDifficulty(topics, models.LevelBeginner)
		assert.Equal(t, []models.Topic{topics[0], topics[2]}, got)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, services.FilterTopicsByDifficulty(topics, models.LevelIntermediate))
	})
}

func TestJoinTopicProblems_TolerantAndCatalogOrdered(t *testing.T) {
	topic := models.Topic{ID: "t1", ProblemIDs: []string{"p1", "p2", "p3"}}

	got, unresolved := services.JoinTopicProblems(topic, catalog())

	assert.Equal(t, []string{"p2", "p1"}, ids(got), "catalog order, not reference order")
	assert.Equal(t, 1, unresolved)
}

func TestJoinTopicProblems_DuplicateReferences(t *testing.T) {
	topic := models.Topic{ID: "t1", ProblemIDs: []string{"p1", "p1", "p4"}}

	got, unresolved := services.JoinTopicProblems(topic, catalog())

	assert.Equal(t, []string{"p1", "p4"}, ids(got))
	assert.Zero(t, unresolved)
}

func TestJoinTopicProblems_EmptyTopic(t *testing.T) {
	got, unresolved := services.JoinTopicProblems(models.Topic{ID: "t1"}, catalog())
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.Zero(t, unresolved)
}

func TestComputeSheetProgress(t *testing.T) {
	identity := models.Identity{ID: "u1", SolvedProblems: models.NewIDSet("p1", "p9")}

	tests := []struct {
		name  string
		sheet models.Sheet
		want  models.SheetProgress
	}{
		{"empty sheet", models.Sheet{ID: "s0"}, models.SheetProgress{Solved: 0, Total: 0}},
		{"partial", models.Sheet{ID: "s1", Problems: catalog()}, models.SheetProgress{Solved: 1, Total: 3}},
		{"none solved", models.Sheet{ID: "s2", Problems: catalog()[2:]}, models.SheetProgress{Solved: 0, Total: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ComputeSheetProgress(tt.sheet, identity)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.Solved, got.Total)
			assert.Equal(t, len(tt.sheet.Problems), got.Total)
		})
	}
}

func TestComputeTopicCompletion(t *testing.T) {
	topics := []models.Topic{
		{ID: "t1", ProblemIDs: []string{"p1", "p2", "p3"}},
		{ID: "t2"},
	}
	identity := models.Identity{SolvedProblems: models.NewIDSet("p1", "p3")}

	got := services.ComputeTopicCompletion(topics, catalog(), identity)

	assert.Equal(t, models.Completion{Solved: 1, Total: 2}, got["t1"])
	assert.Equal(t, models.Completion{}, got["t2"])
}

func TestEstimateHours(t *testing.T) {
	assert.Equal(t, 0, services.EstimateHours(models.Sheet{}))
	assert.Equal(t, 1, services.EstimateHours(models.Sheet{Problems: catalog()[:1]}))
	assert.Equal(t, 2, services.EstimateHours(models.Sheet{Problems: catalog()}))
}

func ids(problems []models.Problem) []string {
	out := make([]string, 0, len(problems))
	for _, p := range problems {
		out = append(out, p.ID)
	}
	return out
}
