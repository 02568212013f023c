package roadmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/roadmap"
)

func TestList(t *testing.T) {
	all := roadmap.List()
	require.Len(t, all, 4)

	slugs := make([]string, 0, len(all))
	for _, r := range all {
		slugs = append(slugs, r.Slug)
	}
	assert.Equal(t, []string{
		"beginners-path",
		"interview-preparation",
		"advanced-algorithms",
		"frontend-focused",
	}, slugs)
}

func TestList_ReturnsCopies(t *testing.T) {
	first := roadmap.List()
	first[0].Topics[0] = "mutated"

	assert.Equal(t, "Arrays", roadmap.List()[0].Topics[0])
}

func TestBySlug(t *testing.T) {
	r, err := roadmap.BySlug(" Interview-Preparation ")
	require.NoError(t, err)
	assert.Equal(t, "Interview Preparation", r.Title)
	assert.Equal(t, 12, r.DurationWeeks)
	assert.Equal(t, models.LevelIntermediate, r.Level)

	_, err = roadmap.BySlug("nope")
	assert.True(t, errors.IsNotFound(err))
}

func TestByLevel(t *testing.T) {
	mid, err := roadmap.ByLevel(models.LevelIntermediate)
	require.NoError(t, err)
	require.Len(t, mid, 2)
	assert.Equal(t, "interview-preparation", mid[0].Slug)
	assert.Equal(t, "frontend-focused", mid[1].Slug)

	all, err := roadmap.ByLevel(models.LevelAll)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = roadmap.ByLevel("expert")
	assert.True(t, errors.IsValidation(err))
}
