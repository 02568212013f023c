package services

import (
	"math"

	"github.com/vytor/dsaportal/internal/models"
)

// hoursPerProblem is the study-time estimate used for sheets.
const hoursPerProblem = 0.5

// FilterTopicsByDifficulty keeps topics whose level equals level. LevelAll returns topics
// unchanged, including order and length.
func FilterTopicsByDifficulty(topics []models.Topic, level models.TopicLevel) []models.Topic {
	if level == models.LevelAll {
		return topics
	}
	out := make([]models.Topic, 0, len(topics))
	for _, t := range topics {
		if t.Difficulty == level {
			out = append(out, t)
		}
	}
	return out
}

// JoinTopicProblems filters catalog down to the problems topic references. The result
// follows catalog order. References with no catalog entry are dropped and counted.
func JoinTopicProblems(topic models.Topic, catalog []models.Problem) ([]models.Problem, int) {
	wanted := models.NewIDSet(topic.ProblemIDs...).Lookup()

	out := make([]models.Problem, 0, len(wanted))
	found := make(map[string]struct{}, len(wanted))
	for _, p := range catalog {
		if _, ok := wanted[p.ID]; !ok {
			continue
		}
		if _, dup := found[p.ID]; dup {
			continue
		}
		found[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out, len(wanted) - len(found)
}

// ComputeSheetProgress counts the sheet's problems that identity has solved.
// An empty sheet yields 0/0.
func ComputeSheetProgress(sheet models.Sheet, identity models.Identity) models.SheetProgress {
	solved := identity.SolvedProblems.Lookup()
	progress := models.SheetProgress{Total: len(sheet.Problems)}
	for _, p := range sheet.Problems {
		if _, ok := solved[p.ID]; ok {
			progress.Solved++
		}
	}
	return progress
}

// ComputeTopicCompletion returns solved/total per topic id, where total counts only
// references that resolve against the catalog.
func ComputeTopicCompletion(topics []models.Topic, catalog []models.Problem, identity models.Identity) map[string]models.Completion {
	known := make(map[string]struct{}, len(catalog))
	for _, p := range catalog {
		known[p.ID] = struct{}{}
	}
	solved := identity.SolvedProblems.Lookup()

	out := make(map[string]models.Completion, len(topics))
	for _, t := range topics {
		var c models.Completion
		for _, id := range models.NewIDSet(t.ProblemIDs...) {
			if _, ok := known[id]; !ok {
				continue
			}
			c.Total++
			if _, ok := solved[id]; ok {
				c.Solved++
			}
		}
		out[t.ID] = c
	}
	return out
}

// EstimateHours is the rounded-up study time for a sheet.
func EstimateHours(sheet models.Sheet) int {
	return int(math.Ceil(float64(len(sheet.Problems)) * hoursPerProblem))
}

// buildSnapshot derives dashboard stats from already fetched data.
func buildSnapshot(identity models.Identity, profile *models.Profile, topics []models.Topic, catalog []models.Problem) models.ProgressSnapshot {
	snap := models.ProgressSnapshot{
		SolvedCount:        len(identity.SolvedProblems),
		AttemptedCount:     len(identity.AttemptedProblems),
		PerTopicCompletion: ComputeTopicCompletion(topics, catalog, identity),
	}
	if profile != nil {
		snap.StreakDays = profile.Streak
	}
	return snap
}

func recentActivity(profile *models.Profile) models.RecentActivity {
	if profile == nil || profile.RecentActivity == nil {
		return models.RecentActivity{Available: false, Items: []models.Activity{}}
	}
	return models.RecentActivity{Available: true, Items: profile.RecentActivity}
}
