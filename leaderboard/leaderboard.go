// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package leaderboard derives display orderings from the candidate list.
// Nothing computed here is written back to the store.
package leaderboard

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/danielhkuo/queen-house/models"
)

// Boost is subtracted from the ranking of the browser's own daily pick.
const Boost = 1.5

// Rank orders PRESENT candidates by ranking, ascending, after moving the
// candidate votedID up by Boost. Ties keep their original order. votedID
// may be empty.
func Rank(candidates []models.Candidate, votedID string) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(candidates))
	for _, c := range candidates {
		if c.Status != models.StatusPresent {
			continue
		}

		derived := float64(c.RankingOrDefault())
		isVote := votedID != "" && c.ID == votedID
		if isVote {
			derived -= Boost
		}

		entries = append(entries, models.LeaderboardEntry{
			DerivedRanking: derived,
			IsUserVote:     isVote,
			Candidate:      c.Clone(),
		})
	}

	slices.SortStableFunc(entries, func(a, b models.LeaderboardEntry) int {
		switch {
		case a.DerivedRanking < b.DerivedRanking:
			return -1
		case a.DerivedRanking > b.DerivedRanking:
			return 1
		}
		return 0
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Roster lists PRESENT candidates first, then everyone else, keeping the
// original order within each group.
func Roster(candidates []models.Candidate) []models.Candidate {
	out := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Status == models.StatusPresent {
			out = append(out, c.Clone())
		}
	}
	return append(out, Past(candidates)...)
}

// Past returns candidates that are no longer in the house.
func Past(candidates []models.Candidate) []models.Candidate {
	out := []models.Candidate{}
	for _, c := range candidates {
		if c.Status == models.StatusEliminated || c.Status == models.StatusLeft {
			out = append(out, c.Clone())
		}
	}
	return out
}

// Search keeps the items whose name contains query, ignoring case. An empty
// query keeps everything.
func Search[T any](items []T, query string, name func(T) string) []T {
	if query == "" {
		return items
	}

	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(fold.String(name(item)), needle) {
			out = append(out, item)
		}
	}
	return out
}

func CandidateName(c models.Candidate) string { return c.Name }

func EntryName(e models.LeaderboardEntry) string { return e.Candidate.Name }
