// Package compare ranks N systems' category and composite scores,
// designates winners, and computes relative deltas against the best
// performer.
package compare

import (
	"errors"
	"fmt"
	"sort"

	"github.com/perfkit/hwbench/internal/models"
)

// ErrInsufficientSystems is returned when fewer than 2 systems are
// given. A single-system "comparison" would produce a meaningless 0%
// delta dressed up as a real result, so it is rejected outright.
var ErrInsufficientSystems = errors.New("comparison requires at least 2 systems")

// SystemScores is the comparator's per-system input: the category
// scores that were benchmarked plus one composite under the workload
// being compared.
type SystemScores struct {
	SystemID   string
	Categories map[models.Component]models.CategoryScore
	Composite  models.CompositeScore
}

// Compare ranks the given systems per category and overall. Within each
// ranking, systems sort descending by score with ties broken by system
// id so output is deterministic. The top entry is the winner; every
// other entry's delta is (winner − entry) / winner × 100, or 0 when the
// winner scored 0.
//
// Categories are ranked only among systems that benchmarked them; a
// missing category means "not benchmarked", not a score of 0.
func Compare(systems []SystemScores) (*models.ComparisonResult, error) {
	if len(systems) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientSystems, len(systems))
	}

	result := &models.ComparisonResult{
		Workload: systems[0].Composite.Workload,
	}
	for _, s := range systems {
		result.Systems = append(result.Systems, s.SystemID)
	}

	for _, component := range models.Components() {
		var entries []models.RankedScore
		for _, s := range systems {
			cs, ok := s.Categories[component]
			if !ok {
				continue
			}
			entries = append(entries, models.RankedScore{SystemID: s.SystemID, Score: cs.Score})
		}
		if len(entries) == 0 {
			continue
		}
		rank(entries)
		result.Categories = append(result.Categories, models.CategoryRanking{
			Component: component,
			Winner:    entries[0].SystemID,
			Entries:   entries,
		})
	}

	overall := make([]models.RankedScore, 0, len(systems))
	for _, s := range systems {
		overall = append(overall, models.RankedScore{SystemID: s.SystemID, Score: s.Composite.Score})
	}
	rank(overall)
	result.Overall = overall
	result.OverallWinner = overall[0].SystemID

	return result, nil
}

// rank sorts entries descending by score (ties by system id), assigns
// 1-based ranks, and fills in deltas against the winner.
func rank(entries []models.RankedScore) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].SystemID < entries[j].SystemID
	})

	winner := entries[0].Score
	for i := range entries {
		entries[i].Rank = i + 1
		if i > 0 && winner != 0 {
			entries[i].DeltaPercent = (winner - entries[i].Score) / winner * 100
		}
	}
}
