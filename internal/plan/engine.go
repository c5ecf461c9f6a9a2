// Package plan turns composite scores and optional hardware cost into
// ranked capacity-planning recommendations for a workload.
package plan

import (
	"errors"
	"fmt"
	"sort"

	"github.com/perfkit/hwbench/internal/models"
	"github.com/perfkit/hwbench/internal/workload"
)

// ErrIncompleteCostData is returned when cost is supplied for some
// systems but not others. Cost-based ranking needs a price for every
// system or none.
var ErrIncompleteCostData = errors.New("cost supplied for some systems but not all")

// Input is one system's contribution to a capacity plan.
type Input struct {
	SystemID   string
	Categories map[models.Component]models.CategoryScore
	Composite  models.CompositeScore
	Cost       *float64
}

// Engine computes capacity-planning recommendations for one workload
// profile. It holds no mutable state; a single Engine may be shared
// across goroutines.
type Engine struct {
	profile models.WorkloadProfile
}

// NewEngine creates a planning engine for the given workload profile.
func NewEngine(profile models.WorkloadProfile) *Engine {
	return &Engine{profile: profile}
}

// Plan ranks the given systems for the engine's workload. When every
// system has a cost, ranking is by performance per cost unit
// (composite / cost, descending). When no system has a cost, ranking is
// by composite score and the cost-based fields stay unset.
func (e *Engine) Plan(systems []Input) (*models.CapacityPlan, error) {
	if len(systems) == 0 {
		return nil, fmt.Errorf("capacity plan needs at least one system")
	}

	withCost := 0
	for _, s := range systems {
		if s.Cost != nil {
			if *s.Cost <= 0 {
				return nil, fmt.Errorf("system %q: cost must be positive, got %.2f", s.SystemID, *s.Cost)
			}
			withCost++
		}
	}
	if withCost != 0 && withCost != len(systems) {
		return nil, fmt.Errorf("%w: %d of %d systems have a cost", ErrIncompleteCostData, withCost, len(systems))
	}
	costRanked := withCost == len(systems)

	recs := make([]models.CapacityRecommendation, 0, len(systems))
	for _, s := range systems {
		rec := models.CapacityRecommendation{
			SystemID:          s.SystemID,
			Workload:          e.profile.Name,
			CompositeScore:    s.Composite.Score,
			MeetsRequirements: workload.MeetsRequirements(s.Categories, e.profile),
		}
		if costRanked {
			cost := *s.Cost
			ppc := s.Composite.Score / cost
			rec.Cost = &cost
			rec.PerfPerCost = &ppc
		}
		recs = append(recs, rec)
	}

	sort.Slice(recs, func(i, j int) bool {
		a, b := rankKey(recs[i], costRanked), rankKey(recs[j], costRanked)
		if a != b {
			return a > b
		}
		return recs[i].SystemID < recs[j].SystemID
	})
	for i := range recs {
		recs[i].Rank = i + 1
	}

	p := &models.CapacityPlan{
		Workload:        e.profile.Name,
		CostRanked:      costRanked,
		Recommendations: recs,
		BestPerformance: bestPerformance(recs),
	}
	if costRanked {
		p.BestValue = recs[0].SystemID
	}
	return p, nil
}

func rankKey(r models.CapacityRecommendation, costRanked bool) float64 {
	if costRanked {
		return *r.PerfPerCost
	}
	return r.CompositeScore
}

// bestPerformance returns the system with the highest composite score
// regardless of cost, ties broken by system id.
func bestPerformance(recs []models.CapacityRecommendation) string {
	best := recs[0]
	for _, r := range recs[1:] {
		if r.CompositeScore > best.CompositeScore ||
			(r.CompositeScore == best.CompositeScore && r.SystemID < best.SystemID) {
			best = r
		}
	}
	return best.SystemID
}
