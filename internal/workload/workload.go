// Package workload holds the named workload profiles and computes
// workload-weighted composite scores from category scores.
package workload

import (
	"sort"

	"github.com/perfkit/hwbench/internal/models"
)

// Built-in profile names.
const (
	WebServer        = "web_server"
	Database         = "database"
	FileServer       = "file_server"
	ComputeIntensive = "compute_intensive"
	GeneralPurpose   = "general_purpose"
)

// builtins are the stock workload profiles. Weight vectors sum to 1.0;
// MinScores are the per-category minimums a system should meet to
// qualify for the workload.
var builtins = map[string]models.WorkloadProfile{
	WebServer: {
		Name: WebServer,
		Weights: map[models.Component]float64{
			models.ComponentCPU:     0.35,
			models.ComponentMemory:  0.30,
			models.ComponentDisk:    0.20,
			models.ComponentNetwork: 0.15,
		},
		MinScores: map[models.Component]float64{
			models.ComponentCPU:     60,
			models.ComponentMemory:  50,
			models.ComponentDisk:    40,
			models.ComponentNetwork: 50,
		},
	},
	Database: {
		Name: Database,
		Weights: map[models.Component]float64{
			models.ComponentCPU:     0.30,
			models.ComponentMemory:  0.35,
			models.ComponentDisk:    0.30,
			models.ComponentNetwork: 0.05,
		},
		MinScores: map[models.Component]float64{
			models.ComponentCPU:     70,
			models.ComponentMemory:  80,
			models.ComponentDisk:    75,
			models.ComponentNetwork: 30,
		},
	},
	FileServer: {
		Name: FileServer,
		Weights: map[models.Component]float64{
			models.ComponentCPU:     0.15,
			models.ComponentMemory:  0.20,
			models.ComponentDisk:    0.50,
			models.ComponentNetwork: 0.15,
		},
		MinScores: map[models.Component]float64{
			models.ComponentCPU:     40,
			models.ComponentMemory:  50,
			models.ComponentDisk:    80,
			models.ComponentNetwork: 60,
		},
	},
	ComputeIntensive: {
		Name: ComputeIntensive,
		Weights: map[models.Component]float64{
			models.ComponentCPU:     0.60,
			models.ComponentMemory:  0.25,
			models.ComponentDisk:    0.10,
			models.ComponentNetwork: 0.05,
		},
		MinScores: map[models.Component]float64{
			models.ComponentCPU:     85,
			models.ComponentMemory:  70,
			models.ComponentDisk:    40,
			models.ComponentNetwork: 30,
		},
	},
	GeneralPurpose: {
		Name: GeneralPurpose,
		Weights: map[models.Component]float64{
			models.ComponentCPU:     0.30,
			models.ComponentMemory:  0.25,
			models.ComponentDisk:    0.25,
			models.ComponentNetwork: 0.20,
		},
		MinScores: map[models.Component]float64{
			models.ComponentCPU:     60,
			models.ComponentMemory:  60,
			models.ComponentDisk:    60,
			models.ComponentNetwork: 50,
		},
	},
}

// Profile returns a built-in profile by name. The returned profile is a
// copy; mutating it does not affect the built-in table.
func Profile(name string) (models.WorkloadProfile, bool) {
	p, ok := builtins[name]
	if !ok {
		return models.WorkloadProfile{}, false
	}
	return clone(p), true
}

// BuiltinProfiles returns copies of all built-in profiles sorted by name.
func BuiltinProfiles() []models.WorkloadProfile {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	profiles := make([]models.WorkloadProfile, 0, len(names))
	for _, name := range names {
		profiles = append(profiles, clone(builtins[name]))
	}
	return profiles
}

// Compose computes the workload-weighted composite score from a
// system's category scores.
//
// A component present in the profile but absent from the input
// contributes 0; the remaining weights are not renormalized, so the
// composite reflects unbenchmarked coverage.
func Compose(categoryScores map[models.Component]models.CategoryScore, profile models.WorkloadProfile) models.CompositeScore {
	systemID := ""
	total := 0.0
	for component, weight := range profile.Weights {
		cs, ok := categoryScores[component]
		if !ok {
			continue
		}
		systemID = cs.SystemID
		total += weight * cs.Score
	}
	return models.CompositeScore{
		SystemID: systemID,
		Workload: profile.Name,
		Score:    total,
	}
}

// MeetsRequirements reports whether every category score reaches the
// profile's minimum for that component. Components without a configured
// minimum always pass; a component with a minimum but no score fails,
// since a requirement cannot be met by not measuring it.
func MeetsRequirements(categoryScores map[models.Component]models.CategoryScore, profile models.WorkloadProfile) bool {
	for component, minScore := range profile.MinScores {
		cs, ok := categoryScores[component]
		if !ok || cs.Score < minScore {
			return false
		}
	}
	return true
}

func clone(p models.WorkloadProfile) models.WorkloadProfile {
	out := models.WorkloadProfile{Name: p.Name}
	if p.Weights != nil {
		out.Weights = make(map[models.Component]float64, len(p.Weights))
		for c, w := range p.Weights {
			out.Weights[c] = w
		}
	}
	if p.MinScores != nil {
		out.MinScores = make(map[models.Component]float64, len(p.MinScores))
		for c, m := range p.MinScores {
			out.MinScores[c] = m
		}
	}
	return out
}
