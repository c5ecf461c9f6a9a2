package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfkit/hwbench/internal/models"
)

func category(id string, c models.Component, score float64) models.CategoryScore {
	return models.CategoryScore{SystemID: id, Component: c, Score: score}
}

func TestBuiltinProfiles_WeightsSumToOne(t *testing.T) {
	profiles := BuiltinProfiles()
	require.Len(t, profiles, 5)

	for _, p := range profiles {
		sum := 0.0
		for _, w := range p.Weights {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "profile %s", p.Name)
		require.NoError(t, p.Validate())
	}
}

func TestProfile(t *testing.T) {
	p, ok := Profile(Database)
	require.True(t, ok)
	assert.Equal(t, 0.35, p.Weights[models.ComponentMemory])
	assert.Equal(t, 80.0, p.MinScores[models.ComponentMemory])

	_, ok = Profile("video_editing")
	assert.False(t, ok)
}

func TestProfile_ReturnsCopy(t *testing.T) {
	p, ok := Profile(WebServer)
	require.True(t, ok)
	p.Weights[models.ComponentCPU] = 0.99

	again, ok := Profile(WebServer)
	require.True(t, ok)
	assert.Equal(t, 0.35, again.Weights[models.ComponentCPU])
}

func TestCompose(t *testing.T) {
	profile := models.WorkloadProfile{
		Name: "cpu_mem",
		Weights: map[models.Component]float64{
			models.ComponentCPU:    0.7,
			models.ComponentMemory: 0.3,
		},
	}

	a := map[models.Component]models.CategoryScore{
		models.ComponentCPU:    category("node-a", models.ComponentCPU, 80),
		models.ComponentMemory: category("node-a", models.ComponentMemory, 60),
	}
	b := map[models.Component]models.CategoryScore{
		models.ComponentCPU:    category("node-b", models.ComponentCPU, 60),
		models.ComponentMemory: category("node-b", models.ComponentMemory, 80),
	}

	compA := Compose(a, profile)
	assert.Equal(t, "node-a", compA.SystemID)
	assert.Equal(t, "cpu_mem", compA.Workload)
	assert.InDelta(t, 74.0, compA.Score, 1e-9)

	compB := Compose(b, profile)
	assert.InDelta(t, 66.0, compB.Score, 1e-9)
}

func TestCompose_AbsentCategoryContributesZero(t *testing.T) {
	profile := models.WorkloadProfile{
		Name: "cpu_mem",
		Weights: map[models.Component]float64{
			models.ComponentCPU:    0.7,
			models.ComponentMemory: 0.3,
		},
	}

	// Memory never benchmarked: composite is 0.7*80, not renormalized to 80.
	scores := map[models.Component]models.CategoryScore{
		models.ComponentCPU: category("node-a", models.ComponentCPU, 80),
	}
	comp := Compose(scores, profile)
	assert.InDelta(t, 56.0, comp.Score, 1e-9)
}

func TestCompose_Empty(t *testing.T) {
	profile, ok := Profile(GeneralPurpose)
	require.True(t, ok)

	comp := Compose(nil, profile)
	assert.Equal(t, 0.0, comp.Score)
	assert.Equal(t, GeneralPurpose, comp.Workload)
}

func TestMeetsRequirements(t *testing.T) {
	profile := models.WorkloadProfile{
		Name:    "strict",
		Weights: map[models.Component]float64{models.ComponentCPU: 1.0},
		MinScores: map[models.Component]float64{
			models.ComponentCPU:  70,
			models.ComponentDisk: 50,
		},
	}

	tests := []struct {
		name   string
		scores map[models.Component]models.CategoryScore
		want   bool
	}{
		{
			"all_meet",
			map[models.Component]models.CategoryScore{
				models.ComponentCPU:  category("a", models.ComponentCPU, 75),
				models.ComponentDisk: category("a", models.ComponentDisk, 55),
			},
			true,
		},
		{
			"exactly_at_minimum",
			map[models.Component]models.CategoryScore{
				models.ComponentCPU:  category("a", models.ComponentCPU, 70),
				models.ComponentDisk: category("a", models.ComponentDisk, 50),
			},
			true,
		},
		{
			"one_below",
			map[models.Component]models.CategoryScore{
				models.ComponentCPU:  category("a", models.ComponentCPU, 69),
				models.ComponentDisk: category("a", models.ComponentDisk, 55),
			},
			false,
		},
		{
			"required_component_missing",
			map[models.Component]models.CategoryScore{
				models.ComponentCPU: category("a", models.ComponentCPU, 90),
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MeetsRequirements(tt.scores, profile))
		})
	}
}

func TestWorkloadProfileValidate_Normalizes(t *testing.T) {
	p := models.WorkloadProfile{
		Name: "lopsided",
		Weights: map[models.Component]float64{
			models.ComponentCPU:  3,
			models.ComponentDisk: 1,
		},
	}
	require.NoError(t, p.Validate())
	assert.InDelta(t, 0.75, p.Weights[models.ComponentCPU], 1e-9)
	assert.InDelta(t, 0.25, p.Weights[models.ComponentDisk], 1e-9)
}

func TestWorkloadProfileValidate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		profile models.WorkloadProfile
	}{
		{"no_weights", models.WorkloadProfile{Name: "empty"}},
		{"negative_weight", models.WorkloadProfile{
			Name:    "neg",
			Weights: map[models.Component]float64{models.ComponentCPU: -0.5, models.ComponentDisk: 1.5},
		}},
		{"zero_sum", models.WorkloadProfile{
			Name:    "zeros",
			Weights: map[models.Component]float64{models.ComponentCPU: 0, models.ComponentDisk: 0},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.profile.Validate())
		})
	}
}
