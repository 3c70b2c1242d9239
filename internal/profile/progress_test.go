package profile_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/planfit/internal/profile"
)

func TestAnalyzeProgress(t *testing.T) {
	tests := []struct {
		name    string
		records []profile.EvolutionRecord
		target  float64
		want    *profile.GoalProgress
	}{
		{
			name:    "no history",
			records: nil,
			target:  75,
			want:    nil,
		},
		{
			name: "no target",
			records: []profile.EvolutionRecord{
				{Seq: 1, Date: "01/01/2026", WeightKg: 80},
			},
			target: 0,
			want:   nil,
		},
		{
			name: "weight loss halfway",
			records: []profile.EvolutionRecord{
				{Seq: 1, Date: "01/01/2026", WeightKg: 80},
				{Seq: 2, Date: "01/02/2026", WeightKg: 77.5},
			},
			target: 75,
			want: &profile.GoalProgress{
				StartWeightKg:   80,
				CurrentWeightKg: 77.5,
				TargetWeightKg:  75,
				TotalKg:         5,
				ProgressedKg:    2.5,
				RemainingKg:     2.5,
				Percent:         50,
			},
		},
		{
			name: "weight gain direction inferred from target",
			records: []profile.EvolutionRecord{
				{Seq: 1, Date: "01/01/2026", WeightKg: 60},
				{Seq: 2, Date: "01/03/2026", WeightKg: 63},
			},
			target: 65,
			want: &profile.GoalProgress{
				StartWeightKg:   60,
				CurrentWeightKg: 63,
				TargetWeightKg:  65,
				TotalKg:         5,
				ProgressedKg:    3,
				RemainingKg:     2,
				Percent:         60,
			},
		},
		{
			name: "regression clamps to zero percent",
			records: []profile.EvolutionRecord{
				{Seq: 1, Date: "01/01/2026", WeightKg: 80},
				{Seq: 2, Date: "01/02/2026", WeightKg: 82},
			},
			target: 75,
			want: &profile.GoalProgress{
				StartWeightKg:   80,
				CurrentWeightKg: 82,
				TargetWeightKg:  75,
				TotalKg:         5,
				ProgressedKg:    -2,
				RemainingKg:     7,
				Percent:         0,
			},
		},
		{
			name: "overshoot clamps to hundred percent",
			records: []profile.EvolutionRecord{
				{Seq: 1, Date: "01/01/2026", WeightKg: 80},
				{Seq: 2, Date: "01/04/2026", WeightKg: 74},
			},
			target: 75,
			want: &profile.GoalProgress{
				StartWeightKg:   80,
				CurrentWeightKg: 74,
				TargetWeightKg:  75,
				TotalKg:         5,
				ProgressedKg:    6,
				RemainingKg:     0,
				Percent:         100,
			},
		},
		{
			name: "zero-weight records are skipped",
			records: []profile.EvolutionRecord{
				{Seq: 1, Date: "01/01/2026", WeightKg: 0, BodyFatPct: 20},
				{Seq: 2, Date: "02/01/2026", WeightKg: 80},
			},
			target: 75,
			want: &profile.GoalProgress{
				StartWeightKg:   80,
				CurrentWeightKg: 80,
				TargetWeightKg:  75,
				TotalKg:         5,
				ProgressedKg:    0,
				RemainingKg:     5,
				Percent:         0,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := profile.AnalyzeProgress(tt.records, tt.target)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AnalyzeProgress mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
