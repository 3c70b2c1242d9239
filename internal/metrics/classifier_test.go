package metrics_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/planfit/internal/metrics"
)

func TestClassifyComposition(t *testing.T) {
	tests := []struct {
		name     string
		fat      float64
		visceral float64
		muscle   float64
		sex      metrics.Sex
		age      int
		want     metrics.Classification
	}{
		{
			name: "male 30 in range",
			fat:  18, visceral: 8, muscle: 42,
			sex: metrics.SexMale, age: 30,
			want: metrics.Classification{
				BodyFat:  metrics.CategoryNormal,
				Visceral: metrics.CategoryNormal,
				Muscle:   metrics.CategoryExcellent,
			},
		},
		{
			name: "male 30 below fat band",
			fat:  10, visceral: 12, muscle: 36,
			sex: metrics.SexMale, age: 30,
			want: metrics.Classification{
				BodyFat:  metrics.CategoryLow,
				Visceral: metrics.CategoryHigh,
				Muscle:   metrics.CategoryNormal,
			},
		},
		{
			name: "male 30 slightly over band",
			// Upper band for 25-34 males is 21.8; 25 is within 1.2x.
			fat: 25, visceral: 16, muscle: 30,
			sex: metrics.SexMale, age: 30,
			want: metrics.Classification{
				BodyFat:  metrics.CategoryHigh,
				Visceral: metrics.CategoryVeryHigh,
				Muscle:   metrics.CategoryLow,
			},
		},
		{
			name: "female 50 far over band",
			// Upper band for 45-54 females is 31.9; 40 exceeds 1.2x.
			fat: 40, visceral: 10, muscle: 27,
			sex: metrics.SexFemale, age: 50,
			want: metrics.Classification{
				BodyFat:  metrics.CategoryVeryHigh,
				Visceral: metrics.CategoryHigh,
				Muscle:   metrics.CategoryNormal,
			},
		},
		{
			name: "female 70 senior band",
			fat:  35, visceral: 9, muscle: 31,
			sex: metrics.SexFemale, age: 70,
			want: metrics.Classification{
				BodyFat:  metrics.CategoryNormal,
				Visceral: metrics.CategoryNormal,
				Muscle:   metrics.CategoryExcellent,
			},
		},
		{
			name: "age outside published bands falls back",
			// Fallback male range is 15-22.
			fat: 18, visceral: 5, muscle: 35,
			sex: metrics.SexMale, age: 80,
			want: metrics.Classification{
				BodyFat:  metrics.CategoryNormal,
				Visceral: metrics.CategoryNormal,
				Muscle:   metrics.CategoryNormal,
			},
		},
		{
			name: "zeroed measurements still classify",
			fat:  0, visceral: 0, muscle: 0,
			sex: metrics.SexFemale, age: 25,
			want: metrics.Classification{
				BodyFat:  metrics.CategoryLow,
				Visceral: metrics.CategoryNormal,
				Muscle:   metrics.CategoryLow,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := metrics.ClassifyComposition(tt.fat, tt.visceral, tt.muscle, tt.sex, tt.age)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ClassifyComposition mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHealthyFatRangeBandBoundaries(t *testing.T) {
	// Consecutive bands share no gap: every age from 15 to 74 resolves to a
	// published band, not the fallback.
	for age := 15; age <= 74; age++ {
		low, high := metrics.HealthyFatRange(metrics.SexMale, age)
		if low == 15 && high == 22 {
			t.Errorf("male age %d resolved to the fallback range", age)
		}
		low, high = metrics.HealthyFatRange(metrics.SexFemale, age)
		if low == 22 && high == 30 {
			t.Errorf("female age %d resolved to the fallback range", age)
		}
	}
}
