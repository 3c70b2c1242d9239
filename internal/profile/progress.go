package profile

import "sort"

// AnalyzeProgress measures movement from the first recorded weight towards
// targetWeightKg. The direction is inferred from where the target sits
// relative to the starting weight. It returns nil when the history holds no
// weight entries or no target is set, since there is nothing to measure.
func AnalyzeProgress(records []EvolutionRecord, targetWeightKg float64) *GoalProgress {
	if targetWeightKg <= 0 {
		return nil
	}

	ordered := make([]EvolutionRecord, 0, len(records))
	for _, record := range records {
		if record.WeightKg > 0 {
			ordered = append(ordered, record)
		}
	}
	if len(ordered) == 0 {
		return nil
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		di := parseRecordDate(ordered[i].Date)
		dj := parseRecordDate(ordered[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return ordered[i].Seq < ordered[j].Seq
	})

	start := ordered[0].WeightKg
	current := ordered[len(ordered)-1].WeightKg

	total := start - targetWeightKg
	progressed := start - current
	if targetWeightKg > start {
		total = targetWeightKg - start
		progressed = current - start
	}

	percent := 0.0
	if total > 0 {
		percent = progressed / total * 100
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
	}

	remaining := total - progressed
	if remaining < 0 {
		remaining = 0
	}

	return &GoalProgress{
		StartWeightKg:   start,
		CurrentWeightKg: current,
		TargetWeightKg:  targetWeightKg,
		TotalKg:         total,
		ProgressedKg:    progressed,
		RemainingKg:     remaining,
		Percent:         percent,
	}
}
