package profile

import (
	"sort"
	"time"

	"github.com/myrjola/planfit/internal/metrics"
)

// MergeLatest collapses the evolution history into the freshest non-zero
// value per measurement. Each field is resolved independently: the newest
// record by date wins, with the insertion sequence breaking same-day ties.
// Records with unparseable dates sort oldest.
func MergeLatest(records []EvolutionRecord) MergedMeasurements {
	ordered := make([]EvolutionRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		di := parseRecordDate(ordered[i].Date)
		dj := parseRecordDate(ordered[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return ordered[i].Seq > ordered[j].Seq
	})

	var merged MergedMeasurements
	for _, record := range ordered {
		if merged.WeightKg == 0 {
			merged.WeightKg = record.WeightKg
		}
		if merged.BodyFatPct == 0 {
			merged.BodyFatPct = record.BodyFatPct
		}
		if merged.VisceralLevel == 0 {
			merged.VisceralLevel = record.VisceralLevel
		}
		if merged.MusclePct == 0 {
			merged.MusclePct = record.MusclePct
		}
	}
	return merged
}

func parseRecordDate(date string) time.Time {
	t, err := time.Parse(metrics.DateFormat, date)
	if err != nil {
		return time.Time{}
	}
	return t
}
