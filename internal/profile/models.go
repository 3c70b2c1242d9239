package profile

import "github.com/myrjola/planfit/internal/metrics"

// Profile is the current biometric state of a user. Zero values for the
// composition fields mean the measurement has never been recorded.
type Profile struct {
	Sex           metrics.Sex
	Age           int
	HeightM       float64
	WeightKg      float64
	BodyFatPct    float64
	VisceralLevel float64
	MusclePct     float64
}

// Goal is the single active weight goal of a user.
type Goal struct {
	StartDate      string // metrics.DateFormat
	Activity       metrics.ActivityLevel
	Environment    metrics.Environment
	Direction      metrics.GoalDirection
	TargetWeightKg float64
	DietFactor     float64
}

// EvolutionRecord is one measurement session in the append-only history.
// Zero values mean "not measured that day", never an actual reading of zero.
// The circumference fields are optional and nil when not taken.
type EvolutionRecord struct {
	Seq           int
	Date          string // metrics.DateFormat
	WeightKg      float64
	BodyFatPct    float64
	VisceralLevel float64
	MusclePct     float64
	WaistCm       *float64
	HipCm         *float64
	ArmCm         *float64
	ThighCm       *float64
}

// MergedMeasurements is the per-field freshest view over the evolution
// history. A zero field means the measurement was never recorded at all.
type MergedMeasurements struct {
	WeightKg      float64
	BodyFatPct    float64
	VisceralLevel float64
	MusclePct     float64
}

// GoalProgress summarises movement from the first recorded weight towards
// the goal weight.
type GoalProgress struct {
	StartWeightKg   float64
	CurrentWeightKg float64
	TargetWeightKg  float64
	TotalKg         float64
	ProgressedKg    float64
	RemainingKg     float64
	Percent         float64
}
