package metrics

import (
	"errors"
	"fmt"
)

// Intensity is the perceived effort of a training session.
type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityIntense  Intensity = "intense"
)

// ErrUnknownIntensity indicates a broken intensity reference. Unlike absent
// user data this is a configuration fault and is surfaced to the caller.
var ErrUnknownIntensity = errors.New("unknown training intensity")

// strengthFactors holds the empirical constants of the strength-training
// estimate. They are calibration data, not physiology; do not re-derive them.
type strengthFactors struct {
	loadFactor    float64
	baseIntensity float64
	multiplier    float64
}

//nolint:gochecknoglobals // fixed calibration tables.
var (
	cardioMET = map[Intensity]float64{
		IntensityLight:    3,
		IntensityModerate: 4.5,
		IntensityIntense:  6,
	}
	strengthTable = map[Intensity]strengthFactors{
		IntensityLight:    {loadFactor: 0.025, baseIntensity: 2.5, multiplier: 1.05},
		IntensityModerate: {loadFactor: 0.035, baseIntensity: 4, multiplier: 1.1},
		IntensityIntense:  {loadFactor: 0.045, baseIntensity: 6, multiplier: 1.15},
	}
)

// EstimateExpenditure estimates the calories burned by a training session.
//
// Cardio sessions use MET x body weight x hours. Strength sessions use an
// empirical blend of total lifted load and duration. An unknown intensity
// returns ErrUnknownIntensity instead of silently defaulting.
func EstimateExpenditure(
	cardio bool,
	intensity Intensity,
	durationMin int,
	totalLoadKg float64,
	bodyWeightKg float64,
) (float64, error) {
	if cardio {
		met, ok := cardioMET[intensity]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownIntensity, intensity)
		}
		return met * bodyWeightKg * float64(durationMin) / 60, nil
	}

	factors, ok := strengthTable[intensity]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownIntensity, intensity)
	}
	return totalLoadKg*factors.loadFactor + float64(durationMin)*factors.baseIntensity*factors.multiplier, nil
}
