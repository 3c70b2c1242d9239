package metrics

// Category is a body-composition classification bucket.
type Category string

const (
	CategoryLow       Category = "Low"
	CategoryNormal    Category = "Normal"
	CategoryHigh      Category = "High"
	CategoryVeryHigh  Category = "Very High"
	CategoryExcellent Category = "Excellent"
)

// Classification buckets each composition measurement.
type Classification struct {
	BodyFat  Category
	Visceral Category
	Muscle   Category
}

// fatBand is the healthy body-fat range for an age band.
type fatBand struct {
	minAge, maxAge int
	min, max       float64
}

// Healthy body-fat ranges per sex and age band. The 55-64 rows are
// interpolated to cover the gap in the published table.
//
//nolint:gochecknoglobals // fixed reference tables.
var (
	maleFatBands = []fatBand{
		{15, 24, 13.2, 18.6},
		{25, 34, 15.3, 21.8},
		{35, 44, 16.2, 23.1},
		{45, 54, 16.6, 23.7},
		{55, 64, 18.3, 25.6},
		{65, 74, 19.9, 27.5},
	}
	femaleFatBands = []fatBand{
		{15, 24, 23.0, 29.6},
		{25, 34, 22.9, 29.7},
		{35, 44, 22.8, 29.8},
		{45, 54, 23.4, 31.9},
		{55, 64, 27.5, 35.8},
		{65, 74, 31.5, 39.8},
	}
)

// HealthyFatRange returns the [min, max] healthy body-fat percentage for the
// given sex and age. Ages outside the published bands fall back to a broad
// default range.
func HealthyFatRange(sex Sex, age int) (float64, float64) {
	bands := femaleFatBands
	if sex == SexMale {
		bands = maleFatBands
	}
	for _, band := range bands {
		if band.minAge <= age && age <= band.maxAge {
			return band.min, band.max
		}
	}
	if sex == SexMale {
		return 15, 22
	}
	return 22, 30
}

// ClassifyComposition buckets body-fat percentage, visceral-fat level, and
// muscle percentage. It is total: every finite input, including zero and
// negative values, maps to a defined category (values below the lowest band
// classify as the lowest category).
func ClassifyComposition(bodyFatPct, visceralLevel, musclePct float64, sex Sex, age int) Classification {
	return Classification{
		BodyFat:  classifyBodyFat(bodyFatPct, sex, age),
		Visceral: classifyVisceral(visceralLevel),
		Muscle:   classifyMuscle(musclePct, sex),
	}
}

func classifyBodyFat(bodyFatPct float64, sex Sex, age int) Category {
	low, high := HealthyFatRange(sex, age)
	switch {
	case bodyFatPct < low:
		return CategoryLow
	case bodyFatPct <= high:
		return CategoryNormal
	case bodyFatPct <= high*1.2:
		return CategoryHigh
	default:
		return CategoryVeryHigh
	}
}

func classifyVisceral(level float64) Category {
	switch {
	case level < 10:
		return CategoryNormal
	case level <= 15:
		return CategoryHigh
	default:
		return CategoryVeryHigh
	}
}

func classifyMuscle(musclePct float64, sex Sex) Category {
	normalMin, excellentMin := 24.0, 30.0
	if sex == SexMale {
		normalMin, excellentMin = 34.0, 40.0
	}
	switch {
	case musclePct < normalMin:
		return CategoryLow
	case musclePct < excellentMin:
		return CategoryNormal
	default:
		return CategoryExcellent
	}
}
