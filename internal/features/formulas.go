package features

import (
	"strings"
)

// Heart rate zone labels, ordered from lightest to hardest.
var hrZoneLabels = []string{"Very Light", "Light", "Moderate", "Hard", "Maximum"}

// Age bucket labels matching the bins (0,25], (25,35], (35,45], (45,55], (55,100].
var ageBucketLabels = []string{"18-25", "26-35", "36-45", "46-55", "55+"}

var ageBucketEdges = []float64{0, 25, 35, 45, 55, 100}

// HeightCm normalizes a height value to centimeters. Values below 3 are
// assumed to be meters.
func HeightCm(height float64) float64 {
	if height < 3 {
		return height * 100
	}
	return height
}

// BMI computes the body mass index from weight in kilograms and height in
// either meters or centimeters (values of 3 and above are treated as cm).
func BMI(weightKg, height float64) float64 {
	m := height
	if m >= 3 {
		m /= 100
	}
	return weightKg / (m * m)
}

// BMR computes the basal metabolic rate using the Mifflin-St Jeor equation.
// Gender is matched by case-insensitive substring: anything containing
// "female" gets the female adjustment, otherwise anything containing "male"
// gets the male adjustment, otherwise no adjustment is applied.
func BMR(weightKg, height, age float64, gender string) float64 {
	bmr := 10*weightKg + 6.25*HeightCm(height) - 5*age
	g := strings.ToLower(gender)
	switch {
	case strings.Contains(g, "female"):
		bmr -= 161
	case strings.Contains(g, "male"):
		bmr += 5
	}
	return bmr
}

// METScore computes the metabolic-equivalent score for an exercise session.
// Intensity is on a 1-10 scale and maps linearly onto 0-8 METs; when no
// intensity is recorded a moderate factor of 5 is assumed.
func METScore(weightKg, durationMin, intensity float64, hasIntensity bool) float64 {
	factor := 5.0
	if hasIntensity {
		factor = intensity / 10 * 8
	}
	return 3.5 * weightKg * (durationMin / 60) * factor
}

// HRPercentage expresses a heart rate as a percentage of the age-predicted
// maximum (220 minus age).
func HRPercentage(heartRate, age float64) float64 {
	return heartRate / (220 - age) * 100
}

// HRZone buckets a heart rate percentage into one of five training zones at
// 60/70/80/90/100 percent. Percentages outside (0, 100] have no zone.
func HRZone(pct float64) (string, bool) {
	edges := []float64{0, 60, 70, 80, 90, 100}
	for i := 1; i < len(edges); i++ {
		if pct > edges[i-1] && pct <= edges[i] {
			return hrZoneLabels[i-1], true
		}
	}
	return "", false
}

// AgeBucket maps an age onto its categorical bucket label. Ages outside
// (0, 100] have no bucket.
func AgeBucket(age float64) (string, bool) {
	for i := 1; i < len(ageBucketEdges); i++ {
		if age > ageBucketEdges[i-1] && age <= ageBucketEdges[i] {
			return ageBucketLabels[i-1], true
		}
	}
	return "", false
}

// IntensityCategory buckets a 1-10 exercise intensity into Low, Medium or
// High at boundaries 3 and 6.
func IntensityCategory(intensity float64) (string, bool) {
	switch {
	case intensity > 0 && intensity <= 3:
		return "Low", true
	case intensity > 3 && intensity <= 6:
		return "Medium", true
	case intensity > 6 && intensity <= 10:
		return "High", true
	default:
		return "", false
	}
}

// containsYes reports whether a textual cell case-insensitively contains "yes".
func containsYes(s string) bool {
	return strings.Contains(strings.ToLower(s), "yes")
}

// matchesAny reports whether the lowercase column name contains any keyword.
func matchesAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
