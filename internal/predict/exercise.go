package predict

import (
	"fmt"

	"github.com/novahealth/riskengine/internal/features"
	"github.com/novahealth/riskengine/internal/models"
)

// IntensityLevel buckets a 1-10 exercise intensity into the coarse level
// reported to clients.
func IntensityLevel(intensity float64) string {
	switch {
	case intensity <= 3:
		return "Low"
	case intensity <= 6:
		return "Medium"
	default:
		return "High"
	}
}

// EstimateExercise produces the exercise calorie estimate for the day. It is
// only available when the user exercised (duration > 0) and the exercise
// artifact loaded; otherwise nil is returned and the assessment simply omits
// the section.
func (m *ModelSet) EstimateExercise(profile *models.UserProfile, feats *features.Record) *models.ExerciseEstimate {
	if m.exercise == nil {
		return nil
	}
	duration := feats.GetOr(features.FeatExerciseDuration, 0)
	if duration <= 0 {
		return nil
	}

	intensity := feats.GetOr(features.FeatExerciseIntensity, 0)
	met := features.METScore(profile.Weight, duration, intensity, intensity > 0)

	return &models.ExerciseEstimate{
		PredictedCalories: met,
		CaloriesPerMinute: met / duration,
		MetScore:          met,
		IntensityLevel:    IntensityLevel(intensity),
		Recommendations: []string{
			fmt.Sprintf("Great job! You burned approximately %.0f calories.", met),
			"Keep maintaining consistent exercise routine.",
			"Consider varying intensity for better results.",
		},
	}
}
