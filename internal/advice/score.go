package advice

import (
	"github.com/novahealth/riskengine/internal/features"
)

// OverallRiskScore combines the obesity classification and lifestyle features
// into a 0-100 risk score: a baseline of 50 plus fixed additive penalties,
// clamped to the valid range.
func OverallRiskScore(obesityLevel string, feats *features.Record) float64 {
	score := 50.0

	switch obesityLevel {
	case "Obesity_Type_II", "Obesity_Type_III":
		score += 30
	case "Obesity_Type_I", "Overweight_Level_II":
		score += 15
	case "Overweight_Level_I":
		score += 5
	case "Insufficient_Weight":
		score += 10
	}

	if feats.GetOr(features.FeatSymptomCount, 0) > 3 {
		score += 10
	}
	if feats.GetOr(features.FeatExerciseDuration, 0) < 20 {
		score += 10
	}
	if feats.GetOr(features.FeatDailyWaterMl, 0) < 1500 {
		score += 5
	}
	if feats.GetOr(features.FeatSleepHours, 7) < 6 {
		score += 10
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
