package advice

import (
	"fmt"
	"strings"

	"github.com/novahealth/riskengine/internal/features"
	"github.com/novahealth/riskengine/internal/models"
)

// KeyInsights summarizes the assessment as short human-readable lines: BMI
// and overall score first, then symptom, exercise, hydration and mood status.
func KeyInsights(obesity *models.ObesityRisk, riskScore float64, feats *features.Record) []string {
	insights := []string{
		fmt.Sprintf("Your BMI is %.1f (%s)", obesity.BMI, strings.ReplaceAll(obesity.RiskLevel, "_", " ")),
		fmt.Sprintf("Overall health risk score: %.0f/100", riskScore),
	}

	symptomCount := feats.GetOr(features.FeatSymptomCount, 0)
	if symptomCount > 0 {
		avg := feats.GetOr(features.FeatAvgSymptomSeverity, 0)
		max := feats.GetOr(features.FeatMaxSymptomSeverity, 0)
		insights = append(insights, fmt.Sprintf("%.0f symptom(s) logged - Avg severity: %.1f/10, Max: %.0f/10", symptomCount, avg, max))
	} else {
		insights = append(insights, "No symptoms logged recently")
	}

	exercise := feats.GetOr(features.FeatExerciseDuration, 0)
	if exercise > 30 {
		insights = append(insights, fmt.Sprintf("Good exercise routine: %.0f min/day", exercise))
	} else {
		insights = append(insights, fmt.Sprintf("Low exercise: %.0f min/day", exercise))
	}

	water := feats.GetOr(features.FeatDailyWaterMl, 0)
	if water >= 2000 {
		insights = append(insights, fmt.Sprintf("Adequate hydration: %.0fml/day", water))
	} else {
		insights = append(insights, fmt.Sprintf("Low hydration: %.0fml/day", water))
	}

	mood := feats.GetOr(features.FeatAvgMoodIntensity, 0)
	if mood >= 6 {
		insights = append(insights, fmt.Sprintf("Good mood levels: %.1f/10", mood))
	} else if mood > 0 {
		insights = append(insights, fmt.Sprintf("Lower mood scores: %.1f/10", mood))
	}

	return insights
}
