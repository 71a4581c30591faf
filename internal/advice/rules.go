package advice

import (
	"fmt"

	"github.com/novahealth/riskengine/internal/features"
)

// Input carries everything a recommendation rule may look at.
type Input struct {
	BMI      float64
	Features *features.Record
}

// Rule produces a single advisory string when its threshold fires. Rules are
// independent: no rule suppresses another.
type Rule interface {
	// Name returns the name of the rule
	Name() string

	// Evaluate returns the advisory and whether the rule fired
	Evaluate(input Input) (string, bool)
}

// symptomRule advises on logged symptoms, tiered by count and severity.
type symptomRule struct{}

func (symptomRule) Name() string { return "symptoms" }

func (symptomRule) Evaluate(in Input) (string, bool) {
	count := in.Features.GetOr(features.FeatSymptomCount, 0)
	if count <= 0 {
		return "", false
	}
	avg := in.Features.GetOr(features.FeatAvgSymptomSeverity, 0)
	max := in.Features.GetOr(features.FeatMaxSymptomSeverity, 0)
	switch {
	case count >= 5 || max >= 8:
		return fmt.Sprintf("URGENT: You have %.0f symptoms logged with severity up to %.0f/10. Please consult a healthcare provider immediately.", count, max), true
	case count >= 3 || avg >= 6:
		return fmt.Sprintf("You're experiencing %.0f symptoms (avg severity: %.1f/10). Consider scheduling a medical checkup.", count, avg), true
	default:
		return fmt.Sprintf("%.0f symptom(s) logged. Monitor your symptoms and seek medical advice if they worsen.", count), true
	}
}

// bmiRule advises on the BMI category.
type bmiRule struct{}

func (bmiRule) Name() string { return "bmi" }

func (bmiRule) Evaluate(in Input) (string, bool) {
	switch {
	case in.BMI < 18.5:
		return fmt.Sprintf("Your BMI (%.1f) indicates underweight. Consult a nutritionist for a healthy weight gain plan with adequate calories and nutrients.", in.BMI), true
	case in.BMI >= 30:
		return fmt.Sprintf("Your BMI (%.1f) indicates obesity. Focus on gradual weight loss through balanced diet and regular exercise.", in.BMI), true
	case in.BMI >= 25:
		return fmt.Sprintf("Your BMI (%.1f) indicates overweight. Small lifestyle changes can help you reach a healthy weight.", in.BMI), true
	default:
		return "", false
	}
}

// hydrationRule advises when daily water intake is below 1500ml.
type hydrationRule struct{}

func (hydrationRule) Name() string { return "hydration" }

func (hydrationRule) Evaluate(in Input) (string, bool) {
	water := in.Features.GetOr(features.FeatDailyWaterMl, 0)
	if water >= 1500 {
		return "", false
	}
	return fmt.Sprintf("Low hydration: %.0fml/day. Increase water intake to at least 2000ml for better health and metabolism.", water), true
}

// exerciseRule advises when daily exercise is below 30 minutes.
type exerciseRule struct{}

func (exerciseRule) Name() string { return "exercise" }

func (exerciseRule) Evaluate(in Input) (string, bool) {
	minutes := in.Features.GetOr(features.FeatExerciseDuration, 0)
	if minutes >= 30 {
		return "", false
	}
	return fmt.Sprintf("Exercise: %.0f min/day. Aim for at least 30 minutes of moderate activity daily for cardiovascular health.", minutes), true
}

// moodRule advises when the average mood intensity is below 4.
type moodRule struct{}

func (moodRule) Name() string { return "mood" }

func (moodRule) Evaluate(in Input) (string, bool) {
	mood := in.Features.GetOr(features.FeatAvgMoodIntensity, 5)
	if mood >= 4 {
		return "", false
	}
	return fmt.Sprintf("Your mood scores are low (avg: %.1f/10). Consider stress management, meditation, or talking to a mental health professional.", mood), true
}

// sleepRule advises when sleep is below 6 hours.
type sleepRule struct{}

func (sleepRule) Name() string { return "sleep" }

func (sleepRule) Evaluate(in Input) (string, bool) {
	sleep := in.Features.GetOr(features.FeatSleepHours, 7)
	if sleep >= 6 {
		return "", false
	}
	return fmt.Sprintf("Sleep: %.1f hours/night. Aim for 7-9 hours for optimal recovery and health.", sleep), true
}
