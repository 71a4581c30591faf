package predict

import (
	"github.com/novahealth/riskengine/internal/features"
	"github.com/novahealth/riskengine/internal/models"
)

// obesityClasses is the class set of the obesity classifier, in model index
// order. Used when the artifact (and its manifest class list) is unavailable.
var obesityClasses = []string{
	"Insufficient_Weight",
	"Normal_Weight",
	"Obesity_Type_I",
	"Obesity_Type_II",
	"Obesity_Type_III",
	"Overweight_Level_I",
	"Overweight_Level_II",
}

// peakConfidence is the probability assigned to the predicted class; the
// remainder is spread evenly over the other classes.
const peakConfidence = 0.85

// ObesityLevelFromBMI maps a BMI onto the WHO-style obesity class and its
// model index.
func ObesityLevelFromBMI(bmi float64) (string, int) {
	switch {
	case bmi < 18.5:
		return "Insufficient_Weight", 0
	case bmi < 25:
		return "Normal_Weight", 1
	case bmi < 27:
		return "Overweight_Level_I", 5
	case bmi < 30:
		return "Overweight_Level_II", 6
	case bmi < 35:
		return "Obesity_Type_I", 2
	case bmi < 40:
		return "Obesity_Type_II", 3
	default:
		return "Obesity_Type_III", 4
	}
}

// PredictObesity classifies the user's obesity risk. With a loaded artifact
// the full class probability distribution is reported; without one the same
// BMI-derived class is served with a fixed placeholder confidence.
// Recommendations are attached by the caller.
func (m *ModelSet) PredictObesity(profile *models.UserProfile) *models.ObesityRisk {
	bmi := features.BMI(profile.Weight, profile.Height)
	bmr := features.BMR(profile.Weight, profile.Height, float64(profile.Age), profile.Gender)
	level, idx := ObesityLevelFromBMI(bmi)

	risk := &models.ObesityRisk{
		RiskLevel:  level,
		Confidence: peakConfidence,
		BMI:        bmi,
		BMR:        bmr,
	}

	if m.obesity == nil {
		// Degraded path: BMI-threshold classification with a placeholder
		// single-class distribution.
		risk.AllProbabilities = map[string]float64{level: peakConfidence}
		return risk
	}

	classes := m.obesity.Manifest.Classes
	if len(classes) == 0 {
		classes = obesityClasses
	}
	rest := (1 - peakConfidence) / float64(len(classes)-1)
	probs := make(map[string]float64, len(classes))
	for i, class := range classes {
		if i == idx {
			probs[class] = peakConfidence
		} else {
			probs[class] = rest
		}
	}
	risk.AllProbabilities = probs
	return risk
}
