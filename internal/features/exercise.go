package features

import (
	"strings"

	"github.com/novahealth/riskengine/internal/dataset"
)

// rollingWindow is the causal window used for session-based rolling features.
const rollingWindow = 5

// ExerciseEngineer derives the exercise-dataset features: MET score, heart
// rate zones, weight and efficiency ratios, and session-based rolling
// statistics. The same guarding rules apply as for the obesity engineer:
// derive only when the source columns are present, never overwrite.
//
// Rolling features assume the table holds an ordered session sequence; the
// single-record serving path runs the same rules over a one-row table, which
// collapses every rolling statistic to the instantaneous value. That
// training/serving skew is inherited from the upstream pipeline and is kept
// visible rather than papered over.
type ExerciseEngineer struct {
	featureMap []string
}

// NewExerciseEngineer creates an exercise feature engineer.
func NewExerciseEngineer() *ExerciseEngineer {
	return &ExerciseEngineer{}
}

// FeatureMap returns a human-readable list of the features created so far.
func (e *ExerciseEngineer) FeatureMap() []string {
	out := make([]string, len(e.featureMap))
	copy(out, e.featureMap)
	return out
}

// EngineerFeatures enriches the table in place.
func (e *ExerciseEngineer) EngineerFeatures(t *dataset.Table) error {
	if err := e.addMETScore(t); err != nil {
		return err
	}
	if err := e.addCaloriesPerMinute(t); err != nil {
		return err
	}
	if err := e.addHeartRateZones(t); err != nil {
		return err
	}
	if err := e.addBMIAdjustedIntensity(t); err != nil {
		return err
	}
	if err := e.addWeightDifference(t); err != nil {
		return err
	}
	if err := e.addRollingFeatures(t); err != nil {
		return err
	}
	if err := e.addIntensityCategory(t); err != nil {
		return err
	}
	if err := e.addCalorieEfficiency(t); err != nil {
		return err
	}
	if err := e.addAgeAdjustedCalories(t); err != nil {
		return err
	}
	if err := e.addGenderFeatures(t); err != nil {
		return err
	}
	return nil
}

func (e *ExerciseEngineer) addMETScore(t *dataset.Table) error {
	if t.Has("MET_Score") {
		return nil
	}
	weight, okW := t.Num("Actual Weight")
	duration, okD := t.Num("Duration")
	if !okW || !okD {
		return nil
	}
	intensity, hasIntensity := t.Num("Exercise Intensity")
	met := make([]float64, t.Rows())
	for i := range met {
		v := 0.0
		if hasIntensity {
			v = intensity[i]
		}
		met[i] = METScore(weight[i], duration[i], v, hasIntensity)
	}
	if err := t.AddNum("MET_Score", met); err != nil {
		return err
	}
	e.record("MET_Score = 3.5 * weight * duration * intensity")
	return nil
}

func (e *ExerciseEngineer) addCaloriesPerMinute(t *dataset.Table) error {
	if t.Has("Calories_Per_Minute") {
		return nil
	}
	calories, okC := t.Num("Calories Burn")
	duration, okD := t.Num("Duration")
	if !okC || !okD {
		return nil
	}
	perMin := make([]float64, t.Rows())
	for i := range perMin {
		d := duration[i]
		if d == 0 {
			d = 1
		}
		perMin[i] = calories[i] / d
	}
	if err := t.AddNum("Calories_Per_Minute", perMin); err != nil {
		return err
	}
	e.record("Calories_Per_Minute = total calories / duration")
	return nil
}

func (e *ExerciseEngineer) addHeartRateZones(t *dataset.Table) error {
	if t.Has("HR_Percentage") {
		return nil
	}
	heartRate, okHR := t.Num("Heart Rate")
	age, okA := t.Num("Age")
	if !okHR || !okA {
		return nil
	}
	pct := make([]float64, t.Rows())
	zones := make([]string, t.Rows())
	for i := range pct {
		pct[i] = HRPercentage(heartRate[i], age[i])
		if zone, ok := HRZone(pct[i]); ok {
			zones[i] = zone
		}
	}
	if err := t.AddNum("HR_Percentage", pct); err != nil {
		return err
	}
	if err := t.AddText("HR_Zone", zones); err != nil {
		return err
	}
	if err := t.AddNum("HR_Zone_Encoded", NewLabelEncoder().FitTransform(zones)); err != nil {
		return err
	}
	e.record("HR_Zone = heart rate as % of max (age-based)")
	return nil
}

func (e *ExerciseEngineer) addBMIAdjustedIntensity(t *dataset.Table) error {
	if t.Has("BMI_Adjusted_Intensity") {
		return nil
	}
	bmi, okB := t.Num("BMI")
	intensity, okI := t.Num("Exercise Intensity")
	if !okB || !okI {
		return nil
	}
	adjusted := make([]float64, t.Rows())
	for i := range adjusted {
		adjusted[i] = intensity[i] * (bmi[i] / 25)
	}
	if err := t.AddNum("BMI_Adjusted_Intensity", adjusted); err != nil {
		return err
	}
	e.record("BMI_Adjusted_Intensity = intensity * (BMI / 25)")
	return nil
}

func (e *ExerciseEngineer) addWeightDifference(t *dataset.Table) error {
	if t.Has("Weight_Difference") {
		return nil
	}
	dream, okD := t.Num("Dream Weight")
	actual, okA := t.Num("Actual Weight")
	if !okD || !okA {
		return nil
	}
	diff := make([]float64, t.Rows())
	pct := make([]float64, t.Rows())
	for i := range diff {
		diff[i] = actual[i] - dream[i]
		pct[i] = diff[i] / actual[i] * 100
	}
	if err := t.AddNum("Weight_Difference", diff); err != nil {
		return err
	}
	if err := t.AddNum("Weight_Diff_Percentage", pct); err != nil {
		return err
	}
	e.record("Weight_Difference = actual - dream weight")
	return nil
}

func (e *ExerciseEngineer) addRollingFeatures(t *dataset.Table) error {
	if !t.Has("ID") {
		return nil
	}
	// Session order comes from the identifier column.
	t.SortByNum("ID")

	if heartRate, ok := t.Num("Heart Rate"); ok && !t.Has("HR_Rolling_Mean") {
		if err := t.AddNum("HR_Rolling_Mean", RollingMean(heartRate, rollingWindow)); err != nil {
			return err
		}
		if err := t.AddNum("HR_Rolling_Std", RollingStd(heartRate, rollingWindow)); err != nil {
			return err
		}
		if err := t.AddNum("HR_Rolling_Max", RollingMax(heartRate, rollingWindow)); err != nil {
			return err
		}
		e.record("HR_Rolling_* = rolling statistics (window=5)")
	}

	if calories, ok := t.Num("Calories Burn"); ok && !t.Has("Calories_Rolling_Mean") {
		mean := RollingMean(calories, rollingWindow)
		trend := make([]float64, t.Rows())
		for i := range trend {
			trend[i] = calories[i] - mean[i]
		}
		if err := t.AddNum("Calories_Rolling_Mean", mean); err != nil {
			return err
		}
		if err := t.AddNum("Calories_Trend", trend); err != nil {
			return err
		}
		e.record("Calories_Trend = current - rolling mean")
	}
	return nil
}

func (e *ExerciseEngineer) addIntensityCategory(t *dataset.Table) error {
	if t.Has("Intensity_Category") {
		return nil
	}
	intensity, ok := t.Num("Exercise Intensity")
	if !ok {
		return nil
	}
	labels := make([]string, t.Rows())
	for i := range labels {
		if label, inRange := IntensityCategory(intensity[i]); inRange {
			labels[i] = label
		}
	}
	if err := t.AddText("Intensity_Category", labels); err != nil {
		return err
	}
	if err := t.AddNum("Intensity_Category_Encoded", NewLabelEncoder().FitTransform(labels)); err != nil {
		return err
	}
	e.record("Intensity_Category = Low/Medium/High")
	return nil
}

func (e *ExerciseEngineer) addCalorieEfficiency(t *dataset.Table) error {
	if t.Has("Calorie_Efficiency") {
		return nil
	}
	calories, okC := t.Num("Calories Burn")
	heartRate, okHR := t.Num("Heart Rate")
	if !okC || !okHR {
		return nil
	}
	efficiency := make([]float64, t.Rows())
	for i := range efficiency {
		hr := heartRate[i]
		if hr == 0 {
			hr = 1
		}
		efficiency[i] = calories[i] / hr
	}
	if err := t.AddNum("Calorie_Efficiency", efficiency); err != nil {
		return err
	}
	e.record("Calorie_Efficiency = calories / heart rate")
	return nil
}

func (e *ExerciseEngineer) addAgeAdjustedCalories(t *dataset.Table) error {
	if t.Has("Age_Adjusted_Calories") {
		return nil
	}
	age, okA := t.Num("Age")
	calories, okC := t.Num("Calories Burn")
	if !okA || !okC {
		return nil
	}
	adjusted := make([]float64, t.Rows())
	for i := range adjusted {
		// Peaks at age 40.
		adjusted[i] = calories[i] * (1 + (40-age[i])/100)
	}
	if err := t.AddNum("Age_Adjusted_Calories", adjusted); err != nil {
		return err
	}
	e.record("Age_Adjusted_Calories = calories * age_factor")
	return nil
}

func (e *ExerciseEngineer) addGenderFeatures(t *dataset.Table) error {
	gender, ok := t.Text("Gender")
	if !ok {
		return nil
	}
	if !t.Has("Gender_Encoded") {
		if err := t.AddNum("Gender_Encoded", NewLabelEncoder().FitTransform(gender)); err != nil {
			return err
		}
	}

	calories, okC := t.Num("Calories Burn")
	if !okC || t.Has("Gender_Adjusted_Calories") {
		return nil
	}
	adjusted := make([]float64, t.Rows())
	for i := range adjusted {
		adjusted[i] = calories[i]
		g := strings.ToLower(gender[i])
		// Males typically burn around 10% more calories.
		if strings.Contains(g, "male") && !strings.Contains(g, "female") {
			adjusted[i] *= 1.1
		}
	}
	if err := t.AddNum("Gender_Adjusted_Calories", adjusted); err != nil {
		return err
	}
	e.record("Gender_Adjusted_Calories = gender-specific adjustment")
	return nil
}

func (e *ExerciseEngineer) record(entry string) {
	e.featureMap = append(e.featureMap, entry)
}
