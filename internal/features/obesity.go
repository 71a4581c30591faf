package features

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/novahealth/riskengine/internal/dataset"
)

var (
	dietKeywords     = []string{"food", "veg", "fruit", "water", "meal", "eat"}
	activityKeywords = []string{"physactive", "exercise", "activity", "sport", "walk"}
	sleepKeywords    = []string{"sleep"}

	educationLevels = map[string]float64{
		"8th grade":      1,
		"9 - 11th grade": 2,
		"high school":    3,
		"some college":   4,
		"college grad":   5,
	}

	incomeDigits = regexp.MustCompile(`\d+`)
)

// ObesityEngineer derives the obesity-dataset features: BMI, BMR, composite
// lifestyle scores, age buckets and socioeconomic ordinals. Every rule is
// guarded on the presence of its source columns; a missing input means the
// feature is skipped, never defaulted. Already-derived columns are left
// untouched, so running the engineer twice is a no-op.
type ObesityEngineer struct {
	featureMap []string
}

// NewObesityEngineer creates an obesity feature engineer.
func NewObesityEngineer() *ObesityEngineer {
	return &ObesityEngineer{}
}

// FeatureMap returns a human-readable list of the features created so far.
func (e *ObesityEngineer) FeatureMap() []string {
	out := make([]string, len(e.featureMap))
	copy(out, e.featureMap)
	return out
}

// EngineerFeatures enriches the table in place.
func (e *ObesityEngineer) EngineerFeatures(t *dataset.Table) error {
	if err := e.addBMI(t); err != nil {
		return err
	}
	if err := e.addBMR(t); err != nil {
		return err
	}
	if err := e.addIndicatorScore(t, "Diet_Quality_Score", dietKeywords, "diet-related features"); err != nil {
		return err
	}
	if err := e.addIndicatorScore(t, "Activity_Score", activityKeywords, "activity indicators"); err != nil {
		return err
	}
	if err := e.addIndicatorScore(t, "Sleep_Score", sleepKeywords, "sleep features"); err != nil {
		return err
	}
	if err := e.addAgeBucket(t); err != nil {
		return err
	}
	if err := e.addHealthRiskScore(t); err != nil {
		return err
	}
	if err := e.addLifestyleScore(t); err != nil {
		return err
	}
	if err := e.addEducationLevel(t); err != nil {
		return err
	}
	if err := e.addIncomeNumeric(t); err != nil {
		return err
	}
	return nil
}

func (e *ObesityEngineer) addBMI(t *dataset.Table) error {
	if t.Has("BMI") {
		return nil
	}
	height, okH := t.Num("Height")
	weight, okW := t.Num("Weight")
	if !okH || !okW {
		return nil
	}
	// Heights of 3 and above are centimeters; the column mean decides for the
	// whole batch, matching the vectorized heuristic of the training pipeline.
	meanHeight, _ := t.Mean("Height")
	bmi := make([]float64, t.Rows())
	for i := range bmi {
		m := height[i]
		if meanHeight >= 3 {
			m /= 100
		}
		bmi[i] = weight[i] / (m * m)
	}
	if err := t.AddNum("BMI", bmi); err != nil {
		return err
	}
	e.record("BMI = Weight / Height^2")
	return nil
}

func (e *ObesityEngineer) addBMR(t *dataset.Table) error {
	if t.Has("BMR") {
		return nil
	}
	age, okA := t.Num("Age")
	weight, okW := t.Num("Weight")
	height, okH := t.Num("Height")
	gender, okG := t.Text("Gender")
	if !okA || !okW || !okH || !okG {
		return nil
	}
	// Weights are assumed to be pounds when the column mean reaches 200.
	meanWeight, _ := t.Mean("Weight")
	bmr := make([]float64, t.Rows())
	for i := range bmr {
		w := weight[i]
		if meanWeight >= 200 {
			w /= 2.205
		}
		bmr[i] = BMR(w, height[i], age[i], gender[i])
	}
	if err := t.AddNum("BMR", bmr); err != nil {
		return err
	}
	e.record("BMR = Mifflin-St Jeor equation (gender-specific)")
	return nil
}

// addIndicatorScore sums indicator columns whose name contains one of the
// keywords: textual columns contribute 1 per cell containing "yes", numeric
// columns contribute their raw value with missing cells as 0.
func (e *ObesityEngineer) addIndicatorScore(t *dataset.Table, name string, keywords []string, desc string) error {
	if t.Has(name) {
		return nil
	}
	var matched []string
	for _, col := range t.Columns() {
		if matchesAny(col, keywords) {
			matched = append(matched, col)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	score := indicatorSum(t, matched)
	if err := t.AddNum(name, score); err != nil {
		return err
	}
	e.record(fmt.Sprintf("%s = sum of %d %s", name, len(matched), desc))
	return nil
}

func (e *ObesityEngineer) addAgeBucket(t *dataset.Table) error {
	if t.Has("Age_Bucket") {
		return nil
	}
	age, ok := t.Num("Age")
	if !ok {
		return nil
	}
	labels := make([]string, t.Rows())
	for i := range labels {
		if label, inRange := AgeBucket(age[i]); inRange {
			labels[i] = label
		}
	}
	if err := t.AddText("Age_Bucket", labels); err != nil {
		return err
	}
	encoded := NewLabelEncoder().FitTransform(labels)
	if err := t.AddNum("Age_Bucket_Encoded", encoded); err != nil {
		return err
	}
	e.record("Age_Bucket = categorical age groups")
	return nil
}

func (e *ObesityEngineer) addHealthRiskScore(t *dataset.Table) error {
	if t.Has("Health_Risk_Score") {
		return nil
	}
	score := make([]float64, t.Rows())
	factors := 0
	if diabetes, ok := t.Text("Diabetes"); ok {
		factors++
		for i := range score {
			if containsYes(diabetes[i]) {
				score[i]++
			}
		}
	}
	if smoke, ok := t.Text("Smoke100"); ok {
		factors++
		for i := range score {
			if containsYes(smoke[i]) {
				score[i]++
			}
		}
	}
	if systolic, ok := t.Num("BPSysAve"); ok {
		factors++
		for i := range score {
			if systolic[i] > 140 { // hypertension
				score[i]++
			}
		}
	}
	if chol, ok := t.Num("TotChol"); ok {
		factors++
		for i := range score {
			if chol[i] > 5.2 { // high cholesterol
				score[i]++
			}
		}
	}
	if factors == 0 {
		return nil
	}
	if err := t.AddNum("Health_Risk_Score", score); err != nil {
		return err
	}
	e.record(fmt.Sprintf("Health_Risk_Score = sum of %d risk factors", factors))
	return nil
}

func (e *ObesityEngineer) addLifestyleScore(t *dataset.Table) error {
	if t.Has("Lifestyle_Score") {
		return nil
	}
	active, okActive := t.Text("PhysActive")
	alcohol, okAlcohol := t.Text("Alcohol12PlusYr")
	smoke, okSmoke := t.Text("Smoke100")
	if !okActive && !okAlcohol && !okSmoke {
		return nil
	}
	score := make([]float64, t.Rows())
	for i := range score {
		if okActive && containsYes(active[i]) {
			score[i] += 2
		}
		if okAlcohol && containsYes(alcohol[i]) {
			score[i]--
		}
		if okSmoke && containsYes(smoke[i]) {
			score[i]--
		}
	}
	if err := t.AddNum("Lifestyle_Score", score); err != nil {
		return err
	}
	e.record("Lifestyle_Score = activity - alcohol - smoking")
	return nil
}

func (e *ObesityEngineer) addEducationLevel(t *dataset.Table) error {
	if t.Has("Education_Level") {
		return nil
	}
	education, ok := t.Text("Education")
	if !ok {
		return nil
	}
	level := make([]float64, t.Rows())
	for i := range level {
		if v, known := educationLevels[strings.ToLower(education[i])]; known {
			level[i] = v
		} else {
			level[i] = 3
		}
	}
	if err := t.AddNum("Education_Level", level); err != nil {
		return err
	}
	e.record("Education_Level = ordinal encoding of education")
	return nil
}

func (e *ObesityEngineer) addIncomeNumeric(t *dataset.Table) error {
	if t.Has("Income_Numeric") {
		return nil
	}
	income, ok := t.Text("HHIncome")
	if !ok {
		return nil
	}
	numeric := make([]float64, t.Rows())
	for i := range numeric {
		numeric[i] = 50000
		if m := incomeDigits.FindString(income[i]); m != "" {
			if v, err := strconv.ParseFloat(m, 64); err == nil {
				numeric[i] = v
			}
		}
	}
	if err := t.AddNum("Income_Numeric", numeric); err != nil {
		return err
	}
	e.record("Income_Numeric = extracted from income ranges")
	return nil
}

func (e *ObesityEngineer) record(entry string) {
	e.featureMap = append(e.featureMap, entry)
}

// indicatorSum adds up the named columns row-wise: textual cells count 1 when
// they contain "yes", numeric cells contribute their value with NaN as 0.
func indicatorSum(t *dataset.Table, names []string) []float64 {
	sum := make([]float64, t.Rows())
	for _, name := range names {
		if text, ok := t.Text(name); ok {
			for i := range sum {
				if containsYes(text[i]) {
					sum[i]++
				}
			}
			continue
		}
		if nums, ok := t.Num(name); ok {
			for i := range sum {
				if !math.IsNaN(nums[i]) {
					sum[i] += nums[i]
				}
			}
		}
	}
	return sum
}
