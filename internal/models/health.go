package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel represents the severity of a symptom-based risk assessment.
// Levels are ordered: Low < Moderate < High < Critical.
type RiskLevel string

const (
	// RiskLow represents symptoms that only need monitoring
	RiskLow RiskLevel = "Low"

	// RiskModerate represents symptoms that warrant a checkup within a week
	RiskModerate RiskLevel = "Moderate"

	// RiskHigh represents symptoms that need medical attention within 24-48 hours
	RiskHigh RiskLevel = "High"

	// RiskCritical represents symptoms that require immediate medical attention
	RiskCritical RiskLevel = "Critical"
)

// Rank returns the ordinal position of the risk level, with Low as 0.
// Unknown values rank below Low.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLow:
		return 0
	case RiskModerate:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	default:
		return -1
	}
}

// UserProfile holds the per-request user attributes. Weight is in kilograms,
// height in centimeters.
type UserProfile struct {
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	Weight        float64  `json:"weight"`
	Height        float64  `json:"height"`
	ActivityLevel string   `json:"activityLevel"`
	TargetWeight  *float64 `json:"targetWeight,omitempty"`
}

// MoodLog is a single mood entry. Intensity is on a 0-10 scale and defaults
// to 5 when the client omits it.
type MoodLog struct {
	Mood      string   `json:"mood,omitempty"`
	Intensity *float64 `json:"intensity,omitempty"`
	Factors   []string `json:"factors,omitempty"`
}

// SymptomRecord is a single symptom entry. Clients are inconsistent about the
// field carrying the symptom name, so all three historical spellings are
// accepted; the first non-empty one wins.
type SymptomRecord struct {
	Type             string `json:"type,omitempty"`
	SymptomType      string `json:"symptomType,omitempty"`
	SymptomTypeSnake string `json:"symptom_type,omitempty"`
	Severity         int    `json:"severity"`
	Description      string `json:"description,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// Name returns the symptom name under whichever field the client used.
func (s *SymptomRecord) Name() string {
	if s.Type != "" {
		return s.Type
	}
	if s.SymptomType != "" {
		return s.SymptomType
	}
	return s.SymptomTypeSnake
}

// Note returns the free-text description, falling back to the notes field.
func (s *SymptomRecord) Note() string {
	if s.Description != "" {
		return s.Description
	}
	return s.Notes
}

// LifestyleSnapshot aggregates one day of lifestyle tracking data. It is built
// fresh for every request and discarded after the response is serialized.
type LifestyleSnapshot struct {
	TotalWaterMl  int              `json:"totalWaterMl"`
	HydrationLogs []map[string]any `json:"hydrationLogs"`
	MoodLogs      []MoodLog        `json:"moodLogs"`
	Symptoms      []SymptomRecord  `json:"symptoms"`

	ExerciseDuration  *int     `json:"exerciseDuration,omitempty"`
	ExerciseIntensity *int     `json:"exerciseIntensity,omitempty"`
	HeartRate         *int     `json:"heartRate,omitempty"`
	SleepHours        *float64 `json:"sleepHours,omitempty"`
	CaloriesConsumed  *int     `json:"caloriesConsumed,omitempty"`
}

// HealthRiskRequest is the body of the main prediction endpoint.
type HealthRiskRequest struct {
	UserProfile   UserProfile       `json:"userProfile"`
	LifestyleData LifestyleSnapshot `json:"lifestyleData"`
	DateRange     *int              `json:"dateRange,omitempty"`
}

// DetectedSymptom is a normalized per-symptom record in a symptom analysis.
type DetectedSymptom struct {
	Type        string `json:"type"`
	Severity    int    `json:"severity"`
	Description string `json:"description"`
}

// SymptomAnalysis is the result of the rule-based symptom classifier.
type SymptomAnalysis struct {
	ProbableConditions []string          `json:"probableConditions"`
	RiskLevel          RiskLevel         `json:"riskLevel"`
	Urgency            string            `json:"urgency"`
	DetectedSymptoms   []DetectedSymptom `json:"detectedSymptoms"`
}

// ObesityRisk is the obesity classification part of an assessment.
type ObesityRisk struct {
	RiskLevel        string             `json:"riskLevel"`
	Confidence       float64            `json:"confidence"`
	BMI              float64            `json:"bmi"`
	BMR              float64            `json:"bmr"`
	Recommendations  []string           `json:"recommendations"`
	AllProbabilities map[string]float64 `json:"allProbabilities"`
}

// ExerciseEstimate is the exercise calorie estimate part of an assessment.
type ExerciseEstimate struct {
	PredictedCalories float64  `json:"predictedCalories"`
	CaloriesPerMinute float64  `json:"caloriesPerMinute"`
	MetScore          float64  `json:"metScore"`
	IntensityLevel    string   `json:"intensityLevel"`
	Recommendations   []string `json:"recommendations"`
}

// MenstrualPrediction is the cycle regularity part of an assessment.
type MenstrualPrediction struct {
	CycleRegularity      string   `json:"cycleRegularity"`
	PredictedCycleLength int      `json:"predictedCycleLength"`
	NextPeriodDate       string   `json:"nextPeriodDate"`
	Confidence           float64  `json:"confidence"`
	Recommendations      []string `json:"recommendations"`
}

// HealthRiskAssessment is the complete response of the main endpoint.
// Optional sub-assessments are nil (and omitted) when their inputs or model
// artifacts are unavailable.
type HealthRiskAssessment struct {
	ID                     string               `json:"id"`
	ObesityRisk            *ObesityRisk         `json:"obesityRisk"`
	ExerciseRecommendation *ExerciseEstimate    `json:"exerciseRecommendation,omitempty"`
	MenstrualPrediction    *MenstrualPrediction `json:"menstrualPrediction,omitempty"`
	SymptomRiskAnalysis    *SymptomAnalysis     `json:"symptomRiskAnalysis,omitempty"`
	OverallRiskScore       float64              `json:"overallRiskScore"`
	KeyInsights            []string             `json:"keyInsights"`
	Timestamp              time.Time            `json:"timestamp"`
}

// NewHealthRiskAssessment creates an assessment shell with a fresh ID.
func NewHealthRiskAssessment() *HealthRiskAssessment {
	return &HealthRiskAssessment{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
	}
}
