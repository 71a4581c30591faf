package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/novahealth/riskengine/internal/advice"
	"github.com/novahealth/riskengine/internal/features"
	"github.com/novahealth/riskengine/internal/models"
	"github.com/novahealth/riskengine/internal/platform/logger"
	"github.com/novahealth/riskengine/internal/predict"
	"github.com/novahealth/riskengine/internal/symptoms"
)

// ErrInvalidProfile is returned when the user profile lacks the required
// positive age, weight or height. It surfaces to clients as a 400.
var ErrInvalidProfile = errors.New("user profile must include positive age, weight and height")

// HealthAssessor runs the full health risk assessment: lifestyle aggregation,
// obesity classification, exercise estimate, overall score, insights and
// symptom analysis. All state it holds is read-only after construction.
type HealthAssessor struct {
	modelSet *predict.ModelSet
	analyzer symptoms.Analyzer
	advisor  *advice.Generator
	log      *logger.Logger
	timeout  time.Duration
}

// AssessorConfig contains configuration for the health assessor
type AssessorConfig struct {
	Timeout time.Duration
}

// NewHealthAssessor creates a new health assessor
func NewHealthAssessor(
	modelSet *predict.ModelSet,
	analyzer symptoms.Analyzer,
	advisor *advice.Generator,
	log *logger.Logger,
	config AssessorConfig,
) *HealthAssessor {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	return &HealthAssessor{
		modelSet: modelSet,
		analyzer: analyzer,
		advisor:  advisor,
		log:      log,
		timeout:  config.Timeout,
	}
}

// Assess processes one health risk request. Every entity it builds lives for
// this call only; nothing is retained across requests.
func (a *HealthAssessor) Assess(ctx context.Context, req *models.HealthRiskRequest) (*models.HealthRiskAssessment, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	profile := &req.UserProfile
	if profile.Weight <= 0 || profile.Height <= 0 || profile.Age <= 0 {
		return nil, ErrInvalidProfile
	}

	// Aggregate lifestyle features
	feats := features.AggregateLifestyle(&req.LifestyleData)

	// Obesity risk, with recommendations from the rule generator
	obesityRisk := a.modelSet.PredictObesity(profile)
	obesityRisk.Recommendations = a.advisor.Generate(advice.Input{
		BMI:      obesityRisk.BMI,
		Features: feats,
	})

	assessment := models.NewHealthRiskAssessment()
	assessment.ObesityRisk = obesityRisk
	assessment.ExerciseRecommendation = a.modelSet.EstimateExercise(profile, feats)

	score := advice.OverallRiskScore(obesityRisk.RiskLevel, feats)
	assessment.OverallRiskScore = score
	assessment.KeyInsights = advice.KeyInsights(obesityRisk, score, feats)

	analysis, err := a.analyzer.Analyze(ctx, req.LifestyleData.Symptoms)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze symptoms: %w", err)
	}
	assessment.SymptomRiskAnalysis = analysis

	a.log.Debug("assessment complete",
		"assessment_id", assessment.ID,
		"risk_level", obesityRisk.RiskLevel,
		"overall_score", score,
		"symptoms", len(req.LifestyleData.Symptoms),
	)
	return assessment, nil
}
