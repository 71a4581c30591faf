package symptoms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novahealth/riskengine/internal/models"
)

func analyze(t *testing.T, symptoms []models.SymptomRecord) *models.SymptomAnalysis {
	t.Helper()
	analyzer := NewRuleBasedAnalyzer(AnalyzerConfig{})
	analysis, err := analyzer.Analyze(context.Background(), symptoms)
	require.NoError(t, err)
	return analysis
}

func TestAnalyzeEmptySymptoms(t *testing.T) {
	analyzer := NewRuleBasedAnalyzer(AnalyzerConfig{})
	analysis, err := analyzer.Analyze(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, analysis)
}

func TestAnalyzeChestPainIsCritical(t *testing.T) {
	analysis := analyze(t, []models.SymptomRecord{
		{Type: "Chest Pain", Severity: 5},
	})

	require.NotNil(t, analysis)
	assert.Equal(t, models.RiskCritical, analysis.RiskLevel)
	assert.Equal(t, "Urgent Care - Seek immediate medical attention", analysis.Urgency)
	assert.Equal(t, []string{"Cardiovascular"}, analysis.ProbableConditions)
}

func TestAnalyzeHighSeverityIsCritical(t *testing.T) {
	analysis := analyze(t, []models.SymptomRecord{
		{Type: "headache", Severity: 9},
	})

	assert.Equal(t, models.RiskCritical, analysis.RiskLevel)
	assert.Equal(t, []string{"Neurological"}, analysis.ProbableConditions)
}

func TestAnalyzeRiskLadder(t *testing.T) {
	// Three mild symptoms reach High on count alone.
	analysis := analyze(t, []models.SymptomRecord{
		{Type: "cough", Severity: 2},
		{Type: "rash", Severity: 2},
		{Type: "bloating", Severity: 2},
	})
	assert.Equal(t, models.RiskHigh, analysis.RiskLevel)
	assert.Equal(t, "Seek Medical Attention - Schedule appointment within 24-48 hours", analysis.Urgency)

	// Two mild symptoms are Moderate.
	analysis = analyze(t, []models.SymptomRecord{
		{Type: "cough", Severity: 2},
		{Type: "rash", Severity: 2},
	})
	assert.Equal(t, models.RiskModerate, analysis.RiskLevel)

	// One mild symptom only needs monitoring.
	analysis = analyze(t, []models.SymptomRecord{
		{Type: "cough", Severity: 2},
	})
	assert.Equal(t, models.RiskLow, analysis.RiskLevel)
	assert.Equal(t, "Monitor - Track symptoms and seek care if they worsen", analysis.Urgency)
}

func TestAnalyzeFirstCategoryWins(t *testing.T) {
	// "dizziness" appears under Cardiovascular and Neurological; the earlier
	// category takes the score.
	analysis := analyze(t, []models.SymptomRecord{
		{Type: "dizziness", Severity: 3},
	})
	assert.Equal(t, []string{"Cardiovascular"}, analysis.ProbableConditions)
}

func TestAnalyzeBidirectionalMatching(t *testing.T) {
	// The logged type "severe migraine attack" contains the phrase
	// "migraine"; the logged type "pain" is contained in several phrases and
	// attributes to the first.
	analysis := analyze(t, []models.SymptomRecord{
		{Type: "severe migraine attack", Severity: 3},
	})
	assert.Equal(t, []string{"Neurological"}, analysis.ProbableConditions)

	analysis = analyze(t, []models.SymptomRecord{
		{Type: "pain", Severity: 3},
	})
	assert.Equal(t, []string{"Cardiovascular"}, analysis.ProbableConditions)
}

func TestAnalyzeConditionRanking(t *testing.T) {
	analysis := analyze(t, []models.SymptomRecord{
		{Type: "nausea", Severity: 7},
		{Type: "headache", Severity: 4},
		{Type: "cough", Severity: 2},
		{Type: "itching", Severity: 1},
	})

	// Top three by accumulated severity; the fourth category is cut.
	assert.Equal(t, []string{"Gastrointestinal", "Neurological", "Respiratory"}, analysis.ProbableConditions)
}

func TestAnalyzeGeneralFallback(t *testing.T) {
	analysis := analyze(t, []models.SymptomRecord{
		{Type: "glowing aura", Severity: 2},
	})
	assert.Equal(t, []string{"General symptoms - requires medical evaluation"}, analysis.ProbableConditions)
}

func TestAnalyzeFieldNameFallback(t *testing.T) {
	analysis := analyze(t, []models.SymptomRecord{
		{SymptomTypeSnake: "cough", Severity: 2, Notes: "dry cough at night"},
	})

	require.Len(t, analysis.DetectedSymptoms, 1)
	assert.Equal(t, "cough", analysis.DetectedSymptoms[0].Type)
	assert.Equal(t, "dry cough at night", analysis.DetectedSymptoms[0].Description)
	assert.Equal(t, []string{"Respiratory"}, analysis.ProbableConditions)
}

func TestAnalyzeUnnamedSymptom(t *testing.T) {
	analysis := analyze(t, []models.SymptomRecord{
		{Severity: 3},
	})

	require.Len(t, analysis.DetectedSymptoms, 1)
	assert.Equal(t, "Unknown", analysis.DetectedSymptoms[0].Type)
	assert.Equal(t, []string{"General symptoms - requires medical evaluation"}, analysis.ProbableConditions)
}

func TestAnalyzeMaxConditions(t *testing.T) {
	analyzer := NewRuleBasedAnalyzer(AnalyzerConfig{MaxConditions: 1})
	analysis, err := analyzer.Analyze(context.Background(), []models.SymptomRecord{
		{Type: "nausea", Severity: 7},
		{Type: "headache", Severity: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Gastrointestinal"}, analysis.ProbableConditions)
}
