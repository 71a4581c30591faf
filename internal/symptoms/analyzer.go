package symptoms

import (
	"context"

	"github.com/novahealth/riskengine/internal/models"
)

// Analyzer defines the interface for symptom-based risk analysis
type Analyzer interface {
	// Analyze maps logged symptoms to probable condition categories and a
	// risk level. An empty symptom list yields a nil analysis, not an empty
	// one.
	Analyze(ctx context.Context, symptoms []models.SymptomRecord) (*models.SymptomAnalysis, error)
}

// AnalyzerConfig contains configuration options for the analyzer
type AnalyzerConfig struct {
	// MaxConditions caps how many probable conditions are reported.
	MaxConditions int
}
