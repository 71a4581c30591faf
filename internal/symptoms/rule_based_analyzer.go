package symptoms

import (
	"context"
	"sort"
	"strings"

	"github.com/novahealth/riskengine/internal/models"
)

// generalFallback is reported when no condition category matched any symptom.
const generalFallback = "General symptoms - requires medical evaluation"

// Urgency guidance per risk level.
const (
	urgencyCritical = "Urgent Care - Seek immediate medical attention"
	urgencyHigh     = "Seek Medical Attention - Schedule appointment within 24-48 hours"
	urgencyModerate = "Schedule Checkup - Consult healthcare provider within a week"
	urgencyLow      = "Monitor - Track symptoms and seek care if they worsen"
)

// conditionPattern associates a condition category with its keyword phrases.
type conditionPattern struct {
	condition string
	phrases   []string
}

// conditionPatterns is the fixed category table. Order matters twice: a
// symptom is attributed to the first category with a matching phrase, and
// score ties between categories resolve to the earlier entry.
var conditionPatterns = []conditionPattern{
	{"Cardiovascular", []string{"chest pain", "shortness of breath", "irregular heartbeat", "palpitations", "dizziness", "fainting"}},
	{"Respiratory", []string{"cough", "shortness of breath", "wheezing", "chest tightness", "difficulty breathing"}},
	{"Gastrointestinal", []string{"nausea", "vomiting", "diarrhea", "abdominal pain", "bloating", "constipation", "heartburn"}},
	{"Neurological", []string{"headache", "migraine", "dizziness", "numbness", "tingling", "confusion", "memory loss"}},
	{"Musculoskeletal", []string{"joint pain", "muscle pain", "back pain", "stiffness", "swelling"}},
	{"Endocrine/Metabolic", []string{"fatigue", "weight changes", "excessive thirst", "frequent urination", "hot flashes", "cold intolerance"}},
	{"Mental Health", []string{"anxiety", "depression", "mood swings", "insomnia", "stress", "panic attacks"}},
	{"Gynecological", []string{"irregular periods", "heavy bleeding", "pelvic pain", "cramps", "spotting"}},
	{"Dermatological", []string{"rash", "itching", "skin changes", "hives", "acne"}},
	{"General/Systemic", []string{"fever", "chills", "night sweats", "fatigue", "weakness", "loss of appetite"}},
}

// RuleBasedAnalyzer implements keyword-based symptom-to-condition matching
type RuleBasedAnalyzer struct {
	patterns      []conditionPattern
	maxConditions int
}

// NewRuleBasedAnalyzer creates a new rule-based symptom analyzer
func NewRuleBasedAnalyzer(config AnalyzerConfig) *RuleBasedAnalyzer {
	if config.MaxConditions == 0 {
		config.MaxConditions = 3
	}
	return &RuleBasedAnalyzer{
		patterns:      conditionPatterns,
		maxConditions: config.MaxConditions,
	}
}

// Analyze implements the Analyzer interface
func (a *RuleBasedAnalyzer) Analyze(ctx context.Context, symptoms []models.SymptomRecord) (*models.SymptomAnalysis, error) {
	if len(symptoms) == 0 {
		return nil, nil
	}

	detected := make([]models.DetectedSymptom, 0, len(symptoms))
	scores := make(map[string]int, len(a.patterns))
	totalSeverity := 0
	maxSeverity := 0
	chestPain := false

	for _, symptom := range symptoms {
		rawType := symptom.Name()
		symptomType := strings.TrimSpace(strings.ToLower(rawType))
		severity := symptom.Severity

		displayType := rawType
		if displayType == "" {
			displayType = "Unknown"
		}
		detected = append(detected, models.DetectedSymptom{
			Type:        displayType,
			Severity:    severity,
			Description: symptom.Note(),
		})

		totalSeverity += severity
		if severity > maxSeverity {
			maxSeverity = severity
		}
		if strings.Contains(symptomType, "chest pain") {
			chestPain = true
		}

		// A symptom contributes to at most one category: the first whose
		// phrase list has a bidirectional substring match.
		if symptomType == "" {
			continue
		}
	matching:
		for _, pattern := range a.patterns {
			for _, phrase := range pattern.phrases {
				if strings.Contains(symptomType, phrase) || strings.Contains(phrase, symptomType) {
					scores[pattern.condition] += severity
					break matching
				}
			}
		}
	}

	probable := a.rankConditions(scores)
	if len(probable) == 0 {
		probable = append(probable, generalFallback)
	}

	riskLevel, urgency := classifyRisk(len(symptoms), totalSeverity, maxSeverity, chestPain)

	return &models.SymptomAnalysis{
		ProbableConditions: probable,
		RiskLevel:          riskLevel,
		Urgency:            urgency,
		DetectedSymptoms:   detected,
	}, nil
}

// rankConditions sorts categories by accumulated score descending and keeps
// the top entries with a positive score. Ties keep the table order.
func (a *RuleBasedAnalyzer) rankConditions(scores map[string]int) []string {
	type ranked struct {
		condition string
		score     int
		order     int
	}
	all := make([]ranked, 0, len(a.patterns))
	for i, pattern := range a.patterns {
		all = append(all, ranked{pattern.condition, scores[pattern.condition], i})
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].order < all[j].order
	})

	var probable []string
	for _, r := range all {
		if r.score > 0 && len(probable) < a.maxConditions {
			probable = append(probable, r.condition)
		}
	}
	return probable
}

// classifyRisk maps symptom count and severity onto a risk level and its
// urgency guidance. Thresholds are checked from Critical down so ties resolve
// to the higher level.
func classifyRisk(count, totalSeverity, maxSeverity int, chestPain bool) (models.RiskLevel, string) {
	avgSeverity := 0.0
	if count > 0 {
		avgSeverity = float64(totalSeverity) / float64(count)
	}

	switch {
	case count >= 5 || maxSeverity >= 8 || chestPain:
		return models.RiskCritical, urgencyCritical
	case count >= 3 || avgSeverity >= 6:
		return models.RiskHigh, urgencyHigh
	case count >= 2 || avgSeverity >= 4:
		return models.RiskModerate, urgencyModerate
	default:
		return models.RiskLow, urgencyLow
	}
}
