package predict

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/novahealth/riskengine/internal/features"
	"github.com/novahealth/riskengine/internal/platform/logger"
)

// Task names of the exported model artifacts.
const (
	TaskObesity   = "obesity"
	TaskExercise  = "exercise"
	TaskMenstrual = "menstrual"
)

// Artifact is one loaded model export: its manifest plus encoders built from
// the frozen codebooks.
type Artifact struct {
	Manifest *Manifest
	encoders map[string]*features.LabelEncoder
}

// EncodeCategory converts a categorical value using the artifact's frozen
// codebook. Categories unseen at training time are an error, never a guess.
func (a *Artifact) EncodeCategory(field, label string) (float64, error) {
	enc, ok := a.encoders[field]
	if !ok {
		return 0, fmt.Errorf("%w: no codebook for field %q", ErrUnknownCategory, field)
	}
	vals, err := enc.Transform([]string{label})
	if err != nil {
		return 0, fmt.Errorf("%w: field %q value %q", ErrUnknownCategory, field, label)
	}
	return vals[0], nil
}

// ModelSet holds the model artifacts for all prediction tasks. It is
// constructed once at startup, injected into the handlers, and never mutated
// afterwards, so concurrent requests can share it without locking.
type ModelSet struct {
	obesity   *Artifact
	exercise  *Artifact
	menstrual *Artifact
	log       *logger.Logger
}

// NewModelSet loads the artifacts found under dir (one subdirectory per task,
// each with a manifest.yaml next to its weight archive). A task whose
// artifact is missing or broken is logged and left unloaded; predictions for
// it degrade to the deterministic fallback instead of failing the service.
func NewModelSet(dir string, log *logger.Logger) *ModelSet {
	m := &ModelSet{log: log}
	m.obesity = m.loadArtifact(dir, TaskObesity)
	m.exercise = m.loadArtifact(dir, TaskExercise)
	m.menstrual = m.loadArtifact(dir, TaskMenstrual)

	loaded := 0
	for _, ok := range m.Loaded() {
		if ok {
			loaded++
		}
	}
	log.Info("model loading complete", "loaded", loaded, "total", 3)
	return m
}

func (m *ModelSet) loadArtifact(dir, task string) *Artifact {
	manifestPath := filepath.Join(dir, task, "manifest.yaml")
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		m.log.Warn("model artifact not loaded", "task", task, "error", err)
		return nil
	}
	if _, err := os.Stat(filepath.Join(dir, task, manifest.Weights)); err != nil {
		m.log.Warn("model weights missing", "task", task, "weights", manifest.Weights, "error", err)
		return nil
	}

	encoders := make(map[string]*features.LabelEncoder, len(manifest.Codebooks))
	for field, codebook := range manifest.Codebooks {
		encoders[field] = features.NewLabelEncoderFromCodebook(codebook)
	}

	m.log.Info("model artifact loaded", "task", task, "weights", manifest.Weights)
	return &Artifact{Manifest: manifest, encoders: encoders}
}

// Obesity returns the obesity artifact, or nil when unloaded.
func (m *ModelSet) Obesity() *Artifact { return m.obesity }

// Exercise returns the exercise artifact, or nil when unloaded.
func (m *ModelSet) Exercise() *Artifact { return m.exercise }

// Menstrual returns the menstrual artifact, or nil when unloaded.
func (m *ModelSet) Menstrual() *Artifact { return m.menstrual }

// Loaded reports per-task load status for the health check.
func (m *ModelSet) Loaded() map[string]bool {
	return map[string]bool{
		TaskObesity:   m.obesity != nil,
		TaskExercise:  m.exercise != nil,
		TaskMenstrual: m.menstrual != nil,
	}
}
