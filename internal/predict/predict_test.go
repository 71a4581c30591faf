package predict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novahealth/riskengine/internal/features"
	"github.com/novahealth/riskengine/internal/models"
	"github.com/novahealth/riskengine/internal/platform/logger"
)

// writeArtifact lays out a loadable artifact directory for one task.
func writeArtifact(t *testing.T, dir, task, manifest string) {
	t.Helper()
	taskDir := filepath.Join(dir, task)
	require.NoError(t, os.MkdirAll(taskDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(taskDir, "manifest.yaml"), []byte(manifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(taskDir, "model.zip"), []byte("weights"), 0o644))
}

const obesityManifest = `task: obesity
weights: model.zip
classes:
  - Insufficient_Weight
  - Normal_Weight
  - Obesity_Type_I
  - Obesity_Type_II
  - Obesity_Type_III
  - Overweight_Level_I
  - Overweight_Level_II
codebooks:
  Gender:
    Female: 0
    Male: 1
`

const exerciseManifest = `task: exercise
weights: model.zip
`

func TestObesityLevelFromBMI(t *testing.T) {
	cases := []struct {
		bmi   float64
		level string
		idx   int
	}{
		{17, "Insufficient_Weight", 0},
		{18.5, "Normal_Weight", 1},
		{24.9, "Normal_Weight", 1},
		{25, "Overweight_Level_I", 5},
		{27, "Overweight_Level_II", 6},
		{30, "Obesity_Type_I", 2},
		{35, "Obesity_Type_II", 3},
		{40, "Obesity_Type_III", 4},
		{55, "Obesity_Type_III", 4},
	}
	for _, tc := range cases {
		level, idx := ObesityLevelFromBMI(tc.bmi)
		assert.Equal(t, tc.level, level, "bmi %v", tc.bmi)
		assert.Equal(t, tc.idx, idx, "bmi %v", tc.bmi)
	}
}

func TestPredictObesityFallback(t *testing.T) {
	// No artifacts in an empty directory.
	m := NewModelSet(t.TempDir(), logger.NewNop())

	risk := m.PredictObesity(&models.UserProfile{Age: 30, Gender: "male", Weight: 85, Height: 175})
	require.NotNil(t, risk)
	assert.Equal(t, "Overweight_Level_II", risk.RiskLevel)
	assert.InDelta(t, 0.85, risk.Confidence, 0.001)
	assert.InDelta(t, 27.76, risk.BMI, 0.01)
	assert.InDelta(t, 1798.75, risk.BMR, 0.01)

	// Degraded mode reports only the predicted class.
	require.Len(t, risk.AllProbabilities, 1)
	assert.InDelta(t, 0.85, risk.AllProbabilities["Overweight_Level_II"], 0.001)
}

func TestPredictObesityWithArtifact(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, TaskObesity, obesityManifest)
	m := NewModelSet(dir, logger.NewNop())
	require.NotNil(t, m.Obesity())

	risk := m.PredictObesity(&models.UserProfile{Age: 30, Gender: "male", Weight: 85, Height: 175})
	require.Len(t, risk.AllProbabilities, 7)
	assert.InDelta(t, 0.85, risk.AllProbabilities["Overweight_Level_II"], 0.001)
	assert.InDelta(t, 0.15/6, risk.AllProbabilities["Normal_Weight"], 0.001)

	total := 0.0
	for _, p := range risk.AllProbabilities {
		total += p
	}
	assert.InDelta(t, 1.0, total, 0.001)
}

func TestEncodeCategory(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, TaskObesity, obesityManifest)
	m := NewModelSet(dir, logger.NewNop())

	code, err := m.Obesity().EncodeCategory("Gender", "Male")
	require.NoError(t, err)
	assert.InDelta(t, 1, code, 0.001)

	_, err = m.Obesity().EncodeCategory("Gender", "unknown")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = m.Obesity().EncodeCategory("Country", "US")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestLoadManifestValidation(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weights: model.zip\n"), 0o644))
	_, err := LoadManifest(path)
	assert.ErrorIs(t, err, ErrInvalidManifest)

	require.NoError(t, os.WriteFile(path, []byte("task: obesity\n"), 0o644))
	_, err = LoadManifest(path)
	assert.ErrorIs(t, err, ErrInvalidManifest)

	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))
	_, err = LoadManifest(path)
	assert.ErrorIs(t, err, ErrInvalidManifest)
}

func TestModelSetMissingWeights(t *testing.T) {
	dir := t.TempDir()
	taskDir := filepath.Join(dir, TaskObesity)
	require.NoError(t, os.MkdirAll(taskDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(taskDir, "manifest.yaml"), []byte(obesityManifest), 0o644))

	// Manifest present but the weight archive is missing.
	m := NewModelSet(dir, logger.NewNop())
	assert.Nil(t, m.Obesity())
	assert.False(t, m.Loaded()[TaskObesity])
}

func TestIntensityLevel(t *testing.T) {
	assert.Equal(t, "Low", IntensityLevel(2))
	assert.Equal(t, "Low", IntensityLevel(3))
	assert.Equal(t, "Medium", IntensityLevel(5))
	assert.Equal(t, "High", IntensityLevel(8))
}

func TestEstimateExercise(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, TaskExercise, exerciseManifest)
	m := NewModelSet(dir, logger.NewNop())
	require.NotNil(t, m.Exercise())

	profile := &models.UserProfile{Age: 30, Gender: "male", Weight: 75, Height: 175}
	feats := features.NewRecord()
	feats.Set(features.FeatExerciseDuration, 45)
	feats.Set(features.FeatExerciseIntensity, 7)

	est := m.EstimateExercise(profile, feats)
	require.NotNil(t, est)
	assert.InDelta(t, 1102.5, est.PredictedCalories, 0.01)
	assert.InDelta(t, 1102.5/45, est.CaloriesPerMinute, 0.01)
	assert.Equal(t, "High", est.IntensityLevel)
	assert.NotEmpty(t, est.Recommendations)
}

func TestEstimateExerciseUnavailable(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, TaskExercise, exerciseManifest)
	m := NewModelSet(dir, logger.NewNop())

	profile := &models.UserProfile{Age: 30, Gender: "male", Weight: 75, Height: 175}

	// No exercise logged.
	feats := features.NewRecord()
	assert.Nil(t, m.EstimateExercise(profile, feats))

	// Artifact not loaded.
	unloaded := NewModelSet(t.TempDir(), logger.NewNop())
	feats.Set(features.FeatExerciseDuration, 45)
	assert.Nil(t, unloaded.EstimateExercise(profile, feats))
}
