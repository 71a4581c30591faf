package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novahealth/riskengine/internal/dataset"
)

func exerciseTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl := dataset.NewTable(3)
	require.NoError(t, tbl.AddNum("ID", []float64{1, 2, 3}))
	require.NoError(t, tbl.AddNum("Actual Weight", []float64{70, 80, 90}))
	require.NoError(t, tbl.AddNum("Dream Weight", []float64{65, 75, 85}))
	require.NoError(t, tbl.AddNum("Duration", []float64{30, 60, 45}))
	require.NoError(t, tbl.AddNum("Exercise Intensity", []float64{3, 6, 9}))
	require.NoError(t, tbl.AddNum("Heart Rate", []float64{120, 150, 180}))
	require.NoError(t, tbl.AddNum("Age", []float64{30, 40, 50}))
	require.NoError(t, tbl.AddNum("Calories Burn", []float64{300, 400, 500}))
	require.NoError(t, tbl.AddNum("BMI", []float64{22, 27, 31}))
	require.NoError(t, tbl.AddText("Gender", []string{"Male", "Female", "Male"}))
	return tbl
}

func TestExerciseEngineerMETAndRatios(t *testing.T) {
	tbl := exerciseTable(t)
	require.NoError(t, NewExerciseEngineer().EngineerFeatures(tbl))

	met, ok := tbl.Num("MET_Score")
	require.True(t, ok)
	assert.InDelta(t, 294, met[0], 0.01)
	assert.InDelta(t, 1344, met[1], 0.01)
	assert.InDelta(t, 1701, met[2], 0.01)

	perMin, ok := tbl.Num("Calories_Per_Minute")
	require.True(t, ok)
	assert.InDelta(t, 10, perMin[0], 0.01)

	efficiency, ok := tbl.Num("Calorie_Efficiency")
	require.True(t, ok)
	assert.InDelta(t, 2.5, efficiency[0], 0.01)

	adjusted, ok := tbl.Num("BMI_Adjusted_Intensity")
	require.True(t, ok)
	assert.InDelta(t, 3*22.0/25, adjusted[0], 0.01)
}

func TestExerciseEngineerHeartRateZones(t *testing.T) {
	tbl := exerciseTable(t)
	require.NoError(t, NewExerciseEngineer().EngineerFeatures(tbl))

	pct, ok := tbl.Num("HR_Percentage")
	require.True(t, ok)
	assert.InDelta(t, 63.16, pct[0], 0.01)
	assert.InDelta(t, 83.33, pct[1], 0.01)

	zones, ok := tbl.Text("HR_Zone")
	require.True(t, ok)
	// 180 bpm at age 50 exceeds the predicted maximum, so no zone applies.
	assert.Equal(t, []string{"Light", "Hard", ""}, zones)
}

func TestExerciseEngineerWeightDifference(t *testing.T) {
	tbl := exerciseTable(t)
	require.NoError(t, NewExerciseEngineer().EngineerFeatures(tbl))

	diff, ok := tbl.Num("Weight_Difference")
	require.True(t, ok)
	assert.Equal(t, []float64{5, 5, 5}, diff)

	pct, ok := tbl.Num("Weight_Diff_Percentage")
	require.True(t, ok)
	assert.InDelta(t, 100*5.0/70, pct[0], 0.01)
}

func TestExerciseEngineerRollingFeatures(t *testing.T) {
	tbl := exerciseTable(t)
	require.NoError(t, NewExerciseEngineer().EngineerFeatures(tbl))

	mean, ok := tbl.Num("HR_Rolling_Mean")
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{120, 135, 150}, mean, 0.01)

	max, ok := tbl.Num("HR_Rolling_Max")
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{120, 150, 180}, max, 0.01)

	trend, ok := tbl.Num("Calories_Trend")
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{0, 50, 100}, trend, 0.01)
}

func TestExerciseEngineerGenderAdjustment(t *testing.T) {
	tbl := exerciseTable(t)
	require.NoError(t, NewExerciseEngineer().EngineerFeatures(tbl))

	adjusted, ok := tbl.Num("Gender_Adjusted_Calories")
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{330, 400, 550}, adjusted, 0.01)
}

func TestExerciseEngineerAgeAdjustment(t *testing.T) {
	tbl := exerciseTable(t)
	require.NoError(t, NewExerciseEngineer().EngineerFeatures(tbl))

	adjusted, ok := tbl.Num("Age_Adjusted_Calories")
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{330, 400, 450}, adjusted, 0.01)
}

func TestExerciseEngineerSingleRowCollapsesRolling(t *testing.T) {
	tbl := dataset.NewTable(1)
	require.NoError(t, tbl.AddNum("ID", []float64{1}))
	require.NoError(t, tbl.AddNum("Heart Rate", []float64{150}))
	require.NoError(t, tbl.AddNum("Calories Burn", []float64{400}))

	require.NoError(t, NewExerciseEngineer().EngineerFeatures(tbl))

	mean, _ := tbl.Num("HR_Rolling_Mean")
	std, _ := tbl.Num("HR_Rolling_Std")
	trend, _ := tbl.Num("Calories_Trend")
	assert.InDelta(t, 150, mean[0], 0.01)
	assert.Zero(t, std[0])
	assert.Zero(t, trend[0])
}
