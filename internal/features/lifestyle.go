package features

import (
	"math"

	"github.com/novahealth/riskengine/internal/models"
)

// Lifestyle feature names shared between aggregation, scoring and advice.
const (
	FeatDailyWaterMl       = "daily_water_ml"
	FeatHydrationFrequency = "hydration_frequency"
	FeatAvgWaterPerLog     = "avg_water_per_log"
	FeatAvgMoodIntensity   = "avg_mood_intensity"
	FeatMoodVariability    = "mood_variability"
	FeatStressFactorsCount = "stress_factors_count"
	FeatSymptomCount       = "symptom_count"
	FeatAvgSymptomSeverity = "avg_symptom_severity"
	FeatMaxSymptomSeverity = "max_symptom_severity"
	FeatExerciseDuration   = "exercise_duration"
	FeatExerciseIntensity  = "exercise_intensity"
	FeatHeartRate          = "heart_rate"
	FeatSleepHours         = "sleep_hours"
	FeatCaloriesConsumed   = "calories_consumed"
)

// stressFactors are mood factor tags that count toward the stress score.
var stressFactors = map[string]bool{
	"work":    true,
	"stress":  true,
	"anxiety": true,
}

// AggregateLifestyle flattens one day of lifestyle tracking into the derived
// feature record used by scoring and recommendations. Defaults follow the
// tracked-data semantics: no mood logs means a neutral 5, missing sleep means
// 7 hours, missing calorie intake means 2000.
func AggregateLifestyle(ls *models.LifestyleSnapshot) *Record {
	rec := NewRecord()

	rec.Set(FeatDailyWaterMl, float64(ls.TotalWaterMl))
	rec.Set(FeatHydrationFrequency, float64(len(ls.HydrationLogs)))
	logs := len(ls.HydrationLogs)
	if logs < 1 {
		logs = 1
	}
	rec.Set(FeatAvgWaterPerLog, float64(ls.TotalWaterMl)/float64(logs))

	if len(ls.MoodLogs) > 0 {
		intensities := make([]float64, len(ls.MoodLogs))
		stress := 0
		for i, log := range ls.MoodLogs {
			intensities[i] = 5
			if log.Intensity != nil {
				intensities[i] = *log.Intensity
			}
			for _, factor := range log.Factors {
				if stressFactors[factor] {
					stress++
				}
			}
		}
		rec.Set(FeatAvgMoodIntensity, mean(intensities))
		if len(intensities) > 1 {
			rec.Set(FeatMoodVariability, populationStd(intensities))
		} else {
			rec.Set(FeatMoodVariability, 0)
		}
		rec.Set(FeatStressFactorsCount, float64(stress))
	} else {
		rec.Set(FeatAvgMoodIntensity, 5)
		rec.Set(FeatMoodVariability, 0)
		rec.Set(FeatStressFactorsCount, 0)
	}

	if len(ls.Symptoms) > 0 {
		total, max := 0, 0
		for _, s := range ls.Symptoms {
			total += s.Severity
			if s.Severity > max {
				max = s.Severity
			}
		}
		rec.Set(FeatSymptomCount, float64(len(ls.Symptoms)))
		rec.Set(FeatAvgSymptomSeverity, float64(total)/float64(len(ls.Symptoms)))
		rec.Set(FeatMaxSymptomSeverity, float64(max))
	} else {
		rec.Set(FeatSymptomCount, 0)
		rec.Set(FeatAvgSymptomSeverity, 0)
		rec.Set(FeatMaxSymptomSeverity, 0)
	}

	rec.Set(FeatExerciseDuration, float64(intOr(ls.ExerciseDuration, 0)))
	rec.Set(FeatExerciseIntensity, float64(intOr(ls.ExerciseIntensity, 5)))
	rec.Set(FeatHeartRate, float64(intOr(ls.HeartRate, 0)))
	rec.Set(FeatSleepHours, floatOr(ls.SleepHours, 7.0))
	rec.Set(FeatCaloriesConsumed, float64(intOr(ls.CaloriesConsumed, 2000)))

	return rec
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func populationStd(vals []float64) float64 {
	m := mean(vals)
	ss := 0.0
	for _, v := range vals {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vals)))
}
