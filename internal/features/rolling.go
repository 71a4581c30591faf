package features

import "math"

// Rolling statistics over a causal window: position i covers the values at
// indexes [max(0, i-window+1), i]. A single valid value is enough to produce
// a result (min-periods of 1); NaN cells are skipped.

// RollingMean computes the rolling mean of vals.
func RollingMean(vals []float64, window int) []float64 {
	out := make([]float64, len(vals))
	for i := range vals {
		sum, n := 0.0, 0
		for j := windowStart(i, window); j <= i; j++ {
			if math.IsNaN(vals[j]) {
				continue
			}
			sum += vals[j]
			n++
		}
		if n == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(n)
	}
	return out
}

// RollingStd computes the rolling sample standard deviation of vals. Windows
// with fewer than two valid values yield 0.
func RollingStd(vals []float64, window int) []float64 {
	out := make([]float64, len(vals))
	for i := range vals {
		sum, n := 0.0, 0
		for j := windowStart(i, window); j <= i; j++ {
			if math.IsNaN(vals[j]) {
				continue
			}
			sum += vals[j]
			n++
		}
		if n < 2 {
			out[i] = 0
			continue
		}
		mean := sum / float64(n)
		ss := 0.0
		for j := windowStart(i, window); j <= i; j++ {
			if math.IsNaN(vals[j]) {
				continue
			}
			d := vals[j] - mean
			ss += d * d
		}
		out[i] = math.Sqrt(ss / float64(n-1))
	}
	return out
}

// RollingMax computes the rolling maximum of vals.
func RollingMax(vals []float64, window int) []float64 {
	out := make([]float64, len(vals))
	for i := range vals {
		max, found := math.Inf(-1), false
		for j := windowStart(i, window); j <= i; j++ {
			if math.IsNaN(vals[j]) {
				continue
			}
			if vals[j] > max {
				max = vals[j]
			}
			found = true
		}
		if !found {
			out[i] = math.NaN()
			continue
		}
		out[i] = max
	}
	return out
}

func windowStart(i, window int) int {
	start := i - window + 1
	if start < 0 {
		return 0
	}
	return start
}
