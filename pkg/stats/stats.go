// Package stats provides the aggregate functions used by the analysis
// pipeline: mean, median, sample standard deviation, max and sum.
package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrNoValues is returned when an aggregate is asked for an empty input.
// Aggregating nothing is a pipeline bug, not a value.
var ErrNoValues = errors.New("stats: no values")

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoValues
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Median returns the statistical median of values. The input is not
// modified.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoValues
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// StdDev returns the sample standard deviation (n-1 denominator) of
// values. A single value has no spread and yields 0.
func StdDev(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoValues
	}
	if len(values) == 1 {
		return 0, nil
	}
	mean, _ := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1)), nil
}

// Max returns the largest of values.
func Max(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoValues
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// Sum returns the sum of values.
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}
