// sim/metrics_utils.go
package sim

import (
	"math"
)

type IntOrFloat64 interface {
	int | int64 | float64
}

// CalculateMean is a util function that calculates the arithmetic mean of a data list.
// Empty input yields 0.
func CalculateMean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, number := range numbers {
		sum += float64(number)
	}

	return sum / float64(len(numbers))
}

// CalculateStdDev returns the population standard deviation (divides by n, not n-1).
// Empty input yields 0.
func CalculateStdDev[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}

	mean := CalculateMean(numbers)
	sumSq := 0.0
	for _, number := range numbers {
		d := float64(number) - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(len(numbers)))
}

// TravelDistance is the number of tracks crossed visiting order from start:
// |order[0]-start| + sum |order[i]-order[i-1]|.
func TravelDistance(start int, order []int) int64 {
	var distance int64
	prev := start
	for _, track := range order {
		distance += int64(absDiff(track, prev))
		prev = track
	}
	return distance
}
