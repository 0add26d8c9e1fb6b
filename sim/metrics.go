// Derived, read-only statistics for a single policy run.

package sim

// RunStatistics holds the numbers reported for one serviced ordering.
// Mean and StdDev describe the raw request distribution, so they are the same
// for every policy fed the same requests; Distance depends on the ordering.
type RunStatistics struct {
	Count    int     `json:"count"`
	Distance int64   `json:"distance"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
}

// NewRunStatistics computes statistics for order serviced from start.
// Empty orders produce an all-zero result rather than dividing by zero.
func NewRunStatistics(start int, order []int) RunStatistics {
	return RunStatistics{
		Count:    len(order),
		Distance: TravelDistance(start, order),
		Mean:     CalculateMean(order),
		StdDev:   CalculateStdDev(order),
	}
}
