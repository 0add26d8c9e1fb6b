// Package sim provides the disk head scheduling engine for seek-sim.
//
// # Reading Guide
//
// Start with these files:
//   - request.go: track bounds and validation
//   - scheduler.go: the SeekScheduler interface and the FCFS, SSTF and SCAN policies
//   - simulator.go: runs every selected policy from the same start position
//
// # Architecture
//
// Schedulers are pure: Order returns a new permutation of its input and never
// touches the caller's slice. All mutable state lives in a HeadState owned by
// a single policy run, so policies never observe each other. With a batch size
// set, the run's HeadState carries over from one arrival window to the next.
//
// Sub-packages:
//   - sim/workload/: request sources (file/stdin reader, random generator, YAML scenarios)
//   - sim/trace/: per-seek records and run summaries
//   - sim/report/: text, table and JSON rendering
//
// Statistics (RunStatistics) are derived after ordering: total head travel,
// plus the mean and population standard deviation of the requested tracks.
package sim
