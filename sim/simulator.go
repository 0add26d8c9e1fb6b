// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/seek-sim/sim/trace"
)

// PolicyResult is everything one policy produced for the shared request set.
type PolicyResult struct {
	Policy  string              `json:"policy"`
	Title   string              `json:"title"`
	Order   []int               `json:"order"`
	Stats   RunStatistics       `json:"stats"`
	Summary *trace.TraceSummary `json:"summary"`
	Head    HeadState           `json:"head"`
	Seeks   []trace.SeekRecord  `json:"seeks,omitempty"`
}

// Simulator runs every configured policy against the same requests.
// Policies never share head state: each starts from Config.StartPosition with
// its own HeadState, which is carried across batches within that policy only.
type Simulator struct {
	Config   SimConfig
	Requests []int
}

// NewSimulator validates cfg and takes a private copy of requests.
func NewSimulator(cfg SimConfig, requests []int) (*Simulator, error) {
	if len(cfg.Policies) == 0 {
		cfg.Policies = append([]string(nil), DefaultSchedulers...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	if err := ValidateTracks(requests); err != nil {
		return nil, err
	}
	return &Simulator{Config: cfg, Requests: cloneTracks(requests)}, nil
}

// Run executes each policy in configuration order.
func (sim *Simulator) Run() []PolicyResult {
	logrus.Infof("Simulating %d requests from track %d (policies=%v, batch=%d)",
		len(sim.Requests), sim.Config.StartPosition, sim.Config.Policies, sim.Config.BatchSize)

	results := make([]PolicyResult, 0, len(sim.Config.Policies))
	for _, name := range sim.Config.Policies {
		results = append(results, sim.RunPolicy(NewScheduler(name)))
	}
	return results
}

// RunPolicy services all requests with sched, batch by batch.
func (sim *Simulator) RunPolicy(sched SeekScheduler) PolicyResult {
	head := NewHeadState(sim.Config.StartPosition)
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: sim.Config.TraceLevel})
	order := make([]int, 0, len(sim.Requests))

	for b, batch := range Batches(sim.Requests, sim.Config.BatchSize) {
		for _, track := range sched.Order(batch, head.Position) {
			from := head.Position
			head.MoveTo(track)
			st.RecordSeek(b, from, track)
			order = append(order, track)
		}
		logrus.Debugf("[%s] batch %d done: head=%d traveled=%d", sched.Name(), b, head.Position, head.Traveled)
	}

	return PolicyResult{
		Policy:  sched.Name(),
		Title:   SchedulerTitle(sched.Name()),
		Order:   order,
		Stats:   NewRunStatistics(sim.Config.StartPosition, order),
		Summary: trace.Summarize(st),
		Head:    *head,
		Seeks:   st.Retained(),
	}
}

// Batches splits tracks into consecutive arrival windows of size n.
// n <= 0 yields a single window holding everything; empty input yields none.
func Batches(tracks []int, n int) [][]int {
	if len(tracks) == 0 {
		return nil
	}
	if n <= 0 || n >= len(tracks) {
		return [][]int{tracks}
	}
	out := make([][]int, 0, (len(tracks)+n-1)/n)
	for i := 0; i < len(tracks); i += n {
		out = append(out, tracks[i:min(i+n, len(tracks))])
	}
	return out
}
