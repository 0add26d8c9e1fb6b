// Package report renders simulation results: the classic text blocks, a
// policy comparison table and a JSON document.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/inference-sim/seek-sim/sim"
)

// Format selects a renderer.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

var validFormats = map[Format]bool{FormatText: true, FormatTable: true, FormatJSON: true, "": true}

// IsValidFormat reports whether name is a recognized output format.
func IsValidFormat(name string) bool {
	return validFormats[Format(name)]
}

// Options controls rendering.
type Options struct {
	Format     Format
	ListOrders bool // print each serviced order after its statistics
	Color      bool
}

// Report is the complete outcome of one run.
type Report struct {
	Source        string             `json:"source"`
	StartPosition int                `json:"start_position"`
	BatchSize     int                `json:"batch_size"`
	Requests      int                `json:"requests"`
	Skipped       int                `json:"skipped"`
	Results       []sim.PolicyResult `json:"results"`
}

// Write renders r to w in the format chosen by opts.
func Write(w io.Writer, r *Report, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return WriteText(w, r.Results, opts)
	case FormatTable:
		return WriteTable(w, r, opts)
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func headerColor(opts Options) *color.Color {
	c := color.New(color.FgCyan, color.Bold)
	if !opts.Color {
		c.DisableColor()
	}
	return c
}

// WriteText prints, per policy, an underlined title, the statistics and
// optionally the serviced order.
func WriteText(w io.Writer, results []sim.PolicyResult, opts Options) error {
	header := headerColor(opts)
	for _, r := range results {
		if _, err := header.Fprintln(w, r.Title); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", len(r.Title))); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Distance: %d\nMean: %.4f\nStandard deviation: %.4f\n\n",
			r.Stats.Distance, r.Stats.Mean, r.Stats.StdDev); err != nil {
			return err
		}
		if opts.ListOrders && len(r.Order) > 0 {
			if _, err := fmt.Fprintf(w, "%s\n\n", JoinTracks(r.Order)); err != nil {
				return err
			}
		}
	}
	return nil
}

// JoinTracks formats tracks as "a, b, c".
func JoinTracks(tracks []int) string {
	parts := make([]string, len(tracks))
	for i, t := range tracks {
		parts[i] = fmt.Sprintf("%d", t)
	}
	return strings.Join(parts, ", ")
}

// rankByDistance returns results ordered by ascending distance; ties keep input order.
func rankByDistance(results []sim.PolicyResult) []sim.PolicyResult {
	ranked := append([]sim.PolicyResult(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stats.Distance < ranked[j].Stats.Distance
	})
	return ranked
}

func vsBest(distance, best int64, rank int) string {
	if rank == 1 {
		return "baseline"
	}
	if best == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(distance)/float64(best))
}

// WriteTable prints a comparison of every policy, best first.
func WriteTable(w io.Writer, r *Report, opts Options) error {
	if _, err := headerColor(opts).Fprintf(w, "%d requests from track %d\n", r.Requests, r.StartPosition); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Rank", "Policy", "Distance", "Seeks", "Reversals", "Max Seek", "Mean Seek", "vs Best")

	ranked := rankByDistance(r.Results)
	var best int64
	if len(ranked) > 0 {
		best = ranked[0].Stats.Distance
	}
	for i, res := range ranked {
		_ = table.Append(
			fmt.Sprintf("%d", i+1),
			res.Title,
			fmt.Sprintf("%d", res.Stats.Distance),
			fmt.Sprintf("%d", res.Summary.TotalSeeks),
			fmt.Sprintf("%d", res.Summary.Reversals),
			fmt.Sprintf("%d", res.Summary.MaxSeek),
			fmt.Sprintf("%.2f", res.Summary.MeanSeek),
			vsBest(res.Stats.Distance, best, i+1),
		)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering comparison table: %w", err)
	}

	if len(r.Results) > 0 {
		stats := r.Results[0].Stats
		_, err := fmt.Fprintf(w, "Mean: %.4f  Standard deviation: %.4f\n", stats.Mean, stats.StdDev)
		return err
	}
	return nil
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
