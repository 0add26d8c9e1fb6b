package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/seek-sim/sim"
)

// ReadReport counts what happened to each token of an input stream.
type ReadReport struct {
	Source      string `json:"source"`
	Accepted    int    `json:"accepted"`
	Malformed   int    `json:"malformed"`
	OutOfBounds int    `json:"out_of_bounds"`
}

// Skipped is the number of tokens that did not become requests.
func (r *ReadReport) Skipped() int {
	return r.Malformed + r.OutOfBounds
}

// ReadTracks parses whitespace/newline separated decimal track numbers.
// A malformed or out-of-range token is skipped with a warning; reading goes on.
// Only I/O errors are returned.
func ReadTracks(r io.Reader, source string) ([]int, *ReadReport, error) {
	report := &ReadReport{Source: source}
	tracks := make([]int, 0)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		token := scanner.Text()
		track, err := strconv.Atoi(token)
		if err != nil {
			report.Malformed++
			logrus.Warnf("%s: skipping malformed value %q", source, token)
			continue
		}
		if !sim.InBounds(track) {
			report.OutOfBounds++
			logrus.Warnf("%s: value %d out of bounds [%d, %d], skipping", source, track, sim.MinTrack, sim.MaxTrack)
			continue
		}
		tracks = append(tracks, track)
		report.Accepted++
	}
	if err := scanner.Err(); err != nil {
		return nil, report, fmt.Errorf("reading %s: %w", source, err)
	}
	if report.Skipped() > 0 {
		logrus.Warnf("ReadTracks: %d values in %s were skipped (%d malformed, %d out of bounds)",
			report.Skipped(), source, report.Malformed, report.OutOfBounds)
	}
	return tracks, report, nil
}

// ReadTracksFile opens path and reads it with ReadTracks.
func ReadTracksFile(path string) ([]int, *ReadReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening request file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadTracks(file, path)
}
