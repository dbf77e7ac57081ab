// Package splitter partitions the point stream of a track log into
// bounded-size output segments.
package splitter

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/adietz/gpxtools/internal/geo"
	"github.com/adietz/gpxtools/internal/track"
)

// SegmentWriter persists one named output segment.
type SegmentWriter interface {
	Write(name string, seg track.Segment) error
}

// Splitter splits track logs into output units of at most MaxPoints points
// each. Consecutive units share one boundary point so every unit's path
// connects to the next.
type Splitter struct {
	cfg    Config
	writer SegmentWriter
	logger hclog.Logger
}

// New creates a Splitter. The configuration is validated here, before any
// input is read. logger carries the per-unit diagnostics; nil disables them.
func New(cfg Config, writer SegmentWriter, logger hclog.Logger) (*Splitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if writer == nil {
		return nil, fmt.Errorf("segment writer is required")
	}

	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Splitter{
		cfg:    cfg,
		writer: writer,
		logger: logger,
	}, nil
}

// Split streams all points of trackLog, in document order, into output
// units and hands each completed unit to the writer. A final remainder of
// one point or less is dropped. The first write failure aborts the run;
// units already written stay on disk. Returns the number of units written.
func (s *Splitter) Split(trackLog *track.Log) (int, error) {
	buf := make([]track.Point, 0, s.cfg.MaxPoints)
	count := 0

	for _, trk := range trackLog.Tracks {
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				buf = append(buf, p)

				if len(buf) >= s.cfg.MaxPoints {
					if err := s.emit(count+1, buf); err != nil {
						return count, err
					}
					count++

					// Seed the next buffer with the boundary point so the
					// split paths stay connected.
					buf = make([]track.Point, 0, s.cfg.MaxPoints)
					buf = append(buf, p)
				}
			}
		}
	}

	// A single leftover point would make a degenerate one-point track.
	if len(buf) > 1 {
		if err := s.emit(count+1, buf); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

func (s *Splitter) emit(n int, points []track.Point) error {
	name := fmt.Sprintf("%s_%d", s.cfg.BaseName, n)

	s.logLength(name, points)

	if err := s.writer.Write(name, track.Segment{Points: points}); err != nil {
		return fmt.Errorf("failed to write unit %s: %w", name, err)
	}

	return nil
}

// logLength reports the unit's point count and geodesic length at debug
// severity. The length is only computed when debug output is enabled, and
// a failed computation never blocks the write.
func (s *Splitter) logLength(name string, points []track.Point) {
	if !s.logger.IsDebug() {
		return
	}

	length, err := geo.TrackLength(points)
	if err != nil {
		s.logger.Warn("skipping length for unit",
			"name", name,
			"points", len(points),
			"error", err,
		)
		return
	}

	s.logger.Debug("writing unit",
		"name", name,
		"points", len(points),
		"length_m", fmt.Sprintf("%.1f", length),
	)
}
