// Package inspect summarizes the contents of a track log.
package inspect

import (
	"time"

	"github.com/adietz/gpxtools/internal/geo"
	"github.com/adietz/gpxtools/internal/track"
)

// Report describes one track log.
type Report struct {
	Tracks   int
	Segments int
	Points   int

	// TimedPoints is the number of points carrying a timestamp.
	TimedPoints int

	// First and Last are the earliest and latest timestamps among timed
	// points. Zero when no point is timed.
	First time.Time
	Last  time.Time

	// OutOfOrder counts timed points recorded earlier than the point
	// before them. Some devices produce these and some upload services
	// reject the whole file for it.
	OutOfOrder int

	// LengthMeters is the geodesic length of the whole point stream.
	LengthMeters float64

	// LengthErr is set when the length could not be computed, e.g. on an
	// out-of-range coordinate. The rest of the report stays valid.
	LengthErr error
}

// Summarize walks all points of trackLog in document order.
func Summarize(trackLog *track.Log) Report {
	var r Report
	var all []track.Point
	var prev time.Time

	for _, trk := range trackLog.Tracks {
		r.Tracks++
		for _, seg := range trk.Segments {
			r.Segments++
			for _, p := range seg.Points {
				r.Points++
				all = append(all, p)

				if p.Time.IsZero() {
					continue
				}

				r.TimedPoints++
				if r.First.IsZero() || p.Time.Before(r.First) {
					r.First = p.Time
				}
				if p.Time.After(r.Last) {
					r.Last = p.Time
				}
				if !prev.IsZero() && p.Time.Before(prev) {
					r.OutOfOrder++
				}
				prev = p.Time
			}
		}
	}

	length, err := geo.TrackLength(all)
	if err != nil {
		r.LengthErr = err
		return r
	}
	r.LengthMeters = length

	return r
}
