// Package gpxfile reads and writes GPX documents, converting between the
// on-disk format and the internal track model.
package gpxfile

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/adietz/gpxtools/internal/track"
)

// Read parses the GPX file at path into a track log.
// Tracks, segments and points are kept in document order.
func Read(path string) (*track.Log, error) {
	doc, err := gpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GPX file %s: %w", path, err)
	}

	trackLog := &track.Log{Name: doc.Name}

	for _, trk := range doc.Tracks {
		t := track.Track{Name: trk.Name}

		for _, seg := range trk.Segments {
			s := track.Segment{Points: make([]track.Point, 0, len(seg.Points))}
			for _, p := range seg.Points {
				s.Points = append(s.Points, fromGPXPoint(p))
			}
			t.Segments = append(t.Segments, s)
		}

		trackLog.Tracks = append(trackLog.Tracks, t)
	}

	return trackLog, nil
}

func fromGPXPoint(p gpx.GPXPoint) track.Point {
	out := track.Point{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Time:      p.Timestamp,
	}

	if p.Elevation.NotNull() {
		v := p.Elevation.Value()
		out.Elevation = &v
	}

	return out
}
