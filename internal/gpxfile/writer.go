package gpxfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/adietz/gpxtools/internal/track"
)

// creator is written into the GPX header of every output file.
const creator = "gpxtools"

// Writer persists single segments as standalone GPX documents.
type Writer struct {
	// DestDir is the directory output files are written to.
	DestDir string

	// MkdirAll creates DestDir (and parents) on write when set.
	MkdirAll bool
}

// Write serializes seg as a GPX document holding exactly one track with
// exactly one segment and persists it at {DestDir}/{name}.gpx.
// A failed write is not retried.
func (w *Writer) Write(name string, seg track.Segment) error {
	if w.MkdirAll {
		if err := os.MkdirAll(w.DestDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", w.DestDir, err)
		}
	}

	out := gpx.GPXTrackSegment{Points: make([]gpx.GPXPoint, 0, len(seg.Points))}
	for _, p := range seg.Points {
		out.Points = append(out.Points, toGPXPoint(p))
	}

	doc := &gpx.GPX{Creator: creator}
	doc.Tracks = append(doc.Tracks, gpx.GPXTrack{
		Name:     name,
		Segments: []gpx.GPXTrackSegment{out},
	})

	xml, err := doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return fmt.Errorf("failed to serialize segment %s: %w", name, err)
	}

	path := filepath.Join(w.DestDir, name+".gpx")
	if err := os.WriteFile(path, xml, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func toGPXPoint(p track.Point) gpx.GPXPoint {
	out := gpx.GPXPoint{Timestamp: p.Time}
	out.Latitude = p.Latitude
	out.Longitude = p.Longitude

	if p.Elevation != nil {
		out.Elevation = *gpx.NewNullableFloat64(*p.Elevation)
	}

	return out
}
