package gpxfile

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adietz/gpxtools/internal/track"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>morning ride</name>
    <trkseg>
      <trkpt lat="43.1000" lon="11.2000"><ele>310.5</ele><time>2021-05-01T08:00:00Z</time></trkpt>
      <trkpt lat="43.1010" lon="11.2010"><ele>311.0</ele><time>2021-05-01T08:00:10Z</time></trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="43.1020" lon="11.2020"><time>2021-05-01T08:00:20Z</time></trkpt>
    </trkseg>
  </trk>
  <trk>
    <name>afternoon ride</name>
    <trkseg>
      <trkpt lat="43.2000" lon="11.3000"></trkpt>
    </trkseg>
  </trk>
</gpx>`

func writeSample(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample.gpx")
	if err := os.WriteFile(path, []byte(sampleGPX), 0o644); err != nil {
		t.Fatalf("Failed to write sample file: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	trackLog, err := Read(writeSample(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(trackLog.Tracks) != 2 {
		t.Fatalf("Expected 2 tracks, got %d", len(trackLog.Tracks))
	}

	first := trackLog.Tracks[0]
	if first.Name != "morning ride" {
		t.Errorf("Expected track name 'morning ride', got %q", first.Name)
	}
	if len(first.Segments) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(first.Segments))
	}
	if len(first.Segments[0].Points) != 2 {
		t.Fatalf("Expected 2 points in first segment, got %d", len(first.Segments[0].Points))
	}

	p := first.Segments[0].Points[0]
	if math.Abs(p.Latitude-43.1) > 1e-6 || math.Abs(p.Longitude-11.2) > 1e-6 {
		t.Errorf("Expected point at (43.1, 11.2), got (%v, %v)", p.Latitude, p.Longitude)
	}
	if p.Elevation == nil || math.Abs(*p.Elevation-310.5) > 1e-6 {
		t.Errorf("Expected elevation 310.5, got %v", p.Elevation)
	}
	want := time.Date(2021, 5, 1, 8, 0, 0, 0, time.UTC)
	if !p.Time.Equal(want) {
		t.Errorf("Expected time %v, got %v", want, p.Time)
	}

	// The second track's point carries neither elevation nor time
	untimed := trackLog.Tracks[1].Segments[0].Points[0]
	if untimed.Elevation != nil {
		t.Errorf("Expected nil elevation, got %v", *untimed.Elevation)
	}
	if !untimed.Time.IsZero() {
		t.Errorf("Expected zero time, got %v", untimed.Time)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.gpx"))
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}
}

func TestReadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.gpx")
	if err := os.WriteFile(path, []byte("<gpx><trk>"), 0o644); err != nil {
		t.Fatalf("Failed to write broken file: %v", err)
	}

	if _, err := Read(path); err == nil {
		t.Fatal("Expected an error, got nil")
	}
}

func TestWriteReadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	ele := 420.0
	seg := track.Segment{Points: []track.Point{
		{Latitude: 43.5, Longitude: 11.5, Elevation: &ele, Time: time.Date(2021, 5, 1, 9, 0, 0, 0, time.UTC)},
		{Latitude: 43.6, Longitude: 11.6, Time: time.Date(2021, 5, 1, 9, 0, 10, 0, time.UTC)},
	}}

	w := &Writer{DestDir: dir}
	if err := w.Write("ride_1", seg); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	trackLog, err := Read(filepath.Join(dir, "ride_1.gpx"))
	if err != nil {
		t.Fatalf("Expected no error reading written file, got %v", err)
	}

	if len(trackLog.Tracks) != 1 {
		t.Fatalf("Expected exactly 1 track, got %d", len(trackLog.Tracks))
	}
	if len(trackLog.Tracks[0].Segments) != 1 {
		t.Fatalf("Expected exactly 1 segment, got %d", len(trackLog.Tracks[0].Segments))
	}

	points := trackLog.Tracks[0].Segments[0].Points
	if len(points) != len(seg.Points) {
		t.Fatalf("Expected %d points, got %d", len(seg.Points), len(points))
	}

	for i, got := range points {
		want := seg.Points[i]
		if math.Abs(got.Latitude-want.Latitude) > 1e-6 || math.Abs(got.Longitude-want.Longitude) > 1e-6 {
			t.Errorf("Point %d: expected (%v, %v), got (%v, %v)",
				i, want.Latitude, want.Longitude, got.Latitude, got.Longitude)
		}
		if !got.Time.Equal(want.Time) {
			t.Errorf("Point %d: expected time %v, got %v", i, want.Time, got.Time)
		}
	}

	if points[0].Elevation == nil || math.Abs(*points[0].Elevation-ele) > 1e-6 {
		t.Errorf("Expected elevation %v, got %v", ele, points[0].Elevation)
	}
	if points[1].Elevation != nil {
		t.Errorf("Expected nil elevation, got %v", *points[1].Elevation)
	}
}

func TestWriteCreatesDestDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "chunks")
	w := &Writer{DestDir: dir, MkdirAll: true}

	seg := track.Segment{Points: []track.Point{
		{Latitude: 1, Longitude: 1},
		{Latitude: 2, Longitude: 2},
	}}

	if err := w.Write("ride_1", seg); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "ride_1.gpx")); err != nil {
		t.Errorf("Expected output file to exist, got %v", err)
	}
}

func TestWriteFailsOnMissingDestDir(t *testing.T) {
	w := &Writer{DestDir: filepath.Join(t.TempDir(), "does", "not", "exist")}

	seg := track.Segment{Points: []track.Point{{Latitude: 1, Longitude: 1}}}
	if err := w.Write("ride_1", seg); err == nil {
		t.Fatal("Expected an error, got nil")
	}
}
