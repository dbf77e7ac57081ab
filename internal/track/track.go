// Package track defines data structures for parsed GPS track logs.
package track

import "time"

// Point is a single GPS fix.
type Point struct {
	// Latitude in degrees, positive north
	Latitude float64

	// Longitude in degrees, positive east
	Longitude float64

	// Elevation in meters above sea level
	// Nil when the source point carries no elevation
	Elevation *float64

	// Time is the recording timestamp
	// The zero value means the source point carries no timestamp
	Time time.Time
}

// Segment is an ordered sequence of contiguously recorded points.
// The recording order is semantically meaningful: it defines the track path.
type Segment struct {
	Points []Point
}

// Track is a named collection of recorded segments, in document order.
type Track struct {
	Name     string
	Segments []Segment
}

// Log is one parsed track-log document.
type Log struct {
	// Name from the source document metadata, may be empty
	Name string

	Tracks []Track
}
