// Package geo computes great-circle distances between GPS coordinates.
package geo

import (
	"fmt"
	"math"

	"github.com/adietz/gpxtools/internal/track"
)

// earthRadiusM is the mean earth radius in meters.
const earthRadiusM = 6371000.0

// CoordinateError reports a latitude or longitude outside the valid range.
type CoordinateError struct {
	Latitude  float64
	Longitude float64
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate: latitude %v, longitude %v", e.Latitude, e.Longitude)
}

// PairDistance returns the great-circle distance in meters between two
// points, using the haversine formula on a spherical earth model.
// The result is symmetric in its arguments and 0 for identical coordinates.
// Returns a *CoordinateError if either point is outside the valid
// latitude/longitude ranges.
func PairDistance(a, b track.Point) (float64, error) {
	if err := validate(a); err != nil {
		return 0, err
	}
	if err := validate(b); err != nil {
		return 0, err
	}

	lat1 := degreesToRadians(a.Latitude)
	lon1 := degreesToRadians(a.Longitude)
	lat2 := degreesToRadians(b.Latitude)
	lon2 := degreesToRadians(b.Longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c, nil
}

// TrackLength returns the cumulative distance in meters along the given
// point sequence. Sequences with fewer than two points have length 0.
func TrackLength(points []track.Point) (float64, error) {
	var total float64

	for i := 1; i < len(points); i++ {
		d, err := PairDistance(points[i-1], points[i])
		if err != nil {
			return 0, err
		}
		total += d
	}

	return total, nil
}

func validate(p track.Point) error {
	if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
		return &CoordinateError{Latitude: p.Latitude, Longitude: p.Longitude}
	}
	return nil
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
