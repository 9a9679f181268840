// Package geo measures trip lengths over the earth's surface.
package geo

import (
	"iter"
	"math"
	"time"
)

const (
	// EarthRadiusKm is the mean earth radius used for great-circle distances.
	EarthRadiusKm = 6371.0

	// DefaultSpeedKmh is the average speed assumed for travel time estimates.
	DefaultSpeedKmh = 50.0
)

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lng"`
}

// Distance returns the great-circle distance between a and b in kilometres,
// using the haversine formula.
func Distance(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	sLat := math.Sin(dLat / 2)
	sLon := math.Sin(dLon / 2)
	h := math.Min(sLat*sLat+math.Cos(lat1)*math.Cos(lat2)*sLon*sLon, 1)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// PathLength sums the distances between consecutive points.
func PathLength(points []Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}

// PathLengthSeq is PathLength over a sequence of points.
func PathLengthSeq(points iter.Seq[Point]) float64 {
	var (
		total float64
		prev  Point
		first = true
	)
	for p := range points {
		if !first {
			total += Distance(prev, p)
		}
		prev, first = p, false
	}
	return total
}

// TravelTime estimates how long km takes at speedKmh, rounded to the minute.
// A non-positive speed yields zero.
func TravelTime(km, speedKmh float64) time.Duration {
	if speedKmh <= 0 {
		return 0
	}
	return time.Duration(math.Round(km/speedKmh*60)) * time.Minute
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
