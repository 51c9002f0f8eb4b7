package geo

import "math"

// Point is a location on the planar latitude/longitude grid used by the schema.
type Point struct {
	Lat float64
	Lon float64
}

// Distance is the straight-line distance between a and b, treating
// latitude and longitude as planar coordinates.
func Distance(a, b Point) float64 {
	dLat := a.Lat - b.Lat
	dLon := a.Lon - b.Lon
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// Within reports whether b lies at most radius away from a.
func Within(a, b Point, radius float64) bool {
	return Distance(a, b) <= radius
}
