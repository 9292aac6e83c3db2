// Package geo holds great-circle distance and bounding box helpers.
package geo

import (
	"fmt"
	"math"
	"strings"

	"github.com/ozkangu/travel-mcp/internal/travel/entity"
)

const EarthRadiusKm = 6371

type Unit string

const (
	Kilometers Unit = "km"
	Miles      Unit = "mi"
	Meters     Unit = "m"
)

var unitFactor = map[Unit]float64{
	Kilometers: 1,
	Miles:      0.621371,
	Meters:     1000,
}

// ParseUnit accepts km, mi or m. An empty string means km.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if u == "" {
		return Kilometers, nil
	}
	if _, ok := unitFactor[u]; !ok {
		return "", fmt.Errorf("unknown distance unit %q", s)
	}
	return u, nil
}

type DistanceResult struct {
	Distance float64
	Unit     Unit
	PointA   entity.Point
	PointB   entity.Point
}

// Distance is the haversine distance between a and b, rounded to two
// decimals. Unknown units fall back to kilometers.
func Distance(a, b entity.Point, unit Unit) DistanceResult {
	factor, ok := unitFactor[unit]
	if !ok {
		unit, factor = Kilometers, 1
	}

	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return DistanceResult{
		Distance: math.Round(EarthRadiusKm*c*factor*100) / 100,
		Unit:     unit,
		PointA:   a,
		PointB:   b,
	}
}

// InBoundingBox reports whether p lies inside box, edges included.
func InBoundingBox(p entity.Point, box entity.BoundingBox) bool {
	return p.Latitude >= box.South && p.Latitude <= box.North &&
		p.Longitude >= box.West && p.Longitude <= box.East
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
