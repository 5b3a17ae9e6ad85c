package cluster

import (
	"math"

	"github.com/kozaktomas/photo-grouper/internal/metadata"
)

const earthRadiusKm = 6371

// TimeEdge reports whether two files were plausibly captured at the same
// time: both have timestamps and the difference is within the threshold
// (boundary inclusive).
func TimeEdge(a, b FileRecord, thresholdSeconds float64) bool {
	if a.TakenAt == nil || b.TakenAt == nil {
		return false
	}
	diff := math.Abs(a.TakenAt.Sub(*b.TakenAt).Seconds())
	return diff <= thresholdSeconds
}

// LocationEdge reports whether two files were plausibly captured at the same
// place: both have geotags and the great-circle distance is within the
// threshold (boundary inclusive).
func LocationEdge(a, b FileRecord, thresholdKm float64) bool {
	if a.Geotag == nil || b.Geotag == nil {
		return false
	}
	return HaversineKm(*a.Geotag, *b.Geotag) <= thresholdKm
}

// HaversineKm computes the great-circle distance between two coordinates on
// a sphere of radius 6371 km.
func HaversineKm(p1, p2 metadata.Geotag) float64 {
	lat1 := p1.Latitude * math.Pi / 180
	lat2 := p2.Latitude * math.Pi / 180
	dLat := (p2.Latitude - p1.Latitude) * math.Pi / 180
	dLon := (p2.Longitude - p1.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}
