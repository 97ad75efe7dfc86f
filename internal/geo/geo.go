// Package geo computes geo-fence containment for attendance marking and
// task arrival verification.
package geo

import (
	"math"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// Policy selects how fence containment is computed.
type Policy string

const (
	// PolicyHaversine compares great-circle distance against the tolerance.
	PolicyHaversine Policy = "haversine"
	// PolicyBox reproduces the historical check: raw latitude/longitude
	// degree deltas compared against the kilometer tolerance. Not a true
	// distance; kept for deployments that depend on the old acceptance area.
	PolicyBox Policy = "box"
)

// earthRadiusM is the mean Earth radius used by the haversine formula.
const earthRadiusM = 6371000.0

// Fence is an immutable acceptance region around a reference point.
type Fence struct {
	Reference   domain.Coordinate
	ToleranceKm float64
	Policy      Policy
}

// Contains reports whether the reported coordinate lies within the fence.
// An unset policy means haversine.
func (f Fence) Contains(c domain.Coordinate) bool {
	if f.Policy == PolicyBox {
		return math.Abs(c.Latitude-f.Reference.Latitude) < f.ToleranceKm &&
			math.Abs(c.Longitude-f.Reference.Longitude) < f.ToleranceKm
	}
	return DistanceM(c, f.Reference) <= f.ToleranceKm*1000
}

// DistanceM returns the great-circle distance between two coordinates in
// meters, by the haversine formula.
func DistanceM(a, b domain.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusM * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
