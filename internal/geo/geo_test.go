package geo

import (
	"math"
	"testing"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

var office = domain.Coordinate{Latitude: 26.7428378, Longitude: 83.3797713}

func TestDistanceM(t *testing.T) {
	tests := []struct {
		name      string
		a, b      domain.Coordinate
		wantM     float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         office,
			b:         office,
			wantM:     0,
			tolerance: 0.001,
		},
		{
			// One millidegree of latitude is ~111.2 m regardless of longitude.
			name:      "millidegree north",
			a:         office,
			b:         domain.Coordinate{Latitude: office.Latitude + 0.001, Longitude: office.Longitude},
			wantM:     111.19,
			tolerance: 0.5,
		},
		{
			// A degree of longitude shrinks with latitude; at ~26.74N it is ~99.3 km.
			name:      "degree east at office latitude",
			a:         office,
			b:         domain.Coordinate{Latitude: office.Latitude, Longitude: office.Longitude + 1},
			wantM:     99300,
			tolerance: 200,
		},
		{
			name:      "equator degree of latitude",
			a:         domain.Coordinate{Latitude: 0, Longitude: 0},
			b:         domain.Coordinate{Latitude: 1, Longitude: 0},
			wantM:     111195,
			tolerance: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceM(tt.a, tt.b)
			if math.Abs(got-tt.wantM) > tt.tolerance {
				t.Errorf("DistanceM = %.2f, want %.2f (±%.2f)", got, tt.wantM, tt.tolerance)
			}
			// Distance is symmetric.
			if back := DistanceM(tt.b, tt.a); math.Abs(back-got) > 1e-9 {
				t.Errorf("DistanceM not symmetric: %.6f vs %.6f", got, back)
			}
		})
	}
}

func TestFenceContainsHaversine(t *testing.T) {
	fence := Fence{Reference: office, ToleranceKm: 0.2, Policy: PolicyHaversine}

	if !fence.Contains(office) {
		t.Error("reference point must be inside its own fence")
	}
	inside := domain.Coordinate{Latitude: office.Latitude + 0.001, Longitude: office.Longitude}
	if !fence.Contains(inside) {
		t.Errorf("point ~111m away should be inside a 200m fence")
	}
	outside := domain.Coordinate{Latitude: office.Latitude + 0.01, Longitude: office.Longitude}
	if fence.Contains(outside) {
		t.Errorf("point ~1.1km away should be outside a 200m fence")
	}
}

func TestFenceContainsBox(t *testing.T) {
	fence := Fence{Reference: office, ToleranceKm: 0.2, Policy: PolicyBox}

	// The legacy box compares degree deltas against the km tolerance, so its
	// acceptance area is a 0.2-degree box, far larger than 0.2 km.
	inside := domain.Coordinate{Latitude: office.Latitude + 0.19, Longitude: office.Longitude - 0.19}
	if !fence.Contains(inside) {
		t.Error("0.19 degree delta should pass a 0.2 box fence")
	}
	outside := domain.Coordinate{Latitude: office.Latitude + 0.2, Longitude: office.Longitude}
	if fence.Contains(outside) {
		t.Error("boundary delta equal to tolerance must be rejected (strict less-than)")
	}
	oneAxisOut := domain.Coordinate{Latitude: office.Latitude, Longitude: office.Longitude + 0.3}
	if fence.Contains(oneAxisOut) {
		t.Error("both axes must be within tolerance")
	}
}

func TestFenceDefaultsToHaversine(t *testing.T) {
	fence := Fence{Reference: office, ToleranceKm: 0.2}
	far := domain.Coordinate{Latitude: office.Latitude + 0.19, Longitude: office.Longitude}
	if fence.Contains(far) {
		t.Error("unset policy must behave as haversine, rejecting a ~21km point")
	}
}

// Growing the tolerance can only widen the acceptance area, never shrink it.
func TestFenceToleranceMonotonic(t *testing.T) {
	points := []domain.Coordinate{
		office,
		{Latitude: office.Latitude + 0.0005, Longitude: office.Longitude},
		{Latitude: office.Latitude + 0.001, Longitude: office.Longitude + 0.001},
		{Latitude: office.Latitude - 0.05, Longitude: office.Longitude + 0.02},
		{Latitude: office.Latitude + 1, Longitude: office.Longitude - 1},
	}
	for _, policy := range []Policy{PolicyHaversine, PolicyBox} {
		for _, p := range points {
			prev := false
			for tol := 0.05; tol <= 5.0; tol += 0.05 {
				got := Fence{Reference: office, ToleranceKm: tol, Policy: policy}.Contains(p)
				if prev && !got {
					t.Fatalf("policy %s: point %+v flipped inside->outside at tolerance %.2f", policy, p, tol)
				}
				prev = got
			}
		}
	}
}
