package geo

import (
	"testing"

	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	istanbul = entity.Point{Latitude: 41.0082, Longitude: 28.9784}
	ankara   = entity.Point{Latitude: 39.9334, Longitude: 32.8597}
)

func TestDistance(t *testing.T) {
	tests := []struct {
		unit     Unit
		min, max float64
	}{
		{Kilometers, 340, 360},
		{Miles, 210, 225},
		{Meters, 340000, 360000},
	}
	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			r := Distance(istanbul, ankara, tt.unit)
			assert.Greater(t, r.Distance, tt.min)
			assert.Less(t, r.Distance, tt.max)
			assert.Equal(t, tt.unit, r.Unit)
			assert.Equal(t, istanbul, r.PointA)
			assert.Equal(t, ankara, r.PointB)
		})
	}
}

func TestDistanceSamePoint(t *testing.T) {
	for _, p := range []entity.Point{istanbul, {Latitude: -33.86, Longitude: 151.2}, {}} {
		assert.Equal(t, 0.0, Distance(p, p, Kilometers).Distance)
	}
}

func TestDistanceMetersMatchKilometers(t *testing.T) {
	km := Distance(istanbul, ankara, Kilometers).Distance
	m := Distance(istanbul, ankara, Meters).Distance
	assert.InDelta(t, km*1000, m, 10)
}

func TestDistanceUnknownUnit(t *testing.T) {
	r := Distance(istanbul, ankara, Unit("furlong"))
	assert.Equal(t, Kilometers, r.Unit)
	assert.Equal(t, Distance(istanbul, ankara, Kilometers).Distance, r.Distance)
}

func TestDistanceRounding(t *testing.T) {
	r := Distance(entity.Point{Latitude: 41, Longitude: 29}, entity.Point{Latitude: 40, Longitude: 30}, Kilometers)
	assert.Equal(t, r.Distance, float64(int(r.Distance*100+0.5))/100)
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{"": Kilometers, "km": Kilometers, "MI": Miles, " m ": Meters} {
		got, err := ParseUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseUnit("yards")
	assert.Error(t, err)
}

func TestInBoundingBox(t *testing.T) {
	turkey := entity.BoundingBox{North: 42.1, South: 35.8, East: 44.8, West: 26.0}

	assert.True(t, InBoundingBox(istanbul, turkey))
	assert.True(t, InBoundingBox(entity.Point{Latitude: 42.1, Longitude: 26.0}, turkey))
	assert.False(t, InBoundingBox(entity.Point{Latitude: 48.85, Longitude: 2.35}, turkey))
	assert.False(t, InBoundingBox(entity.Point{Latitude: 34.0, Longitude: 30.0}, turkey))
}
