package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ozkangu/travel-mcp/internal/pkg/pkgerror"
	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveJSON(t *testing.T, check func(r *http.Request), payload any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNominatimGeocode(t *testing.T) {
	srv := serveJSON(t, func(r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Galata Tower", r.URL.Query().Get("q"))
		assert.Equal(t, "tr", r.URL.Query().Get("countrycodes"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
	}, []map[string]any{{
		"lat":          "41.0256",
		"lon":          "28.9741",
		"display_name": "Galata Kulesi, Beyoglu, Istanbul",
		"type":         "tower",
		"importance":   0.61,
		"boundingbox":  []string{"41.02", "41.03", "28.97", "28.98"},
	}})

	g := NewNominatim(srv.Client(), "test-agent").WithBaseURL(srv.URL)
	results, err := g.Geocode(context.Background(), "Galata Tower", "TR")
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.InDelta(t, 41.0256, r.Latitude, 1e-9)
	assert.InDelta(t, 28.9741, r.Longitude, 1e-9)
	assert.Equal(t, "tower", r.Type)
	assert.Equal(t, 0.61, r.Importance)
	assert.Equal(t, &entity.BoundingBox{South: 41.02, North: 41.03, West: 28.97, East: 28.98}, r.BoundingBox)
}

func TestNominatimGeocodeWithoutCountry(t *testing.T) {
	srv := serveJSON(t, func(r *http.Request) {
		_, ok := r.URL.Query()["countrycodes"]
		assert.False(t, ok)
	}, []map[string]any{})

	results, err := NewNominatim(srv.Client(), "").WithBaseURL(srv.URL).Geocode(context.Background(), "museum", "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNominatimReverse(t *testing.T) {
	srv := serveJSON(t, func(r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "41.0082", r.URL.Query().Get("lat"))
		assert.Equal(t, "28.9784", r.URL.Query().Get("lon"))
	}, map[string]any{"lat": "41.0082", "lon": "28.9784", "display_name": "Fatih, Istanbul", "type": "suburb"})

	r, err := NewNominatim(srv.Client(), "").WithBaseURL(srv.URL).Reverse(context.Background(), 41.0082, 28.9784)
	require.NoError(t, err)
	assert.Equal(t, "Fatih, Istanbul", r.DisplayName)
	assert.Nil(t, r.BoundingBox)
}

func TestNominatimReverseError(t *testing.T) {
	srv := serveJSON(t, nil, map[string]any{"error": "Unable to geocode"})

	_, err := NewNominatim(srv.Client(), "").WithBaseURL(srv.URL).Reverse(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Equal(t, pkgerror.CodeNotFound, pkgerror.CodeOf(err))
	assert.Contains(t, err.Error(), "Unable to geocode")
}

func TestUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewNominatim(srv.Client(), "").WithBaseURL(srv.URL).Geocode(context.Background(), "x", "")
	require.Error(t, err)
	assert.Equal(t, pkgerror.CodeUpstream, pkgerror.CodeOf(err))
	assert.Contains(t, err.Error(), "429")
}

func TestMapboxGeocode(t *testing.T) {
	srv := serveJSON(t, func(r *http.Request) {
		assert.Equal(t, "/Kiz Kulesi.json", r.URL.Path)
		assert.Equal(t, "tok", r.URL.Query().Get("access_token"))
		assert.Equal(t, "tr", r.URL.Query().Get("country"))
	}, map[string]any{"features": []map[string]any{{
		"center":     []float64{29.0041, 41.0211},
		"place_name": "Kiz Kulesi, Uskudar",
		"place_type": []string{"poi"},
		"relevance":  0.9,
		"bbox":       []float64{29.0, 41.0, 29.1, 41.1},
	}}})

	results, err := NewMapbox(srv.Client(), "tok").WithBaseURL(srv.URL).Geocode(context.Background(), "Kiz Kulesi", "TR")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 41.0211, results[0].Latitude)
	assert.Equal(t, 29.0041, results[0].Longitude)
	assert.Equal(t, "poi", results[0].Type)
	assert.Equal(t, &entity.BoundingBox{West: 29.0, South: 41.0, East: 29.1, North: 41.1}, results[0].BoundingBox)
}

func TestMapboxReverse(t *testing.T) {
	srv := serveJSON(t, func(r *http.Request) {
		assert.Equal(t, "/28.9784,41.0082.json", r.URL.Path)
	}, map[string]any{"features": []map[string]any{{"center": []float64{28.9784, 41.0082}, "place_name": "Istanbul"}}})

	r, err := NewMapbox(srv.Client(), "tok").WithBaseURL(srv.URL).Reverse(context.Background(), 41.0082, 28.9784)
	require.NoError(t, err)
	assert.Equal(t, "Istanbul", r.DisplayName)
}

func TestMapboxReverseEmpty(t *testing.T) {
	srv := serveJSON(t, nil, map[string]any{"features": []any{}})

	_, err := NewMapbox(srv.Client(), "tok").WithBaseURL(srv.URL).Reverse(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestNew(t *testing.T) {
	assert.IsType(t, &Mapbox{}, New(Options{Provider: "mapbox", MapboxToken: "tok"}))
	assert.IsType(t, &Nominatim{}, New(Options{Provider: "mapbox"}))
	assert.IsType(t, &Nominatim{}, New(Options{Provider: "nominatim", Timeout: time.Second}))
}

type countingGeocoder struct {
	calls []time.Time
}

func (c *countingGeocoder) Geocode(context.Context, string, string) ([]entity.GeocodingResult, error) {
	c.calls = append(c.calls, time.Now())
	return nil, nil
}

func (c *countingGeocoder) Reverse(context.Context, float64, float64) (entity.GeocodingResult, error) {
	c.calls = append(c.calls, time.Now())
	return entity.GeocodingResult{}, nil
}

func TestRateLimited(t *testing.T) {
	inner := &countingGeocoder{}
	g := NewRateLimited(inner, 50*time.Millisecond)

	_, err := g.Geocode(context.Background(), "a", "")
	require.NoError(t, err)
	_, err = g.Reverse(context.Background(), 1, 2)
	require.NoError(t, err)

	require.Len(t, inner.calls, 2)
	assert.GreaterOrEqual(t, inner.calls[1].Sub(inner.calls[0]), 45*time.Millisecond)
}

func TestRateLimitedCancelled(t *testing.T) {
	inner := &countingGeocoder{}
	g := NewRateLimited(inner, time.Hour)

	_, err := g.Geocode(context.Background(), "a", "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = g.Geocode(ctx, "b", "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, inner.calls, 1)
}

func TestRateLimitedCancelledWaitKeepsSchedule(t *testing.T) {
	inner := &countingGeocoder{}
	g := NewRateLimited(inner, 100*time.Millisecond)

	_, err := g.Geocode(context.Background(), "a", "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = g.Geocode(ctx, "b", "")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = g.Geocode(context.Background(), "c", "")
	require.NoError(t, err)

	require.Len(t, inner.calls, 2)
	gap := inner.calls[1].Sub(inner.calls[0])
	assert.GreaterOrEqual(t, gap, 90*time.Millisecond)
	assert.Less(t, gap, 180*time.Millisecond)
}

func TestRateLimitedDisabled(t *testing.T) {
	inner := &countingGeocoder{}
	g := NewRateLimited(inner, 0)

	start := time.Now()
	for i := 0; i < 5; i++ {
		_, err := g.Geocode(context.Background(), "a", "")
		require.NoError(t, err)
	}
	assert.Len(t, inner.calls, 5)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}
