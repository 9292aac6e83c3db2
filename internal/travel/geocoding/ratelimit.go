package geocoding

import (
	"context"
	"time"

	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"golang.org/x/time/rate"
)

type rateLimitedGeocoder struct {
	geocoder Geocoder
	limiter  *rate.Limiter
}

// NewRateLimited wraps g so upstream calls are at least interval apart.
// Nominatim's usage policy allows one request per second. A non-positive
// interval disables limiting.
func NewRateLimited(g Geocoder, interval time.Duration) Geocoder {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &rateLimitedGeocoder{
		geocoder: g,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// wait blocks until the next slot or until ctx ends. A cancelled wait
// gives its slot back.
func (r *rateLimitedGeocoder) wait(ctx context.Context) error {
	res := r.limiter.Reserve()
	delay := res.Delay()
	if delay == 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		res.Cancel()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *rateLimitedGeocoder) Geocode(ctx context.Context, query, country string) ([]entity.GeocodingResult, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.geocoder.Geocode(ctx, query, country)
}

func (r *rateLimitedGeocoder) Reverse(ctx context.Context, lat, lon float64) (entity.GeocodingResult, error) {
	if err := r.wait(ctx); err != nil {
		return entity.GeocodingResult{}, err
	}
	return r.geocoder.Reverse(ctx, lat, lon)
}
