package inbound

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"github.com/spf13/cast"
)

// argumentError marks a tool argument that failed validation.
type argumentError struct {
	msg string
}

func (e *argumentError) Error() string {
	return e.msg
}

func invalidArg(format string, a ...any) error {
	return &argumentError{msg: fmt.Sprintf(format, a...)}
}

type arguments map[string]any

func (a arguments) has(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

func (a arguments) requiredString(key string) (string, error) {
	if !a.has(key) {
		return "", invalidArg("%s is required", key)
	}
	s, err := cast.ToStringE(a[key])
	if err != nil {
		return "", invalidArg("%s must be a string", key)
	}
	return s, nil
}

func (a arguments) optionalString(key, def string) (string, error) {
	if !a.has(key) {
		return def, nil
	}
	return a.requiredString(key)
}

// number reads a numeric argument and checks it against [lo, hi].
func (a arguments) number(key string, lo, hi float64) (float64, error) {
	if !a.has(key) {
		return 0, invalidArg("%s is required", key)
	}
	if _, isBool := a[key].(bool); isBool {
		return 0, invalidArg("%s must be a number", key)
	}
	f, err := cast.ToFloat64E(a[key])
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalidArg("%s must be a number", key)
	}
	if f < lo || f > hi {
		return 0, invalidArg("%s must be between %s and %s", key, formatNumber(lo), formatNumber(hi))
	}
	return f, nil
}

func (a arguments) optionalNumber(key string, def, lo, hi float64) (float64, error) {
	if !a.has(key) {
		return def, nil
	}
	return a.number(key, lo, hi)
}

func (a arguments) integer(key string, lo, hi int) (int, error) {
	f, err := a.number(key, float64(lo), float64(hi))
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, invalidArg("%s must be an integer", key)
	}
	return int(f), nil
}

func (a arguments) optionalInteger(key string, def, lo, hi int) (int, error) {
	if !a.has(key) {
		return def, nil
	}
	return a.integer(key, lo, hi)
}

func (a arguments) object(key string) (arguments, error) {
	if !a.has(key) {
		return nil, invalidArg("%s is required", key)
	}
	m, err := cast.ToStringMapE(a[key])
	if err != nil {
		return nil, invalidArg("%s must be an object", key)
	}
	return m, nil
}

// objects reads an optional array of objects.
func (a arguments) objects(key string) ([]arguments, error) {
	if !a.has(key) {
		return nil, nil
	}
	items, err := cast.ToSliceE(a[key])
	if err != nil {
		return nil, invalidArg("%s must be an array", key)
	}
	out := make([]arguments, 0, len(items))
	for i, item := range items {
		m, err := cast.ToStringMapE(item)
		if err != nil {
			return nil, invalidArg("%s[%d] must be an object", key, i)
		}
		out = append(out, m)
	}
	return out, nil
}

// point reads {latitude, longitude}. Bounds apply only when bounded is set.
func (a arguments) point(key string, bounded bool) (entity.Point, error) {
	obj, err := a.object(key)
	if err != nil {
		return entity.Point{}, err
	}
	return obj.coordinates(key+".", bounded)
}

func (a arguments) coordinates(prefix string, bounded bool) (entity.Point, error) {
	latLo, latHi, lonLo, lonHi := math.Inf(-1), math.Inf(1), math.Inf(-1), math.Inf(1)
	if bounded {
		latLo, latHi, lonLo, lonHi = -90, 90, -180, 180
	}
	lat, err := a.number("latitude", latLo, latHi)
	if err != nil {
		return entity.Point{}, prefixed(prefix, err)
	}
	lon, err := a.number("longitude", lonLo, lonHi)
	if err != nil {
		return entity.Point{}, prefixed(prefix, err)
	}
	return entity.Point{Latitude: lat, Longitude: lon}, nil
}

func (a arguments) points(key string) ([]entity.Point, error) {
	if !a.has(key) {
		return nil, invalidArg("%s is required", key)
	}
	items, err := a.objects(key)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Point, 0, len(items))
	for i, item := range items {
		p, err := item.coordinates(fmt.Sprintf("%s[%d].", key, i), false)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func prefixed(prefix string, err error) error {
	if aerr, ok := err.(*argumentError); ok {
		return &argumentError{msg: prefix + aerr.msg}
	}
	return err
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
