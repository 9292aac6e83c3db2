package inbound

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"github.com/ozkangu/travel-mcp/internal/travel/geo"
	"github.com/ozkangu/travel-mcp/internal/travel/maprender"
	"github.com/ozkangu/travel-mcp/internal/travel/usecase"
)

const (
	defaultPassengers = 1
	minPassengers     = 1
	maxPassengers     = 9
	defaultCountry    = "TR"
	defaultRadiusKm   = 5
	minRadiusKm       = 0.1
	maxRadiusKm       = 50
	minZoom           = 1
	maxZoom           = 20
	defaultMapWidth   = 800
	defaultMapHeight  = 600
	minMapSize        = 100
	maxMapSize        = 2048

	structuredDataHeader = "\n\n---\nStructured Data (JSON):\n"
)

type tool struct {
	name        string
	description string
	schema      map[string]any
	errorPrefix string
	call        func(ctx context.Context, args arguments) (toolResult, error)
}

type content struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

type toolResult struct {
	Content           []content `json:"content"`
	StructuredContent any       `json:"structuredContent,omitempty"`
	IsError           bool      `json:"isError,omitempty"`
}

func textContent(text string) content {
	return content{Type: "text", Text: text}
}

func jsonContent(v any) (content, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return content{}, fmt.Errorf("encode tool output: %w", err)
	}
	return textContent(string(out)), nil
}

func newTools(uc uc) []tool {
	t := toolset{uc: uc}
	return []tool{
		{
			name: "search_flights",
			description: "Search for available flights between two airports/cities. Returns flight options with airline, times, duration, price and cabin info. " +
				"Supports Turkish airport codes (IST, SAW, ESB, ADB, AYT, TZX, DLM, BJV, GZT, VAN) and international ones (CDG, LHR, FRA, JFK, DXB, FCO, BCN, AMS, MUC, ATH). " +
				`You can also search by city name (e.g. "Istanbul", "Ankara").`,
			schema: objectSchema(map[string]any{
				"from":       stringSchema(`Departure airport code or city name (e.g. "IST", "Istanbul", "Ankara")`),
				"to":         stringSchema(`Arrival airport code or city name (e.g. "AYT", "Antalya", "London")`),
				"date":       stringSchema("Flight date in YYYY-MM-DD format"),
				"passengers": withDefault(integerSchema("Number of passengers", minPassengers, maxPassengers), defaultPassengers),
			}, "from", "to", "date"),
			errorPrefix: "Flight search failed",
			call:        t.searchFlights,
		},
		{
			name:        "calculate_distance",
			description: "Calculate the distance between two geographic points using the Haversine formula. Supports km, miles, and meters.",
			schema: objectSchema(map[string]any{
				"point1": coordinateSchema("First point coordinates"),
				"point2": coordinateSchema("Second point coordinates"),
				"unit": map[string]any{
					"type":        "string",
					"enum":        []string{"km", "mi", "m"},
					"default":     "km",
					"description": "Distance unit: km, mi, or m",
				},
			}, "point1", "point2"),
			errorPrefix: "Error calculating distance",
			call:        t.calculateDistance,
		},
		{
			name:        "geocode",
			description: "Convert an address or place name to geographic coordinates (latitude/longitude). Supports fuzzy search and Turkish characters.",
			schema: objectSchema(map[string]any{
				"address": stringSchema("Address or place name to geocode"),
				"country": withDefault(stringSchema("ISO country code to limit results (e.g., TR, US, DE)"), defaultCountry),
			}, "address"),
			errorPrefix: "Error geocoding address",
			call:        t.geocode,
		},
		{
			name:        "reverse_geocode",
			description: "Convert geographic coordinates (latitude/longitude) to a human-readable address.",
			schema: objectSchema(map[string]any{
				"latitude":  numberSchema("Latitude coordinate", -90, 90),
				"longitude": numberSchema("Longitude coordinate", -180, 180),
			}, "latitude", "longitude"),
			errorPrefix: "Error reverse geocoding",
			call:        t.reverseGeocode,
		},
		{
			name:        "search_nearby",
			description: "Search for places near a given coordinate within a specified radius. Uses OpenStreetMap Nominatim for place search.",
			schema: objectSchema(map[string]any{
				"latitude":  numberSchema("Center latitude", -90, 90),
				"longitude": numberSchema("Center longitude", -180, 180),
				"query":     stringSchema(`Search query (e.g., "restaurant", "hotel", "museum")`),
				"radiusKm":  withDefault(numberSchema("Search radius in kilometers", minRadiusKm, maxRadiusKm), defaultRadiusKm),
			}, "latitude", "longitude", "query"),
			errorPrefix: "Error searching nearby",
			call:        t.searchNearby,
		},
		{
			name:        "render_map",
			description: "Renders a static map image with markers, polylines, and polygon overlays. Returns a base64-encoded PNG image.",
			schema: objectSchema(map[string]any{
				"center": coordinateSchema("Map center coordinates"),
				"zoom":   integerSchema("Zoom level (1-20)", minZoom, maxZoom),
				"width":  withDefault(integerSchema("Image width in pixels", minMapSize, maxMapSize), defaultMapWidth),
				"height": withDefault(integerSchema("Image height in pixels", minMapSize, maxMapSize), defaultMapHeight),
				"markers": arraySchema("Array of map markers", objectSchema(map[string]any{
					"latitude":  map[string]any{"type": "number", "description": "Marker latitude"},
					"longitude": map[string]any{"type": "number", "description": "Marker longitude"},
					"label":     stringSchema("Label text for the marker"),
					"color":     stringSchema("Marker color (hex)"),
					"size":      map[string]any{"type": "number", "description": "Marker size in pixels"},
				}, "latitude", "longitude")),
				"polylines": arraySchema("Array of polylines to draw", objectSchema(map[string]any{
					"points": arraySchema("Array of coordinate points", coordinateSchema("Point")),
					"color":  stringSchema("Line color (hex)"),
					"width":  map[string]any{"type": "number", "description": "Line width in pixels"},
				}, "points")),
				"polygons": arraySchema("Array of polygons to draw", objectSchema(map[string]any{
					"points":      arraySchema("Array of coordinate points", coordinateSchema("Point")),
					"fillColor":   stringSchema("Fill color (hex with alpha)"),
					"strokeColor": stringSchema("Stroke color (hex)"),
					"strokeWidth": map[string]any{"type": "number", "description": "Stroke width in pixels"},
				}, "points")),
			}, "center", "zoom"),
			errorPrefix: "Error rendering map",
			call:        t.renderMap,
		},
	}
}

type toolset struct {
	uc uc
}

func (t toolset) searchFlights(ctx context.Context, args arguments) (toolResult, error) {
	from, err := args.requiredString("from")
	if err != nil {
		return toolResult{}, err
	}
	to, err := args.requiredString("to")
	if err != nil {
		return toolResult{}, err
	}
	date, err := args.requiredString("date")
	if err != nil {
		return toolResult{}, err
	}
	if !isISODate(date) {
		return toolResult{}, invalidArg("date must be in YYYY-MM-DD format")
	}
	passengers, err := args.optionalInteger("passengers", defaultPassengers, minPassengers, maxPassengers)
	if err != nil {
		return toolResult{}, err
	}

	out, err := t.uc.Flights(ctx, usecase.FlightsInput{From: from, To: to, Date: date, Passengers: passengers})
	if err != nil {
		return toolResult{}, err
	}

	summaries, err := json.MarshalIndent(out.Summaries, "", "  ")
	if err != nil {
		return toolResult{}, fmt.Errorf("encode flight summaries: %w", err)
	}

	return toolResult{
		Content: []content{
			textContent(out.Text),
			textContent(structuredDataHeader + string(summaries)),
		},
		StructuredContent: map[string]any{"flights": mapFlightOffers(out.Offers)},
	}, nil
}

func (t toolset) calculateDistance(ctx context.Context, args arguments) (toolResult, error) {
	p1, err := args.point("point1", false)
	if err != nil {
		return toolResult{}, err
	}
	p2, err := args.point("point2", false)
	if err != nil {
		return toolResult{}, err
	}
	rawUnit, err := args.optionalString("unit", string(geo.Kilometers))
	if err != nil {
		return toolResult{}, err
	}
	unit, err := geo.ParseUnit(rawUnit)
	if err != nil {
		return toolResult{}, invalidArg("unit must be one of km, mi, m")
	}

	result, err := t.uc.Distance(ctx, usecase.DistanceInput{From: p1, To: p2, Unit: unit})
	if err != nil {
		return toolResult{}, err
	}

	c, err := jsonContent(DistanceResponse{
		Distance: result.Distance,
		Unit:     string(result.Unit),
		From:     mapPoint(result.PointA),
		To:       mapPoint(result.PointB),
	})
	if err != nil {
		return toolResult{}, err
	}
	return toolResult{Content: []content{c}}, nil
}

func (t toolset) geocode(ctx context.Context, args arguments) (toolResult, error) {
	address, err := args.requiredString("address")
	if err != nil {
		return toolResult{}, err
	}
	country, err := args.optionalString("country", defaultCountry)
	if err != nil {
		return toolResult{}, err
	}

	results, err := t.uc.Geocode(ctx, usecase.GeocodeInput{Query: address, Country: country})
	if err != nil {
		return toolResult{}, err
	}
	if len(results) == 0 {
		return toolResult{Content: []content{textContent(fmt.Sprintf("No results found for address: %q", address))}}, nil
	}

	places := make([]geocodeResponse, 0, len(results))
	for _, r := range results {
		places = append(places, geocodeResponse{
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
			DisplayName: r.DisplayName,
			Type:        r.Type,
			Importance:  r.Importance,
		})
	}
	c, err := jsonContent(places)
	if err != nil {
		return toolResult{}, err
	}
	return toolResult{Content: []content{c}}, nil
}

func (t toolset) reverseGeocode(ctx context.Context, args arguments) (toolResult, error) {
	at, err := args.coordinates("", true)
	if err != nil {
		return toolResult{}, err
	}

	r, err := t.uc.ReverseGeocode(ctx, at)
	if err != nil {
		return toolResult{}, err
	}

	c, err := jsonContent(reverseGeocodeResponse{
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		DisplayName: r.DisplayName,
		Type:        r.Type,
	})
	if err != nil {
		return toolResult{}, err
	}
	return toolResult{Content: []content{c}}, nil
}

func (t toolset) searchNearby(ctx context.Context, args arguments) (toolResult, error) {
	center, err := args.coordinates("", true)
	if err != nil {
		return toolResult{}, err
	}
	query, err := args.requiredString("query")
	if err != nil {
		return toolResult{}, err
	}
	radius, err := args.optionalNumber("radiusKm", defaultRadiusKm, minRadiusKm, maxRadiusKm)
	if err != nil {
		return toolResult{}, err
	}

	places, err := t.uc.Nearby(ctx, usecase.NearbyInput{Center: center, Query: query, RadiusKm: radius})
	if err != nil {
		return toolResult{}, err
	}
	if len(places) == 0 {
		return toolResult{Content: []content{textContent(fmt.Sprintf("No results found for %q within %skm of [%s, %s]",
			query, formatNumber(radius), formatNumber(center.Latitude), formatNumber(center.Longitude)))}}, nil
	}

	resp := make([]nearbyResponse, 0, len(places))
	for _, p := range places {
		resp = append(resp, nearbyResponse{
			DisplayName: p.Place.DisplayName,
			Latitude:    p.Place.Latitude,
			Longitude:   p.Place.Longitude,
			DistanceKm:  p.DistanceKm,
			Type:        p.Place.Type,
		})
	}
	c, err := jsonContent(resp)
	if err != nil {
		return toolResult{}, err
	}
	return toolResult{Content: []content{c}}, nil
}

func (t toolset) renderMap(ctx context.Context, args arguments) (toolResult, error) {
	opts, err := parseRenderOptions(args)
	if err != nil {
		return toolResult{}, err
	}

	png, err := t.uc.RenderMap(ctx, opts)
	if err != nil {
		return toolResult{}, err
	}

	return toolResult{Content: []content{{
		Type:     "image",
		Data:     base64.StdEncoding.EncodeToString(png),
		MimeType: "image/png",
	}}}, nil
}

func parseRenderOptions(args arguments) (maprender.Options, error) {
	var opts maprender.Options
	var err error

	if opts.Center, err = args.point("center", false); err != nil {
		return opts, err
	}
	if opts.Zoom, err = args.integer("zoom", minZoom, maxZoom); err != nil {
		return opts, err
	}
	if opts.Width, err = args.optionalInteger("width", defaultMapWidth, minMapSize, maxMapSize); err != nil {
		return opts, err
	}
	if opts.Height, err = args.optionalInteger("height", defaultMapHeight, minMapSize, maxMapSize); err != nil {
		return opts, err
	}

	markers, err := args.objects("markers")
	if err != nil {
		return opts, err
	}
	for i, m := range markers {
		prefix := fmt.Sprintf("markers[%d].", i)
		at, err := m.coordinates(prefix, false)
		if err != nil {
			return opts, err
		}
		marker := entity.Marker{Position: at}
		if marker.Label, err = m.optionalString("label", ""); err != nil {
			return opts, prefixed(prefix, err)
		}
		if marker.Color, err = m.optionalString("color", ""); err != nil {
			return opts, prefixed(prefix, err)
		}
		if marker.Size, err = m.optionalInteger("size", 0, 1, 256); err != nil {
			return opts, prefixed(prefix, err)
		}
		opts.Markers = append(opts.Markers, marker)
	}

	lines, err := args.objects("polylines")
	if err != nil {
		return opts, err
	}
	for i, l := range lines {
		prefix := fmt.Sprintf("polylines[%d].", i)
		var line entity.Polyline
		if line.Points, err = l.points("points"); err != nil {
			return opts, prefixed(prefix, err)
		}
		if line.Color, err = l.optionalString("color", ""); err != nil {
			return opts, prefixed(prefix, err)
		}
		if line.Width, err = l.optionalInteger("width", 0, 1, 64); err != nil {
			return opts, prefixed(prefix, err)
		}
		opts.Polylines = append(opts.Polylines, line)
	}

	polygons, err := args.objects("polygons")
	if err != nil {
		return opts, err
	}
	for i, p := range polygons {
		prefix := fmt.Sprintf("polygons[%d].", i)
		var polygon entity.Polygon
		if polygon.Points, err = p.points("points"); err != nil {
			return opts, prefixed(prefix, err)
		}
		if polygon.FillColor, err = p.optionalString("fillColor", ""); err != nil {
			return opts, prefixed(prefix, err)
		}
		if polygon.StrokeColor, err = p.optionalString("strokeColor", ""); err != nil {
			return opts, prefixed(prefix, err)
		}
		if polygon.StrokeWidth, err = p.optionalInteger("strokeWidth", 0, 1, 64); err != nil {
			return opts, prefixed(prefix, err)
		}
		opts.Polygons = append(opts.Polygons, polygon)
	}

	return opts, nil
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{"type": "object", "properties": properties}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringSchema(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func numberSchema(description string, lo, hi float64) map[string]any {
	return map[string]any{"type": "number", "minimum": lo, "maximum": hi, "description": description}
}

func integerSchema(description string, lo, hi int) map[string]any {
	return map[string]any{"type": "integer", "minimum": lo, "maximum": hi, "description": description}
}

func arraySchema(description string, items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items, "description": description}
}

func coordinateSchema(description string) map[string]any {
	schema := objectSchema(map[string]any{
		"latitude":  map[string]any{"type": "number", "description": "Latitude"},
		"longitude": map[string]any{"type": "number", "description": "Longitude"},
	}, "latitude", "longitude")
	schema["description"] = description
	return schema
}

func withDefault(schema map[string]any, def any) map[string]any {
	schema["default"] = def
	return schema
}

// toolNames lists tool names in registration order.
func toolNames(tools []tool) string {
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.name)
	}
	return strings.Join(names, ", ")
}
