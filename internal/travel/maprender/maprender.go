// Package maprender draws static PNG maps from raster tiles with markers,
// polylines and polygons on top.
package maprender

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ozkangu/travel-mcp/internal/pkg/pkgerror"
	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	xdraw "golang.org/x/image/draw"
)

const (
	osmTileURL    = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	mapboxTileURL = "https://api.mapbox.com/styles/v1/mapbox/streets-v12/tiles/256/{z}/{x}/{y}?access_token="

	defaultUserAgent   = "travel-mcp-map-server/1.0"
	defaultTimeout     = 10 * time.Second
	defaultConcurrency = 8
	maxZoom            = 20
)

// blank fills the parts of the canvas no tile covers.
var blank = color.RGBA{R: 0xE5, G: 0xE3, B: 0xDF, A: 0xFF}

type Config struct {
	Provider    string
	MapboxToken string
	UserAgent   string
	Timeout     time.Duration
	Concurrency int
}

type Renderer struct {
	client      *http.Client
	tileURL     string
	userAgent   string
	concurrency int
}

// New uses Mapbox streets tiles when the provider is mapbox and a token is
// set, and OpenStreetMap tiles otherwise.
func New(cfg Config) *Renderer {
	r := &Renderer{
		client:      &http.Client{Timeout: cfg.Timeout},
		tileURL:     osmTileURL,
		userAgent:   cfg.UserAgent,
		concurrency: cfg.Concurrency,
	}
	if cfg.Timeout <= 0 {
		r.client.Timeout = defaultTimeout
	}
	if r.userAgent == "" {
		r.userAgent = defaultUserAgent
	}
	if r.concurrency <= 0 {
		r.concurrency = defaultConcurrency
	}
	if strings.EqualFold(cfg.Provider, "mapbox") && cfg.MapboxToken != "" {
		r.tileURL = mapboxTileURL + url.QueryEscape(cfg.MapboxToken)
	}
	return r
}

// WithTileURL sets the tile template. It must contain {z}, {x} and {y}.
func (r *Renderer) WithTileURL(template string) *Renderer {
	r.tileURL = template
	return r
}

type Options struct {
	Center    entity.Point
	Zoom      int
	Width     int
	Height    int
	Markers   []entity.Marker
	Polylines []entity.Polyline
	Polygons  []entity.Polygon
}

// Render fetches the tiles covering the requested view, paints the overlays
// and returns the PNG encoding of the result.
func (r *Renderer) Render(ctx context.Context, opts Options) ([]byte, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, pkgerror.NewBusiness("map width and height must be positive", pkgerror.CodeInvalidInput)
	}
	if opts.Zoom < 0 || opts.Zoom > maxZoom {
		return nil, pkgerror.NewBusiness(fmt.Sprintf("zoom must be between 0 and %d", maxZoom), pkgerror.CodeInvalidInput)
	}

	layers, err := buildLayers(opts)
	if err != nil {
		return nil, err
	}

	vp := newViewport(opts.Center, opts.Zoom, opts.Width, opts.Height)
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(blank), image.Point{}, xdraw.Src)

	if err := r.drawTiles(ctx, img, vp); err != nil {
		return nil, err
	}
	layers.paint(img, vp)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
