package maprender

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/ozkangu/travel-mcp/internal/pkg/pkgerror"
	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

const (
	tileSize    = 256
	maxLatitude = 85.0511287798
)

// project returns the Web Mercator world pixel of p at zoom.
func project(p entity.Point, zoom int) (x, y float64) {
	scale := tileSize * math.Exp2(float64(zoom))
	lat := math.Max(-maxLatitude, math.Min(maxLatitude, p.Latitude))
	sin := math.Sin(lat * math.Pi / 180)

	x = (p.Longitude + 180) / 360 * scale
	y = (0.5 - math.Log((1+sin)/(1-sin))/(4*math.Pi)) * scale
	return x, y
}

type viewport struct {
	zoom    int
	width   int
	height  int
	originX float64
	originY float64
}

func newViewport(center entity.Point, zoom, width, height int) viewport {
	cx, cy := project(center, zoom)
	return viewport{
		zoom:    zoom,
		width:   width,
		height:  height,
		originX: math.Floor(cx - float64(width)/2),
		originY: math.Floor(cy - float64(height)/2),
	}
}

// toPixel maps p onto the canvas.
func (v viewport) toPixel(p entity.Point) vec {
	x, y := project(p, v.zoom)
	return vec{x: x - v.originX, y: y - v.originY}
}

type tileKey struct {
	z, x, y int
}

type placement struct {
	key tileKey
	at  image.Point
}

// placements lists every tile slot the canvas overlaps. Columns wrap around
// the antimeridian; rows beyond the poles are skipped.
func (v viewport) placements() []placement {
	n := 1 << v.zoom
	minTX := int(math.Floor(v.originX / tileSize))
	maxTX := int(math.Floor((v.originX + float64(v.width) - 1) / tileSize))
	minTY := int(math.Floor(v.originY / tileSize))
	maxTY := int(math.Floor((v.originY + float64(v.height) - 1) / tileSize))

	var out []placement
	for ty := minTY; ty <= maxTY; ty++ {
		if ty < 0 || ty >= n {
			continue
		}
		for tx := minTX; tx <= maxTX; tx++ {
			out = append(out, placement{
				key: tileKey{z: v.zoom, x: ((tx % n) + n) % n, y: ty},
				at:  image.Pt(tx*tileSize-int(v.originX), ty*tileSize-int(v.originY)),
			})
		}
	}
	return out
}

func (r *Renderer) drawTiles(ctx context.Context, img *image.RGBA, vp viewport) error {
	slots := vp.placements()

	var keys []tileKey
	index := map[tileKey]int{}
	for _, s := range slots {
		if _, ok := index[s.key]; !ok {
			index[s.key] = len(keys)
			keys = append(keys, s.key)
		}
	}

	tiles := make([]image.Image, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, key := range keys {
		g.Go(func() error {
			tile, err := r.fetchTile(gctx, key)
			if err != nil {
				return err
			}
			tiles[i] = tile
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, s := range slots {
		tile := tiles[index[s.key]]
		dst := image.Rectangle{Min: s.at, Max: s.at.Add(image.Pt(tileSize, tileSize))}
		if tile.Bounds().Dx() == tileSize && tile.Bounds().Dy() == tileSize {
			xdraw.Draw(img, dst, tile, tile.Bounds().Min, xdraw.Src)
			continue
		}
		xdraw.ApproxBiLinear.Scale(img, dst, tile, tile.Bounds(), xdraw.Src, nil)
	}
	return nil
}

func (r *Renderer) tileURLFor(key tileKey) string {
	return strings.NewReplacer(
		"{z}", strconv.Itoa(key.z),
		"{x}", strconv.Itoa(key.x),
		"{y}", strconv.Itoa(key.y),
	).Replace(r.tileURL)
}

func (r *Renderer) fetchTile(ctx context.Context, key tileKey) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.tileURLFor(key), nil)
	if err != nil {
		return nil, fmt.Errorf("build tile request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, pkgerror.Wrap(err, "map tile request failed", pkgerror.CodeUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerror.Wrap(fmt.Errorf("tile %d/%d/%d: status %d", key.z, key.x, key.y, resp.StatusCode),
			"map tile request failed", pkgerror.CodeUpstream)
	}

	tile, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, pkgerror.Wrap(err, "map tile could not be decoded", pkgerror.CodeUpstream)
	}
	return tile, nil
}
