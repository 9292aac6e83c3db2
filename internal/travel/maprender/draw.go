package maprender

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/ozkangu/travel-mcp/internal/pkg/pkgerror"
	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	defaultMarkerColor   = "#FF0000"
	defaultMarkerSize    = 12
	defaultLineColor     = "#0000FF"
	defaultLineWidth     = 3
	defaultStrokeColor   = "#0000FF"
	defaultStrokeWidth   = 2
	defaultFillColor     = "#0000FF33"
	circleSegments       = 24
	labelGap             = 14
	markerOutlineInflate = 1.5
)

var (
	white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.NRGBA{A: 0xFF}
)

type vec struct {
	x, y float64
}

type markerLayer struct {
	at     entity.Point
	label  string
	color  color.NRGBA
	radius float64
}

type lineLayer struct {
	points []entity.Point
	color  color.NRGBA
	width  float64
}

type polygonLayer struct {
	points      []entity.Point
	fill        color.NRGBA
	stroke      color.NRGBA
	strokeWidth float64
}

type layers struct {
	markers  []markerLayer
	lines    []lineLayer
	polygons []polygonLayer
}

// buildLayers applies default styles and parses every color up front so a
// bad color fails before any tile is fetched.
func buildLayers(opts Options) (layers, error) {
	var out layers

	for _, p := range opts.Polygons {
		fill, err := parseColor(p.FillColor, defaultFillColor)
		if err != nil {
			return layers{}, err
		}
		stroke, err := parseColor(p.StrokeColor, defaultStrokeColor)
		if err != nil {
			return layers{}, err
		}
		out.polygons = append(out.polygons, polygonLayer{
			points:      p.Points,
			fill:        fill,
			stroke:      stroke,
			strokeWidth: float64(orDefault(p.StrokeWidth, defaultStrokeWidth)),
		})
	}

	for _, l := range opts.Polylines {
		c, err := parseColor(l.Color, defaultLineColor)
		if err != nil {
			return layers{}, err
		}
		out.lines = append(out.lines, lineLayer{points: l.Points, color: c, width: float64(orDefault(l.Width, defaultLineWidth))})
	}

	for _, m := range opts.Markers {
		c, err := parseColor(m.Color, defaultMarkerColor)
		if err != nil {
			return layers{}, err
		}
		out.markers = append(out.markers, markerLayer{
			at:     m.Position,
			label:  m.Label,
			color:  c,
			radius: float64(orDefault(m.Size, defaultMarkerSize)) / 2,
		})
	}

	return out, nil
}

// paint draws polygons, then polylines, then markers and their labels.
func (l layers) paint(img *image.RGBA, vp viewport) {
	c := canvas{img: img, z: vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())}

	for _, p := range l.polygons {
		pts := toPixels(vp, p.points)
		c.fill(pts, p.fill)
		c.stroke(pts, p.strokeWidth, p.stroke, true)
	}
	for _, line := range l.lines {
		c.stroke(toPixels(vp, line.points), line.width, line.color, false)
	}
	for _, m := range l.markers {
		at := vp.toPixel(m.at)
		c.disc(at, m.radius+markerOutlineInflate, white)
		c.disc(at, m.radius, m.color)
		c.disc(at, m.radius/3, white)
	}
	for _, m := range l.markers {
		if m.label != "" {
			at := vp.toPixel(m.at)
			c.label(at.x, at.y+m.radius+labelGap, m.label)
		}
	}
}

func toPixels(vp viewport, points []entity.Point) []vec {
	out := make([]vec, len(points))
	for i, p := range points {
		out[i] = vp.toPixel(p)
	}
	return out
}

type canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func (c canvas) size() (float64, float64) {
	return float64(c.img.Bounds().Dx()), float64(c.img.Bounds().Dy())
}

func (c canvas) begin() {
	w, h := c.img.Bounds().Dx(), c.img.Bounds().Dy()
	c.z.Reset(w, h)
}

func (c canvas) flush(col color.NRGBA) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// addPath adds a closed path clipped to the canvas.
func (c canvas) addPath(poly []vec) {
	w, h := c.size()
	poly = clipRect(poly, w, h)
	if len(poly) < 3 {
		return
	}
	c.z.MoveTo(float32(poly[0].x), float32(poly[0].y))
	for _, p := range poly[1:] {
		c.z.LineTo(float32(p.x), float32(p.y))
	}
	c.z.ClosePath()
}

func (c canvas) fill(poly []vec, col color.NRGBA) {
	if len(poly) < 3 || col.A == 0 {
		return
	}
	c.begin()
	c.addPath(poly)
	c.flush(col)
}

func (c canvas) disc(at vec, radius float64, col color.NRGBA) {
	if radius <= 0 {
		return
	}
	c.begin()
	c.addPath(circle(at, radius))
	c.flush(col)
}

// stroke draws a polyline of the given width as one coverage pass, so
// overlapping segments and joins do not darken translucent colors. All
// sub-paths share one winding direction.
func (c canvas) stroke(pts []vec, width float64, col color.NRGBA, closed bool) {
	if len(pts) < 2 || width <= 0 || col.A == 0 {
		return
	}
	half := width / 2
	if closed {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}

	c.begin()
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		dx, dy := b.x-a.x, b.y-a.y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half
		c.addPath([]vec{
			{a.x + nx, a.y + ny},
			{b.x + nx, b.y + ny},
			{b.x - nx, b.y - ny},
			{a.x - nx, a.y - ny},
		})
	}
	for _, p := range pts {
		c.addPath(circle(p, half))
	}
	c.flush(col)
}

func (c canvas) label(x, y float64, text string) {
	face := basicfont.Face7x13
	start := fixed.I(int(math.Round(x))) - font.MeasureString(face, text)/2
	baseline := fixed.I(int(math.Round(y)))

	d := &font.Drawer{Dst: c.img, Face: face}
	d.Src = image.NewUniform(white)
	for _, off := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		d.Dot = fixed.Point26_6{X: start + fixed.I(off[0]), Y: baseline + fixed.I(off[1])}
		d.DrawString(text)
	}
	d.Src = image.NewUniform(black)
	d.Dot = fixed.Point26_6{X: start, Y: baseline}
	d.DrawString(text)
}

// circle winds the same way as the stroke quads.
func circle(at vec, radius float64) []vec {
	out := make([]vec, circleSegments)
	for i := range out {
		t := -2 * math.Pi * float64(i) / circleSegments
		out[i] = vec{at.x + radius*math.Cos(t), at.y + radius*math.Sin(t)}
	}
	return out
}

// clipRect clips poly to [0,w]x[0,h] (Sutherland-Hodgman).
func clipRect(poly []vec, w, h float64) []vec {
	poly = clipEdge(poly, func(p vec) bool { return p.x >= 0 }, func(a, b vec) vec { return atX(a, b, 0) })
	poly = clipEdge(poly, func(p vec) bool { return p.x <= w }, func(a, b vec) vec { return atX(a, b, w) })
	poly = clipEdge(poly, func(p vec) bool { return p.y >= 0 }, func(a, b vec) vec { return atY(a, b, 0) })
	poly = clipEdge(poly, func(p vec) bool { return p.y <= h }, func(a, b vec) vec { return atY(a, b, h) })
	return poly
}

func clipEdge(in []vec, inside func(vec) bool, cross func(a, b vec) vec) []vec {
	if len(in) == 0 {
		return nil
	}
	out := make([]vec, 0, len(in)+2)
	prev := in[len(in)-1]
	for _, cur := range in {
		switch {
		case inside(cur) && inside(prev):
			out = append(out, cur)
		case inside(cur):
			out = append(out, cross(prev, cur), cur)
		case inside(prev):
			out = append(out, cross(prev, cur))
		}
		prev = cur
	}
	return out
}

func atX(a, b vec, x float64) vec {
	t := (x - a.x) / (b.x - a.x)
	return vec{x, a.y + t*(b.y-a.y)}
}

func atY(a, b vec, y float64) vec {
	t := (y - a.y) / (b.y - a.y)
	return vec{a.x + t*(b.x-a.x), y}
}

// parseColor reads #RGB, #RRGGBB or #RRGGBBAA. An empty value selects fallback.
func parseColor(value, fallback string) (color.NRGBA, error) {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.NRGBA{}, invalidColor(value)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, invalidColor(value)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func invalidColor(value string) error {
	return pkgerror.NewBusiness(fmt.Sprintf("invalid color %q, expected #RGB, #RRGGBB or #RRGGBBAA", value), pkgerror.CodeInvalidInput)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
