// Package netimage rasterizes the fully unfolded net of a Shape.
//
// The net is posed with fold.Synchronized at progress 1, projected onto the
// plane of the root face (see unfold.PlaneAxes) and filled face by face with
// golang.org/x/image/vector. Crease and cut lines are stroked on top. The
// shape's pose is restored before Render returns.
package netimage

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/foldnet/fold"
	"github.com/katalvlaran/foldnet/shape"
	"github.com/katalvlaran/foldnet/unfold"
)

// ErrBadScale indicates a non-positive pixels-per-unit scale.
var ErrBadScale = errors.New("netimage: scale must be positive")

// maxSide caps the image side length in pixels.
const maxSide = 1 << 14

// Option configures Render.
type Option func(*options)

type options struct {
	margin     int
	background color.Color
	line       color.Color
	lineWidth  float64
	palette    []color.Color
}

func defaultOptions() options {
	return options{
		margin:     8,
		background: color.White,
		line:       color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		lineWidth:  1,
		palette: []color.Color{
			color.RGBA{R: 0xf4, G: 0xd3, B: 0x5e, A: 0xff},
			color.RGBA{R: 0x8e, G: 0xc5, B: 0xe8, A: 0xff},
			color.RGBA{R: 0xe8, G: 0x9a, B: 0x8e, A: 0xff},
			color.RGBA{R: 0xa8, G: 0xd8, B: 0x9a, A: 0xff},
		},
	}
}

// WithMargin sets the blank border in pixels. Panics if px < 0.
func WithMargin(px int) Option {
	if px < 0 {
		panic("netimage: WithMargin requires px >= 0")
	}
	return func(o *options) {
		o.margin = px
	}
}

// WithBackground sets the background color.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithLine sets the stroke color and width in pixels; width 0 disables
// strokes. Panics if width < 0.
func WithLine(c color.Color, width float64) Option {
	if width < 0 {
		panic("netimage: WithLine requires width >= 0")
	}
	return func(o *options) {
		o.line = c
		o.lineWidth = width
	}
}

// WithPalette sets the face fill colors, used cyclically by face index.
// Panics on an empty palette.
func WithPalette(p ...color.Color) Option {
	if len(p) == 0 {
		panic("netimage: WithPalette requires at least one color")
	}
	return func(o *options) {
		o.palette = append([]color.Color(nil), p...)
	}
}

// Render draws the unfolded net of s at scale pixels per model unit. The
// pose s had before the call is restored, and a failed restore is returned.
func Render(s *shape.Shape, scale float64, opts ...Option) (img *image.RGBA, err error) {
	if s == nil {
		return nil, shape.ErrEmptyShape
	}
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return nil, fmt.Errorf("%w: %v", ErrBadScale, scale)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lo, hi, err := unfold.FindUnfoldSize(s)
	if err != nil {
		return nil, err
	}
	ax, ay := unfold.PlaneAxes(s)
	w := pixels((coord(hi, ax)-coord(lo, ax))*scale) + 2*o.margin
	h := pixels((coord(hi, ay)-coord(lo, ay))*scale) + 2*o.margin
	if w <= 0 || h <= 0 || w > maxSide || h > maxSide {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrBadScale, w, h)
	}

	pose := s.Pose()
	defer func() {
		if rerr := s.Restore(pose); err == nil {
			err = rerr
		}
	}()
	if err = fold.Unfolded(s); err != nil {
		return nil, err
	}

	project := func(p r3.Vec) (float32, float32) {
		x := (coord(p, ax)-coord(lo, ax))*scale + float64(o.margin)
		y := (coord(hi, ay)-coord(p, ay))*scale + float64(o.margin)
		return float32(x), float32(y)
	}

	img = image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)

	z := vector.NewRasterizer(w, h)
	for _, f := range s.Faces {
		z.Reset(w, h)
		z.DrawOp = draw.Over
		m := f.Mesh
		for t := 0; t < m.TriangleCount(); t++ {
			tri := m.Triangle(t)
			x, y := project(m.Vertices[tri[0]])
			z.MoveTo(x, y)
			for _, k := range tri[1:] {
				x, y = project(m.Vertices[k])
				z.LineTo(x, y)
			}
			z.ClosePath()
		}
		z.Draw(img, img.Bounds(), image.NewUniform(o.palette[f.ID%len(o.palette)]), image.Point{})
	}

	if o.lineWidth > 0 {
		z.Reset(w, h)
		z.DrawOp = draw.Over
		for _, f := range s.Faces {
			for _, a := range f.Axes {
				for _, e := range boundaryOn(f, a.Line, a.Point) {
					x0, y0 := project(e[0])
					x1, y1 := project(e[1])
					stroke(z, x0, y0, x1, y1, float32(o.lineWidth))
				}
			}
		}
		z.Draw(img, img.Bounds(), image.NewUniform(o.line), image.Point{})
	}

	return img, nil
}

// Encode renders s and writes it to w as PNG.
func Encode(w io.Writer, s *shape.Shape, scale float64, opts ...Option) error {
	img, err := Render(s, scale, opts...)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}

// pixels rounds an extent up to whole pixels, ignoring float noise.
func pixels(extent float64) int {
	return int(math.Ceil(extent - 1e-6))
}

func coord(p r3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// boundaryOn returns the triangle edges of f that lie on the given line.
func boundaryOn(f *shape.Face, line, point r3.Vec) [][2]r3.Vec {
	const eps = 1e-6
	on := func(p r3.Vec) bool {
		d := r3.Sub(p, point)
		return r3.Norm(r3.Sub(d, r3.Scale(r3.Dot(d, line), line))) < eps
	}
	var out [][2]r3.Vec
	m := f.Mesh
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		for k := 0; k < 3; k++ {
			p, q := m.Vertices[tri[k]], m.Vertices[tri[(k+1)%3]]
			if on(p) && on(q) {
				out = append(out, [2]r3.Vec{p, q})
			}
		}
	}

	return out
}

// stroke adds a segment of the given pixel width as a filled quad.
func stroke(z *vector.Rasterizer, x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}
