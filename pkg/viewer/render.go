// Package viewer renders clipped solids. It consumes face loops from
// the polyhedron package and performs no geometric logic of its own
// beyond projection and rasterization.
package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/sigvaldm/GirafFE/pkg/geometry"
	"github.com/sigvaldm/GirafFE/pkg/polyhedron"
)

// solidPalette assigns distinct fill colors to consecutive solids
var solidPalette = []color.RGBA{
	{74, 144, 217, 255},
	{230, 126, 34, 255},
	{46, 204, 113, 255},
	{155, 89, 182, 255},
	{231, 76, 60, 255},
	{26, 188, 156, 255},
}

// Options controls scene rendering
type Options struct {
	Wireframe  bool
	Filled     bool
	Background color.RGBA
}

// DefaultOptions renders filled faces with wireframe overlay on a dark
// background
func DefaultOptions() Options {
	return Options{
		Wireframe:  true,
		Filled:     true,
		Background: color.RGBA{24, 24, 28, 255},
	}
}

// Scene is a set of solids to draw
type Scene struct {
	Solids []*polyhedron.Polyhedron
}

// NewScene creates a scene from the given solids
func NewScene(solids ...*polyhedron.Polyhedron) *Scene {
	return &Scene{Solids: solids}
}

// BoundingBox returns the combined bounds of all solids
func (s *Scene) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, solid := range s.Solids {
		b := solid.BoundingBox()
		bbox.Extend(b.Min)
		bbox.Extend(b.Max)
	}
	return bbox
}

// Render draws the scene into a new image. Every face loop is fan
// triangulated from its first vertex and filled with depth testing;
// wireframe edges are drawn on top.
func (s *Scene) Render(camera *Camera, width, height int, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, opts.Background)
		}
	}

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}

	w := float64(width)
	h := float64(height)

	for si, solid := range s.Solids {
		fill := solidPalette[si%len(solidPalette)]
		for _, face := range solid.Faces {
			loop := face.Loop()
			if len(loop) < 3 {
				continue
			}

			type projected struct{ x, y, z float64 }
			screen := make([]projected, len(loop))
			for i, v := range loop {
				x, y, z := camera.Project(v, w, h)
				screen[i] = projected{x, y, z}
			}

			if opts.Filled {
				// Shade by mean face depth.
				depth := 0.0
				for _, p := range screen {
					depth += p.z
				}
				depth /= float64(len(screen))
				col := shade(fill, depth, camera.Distance)

				a := screen[0]
				for i := 1; i < len(screen)-1; i++ {
					b := screen[i]
					c := screen[i+1]
					fillTriangleWithDepth(img, zbuffer,
						a.x, a.y, a.z, b.x, b.y, b.z, c.x, c.y, c.z, col)
				}
			}

			if opts.Wireframe {
				for i := range screen {
					p1 := screen[i]
					p2 := screen[(i+1)%len(screen)]
					drawLine(img, int(p1.x), int(p1.y), int(p2.x), int(p2.y),
						color.RGBA{230, 230, 230, 255})
				}
			}
		}
	}
	return img
}

// shade darkens a color with distance from the camera
func shade(col color.RGBA, depth, reference float64) color.RGBA {
	if reference <= 0 {
		return col
	}
	factor := 1.2 - 0.5*(depth/reference)
	factor = math.Max(0.3, math.Min(1.0, factor))
	return color.RGBA{
		R: uint8(float64(col.R) * factor),
		G: uint8(float64(col.G) * factor),
		B: uint8(float64(col.B) * factor),
		A: col.A,
	}
}
