package viewer

import (
	"image/color"
	"testing"

	"github.com/sigvaldm/GirafFE/pkg/geometry"
	"github.com/sigvaldm/GirafFE/pkg/polyhedron"
)

func testScene() *Scene {
	return NewScene(polyhedron.NewTetrahedron(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(0, 0, 1),
	))
}

func TestSceneBoundingBox(t *testing.T) {
	bbox := testScene().BoundingBox()

	if bbox.Min != geometry.NewVector3(0, 0, 0) {
		t.Errorf("bbox min: expected origin, got %v", bbox.Min)
	}
	if bbox.Max != geometry.NewVector3(1, 1, 1) {
		t.Errorf("bbox max: expected (1,1,1), got %v", bbox.Max)
	}
}

func TestRenderDrawsSomething(t *testing.T) {
	scene := testScene()
	camera := NewCamera(scene.BoundingBox())
	opts := DefaultOptions()

	img := scene.Render(camera, 200, 150, opts)

	bounds := img.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 150 {
		t.Fatalf("unexpected image size: %v", bounds)
	}

	drawn := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y) != opts.Background {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("a solid in front of the camera must produce non-background pixels")
	}
}

func TestRenderEmptySceneIsBackgroundOnly(t *testing.T) {
	scene := NewScene()
	camera := &Camera{
		Target:   geometry.NewVector3(0, 0, 0),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      0.8,
		Distance: 5,
	}
	camera.UpdatePosition()

	opts := Options{Filled: true, Wireframe: true, Background: color.RGBA{1, 2, 3, 255}}
	img := scene.Render(camera, 50, 50, opts)

	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			if img.RGBAAt(x, y) != opts.Background {
				t.Fatalf("pixel (%d,%d) drawn in an empty scene", x, y)
			}
		}
	}
}
