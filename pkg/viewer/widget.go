package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// SceneViewer is an interactive widget displaying a rendered scene.
// Drag to rotate, scroll to zoom.
type SceneViewer struct {
	widget.BaseWidget
	scene     *Scene
	camera    *Camera
	opts      Options
	img       *canvas.Image
	width     float64
	height    float64
	dragStart *fyne.Position
}

// NewSceneViewer creates a viewer widget for the scene
func NewSceneViewer(scene *Scene) *SceneViewer {
	v := &SceneViewer{
		scene:  scene,
		camera: NewCamera(scene.BoundingBox()),
		opts:   DefaultOptions(),
		img:    canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
	}
	v.img.FillMode = canvas.ImageFillStretch
	v.ExtendBaseWidget(v)
	return v
}

// Camera returns the viewer's camera
func (v *SceneViewer) Camera() *Camera {
	return v.camera
}

// SetFilledMode toggles filled face rendering
func (v *SceneViewer) SetFilledMode(filled bool) {
	v.opts.Filled = filled
	v.Render(v.width, v.height)
}

// SetScene replaces the displayed scene, keeping the camera
func (v *SceneViewer) SetScene(scene *Scene) {
	v.scene = scene
	v.Render(v.width, v.height)
}

// Render redraws the scene at the given pixel size
func (v *SceneViewer) Render(width, height float64) {
	if width < 1 || height < 1 {
		return
	}
	v.width = width
	v.height = height
	v.img.Image = v.scene.Render(v.camera, int(width), int(height), v.opts)
	v.img.Refresh()
}

// Dragged handles mouse drag events for rotation
func (v *SceneViewer) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y

		v.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		v.Render(v.width, v.height)
	}
	v.dragStart = &event.Position
}

// DragEnd handles the end of a drag event
func (v *SceneViewer) DragEnd() {
	v.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (v *SceneViewer) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	v.camera.Zoom(delta)
	v.Render(v.width, v.height)
}

// CreateRenderer creates the renderer for the widget
func (v *SceneViewer) CreateRenderer() fyne.WidgetRenderer {
	return &sceneWidgetRenderer{
		viewer:  v,
		objects: []fyne.CanvasObject{v.img},
	}
}

// sceneWidgetRenderer implements fyne.WidgetRenderer
type sceneWidgetRenderer struct {
	viewer  *SceneViewer
	objects []fyne.CanvasObject
}

func (r *sceneWidgetRenderer) Layout(size fyne.Size) {
	r.viewer.img.Resize(size)
	r.viewer.Render(float64(size.Width), float64(size.Height))
}

func (r *sceneWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *sceneWidgetRenderer) Refresh() {
	canvas.Refresh(r.viewer)
}

func (r *sceneWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *sceneWidgetRenderer) Destroy() {}
