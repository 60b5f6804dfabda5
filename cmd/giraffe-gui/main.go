package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/sigvaldm/GirafFE/pkg/polyhedron"
	"github.com/sigvaldm/GirafFE/pkg/tetmesh"
	"github.com/sigvaldm/GirafFE/pkg/viewer"
)

type App struct {
	window    fyne.Window
	mesh      *tetmesh.Mesh
	sceneView *viewer.SceneViewer
	infoLabel *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("GirafFE - Cell Inspector")

	appInstance := &App{window: w}

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to GirafFE")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	openButton := widget.NewButton("Open Tetmesh File", func() {
		a.showFileDialog()
	})

	content := container.NewCenter(container.NewVBox(
		welcomeLabel,
		widget.NewLabel("Open a tetmesh file to inspect its cells"),
		openButton,
	))
	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	mesh, err := tetmesh.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load tetmesh file: %w", err), a.window)
		return
	}

	a.mesh = mesh
	a.setupMainUI()
}

func (a *App) buildScene() *viewer.Scene {
	solids := make([]*polyhedron.Polyhedron, 0, a.mesh.CellCount())
	for i := 0; i < a.mesh.CellCount(); i++ {
		solids = append(solids, a.mesh.CellPolyhedron(i))
	}
	return viewer.NewScene(solids...)
}

func (a *App) setupMainUI() {
	a.sceneView = viewer.NewSceneViewer(a.buildScene())

	bbox := a.mesh.BoundingBox()
	size := bbox.Size()
	a.infoLabel = widget.NewLabel(fmt.Sprintf(
		"Mesh: %s\nVertices: %d\nCells: %d\nTotal Volume: %.6f\n\nDimensions:\n  X: %.3f\n  Y: %.3f\n  Z: %.3f",
		a.mesh.Name,
		a.mesh.VertexCount(),
		a.mesh.CellCount(),
		a.mesh.TotalVolume(),
		size.X,
		size.Y,
		size.Z,
	))

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})

	filledCheck := widget.NewCheck("Show Filled", func(checked bool) {
		a.sceneView.SetFilledMode(checked)
	})
	filledCheck.SetChecked(true)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Mesh Information:"),
		widget.NewSeparator(),
		a.infoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		filledCheck,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(280, 0))

	content := container.NewBorder(
		nil,         // top
		nil,         // bottom
		nil,         // left
		infoScroll,  // right
		a.sceneView, // center
	)
	a.window.SetContent(content)
}
