package main

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sigvaldm/GirafFE/pkg/geometry"
	"github.com/sigvaldm/GirafFE/pkg/polyhedron"
	"github.com/sigvaldm/GirafFE/pkg/tetmesh"
)

var cellColors = []rl.Color{
	{R: 74, G: 144, B: 217, A: 200},
	{R: 230, G: 126, B: 34, A: 200},
	{R: 46, G: 204, B: 113, A: 200},
	{R: 155, G: 89, B: 182, A: 200},
	{R: 231, G: 76, B: 60, A: 200},
	{R: 26, G: 188, B: 156, A: 200},
}

type App struct {
	solids        []*polyhedron.Polyhedron
	camera        rl.Camera3D
	cameraAngleX  float32
	cameraAngleY  float32
	cameraDist    float32
	showWireframe bool
	showFilled    bool
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: giraffe-raylib <tetmesh-file>")
		os.Exit(1)
	}

	mesh, err := tetmesh.Parse(os.Args[1])
	if err != nil {
		fmt.Printf("Error loading tetmesh file: %v\n", err)
		os.Exit(1)
	}
	if mesh.CellCount() == 0 {
		fmt.Println("Error: mesh has no cells")
		os.Exit(1)
	}

	solids := make([]*polyhedron.Polyhedron, 0, mesh.CellCount())
	for i := 0; i < mesh.CellCount(); i++ {
		solids = append(solids, mesh.CellPolyhedron(i))
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(1400, 900, "GirafFE - GPU Viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	bbox := mesh.BoundingBox()
	center := bbox.Center()
	app := &App{
		solids:        solids,
		cameraAngleX:  0.4,
		cameraAngleY:  0.6,
		cameraDist:    float32(bbox.Diagonal()) * 1.5,
		showWireframe: true,
		showFilled:    true,
	}
	app.camera = rl.Camera3D{
		Target:     toRaylib(center),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	app.updateCamera()

	for !rl.WindowShouldClose() {
		app.handleInput()
		app.draw()
	}
}

func (a *App) updateCamera() {
	x := a.cameraDist * float32(math.Cos(float64(a.cameraAngleX))*math.Sin(float64(a.cameraAngleY)))
	y := a.cameraDist * float32(math.Sin(float64(a.cameraAngleX)))
	z := a.cameraDist * float32(math.Cos(float64(a.cameraAngleX))*math.Cos(float64(a.cameraAngleY)))
	a.camera.Position = rl.NewVector3(
		a.camera.Target.X+x,
		a.camera.Target.Y+y,
		a.camera.Target.Z+z,
	)
}

func (a *App) handleInput() {
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		a.cameraAngleY += delta.X * 0.01
		a.cameraAngleX += delta.Y * 0.01

		maxAngle := float32(math.Pi/2 - 0.1)
		if a.cameraAngleX > maxAngle {
			a.cameraAngleX = maxAngle
		}
		if a.cameraAngleX < -maxAngle {
			a.cameraAngleX = -maxAngle
		}
	}

	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		a.cameraDist *= 1 - wheel*0.1
		if a.cameraDist < 0.1 {
			a.cameraDist = 0.1
		}
	}

	if rl.IsKeyPressed(rl.KeyW) {
		a.showWireframe = !a.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		a.showFilled = !a.showFilled
	}

	a.updateCamera()
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 24, 28, 255))

	rl.BeginMode3D(a.camera)
	for i, solid := range a.solids {
		col := cellColors[i%len(cellColors)]
		for _, face := range solid.Faces {
			loop := face.Loop()
			if len(loop) < 3 {
				continue
			}

			if a.showFilled {
				// Fan triangulation; draw both windings so faces stay
				// visible regardless of loop orientation.
				v0 := toRaylib(loop[0])
				for j := 1; j < len(loop)-1; j++ {
					v1 := toRaylib(loop[j])
					v2 := toRaylib(loop[j+1])
					rl.DrawTriangle3D(v0, v1, v2, col)
					rl.DrawTriangle3D(v0, v2, v1, col)
				}
			}

			if a.showWireframe {
				for j := range loop {
					v1 := toRaylib(loop[j])
					v2 := toRaylib(loop[(j+1)%len(loop)])
					rl.DrawLine3D(v1, v2, rl.RayWhite)
				}
			}
		}
	}
	rl.EndMode3D()

	rl.DrawText("drag: rotate | wheel: zoom | W: wireframe | F: filled", 10, 10, 18, rl.LightGray)
	rl.DrawFPS(10, 36)

	rl.EndDrawing()
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
