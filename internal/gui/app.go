// Package gui renders the machine in a Raylib window: the same frame
// geometry as the TUI, drawn with hardware lines at 60 FPS, with a HUD
// for readings and keyboard sliders.
package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/dcmlab/internal/curves"
	"github.com/san-kum/dcmlab/internal/geometry"
	"github.com/san-kum/dcmlab/internal/machine"
)

// Monochrome base palette; machine parts add color on top.
var (
	colBg      = rl.NewColor(10, 10, 10, 255)
	colText    = rl.NewColor(140, 140, 140, 255)
	colTextDim = rl.NewColor(60, 60, 60, 255)
	colAccent  = rl.NewColor(220, 220, 220, 255)
	colGrid    = rl.NewColor(30, 30, 30, 255)
)

// worldScale blows the 0.1 m machine up to comfortable camera range.
const worldScale = 40.0

type App struct {
	State *machine.State
	Theta float64

	Camera      rl.Camera3D
	FollowTheta bool
	orbit       float64

	Running  bool
	Selected int
	quit     bool

	reading    machine.Reading
	speedCurve curves.Curve
	torqCurve  curves.Curve

	// hum, when set, is fed every parameter edit so the synthesized
	// machine noise tracks the sliders.
	hum interface{ Update(*machine.State) }

	// initial is the launch operating point; R restores it.
	initial *machine.State

	paramKeys []string
}

// WithHum attaches a hum synthesizer to the app.
func (a *App) WithHum(h interface{ Update(*machine.State) }) *App {
	a.hum = h
	a.recompute()
	return a
}

func NewApp(s *machine.State) *App {
	a := &App{
		State:       s,
		initial:     s.Clone(),
		Running:     true,
		FollowTheta: true,
		paramKeys:   []string{"flux", "speed", "current"},
		Camera: rl.Camera3D{
			Position:   rl.NewVector3(12, 9, 12),
			Target:     rl.NewVector3(0, 0, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       45,
			Projection: rl.CameraPerspective,
		},
	}
	a.recompute()
	return a
}

func (a *App) recompute() {
	a.reading = machine.Compute(a.State)
	a.speedCurve, a.torqCurve = curves.Both(a.State, curves.DefaultPoints)
	if a.hum != nil {
		a.hum.Update(a.State)
	}
}

// reset restores the launch operating point and restarts the animation.
func (a *App) reset() {
	a.State = a.initial.Clone()
	a.restart()
	a.recompute()
}

// restart rebuilds the animation from angle zero after a
// geometry-affecting edit.
func (a *App) restart() {
	a.Theta = 0
	a.Running = true
}

// Run opens the window and drives the frame loop until close. hum may
// be nil.
func Run(s *machine.State, hum interface{ Update(*machine.State) }) {
	rl.InitWindow(1280, 720, "dcmlab")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	app := NewApp(s)
	if hum != nil {
		app = app.WithHum(hum)
	}
	for !rl.WindowShouldClose() && !app.quit {
		app.handleInput()
		app.stepFrame()
		app.draw()
	}
}

func (a *App) handleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.quit = true
	case rl.IsKeyPressed(rl.KeySpace):
		a.Running = !a.Running
	case rl.IsKeyPressed(rl.KeyR):
		a.reset()
	case rl.IsKeyPressed(rl.KeyTab):
		a.Selected = (a.Selected + 1) % len(a.paramKeys)
	case rl.IsKeyPressed(rl.KeyM):
		a.State.ToggleMode()
		a.restart()
		a.recompute()
	case rl.IsKeyPressed(rl.KeyF):
		a.State.ShowField = !a.State.ShowField
		a.restart()
	case rl.IsKeyPressed(rl.KeyV):
		a.State.ShowVectors = !a.State.ShowVectors
		a.restart()
	case rl.IsKeyPressed(rl.KeyC):
		a.State.ShowCommutator = !a.State.ShowCommutator
		a.restart()
	case rl.IsKeyPressed(rl.KeyA):
		a.FollowTheta = !a.FollowTheta
	}

	// Held keys give continuous slider motion.
	if rl.IsKeyDown(rl.KeyUp) {
		a.nudgeParam(1)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		a.nudgeParam(-1)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		a.orbit -= 0.02
	}
	if rl.IsKeyDown(rl.KeyRight) {
		a.orbit += 0.02
	}
}

var guiParamSteps = map[string]float64{
	"flux":    0.01,
	"speed":   0.25,
	"current": 0.05,
}

func (a *App) nudgeParam(dir float64) {
	key := a.paramKeys[a.Selected]
	val := a.State.GetParams()[key]
	_ = a.State.SetParam(key, val+dir*guiParamSteps[key])
	a.recompute()
}

func (a *App) stepFrame() {
	if a.Running {
		a.Theta += a.State.Speed() * float64(rl.GetFrameTime())
		if a.Theta > 2*math.Pi {
			a.Theta -= 2 * math.Pi
		}
	}

	az := a.orbit
	if a.FollowTheta {
		az += a.Theta * 0.25
	}
	const dist = 18.0
	a.Camera.Position = rl.NewVector3(
		float32(dist*math.Cos(az)),
		9,
		float32(dist*math.Sin(az)),
	)
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	rl.BeginMode3D(a.Camera)
	drawGrid()
	frame := geometry.Build(a.State, a.Theta)
	drawFrame(frame)
	rl.EndMode3D()

	a.drawLabels(frame)
	a.drawHUD()
	rl.EndDrawing()
}

func drawGrid() {
	for i := int32(-10); i <= 10; i++ {
		rl.DrawLine3D(rl.NewVector3(float32(i), -6, -10), rl.NewVector3(float32(i), -6, 10), colGrid)
		rl.DrawLine3D(rl.NewVector3(-10, -6, float32(i)), rl.NewVector3(10, -6, float32(i)), colGrid)
	}
}

// drawLabels projects the pole labels into screen space after the 3D
// pass so the text always faces the camera.
func (a *App) drawLabels(f *geometry.Frame) {
	for _, l := range f.Labels {
		screen := rl.GetWorldToScreen(toWorld(l.Pos), a.Camera)
		col := colSouth
		if l.Part == geometry.PartPoleNorth {
			col = colNorth
		}
		rl.DrawText(l.Text, int32(screen.X), int32(screen.Y), 24, col)
	}
}

func (a *App) drawHUD() {
	mode := a.State.Mode().String()
	rl.DrawText(fmt.Sprintf("DC MACHINE - %s", mode), 20, 20, 28, colAccent)

	y := int32(60)
	rl.DrawText(fmt.Sprintf("EMF    %.2f V", a.reading.EMF), 20, y, 20, colText)
	rl.DrawText(fmt.Sprintf("Torque %.2f N.m", a.reading.Torque), 20, y+24, 20, colText)
	rl.DrawText(fmt.Sprintf("Power  %.2f W", a.reading.Power), 20, y+48, 20, colText)

	y = 150
	for i, key := range a.paramKeys {
		val := a.State.GetParams()[key]
		col := colTextDim
		prefix := "  "
		if i == a.Selected {
			col = colAccent
			prefix = "> "
		}
		rl.DrawText(fmt.Sprintf("%s%-8s %.2f", prefix, key, val), 20, y+int32(i)*24, 20, col)
	}

	// Operating point of each curve, bottom left.
	rl.DrawText(a.speedCurve.Title+" op "+a.speedCurve.Annotation, 20, 660, 18, colTextDim)
	rl.DrawText(a.torqCurve.Title+" op "+a.torqCurve.Annotation, 20, 684, 18, colTextDim)

	rl.DrawText("TAB param  UP/DOWN adjust  M mode  F/V/C layers  A follow  SPACE pause  R reset  Q quit",
		20, 620, 16, colTextDim)
}
