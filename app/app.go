package app

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/planedemo/assets"
	"github.com/meghashyamc/planedemo/config"
	"github.com/meghashyamc/planedemo/input"
	"github.com/meghashyamc/planedemo/logger"
	"github.com/meghashyamc/planedemo/plane"
)

const (
	panelGap   = 40
	panelWidth = 360
	caretBlink = 500 * time.Millisecond
)

const (
	fieldX = iota
	fieldY
	fieldTheta
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	display *plane.Display

	fields  []*input.NumberField
	focused int
	caret   *input.Caret

	canvas      *ebiten.Image
	margin      float64
	drawnFrame  *plane.Frame
	description string
}

func New(cfg *config.Config, log logger.Logger) *App {
	bounds := plane.NewBounds(float64(cfg.GetPlaneWidth()), float64(cfg.GetPlaneHeight()))
	renderer := plane.NewRenderer(bounds, log)

	a := &App{
		cfg:     cfg,
		logger:  log,
		display: plane.NewDisplay(renderer),
		fields: []*input.NumberField{
			fieldX:     input.NewNumberField("x_in", "x: ", bounds.XMin(), bounds.XMax(), 1),
			fieldY:     input.NewNumberField("y_in", "y: ", bounds.YMin(), bounds.YMax(), 1),
			fieldTheta: input.NewNumberField("theta_in", "θ: ", bounds.ThetaMin, bounds.ThetaMax, cfg.GetThetaStep()),
		},
		focused:     fieldX,
		caret:       input.NewCaret(caretBlink, ebiten.TPS()),
		canvas:      ebiten.NewImage(cfg.GetPlaneWidth(), cfg.GetPlaneHeight()),
		margin:      float64(cfg.GetCanvasMargin()),
		description: wrapText(plane.Description, assets.TextFont, panelWidth),
	}

	a.canvas.Fill(canvasColor)

	a.fields[fieldX].SetFloat(cfg.GetInitialX())
	a.fields[fieldY].SetFloat(cfg.GetInitialY())
	a.fields[fieldTheta].SetFloat(cfg.GetInitialTheta())

	a.logger.Info("app initialized",
		"plane_width", bounds.Width,
		"plane_height", bounds.Height,
		"theta_step", cfg.GetThetaStep(),
	)

	a.redraw()
	return a
}

func (a *App) Run() error {
	a.logger.Info("starting app")
	a.setupWindow()

	// Running the app calls Update() on every 'tick'
	return ebiten.RunGame(a)
}

func (a *App) setupWindow() {
	ebiten.SetWindowSize(a.cfg.GetWindowWidth(), a.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(a.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (a *App) Update() error {
	a.caret.Update()

	// Every field shares this handler: any edit recomputes the frame in the same tick.
	if a.updateFields() {
		a.redraw()
	}
	return nil
}

func (a *App) redraw() {
	raw := plane.RawInputs{
		X:     a.fields[fieldX].Value(),
		Y:     a.fields[fieldY].Value(),
		Theta: a.fields[fieldTheta].Value(),
	}
	if err := a.display.Redraw(raw); err != nil {
		a.logger.Debug("redraw aborted, keeping last frame", "err", err)
		return
	}

	frame := a.display.Frame()
	a.logger.Debug("redraw complete", "x", frame.State.X, "y", frame.State.Y, "theta", frame.State.Theta, "r", frame.R)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.cfg.GetWindowWidth(), a.cfg.GetWindowHeight()
}

func (a *App) canvasRect() Rect {
	b := a.display.Renderer().Bounds()
	return NewRect(a.margin, a.margin, b.Width, b.Height)
}

func (a *App) panelX() float64 {
	r := a.canvasRect()
	return math.Ceil(r.X + r.Width + panelGap)
}
