package plane

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/meghashyamc/planedemo/geometry"
	"github.com/meghashyamc/planedemo/logger"
)

const (
	axisWidth      = 0.3
	strokeWidth    = 1.0
	pointRadius    = 5.0
	referenceLen   = 30.0
	angleArcRadius = 25.0
)

// numberRegex is the number grammar a browser number input keeps; anything else it reports as "".
var numberRegex = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?$`)

// RawInputs holds the three field values exactly as typed.
type RawInputs struct {
	X     string
	Y     string
	Theta string
}

// Frame is everything one redraw produces: strokes in surface coordinates and the explanation text.
type Frame struct {
	State     PlaneState
	R         float64
	RAbs      float64
	Intercept geometry.Vector
	Commands  []Command
	Text      string
}

// Renderer turns raw input into a Frame for a plane of fixed bounds.
type Renderer struct {
	bounds    Bounds
	transform geometry.Transform
	logger    logger.Logger
}

func NewRenderer(bounds Bounds, log logger.Logger) *Renderer {
	return &Renderer{
		bounds:    bounds,
		transform: geometry.NewTransform(bounds.Width, bounds.Height),
		logger:    log,
	}
}

func (r *Renderer) Bounds() Bounds {
	return r.bounds
}

// Render validates raw, clamps it and builds the frame. The first field that is
// empty, not a plain decimal number ("5." and "+5" are not) or out of float range
// aborts the redraw with an *InvalidInputError.
func (r *Renderer) Render(raw RawInputs) (*Frame, error) {
	x, err := r.parse("x", raw.X)
	if err != nil {
		return nil, err
	}
	y, err := r.parse("y", raw.Y)
	if err != nil {
		return nil, err
	}
	theta, err := r.parse("theta", raw.Theta)
	if err != nil {
		return nil, err
	}

	state := r.bounds.Clamp(x, y, theta)
	r.logger.Debug("plane state", "x", state.X, "y", state.Y, "theta", state.Theta)

	return r.Build(state), nil
}

func (r *Renderer) parse(field, value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if numberRegex.MatchString(trimmed) {
		if v, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(v, 0) {
			return v, nil
		}
	}

	r.logger.Warn(field+" is not acceptable", "field", field, "value", value)
	return 0, &InvalidInputError{Field: field, Value: value}
}

// Build draws an already clamped state.
func (r *Renderer) Build(state PlaneState) *Frame {
	b := r.bounds
	toScreen := r.transform.ToScreen
	point := geometry.Vector{X: float64(state.X), Y: float64(state.Y)}
	origin := geometry.Vector{}

	commands := make([]Command, 0, 9)

	// axes
	commands = append(commands,
		segment(RoleAxis, toScreen(geometry.Vector{X: b.XMin()}), toScreen(geometry.Vector{X: b.XMax()}), axisWidth),
		segment(RoleAxis, toScreen(geometry.Vector{Y: b.YMin()}), toScreen(geometry.Vector{Y: b.YMax()}), axisWidth),
	)

	commands = append(commands, circle(RolePoint, toScreen(point), pointRadius, strokeWidth))

	start, end := geometry.ExtendLine(point, state.Theta, b.Diagonal())
	commands = append(commands, segment(RoleLine, toScreen(start), toScreen(end), strokeWidth))

	// θ is measured from the positive x direction; the surface's y axis is flipped so the arc
	// runs clockwise from -θ to 0 on screen.
	commands = append(commands,
		segment(RoleReference, toScreen(point), toScreen(point.Add(geometry.Vector{X: referenceLen})), strokeWidth),
		arc(RoleAngle, toScreen(point), angleArcRadius, 2*math.Pi-state.Theta, 2*math.Pi, strokeWidth),
	)

	dist := geometry.SignedDistanceToLine(point, state.Theta)
	distAbs := math.Abs(dist)
	r.logger.Debug("distance to line", "r", dist, "r_abs", distAbs)
	commands = append(commands, circle(RoleDistance, toScreen(origin), distAbs, strokeWidth))

	intercept := geometry.Intercept(dist, state.Theta)
	commands = append(commands, segment(RoleIntercept, toScreen(origin), toScreen(intercept), strokeWidth))

	return &Frame{
		State:     state,
		R:         dist,
		RAbs:      distAbs,
		Intercept: intercept,
		Commands:  commands,
		Text:      Explain(state, dist, intercept),
	}
}
