package plane

import (
	"cmp"
	"math"
)

// Bounds describes the visible plane. The origin sits at the centre so x spans
// [-Width/2, Width/2] and y spans [-Height/2, Height/2].
type Bounds struct {
	Width    float64
	Height   float64
	ThetaMin float64
	ThetaMax float64
}

// NewBounds returns bounds for a plane of the given size with θ in [0, 2π].
func NewBounds(width, height float64) Bounds {
	return Bounds{
		Width:    width,
		Height:   height,
		ThetaMin: 0,
		ThetaMax: 2 * math.Pi,
	}
}

func (b Bounds) XMin() float64 { return -b.Width / 2 }
func (b Bounds) XMax() float64 { return b.Width / 2 }
func (b Bounds) YMin() float64 { return -b.Height / 2 }
func (b Bounds) YMax() float64 { return b.Height / 2 }

// Diagonal is long enough for a line through any visible point to leave the surface in both directions.
func (b Bounds) Diagonal() float64 {
	return math.Sqrt(b.Width*b.Width + b.Height*b.Height)
}

// PlaneState is the clamped input of one redraw.
type PlaneState struct {
	X     int
	Y     int
	Theta float64
}

// Clamp brings raw values into the plane. x and y are clamped then rounded to the
// nearest integer, halves rounding up. θ keeps its fractional part.
func (b Bounds) Clamp(x, y, theta float64) PlaneState {
	return PlaneState{
		X:     roundHalfUp(clampValue(x, b.XMin(), b.XMax())),
		Y:     roundHalfUp(clampValue(y, b.YMin(), b.YMax())),
		Theta: clampValue(theta, b.ThetaMin, b.ThetaMax),
	}
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
