package geometry

import (
	"math"
)

type Vector struct {
	X float64
	Y float64
}

// FromAngle returns the vector of the given length pointing at angle radians from the positive x axis.
func FromAngle(angle, length float64) Vector {
	return Vector{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}
