package geometry

import (
	"math"
)

// SignedDistanceToLine returns the signed perpendicular distance from the origin to the line
// running through point at angle theta: r = y·cos(θ) − x·sin(θ).
// Positive r means the origin lies to the right of the line's direction.
func SignedDistanceToLine(point Vector, theta float64) float64 {
	return point.Y*math.Cos(theta) - point.X*math.Sin(theta)
}

// Intercept returns the foot of the perpendicular from the origin onto the line at angle theta
// whose signed distance from the origin is r. It is the point of the line closest to the origin.
func Intercept(r, theta float64) Vector {
	return Vector{X: -r * math.Sin(theta), Y: r * math.Cos(theta)}
}

// ExtendLine returns the two endpoints of the segment through point at angle theta,
// reaching length in each direction.
func ExtendLine(point Vector, theta, length float64) (Vector, Vector) {
	offset := FromAngle(theta, length)
	return point.Sub(offset), point.Add(offset)
}

