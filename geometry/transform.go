package geometry

// Transform maps plane coordinates onto a drawing surface whose y axis grows downward.
// The plane origin sits at Origin on the surface and "up" is positive y on the plane.
type Transform struct {
	Origin Vector
}

// NewTransform centres the plane origin on a surface of the given size.
func NewTransform(width, height float64) Transform {
	return Transform{Origin: Vector{X: width / 2, Y: height / 2}}
}

// ToScreen converts a plane point to surface coordinates.
func (t Transform) ToScreen(p Vector) Vector {
	return Vector{X: t.Origin.X + p.X, Y: t.Origin.Y - p.Y}
}
