package plane

import "github.com/meghashyamc/planedemo/geometry"

type CommandKind int

const (
	KindSegment CommandKind = iota
	KindCircle
	KindArc
)

// Role tells the drawing layer what a stroke represents so it can pick a colour.
type Role int

const (
	RoleAxis Role = iota
	RolePoint
	RoleLine
	RoleReference
	RoleAngle
	RoleDistance
	RoleIntercept
)

func (r Role) String() string {
	switch r {
	case RoleAxis:
		return "axis"
	case RolePoint:
		return "point"
	case RoleLine:
		return "line"
	case RoleReference:
		return "reference"
	case RoleAngle:
		return "angle"
	case RoleDistance:
		return "distance"
	case RoleIntercept:
		return "intercept"
	}
	return "unknown"
}

// Command is a single stroke in surface coordinates.
//
// Segments use From and To. Circles use Center and Radius. Arcs also use
// StartAngle and EndAngle, measured on the surface (y down) and swept clockwise.
type Command struct {
	Kind       CommandKind
	Role       Role
	From       geometry.Vector
	To         geometry.Vector
	Center     geometry.Vector
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Width      float64
}

func segment(role Role, from, to geometry.Vector, width float64) Command {
	return Command{Kind: KindSegment, Role: role, From: from, To: to, Width: width}
}

func circle(role Role, center geometry.Vector, radius, width float64) Command {
	return Command{Kind: KindCircle, Role: role, Center: center, Radius: radius, Width: width}
}

func arc(role Role, center geometry.Vector, radius, start, end, width float64) Command {
	return Command{Kind: KindArc, Role: role, Center: center, Radius: radius, StartAngle: start, EndAngle: end, Width: width}
}
