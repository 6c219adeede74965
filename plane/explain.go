package plane

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/meghashyamc/planedemo/geometry"
)

const (
	Description = "The distance, r, from the origin to a line running through a point at angle θ is given by:"
	Formula     = "r = |y*cos(θ) - x*sin(θ)|"
)

// Explain writes the substituted formula and its results, two decimals each.
func Explain(state PlaneState, r float64, intercept geometry.Vector) string {
	theta := fixed(state.Theta)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("r' = %d*cos(%s) - %d*sin(%s) = %s", state.Y, theta, state.X, theta, fixed(r)))
	sb.WriteString(fmt.Sprintf("\n\nr = |r'| = %s", fixed(math.Abs(r))))
	sb.WriteString("\n\nintercept = [r' * -sin(θ), r' * cos(θ)]")
	sb.WriteString(fmt.Sprintf("\n\nintercept = [%s, %s]", fixed(intercept.X), fixed(intercept.Y)))
	return sb.String()
}

// fixed formats v with two decimals. Negative zero prints as "0.00".
func fixed(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
