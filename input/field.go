// Package input models the numeric input fields of the demo: a text buffer with
// min, max and step metadata. It holds no rendering code so it can be driven and
// tested without a window.
package input

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

const maxLength = 24

// NumberField mirrors a browser number input. Typing is not clamped; only
// stepping respects Min and Max, snapping to the grid Min + k*Step.
type NumberField struct {
	ID    string
	Label string
	Min   float64
	Max   float64
	Step  float64

	buffer []rune
}

func NewNumberField(id, label string, min, max, step float64) *NumberField {
	return &NumberField{
		ID:     id,
		Label:  label,
		Min:    min,
		Max:    max,
		Step:   step,
		buffer: make([]rune, 0, maxLength),
	}
}

// Value is the raw text as typed.
func (f *NumberField) Value() string {
	return string(f.buffer)
}

// SetValue replaces the buffer, dropping characters a number input would refuse.
// It reports whether the text changed.
func (f *NumberField) SetValue(s string) bool {
	before := f.Value()
	f.buffer = f.buffer[:0]
	f.Insert([]rune(s))
	return f.Value() != before
}

func (f *NumberField) SetFloat(v float64) bool {
	return f.SetValue(strconv.FormatFloat(v, 'f', -1, 64))
}

// Insert appends the acceptable runes and reports whether anything was added.
// A sign may only open the number or the exponent, a '.' may appear once before
// the exponent, and the exponent marker may appear once.
func (f *NumberField) Insert(runes []rune) bool {
	changed := false
	for _, r := range runes {
		if len(f.buffer) >= maxLength || !f.accepts(r) {
			continue
		}
		f.buffer = append(f.buffer, r)
		changed = true
	}
	return changed
}

func (f *NumberField) accepts(r rune) bool {
	hasExponent := slices.Contains(f.buffer, 'e') || slices.Contains(f.buffer, 'E')

	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '-', r == '+':
		if len(f.buffer) == 0 {
			return true
		}
		last := f.buffer[len(f.buffer)-1]
		return last == 'e' || last == 'E'
	case r == '.':
		return !hasExponent && !slices.Contains(f.buffer, '.')
	case r == 'e', r == 'E':
		return !hasExponent
	}
	return false
}

func (f *NumberField) Backspace() bool {
	if len(f.buffer) == 0 {
		return false
	}
	f.buffer = f.buffer[:len(f.buffer)-1]
	return true
}

func (f *NumberField) Clear() bool {
	if len(f.buffer) == 0 {
		return false
	}
	f.buffer = f.buffer[:0]
	return true
}

// StepUp moves to the next grid value above the current one, clamped to Max.
// An empty or unparsable buffer counts as zero.
func (f *NumberField) StepUp() bool {
	k := math.Floor((f.current()-f.Min)/f.Step+1e-9) + 1
	return f.setStepped(f.Min + k*f.Step)
}

// StepDown moves to the next grid value below the current one, clamped to Min.
func (f *NumberField) StepDown() bool {
	k := math.Ceil((f.current()-f.Min)/f.Step-1e-9) - 1
	return f.setStepped(f.Min + k*f.Step)
}

func (f *NumberField) current() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(f.Value()), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (f *NumberField) setStepped(v float64) bool {
	v = math.Min(math.Max(v, f.Min), f.Max)
	// drop float noise such as 1.0500000000000003
	v, _ = strconv.ParseFloat(strconv.FormatFloat(v, 'f', f.stepDecimals(), 64), 64)
	return f.SetFloat(v)
}

// stepDecimals counts the decimals of Step, plus those of Min when it is off grid.
func (f *NumberField) stepDecimals() int {
	decimals := func(v float64) int {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if i := strings.IndexByte(s, '.'); i >= 0 {
			return len(s) - i - 1
		}
		return 0
	}
	return max(decimals(f.Step), decimals(f.Min))
}
