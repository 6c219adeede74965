package input

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newThetaField() *NumberField {
	return NewNumberField("theta_in", "θ: ", 0, 2*math.Pi, 0.05)
}

func newXField() *NumberField {
	return NewNumberField("x_in", "x: ", -250, 250, 1)
}

func TestNumberField_Insert(t *testing.T) {
	f := newXField()

	assert.True(t, f.Insert([]rune("-12")))
	assert.Equal(t, "-12", f.Value())

	assert.False(t, f.Insert([]rune("abc")), "letters are refused")
	assert.True(t, f.Insert([]rune("x.5")))
	assert.Equal(t, "-12.5", f.Value())
}

func TestNumberField_InsertPositionalRules(t *testing.T) {
	tests := []struct {
		typed string
		want  string
	}{
		{"--1", "-1"},
		{"1..2", "1.2"},
		{"1-2", "12"},
		{"1e2e3", "1e23"},
		{"+5", "+5"},
		{"1e-5", "1e-5"},
		{"1E+5", "1E+5"},
		{"1.5e.2", "1.5e2"},
		{"2e3.4", "2e34"},
		{"--1..2-", "-1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.typed, func(t *testing.T) {
			f := newXField()
			f.Insert([]rune(tt.typed))
			assert.Equal(t, tt.want, f.Value())
		})
	}
}

func TestNumberField_InsertRejectedRuneReportsNoChange(t *testing.T) {
	f := newXField()
	require.True(t, f.SetValue("1.5"))

	assert.False(t, f.Insert([]rune(".")))
	assert.False(t, f.Insert([]rune("-")))
	assert.Equal(t, "1.5", f.Value())
}

func TestNumberField_InsertStopsAtMaxLength(t *testing.T) {
	f := newXField()
	f.Insert([]rune("1234567890123456789012345678"))

	assert.Len(t, f.Value(), maxLength)
	assert.False(t, f.Insert([]rune("9")))
}

func TestNumberField_BackspaceAndClear(t *testing.T) {
	f := newXField()
	assert.False(t, f.Backspace())
	assert.False(t, f.Clear())

	f.SetValue("100")
	assert.True(t, f.Backspace())
	assert.Equal(t, "10", f.Value())
	assert.True(t, f.Clear())
	assert.Equal(t, "", f.Value())
}

func TestNumberField_SetValue(t *testing.T) {
	f := newXField()

	assert.True(t, f.SetValue("1e2"))
	assert.False(t, f.SetValue("1e2"))
	assert.True(t, f.SetValue("12px"))
	assert.Equal(t, "12", f.Value())

	f.SetFloat(1.3 * math.Pi / 4)
	assert.Equal(t, "1.0210176124166828", f.Value())
}

func TestNumberField_Step(t *testing.T) {
	tests := []struct {
		name  string
		field func() *NumberField
		start string
		up    bool
		want  string
	}{
		{"x up", newXField, "100", true, "101"},
		{"x down", newXField, "100", false, "99"},
		{"x up from empty", newXField, "", true, "1"},
		{"x up clamps at max", newXField, "250", true, "250"},
		{"x down clamps at min", newXField, "-250", false, "-250"},
		{"x up far out of range", newXField, "9999", true, "250"},
		{"x up snaps to grid", newXField, "1.4", true, "2"},
		{"x down snaps to grid", newXField, "1.4", false, "1"},
		{"theta up snaps", newThetaField, "1.0210176124166828", true, "1.05"},
		{"theta down snaps", newThetaField, "1.0210176124166828", false, "1"},
		{"theta up on grid", newThetaField, "1.05", true, "1.1"},
		{"theta up clamps below 2π", newThetaField, "6.25", true, "6.28"},
		{"theta down clamps at zero", newThetaField, "0", false, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.field()
			f.SetValue(tt.start)
			if tt.up {
				f.StepUp()
			} else {
				f.StepDown()
			}
			assert.Equal(t, tt.want, f.Value())
		})
	}
}

func TestNumberField_StepReportsChange(t *testing.T) {
	f := newXField()
	require.True(t, f.SetValue("250"))

	assert.False(t, f.StepUp())
	assert.True(t, f.StepDown())
}
