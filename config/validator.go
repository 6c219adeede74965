package config

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config key (e.g., "plane.theta_step")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks every setting and returns all failures as ValidationErrors, or nil.
func (c *Config) Validate() error {
	var errs ValidationErrors

	positive := []struct {
		key   string
		value int
	}{
		{keyWindowWidth, c.GetWindowWidth()},
		{keyWindowHeight, c.GetWindowHeight()},
		{keyPlaneWidth, c.GetPlaneWidth()},
		{keyPlaneHeight, c.GetPlaneHeight()},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, ValidationError{Field: p.key, Value: p.value, Message: "must be positive"})
		}
	}

	margin := c.GetCanvasMargin()
	if margin < 0 {
		errs = append(errs, ValidationError{Field: keyCanvasMargin, Value: margin, Message: "must not be negative"})
	}

	if needed := c.GetPlaneWidth() + 2*margin; needed > c.GetWindowWidth() {
		errs = append(errs, ValidationError{
			Field:   keyPlaneWidth,
			Value:   c.GetPlaneWidth(),
			Message: fmt.Sprintf("with canvas margin %d must fit in window width %d", margin, c.GetWindowWidth()),
		})
	}
	if needed := c.GetPlaneHeight() + 2*margin; needed > c.GetWindowHeight() {
		errs = append(errs, ValidationError{
			Field:   keyPlaneHeight,
			Value:   c.GetPlaneHeight(),
			Message: fmt.Sprintf("with canvas margin %d must fit in window height %d", margin, c.GetWindowHeight()),
		})
	}

	if step := c.GetThetaStep(); step <= 0 || math.IsNaN(step) || step > 2*math.Pi {
		errs = append(errs, ValidationError{Field: keyThetaStep, Value: step, Message: "must be in (0, 2π]"})
	}

	for _, initial := range []struct {
		key   string
		value float64
	}{
		{keyInitialX, c.GetInitialX()},
		{keyInitialY, c.GetInitialY()},
		{keyInitialTheta, c.GetInitialTheta()},
	} {
		if math.IsNaN(initial.value) || math.IsInf(initial.value, 0) {
			errs = append(errs, ValidationError{Field: initial.key, Value: initial.value, Message: "must be a finite number"})
		}
	}

	if level := strings.ToLower(c.GetLogLevel()); !slices.Contains(ValidLogLevels(), level) {
		errs = append(errs, ValidationError{
			Field:   keyLogLevel,
			Value:   c.GetLogLevel(),
			Message: fmt.Sprintf("must be one of %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
