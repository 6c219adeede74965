package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	fieldLabelWidth = 36
	fieldWidth      = 220
	fieldHeight     = 32
	fieldSpacing    = 44
)

func (a *App) fieldRect(i int) Rect {
	return NewRect(a.panelX()+fieldLabelWidth, a.margin+float64(i)*fieldSpacing, fieldWidth, fieldHeight)
}

// updateFields applies this tick's mouse and keyboard input and reports whether any value changed.
func (a *App) updateFields() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mousePos := getCurrentMousePosition()
		for i := range a.fields {
			if a.fieldRect(i).Contains(mousePos) {
				a.focus(i)
				break
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			a.focus((a.focused + len(a.fields) - 1) % len(a.fields))
		} else {
			a.focus((a.focused + 1) % len(a.fields))
		}
	}

	field := a.fields[a.focused]
	changed := false

	if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
		changed = field.Insert(chars) || changed
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		changed = field.Backspace() || changed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		changed = field.Clear() || changed
	}
	if repeatingKeyPressed(ebiten.KeyArrowUp) {
		changed = field.StepUp() || changed
	}
	if repeatingKeyPressed(ebiten.KeyArrowDown) {
		changed = field.StepDown() || changed
	}

	if changed {
		a.logger.Debug("field changed", "field", field.ID, "value", field.Value())
	}
	return changed
}

func (a *App) focus(i int) {
	if i == a.focused {
		return
	}
	a.focused = i
	a.caret.Restart()
	a.logger.Debug("field focused", "field", a.fields[i].ID)
}
