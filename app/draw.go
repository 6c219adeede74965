package app

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/planedemo/assets"
	"github.com/meghashyamc/planedemo/plane"
)

var (
	backgroundColor = color.RGBA{24, 24, 28, 255}
	canvasColor     = color.RGBA{255, 255, 255, 255}
	borderColor     = color.RGBA{0, 0, 0, 255}
	panelTextColor  = color.RGBA{230, 230, 230, 255}
	fieldColor      = color.RGBA{40, 40, 46, 255}
	focusColor      = color.RGBA{120, 170, 255, 255}
	idleColor       = color.RGBA{110, 110, 120, 255}

	roleColors = map[plane.Role]color.RGBA{
		plane.RoleAxis:      {0, 0, 0, 255},
		plane.RolePoint:     {0, 0, 0, 255},
		plane.RoleLine:      {0, 0, 0, 255},
		plane.RoleReference: {0, 0, 0, 255},
		plane.RoleAngle:     {200, 110, 0, 255},
		plane.RoleDistance:  {30, 90, 200, 255},
		plane.RoleIntercept: {200, 30, 30, 255},
	}
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	a.drawCanvas(screen)
	a.drawFields(screen)
	a.drawExplanation(screen)
}

// drawCanvas repaints the drawing surface only when the frame changed, so an aborted
// redraw keeps showing the last picture.
func (a *App) drawCanvas(screen *ebiten.Image) {
	if frame := a.display.Frame(); frame != a.drawnFrame {
		a.canvas.Fill(canvasColor)
		roles := make([]string, 0, len(frame.Commands))
		for _, cmd := range frame.Commands {
			strokeCommand(a.canvas, cmd, roleColors[cmd.Role])
			roles = append(roles, cmd.Role.String())
		}
		a.drawnFrame = frame
		a.logger.Debug("canvas repainted", "strokes", roles)
	}

	r := a.canvasRect()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(a.canvas, op)

	vector.StrokeRect(screen, float32(r.X-1), float32(r.Y-1), float32(r.Width+2), float32(r.Height+2), 1, borderColor, false)
}

func strokeCommand(dst *ebiten.Image, cmd plane.Command, clr color.Color) {
	width := float32(cmd.Width)

	switch cmd.Kind {
	case plane.KindSegment:
		if cmd.From == cmd.To {
			return
		}
		vector.StrokeLine(dst, float32(cmd.From.X), float32(cmd.From.Y), float32(cmd.To.X), float32(cmd.To.Y), width, clr, true)

	case plane.KindCircle:
		cx, cy := float32(cmd.Center.X), float32(cmd.Center.Y)
		// a zero radius circle collapses to a dot
		if cmd.Radius < float64(width)/2 {
			vector.DrawFilledCircle(dst, cx, cy, width/2, clr, true)
			return
		}
		vector.StrokeCircle(dst, cx, cy, float32(cmd.Radius), width, clr, true)

	case plane.KindArc:
		if cmd.EndAngle == cmd.StartAngle {
			return
		}
		var path vector.Path
		path.Arc(float32(cmd.Center.X), float32(cmd.Center.Y), float32(cmd.Radius), float32(cmd.StartAngle), float32(cmd.EndAngle), vector.Clockwise)
		strokePath(dst, &path, width, clr)
	}
}

func strokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	strokeOp := &vector.StrokeOptions{}
	strokeOp.Width = width
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	r, g, b, alpha := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(alpha) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

func (a *App) drawFields(screen *ebiten.Image) {
	for i, field := range a.fields {
		box := a.fieldRect(i)

		label := &text.DrawOptions{}
		label.GeoM.Translate(a.panelX(), box.Y+(box.Height-assets.LabelFont.Size)/2)
		label.ColorScale.ScaleWithColor(panelTextColor)
		text.Draw(screen, field.Label, assets.LabelFont, label)

		vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.Width), float32(box.Height), fieldColor, false)
		outline := idleColor
		if i == a.focused {
			outline = focusColor
		}
		vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.Width), float32(box.Height), 1, outline, false)

		value := field.Value()
		textX := box.X + 8
		textY := box.Y + (box.Height-assets.InputFont.Size)/2
		op := &text.DrawOptions{}
		op.GeoM.Translate(textX, textY)
		op.ColorScale.ScaleWithColor(panelTextColor)
		text.Draw(screen, value, assets.InputFont, op)

		if i == a.focused && a.caret.Visible() {
			caretX := float32(textX + text.Advance(value, assets.InputFont) + 1)
			vector.StrokeLine(screen, caretX, float32(textY), caretX, float32(textY+assets.InputFont.Size), 1, panelTextColor, false)
		}
	}
}

func (a *App) drawExplanation(screen *ebiten.Image) {
	x := a.panelX()
	y := a.fieldRect(len(a.fields)-1).Y + fieldHeight + 30
	lineSpacing := assets.TextFont.Size * 1.4

	drawBlock := func(s string) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(panelTextColor)
		op.LineSpacing = lineSpacing
		text.Draw(screen, s, assets.TextFont, op)

		_, h := text.Measure(s, assets.TextFont, lineSpacing)
		y += h + lineSpacing
	}

	drawBlock(a.description)
	drawBlock(plane.Formula)
	drawBlock(a.display.Text())
}
