package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorPanel       = rl.NewColor(18, 18, 24, 220)
	colorPanelBorder = rl.NewColor(60, 60, 75, 255)
	colorAccent      = rl.NewColor(108, 99, 255, 255)
	colorText        = rl.NewColor(230, 230, 235, 255)
	colorLabelBg     = rl.NewColor(10, 10, 15, 200)
	colorCrosshair   = rl.NewColor(255, 255, 255, 200)
)

const (
	panelMargin  = 24
	panelPadding = 16
)

// ApplyTheme sets the raygui style used by the close button.
func ApplyTheme() {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(28, 28, 38, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(38, 38, 52, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorPanelBorder))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 20)
}

// Draw renders the overlay for a screen of the given size. Call it after
// EndMode3D.
func (o *Overlay) Draw(width, height int32) {
	w, h := float32(width), float32(height)

	if o.basic.shown {
		rect := rl.Rectangle{X: w * 0.2, Y: h - 200 - panelMargin, Width: w * 0.6, Height: 200}
		o.drawPanel(rect, &o.basic)
	}
	if o.side.shown {
		pw := w * 0.32
		rect := rl.Rectangle{X: w - pw - panelMargin, Y: panelMargin + 56, Width: pw, Height: h - 2*panelMargin - 56}
		o.drawPanel(rect, &o.side)
	}

	if o.closeShown {
		rect := rl.Rectangle{X: w - 48 - panelMargin, Y: panelMargin, Width: 48, Height: 40}
		if gui.Button(rect, "X") {
			o.Close()
		}
	}

	if o.inspectShown && o.inspectText != "" {
		o.drawInspectLabel()
	}

	if prompt := o.NamePrompt(); prompt != "" {
		o.drawCentered(prompt, w/2, h/2+28, o.opts.FontSize, colorText)
	}

	if o.helpShown {
		o.drawText(rl.GetFontDefault(), o.HelpText(), rl.Vector2{X: panelMargin, Y: h - panelMargin - o.opts.FontSize}, o.opts.FontSize*0.8, colorText)
	}

	if o.crosshairVisible {
		c := colorCrosshair
		if o.crosshairHighlight {
			c = rl.Gold
		}
		rl.DrawCircle(width/2, height/2, 3, c)
		if o.crosshairHighlight {
			rl.DrawCircleLines(width/2, height/2, 9, c)
		}
	}
}

func (o *Overlay) drawPanel(rect rl.Rectangle, p *panel) {
	rl.DrawRectangleRounded(rect, 8/rect.Height, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 8/rect.Height, 8, 1, colorPanelBorder)

	x := rect.X + panelPadding
	y := rect.Y + panelPadding
	inner := rect.Width - 2*panelPadding

	nameFont := o.fonts.Font(p.nameStyle.Font)
	o.drawText(nameFont, p.name, rl.Vector2{X: x, Y: y}, p.nameStyle.Size, p.nameStyle.Color)
	y += p.nameStyle.Size + 8
	rl.DrawLineEx(rl.Vector2{X: x, Y: y}, rl.Vector2{X: x + inner, Y: y}, 1, colorAccent)
	y += 8

	descFont := o.fonts.Font(p.descStyle.Font)
	size := p.descStyle.Size
	measure := func(s string) float32 { return rl.MeasureTextEx(descFont, s, size, 0).X }
	for _, line := range wrapText(p.description, inner, measure) {
		if y+size > rect.Y+rect.Height-panelPadding {
			break
		}
		o.drawText(descFont, line, rl.Vector2{X: x, Y: y}, size, p.descStyle.Color)
		y += size + 4
	}
}

func (o *Overlay) drawInspectLabel() {
	pos := o.inspectPos
	size := o.opts.FontSize * 0.8
	font := rl.GetFontDefault()
	textSize := rl.MeasureTextEx(font, o.inspectText, size, 0)

	rl.DrawCircleV(pos, 5, colorAccent)
	box := rl.Rectangle{X: pos.X + 12, Y: pos.Y - textSize.Y/2 - 6, Width: textSize.X + 16, Height: textSize.Y + 12}
	rl.DrawRectangleRec(box, colorLabelBg)
	rl.DrawRectangleLinesEx(box, 1, colorAccent)
	o.drawText(font, o.inspectText, rl.Vector2{X: box.X + 8, Y: box.Y + 6}, size, colorText)
}

func (o *Overlay) drawCentered(text string, cx, y, size float32, color rl.Color) {
	font := rl.GetFontDefault()
	width := rl.MeasureTextEx(font, text, size, 1).X
	bg := rl.Rectangle{X: cx - width/2 - 8, Y: y - 4, Width: width + 16, Height: size + 8}
	rl.DrawRectangleRec(bg, colorLabelBg)
	o.drawText(font, text, rl.Vector2{X: cx - width/2, Y: y}, size, color)
}

func (o *Overlay) drawText(font rl.Font, text string, pos rl.Vector2, size float32, color rl.Color) {
	if text == "" {
		return
	}
	rl.DrawTextEx(font, text, pos, size, 1, color)
}
