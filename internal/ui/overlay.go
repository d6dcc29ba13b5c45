//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws text boxes over the grid: the rules sheet and the banner
// shown when a run ends.
type Overlay struct {
	showRules bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{pixel: ebiten.NewImage(1, 1)}
	o.pixel.Fill(color.White)
	return o
}

// ToggleRules shows or hides the rules sheet.
func (o *Overlay) ToggleRules() { o.showRules = !o.showRules }

// ShowingRules reports whether the rules sheet is visible.
func (o *Overlay) ShowingRules() bool { return o.showRules }

// Draw renders the overlay inside a w*h area at the top left of screen. An
// empty banner draws nothing for it.
func (o *Overlay) Draw(screen *ebiten.Image, w, h int, rules, banner string) {
	if o.showRules {
		o.drawBox(screen, w, h, wrapLines(rules, charsFor(w)), color.RGBA{R: 20, G: 22, B: 28, A: 220})
		return
	}
	if banner != "" {
		lines := append(wrapLines(banner, charsFor(w)), "Click to clear")
		o.drawBox(screen, w, h, lines, color.RGBA{R: 90, G: 30, B: 30, A: 220})
	}
}

func charsFor(w int) int {
	return (w - 2*boxPadding) / glyphWidth
}

func (o *Overlay) drawBox(screen *ebiten.Image, w, h int, lines []string, bg color.RGBA) {
	face := basicfont.Face7x13
	boxW := 0
	for _, line := range lines {
		boxW = max(boxW, text.BoundString(face, line).Dx())
	}
	boxW = min(w, boxW+2*boxPadding)
	boxH := min(h, len(lines)*lineSpacing+2*boxPadding)
	x := (w - boxW) / 2
	y := (h - boxH) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(boxW), float64(boxH))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(bg)
	screen.DrawImage(o.pixel, op)

	for i, line := range lines {
		text.Draw(screen, line, face, x+boxPadding, y+boxPadding+(i+1)*lineSpacing-4, color.White)
	}
}

const (
	boxPadding  = 10
	lineSpacing = 16
	glyphWidth  = 7
)
