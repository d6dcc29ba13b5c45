//go:build ebiten

package app

import (
	"log"
	"time"

	"life-sandbox/internal/render"
	"life-sandbox/internal/session"
	"life-sandbox/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel right of the grid.
const HUDWidth = 240

var patternKeys = map[ebiten.Key]string{
	ebiten.KeyDigit1: "block",
	ebiten.KeyDigit2: "glider",
	ebiten.KeyDigit3: "eight",
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
	seed  int64
}

// New constructs a Game for the provided session.
func New(sess *session.Session, scale int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sess:    sess,
		painter: render.NewGridPainter(sess.Cols(), sess.Rows()),
		hud:     ui.NewHUD(sess, HUDWidth),
		overlay: ui.NewOverlay(),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reseeds the grid with a random soup.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sess.Reset(seed)
}

// Update handles input and advances the simulation when a step is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.overlay.ToggleRules()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.sess.Finished() {
			g.sess.Acknowledge()
		} else {
			g.sess.ToggleRunning()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sess.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.nextKind()
	}
	for key, name := range patternKeys {
		if inpututil.IsKeyJustPressed(key) {
			if err := g.sess.ApplyPattern(name); err != nil {
				log.Printf("pattern %s: %v", name, err)
			}
		}
	}

	gridW := g.sess.Cols() * g.scale
	if !g.hud.Update(gridW) {
		g.handleGridClick()
	}

	if w, h := g.painter.Size(); w != g.sess.Cols() || h != g.sess.Rows() {
		g.painter = render.NewGridPainter(g.sess.Cols(), g.sess.Rows())
	}

	if out := g.sess.Tick(time.Now()); out.Terminal() {
		log.Printf("%s after %d generations", out, g.sess.Generation())
	}
	return nil
}

func (g *Game) handleGridClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if g.sess.Finished() {
		g.sess.Acknowledge()
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y, ok := render.CellAt(mx, my, g.scale, g.sess.Cols(), g.sess.Rows())
	if !ok {
		return
	}
	if err := g.sess.ToggleCell(x, y); err != nil {
		log.Printf("toggle: %v", err)
	}
}

func (g *Game) nextKind() {
	next := session.Kinds[0]
	for i, k := range session.Kinds {
		if k == g.sess.Kind() {
			next = session.Kinds[(i+1)%len(session.Kinds)]
		}
	}
	if err := g.sess.SetKind(next); err != nil {
		log.Printf("switch to %s: %v", next, err)
		return
	}
	ebiten.SetWindowTitle("life-sandbox: " + next.String())
}

// Draw renders the grid, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	gridW, gridH := g.sess.Cols()*g.scale, g.sess.Rows()*g.scale
	g.painter.Blit(screen, g.sess.Sim(), g.scale)
	banner := ""
	if g.sess.Finished() {
		banner = g.sess.Outcome().String()
	}
	g.overlay.Draw(screen, gridW, gridH, g.sess.Rules(), banner)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, gridW, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sess.Cols()*g.scale + g.hud.Width(), max(g.sess.Rows()*g.scale, g.hud.MinHeight())
}
