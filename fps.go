package folio

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsWidget draws the current FPS and TPS in the bottom-left corner while
// Page.ShowFPS is set. The label refreshes every ~0.5 seconds.
type fpsWidget struct {
	p          *Page
	lastUpdate float64
	label      string
}

func (w *fpsWidget) layout() {}

func (w *fpsWidget) update(dt float64) {
	if !w.p.ShowFPS {
		return
	}
	w.lastUpdate += dt
	if w.label != "" && w.lastUpdate < 0.5 {
		return
	}
	w.lastUpdate = 0
	w.label = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (w *fpsWidget) draw(s Surface) {
	if !w.p.ShowFPS || w.label == "" {
		return
	}
	r := Rect{X: 8, Y: w.p.height - 32, Width: 170, Height: 24}
	s.FillRect(r, Color{A: 0.5})
	s.Text(w.label, r.X+8, r.Y+5, TextStyle{Size: 12, Color: ColorWhite})
}
