package folio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep is a single action in a page script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Text   string  `json:"text,omitempty"`
	Key    string  `json:"key,omitempty"`
	Anchor string  `json:"anchor,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type pageScript struct {
	Steps []scriptStep `json:"steps"`
}

var scriptKeys = map[string]ebiten.Key{
	"tab":       ebiten.KeyTab,
	"enter":     ebiten.KeyEnter,
	"backspace": ebiten.KeyBackspace,
	"escape":    ebiten.KeyEscape,
	"pageup":    ebiten.KeyPageUp,
	"pagedown":  ebiten.KeyPageDown,
	"home":      ebiten.KeyHome,
	"end":       ebiten.KeyEnd,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
}

// ScriptRunner plays a JSON script of injected input, waits and screenshots
// across frames. Attach it with Page.SetScriptRunner. Actions:
//
//	move, press, release, click  x, y (screen space)
//	leave
//	scroll                       dy
//	type                         text
//	key                          key (tab, enter, backspace, escape, pageup,
//	                             pagedown, home, end, up, down)
//	anchor                       anchor ("#id", smooth scroll)
//	resize                       width, height
//	wait                         frames
//	screenshot                   label
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses and checks a page script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script pageScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "press", "release", "click", "leave", "scroll", "type",
			"anchor", "resize", "wait", "screenshot":
		case "key":
			if _, ok := scriptKeys[strings.ToLower(st.Key)]; !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown key %q", i, st.Key)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a runner. Its step runs at the start of every
// Update, before input processing.
func (p *Page) SetScriptRunner(r *ScriptRunner) {
	p.script = r
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the script by one frame.
func (r *ScriptRunner) step(p *Page) {
	if r.done {
		return
	}
	if len(p.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		p.InjectMove(st.X, st.Y)
	case "press":
		p.InjectPress(st.X, st.Y)
	case "release":
		p.InjectRelease(st.X, st.Y)
	case "click":
		p.InjectClick(st.X, st.Y)
	case "leave":
		p.InjectLeave()
	case "scroll":
		p.InjectScroll(st.DY)
	case "type":
		p.InjectText(st.Text)
	case "key":
		p.InjectKey(scriptKeys[strings.ToLower(st.Key)])
	case "anchor":
		p.scroller.ScrollToAnchor(st.Anchor)
	case "resize":
		p.InjectResize(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "screenshot":
		p.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}
