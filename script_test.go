package folio

import (
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"bad json", `{"steps": [`, "parse script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
		{"unknown key", `{"steps": [{"action": "wait", "frames": 1}, {"action": "key", "key": "f13"}]}`, `step 1: unknown key "f13"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestScriptAnchorWaitScreenshot(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "anchor", "anchor": "#projects"},
		{"action": "wait", "frames": 60},
		{"action": "screenshot", "label": "projects"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	p := readyPage(t)
	p.SetScriptRunner(r)

	runFrames(t, p, 30)
	if r.Done() {
		t.Fatal("script finished during the wait")
	}
	if p.Scroller().Target() != 1870 {
		t.Errorf("scroll target = %v, want 1870", p.Scroller().Target())
	}
	runUntil(t, p, 60, r.Done)
	if p.ScrollY() != 1870 {
		t.Errorf("ScrollY = %v, want 1870", p.ScrollY())
	}
	if len(p.screenshotQueue) != 1 || p.screenshotQueue[0] != "projects" {
		t.Errorf("screenshot queue = %v", p.screenshotQueue)
	}
}

func TestScriptDrivesForm(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "scroll", "dy": 3000},
		{"action": "move", "x": 300, "y": 124},
		{"action": "click", "x": 300, "y": 124},
		{"action": "type", "text": "Sam"},
		{"action": "key", "key": "Tab"},
		{"action": "type", "text": "sam@example.comm"},
		{"action": "key", "key": "backspace"},
		{"action": "leave"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	p := readyPage(t)
	p.SetScriptRunner(r)
	runUntil(t, p, 30, r.Done)

	f := p.Form()
	if p.ScrollY() != 3000 {
		t.Errorf("ScrollY = %v, want 3000", p.ScrollY())
	}
	if f.Field("name").Value != "Sam" || f.Field("email").Value != "sam@example.com" {
		t.Errorf("values = %q, %q", f.Field("name").Value, f.Field("email").Value)
	}
	if _, _, inside := p.Pointer(); inside {
		t.Error("leave step did not run")
	}

	// A finished script stays finished.
	runFrames(t, p, 2)
	if !r.Done() {
		t.Error("Done reset")
	}
}
