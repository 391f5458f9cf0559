package folio

import "testing"

const frameDT = 1.0 / 60

func TestLoaderProgress(t *testing.T) {
	l := NewLoader(testRand())
	if l.Percent() != 0 || l.Hidden() || l.Alpha() != 1 {
		t.Fatalf("new loader: percent=%d hidden=%v alpha=%v", l.Percent(), l.Hidden(), l.Alpha())
	}

	prev := 0.0
	for i := 0; i < 120; i++ {
		l.Update(frameDT)
		if l.Progress < prev {
			t.Fatalf("progress went backwards: %v -> %v", prev, l.Progress)
		}
		if l.Progress > 100 {
			t.Fatalf("progress %v above 100", l.Progress)
		}
		prev = l.Progress
	}
	if l.Progress != 100 || l.Percent() != 100 {
		t.Errorf("progress after 2s = %v, want 100", l.Progress)
	}
}

func TestLoaderSteps(t *testing.T) {
	l := NewLoader(testRand())
	l.Update(0.019)
	if l.Progress != 0 {
		t.Errorf("progress before the first tick = %v", l.Progress)
	}
	l.Update(0.001)
	if l.Progress <= 0 || l.Progress > loaderMaxStep {
		t.Errorf("progress after one tick = %v, want (0, %v]", l.Progress, loaderMaxStep)
	}
}

func TestLoaderForceHide(t *testing.T) {
	l := NewLoader(testRand())
	calls := 0
	l.OnHidden = func() { calls++ }

	frames := 0
	for !l.Hidden() && frames < 1000 {
		l.Update(frameDT)
		frames++
	}
	if frames < 179 || frames > 181 {
		t.Errorf("hid after %d frames, want ~180 (3s)", frames)
	}
	for i := 0; i < 60; i++ {
		l.Update(frameDT)
	}
	if calls != 1 {
		t.Errorf("OnHidden called %d times, want 1", calls)
	}
	if l.Alpha() != 0 {
		t.Errorf("alpha after fade = %v, want 0", l.Alpha())
	}
}

func TestLoaderHidesAfterLoad(t *testing.T) {
	l := NewLoader(testRand())
	l.MarkLoaded()
	l.Update(0.5)
	l.MarkLoaded() // ignored

	frames := 0
	for !l.Hidden() && frames < 1000 {
		l.Update(frameDT)
		frames++
	}
	// 2.2s after the first mark, 0.5s of which already passed.
	if frames < 101 || frames > 103 {
		t.Errorf("hid after %d more frames, want ~102", frames)
	}
}

func TestLoaderFade(t *testing.T) {
	l := NewLoader(nil)
	l.Hide()
	if !l.Hidden() {
		t.Fatal("Hide did not hide")
	}
	l.Update(0.25)
	if a := l.Alpha(); a <= 0 || a >= 1 {
		t.Errorf("alpha mid-fade = %v, want (0, 1)", a)
	}
	l.Update(0.3)
	if l.Alpha() != 0 {
		t.Errorf("alpha after fade = %v, want 0", l.Alpha())
	}
}

func TestPageLoaderOverlay(t *testing.T) {
	p := newTestPage(t, nil)
	rec := &eventRecorder{}
	p.SetEventSink(rec)

	s := newRecordSurface(1280, 720)
	p.drawWidgets(s)
	if !s.hasText("0%") || !s.hasText("Test Folio") {
		t.Error("loader overlay should show the title and 0%")
	}
	if !p.ScrollLocked() {
		t.Error("page should be locked behind the loader")
	}

	runUntil(t, p, 300, p.Loader().Hidden)
	if rec.count(EventLoaderHidden) != 1 {
		t.Errorf("loader-hidden events = %d, want 1", rec.count(EventLoaderHidden))
	}
	if p.ScrollLocked() {
		t.Error("page still locked after the loader hid")
	}
	if !p.hero.entered {
		t.Error("hero entrance did not start")
	}
}
