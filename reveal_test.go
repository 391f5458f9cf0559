package folio

import "testing"

func TestRevealHiddenAtStart(t *testing.T) {
	p := readyPage(t)
	runFrames(t, p, 5)
	for i := range p.content.Sections {
		if p.Reveal().Revealed(i) {
			t.Errorf("section %d revealed without scrolling", i)
		}
		alpha, off := p.Reveal().State(i)
		if alpha != 0 || off != revealOffset {
			t.Errorf("section %d state = (%v, %v), want (0, %v)", i, alpha, off, revealOffset)
		}
	}
}

func TestRevealOnScroll(t *testing.T) {
	p := readyPage(t)
	rec := &eventRecorder{}
	p.SetEventSink(rec)

	// about's top reaches 540 on screen, above the 620px line.
	p.userScroll(100)
	if !p.Reveal().Revealed(0) {
		t.Fatal("about should reveal once its top passes viewport height - 100")
	}
	if p.Reveal().Revealed(1) {
		t.Error("skills revealed too early")
	}
	ev, ok := rec.last(EventSectionRevealed)
	if !ok || ev.Target != "about" {
		t.Errorf("reveal event = %+v, want target about", ev)
	}

	runFrames(t, p, 40)
	alpha, off := p.Reveal().State(0)
	assertNear(t, "alpha", alpha, 1)
	assertNear(t, "offset", off, 0)

	// Scrolling back does not hide it again, nor re-emit.
	p.userScroll(-100)
	runFrames(t, p, 2)
	if !p.Reveal().Revealed(0) || rec.count(EventSectionRevealed) != 1 {
		t.Error("reveal should happen once")
	}
}

func TestRevealStaggersObserverHits(t *testing.T) {
	p := readyPage(t)
	rec := &eventRecorder{}
	p.SetEventSink(rec)

	// A tall viewport puts about and skills in view in the same frame.
	p.resize(1280, 2000)
	runFrames(t, p, 1)
	if !p.Reveal().Revealed(0) || !p.Reveal().Revealed(1) || p.Reveal().Revealed(2) {
		t.Fatal("expected exactly about and skills to reveal")
	}
	a0, _ := p.Reveal().State(0)
	a1, _ := p.Reveal().State(1)
	if a0 <= 0 {
		t.Error("first section should start at once")
	}
	if a1 != 0 {
		t.Error("second section should wait for its stagger delay")
	}
	if rec.count(EventSectionRevealed) != 2 {
		t.Errorf("reveal events = %d, want 2", rec.count(EventSectionRevealed))
	}
}

func TestRevealStateOutOfRange(t *testing.T) {
	p := readyPage(t)
	alpha, off := p.Reveal().State(99)
	if alpha != 1 || off != 0 {
		t.Errorf("State(99) = (%v, %v), want (1, 0)", alpha, off)
	}
	if p.Reveal().Revealed(-1) {
		t.Error("Revealed(-1) should be false")
	}
}

func TestStaggerGroup(t *testing.T) {
	p := readyPage(t)
	if len(p.Staggers()) != 1 {
		t.Fatalf("stagger groups = %d, want 1", len(p.Staggers()))
	}
	g := p.Staggers()[0]

	runFrames(t, p, 1)
	if a, _ := g.Item(0); a != 0 {
		t.Fatal("tags animated before they were visible")
	}

	p.userScroll(1000)
	runFrames(t, p, 1)
	a0, _ := g.Item(0)
	a1, _ := g.Item(1)
	a2, off2 := g.Item(2)
	if a0 <= 0 {
		t.Error("first tag should start at once")
	}
	if a1 != 0 || a2 != 0 || off2 != staggerItemOffset {
		t.Error("later tags should wait for their delay")
	}

	runFrames(t, p, 60)
	for i := 0; i < 3; i++ {
		a, off := g.Item(i)
		assertNear(t, "tag alpha", a, 1)
		assertNear(t, "tag offset", off, 0)
	}
}

func TestStaggerLayoutWraps(t *testing.T) {
	p := readyPage(t)
	g := p.Staggers()[0]
	for i := 1; i < len(g.rects); i++ {
		if g.rects[i].Y != g.rects[0].Y {
			t.Fatal("three short tags should share one row")
		}
	}

	p.resize(240, 720)
	x0, w := p.column()
	for i, r := range g.rects {
		if r.X < x0 {
			t.Errorf("tag %d at %+v starts left of the column", i, r)
		}
		if r.X > x0 && r.X+r.Width > x0+w {
			t.Errorf("tag %d at %+v should have wrapped", i, r)
		}
	}
	if g.rects[len(g.rects)-1].Y == g.rects[0].Y {
		t.Error("tags should wrap in a narrow column")
	}
}
