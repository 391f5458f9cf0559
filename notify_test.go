package folio

import "testing"

func TestNotifierLifecycle(t *testing.T) {
	p := readyPage(t)
	rec := &eventRecorder{}
	p.SetEventSink(rec)
	n := p.Notifier()

	n.Show(NotifySuccess, "Saved")
	ts := n.Toasts()
	if len(ts) != 1 {
		t.Fatalf("toasts = %d, want 1", len(ts))
	}
	toast := ts[0]
	if toast.Alpha != 0 || toast.Offset != toastSlideDist {
		t.Errorf("new toast at alpha %v offset %v", toast.Alpha, toast.Offset)
	}
	ev, ok := rec.last(EventNotification)
	if !ok || ev.Target != "success" || ev.Message != "Saved" {
		t.Errorf("notification event = %+v", ev)
	}

	runFrames(t, p, 20)
	assertNear(t, "alpha after slide in", toast.Alpha, 1)
	assertNear(t, "offset after slide in", toast.Offset, 0)

	runFrames(t, p, 170)
	if len(n.Toasts()) != 1 {
		t.Fatal("toast removed before its lifetime")
	}
	if toast.Alpha >= 1 || toast.Offset <= 0 {
		t.Errorf("toast should be sliding out: alpha %v offset %v", toast.Alpha, toast.Offset)
	}

	runUntil(t, p, 20, func() bool { return len(n.Toasts()) == 0 })
}

func TestNotifierStacksAndExpiresInOrder(t *testing.T) {
	p := readyPage(t)
	n := p.Notifier()
	n.Show(NotifySuccess, "first")
	runFrames(t, p, 60)
	n.Show(NotifyError, "second")
	runFrames(t, p, 20)

	s := newRecordSurface(1280, 720)
	n.draw(s)
	var ys []float64
	for _, c := range s.calls {
		if c.op == opText {
			ys = append(ys, c.y)
		}
	}
	if len(ys) != 2 || ys[1] <= ys[0] {
		t.Errorf("toast text rows = %v, want two stacked downward", ys)
	}
	// Check mark for success, cross for error: two strokes each.
	if s.count(opLine) != 4 {
		t.Errorf("icon strokes = %d, want 4", s.count(opLine))
	}

	runUntil(t, p, 200, func() bool { return len(n.Toasts()) == 1 })
	if n.Toasts()[0].Message != "second" {
		t.Error("older toast should expire first")
	}
}

func TestNotifierDrawColors(t *testing.T) {
	p := readyPage(t)
	n := p.Notifier()
	n.Show(NotifyError, "Oops")
	runFrames(t, p, 20)

	s := newRecordSurface(1280, 720)
	n.draw(s)
	if s.count(opRect) != 8 {
		t.Fatalf("gradient bands = %d, want 8", s.count(opRect))
	}
	first := s.calls[0].color
	if first.R < first.G || first.R < first.B {
		t.Errorf("error toast should be red, got %+v", first)
	}
	if !s.hasText("Oops") {
		t.Error("message not drawn")
	}

	// Toasts sit at the right edge once slid in.
	var right float64
	for _, c := range s.calls {
		if c.op == opRect {
			right = max(right, c.x+c.x1)
		}
	}
	assertNearEps(t, "right edge", right, 1280-toastRight, 1)
}

func TestNotificationKindString(t *testing.T) {
	if NotifySuccess.String() != "success" || NotifyError.String() != "error" {
		t.Error("unexpected kind names")
	}
}
