package folio

import (
	"github.com/tanema/gween/ease"
)

const (
	toastSlide     = 0.3
	toastLifetime  = 3.0
	toastTop       = 100.0
	toastRight     = 20.0
	toastHeight    = 48.0
	toastGap       = 10.0
	toastSlideDist = 100.0
	toastTextSize  = 14.0
)

var (
	successFrom = RGB255(0x10, 0xb9, 0x81)
	successTo   = RGB255(0x05, 0x96, 0x69)
	errorFrom   = RGB255(0xef, 0x44, 0x44)
	errorTo     = RGB255(0xdc, 0x26, 0x26)
)

// Toast is one notification on screen.
type Toast struct {
	Kind    NotificationKind
	Message string
	// Alpha and Offset are the slide animation state. Offset is the distance
	// to the right of the resting position.
	Alpha  float64
	Offset float64

	age     float64
	leaving bool
	tween   *TweenGroup
}

// Notifier shows toasts stacked from the top right corner. Each toast slides
// in over 0.3s, stays 3s, then slides out over 0.3s and is removed.
type Notifier struct {
	p      *Page
	toasts []*Toast
}

func newNotifier(p *Page) *Notifier {
	return &Notifier{p: p}
}

// Show queues a toast.
func (n *Notifier) Show(kind NotificationKind, msg string) {
	t := &Toast{Kind: kind, Message: msg, Offset: toastSlideDist}
	t.tween = NewTweenGroup(toastSlide, ease.OutQuad,
		TweenTarget{Field: &t.Alpha, To: 1},
		TweenTarget{Field: &t.Offset, To: 0},
	)
	n.toasts = append(n.toasts, t)
	n.p.emit(PageEvent{Type: EventNotification, Target: kind.String(), Message: msg})
}

// Toasts returns the toasts currently on screen, oldest first.
func (n *Notifier) Toasts() []*Toast {
	return n.toasts
}

func (n *Notifier) layout() {}

func (n *Notifier) update(dt float64) {
	live := n.toasts[:0]
	for _, t := range n.toasts {
		t.age += dt
		if !t.leaving && t.age >= toastLifetime-1e-9 {
			t.leaving = true
			t.tween = NewTweenGroup(toastSlide, ease.OutQuad,
				TweenTarget{Field: &t.Alpha, To: 0},
				TweenTarget{Field: &t.Offset, To: toastSlideDist},
			)
		}
		t.tween.Update(float32(dt))
		if t.leaving && t.age >= toastLifetime+toastSlide-1e-9 {
			continue
		}
		live = append(live, t)
	}
	for i := len(live); i < len(n.toasts); i++ {
		n.toasts[i] = nil
	}
	n.toasts = live
}

func (n *Notifier) draw(s Surface) {
	for i, t := range n.toasts {
		if t.Alpha <= 0 {
			continue
		}
		tw, _ := s.MeasureText(t.Message, toastTextSize, false)
		w := tw + 80
		r := Rect{
			X:      n.p.width - toastRight - w + t.Offset,
			Y:      toastTop + float64(i)*(toastHeight+toastGap),
			Width:  w,
			Height: toastHeight,
		}
		from, to := successFrom, successTo
		if t.Kind == NotifyError {
			from, to = errorFrom, errorTo
		}
		// Diagonal gradient approximated with vertical bands.
		const bands = 8
		bw := r.Width / bands
		for b := 0; b < bands; b++ {
			c := from.Blend(to, (float64(b)+0.5)/bands)
			s.FillRect(Rect{X: r.X + float64(b)*bw, Y: r.Y, Width: bw + 0.5, Height: r.Height}, c.WithAlpha(t.Alpha))
		}
		ix, iy := r.X+28, r.Y+r.Height/2
		white := ColorWhite.WithAlpha(t.Alpha)
		if t.Kind == NotifyError {
			s.StrokeLine(ix-5, iy-5, ix+5, iy+5, 2, white)
			s.StrokeLine(ix-5, iy+5, ix+5, iy-5, 2, white)
		} else {
			s.StrokeLine(ix-6, iy, ix-2, iy+5, 2, white)
			s.StrokeLine(ix-2, iy+5, ix+6, iy-5, 2, white)
		}
		s.Text(t.Message, r.X+50, r.Y+15, TextStyle{Size: toastTextSize, Color: white})
	}
}
