package folio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ncruces/zenity"
)

// ErrAssetMissing is returned by CheckAsset when the file does not exist.
var ErrAssetMissing = errors.New("folio: asset not found")

// Saver asks the user where to save a file. It returns "" and a nil error
// when the user cancels.
type Saver interface {
	SaveAs(defaultName string) (string, error)
}

// zenitySaver shows the native save dialog.
type zenitySaver struct{}

func (zenitySaver) SaveAs(defaultName string) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Resume"),
		zenity.Filename(defaultName),
		zenity.ConfirmOverwrite(),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}

// CheckAsset reports whether path names a readable regular file.
func CheckAsset(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrAssetMissing, path)
		}
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("folio: asset %s is not a regular file", path)
	}
	return nil
}

// copyFile copies src to dst, replacing dst. The copy is written to a
// temporary file next to dst and renamed into place. Copying a file onto
// itself is a no-op.
func copyFile(dst, src string) (err error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			out.Close()
			os.Remove(out.Name())
		}
	}()
	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	if err = out.Chmod(srcInfo.Mode().Perm()); err != nil {
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}
	return os.Rename(out.Name(), dst)
}

type saveResult struct {
	path string
	err  error
}

// ResumeLink is the "Download Resume" button. Clicking it checks the asset,
// asks the Saver for a destination off the game loop, then copies the file
// when the answer arrives.
type ResumeLink struct {
	p       *Page
	section *Section
	path    string
	bounds  Rect // document space
	magnet  *Magnet
	pending chan saveResult
	saved   string
}

func newResumeLink(p *Page) *ResumeLink {
	for i := range p.content.Sections {
		sec := &p.content.Sections[i]
		if sec.Resume == "" {
			continue
		}
		rl := &ResumeLink{p: p, section: sec, path: sec.Resume}
		rl.magnet = newMagnet(p, func() Rect { return p.toScreen(rl.bounds) })
		p.OnClick(func(ctx PointerContext) {
			if !p.ScrollLocked() && rl.bounds.Contains(ctx.X, ctx.DocY) {
				rl.Download()
			}
		})
		return rl
	}
	return nil
}

// Path returns the asset path.
func (rl *ResumeLink) Path() string { return rl.path }

// Bounds returns the button in document space.
func (rl *ResumeLink) Bounds() Rect { return rl.bounds }

// Magnet returns the button's magnetic hover offset.
func (rl *ResumeLink) Magnet() *Magnet { return rl.magnet }

// Busy reports whether a save dialog is open.
func (rl *ResumeLink) Busy() bool { return rl.pending != nil }

// Saved returns the destination of the last successful save.
func (rl *ResumeLink) Saved() string { return rl.saved }

// Download starts the save flow. It does nothing while a dialog is open. A
// missing asset is logged and reported with an error toast.
func (rl *ResumeLink) Download() {
	if rl.pending != nil {
		return
	}
	if err := CheckAsset(rl.path); err != nil {
		rl.p.logf("resume asset unavailable: %v", err)
		rl.p.notifier.Show(NotifyError, "Resume is not available right now")
		return
	}
	rl.p.logf("resume download clicked")

	ch := make(chan saveResult, 1)
	rl.pending = ch
	saver := rl.p.saver
	name := filepath.Base(rl.path)
	go func() {
		path, err := saver.SaveAs(name)
		ch <- saveResult{path: path, err: err}
	}()
}

func (rl *ResumeLink) finish(res saveResult) {
	switch {
	case res.err != nil:
		rl.p.logf("resume save dialog: %v", res.err)
		rl.p.notifier.Show(NotifyError, "Could not save the resume")
	case res.path == "":
		// canceled
	default:
		if err := copyFile(res.path, rl.path); err != nil {
			rl.p.logf("resume copy: %v", err)
			rl.p.notifier.Show(NotifyError, "Could not save the resume")
			return
		}
		rl.saved = res.path
		rl.p.notifier.Show(NotifySuccess, "Resume saved")
		rl.p.emit(PageEvent{Type: EventResumeSaved, Target: res.path})
	}
}

func (rl *ResumeLink) layout() {
	x0, _ := rl.p.column()
	w, _ := rl.p.fonts.Measure("Download Resume", 15, true)
	top := rl.p.sections.claim(rl.section, 48)
	rl.bounds = Rect{X: x0, Y: top, Width: w + 48, Height: 48}
}

func (rl *ResumeLink) update(dt float64) {
	rl.magnet.update(dt)
	if rl.pending == nil {
		return
	}
	select {
	case res := <-rl.pending:
		rl.pending = nil
		rl.finish(res)
	default:
	}
}

func (rl *ResumeLink) draw(s Surface) {
	r := rl.p.toScreen(rl.bounds)
	if r.Y > rl.p.height || r.Y+r.Height < 0 {
		return
	}
	th := rl.p.content.Theme
	hover := false
	if x, y, ok := rl.p.Pointer(); ok {
		hover = r.Contains(x, y)
	}
	r = r.Offset(rl.magnet.Offset())
	s.StrokeRect(r, 2, th.Primary)
	if hover {
		s.FillRect(r, th.Primary.WithAlpha(0.15))
	}
	label := "Download Resume"
	if rl.pending != nil {
		label = "Saving..."
	}
	s.Text(label, r.X+r.Width/2, r.Y+15, TextStyle{Size: 15, Bold: true, Color: th.Primary, Align: TextAlignCenter})
}
