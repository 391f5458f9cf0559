package folio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCheckAsset(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "resume.pdf")
	if err := os.WriteFile(file, []byte("%PDF"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CheckAsset(file); err != nil {
		t.Errorf("CheckAsset(file) = %v", err)
	}
	err := CheckAsset(filepath.Join(dir, "missing.pdf"))
	if !errors.Is(err, ErrAssetMissing) {
		t.Errorf("missing file: err = %v, want ErrAssetMissing", err)
	}
	err = CheckAsset(dir)
	if err == nil || errors.Is(err, ErrAssetMissing) {
		t.Errorf("directory: err = %v, want a not-a-file error", err)
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	if err := os.WriteFile(src, []byte("resume body"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("old contents that are longer"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := copyFile(dst, src); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(dst)
	if string(got) != "resume body" {
		t.Errorf("dst = %q", got)
	}
	if err := copyFile(filepath.Join(dir, "no", "such", "dir"), src); err == nil {
		t.Error("expected error for unwritable destination")
	}
}

func TestCopyFileOntoItself(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "resume.pdf")
	if err := os.WriteFile(src, []byte("%PDF-1.4 resume"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, dst := range []string{src, filepath.Join(dir, ".", "resume.pdf")} {
		if err := copyFile(dst, src); err != nil {
			t.Fatalf("copyFile(%q) = %v", dst, err)
		}
		got, _ := os.ReadFile(src)
		if string(got) != "%PDF-1.4 resume" {
			t.Fatalf("source = %q after copying onto itself", got)
		}
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the source", len(entries))
	}
}

// resumePage builds a ready page whose resume points at a real file.
func resumePage(t *testing.T, saver Saver) (*Page, string) {
	t.Helper()
	src := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(src, []byte("%PDF-1.4 resume"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := testContent(t)
	sec, _ := c.Section("resume")
	sec.Resume = src
	p := newTestPage(t, c, WithSaver(saver))
	p.loader.Hide()
	return p, src
}

// waitResume updates the page until the save dialog answer is handled.
func waitResume(t *testing.T, p *Page) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for p.ResumeLink().Busy() {
		if time.Now().After(deadline) {
			t.Fatal("save dialog answer never arrived")
		}
		runFrames(t, p, 1)
		time.Sleep(time.Millisecond)
	}
}

func TestResumeMissingAsset(t *testing.T) {
	p := readyPage(t)
	rl := p.ResumeLink()
	if rl == nil || rl.Path() != "testdata/missing-resume.pdf" {
		t.Fatalf("resume link = %+v", rl)
	}
	rl.Download()
	if rl.Busy() {
		t.Error("missing asset should not open a dialog")
	}
	ts := p.Notifier().Toasts()
	if len(ts) != 1 || ts[0].Kind != NotifyError || ts[0].Message != "Resume is not available right now" {
		t.Errorf("toasts = %+v", ts)
	}
}

func TestResumeSave(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "saved.pdf")
	saver := &fakeSaver{path: dst, names: make(chan string, 4)}
	p, _ := resumePage(t, saver)
	rec := &eventRecorder{}
	p.SetEventSink(rec)
	rl := p.ResumeLink()

	rl.Download()
	rl.Download() // ignored while the dialog is open
	if !rl.Busy() {
		t.Fatal("download should wait for the dialog")
	}
	waitResume(t, p)

	if len(saver.names) != 1 {
		t.Errorf("dialogs opened = %d, want 1", len(saver.names))
	}
	if name := <-saver.names; name != "resume.pdf" {
		t.Errorf("suggested name = %q", name)
	}
	got, err := os.ReadFile(dst)
	if err != nil || string(got) != "%PDF-1.4 resume" {
		t.Errorf("saved file = %q, %v", got, err)
	}
	if rl.Saved() != dst {
		t.Errorf("Saved = %q", rl.Saved())
	}
	if ev, ok := rec.last(EventResumeSaved); !ok || ev.Target != dst {
		t.Errorf("saved event = %+v", ev)
	}
	ts := p.Notifier().Toasts()
	if len(ts) != 1 || ts[0].Kind != NotifySuccess {
		t.Errorf("toasts = %+v", ts)
	}
}

func TestResumeSaveOverAsset(t *testing.T) {
	saver := &fakeSaver{}
	p, src := resumePage(t, saver)
	saver.path = src
	p.ResumeLink().Download()
	waitResume(t, p)

	got, err := os.ReadFile(src)
	if err != nil || string(got) != "%PDF-1.4 resume" {
		t.Errorf("asset = %q, %v after saving over itself", got, err)
	}
	if p.ResumeLink().Saved() != src {
		t.Errorf("Saved = %q", p.ResumeLink().Saved())
	}
}

func TestResumeSaveCanceled(t *testing.T) {
	p, _ := resumePage(t, &fakeSaver{})
	p.ResumeLink().Download()
	waitResume(t, p)
	if p.ResumeLink().Saved() != "" || len(p.Notifier().Toasts()) != 0 {
		t.Error("a canceled dialog should do nothing")
	}
}

func TestResumeSaveErrors(t *testing.T) {
	tests := []struct {
		name  string
		saver *fakeSaver
	}{
		{"dialog error", &fakeSaver{err: errors.New("no display")}},
		{"copy error", &fakeSaver{path: filepath.Join(t.TempDir(), "missing", "out.pdf")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := resumePage(t, tt.saver)
			p.ResumeLink().Download()
			waitResume(t, p)
			ts := p.Notifier().Toasts()
			if len(ts) != 1 || ts[0].Kind != NotifyError || ts[0].Message != "Could not save the resume" {
				t.Errorf("toasts = %+v", ts)
			}
			if p.ResumeLink().Saved() != "" {
				t.Error("Saved set after a failure")
			}
		})
	}
}

func TestResumeClick(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "saved.pdf")
	p, _ := resumePage(t, &fakeSaver{path: dst})
	p.setScroll(2600)

	s := newRecordSurface(1280, 720)
	p.ResumeLink().draw(s)
	if !s.hasText("Download Resume") {
		t.Error("button label not drawn")
	}

	clickRect(t, p, p.toScreen(p.ResumeLink().Bounds()))
	waitResume(t, p)
	if p.ResumeLink().Saved() != dst {
		t.Error("click did not save the resume")
	}
}
