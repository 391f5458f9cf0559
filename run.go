package folio

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// FixedSize disables window resizing. The backdrop still follows the
	// initial size.
	FixedSize bool
	Debug     bool
}

// Run opens a window and runs page until the window is closed. A normal
// shutdown returns nil.
func Run(page *Page, cfg RunConfig) error {
	return RunContext(context.Background(), page, cfg)
}

// RunContext is Run with cancellation: when ctx is done the page closes at
// the start of the next frame and the loop returns nil.
func RunContext(ctx context.Context, page *Page, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	title := cfg.Title
	if title == "" {
		title = page.content.Title
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if !cfg.FixedSize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	page.ShowFPS = page.ShowFPS || cfg.ShowFPS
	page.SetDebugMode(cfg.Debug)

	stop := context.AfterFunc(ctx, func() {
		page.cancelled.Store(true)
	})
	defer stop()

	err := ebiten.RunGame(page)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
