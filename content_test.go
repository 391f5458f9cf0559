package folio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadContentLayout(t *testing.T) {
	c := testContent(t)

	if c.HeroHeight() != defaultHeroHeight {
		t.Errorf("HeroHeight = %v, want %v", c.HeroHeight(), defaultHeroHeight)
	}
	if c.NavbarHeight != defaultNavbarHeight {
		t.Errorf("NavbarHeight = %v, want %v", c.NavbarHeight, defaultNavbarHeight)
	}
	wantTops := map[string]float64{
		"about":    640,
		"skills":   1240,
		"projects": 1940,
		"resume":   2640,
		"contact":  2940,
	}
	for id, want := range wantTops {
		sec, ok := c.Section(id)
		if !ok {
			t.Fatalf("section %q missing", id)
		}
		if sec.Top != want {
			t.Errorf("%s.Top = %v, want %v", id, sec.Top, want)
		}
	}
	if got := c.DocumentHeight(); got != 3860 {
		t.Errorf("DocumentHeight = %v, want 3860", got)
	}
	if _, ok := c.Section("nope"); ok {
		t.Error("unknown section found")
	}
	if c.Theme != DefaultTheme {
		t.Error("theme should default when omitted")
	}
}

func TestLoadContentDefaults(t *testing.T) {
	c, err := LoadContent([]byte(`{"sections": [{"id": "a"}, {"id": "b", "height": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Hero != nil || c.HeroHeight() != 0 {
		t.Error("hero should be absent")
	}
	if c.Sections[0].Top != 0 || c.Sections[0].Height != defaultSectionHeight {
		t.Errorf("section a = top %v height %v", c.Sections[0].Top, c.Sections[0].Height)
	}
	if c.Sections[1].Top != defaultSectionHeight {
		t.Errorf("section b top = %v, want %v", c.Sections[1].Top, defaultSectionHeight)
	}
	if got := c.DocumentHeight(); got != defaultSectionHeight+50+footerHeight {
		t.Errorf("DocumentHeight = %v", got)
	}
}

func TestLoadContentThemeAndPalette(t *testing.T) {
	c, err := LoadContent([]byte(`{
		"theme": {"primary": "#ff0000"},
		"palette": ["#00ff00", "#0000ff"],
		"sections": [{"id": "a"}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Theme.Primary != (Color{R: 1, A: 1}) {
		t.Errorf("Primary = %+v", c.Theme.Primary)
	}
	if c.Theme.Background != DefaultTheme.Background {
		t.Error("unset theme colors should keep their defaults")
	}
	if len(c.Palette) != 2 || c.Palette[1] != (Color{B: 1, A: 1}) {
		t.Errorf("Palette = %+v", c.Palette)
	}

	p := newTestPage(t, c)
	if p.Field().Config().Palette[0] != (Color{G: 1, A: 1}) {
		t.Error("content palette not passed to the backdrop")
	}
}

func TestLoadContentErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"bad json", `{`, "parse content"},
		{"no sections", `{"sections": []}`, "no sections"},
		{"missing id", `{"sections": [{"title": "x"}]}`, "has no id"},
		{"duplicate id", `{"sections": [{"id": "a"}, {"id": "a"}]}`, "duplicate section id"},
		{"bad theme", `{"theme": {"text": "nope"}, "sections": [{"id": "a"}]}`, "theme color"},
		{"bad palette", `{"palette": ["#12"], "sections": [{"id": "a"}]}`, "palette color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadContent([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	_, err := LoadContent([]byte(`{"sections": []}`))
	if !errors.Is(err, ErrNoSections) {
		t.Errorf("err = %v, want ErrNoSections", err)
	}
}

func TestLoadContentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, []byte(testContentJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadContentFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Title != "Test Folio" || len(c.Sections) != 5 {
		t.Errorf("loaded %q with %d sections", c.Title, len(c.Sections))
	}

	if _, err := LoadContentFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExampleContentLoads(t *testing.T) {
	c, err := LoadContentFile(filepath.Join("examples", "portfolio", "content.json"))
	if err != nil {
		t.Fatal(err)
	}
	p := newTestPage(t, c)
	if p.Form() == nil || p.Cards() == nil || p.Typewriter() == nil {
		t.Error("example content should build the form, cards and typewriter")
	}
}

func TestSectionBounds(t *testing.T) {
	s := Section{Top: 100, Height: 50}
	if got := s.Bounds(800); got != (Rect{Y: 100, Width: 800, Height: 50}) {
		t.Errorf("Bounds = %+v", got)
	}
}
