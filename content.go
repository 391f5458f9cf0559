package folio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoSections is returned when a content document has no sections.
var ErrNoSections = errors.New("folio: content has no sections")

// Theme holds the page colors.
type Theme struct {
	Background Color
	Surface    Color
	Text       Color
	Muted      Color
	Primary    Color
	Accent     Color
}

// DefaultTheme is the dark theme used when a content document omits colors.
var DefaultTheme = Theme{
	Background: RGB255(10, 10, 18),
	Surface:    RGB255(21, 21, 42),
	Text:       RGB255(230, 230, 240),
	Muted:      RGB255(138, 138, 160),
	Primary:    RGB255(0, 212, 255),
	Accent:     RGB255(255, 0, 110),
}

// Hero is the landing section at the top of the page.
type Hero struct {
	Greeting string   `json:"greeting"`
	Name     string   `json:"name"`
	Roles    []string `json:"roles"`
	Tagline  string   `json:"tagline"`
	Height   float64  `json:"height"`
}

// Skill is one animated skill bar.
type Skill struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

// Card is a project card that tilts under the pointer.
type Card struct {
	Title string   `json:"title"`
	Text  string   `json:"text"`
	Tags  []string `json:"tags"`
	Tilt  bool     `json:"tilt"`
}

// Stat is an animated counter.
type Stat struct {
	Label  string `json:"label"`
	Target int    `json:"target"`
}

// Section is one block of the document. Every widget a section carries is
// optional; the page only builds widgets for what is present.
type Section struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Height float64  `json:"height"`
	Body   []string `json:"body"`
	// Items render as a staggered tag group.
	Items  []string `json:"items"`
	Skills []Skill  `json:"skills"`
	Cards  []Card   `json:"cards"`
	Stats  []Stat   `json:"stats"`
	// Resume is the path of a downloadable asset.
	Resume string `json:"resume"`
	Form   bool   `json:"form"`

	// Top is the document offset, set by layout.
	Top float64 `json:"-"`
}

// Bounds returns the section rectangle in document space for a page width.
func (s *Section) Bounds(width float64) Rect {
	return Rect{X: 0, Y: s.Top, Width: width, Height: s.Height}
}

// Content describes everything the page renders.
type Content struct {
	Title        string
	Theme        Theme
	Palette      []Color
	NavbarHeight float64
	Hero         *Hero
	Sections     []Section
	Footer       string
}

type jsonTheme struct {
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
}

type jsonContent struct {
	Title        string    `json:"title"`
	Theme        jsonTheme `json:"theme"`
	Palette      []string  `json:"palette"`
	NavbarHeight float64   `json:"navbarHeight"`
	Hero         *Hero     `json:"hero"`
	Sections     []Section `json:"sections"`
	Footer       string    `json:"footer"`
}

const (
	defaultNavbarHeight  = 70
	defaultSectionHeight = 600
	defaultHeroHeight    = 640
	footerHeight         = 120
)

// LoadContent parses a JSON content document, fills defaults and lays the
// sections out top to bottom.
func LoadContent(data []byte) (*Content, error) {
	var raw jsonContent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("folio: parse content: %w", err)
	}
	if len(raw.Sections) == 0 {
		return nil, ErrNoSections
	}

	c := &Content{
		Title:        raw.Title,
		Theme:        DefaultTheme,
		NavbarHeight: raw.NavbarHeight,
		Hero:         raw.Hero,
		Sections:     raw.Sections,
		Footer:       raw.Footer,
	}

	theme := []struct {
		hex string
		dst *Color
	}{
		{raw.Theme.Background, &c.Theme.Background},
		{raw.Theme.Surface, &c.Theme.Surface},
		{raw.Theme.Text, &c.Theme.Text},
		{raw.Theme.Muted, &c.Theme.Muted},
		{raw.Theme.Primary, &c.Theme.Primary},
		{raw.Theme.Accent, &c.Theme.Accent},
	}
	for _, t := range theme {
		if t.hex == "" {
			continue
		}
		col, err := ParseHex(t.hex)
		if err != nil {
			return nil, fmt.Errorf("folio: theme color %q: %w", t.hex, err)
		}
		*t.dst = col
	}

	for _, hex := range raw.Palette {
		col, err := ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("folio: palette color %q: %w", hex, err)
		}
		c.Palette = append(c.Palette, col)
	}

	seen := make(map[string]bool, len(c.Sections))
	for i := range c.Sections {
		s := &c.Sections[i]
		if s.ID == "" {
			return nil, fmt.Errorf("folio: section %d has no id", i)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("folio: duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
	}

	c.layout()
	return c, nil
}

// LoadContentFile reads and parses a content document from disk.
func LoadContentFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("folio: read content: %w", err)
	}
	return LoadContent(data)
}

// layout assigns section offsets. The hero, if any, starts at 0.
func (c *Content) layout() {
	if c.NavbarHeight <= 0 {
		c.NavbarHeight = defaultNavbarHeight
	}
	y := 0.0
	if c.Hero != nil {
		if c.Hero.Height <= 0 {
			c.Hero.Height = defaultHeroHeight
		}
		y = c.Hero.Height
	}
	for i := range c.Sections {
		s := &c.Sections[i]
		if s.Height <= 0 {
			s.Height = defaultSectionHeight
		}
		s.Top = y
		y += s.Height
	}
}

// HeroHeight returns the hero height, or zero without a hero.
func (c *Content) HeroHeight() float64 {
	if c.Hero == nil {
		return 0
	}
	return c.Hero.Height
}

// DocumentHeight is the full scrollable height including the footer.
func (c *Content) DocumentHeight() float64 {
	h := c.HeroHeight()
	for i := range c.Sections {
		h += c.Sections[i].Height
	}
	return h + footerHeight
}

// Section returns the section with the given id.
func (c *Content) Section(id string) (*Section, bool) {
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			return &c.Sections[i], true
		}
	}
	return nil, false
}
