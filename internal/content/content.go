// Package content holds the static copy of the landing page: hero text, the
// three feature cards and the learning path catalog. The data is compiled in
// from content.yaml and never mutated at runtime.
package content

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var seed []byte

// Level is the difficulty badge shown on a learning path card.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// AllLevels returns the levels in ascending difficulty.
func AllLevels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// IsValid reports whether l is one of the known levels.
func (l Level) IsValid() bool {
	for _, v := range AllLevels() {
		if l == v {
			return true
		}
	}
	return false
}

// Path is a learning path entry.
type Path struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image"`
	Level       Level  `yaml:"level"`
}

// Markdown formats the entry as a short markdown document.
func (p Path) Markdown() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", p.Title))
	sb.WriteString(fmt.Sprintf("**Level:** %s\n\n", p.Level))
	sb.WriteString(p.Description)
	sb.WriteString("\n")
	if p.ImageURL != "" {
		sb.WriteString(fmt.Sprintf("\n[cover image](%s)\n", p.ImageURL))
	}
	return sb.String()
}

// Feature is one of the "Why Choose" cards.
type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Hero is the above-the-fold block.
type Hero struct {
	Headline   string   `yaml:"headline"`
	Highlights []string `yaml:"highlights"`
	Tagline    string   `yaml:"tagline"`
	ImageURL   string   `yaml:"image"`
	Button     string   `yaml:"cta"`
}

// CallToAction is the closing section of the page.
type CallToAction struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
	Button  string `yaml:"button"`
}

// Catalog is the complete page copy.
type Catalog struct {
	Brand    string       `yaml:"brand"`
	Hero     Hero         `yaml:"hero"`
	Features []Feature    `yaml:"features"`
	Paths    []Path       `yaml:"paths"`
	CTA      CallToAction `yaml:"cta"`
}

// Lookup returns the path with the given title.
func (c *Catalog) Lookup(title string) (Path, bool) {
	for _, p := range c.Paths {
		if p.Title == title {
			return p, true
		}
	}
	return Path{}, false
}

// Has reports whether a path with the given title exists.
func (c *Catalog) Has(title string) bool {
	_, ok := c.Lookup(title)
	return ok
}

// Titles returns the path titles in page order.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.Paths))
	for i, p := range c.Paths {
		titles[i] = p.Title
	}
	return titles
}

// ByLevel returns the paths with the given level, in page order.
func (c *Catalog) ByLevel(level Level) []Path {
	var out []Path
	for _, p := range c.Paths {
		if p.Level == level {
			out = append(out, p)
		}
	}
	return out
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(seed)
})

// Default returns the compiled-in catalog. Callers must not modify it.
func Default() (*Catalog, error) {
	return loadDefault()
}
