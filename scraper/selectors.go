package scraper

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Selectors are the CSS selectors used against the search-results and detail pages.
// Title, Location, Company and PostedAt are resolved inside Info.
type Selectors struct {
	Card        string `yaml:"card"`
	Link        string `yaml:"link"`
	Info        string `yaml:"info"`
	Title       string `yaml:"title"`
	Location    string `yaml:"location"`
	Company     string `yaml:"company"`
	PostedAt    string `yaml:"posted_at"`
	Description string `yaml:"description"`
}

// DefaultSelectors match the guest job-search markup
func DefaultSelectors() Selectors {
	return Selectors{
		Card:        "div.base-card",
		Link:        "a.base-card__full-link",
		Info:        "div.base-search-card__info",
		Title:       "h3.base-search-card__title",
		Location:    "span.job-search-card__location",
		Company:     "h4.base-search-card__subtitle",
		PostedAt:    "time.job-search-card__listdate",
		Description: "div.show-more-less-html__markup",
	}
}

// LoadSelectors reads a YAML selectors file and overlays it on the defaults.
// An empty path returns the defaults.
func LoadSelectors(path string) (Selectors, error) {
	sel := DefaultSelectors()
	if path == "" {
		return sel, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return sel, fmt.Errorf("failed to read selectors file: %w", err)
	}

	var override Selectors
	if err := yaml.Unmarshal(b, &override); err != nil {
		return sel, fmt.Errorf("failed to parse selectors file %s: %w", path, err)
	}

	return sel.merge(override), nil
}

func (s Selectors) merge(o Selectors) Selectors {
	pick := func(cur, next string) string {
		if next != "" {
			return next
		}
		return cur
	}
	return Selectors{
		Card:        pick(s.Card, o.Card),
		Link:        pick(s.Link, o.Link),
		Info:        pick(s.Info, o.Info),
		Title:       pick(s.Title, o.Title),
		Location:    pick(s.Location, o.Location),
		Company:     pick(s.Company, o.Company),
		PostedAt:    pick(s.PostedAt, o.PostedAt),
		Description: pick(s.Description, o.Description),
	}
}
