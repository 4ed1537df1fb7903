package scraper

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobmatch/backend/models"
)

// Parser turns a search-results page into listing stubs. It does no I/O.
type Parser struct {
	sel Selectors
}

// NewParser creates a parser using the given selectors
func NewParser(sel Selectors) *Parser {
	return &Parser{sel: sel}
}

// Parse returns one stub per well-formed result card, in document order.
// Cards missing a required field are skipped rather than failing the page,
// since the upstream markup has no schema guarantee.
func (p *Parser) Parse(r io.Reader) ([]models.ListingStub, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search results html: %w", err)
	}

	listings := make([]models.ListingStub, 0)
	skipped := 0
	doc.Find(p.sel.Card).Each(func(i int, card *goquery.Selection) {
		stub, err := p.parseCard(card)
		if err != nil {
			skipped++
			log.Printf("[Scraper] Skipping card %d: %v", i, err)
			return
		}
		listings = append(listings, stub)
	})

	if skipped > 0 {
		log.Printf("[Scraper] Parsed %d cards, skipped %d malformed", len(listings), skipped)
	}
	return listings, nil
}

func (p *Parser) parseCard(card *goquery.Selection) (models.ListingStub, error) {
	var stub models.ListingStub

	link, ok := card.Find(p.sel.Link).First().Attr("href")
	if !ok || strings.TrimSpace(link) == "" {
		return stub, &MalformedCardError{Field: "link"}
	}

	info := card.Find(p.sel.Info).First()
	if info.Length() == 0 {
		return stub, &MalformedCardError{Field: "info"}
	}

	required := []struct {
		name string
		sel  string
		dst  *string
	}{
		{"title", p.sel.Title, &stub.Title},
		{"location", p.sel.Location, &stub.Location},
		{"company", p.sel.Company, &stub.Company},
	}
	for _, f := range required {
		node := info.Find(f.sel).First()
		if node.Length() == 0 {
			return stub, &MalformedCardError{Field: f.name}
		}
		*f.dst = cleanText(node.Text())
	}

	stub.Link = strings.TrimSpace(link)
	if t := info.Find(p.sel.PostedAt).First(); t.Length() > 0 {
		postedAt := cleanText(t.Text())
		stub.PostedAt = &postedAt
	}

	return stub, nil
}

// MalformedCardError reports a result card missing a required field
type MalformedCardError struct {
	Field string
}

func (e *MalformedCardError) Error() string {
	return "card is missing " + e.Field
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
