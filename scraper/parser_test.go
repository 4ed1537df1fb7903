package scraper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(link, title, location, company, posted string) string {
	var b strings.Builder
	b.WriteString(`<div class="base-card">`)
	if link != "" {
		fmt.Fprintf(&b, `<a class="base-card__full-link" href="%s"></a>`, link)
	}
	b.WriteString(`<div class="base-search-card__info">`)
	if title != "" {
		fmt.Fprintf(&b, `<h3 class="base-search-card__title">
			%s
		</h3>`, title)
	}
	if company != "" {
		fmt.Fprintf(&b, `<h4 class="base-search-card__subtitle"><a>%s</a></h4>`, company)
	}
	if location != "" {
		fmt.Fprintf(&b, `<span class="job-search-card__location">%s</span>`, location)
	}
	if posted != "" {
		fmt.Fprintf(&b, `<time class="job-search-card__listdate">%s</time>`, posted)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

func page(cards ...string) string {
	return "<html><body><ul>" + strings.Join(cards, "\n") + "</ul></body></html>"
}

func TestParserParse(t *testing.T) {
	html := page(
		card("https://jobs.example/1", "Backend Engineer", "Austin, TX", "Acme", "2 days ago"),
		card("https://jobs.example/2", "Data Analyst", "Remote", "Globex", ""),
		card("https://jobs.example/3", "SRE", "Berlin", "Initech", "1 week ago"),
	)

	listings, err := NewParser(DefaultSelectors()).Parse(strings.NewReader(html))
	require.NoError(t, err)
	require.Len(t, listings, 3)

	assert.Equal(t, "https://jobs.example/1", listings[0].Link)
	assert.Equal(t, "Backend Engineer", listings[0].Title)
	assert.Equal(t, "Austin, TX", listings[0].Location)
	assert.Equal(t, "Acme", listings[0].Company)
	require.NotNil(t, listings[0].PostedAt)
	assert.Equal(t, "2 days ago", *listings[0].PostedAt)

	assert.Nil(t, listings[1].PostedAt)
	assert.Equal(t, "Data Analyst", listings[1].Title)
	assert.Equal(t, "SRE", listings[2].Title)
}

func TestParserKeepsDocumentOrder(t *testing.T) {
	var cards []string
	for i := 0; i < 25; i++ {
		cards = append(cards, card(fmt.Sprintf("https://jobs.example/%d", i), fmt.Sprintf("Job %d", i), "Remote", "Acme", ""))
	}

	listings, err := NewParser(DefaultSelectors()).Parse(strings.NewReader(page(cards...)))
	require.NoError(t, err)
	require.Len(t, listings, 25)
	for i, l := range listings {
		assert.Equal(t, fmt.Sprintf("Job %d", i), l.Title)
	}
}

func TestParserSkipsMalformedCards(t *testing.T) {
	tests := []struct {
		name string
		bad  string
	}{
		{"missing link", card("", "T", "L", "C", "")},
		{"missing title", card("https://jobs.example/x", "", "L", "C", "")},
		{"missing location", card("https://jobs.example/x", "T", "", "C", "")},
		{"missing company", card("https://jobs.example/x", "T", "L", "", "")},
		{"missing info block", `<div class="base-card"><a class="base-card__full-link" href="https://jobs.example/x"></a></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := page(
				card("https://jobs.example/1", "First", "Remote", "Acme", ""),
				tt.bad,
				card("https://jobs.example/2", "Second", "Remote", "Acme", ""),
			)
			listings, err := NewParser(DefaultSelectors()).Parse(strings.NewReader(html))
			require.NoError(t, err)
			require.Len(t, listings, 2)
			assert.Equal(t, "First", listings[0].Title)
			assert.Equal(t, "Second", listings[1].Title)
		})
	}
}

func TestParserEmptyPage(t *testing.T) {
	listings, err := NewParser(DefaultSelectors()).Parse(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, listings)
	assert.NotNil(t, listings)
}

func TestParserCustomSelectors(t *testing.T) {
	sel := DefaultSelectors()
	sel.Card = "li.job"

	html := `<ul><li class="job">` +
		`<a class="base-card__full-link" href="https://jobs.example/9"></a>` +
		`<div class="base-search-card__info"><h3 class="base-search-card__title">Go Dev</h3>` +
		`<h4 class="base-search-card__subtitle">Acme</h4><span class="job-search-card__location">Remote</span></div>` +
		`</li></ul>`

	listings, err := NewParser(sel).Parse(strings.NewReader(html))
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Go Dev", listings[0].Title)
}
