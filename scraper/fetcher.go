package scraper

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/jobmatch/backend/models"
)

const maxPageBytes = 5 * 1024 * 1024 // 5MB

// FetchPolicy decides what a single failed detail fetch does to its batch
type FetchPolicy string

const (
	// FailFast aborts the whole batch on the first transport failure
	FailFast FetchPolicy = "fail_fast"
	// BestEffort keeps the batch and leaves the failed listing without a description
	BestEffort FetchPolicy = "best_effort"
)

// FetchError is a network or protocol failure talking to the job site
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DetailFetcher retrieves listing detail pages concurrently
type DetailFetcher struct {
	client        *http.Client
	sel           Selectors
	policy        FetchPolicy
	maxConcurrent int
}

// NewDetailFetcher creates a detail fetcher. maxConcurrent <= 0 leaves the
// fan-out bounded only by the client's connection pool.
func NewDetailFetcher(client *http.Client, sel Selectors, policy FetchPolicy, maxConcurrent int) *DetailFetcher {
	if policy == "" {
		policy = FailFast
	}
	return &DetailFetcher{
		client:        client,
		sel:           sel,
		policy:        policy,
		maxConcurrent: maxConcurrent,
	}
}

// FetchDetails fetches every stub's detail page and returns the details in input order.
// Under FailFast any transport failure cancels the remaining fetches and no details are returned.
// Under either policy a canceled ctx fails the whole batch.
func (f *DetailFetcher) FetchDetails(ctx context.Context, stubs []models.ListingStub) ([]models.ListingDetail, error) {
	details := make([]models.ListingDetail, len(stubs))

	g, gctx := errgroup.WithContext(ctx)
	if f.maxConcurrent > 0 {
		g.SetLimit(f.maxConcurrent)
	}

	for i, stub := range stubs {
		g.Go(func() error {
			desc, err := f.fetchDescription(gctx, stub.Link)
			if err != nil {
				if f.policy == BestEffort {
					// the caller giving up is not a per-listing failure
					if ctxErr := ctx.Err(); ctxErr != nil {
						return ctxErr
					}
					log.Printf("[Scraper] Detail fetch failed, keeping listing without description: %v", err)
					details[i] = models.ListingDetail{ListingStub: stub}
					return nil
				}
				return err
			}
			details[i] = models.ListingDetail{ListingStub: stub, Description: desc}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

// fetchDescription returns nil when the page has no description block,
// including error pages served with a non-2xx status.
func (f *DetailFetcher) fetchDescription(ctx context.Context, link string) (*string, error) {
	resp, err := get(ctx, f.client, link)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[Scraper] Detail page %s returned status %d, no description", link, resp.StatusCode)
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, &FetchError{URL: link, Err: err}
	}

	block := doc.Find(f.sel.Description).First()
	if block.Length() == 0 {
		return nil, nil
	}
	desc := strings.TrimSpace(block.Text())
	return &desc, nil
}

func get(ctx context.Context, client *http.Client, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	return resp, nil
}
