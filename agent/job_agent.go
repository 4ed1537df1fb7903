package agent

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/jobmatch/backend/config"
	"github.com/jobmatch/backend/matching"
	"github.com/jobmatch/backend/models"
	"github.com/jobmatch/backend/scraper"
)

const (
	defaultStart = 1
	maxStart     = 500
)

// RequirementExtractor turns a description into a requirement set
type RequirementExtractor interface {
	Extract(ctx context.Context, description string) (models.RequirementSet, error)
}

// JobAgent runs the job-matching pipeline: search page, listings, details,
// extraction, scoring, filtering and ordering.
type JobAgent struct {
	search    *scraper.SearchClient
	parser    *scraper.Parser
	fetcher   *scraper.DetailFetcher
	extractor RequirementExtractor
	scorer    matching.Scorer
	order     string
}

// NewJobAgent creates a job-matching agent. client is shared by every outbound request.
func NewJobAgent(cfg *config.Config, client *http.Client, sel scraper.Selectors, extractor RequirementExtractor) *JobAgent {
	order := cfg.ResultOrder
	if order == "" {
		order = config.OrderAscending
	}

	return &JobAgent{
		search:    scraper.NewSearchClient(client, cfg.SearchBaseURL),
		parser:    scraper.NewParser(sel),
		fetcher:   scraper.NewDetailFetcher(client, sel, scraper.FetchPolicy(cfg.DetailFetchPolicy), cfg.DetailMaxConcurrent),
		extractor: extractor,
		scorer:    matching.NewScorer(),
		order:     order,
	}
}

// Parser returns the listing parser used by the agent
func (a *JobAgent) Parser() *scraper.Parser {
	return a.parser
}

// MatchJobsOutput represents the output of one job-matching run
type MatchJobsOutput struct {
	Results []models.ScoredListing `json:"results"`
	Stats   MatchStats             `json:"stats"`
}

// MatchStats provides statistics about one run
type MatchStats struct {
	ListingsParsed      int `json:"listings_parsed"`
	DetailsFetched      int `json:"details_fetched"`
	MissingDescriptions int `json:"missing_descriptions"`
	ExtractErrors       int `json:"extract_errors"`
	ListingsScored      int `json:"listings_scored"`
	ListingsReturned    int `json:"listings_returned"`
}

// MatchJobs performs the complete job-matching flow. A failed search or detail
// fetch aborts the run with an *UpstreamError; malformed input gives a *ValidationError.
func (a *JobAgent) MatchJobs(ctx context.Context, req models.JobMatchingRequest) (*MatchJobsOutput, error) {
	req, err := validate(req)
	if err != nil {
		return nil, err
	}
	criteria := req.Criteria()

	log.Printf("[Agent] Starting job matching with keywords=%q, location=%q, start=%d, skills=%v",
		req.Keywords, req.Location, req.Start, criteria.Skills)

	// Step 1: Fetch the search-results page
	pageURL := a.search.SearchURL(req.Keywords, req.Location, req.Start)
	body, err := a.search.FetchSearchPage(ctx, pageURL)
	if err != nil {
		return nil, upstreamFailure(ctx, pageURL, err)
	}

	// Step 2: Parse listing cards
	stubs, err := a.parser.Parse(body)
	if err != nil {
		return nil, &UpstreamError{URL: pageURL, Err: err}
	}
	stats := MatchStats{ListingsParsed: len(stubs)}
	log.Printf("[Agent] Parsed %d listings", len(stubs))

	// Step 3: Fetch detail pages concurrently
	details, err := a.fetcher.FetchDetails(ctx, stubs)
	if err != nil {
		var fetchErr *scraper.FetchError
		if errors.As(err, &fetchErr) {
			return nil, upstreamFailure(ctx, fetchErr.URL, err)
		}
		return nil, upstreamFailure(ctx, "", err)
	}
	stats.DetailsFetched = len(details)

	// Step 4: Extract and score each listing
	results := make([]models.ScoredListing, 0, len(details))
	for _, d := range details {
		if !d.HasDescription() {
			stats.MissingDescriptions++
			continue
		}

		reqs, err := a.extractor.Extract(ctx, *d.Description)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			log.Printf("[Agent] Failed to extract requirements from %s: %v", d.Link, err)
			stats.ExtractErrors++
			continue
		}

		b, err := a.scorer.Score(criteria, reqs)
		if err != nil {
			return nil, &ValidationError{Field: "skills", Message: err.Error()}
		}
		stats.ListingsScored++

		// Step 5: Keep positive scores only
		if b.Total <= 0 {
			continue
		}
		results = append(results, models.ScoredListing{
			Title:       d.Title,
			Company:     d.Company,
			Score:       b.Total,
			Description: *d.Description,
		})
	}

	// Step 6: Order by score
	if a.order == config.OrderDescending {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score < results[j].Score
		})
	}
	stats.ListingsReturned = len(results)

	log.Printf("[Agent] Returning %d listings (parsed=%d, missing=%d, extract_errors=%d, scored=%d)",
		stats.ListingsReturned, stats.ListingsParsed, stats.MissingDescriptions, stats.ExtractErrors, stats.ListingsScored)

	return &MatchJobsOutput{
		Results: results,
		Stats:   stats,
	}, nil
}

// upstreamFailure wraps a fetch error, unless the caller's context ended first
func upstreamFailure(ctx context.Context, url string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return &UpstreamError{URL: url, Err: err}
}

// validate trims the request and checks every required field
func validate(req models.JobMatchingRequest) (models.JobMatchingRequest, error) {
	req.Location = strings.TrimSpace(req.Location)
	req.Keywords = strings.TrimSpace(req.Keywords)
	req.Education = strings.TrimSpace(req.Education)
	req.Skills = matching.NormalizeSkills(req.Skills)

	switch {
	case req.Location == "":
		return req, &ValidationError{Field: "location", Message: "location is required"}
	case req.Keywords == "":
		return req, &ValidationError{Field: "keywords", Message: "keywords is required"}
	case req.Education == "":
		return req, &ValidationError{Field: "education", Message: "education is required"}
	case len(req.Skills) == 0:
		return req, &ValidationError{Field: "skills", Message: matching.ErrNoSkills.Error()}
	}

	if req.Start == 0 {
		req.Start = defaultStart
	}
	if req.Start < 1 || req.Start > maxStart {
		return req, &ValidationError{Field: "start", Message: "start must be between 1 and 500"}
	}

	return req, nil
}
