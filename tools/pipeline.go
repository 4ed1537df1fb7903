package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jobmatch/backend/agent"
	"github.com/jobmatch/backend/matching"
	"github.com/jobmatch/backend/models"
	"github.com/jobmatch/backend/scraper"
)

// RequirementExtractor turns a description into a requirement set
type RequirementExtractor interface {
	Extract(ctx context.Context, description string) (models.RequirementSet, error)
}

// JobMatcher runs the whole job-matching pipeline
type JobMatcher interface {
	MatchJobs(ctx context.Context, req models.JobMatchingRequest) (*agent.MatchJobsOutput, error)
}

// NewPipelineRegistry registers one tool per pipeline stage plus the full pipeline
func NewPipelineRegistry(parser *scraper.Parser, extractor RequirementExtractor, scorer matching.Scorer, matcher JobMatcher) *ToolRegistry {
	return NewToolRegistry(
		NewParseListingsTool(parser),
		NewExtractRequirementsTool(extractor),
		NewScoreMatchTool(scorer),
		NewMatchJobsTool(matcher),
	)
}

// ParseListingsTool parses a search-results page into listing stubs
type ParseListingsTool struct {
	parser *scraper.Parser
}

// NewParseListingsTool creates a new listing parser tool
func NewParseListingsTool(parser *scraper.Parser) *ParseListingsTool {
	return &ParseListingsTool{parser: parser}
}

func (t *ParseListingsTool) Name() string {
	return "parse_listings"
}

func (t *ParseListingsTool) Description() string {
	return `Parse the HTML of a job search-results page into listing stubs.
Returns link, title, location, company and, when present, posted_at for every well-formed card, in page order.`
}

func (t *ParseListingsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"html": map[string]interface{}{
				"type":        "string",
				"description": "Raw HTML of the search-results page",
			},
		},
		"required": []string{"html"},
	}
}

func (t *ParseListingsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req models.ParseListingsRequest
	if err := decodeInput(input, &req); err != nil {
		return NewErrorResult("%v", err)
	}

	listings, err := t.parser.Parse(strings.NewReader(req.HTML))
	if err != nil {
		return NewErrorResult("parse failed: %v", err)
	}

	return NewSuccessResult(models.ParseListingsResponse{Listings: listings})
}

// ExtractRequirementsTool extracts requirements from a job description
type ExtractRequirementsTool struct {
	extractor RequirementExtractor
}

// NewExtractRequirementsTool creates a new requirement extraction tool
func NewExtractRequirementsTool(extractor RequirementExtractor) *ExtractRequirementsTool {
	return &ExtractRequirementsTool{extractor: extractor}
}

func (t *ExtractRequirementsTool) Name() string {
	return "extract_requirements"
}

func (t *ExtractRequirementsTool) Description() string {
	return `Extract the implied requirements of a job description.
Returns organization, product and person entities followed by every noun phrase, in text order, without deduplication.`
}

func (t *ExtractRequirementsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Job description text",
			},
		},
		"required": []string{"description"},
	}
}

func (t *ExtractRequirementsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req models.ExtractRequirementsRequest
	if err := decodeInput(input, &req); err != nil {
		return NewErrorResult("%v", err)
	}

	reqs, err := t.extractor.Extract(ctx, req.Description)
	if err != nil {
		return NewErrorResult("extraction failed: %v", err)
	}

	return NewSuccessResult(models.ExtractRequirementsResponse{Requirements: reqs})
}

// ScoreMatchTool scores criteria against a requirement set
type ScoreMatchTool struct {
	scorer matching.Scorer
}

// NewScoreMatchTool creates a new scoring tool
func NewScoreMatchTool(scorer matching.Scorer) *ScoreMatchTool {
	return &ScoreMatchTool{scorer: scorer}
}

func (t *ScoreMatchTool) Name() string {
	return "score_match"
}

func (t *ScoreMatchTool) Description() string {
	return `Score a candidate's skills and education against a requirement set.
skill_component is the share of skills found in the requirements (0-1); education_component is 1 when the education appears verbatim.
score is their sum (0-2).`
}

func (t *ScoreMatchTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"criteria": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"skills": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": "string"},
					},
					"education": map[string]interface{}{"type": "string"},
				},
				"required": []string{"skills", "education"},
			},
			"requirements": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Requirement set, e.g. from extract_requirements",
			},
		},
		"required": []string{"criteria", "requirements"},
	}
}

func (t *ScoreMatchTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req models.ScoreMatchRequest
	if err := decodeInput(input, &req); err != nil {
		return NewErrorResult("%v", err)
	}

	b, err := t.scorer.Score(req.Criteria, req.Requirements)
	if err != nil {
		return NewErrorResult("scoring failed: %v", err)
	}

	return NewSuccessResult(models.ScoreMatchResponse{
		Score:     b.Total,
		Skill:     b.Skill,
		Education: b.Education,
	})
}

// MatchJobsTool runs the full job-matching pipeline
type MatchJobsTool struct {
	matcher JobMatcher
}

// NewMatchJobsTool creates a new job-matching tool
func NewMatchJobsTool(matcher JobMatcher) *MatchJobsTool {
	return &MatchJobsTool{matcher: matcher}
}

func (t *MatchJobsTool) Name() string {
	return "match_jobs"
}

func (t *MatchJobsTool) Description() string {
	return `Search current job listings and score each one against the candidate's skills and education.
Listings with a score of 0 are dropped. Returns the scored listings and run statistics.`
}

func (t *MatchJobsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"keywords":  map[string]interface{}{"type": "string", "description": "Search keywords"},
			"location":  map[string]interface{}{"type": "string", "description": "Job location"},
			"education": map[string]interface{}{"type": "string", "description": "Education, matched exactly"},
			"skills": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
			"start": map[string]interface{}{"type": "integer", "description": "Result offset (1-500)"},
		},
		"required": []string{"keywords", "location", "education", "skills"},
	}
}

func (t *MatchJobsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req models.JobMatchingRequest
	if err := decodeInput(input, &req); err != nil {
		return NewErrorResult("%v", err)
	}

	out, err := t.matcher.MatchJobs(ctx, req)
	if err != nil {
		return NewErrorResult("job matching failed: %v", err)
	}

	return NewSuccessResult(out)
}
