package models

import "strings"

// ListingStub is the minimal record harvested from one search-result card
type ListingStub struct {
	Link     string  `json:"link"`
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Company  string  `json:"company"`
	PostedAt *string `json:"posted_at,omitempty"`
}

// ListingDetail is a ListingStub enriched with the text of its detail page.
// A nil Description means the page had no description block.
type ListingDetail struct {
	ListingStub
	Description *string `json:"description,omitempty"`
}

// HasDescription reports whether the detail carries usable description text
func (d ListingDetail) HasDescription() bool {
	return d.Description != nil && strings.TrimSpace(*d.Description) != ""
}

// EmployeeCriteria is what the caller declares about themselves for one request
type EmployeeCriteria struct {
	Skills    []string `json:"skills"`
	Education string   `json:"education"`
}

// RequirementSet is the flat list of entities and noun phrases extracted from a
// description. Order follows extraction; duplicates are kept.
type RequirementSet []string

// Contains reports whether s is a literal member of the set
func (r RequirementSet) Contains(s string) bool {
	for _, v := range r {
		if v == s {
			return true
		}
	}
	return false
}

// ScoredListing is a listing that survived scoring
// @Description Matched job listing with its score
type ScoredListing struct {
	Title       string  `json:"title" example:"Backend Engineer"`
	Company     string  `json:"company" example:"Acme"`
	Score       float64 `json:"score" example:"1.5"`
	Description string  `json:"description" example:"We are looking for a Python engineer..."`
}

// JobMatchingRequest represents the job-matching query
// @Description Job matching request
type JobMatchingRequest struct {
	Location  string   `json:"location" form:"location" binding:"required" example:"United States"`
	Keywords  string   `json:"keywords" form:"keywords" binding:"required" example:"python developer"`
	Education string   `json:"education" form:"education" binding:"required" example:"Bachelor's Degree"`
	Skills    []string `json:"skills" form:"skills" binding:"required" example:"Python,SQL"`
	Start     int      `json:"start" form:"start" binding:"omitempty,min=1,max=500" example:"1"`
}

// Criteria returns the employee criteria carried by the request
func (r JobMatchingRequest) Criteria() EmployeeCriteria {
	return EmployeeCriteria{
		Skills:    r.Skills,
		Education: r.Education,
	}
}

// JobMatchingResponse represents the job-matching result
// @Description Job matching result, ordered by score
type JobMatchingResponse struct {
	JobListings []ScoredListing `json:"job_listings"`
}
