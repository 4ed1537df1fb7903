package models

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"skills is required"`
}

// MessageResponse represents a plain acknowledgement
// @Description Message response
type MessageResponse struct {
	Message string `json:"message" example:"User has successfully delete"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// ParseListingsRequest represents request to parse a search-results page
type ParseListingsRequest struct {
	HTML string `json:"html"`
}

// ParseListingsResponse represents the parsed listing stubs
type ParseListingsResponse struct {
	Listings []ListingStub `json:"listings"`
}

// ExtractRequirementsRequest represents request to extract requirements from a description
type ExtractRequirementsRequest struct {
	Description string `json:"description"`
}

// ExtractRequirementsResponse represents the extracted requirement set
type ExtractRequirementsResponse struct {
	Requirements RequirementSet `json:"requirements"`
}

// ScoreMatchRequest represents request to score criteria against requirements
type ScoreMatchRequest struct {
	Criteria     EmployeeCriteria `json:"criteria"`
	Requirements RequirementSet   `json:"requirements"`
}

// ScoreMatchResponse represents response from match scoring
type ScoreMatchResponse struct {
	Score     float64 `json:"score"`
	Skill     float64 `json:"skill_component"`
	Education float64 `json:"education_component"`
}
