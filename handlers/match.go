package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobmatch/backend/agent"
	"github.com/jobmatch/backend/models"
)

// JobMatcher runs the job-matching pipeline
type JobMatcher interface {
	MatchJobs(ctx context.Context, req models.JobMatchingRequest) (*agent.MatchJobsOutput, error)
}

// MatchHandler handles job-matching requests
type MatchHandler struct {
	matcher JobMatcher
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matcher JobMatcher) *MatchHandler {
	return &MatchHandler{matcher: matcher}
}

// MatchJobs scrapes current listings and scores them against the caller's skills and education
// @Summary Match jobs
// @Description Search job listings by keywords and location, extract each description's requirements and score them against the given skills and education. Listings scoring 0 are dropped. GET reads query/form fields (skills comma separated or repeated); POST also accepts JSON.
// @Tags Jobs
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param location query string true "Job location" example(United States)
// @Param keywords query string true "Search keywords" example(python developer)
// @Param education query string true "Education, matched exactly" example(Bachelor's Degree)
// @Param skills query []string true "Skills" collectionFormat(multi)
// @Param start query int false "Result offset (1-500)" default(1)
// @Success 200 {object} models.JobMatchingResponse "Scored listings"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 502 {object} models.ErrorResponse "Job site unavailable"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /job-matching [get]
// @Router /job-matching [post]
func (h *MatchHandler) MatchJobs(c *gin.Context) {
	var req models.JobMatchingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	req.Skills = splitSkills(req.Skills)

	out, err := h.matcher.MatchJobs(c.Request.Context(), req)
	if err != nil {
		var validationErr *agent.ValidationError
		var upstreamErr *agent.UpstreamError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid request",
				Code:    http.StatusBadRequest,
				Details: validationErr.Error(),
			})
		case errors.As(err, &upstreamErr):
			log.Printf("[MatchHandler] Upstream failure: %v", err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "Failed to fetch job listings",
				Code:    http.StatusBadGateway,
				Details: upstreamErr.Error(),
			})
		default:
			log.Printf("[MatchHandler] Job matching failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Job matching failed",
				Code:  http.StatusInternalServerError,
			})
		}
		return
	}

	listings := out.Results
	if listings == nil {
		listings = []models.ScoredListing{}
	}
	c.JSON(http.StatusOK, models.JobMatchingResponse{JobListings: listings})
}

// splitSkills expands comma-separated entries
func splitSkills(raw []string) []string {
	skills := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, s := range strings.Split(entry, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	}
	return skills
}
