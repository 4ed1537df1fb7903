// Package matching scores a candidate's declared criteria against the
// requirements extracted from a job description.
package matching

import (
	"errors"
	"strings"

	"github.com/jobmatch/backend/models"
)

// ErrNoSkills is returned when the criteria carry no usable skill
var ErrNoSkills = errors.New("at least one skill is required")

// MaxScore is the highest score a listing can reach
const MaxScore = 2.0

// Breakdown is a score with its two components
type Breakdown struct {
	Skill     float64 `json:"skill_component"`
	Education float64 `json:"education_component"`
	Total     float64 `json:"score"`
}

// Scorer computes match scores
type Scorer interface {
	Score(criteria models.EmployeeCriteria, requirements models.RequirementSet) (Breakdown, error)
}

// SetOverlapScorer scores by exact, case-sensitive set overlap
type SetOverlapScorer struct{}

// NewScorer returns the default scorer
func NewScorer() *SetOverlapScorer {
	return &SetOverlapScorer{}
}

func (s *SetOverlapScorer) Score(criteria models.EmployeeCriteria, requirements models.RequirementSet) (Breakdown, error) {
	skill, err := SkillComponent(criteria.Skills, requirements)
	if err != nil {
		return Breakdown{}, err
	}
	education := EducationComponent(criteria.Education, requirements)

	return Breakdown{
		Skill:     skill,
		Education: education,
		Total:     skill + education,
	}, nil
}

// Score returns skill + education for criteria against requirements, in [0, MaxScore]
func Score(criteria models.EmployeeCriteria, requirements models.RequirementSet) (float64, error) {
	b, err := NewScorer().Score(criteria, requirements)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// SkillComponent returns the fraction of distinct skills that appear literally
// in requirements. Skills are trimmed and blanks ignored.
func SkillComponent(skills []string, requirements models.RequirementSet) (float64, error) {
	set := NormalizeSkills(skills)
	if len(set) == 0 {
		return 0, ErrNoSkills
	}

	reqs := make(map[string]struct{}, len(requirements))
	for _, r := range requirements {
		reqs[r] = struct{}{}
	}

	matched := 0
	for _, s := range set {
		if _, ok := reqs[s]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(set)), nil
}

// EducationComponent is 1 when education is an exact member of requirements, else 0
func EducationComponent(education string, requirements models.RequirementSet) float64 {
	if requirements.Contains(education) {
		return 1.0
	}
	return 0.0
}

// NormalizeSkills trims skills, drops blanks and removes duplicates keeping first occurrence
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
