// Package nlp extracts implied job requirements from free-text descriptions.
package nlp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jobmatch/backend/models"
)

// ErrEmptyDescription is returned when there is no text to analyze
var ErrEmptyDescription = errors.New("description is empty")

// Entity labels kept as requirements
const (
	LabelOrganization = "ORG"
	LabelProduct      = "PRODUCT"
	LabelPerson       = "PERSON"
)

// Entity is a named entity found in a text
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Analysis is the raw output of one NLP pass, in the order the engine produced it
type Analysis struct {
	Entities   []Entity `json:"entities"`
	NounChunks []string `json:"noun_chunks"`
}

// Engine performs named-entity recognition and noun-phrase chunking
type Engine interface {
	Name() string
	Analyze(ctx context.Context, text string) (*Analysis, error)
}

// Extractor turns descriptions into requirement sets using an injected engine
type Extractor struct {
	engine Engine
}

// NewExtractor creates a requirement extractor backed by engine
func NewExtractor(engine Engine) *Extractor {
	return &Extractor{engine: engine}
}

// Extract returns the organization, product and person entities of description
// followed by all of its noun phrases. Nothing is deduplicated or normalized.
func (e *Extractor) Extract(ctx context.Context, description string) (models.RequirementSet, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	analysis, err := e.engine.Analyze(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("%s analysis failed: %w", e.engine.Name(), err)
	}

	requirements := make(models.RequirementSet, 0, len(analysis.Entities)+len(analysis.NounChunks))
	for _, ent := range analysis.Entities {
		switch ent.Label {
		case LabelOrganization, LabelProduct, LabelPerson:
			requirements = append(requirements, ent.Text)
		}
	}
	requirements = append(requirements, analysis.NounChunks...)

	return requirements, nil
}
