package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseEngine runs in-process NER and POS tagging with prose and derives
// noun phrases from the tag sequence.
type ProseEngine struct{}

// proseLabels maps the bundled model's labels onto the ones the extractor keeps.
// The model only knows GPE and PERSON; company, product and technology names
// all come back as GPE, so GPE is reported as ORG. PRODUCT is never produced.
var proseLabels = map[string]string{
	"GPE":    LabelOrganization,
	"PERSON": LabelPerson,
}

// NewProseEngine creates the local engine
func NewProseEngine() *ProseEngine {
	return &ProseEngine{}
}

func (e *ProseEngine) Name() string {
	return "prose"
}

// Analyze tags text and returns its entities and noun chunks
func (e *ProseEngine) Analyze(ctx context.Context, text string) (*Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("failed to tag document: %w", err)
	}

	analysis := &Analysis{
		Entities:   make([]Entity, 0),
		NounChunks: nounChunks(doc.Tokens()),
	}
	for _, ent := range doc.Entities() {
		analysis.Entities = append(analysis.Entities, Entity{Text: ent.Text, Label: proseLabel(ent.Label)})
	}
	return analysis, nil
}

func proseLabel(label string) string {
	if mapped, ok := proseLabels[label]; ok {
		return mapped
	}
	return label
}

// nounChunks groups maximal determiner/modifier/noun runs that end in a noun.
// Personal pronouns are chunks on their own.
func nounChunks(tokens []prose.Token) []string {
	chunks := make([]string, 0)
	var cur []prose.Token

	flush := func() {
		last := -1
		for i, tok := range cur {
			if isNoun(tok.Tag) {
				last = i
			}
		}
		if last >= 0 {
			chunks = append(chunks, joinTokens(cur[:last+1]))
		}
		cur = nil
	}
	endsInNoun := func() bool {
		return len(cur) > 0 && isNoun(cur[len(cur)-1].Tag)
	}

	for _, tok := range tokens {
		switch {
		case tok.Tag == "PRP":
			flush()
			chunks = append(chunks, tok.Text)
		case isDeterminer(tok.Tag):
			if hasNoun(cur) {
				flush()
			}
			cur = append(cur, tok)
		case isModifier(tok.Tag):
			if endsInNoun() {
				flush()
			}
			cur = append(cur, tok)
		case isNoun(tok.Tag):
			cur = append(cur, tok)
		case tok.Tag == "POS" && endsInNoun():
			cur = append(cur, tok)
		default:
			flush()
		}
	}
	flush()

	return chunks
}

func joinTokens(tokens []prose.Token) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 && !strings.HasPrefix(tok.Text, "'") {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func hasNoun(tokens []prose.Token) bool {
	for _, tok := range tokens {
		if isNoun(tok.Tag) {
			return true
		}
	}
	return false
}

func isNoun(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

func isDeterminer(tag string) bool {
	switch tag {
	case "DT", "PDT", "PRP$":
		return true
	}
	return false
}

func isModifier(tag string) bool {
	switch tag {
	case "JJ", "JJR", "JJS", "CD":
		return true
	}
	return false
}
