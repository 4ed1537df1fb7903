package gemini

import (
	"testing"
	"unicode/utf8"

	"cloud.google.com/go/vertexai/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobmatch/backend/nlp"
)

func TestDecodeAnalysis(t *testing.T) {
	raw := "```json\n" + `{
  "entities": [{"text": "Google", "label": "org"}, {"text": "Austin", "label": " GPE "}],
  "noun_chunks": ["We", "a Bachelor's degree"]
}` + "\n```"

	analysis, err := decodeAnalysis(raw)
	require.NoError(t, err)

	assert.Equal(t, []nlp.Entity{
		{Text: "Google", Label: "ORG"},
		{Text: "Austin", Label: "GPE"},
	}, analysis.Entities)
	assert.Equal(t, []string{"We", "a Bachelor's degree"}, analysis.NounChunks)
}

func TestDecodeAnalysisEmpty(t *testing.T) {
	analysis, err := decodeAnalysis(`{}`)
	require.NoError(t, err)
	assert.NotNil(t, analysis.Entities)
	assert.NotNil(t, analysis.NounChunks)
	assert.Empty(t, analysis.Entities)
}

func TestDecodeAnalysisInvalid(t *testing.T) {
	_, err := decodeAnalysis("I could not find any entities.")
	assert.Error(t, err)
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"entities":`), genai.Text(`[]}`)}},
		}},
	}
	assert.Equal(t, `{"entities":[]}`, extractText(resp))
	assert.Equal(t, "", extractText(&genai.GenerateContentResponse{}))
}

func TestAnalysisPrompt(t *testing.T) {
	prompt := analysisPrompt("Python and SQL")
	assert.Contains(t, prompt, "JOB DESCRIPTION:\nPython and SQL")
	assert.Contains(t, prompt, `"noun_chunks"`)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want string
	}{
		{"short", "Python", 10, "Python"},
		{"exact", "Python", 6, "Python"},
		{"ascii cut", "Python", 3, "Pyt"},
		{"inside rune", "café", 4, "caf"},
		{"rune boundary", "café", 5, "café"},
		{"multi-byte only", "日本語", 4, "日"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.text, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
