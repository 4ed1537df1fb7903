package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"cloud.google.com/go/vertexai/genai"

	"github.com/jobmatch/backend/config"
	"github.com/jobmatch/backend/nlp"
)

// maxDescriptionLen bounds the text sent in one prompt
const maxDescriptionLen = 50000

// Client wraps the Vertex AI Gemini client as an NLP engine
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)

	// Extraction must be repeatable
	model.SetTemperature(0)
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)
	model.ResponseMIMEType = "application/json"

	return &Client{
		client:    client,
		model:     model,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) Name() string {
	return "vertex:" + c.modelName
}

// Analyze asks Gemini for the named entities and noun phrases of text
func (c *Client) Analyze(ctx context.Context, text string) (*nlp.Analysis, error) {
	text = truncate(text, maxDescriptionLen)

	resp, err := c.model.GenerateContent(ctx, genai.Text(analysisPrompt(text)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from Gemini")
	}

	analysis, err := decodeAnalysis(extractText(resp))
	if err != nil {
		return nil, err
	}

	log.Printf("[Gemini] Analyzed %d chars: entities=%d, noun_chunks=%d",
		len(text), len(analysis.Entities), len(analysis.NounChunks))

	return analysis, nil
}

// truncate cuts text to at most n bytes without splitting a rune
func truncate(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}

func analysisPrompt(text string) string {
	return fmt.Sprintf(`Run named-entity recognition and noun-phrase chunking over the job description below.

Return a JSON object with exactly these fields:

{
  "entities": [{"text": "Google", "label": "ORG"}],
  "noun_chunks": ["a Bachelor's degree", "Python"]
}

Rules:
- "entities" lists every named entity in order of appearance. Use OntoNotes labels
  (PERSON, NORP, FAC, ORG, GPE, LOC, PRODUCT, EVENT, WORK_OF_ART, LAW, LANGUAGE, DATE, TIME,
  PERCENT, MONEY, QUANTITY, ORDINAL, CARDINAL).
- "noun_chunks" lists every base noun phrase in order of appearance, including pronouns.
- Copy text spans exactly as they appear. Do not normalize case, deduplicate or paraphrase.

JOB DESCRIPTION:
%s

Return ONLY the JSON object.`, text)
}

// decodeAnalysis parses the model output into an Analysis with upper-case labels
func decodeAnalysis(text string) (*nlp.Analysis, error) {
	text = cleanJSON(text)

	var analysis nlp.Analysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		log.Printf("[Gemini] Failed to parse analysis response: %s", text)
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	for i := range analysis.Entities {
		analysis.Entities[i].Label = strings.ToUpper(strings.TrimSpace(analysis.Entities[i].Label))
	}
	if analysis.Entities == nil {
		analysis.Entities = []nlp.Entity{}
	}
	if analysis.NounChunks == nil {
		analysis.NounChunks = []string{}
	}

	return &analysis, nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}
