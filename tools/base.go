// Package tools exposes the job-matching pipeline stages as callable tools.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"
)

// ErrToolNotFound is returned by Call for a name nothing is registered under
var ErrToolNotFound = errors.New("tool not found")

// Tool is one pipeline stage callable with JSON input
type Tool interface {
	Name() string
	Description() string
	// InputSchema is the JSON schema of the input Execute accepts
	InputSchema() map[string]interface{}
	// Execute returns a ToolResult envelope. Bad input is reported inside the
	// envelope; a returned error means the tool itself broke.
	Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
}

// Definition describes a tool to clients
type Definition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ToolRegistry holds the tools by name
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a registry holding tools
func NewToolRegistry(tools ...Tool) *ToolRegistry {
	r := &ToolRegistry{tools: make(map[string]Tool, len(tools))}
	r.Register(tools...)
	return r
}

// Register adds tools, replacing any already registered under the same name
func (r *ToolRegistry) Register(tools ...Tool) {
	for _, tool := range tools {
		r.tools[tool.Name()] = tool
	}
}

// Get retrieves a tool by name
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools ordered by name
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name() < tools[j].Name()
	})
	return tools
}

// Definitions describes every tool, ordered by name
func (r *ToolRegistry) Definitions() []Definition {
	tools := r.List()
	definitions := make([]Definition, 0, len(tools))
	for _, tool := range tools {
		definitions = append(definitions, Definition{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.InputSchema(),
		})
	}
	return definitions
}

// Call runs the named tool. Missing input is passed on as an empty object.
func (r *ToolRegistry) Call(ctx context.Context, name string, input json.RawMessage) (json.RawMessage, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	if len(input) == 0 {
		input = json.RawMessage(`{}`)
	}

	start := time.Now()
	result, err := tool.Execute(ctx, input)
	if err != nil {
		log.Printf("[Tools] %s failed after %s: %v", name, time.Since(start), err)
		return nil, err
	}

	log.Printf("[Tools] %s completed in %s", name, time.Since(start))
	return result, nil
}

// ToolResult is the envelope every tool returns
type ToolResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// NewSuccessResult wraps data in a successful envelope
func NewSuccessResult(data interface{}) (json.RawMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool result: %w", err)
	}
	return json.Marshal(ToolResult{Success: true, Data: raw})
}

// NewErrorResult formats an unsuccessful envelope
func NewErrorResult(format string, args ...interface{}) (json.RawMessage, error) {
	return json.Marshal(ToolResult{Error: fmt.Sprintf(format, args...)})
}

// decodeInput unmarshals tool input into v
func decodeInput(input json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(input, v); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}
