package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordTool echoes its input, or fails when err is set
type recordTool struct {
	name string
	got  json.RawMessage
	err  error
}

func (t *recordTool) Name() string        { return t.name }
func (t *recordTool) Description() string { return "records " + t.name }
func (t *recordTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (t *recordTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	t.got = input
	if t.err != nil {
		return nil, t.err
	}
	return NewSuccessResult(input)
}

func TestRegistryCall(t *testing.T) {
	echo := &recordTool{name: "echo"}
	r := NewToolRegistry(echo)

	out, err := r.Call(context.Background(), "echo", json.RawMessage(`{"x":1}`))
	require.NoError(t, err)
	var result ToolResult
	require.NoError(t, json.Unmarshal(out, &result))
	assert.True(t, result.Success)
	assert.JSONEq(t, `{"x":1}`, string(result.Data))

	_, err = r.Call(context.Background(), "echo", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(echo.got))
}

func TestRegistryCallErrors(t *testing.T) {
	boom := errors.New("boom")
	r := NewToolRegistry(&recordTool{name: "broken", err: boom})

	_, err := r.Call(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrToolNotFound)
	assert.Contains(t, err.Error(), "missing")

	_, err = r.Call(context.Background(), "broken", nil)
	assert.ErrorIs(t, err, boom)
}

func TestRegistryReplacesByName(t *testing.T) {
	first := &recordTool{name: "echo"}
	second := &recordTool{name: "echo"}
	r := NewToolRegistry(first)
	r.Register(second, &recordTool{name: "alpha"})

	tool, ok := r.Get("echo")
	require.True(t, ok)
	assert.Same(t, second, tool)

	defs := r.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "alpha", defs[0].Name)
	assert.Equal(t, "records alpha", defs[0].Description)
}

func TestNewErrorResult(t *testing.T) {
	out, err := NewErrorResult("scoring failed: %v", errors.New("no skills"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"scoring failed: no skills"}`, string(out))
}
