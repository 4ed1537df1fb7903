package scraper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSelectorsDefaults(t *testing.T) {
	sel, err := LoadSelectors("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSelectors(), sel)
}

func TestLoadSelectorsOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selectors.yml")
	require.NoError(t, os.WriteFile(path, []byte("card: li.result\ndescription: div.job-body\n"), 0o644))

	sel, err := LoadSelectors(path)
	require.NoError(t, err)

	assert.Equal(t, "li.result", sel.Card)
	assert.Equal(t, "div.job-body", sel.Description)
	assert.Equal(t, DefaultSelectors().Title, sel.Title)
	assert.Equal(t, DefaultSelectors().Link, sel.Link)
}

func TestLoadSelectorsErrors(t *testing.T) {
	_, err := LoadSelectors(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("card: [unterminated"), 0o644))
	_, err = LoadSelectors(path)
	assert.Error(t, err)
}
