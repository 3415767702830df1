package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipdeck/snipdeck/pkg/models"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func testCommands() []models.Command {
	return []models.Command{
		{Label: "MIT header", Insert: "SPDX-License-Identifier: MIT", Description: "license identifier", Group: "Headers"},
		{Label: "Shebang", Insert: "#!/usr/bin/env bash", Description: "bash shebang"},
		{Label: "Table", Insert: "| a | b |", Description: "markdown table", Group: "Markdown"},
	}
}

func TestSearchByLabel(t *testing.T) {
	idx := newTestIndex(t)
	require.NoError(t, idx.Reindex(testCommands()))

	results, err := idx.Search("shebang", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Shebang", results[0].Label)
	assert.Equal(t, "#!/usr/bin/env bash", results[0].Insert)
}

func TestSearchByDescriptionAndPayload(t *testing.T) {
	idx := newTestIndex(t)
	require.NoError(t, idx.Reindex(testCommands()))

	results, err := idx.Search("license", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "MIT header", results[0].Label)
	assert.Equal(t, "Headers", results[0].Group)
}

func TestSearchNoResults(t *testing.T) {
	idx := newTestIndex(t)
	require.NoError(t, idx.Reindex(testCommands()))

	results, err := idx.Search("nonexistent", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestReindexReplacesSnapshot(t *testing.T) {
	idx := newTestIndex(t)
	require.NoError(t, idx.Reindex(testCommands()))

	require.NoError(t, idx.Reindex([]models.Command{
		{Label: "Only", Insert: "only()"},
	}))

	results, err := idx.Search("shebang", 0)
	require.NoError(t, err)
	assert.Empty(t, results, "old snapshot must be gone after reindex")

	results, err = idx.Search("only", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestSearchQuotedInput(t *testing.T) {
	idx := newTestIndex(t)
	require.NoError(t, idx.Reindex(testCommands()))

	// Characters with meaning to the FTS query parser must not error.
	_, err := idx.Search(`"half quoted AND (weird`, 0)
	assert.NoError(t, err)
}
