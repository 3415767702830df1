package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cmds := Defaults()
	require.NotEmpty(t, cmds, "embedded bundle should parse")

	for _, c := range cmds {
		assert.True(t, c.Valid(), "bundled command %q must pass shape validation", c.Label)
	}
}

func TestParseCorruptJSON(t *testing.T) {
	assert.Empty(t, parse([]byte("{not json")), "corrupt bundle degrades to empty list")
}

func TestParseDropsInvalidRecords(t *testing.T) {
	data := []byte(`[
		{"label": "ok", "insert": "x"},
		{"label": "no payload"},
		{"insert": "no label"}
	]`)

	cmds := parse(data)
	require.Len(t, cmds, 1)
	assert.Equal(t, "ok", cmds[0].Label)
}
