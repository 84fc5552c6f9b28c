package style

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	b, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "schema has no properties: %s", b)

	for _, name := range []string{"marker", "direction", "max_length", "width", "align", "fill"} {
		assert.Contains(t, props, name)
	}

	direction, ok := props["direction"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", direction["type"])
	assert.ElementsMatch(t, []any{"ltr", "rtl"}, direction["enum"])

	align, ok := props["align"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, align["enum"], "center")
}
