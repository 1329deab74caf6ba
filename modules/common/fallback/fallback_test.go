package fallback

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFallbackImageAlwaysProducesValidSVG(t *testing.T) {
	characters := []string{"princess", "knight", "dragon", "wizard", "cat", "mouse", "hero", "unknown-thing", ""}

	for _, character := range characters {
		for index := 0; index < 6; index++ {
			uri := GenerateFallbackImage("any prompt", index, character)

			require.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"),
				"character=%q index=%d", character, index)

			payload := strings.TrimPrefix(uri, "data:image/svg+xml;base64,")
			decoded, err := base64.StdEncoding.DecodeString(payload)
			require.NoError(t, err)

			svg := string(decoded)
			assert.Contains(t, svg, "<svg")
			assert.Contains(t, svg, "</svg>")
		}
	}
}

func TestGenerateFallbackImageIsDeterministic(t *testing.T) {
	a := GenerateFallbackImage("prompt", 2, "dragon")
	b := GenerateFallbackImage("prompt", 2, "dragon")
	assert.Equal(t, a, b)
}

func TestGenerateFallbackImageVariesByIndex(t *testing.T) {
	a := GenerateFallbackImage("prompt", 0, "cat")
	b := GenerateFallbackImage("prompt", 1, "cat")
	assert.NotEqual(t, a, b)
}

func TestIsFallbackImage(t *testing.T) {
	assert.True(t, IsFallbackImage(GenerateFallbackImage("p", 0, "cat")))
	assert.False(t, IsFallbackImage("data:image/png;base64,AAAA"))
	assert.False(t, IsFallbackImage(""))
}
