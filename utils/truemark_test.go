package utils

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trueMarkIDPattern = regexp.MustCompile(`^TM-\d{13,}-[0-9A-F]{8}$`)

func TestTrueMarkGenerate(t *testing.T) {
	mark, err := NewTrueMarkGenerator().Generate()
	require.NoError(t, err)

	assert.Regexp(t, trueMarkIDPattern, mark.ID)
	assert.Regexp(t, `^0x[0-9a-f]{64}$`, mark.TxHash)

	var data struct {
		Pattern   []float64 `json:"pattern"`
		Checksum  string    `json:"checksum"`
		Version   string    `json:"version"`
		CreatedAt string    `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal([]byte(mark.Data), &data))

	assert.Len(t, data.Pattern, 100)
	for _, p := range data.Pattern {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.Less(t, p, 1.0)
	}
	assert.Len(t, data.Checksum, 32)
	assert.Equal(t, "1.0", data.Version)
	assert.NotEmpty(t, data.CreatedAt)
}

func TestTrueMarkGenerateUnique(t *testing.T) {
	gen := NewTrueMarkGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		mark, err := gen.Generate()
		require.NoError(t, err)
		assert.False(t, seen[mark.ID], "duplicate id %s", mark.ID)
		assert.False(t, seen[mark.TxHash], "duplicate tx hash %s", mark.TxHash)
		seen[mark.ID] = true
		seen[mark.TxHash] = true
	}
}
