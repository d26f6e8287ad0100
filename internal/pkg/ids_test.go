package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateGameID(t *testing.T) {
	seen := make(map[string]struct{})

	for range 1000 {
		id := GenerateGameID()

		assert.Len(t, id, shortIDLength)
		assert.NotContains(t, id, "-")

		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestGenerateChallengeID(t *testing.T) {
	assert.NotEqual(t, GenerateChallengeID(), GenerateChallengeID())
}
