package pkg

import (
	"strings"

	"github.com/google/uuid"
)

const shortIDLength = 12

// GenerateGameID returns a short random id that is easy to type into a URL.
func GenerateGameID() string {
	return shortID()
}

func GenerateChallengeID() string {
	return shortID()
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:shortIDLength]
}
