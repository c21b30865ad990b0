package ai

import (
	"context"

	"github.com/spigell/career-compass/internal/compass"
)

// NarrationRequest carries what a narrator may use to explain a match.
type NarrationRequest struct {
	UserName string
	Match    compass.Match
	Answers  map[string]string
	// Fallback is the templated sentence shown when narration is unavailable.
	Fallback string
}

// Narrator writes the short personal note shown on a result card.
type Narrator interface {
	Narrate(ctx context.Context, req *NarrationRequest) (string, error)
}
