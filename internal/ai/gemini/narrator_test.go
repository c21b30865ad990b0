package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/compass"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response   string
	err        error
	lastSystem string
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, prompt string) (string, error) {
	s.lastSystem = system
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func request() *ai.NarrationRequest {
	return &ai.NarrationRequest{
		UserName: "Alex",
		Match:    compass.Match{Company: compass.Companies()[0], Score: 10},
		Answers:  map[string]string{"interests": "technology"},
		Fallback: "fallback",
	}
}

func TestNarratorBuildsPrompt(t *testing.T) {
	stub := &stubGenerator{response: "You would thrive at TechForGood."}
	narrator := NewNarrator(stub, 0, zap.NewNop())

	text, err := narrator.Narrate(context.Background(), request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "You would thrive at TechForGood." {
		t.Fatalf("unexpected narration: %q", text)
	}

	for _, want := range []string{"Alex", `"name": "TechForGood Inc."`, `"interests": "technology"`} {
		if !strings.Contains(stub.lastPrompt, want) {
			t.Fatalf("prompt is missing %q: %s", want, stub.lastPrompt)
		}
	}

	if strings.Contains(stub.lastPrompt, "{{") {
		t.Fatalf("prompt has unresolved placeholders: %s", stub.lastPrompt)
	}

	if stub.lastSystem != systemInstruction {
		t.Fatalf("unexpected system instruction: %q", stub.lastSystem)
	}
}

func TestNarratorPropagatesErrors(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	narrator := NewNarrator(stub, 0, zap.NewNop())

	if _, err := narrator.Narrate(context.Background(), request()); err == nil {
		t.Fatalf("expected error")
	}

	if _, err := narrator.Narrate(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil request")
	}
}

func TestCleanNarration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "plain", input: "  Hello there.  ", expect: "Hello there."},
		{name: "code fence", input: "```text\nHello\nthere.\n```", expect: "Hello there."},
		{name: "quoted", input: `"Hello there."`, expect: "Hello there."},
		{name: "blank", input: "```\n```", expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := cleanNarration(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}

	long := cleanNarration(strings.Repeat("a", maxNarrationRunes+10))
	if !strings.HasSuffix(long, "...") || len([]rune(long)) != maxNarrationRunes+3 {
		t.Fatalf("unexpected truncation: %d runes", len([]rune(long)))
	}
}
