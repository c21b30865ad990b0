package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/utils"
	"go.uber.org/zap"
)

const (
	systemInstruction   = "You write short, sincere career encouragement in plain text."
	defaultMaxLogLength = 200
	maxNarrationRunes   = 600
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

// Narrator asks Gemini for a personal note about a match.
type Narrator struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewNarrator(generator contentGenerator, maxLogLength int, logger *zap.Logger) *Narrator {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Narrator{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (n *Narrator) Narrate(ctx context.Context, req *ai.NarrationRequest) (string, error) {
	if req == nil {
		return "", errors.New("narration request is required")
	}

	companyJSON, err := json.MarshalIndent(req.Match.Company, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal company payload: %w", err)
	}

	answersJSON, err := json.MarshalIndent(req.Answers, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal answers payload: %w", err)
	}

	prompt := buildPrompt(req.UserName, string(companyJSON), string(answersJSON))

	n.logger.Debug("gemini narration request",
		zap.String("company", req.Match.Company.Name),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, n.maxLogLen)),
	)

	raw, err := n.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return "", err
	}

	n.logger.Debug("gemini narration response",
		zap.String("company", req.Match.Company.Name),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, n.maxLogLen)),
	)

	text := cleanNarration(raw)
	if text == "" {
		return "", errors.New("gemini returned an empty narration")
	}
	return text, nil
}

func buildPrompt(name, companyJSON, answersJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Name: {{NAME}}\n\nCompany:\n{{COMPANY_JSON}}\n\nAnswers:\n{{ANSWERS_JSON}}"
	}
	if strings.TrimSpace(name) == "" {
		name = "the user"
	}
	prompt := strings.ReplaceAll(template, "{{NAME}}", name)
	prompt = strings.ReplaceAll(prompt, "{{COMPANY_JSON}}", companyJSON)
	prompt = strings.ReplaceAll(prompt, "{{ANSWERS_JSON}}", answersJSON)
	return prompt
}

// cleanNarration strips code fences and quotes, collapses whitespace and caps
// the length.
func cleanNarration(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```text")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(strings.TrimSpace(raw), "\"`")
	raw = strings.Join(strings.Fields(raw), " ")

	runes := []rune(raw)
	if len(runes) > maxNarrationRunes {
		raw = strings.TrimSpace(string(runes[:maxNarrationRunes])) + "..."
	}
	return raw
}
