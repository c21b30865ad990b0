// Package answers loads a completed questionnaire from a YAML or JSON file so
// it can be scored without an interactive session.
package answers

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/xeipuuv/gojsonschema"

	"github.com/spigell/career-compass/internal/compass"
)

//go:embed schema.json
var schema string

var ErrInvalid = errors.New("invalid answers document")

// Document mirrors the question registry keys. Choice answers hold either the
// option label or its zero-based position.
type Document struct {
	Name             string `mapstructure:"name"`
	ChildhoodPassion string `mapstructure:"childhood_passion"`
	Interests        string `mapstructure:"interests"`
	Skills           string `mapstructure:"skills"`
	WorkStyle        any    `mapstructure:"work_style"`
	Values           any    `mapstructure:"values"`
	Problems         string `mapstructure:"problems"`
	Education        string `mapstructure:"education"`
	Learning         any    `mapstructure:"learning"`
}

// Load reads, validates and decodes the answers file at path. The format is
// picked from the file extension.
func Load(path string) (*Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("answers file is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading answers file %q: %w", path, err)
	}

	return Decode(v.AllSettings())
}

// Decode validates raw against the answers schema and decodes it.
func Decode(raw map[string]any) (*Document, error) {
	if raw == nil {
		raw = map[string]any{}
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}

	return &doc, nil
}

// Answers converts the document into a session answer set, resolving choice
// positions against the given questions.
func (d *Document) Answers(questions []compass.Question) (*compass.Answers, error) {
	values := map[string]any{
		compass.KeyName:             d.Name,
		compass.KeyChildhoodPassion: d.ChildhoodPassion,
		compass.KeyInterests:        d.Interests,
		compass.KeySkills:           d.Skills,
		compass.KeyWorkStyle:        d.WorkStyle,
		compass.KeyValues:           d.Values,
		compass.KeyProblems:         d.Problems,
		compass.KeyEducation:        d.Education,
		compass.KeyLearning:         d.Learning,
	}

	a := compass.NewAnswers()
	for _, q := range questions {
		value, ok := values[q.Key]
		if !ok || value == nil {
			continue
		}

		switch q.Kind {
		case compass.KindText:
			if s, _ := value.(string); strings.TrimSpace(s) != "" {
				a.Set(q.Key, s)
			}
		case compass.KindChoice:
			label, idx, err := resolveChoice(q, value)
			if err != nil {
				return nil, err
			}
			if idx >= 0 {
				a.SetChoice(q.Key, label, idx)
			} else {
				a.Set(q.Key, label)
			}
		}
	}

	return a, nil
}

// resolveChoice maps a label or position to both. Labels outside the option
// list are kept with a position of -1.
func resolveChoice(q compass.Question, value any) (string, int, error) {
	switch v := value.(type) {
	case string:
		for i, opt := range q.Options {
			if opt == v {
				return opt, i, nil
			}
		}
		return v, -1, nil
	case int:
		return optionAt(q, v)
	case int64:
		return optionAt(q, int(v))
	case float64:
		return optionAt(q, int(v))
	default:
		return "", -1, fmt.Errorf("%w: %s has unsupported value %v", ErrInvalid, q.Key, value)
	}
}

func optionAt(q compass.Question, idx int) (string, int, error) {
	if idx < 0 || idx >= len(q.Options) {
		return "", -1, fmt.Errorf("%w: %s: %w: %d", ErrInvalid, q.Key, compass.ErrOptionOutOfRange, idx)
	}
	return q.Options[idx], idx, nil
}

func validate(raw map[string]any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}

	return nil
}
