package compass

import (
	"reflect"
	"testing"
)

func answersFrom(values map[string]string) *Answers {
	a := NewAnswers()
	for k, v := range values {
		a.Set(k, v)
	}
	return a
}

func TestScoreRanksTechnologyProfile(t *testing.T) {
	t.Parallel()

	a := answersFrom(map[string]string{
		KeyChildhoodPassion: "coding",
		KeyInterests:        "technology and innovation",
		KeySkills:           "problem-solving",
		KeyProblems:         "climate change",
		KeyValues:           "impact",
	})

	matches := Score(a, Companies())
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	if matches[0].Company.Name != "TechForGood Inc." {
		t.Fatalf("expected TechForGood Inc. first, got %s", matches[0].Company.Name)
	}

	// 4 keywords * 2 + impact bonus.
	if matches[0].Score != 10 {
		t.Fatalf("expected score 10, got %d", matches[0].Score)
	}

	// EduTech, HealthFirst and Sustainable Ventures tie at 4; registry order wins.
	if matches[1].Company.Name != "EduTech Innovations" || matches[1].Score != 4 {
		t.Fatalf("unexpected second match: %s (%d)", matches[1].Company.Name, matches[1].Score)
	}

	for _, m := range matches {
		if m.Company.Name == "Creative Studios Co." {
			t.Fatalf("creative studio must not outrank technology companies")
		}
	}
}

func TestScoreBreakdown(t *testing.T) {
	t.Parallel()

	a := answersFrom(map[string]string{
		KeyInterests: "technology",
		KeyValues:    "impact",
	})

	matches := Score(a, Companies())
	if len(matches) == 0 {
		t.Fatalf("expected matches")
	}

	got := matches[0].Breakdown
	want := map[string]int{"keywords": 4, "impact_bonus": 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected breakdown: %v", got)
	}
}

func TestScoreNoOverlapIsEmpty(t *testing.T) {
	t.Parallel()

	a := answersFrom(map[string]string{
		KeyName:             "Sam",
		KeyChildhoodPassion: "football",
		KeyInterests:        "cooking",
		KeySkills:           "juggling",
		KeyProblems:         "traffic",
		KeyWorkStyle:        "I prefer working independently and autonomously",
		KeyValues:           "Work-life balance and flexibility",
	})

	if matches := Score(a, Companies()); len(matches) != 0 {
		t.Fatalf("expected no matches, got %+v", matches)
	}
}

func TestScoreBonuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		answers  map[string]string
		company  Company
		expected int
	}{
		{
			name:     "team bonus needs creative category",
			answers:  map[string]string{KeyWorkStyle: "I love working with teams and collaborating"},
			company:  Company{Name: "A", Category: "Creative Lab"},
			expected: 1,
		},
		{
			name:     "team bonus is case sensitive",
			answers:  map[string]string{KeyWorkStyle: "TEAM player"},
			company:  Company{Name: "A", Category: "Creative Lab"},
			expected: 0,
		},
		{
			name:     "registry creative studio has no creative category",
			answers:  map[string]string{KeyWorkStyle: "I love working with teams and collaborating"},
			company:  companies[1],
			expected: 0,
		},
		{
			name:     "impact bonus for social category",
			answers:  map[string]string{KeyValues: "impactful"},
			company:  Company{Name: "B", Category: "Social Good"},
			expected: 2,
		},
		{
			name:     "substring collision counts",
			answers:  map[string]string{KeyWorkStyle: "teamwork"},
			company:  Company{Name: "C", Category: "Creative"},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matches := Score(answersFrom(tt.answers), []Company{tt.company})
			got := 0
			if len(matches) == 1 {
				got = matches[0].Score
			}
			if got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestScoreIsDeterministicAndBounded(t *testing.T) {
	t.Parallel()

	a := answersFrom(map[string]string{
		KeyChildhoodPassion: "design and storytelling",
		KeyInterests:        "business strategy, education, healthcare",
		KeySkills:           "analysis, learning, helping people",
		KeyProblems:         "environment and sustainability",
		KeyValues:           "Making a positive impact on society",
	})

	first := Score(a, Companies())
	for i := 0; i < 10; i++ {
		if next := Score(a, Companies()); !reflect.DeepEqual(first, next) {
			t.Fatalf("scoring is not deterministic: %+v vs %+v", first, next)
		}
	}

	if len(first) > MaxMatches {
		t.Fatalf("expected at most %d matches, got %d", MaxMatches, len(first))
	}
	for _, m := range first {
		if m.Score <= 0 {
			t.Fatalf("match with non-positive score: %+v", m)
		}
	}
}
