package compass

import (
	"sort"
	"strings"
)

// MaxMatches is the number of recommendations kept after ranking.
const MaxMatches = 2

// Match pairs a company with its score. Breakdown holds the points each rule
// contributed, keyed by rule name.
type Match struct {
	Company   Company        `json:"company"`
	Score     int            `json:"score"`
	Breakdown map[string]int `json:"breakdown,omitempty"`
}

// Profile is the scoring view of an answer set.
type Profile struct {
	// Text is the lowercase concatenation of the free-form answers.
	Text      string
	WorkStyle string
	Values    string
}

// Rule contributes points for one company given a profile.
type Rule interface {
	Name() string
	Score(p Profile, c Company) int
}

type keywordRule struct{}

func (keywordRule) Name() string { return "keywords" }

func (keywordRule) Score(p Profile, c Company) int {
	score := 0
	for _, kw := range c.Keywords {
		if strings.Contains(p.Text, kw) {
			score += 2
		}
	}
	return score
}

type teamworkRule struct{}

func (teamworkRule) Name() string { return "teamwork_bonus" }

func (teamworkRule) Score(p Profile, c Company) int {
	if strings.Contains(p.WorkStyle, "team") && strings.Contains(c.Category, "Creative") {
		return 1
	}
	return 0
}

type impactRule struct{}

func (impactRule) Name() string { return "impact_bonus" }

func (impactRule) Score(p Profile, c Company) int {
	if strings.Contains(p.Values, "impact") && strings.Contains(c.Category, "Social") {
		return 2
	}
	return 0
}

// DefaultRules returns the scoring rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{keywordRule{}, teamworkRule{}, impactRule{}}
}

// NewProfile builds the scoring view of the answers. The bonus fields keep the
// raw answers: their checks are case-sensitive.
func NewProfile(a *Answers) Profile {
	parts := []string{
		a.Get(KeyChildhoodPassion),
		a.Get(KeyInterests),
		a.Get(KeySkills),
		a.Get(KeyProblems),
		a.Get(KeyValues),
	}
	return Profile{
		Text:      strings.ToLower(strings.Join(parts, " ")),
		WorkStyle: a.Get(KeyWorkStyle),
		Values:    a.Get(KeyValues),
	}
}

// Score ranks the companies against the answers with the default rules.
func Score(a *Answers, list []Company) []Match {
	return ScoreWith(DefaultRules(), a, list)
}

// ScoreWith ranks the companies with the given rules. Companies scoring zero
// are dropped, the rest are sorted by descending score with ties kept in
// registry order, and at most MaxMatches are returned.
func ScoreWith(rules []Rule, a *Answers, list []Company) []Match {
	profile := NewProfile(a)

	matches := make([]Match, 0, len(list))
	for _, c := range list {
		m := Match{Company: c, Breakdown: make(map[string]int, len(rules))}
		for _, r := range rules {
			pts := r.Score(profile, c)
			if pts == 0 {
				continue
			}
			m.Breakdown[r.Name()] += pts
			m.Score += pts
		}
		if m.Score > 0 {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}
	return matches
}
