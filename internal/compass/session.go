package compass

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidState     = errors.New("invalid session state")
	ErrOptionOutOfRange = errors.New("option index out of range")
	ErrUnknownCompany   = errors.New("company is not among the matches")
)

type State int

const (
	StateAsking State = iota
	StateScoring
	StateResults
	StateConnect
)

func (s State) String() string {
	switch s {
	case StateAsking:
		return "asking"
	case StateScoring:
		return "scoring"
	case StateResults:
		return "results"
	case StateConnect:
		return "connect"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session walks one user through the question registry and holds everything
// collected along the way. It is not safe for concurrent use.
type Session struct {
	id        string
	questions []Question
	companies []Company
	rules     []Rule

	state    State
	index    int
	typing   bool
	name     string
	answers  *Answers
	messages []Message
	matches  []Match
	selected Company
}

type Option func(*Session)

// WithQuestions replaces the question registry. An empty registry yields a
// session with nothing to ask.
func WithQuestions(q []Question) Option {
	return func(s *Session) { s.questions = q }
}

func WithCompanies(c []Company) Option {
	return func(s *Session) { s.companies = c }
}

func WithRules(r []Rule) Option {
	return func(s *Session) { s.rules = r }
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		questions: Questions(),
		companies: Companies(),
		rules:     DefaultRules(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Restart()
	return s
}

// Restart clears every collected value and re-seeds the transcript with the
// first prompt. A new session ID is assigned.
func (s *Session) Restart() {
	s.id = uuid.NewString()
	s.state = StateAsking
	s.index = 0
	s.typing = false
	s.name = ""
	s.answers = NewAnswers()
	s.matches = nil
	s.selected = Company{}
	s.messages = nil
	if len(s.questions) > 0 {
		s.messages = []Message{{Sender: SenderParent, Text: s.questions[0].Prompt.Render("")}}
	}
}

func (s *Session) ID() string       { return s.id }
func (s *Session) State() State     { return s.state }
func (s *Session) Index() int       { return s.index }
func (s *Session) Typing() bool     { return s.typing }
func (s *Session) UserName() string { return s.name }
func (s *Session) Len() int         { return len(s.questions) }

// Answers returns a copy of the collected answers.
func (s *Session) Answers() *Answers { return s.answers.Clone() }

// Transcript returns a copy of the conversation so far.
func (s *Session) Transcript() []Message {
	return append([]Message(nil), s.messages...)
}

func (s *Session) Matches() []Match {
	return append([]Match(nil), s.matches...)
}

// Selected returns the company picked on the results screen.
func (s *Session) Selected() (Company, bool) {
	return s.selected, s.state == StateConnect
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (Question, bool) {
	if s.state != StateAsking || s.index >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// AwaitingAnswer reports whether an answer can be submitted right now.
func (s *Session) AwaitingAnswer() bool {
	_, ok := s.Current()
	return ok && !s.typing
}

// SubmitText records a free-text answer for the current question. Input that
// is empty after trimming is ignored and false is returned.
func (s *Session) SubmitText(value string) (bool, error) {
	q, err := s.awaiting(KindText)
	if err != nil {
		return false, err
	}

	if strings.TrimSpace(value) == "" {
		return false, nil
	}

	if q.Key == KeyName {
		s.name = value
	}

	s.answers.Set(q.Key, value)
	s.record(value)
	return true, nil
}

// SelectOption records the option at index for the current question.
func (s *Session) SelectOption(index int) error {
	q, err := s.awaiting(KindChoice)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(q.Options) {
		return fmt.Errorf("question %s: %w: %d", q.ID, ErrOptionOutOfRange, index)
	}

	label := q.Options[index]
	s.answers.SetChoice(q.Key, label, index)
	s.record(label)
	return nil
}

// Advance ends the typing pause that follows an answer. It asks the next
// question or, after the last one, thanks the user and moves to scoring.
func (s *Session) Advance() error {
	if s.state != StateAsking || !s.typing {
		return fmt.Errorf("advance in %s: %w", s.state, ErrInvalidState)
	}

	s.typing = false
	next := s.index + 1
	if next < len(s.questions) {
		s.index = next
		s.say(s.questions[next].Prompt.Render(s.name))
		return nil
	}

	s.say(fmt.Sprintf("%s, thank you for sharing all of that with me. I've been thinking about what you've told me, and I have some exciting ideas for you!", s.name))
	s.state = StateScoring
	return nil
}

// Finish computes the matches and moves to the results screen.
func (s *Session) Finish() ([]Match, error) {
	if s.state != StateScoring {
		return nil, fmt.Errorf("finish in %s: %w", s.state, ErrInvalidState)
	}

	s.matches = ScoreWith(s.rules, s.answers, s.companies)
	s.state = StateResults
	return s.Matches(), nil
}

// Connect selects one of the shown matches.
func (s *Session) Connect(name string) error {
	if s.state != StateResults {
		return fmt.Errorf("connect in %s: %w", s.state, ErrInvalidState)
	}

	for _, m := range s.matches {
		if m.Company.Name == name {
			s.selected = m.Company
			s.state = StateConnect
			return nil
		}
	}
	return fmt.Errorf("%q: %w", name, ErrUnknownCompany)
}

func (s *Session) awaiting(kind Kind) (Question, error) {
	q, ok := s.Current()
	if !ok || s.typing {
		return Question{}, fmt.Errorf("answer in %s: %w", s.state, ErrInvalidState)
	}
	if q.Kind != kind {
		return Question{}, fmt.Errorf("question %s expects %s input: %w", q.ID, q.Kind, ErrInvalidState)
	}
	return q, nil
}

func (s *Session) record(value string) {
	s.messages = append(s.messages, Message{Sender: SenderUser, Text: value})
	s.typing = true
}

func (s *Session) say(text string) {
	s.messages = append(s.messages, Message{Sender: SenderParent, Text: text})
}
