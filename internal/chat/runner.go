package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/compass"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/utils"
)

const (
	DefaultTypingDelay  = 1500 * time.Millisecond
	DefaultScoringDelay = 1500 * time.Millisecond

	answerLabel = "Your answer"
	choiceLabel = "Choose one"
	nextLabel   = "What would you like to do?"
)

// waitFor is swapped in tests to skip the pauses.
var waitFor = utils.WaitFor

type Config struct {
	TypingDelay  time.Duration
	ScoringDelay time.Duration
}

// Runner drives a compass session through a Console.
type Runner struct {
	session  *compass.Session
	console  Console
	narrator ai.Narrator
	cfg      Config
	logger   *zap.Logger

	shown   int
	reasons map[string]string
}

// NewRunner creates a runner. The narrator is optional.
func NewRunner(session *compass.Session, console Console, narrator ai.Narrator, cfg Config, log *zap.Logger) *Runner {
	return &Runner{
		session:  session,
		console:  console,
		narrator: narrator,
		cfg:      cfg,
		logger:   logger.WithFields(log),
		reasons:  make(map[string]string),
	}
}

// Run talks to the user until they quit or ctx is done. Quitting is not an
// error.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info("starting a conversation", r.fields()...)

	for {
		r.flush()

		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch r.session.State() {
		case compass.StateAsking:
			err = r.ask(ctx)
		case compass.StateScoring:
			err = r.score(ctx)
		case compass.StateResults:
			err = r.results(ctx)
		case compass.StateConnect:
			err = r.connect()
		default:
			err = fmt.Errorf("unexpected state %s", r.session.State())
		}

		if errors.Is(err, ErrQuit) {
			r.logger.Info("conversation finished", r.fields()...)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (r *Runner) ask(ctx context.Context) error {
	q, ok := r.session.Current()
	if !ok {
		return fmt.Errorf("no question to ask at index %d", r.session.Index())
	}

	switch q.Kind {
	case compass.KindText:
		value, err := r.console.Ask(answerLabel)
		if err != nil {
			return err
		}
		accepted, err := r.session.SubmitText(value)
		if err != nil {
			return err
		}
		if !accepted {
			return nil
		}
	case compass.KindChoice:
		idx, err := r.console.Choose(choiceLabel, q.Options)
		if err != nil {
			return err
		}
		if err := r.session.SelectOption(idx); err != nil {
			return err
		}
	default:
		return fmt.Errorf("question %s has unknown kind %q", q.ID, q.Kind)
	}

	r.logger.Debug("answer recorded", r.fields()...)

	r.flush()
	r.console.Typing()
	if err := waitFor(ctx, r.cfg.TypingDelay); err != nil {
		return err
	}

	return r.session.Advance()
}

func (r *Runner) score(ctx context.Context) error {
	r.console.Typing()
	if err := waitFor(ctx, r.cfg.ScoringDelay); err != nil {
		return err
	}

	matches, err := r.session.Finish()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, fmt.Sprintf("%s (%d)", m.Company.Name, m.Score))
	}
	r.logger.Info("matches computed", append(r.fields(), zap.Strings("matches", names))...)

	return nil
}

func (r *Runner) results(ctx context.Context) error {
	matches := r.session.Matches()

	if len(matches) == 0 {
		r.console.Show(FallbackCard())
		idx, err := r.console.Choose(nextLabel, []string{ActionStartOverNew, ActionQuit})
		if err != nil {
			return err
		}
		if idx == 0 {
			r.restart()
			return nil
		}
		return ErrQuit
	}

	items := make([]string, 0, len(matches)+2)
	for _, m := range matches {
		r.console.Show(MatchCard(m, r.reason(ctx, m)))
		items = append(items, connectAction(m.Company.Name))
	}
	items = append(items, ActionStartOver, ActionQuit)

	idx, err := r.console.Choose(nextLabel, items)
	if err != nil {
		return err
	}

	switch {
	case idx < len(matches):
		return r.session.Connect(matches[idx].Company.Name)
	case items[idx] == ActionStartOver:
		r.restart()
		return nil
	default:
		return ErrQuit
	}
}

func (r *Runner) connect() error {
	company, _ := r.session.Selected()
	r.console.Show(ConnectCard(r.session.UserName(), company.Name))

	r.logger.Info("connection requested", append(r.fields(), zap.String("company", company.Name))...)

	idx, err := r.console.Choose(nextLabel, []string{ActionHelpAnother, ActionQuit})
	if err != nil {
		return err
	}
	if idx == 0 {
		r.restart()
		return nil
	}
	return ErrQuit
}

// reason returns the card explanation, asking the narrator once per company.
func (r *Runner) reason(ctx context.Context, m compass.Match) string {
	if text, ok := r.reasons[m.Company.Name]; ok {
		return text
	}

	answers := r.session.Answers()
	text := Reason(answers)

	if r.narrator != nil {
		plain := make(map[string]string)
		for k, v := range answers.Map() {
			if s, ok := v.(string); ok {
				plain[k] = s
			}
		}

		narrated, err := r.narrator.Narrate(ctx, &ai.NarrationRequest{
			UserName: r.session.UserName(),
			Match:    m,
			Answers:  plain,
			Fallback: text,
		})
		if err != nil {
			r.logger.Warn("narration failed, using template",
				append(r.fields(), zap.String("company", m.Company.Name), zap.Error(err))...,
			)
		} else {
			text = narrated
		}
	}

	r.reasons[m.Company.Name] = text
	return text
}

func (r *Runner) restart() {
	r.session.Restart()
	r.shown = 0
	r.reasons = make(map[string]string)
	r.logger.Info("conversation restarted", r.fields()...)
}

// flush shows transcript messages not yet displayed.
func (r *Runner) flush() {
	transcript := r.session.Transcript()
	for _, msg := range transcript[r.shown:] {
		r.console.Say(msg)
	}
	r.shown = len(transcript)
}

func (r *Runner) fields() []zap.Field {
	questionID := ""
	if q, ok := r.session.Current(); ok {
		questionID = q.ID
	}
	return logger.SessionFields(r.session.ID(), questionID, r.session.State().String())
}
