package chat

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"

	"github.com/spigell/career-compass/internal/compass"
)

// ErrQuit is returned by a Console when the user leaves the conversation.
var ErrQuit = errors.New("quit requested")

// Console is the surface the runner talks through.
type Console interface {
	// Say shows one transcript message.
	Say(msg compass.Message)
	// Show prints a block of text such as a result card.
	Show(text string)
	// Typing signals that a reply is being prepared.
	Typing()
	// Ask reads one free-text answer.
	Ask(label string) (string, error)
	// Choose returns the index of the selected item.
	Choose(label string, items []string) (int, error)
}

var (
	parentStyle = promptui.Styler(promptui.FGCyan, promptui.FGBold)
	dimStyle    = promptui.Styler(promptui.FGFaint)
)

// PromptConsole is a terminal Console built on promptui.
type PromptConsole struct {
	in  io.ReadCloser
	out io.WriteCloser
}

func NewPromptConsole() *PromptConsole {
	return &PromptConsole{in: os.Stdin, out: os.Stdout}
}

func (c *PromptConsole) Say(msg compass.Message) {
	// promptui already echoes what the user typed or picked.
	if msg.Sender == compass.SenderUser {
		return
	}
	fmt.Fprintf(c.out, "\n%s %s\n\n", parentStyle("Compass:"), msg.Text)
}

func (c *PromptConsole) Show(text string) {
	fmt.Fprintf(c.out, "\n%s\n", text)
}

func (c *PromptConsole) Typing() {
	fmt.Fprintln(c.out, dimStyle("Compass is typing..."))
}

func (c *PromptConsole) Ask(label string) (string, error) {
	p := promptui.Prompt{
		Label:  label,
		Stdin:  c.in,
		Stdout: c.out,
	}

	value, err := p.Run()
	if err != nil {
		return "", mapPromptErr(err)
	}
	return value, nil
}

func (c *PromptConsole) Choose(label string, items []string) (int, error) {
	s := promptui.Select{
		Label:  label,
		Items:  items,
		Size:   len(items),
		Stdin:  c.in,
		Stdout: c.out,
	}

	idx, _, err := s.Run()
	if err != nil {
		return 0, mapPromptErr(err)
	}
	return idx, nil
}

func mapPromptErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return ErrQuit
	}
	return err
}
