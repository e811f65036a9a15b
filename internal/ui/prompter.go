package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter is the blocking operator-input contract of the sync stage.
// The state machine depends on this interface only, so its decision
// logic is testable without a terminal.
type Prompter interface {
	// Confirm asks a yes/no question; only an explicit "y" is affirmative.
	Confirm(question string) (bool, error)

	// Line asks a free-form question and returns the trimmed answer.
	Line(question string) (string, error)
}

// TerminalPrompter reads answers line-by-line from the given reader,
// normally stdin.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompter creates a prompter over the given streams.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(in), out: out}
}

// Confirm implements Prompter.
func (p *TerminalPrompter) Confirm(question string) (bool, error) {
	answer, err := p.Line(question + " (y/n)")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// Line implements Prompter.
func (p *TerminalPrompter) Line(question string) (string, error) {
	fmt.Fprint(p.out, promptStyle.Render(question)+" ")
	answer, err := p.in.ReadString('\n')
	if err != nil && answer == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(answer), nil
}
