// Package term collects the interactive stdin prompts behind an interface
// so the action flow stays testable without a terminal.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter is the interactive-input collaborator. Every method blocks until
// a line arrives; there is no timeout or default.
type Prompter interface {
	PromptText(label string) (string, error)
	PromptChoice(label string) (byte, error)
	ConfirmYesNo(label string) (bool, error)
}

// Console prompts on an arbitrary reader/writer pair (stdin/stdout in the
// CLI, buffers in tests).
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole wires a Prompter over in/out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) readLine(label string) (string, error) {
	if _, err := fmt.Fprintf(c.out, "%s ", label); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptText reads one trimmed line.
func (c *Console) PromptText(label string) (string, error) {
	return c.readLine(label)
}

// PromptChoice reads one line and returns its first character, or 0 on an
// empty answer.
func (c *Console) PromptChoice(label string) (byte, error) {
	line, err := c.readLine(label)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return 0, nil
	}
	return line[0], nil
}

// ConfirmYesNo reads one line and accepts y/yes (any case) as assent;
// everything else, including no answer, is a refusal.
func (c *Console) ConfirmYesNo(label string) (bool, error) {
	line, err := c.readLine(label + " [y/N]:")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
