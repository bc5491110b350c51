package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// prompter prints a message without a newline and reads one answer line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask returns the answer with trailing whitespace removed. Leading
// whitespace is kept; callers trim where the answer is a number or a name.
// io.EOF is returned only when input ended before any text was read.
func (p *prompter) ask(message string) (string, error) {
	if _, err := io.WriteString(p.out, message); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", io.EOF
			}
		} else {
			return "", fmt.Errorf("read answer: %w", err)
		}
	}
	return strings.TrimRightFunc(line, unicode.IsSpace), nil
}

