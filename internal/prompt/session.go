// Package prompt implements the line-oriented question and answer session
// used by interactive mode.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	oerrors "github.com/freshmaven/cli/internal/errors"
)

// QuitAnswer ends the session from any prompt.
const QuitAnswer = "q"

// Session asks questions on out and reads one answer per line from in.
type Session struct {
	in  *bufio.Reader
	out io.Writer
}

// NewSession creates a session over the given reader and writer.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewReader(in), out: out}
}

// Say writes a line of text.
func (s *Session) Say(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// readLine reads one answer. Input ending without a newline still yields
// its last line; after that io.ErrUnexpectedEOF is returned.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ask prints prompt and reads answers until accept returns true.
// A blank answer is replaced by def when def is not blank.
func (s *Session) ask(prompt, def string, accept func(string) bool) (string, error) {
	for {
		fmt.Fprint(s.out, prompt)

		answer, err := s.readLine()
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)

		if answer == QuitAnswer {
			return "", oerrors.ErrQuit
		}
		if answer == "" {
			if strings.TrimSpace(def) == "" {
				continue
			}
			answer = def
		}
		if accept != nil && !accept(answer) {
			continue
		}
		return answer, nil
	}
}

func withDefault(question, def string) string {
	if strings.TrimSpace(def) == "" {
		return question + ": "
	}
	return question + " (" + def + "): "
}

// Text asks a free text question. Blank answers are re-asked unless def is set.
func (s *Session) Text(question, def string) (string, error) {
	return s.ask(withDefault(question, def), def, nil)
}

// Choose prints a numbered menu and returns the zero based index of the
// chosen option. def is the one based default.
func (s *Session) Choose(question string, options []string, def int) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("%s: no options to choose from", question)
	}
	if def < 1 || def > len(options) {
		return 0, fmt.Errorf("default option %d out of range 1 to %d", def, len(options))
	}

	s.Say("Select one of the following options:")
	for i, o := range options {
		s.Say("  %d. %s", i+1, o)
	}

	prompt := withDefault(fmt.Sprintf("%s (1-%d)?", question, len(options)), strconv.Itoa(def))
	answer, err := s.ask(prompt, strconv.Itoa(def), func(a string) bool {
		n, err := strconv.Atoi(a)
		return err == nil && n >= 1 && n <= len(options)
	})
	if err != nil {
		return 0, err
	}

	n, _ := strconv.Atoi(answer)
	return n - 1, nil
}

// Select asks for one of the literal options, e.g. y or n.
func (s *Session) Select(question string, options []string, def string) (string, error) {
	prompt := withDefault(question+" ["+strings.Join(options, ", ")+"]", def)
	return s.ask(prompt, def, func(a string) bool {
		for _, o := range options {
			if a == o {
				return true
			}
		}
		return false
	})
}
