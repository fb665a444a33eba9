package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// prompter asks questions on the command's streams. Passwords are read
// without echo when stdin is a terminal.
type prompter struct {
	in       *bufio.Reader
	out      io.Writer
	readPass func() (string, error)
}

func newPrompter(cmd *cobra.Command) *prompter {
	p := &prompter{
		in:  bufio.NewReader(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.readPass = func() (string, error) {
			b, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(p.out)
			return string(b), err
		}
	}
	return p
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) readLine(prompt string) (string, error) {
	p.printf("%s", prompt)
	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(s, "\r\n"), nil
}

func (p *prompter) line(prompt string) (string, error) {
	s, err := p.readLine(prompt)
	return strings.TrimSpace(s), err
}

func (p *prompter) password(prompt string) (string, error) {
	if p.readPass == nil {
		return p.readLine(prompt)
	}
	p.printf("%s", prompt)
	s, err := p.readPass()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return s, nil
}
