package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var errEmptyPassword = errors.New("password must not be empty")

var (
	codeText    = color.New(color.FgYellow)
	successText = color.New(color.FgGreen)
	warningText = color.New(color.FgYellow, color.Bold)
	errorText   = color.New(color.FgRed, color.Bold)
)

func setColor(disabled bool) {
	if disabled {
		color.NoColor = true
		return
	}
	// https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		color.NoColor = true
	}
}

// readPassword prompts on out and reads without echo when in is a terminal.
// Otherwise it reads one line from in, which lets scripts pipe the password.
func readPassword(in io.Reader, out io.Writer, prompt string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(out, prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		if len(b) == 0 {
			return "", errEmptyPassword
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errEmptyPassword
	}
	return line, nil
}

// startSpinner shows message on w while key derivation runs. The returned
// function stops it.
func startSpinner(w io.Writer, message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	_ = s.Color("cyan")
	s.Start()
	return s.Stop
}
