package termio

import (
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal provides a simple line-oriented session over the controlling
// terminal, suitable for reading input interactively.  The terminal is held
// in raw mode between construction and Restore.
type Terminal struct {
	// file descriptor for output.
	fd int
	// Underlying terminal
	xterm *term.Terminal
	// Stores original state of terminal so this can be restored.
	state *term.State
}

// NewTerminal constructs a new terminal.
func NewTerminal() (*Terminal, error) {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return nil, errors.New("invalid terminal")
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(0)
	if err != nil {
		return nil, err
	}
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	// Grab terminal screen
	terminal := term.NewTerminal(screen, "")
	//
	return &Terminal{fd, terminal, state}, nil
}

// SetPrompt sets the prompt shown when reading a line.
func (t *Terminal) SetPrompt(prompt string) {
	t.xterm.SetPrompt(prompt)
}

// ReadLine reads a line of input, echoing as it goes.  At the end of input
// (e.g. ctrl-d) this returns io.EOF.
func (t *Terminal) ReadLine() (string, error) {
	return t.xterm.ReadLine()
}

// WriteLine writes a line of text followed by a line break.  Since the
// terminal is in raw mode, any embedded line breaks are expanded to include
// a carriage return.
func (t *Terminal) WriteLine(text string) error {
	text = strings.ReplaceAll(text, "\n", "\r\n")
	//
	_, err := t.xterm.Write([]byte(text + "\r\n"))
	//
	return err
}

// Restore terminal to its original state.
func (t *Terminal) Restore() error {
	return term.Restore(t.fd, t.state)
}
