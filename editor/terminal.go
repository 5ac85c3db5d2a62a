package editor

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// Terminal handles terminal-specific operations
type Terminal struct {
	originalState *term.State
}

// NewTerminal creates a new Terminal instance
func NewTerminal() *Terminal {
	return &Terminal{}
}

// EnterRawMode puts the terminal into raw mode.
// This allows us to read every input key and position the cursor freely
func (t *Terminal) EnterRawMode() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}

	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return errors.New("enabling terminal raw mode: " + err.Error())
	}
	t.originalState = state
	return nil
}

// Restore the original terminal state, disabling raw mode.
func (t *Terminal) Restore() {
	if t.originalState != nil {
		term.Restore(int(os.Stdin.Fd()), t.originalState)
		t.originalState = nil // Prevent multiple restoration attempts
	}
}

// ResetScreen clears the screen and homes the cursor. Called after raw
// mode is released so the shell gets a clean screen back.
func ResetScreen() {
	os.Stdout.Write([]byte(CLEAR_SCREEN))
	os.Stdout.Write([]byte(CURSOR_HOME))
}

func windowSize() (int, int, error) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	return rows, cols, err
}
