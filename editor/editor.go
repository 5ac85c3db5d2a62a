package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const TERN_VERSION = "0.1.0"

// Editor represents the text editor state for one session: the buffer,
// the cursor, the viewport and the terminal it draws on.
type Editor struct {
	cx, cy            int // cursor position in runes within the buffer
	rx                int // cursor position in display columns
	rowOffset         int
	colOffset         int
	screenRows        int
	screenCols        int
	buf               *Buffer
	filename          string
	newFile           bool
	statusMessage     string
	statusMessageTime time.Time
	state             sessionState
	terminal          *Terminal
}

// NewEditor creates a new Editor instance with an empty document.
func NewEditor() *Editor {
	return &Editor{
		buf:      NewBuffer(),
		terminal: NewTerminal(),
	}
}

// EnableRawMode acquires the terminal for raw keyboard input.
func (e *Editor) EnableRawMode() error {
	return e.terminal.EnterRawMode()
}

// RestoreTerminal releases raw mode. Safe to call more than once.
func (e *Editor) RestoreTerminal() {
	e.terminal.Restore()
}

// Init queries the window size and reserves the two bottom rows for the
// status and message bars.
func (e *Editor) Init() error {
	rows, cols, err := windowSize()
	if err != nil {
		return errors.New("getting window size")
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	return nil
}

// resize re-queries the window size, e.g. after the terminal changed.
func (e *Editor) resize() {
	if err := e.Init(); err != nil {
		e.ShowError("%v", err)
	}
}

// Open loads filename into the buffer. A missing file becomes a new
// empty document bound to that path for future saves.
func (e *Editor) Open(filename string) error {
	e.filename = filename

	file, err := os.Open(filename)
	if errors.Is(err, os.ErrNotExist) {
		e.newFile = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open file '%s': %w", filename, err)
	}
	defer file.Close()

	if err := e.buf.ReadFrom(file); err != nil {
		return fmt.Errorf("reading file '%s': %w", filename, err)
	}
	return nil
}

// Save writes the document to disk atomically: the content goes to a
// temp file in the target directory which is then renamed over the
// destination, so a failed write never truncates the original. A save
// failure is reported on the status line and leaves the dirty flag set.
func (e *Editor) Save() {
	content := e.buf.String()

	if err := writeFileAtomic(e.filename, []byte(content)); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}

	e.buf.markSaved()
	e.newFile = false
	e.SetStatusMessage("%d bytes written to disk", len(content))
}

func writeFileAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, filename); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Run is the render loop: repaint, block on the next key, dispatch,
// until the session terminates. The only blocking point is the key
// read; everything else runs to completion in between.
func (e *Editor) Run() error {
	e.SetStatusMessage("HELP: Ctrl-S = save | Esc = quit (if saved) | Ctrl-Q = discard and quit")

	for !e.Terminated() {
		e.RefreshScreen()

		key, err := readKey()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}

		if err := e.Dispatch(key); err != nil {
			return err
		}
	}
	return nil
}
