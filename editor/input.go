package editor

// Session lifecycle. PendingExit means an Esc was refused because of
// unsaved changes and the warning is on the status line; it dispatches
// exactly like Editing and the next key returns the state to Editing.
type sessionState int

const (
	stateEditing sessionState = iota
	statePendingExit
	stateTerminated
)

// binding pairs a named action with its effect on the editor.
type binding struct {
	name string
	do   func(e *Editor) error
}

// keymap is the dispatch table for every bound key. Keys not listed
// here either insert themselves (printable runes) or do nothing.
var keymap = map[rune]binding{
	ARROW_LEFT:  {"cursor-left", func(e *Editor) error { e.MoveCursor(ARROW_LEFT); return nil }},
	ARROW_RIGHT: {"cursor-right", func(e *Editor) error { e.MoveCursor(ARROW_RIGHT); return nil }},
	ARROW_UP:    {"cursor-up", func(e *Editor) error { e.MoveCursor(ARROW_UP); return nil }},
	ARROW_DOWN:  {"cursor-down", func(e *Editor) error { e.MoveCursor(ARROW_DOWN); return nil }},

	HOME_KEY:            {"line-start", func(e *Editor) error { e.moveLineStart(); return nil }},
	withControlKey('a'): {"line-start", func(e *Editor) error { e.moveLineStart(); return nil }},
	END_KEY:             {"line-end", func(e *Editor) error { e.moveLineEnd(); return nil }},
	withControlKey('e'): {"line-end", func(e *Editor) error { e.moveLineEnd(); return nil }},

	PAGE_UP:   {"page-up", func(e *Editor) error { e.pageMove(PAGE_UP); return nil }},
	PAGE_DOWN: {"page-down", func(e *Editor) error { e.pageMove(PAGE_DOWN); return nil }},

	'\r':                {"break-line", (*Editor).breakLine},
	BACKSPACE:           {"delete-back", (*Editor).deleteRune},
	DELETE_KEY:          {"delete-forward", (*Editor).deleteRuneForward},
	withControlKey('u'): {"clear-line", (*Editor).clearLine},

	withControlKey('s'): {"save", func(e *Editor) error { e.Save(); return nil }},
	withControlKey('r'): {"redraw", func(e *Editor) error { e.resize(); return nil }},

	'\x1b':              {"exit-if-saved", (*Editor).requestExit},
	withControlKey('q'): {"exit-discard", func(e *Editor) error { e.state = stateTerminated; return nil }},
}

// Dispatch routes one key event through the keymap. A non-nil error is
// a broken buffer contract and terminates the session.
func (e *Editor) Dispatch(key rune) error {
	if e.state == statePendingExit {
		e.state = stateEditing
	}

	if b, ok := keymap[key]; ok {
		return b.do(e)
	}

	// Insert regular characters (including Unicode); unbound control
	// keys are no-ops
	if !isControl(key) || key >= 128 {
		return e.insertRune(key)
	}
	return nil
}

// Terminated reports whether the session reached its final state.
func (e *Editor) Terminated() bool {
	return e.state == stateTerminated
}

/*** editor operations ***/

func (e *Editor) insertRune(r rune) error {
	if err := e.buf.InsertChar(e.cy, e.cx, r); err != nil {
		return err
	}
	e.cx++
	return nil
}

func (e *Editor) deleteRune() error {
	cy, cx, err := e.buf.DeleteCharBefore(e.cy, e.cx)
	if err != nil {
		return err
	}
	e.cy, e.cx = cy, cx
	return nil
}

func (e *Editor) deleteRuneForward() error {
	if e.cy == e.buf.NumRows()-1 && e.cx == e.buf.RowLen(e.cy) {
		return nil // Nothing after the end of the document
	}
	e.MoveCursor(ARROW_RIGHT)
	return e.deleteRune()
}

func (e *Editor) breakLine() error {
	if err := e.buf.SplitLine(e.cy, e.cx); err != nil {
		return err
	}
	e.cy++
	e.cx = 0
	return nil
}

func (e *Editor) clearLine() error {
	if err := e.buf.ClearLine(e.cy); err != nil {
		return err
	}
	e.cx = 0
	return nil
}

// requestExit ends the session only when the buffer is saved. With
// unsaved changes the exit is refused: Ctrl-Q is the explicit escape
// hatch, so a stray Esc can never lose work.
func (e *Editor) requestExit() error {
	if e.buf.Dirty() {
		e.state = statePendingExit
		e.SetStatusMessage("Unsaved changes! Ctrl-S to save, Ctrl-Q to discard and quit")
		return nil
	}
	e.state = stateTerminated
	return nil
}
