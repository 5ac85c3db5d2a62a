package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func dispatchAll(t *testing.T, e *Editor, keys ...rune) {
	t.Helper()
	for _, k := range keys {
		if err := e.Dispatch(k); err != nil {
			t.Fatalf("Dispatch(%q) failed: %v", k, err)
		}
	}
}

func typeString(t *testing.T, e *Editor, s string) {
	t.Helper()
	dispatchAll(t, e, []rune(s)...)
}

func TestDispatchPrintableInserts(t *testing.T) {
	e := testEditor("")

	typeString(t, e, "héllo")

	if got := e.buf.Line(0); got != "héllo" {
		t.Errorf("Expected %q, got %q", "héllo", got)
	}
	if e.cx != 5 {
		t.Errorf("Expected cursor column 5, got %d", e.cx)
	}
}

func TestDispatchUnboundControlIsNoop(t *testing.T) {
	e := testEditor("abc")

	dispatchAll(t, e, withControlKey('g'))

	if e.buf.Line(0) != "abc" || e.buf.Dirty() {
		t.Errorf("Unbound control key mutated the buffer")
	}
	if e.Terminated() {
		t.Errorf("Unbound control key terminated the session")
	}
}

func TestDispatchEnterSplitsLine(t *testing.T) {
	e := testEditor("hello")
	e.cx = 2

	dispatchAll(t, e, '\r')

	if e.buf.Line(0) != "he" || e.buf.Line(1) != "llo" {
		t.Errorf("Expected [he llo], got [%q %q]", e.buf.Line(0), e.buf.Line(1))
	}
	if e.cy != 1 || e.cx != 0 {
		t.Errorf("Expected cursor (1,0), got (%d,%d)", e.cy, e.cx)
	}
}

func TestDispatchBackspace(t *testing.T) {
	e := testEditor("ab")
	e.cx = 2

	dispatchAll(t, e, BACKSPACE)

	if e.buf.Line(0) != "a" || e.cx != 1 {
		t.Errorf("Expected %q with cursor 1, got %q with cursor %d", "a", e.buf.Line(0), e.cx)
	}
}

func TestDispatchForwardDelete(t *testing.T) {
	e := testEditor("abc")

	dispatchAll(t, e, DELETE_KEY)

	if e.buf.Line(0) != "bc" {
		t.Errorf("Expected %q, got %q", "bc", e.buf.Line(0))
	}
	if e.cx != 0 || e.cy != 0 {
		t.Errorf("Expected cursor to stay at (0,0), got (%d,%d)", e.cy, e.cx)
	}
}

func TestDispatchForwardDeleteAtDocumentEnd(t *testing.T) {
	e := testEditor("abc")
	e.cx = 3

	dispatchAll(t, e, DELETE_KEY)

	if e.buf.Line(0) != "abc" || e.buf.Dirty() {
		t.Errorf("Forward delete at document end should be a no-op")
	}
}

func TestDispatchCtrlUClearsCurrentLine(t *testing.T) {
	e := testEditor("one", "hello", "three")
	e.cy = 1
	e.cx = 4

	dispatchAll(t, e, withControlKey('u'))

	if e.buf.Line(1) != "" {
		t.Errorf("Expected cleared line, got %q", e.buf.Line(1))
	}
	if e.buf.Line(0) != "one" || e.buf.Line(2) != "three" {
		t.Errorf("Adjacent lines changed: %q / %q", e.buf.Line(0), e.buf.Line(2))
	}
	if e.cx != 0 {
		t.Errorf("Expected cursor column 0 after clear, got %d", e.cx)
	}
}

func TestDispatchHomeEndAliases(t *testing.T) {
	e := testEditor("hello")

	dispatchAll(t, e, END_KEY)
	if e.cx != 5 {
		t.Errorf("End: expected column 5, got %d", e.cx)
	}
	dispatchAll(t, e, HOME_KEY)
	if e.cx != 0 {
		t.Errorf("Home: expected column 0, got %d", e.cx)
	}

	dispatchAll(t, e, withControlKey('e'))
	if e.cx != 5 {
		t.Errorf("Ctrl-E: expected column 5, got %d", e.cx)
	}
	dispatchAll(t, e, withControlKey('a'))
	if e.cx != 0 {
		t.Errorf("Ctrl-A: expected column 0, got %d", e.cx)
	}
}

func TestEscRefusedWhileDirty(t *testing.T) {
	e := testEditor("")
	typeString(t, e, "x")

	dispatchAll(t, e, '\x1b')

	if e.Terminated() {
		t.Fatalf("Esc must not terminate a session with unsaved changes")
	}
	if e.state != statePendingExit {
		t.Errorf("Expected statePendingExit after refused Esc, got %d", e.state)
	}

	// Any following key drops back to Editing
	dispatchAll(t, e, ARROW_LEFT)
	if e.state != stateEditing {
		t.Errorf("Expected stateEditing after next key, got %d", e.state)
	}
}

func TestEscTerminatesWhenClean(t *testing.T) {
	e := testEditor("abc")

	dispatchAll(t, e, '\x1b')

	if !e.Terminated() {
		t.Errorf("Esc on a clean buffer must terminate the session")
	}
}

func TestSaveThenEscTerminates(t *testing.T) {
	e := testEditor("")
	e.filename = filepath.Join(t.TempDir(), "out.txt")
	typeString(t, e, "x")

	dispatchAll(t, e, withControlKey('s'))
	if e.buf.Dirty() {
		t.Fatalf("Expected clean buffer after save")
	}

	dispatchAll(t, e, '\x1b')
	if !e.Terminated() {
		t.Errorf("Esc after save must terminate the session")
	}
}

func TestCtrlQDiscardsUnsavedChanges(t *testing.T) {
	e := testEditor("")
	typeString(t, e, "doomed")

	dispatchAll(t, e, withControlKey('q'))

	if !e.Terminated() {
		t.Errorf("Ctrl-Q must terminate unconditionally")
	}
}

func TestScenarioTypeAndSave(t *testing.T) {
	e := testEditor("")
	e.filename = filepath.Join(t.TempDir(), "new.txt")
	e.newFile = true

	typeString(t, e, "hi")
	dispatchAll(t, e, '\r')
	typeString(t, e, "bye")
	dispatchAll(t, e, withControlKey('s'), '\x1b')

	if !e.Terminated() {
		t.Fatalf("Expected terminated session")
	}

	data, err := os.ReadFile(e.filename)
	if err != nil {
		t.Fatalf("Reading saved file: %v", err)
	}
	want := "hi" + getLineEnding() + "bye" + getLineEnding()
	if string(data) != want {
		t.Errorf("Expected %q, got %q", want, string(data))
	}
}

func TestScenarioBackspaceAtLineEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abc.txt")
	if err := os.WriteFile(path, []byte("abc"+getLineEnding()), 0644); err != nil {
		t.Fatalf("Writing fixture: %v", err)
	}

	e := testEditor("")
	if err := e.Open(path); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	dispatchAll(t, e, END_KEY, BACKSPACE, BACKSPACE, withControlKey('s'))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading saved file: %v", err)
	}
	want := "a" + getLineEnding()
	if string(data) != want {
		t.Errorf("Expected %q, got %q", want, string(data))
	}
}
