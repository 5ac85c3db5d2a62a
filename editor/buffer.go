package editor

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

const TAB_STOP = 4

// getLineEnding returns the appropriate line ending for the current OS
func getLineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

type row struct {
	chars  []rune
	render []rune
}

// Buffer owns the document: an ordered list of rows of runes plus the
// dirty counter. A buffer always holds at least one row; no operation
// can remove the last one.
type Buffer struct {
	rows  []row
	dirty int // captures if and how much edits are made
}

// NewBuffer returns a buffer holding a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{rows: []row{{}}}
}

func (b *Buffer) NumRows() int { return len(b.rows) }

// Dirty reports whether the document has unsaved mutations.
func (b *Buffer) Dirty() bool { return b.dirty > 0 }

func (b *Buffer) markSaved() { b.dirty = 0 }

// RowLen returns the rune length of row at, or 0 if at is out of range.
func (b *Buffer) RowLen(at int) int {
	if at < 0 || at >= len(b.rows) {
		return 0
	}
	return len(b.rows[at].chars)
}

// Line returns the text of row at.
func (b *Buffer) Line(at int) string {
	if at < 0 || at >= len(b.rows) {
		return ""
	}
	return string(b.rows[at].chars)
}

func (b *Buffer) checkRow(cy int) error {
	if cy < 0 || cy >= len(b.rows) {
		return fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, cy, len(b.rows))
	}
	return nil
}

func (b *Buffer) checkPos(cy, cx int) error {
	if err := b.checkRow(cy); err != nil {
		return err
	}
	if cx < 0 || cx > len(b.rows[cy].chars) {
		return fmt.Errorf("%w: row %d col %d", ErrOutOfBounds, cy, cx)
	}
	return nil
}

// InsertChar inserts r at column cx of row cy, shifting the rest of the
// line right.
func (b *Buffer) InsertChar(cy, cx int, r rune) error {
	if err := b.checkPos(cy, cx); err != nil {
		return err
	}

	rw := &b.rows[cy]
	rw.chars = append(rw.chars[:cx], append([]rune{r}, rw.chars[cx:]...)...)
	rw.update()
	b.dirty++
	return nil
}

// DeleteCharBefore removes the rune before (cy,cx). At column 0 it
// joins the row onto the end of the previous one; at the very start of
// the document it is a no-op. It returns the cursor position after the
// edit.
func (b *Buffer) DeleteCharBefore(cy, cx int) (int, int, error) {
	if err := b.checkPos(cy, cx); err != nil {
		return cy, cx, err
	}

	if cx > 0 {
		rw := &b.rows[cy]
		rw.chars = slices.Delete(rw.chars, cx-1, cx)
		rw.update()
		b.dirty++
		return cy, cx - 1, nil
	}

	if cy == 0 {
		return cy, cx, nil // Nothing before the start of the document
	}

	// Line-join: append this row onto the previous one and drop it
	prev := &b.rows[cy-1]
	joinCol := len(prev.chars)
	prev.chars = append(prev.chars, b.rows[cy].chars...)
	prev.update()
	b.rows = append(b.rows[:cy], b.rows[cy+1:]...)
	b.dirty++
	return cy - 1, joinCol, nil
}

// SplitLine breaks row cy at column cx. At column 0 the new empty row
// is inserted above the current one, so the text keeps its row; in the
// middle the tail moves to a fresh row below.
func (b *Buffer) SplitLine(cy, cx int) error {
	if err := b.checkPos(cy, cx); err != nil {
		return err
	}

	if cx == 0 {
		b.rows = slices.Insert(b.rows, cy, row{})
	} else {
		tail := slices.Clone(b.rows[cy].chars[cx:])
		b.rows[cy].chars = b.rows[cy].chars[:cx]
		b.rows[cy].update()
		b.rows = slices.Insert(b.rows, cy+1, row{chars: tail})
		b.rows[cy+1].update()
	}
	b.dirty++
	return nil
}

// ClearLine empties row cy without removing it.
func (b *Buffer) ClearLine(cy int) error {
	if err := b.checkRow(cy); err != nil {
		return err
	}

	b.rows[cy].chars = b.rows[cy].chars[:0]
	b.rows[cy].update()
	b.dirty++
	return nil
}

// ReadFrom replaces the document with lines read from r. Line
// terminators are stripped; an empty input yields one empty line.
func (b *Buffer) ReadFrom(r io.Reader) error {
	rows := make([]row, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		// Remove trailing newlines and carriage returns
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		rows = append(rows, row{chars: []rune(line)})
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if len(rows) == 0 {
		rows = append(rows, row{})
	}
	for i := range rows {
		rows[i].update()
	}

	b.rows = rows
	b.dirty = 0
	return nil
}

// String serializes the document with the platform line ending after
// every row, the last one included. Loading strips terminators again,
// so save and load round-trip.
func (b *Buffer) String() string {
	var sb strings.Builder
	lineEnding := getLineEnding()

	totalSize := 0
	for _, rw := range b.rows {
		totalSize += len(rw.chars) + len(lineEnding)
	}
	sb.Grow(totalSize)

	for _, rw := range b.rows {
		sb.WriteString(string(rw.chars))
		sb.WriteString(lineEnding)
	}
	return sb.String()
}

// update rebuilds the render slice: tabs expand to the next TAB_STOP
// boundary and control runes show as ^X.
func (rw *row) update() {
	displayWidth := 0
	for _, c := range rw.chars {
		switch {
		case c == '\t':
			displayWidth += TAB_STOP - (displayWidth % TAB_STOP)
		case isControl(c):
			displayWidth += 2 // ^X representation
		default:
			displayWidth += runewidth.RuneWidth(c)
		}
	}

	rw.render = make([]rune, 0, displayWidth)
	for _, c := range rw.chars {
		switch {
		case c == '\t':
			rw.render = append(rw.render, ' ')
			for len(rw.render)%TAB_STOP != 0 {
				rw.render = append(rw.render, ' ')
			}
		case isControl(c):
			rw.render = append(rw.render, '^')
			switch c {
			case 127: // DEL character
				rw.render = append(rw.render, '?')
			case '\x1b': // ESC character
				rw.render = append(rw.render, '[')
			default:
				rw.render = append(rw.render, c+'@') // Convert control character to printable
			}
		default:
			rw.render = append(rw.render, c)
		}
	}
}

// cxToRx converts a rune index into a display column, since rendered
// characters may be wider than one cell (tabs, wide runes, ^X pairs).
func (rw *row) cxToRx(cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(rw.chars); j++ {
		c := rw.chars[j]
		switch {
		case c == '\t':
			rx += TAB_STOP - (rx % TAB_STOP) // Expand tab to next TAB_STOP boundary
		case isControl(c):
			rx += 2
		default:
			rx += runewidth.RuneWidth(c)
		}
	}
	return rx
}
