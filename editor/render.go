package editor

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-runewidth"
)

/*** append buffer ***/

type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s []byte) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendString(s string) {
	ab.b = append(ab.b, s...)
}

/*** output ***/

func (e *Editor) drawRows(abuf *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowOffset
		if filerow >= e.buf.NumRows() {
			if e.showWelcome() && y == e.screenRows/3 {
				welcome := "TERN editor -- version " + TERN_VERSION
				welcomelen := min(len(welcome), e.screenCols)
				padding := (e.screenCols - welcomelen) / 2
				if padding > 0 {
					abuf.appendString("~")
					padding--
				}
				for i := 0; i < padding; i++ {
					abuf.appendString(" ")
				}
				abuf.appendString(welcome[:welcomelen])
			} else {
				abuf.appendString("~")
			}
		} else {
			// Emit the render runes whose columns fall inside the
			// viewport; wide runes advance by their display width
			col := 0
			for _, c := range e.buf.rows[filerow].render {
				w := runewidth.RuneWidth(c)
				if w == 0 {
					w = 1
				}
				if col+w > e.colOffset+e.screenCols {
					break
				}
				if col >= e.colOffset {
					abuf.appendString(string(c))
				}
				col += w
			}
		}

		abuf.appendString(CLEAR_LINE)
		abuf.appendString("\r\n")
	}
}

// showWelcome is true only for a pristine new file: one empty line and
// nothing ever typed.
func (e *Editor) showWelcome() bool {
	return e.newFile && !e.buf.Dirty() && e.buf.NumRows() == 1 && e.buf.RowLen(0) == 0
}

func (e *Editor) drawStatusBar(abuf *appendBuffer) {
	abuf.appendString(COLORS_INVERT) // Invert colors for status bar

	filename := "[No Name]"
	if e.filename != "" {
		filename = runewidth.Truncate(e.filename, 20, "")
	}
	dirtyFlag := ""
	if e.buf.Dirty() {
		dirtyFlag = "(modified)"
	}
	status := fmt.Sprintf("%s - %d lines %s", filename, e.buf.NumRows(), dirtyFlag)
	statusLen := min(runewidth.StringWidth(status), e.screenCols)
	status = runewidth.Truncate(status, statusLen, "")

	rstatus := fmt.Sprintf("%d/%d:%d", e.cy+1, e.buf.NumRows(), e.cx+1)
	rstatusLen := runewidth.StringWidth(rstatus)
	abuf.appendString(status)

	for statusLen < e.screenCols {
		if e.screenCols-statusLen == rstatusLen {
			abuf.appendString(rstatus)
			break
		} else {
			abuf.appendString(" ")
			statusLen++
		}
	}

	abuf.appendString(COLORS_RESET)
	abuf.appendString("\r\n")
}

func (e *Editor) drawMessageBar(abuf *appendBuffer) {
	abuf.appendString(CLEAR_LINE)
	if time.Since(e.statusMessageTime) < 5*time.Second {
		abuf.appendString(runewidth.Truncate(e.statusMessage, e.screenCols, ""))
	}
}

// RefreshScreen repaints the viewport, status bar and message bar in
// one write, then parks the terminal cursor on the logical cursor.
func (e *Editor) RefreshScreen() {
	e.scroll()

	var abuf appendBuffer

	abuf.appendString(CURSOR_HIDE)
	abuf.appendString(CURSOR_HOME) // Move cursor to the top-left corner

	e.drawRows(&abuf)
	e.drawStatusBar(&abuf)
	e.drawMessageBar(&abuf)

	abuf.append(fmt.Appendf(nil, CURSOR_POSITION_FORMAT, e.cy-e.rowOffset+1, e.rx-e.colOffset+1))

	abuf.appendString(CURSOR_SHOW)

	os.Stdout.Write(abuf.b)
}

// SetStatusMessage shows a formatted message in the message bar.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = time.Now()
}

// ShowError displays an error message in the status bar instead of terminating
func (e *Editor) ShowError(format string, args ...any) {
	e.SetStatusMessage("Warn: "+format, args...)
}
