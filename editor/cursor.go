package editor

// MoveCursor applies one arrow-key movement. Left and Right wrap onto
// the adjacent line at boundaries; Up and Down keep the column where
// the target line allows it. Every move ends with the column clamped
// to the current line length.
func (e *Editor) MoveCursor(key rune) {
	switch key {
	case ARROW_LEFT:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.buf.RowLen(e.cy)
		}
	case ARROW_RIGHT:
		if e.cx < e.buf.RowLen(e.cy) {
			e.cx++
		} else if e.cy < e.buf.NumRows()-1 {
			e.cy++
			e.cx = 0
		}
	case ARROW_UP:
		if e.cy != 0 {
			e.cy--
		}
	case ARROW_DOWN:
		if e.cy < e.buf.NumRows()-1 {
			e.cy++
		}
	}

	if e.cx > e.buf.RowLen(e.cy) {
		e.cx = e.buf.RowLen(e.cy)
	}
}

func (e *Editor) moveLineStart() {
	e.cx = 0
}

func (e *Editor) moveLineEnd() {
	e.cx = e.buf.RowLen(e.cy)
}

// pageMove jumps the cursor a screenful up or down.
func (e *Editor) pageMove(key rune) {
	if key == PAGE_UP {
		e.cy = e.rowOffset
	} else {
		e.cy = min(e.rowOffset+e.screenRows-1, e.buf.NumRows()-1)
		if e.cy < 0 {
			e.cy = 0
		}
	}

	for i := 0; i < e.screenRows; i++ {
		if key == PAGE_UP {
			e.MoveCursor(ARROW_UP)
		} else {
			e.MoveCursor(ARROW_DOWN)
		}
	}
}

// scroll recomputes the viewport offsets so the cursor stays inside the
// visible rows and columns, moving by the minimum amount.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < e.buf.NumRows() {
		e.rx = e.buf.rows[e.cy].cxToRx(e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}

	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}
