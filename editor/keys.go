package editor

import (
	"errors"
	"os"
	"unicode/utf8"
)

// Key aliase
const (
	BACKSPACE  = 127 // ASCII backspace
	ARROW_LEFT = iota + 1000
	ARROW_RIGHT
	ARROW_UP
	ARROW_DOWN
	DELETE_KEY
	HOME_KEY
	END_KEY
	PAGE_UP
	PAGE_DOWN
)

// Check if the rune is a control character
func isControl(r rune) bool {
	return r < 32 || r == 127
}

// Convert a character to its control key equivalent
func withControlKey(c rune) rune {
	return rune(int(c) & 0x1f) // 0x1f is 31 in decimal, which is the control character range
}

// readKey blocks until one key event is available on stdin and decodes
// it: escape sequences become the key aliases above, multi-byte input
// becomes a single rune.
func readKey() (rune, error) {
	buf := make([]byte, 1)
	n, err := os.Stdin.Read(buf)

	if n != 1 || err != nil {
		return 0, errors.New("reading keyboard input")
	}

	c := buf[0]

	// Handle escape sequences (special keys)
	if c == '\x1b' {
		seq := make([]byte, 3)
		if n, err := os.Stdin.Read(seq[0:2]); n != 2 || err != nil {
			return '\x1b', nil // Return escape if we can't read sequence
		}

		switch seq[0] {
		case '[':
			if seq[1] >= '0' && seq[1] <= '9' {
				if n, err := os.Stdin.Read(seq[2:3]); n != 1 || err != nil {
					return '\x1b', nil
				}
				if seq[2] == '~' {
					switch seq[1] {
					case '1', '7':
						return HOME_KEY, nil
					case '3':
						return DELETE_KEY, nil
					case '4', '8':
						return END_KEY, nil
					case '5':
						return PAGE_UP, nil
					case '6':
						return PAGE_DOWN, nil
					}
				}
			} else {
				switch seq[1] {
				case 'A':
					return ARROW_UP, nil
				case 'B':
					return ARROW_DOWN, nil
				case 'C':
					return ARROW_RIGHT, nil
				case 'D':
					return ARROW_LEFT, nil
				case 'H':
					return HOME_KEY, nil
				case 'F':
					return END_KEY, nil
				}
			}
		case 'O':
			switch seq[1] {
			case 'H':
				return HOME_KEY, nil
			case 'F':
				return END_KEY, nil
			}
		}
		return '\x1b', nil // Unknown escape sequence, return escape
	}

	// For ASCII characters, return directly
	if c < 128 {
		return rune(c), nil
	}

	// Handle multi-byte UTF-8 characters
	var utfBuf [4]byte
	utfBuf[0] = c

	// Determine how many more bytes we need
	var totalBytes int
	if c&0xE0 == 0xC0 {
		totalBytes = 2
	} else if c&0xF0 == 0xE0 {
		totalBytes = 3
	} else if c&0xF8 == 0xF0 {
		totalBytes = 4
	} else {
		return utf8.RuneError, errors.New("invalid UTF-8 sequence")
	}

	// Read remaining bytes
	if totalBytes > 1 {
		n, err := os.Stdin.Read(utfBuf[1:totalBytes])
		if n != totalBytes-1 || err != nil {
			return utf8.RuneError, errors.New("reading UTF-8 sequence")
		}
	}

	// Decode UTF-8
	r, size := utf8.DecodeRune(utfBuf[:totalBytes])
	if r == utf8.RuneError || size != totalBytes {
		return utf8.RuneError, errors.New("invalid UTF-8 character")
	}

	return r, nil
}
