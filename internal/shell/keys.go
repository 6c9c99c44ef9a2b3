package shell

import (
	"bufio"
	"unicode"
)

type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyChar
	KeyEnter
	KeyBackspace
	KeyLeft
	KeyRight
	KeyEsc
	KeyInterrupt
)

type Key struct {
	Code KeyCode
	Rune rune
}

const (
	ctrlC     = 0x03
	ctrlD     = 0x04
	backspace = 0x08
	escape    = 0x1b
	del       = 0x7f
)

// ReadKey decodes one keystroke from a terminal in raw mode. Escape
// sequences other than the left and right arrows are swallowed.
func ReadKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case '\r', '\n':
		return Key{Code: KeyEnter}, nil
	case del, backspace:
		return Key{Code: KeyBackspace}, nil
	case ctrlC, ctrlD:
		return Key{Code: KeyInterrupt}, nil
	case escape:
		if r.Buffered() == 0 {
			return Key{Code: KeyEsc}, nil
		}
		return readEscape(r)
	}

	if err := r.UnreadByte(); err != nil {
		return Key{}, err
	}
	c, _, err := r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	if !unicode.IsPrint(c) {
		return Key{Code: KeyNone}, nil
	}
	return Key{Code: KeyChar, Rune: c}, nil
}

func readEscape(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	if b != '[' && b != 'O' {
		return Key{Code: KeyEsc}, r.UnreadByte()
	}
	// CSI: parameters then a final byte in 0x40-0x7e
	for {
		b, err = r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		if b >= 0x40 && b <= 0x7e {
			break
		}
	}
	switch b {
	case 'C':
		return Key{Code: KeyRight}, nil
	case 'D':
		return Key{Code: KeyLeft}, nil
	default:
		return Key{Code: KeyNone}, nil
	}
}
