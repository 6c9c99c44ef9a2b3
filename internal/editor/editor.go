// Package editor holds the text of the input box and a cursor counted in
// characters, not bytes.
package editor

type Buffer struct {
	text   []rune
	cursor int
}

func New() *Buffer {
	return &Buffer{}
}

func (b *Buffer) String() string {
	return string(b.text)
}

func (b *Buffer) Len() int {
	return len(b.text)
}

// Head is the text left of the cursor.
func (b *Buffer) Head() string {
	return string(b.text[:b.cursor])
}

func (b *Buffer) Cursor() int {
	return b.cursor
}

func (b *Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.text) {
		return len(b.text)
	}
	return pos
}

func (b *Buffer) Left() {
	b.cursor = b.clamp(b.cursor - 1)
}

func (b *Buffer) Right() {
	b.cursor = b.clamp(b.cursor + 1)
}

// Insert puts r at the cursor and moves the cursor past it.
func (b *Buffer) Insert(r rune) {
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = r
	b.Right()
}

func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// Backspace removes the character before the cursor, if any.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.Left()
}

// Take returns the content and leaves the buffer empty with the cursor at 0.
func (b *Buffer) Take() string {
	s := string(b.text)
	b.text = b.text[:0]
	b.cursor = 0
	return s
}
