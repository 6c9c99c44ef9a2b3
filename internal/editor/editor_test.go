package editor_test

import (
	"testing"

	"github.com/5amu/guidconv/internal/editor"
	"github.com/stretchr/testify/assert"
)

func TestBuffer_InsertAndMove(t *testing.T) {
	b := editor.New()
	b.InsertString("abd")
	assert.Equal(t, 3, b.Cursor())

	b.Left()
	b.Insert('c')
	assert.Equal(t, "abcd", b.String())
	assert.Equal(t, 3, b.Cursor())

	for i := 0; i < 10; i++ {
		b.Right()
	}
	assert.Equal(t, 4, b.Cursor())

	for i := 0; i < 10; i++ {
		b.Left()
	}
	assert.Equal(t, 0, b.Cursor())

	b.Insert('_')
	assert.Equal(t, "_abcd", b.String())
}

func TestBuffer_Backspace(t *testing.T) {
	b := editor.New()
	b.Backspace()
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Cursor())

	b.InsertString("héllo")
	b.Left()
	b.Left()
	b.Left()
	b.Backspace()
	assert.Equal(t, "hllo", b.String())
	assert.Equal(t, 1, b.Cursor())
	assert.Equal(t, 4, b.Len())

	b.Left()
	b.Backspace()
	assert.Equal(t, "hllo", b.String())
}

func TestBuffer_Take(t *testing.T) {
	b := editor.New()
	b.InsertString("01020304")
	b.Left()

	assert.Equal(t, "01020304", b.Take())
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Cursor())

	b.Insert('x')
	assert.Equal(t, "x", b.String())
}

func TestBuffer_Head(t *testing.T) {
	b := editor.New()
	assert.Equal(t, "", b.Head())

	b.InsertString("a世b")
	b.Left()
	assert.Equal(t, "a世", b.Head())
	b.Left()
	b.Left()
	assert.Equal(t, "", b.Head())
}
