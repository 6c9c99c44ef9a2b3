package shell

import (
	"bytes"
	"context"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// crlfWriter restores the carriage return that raw mode stops the
// terminal from adding after each newline.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

func NewCRLFWriter(w io.Writer) io.Writer {
	return crlfWriter{w: w}
}

// RunTerminal puts the terminal on in into raw mode for the duration of
// the session.
func (s *Shell) RunTerminal(ctx context.Context, in *os.File) error {
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer func() {
		if err := term.Restore(fd, state); err != nil {
			log.Errorln("[shell] failed to restore terminal", err)
		}
	}()
	return s.RunKeys(ctx, in)
}
