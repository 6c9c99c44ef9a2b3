// Package shell feeds user input to the converter, either one line at a
// time from a pipe or keystroke by keystroke from a terminal.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/5amu/guidconv/internal/config"
	"github.com/5amu/guidconv/internal/converter"
	"github.com/5amu/guidconv/internal/editor"
	"github.com/5amu/guidconv/internal/printer"
	"github.com/mattn/go-runewidth"
	log "github.com/sirupsen/logrus"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
)

const (
	WelcomeMessage = "Welcome to GUID Converter"
	NormalHelp     = "Press [q] to exit, [e] to start editing."
	EditingHelp    = "Press [Esc] to stop editing, [Enter] to convert the Guid / Raw Hex in the input box."
)

type Shell struct {
	printer *printer.Printer
	buffer  *editor.Buffer
	mode    Mode
	prompt  string
	explain bool
}

func New(p *printer.Printer, cfg *config.Config) *Shell {
	return &Shell{
		printer: p,
		buffer:  editor.New(),
		prompt:  cfg.Prompt,
		explain: cfg.Explain,
	}
}

func (s *Shell) Mode() Mode {
	return s.mode
}

func (s *Shell) Buffer() *editor.Buffer {
	return s.buffer
}

// Submit converts one line and prints its status.
func (s *Shell) Submit(line string) converter.Result {
	r := converter.Convert(line)
	s.printer.PrintResult(r)
	if s.explain {
		s.printer.PrintFields(r)
	}
	return r
}

// RunLines converts every non blank line read from in.
func (s *Shell) RunLines(ctx context.Context, in io.Reader) error {
	r := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := r.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			s.Submit(line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// HandleKey applies one keystroke and reports whether the shell should exit.
func (s *Shell) HandleKey(k Key) bool {
	if k.Code == KeyInterrupt {
		return true
	}

	switch s.mode {
	case ModeNormal:
		if k.Code != KeyChar {
			return false
		}
		switch k.Rune {
		case 'q':
			return true
		case 'e':
			log.Debugln("[shell] editing mode")
			s.mode = ModeEditing
			s.printer.PrintInfo(EditingHelp)
			s.redraw()
		}
	case ModeEditing:
		switch k.Code {
		case KeyEnter:
			fmt.Fprintln(s.printer.Writer())
			s.Submit(s.buffer.Take())
		case KeyChar:
			s.buffer.Insert(k.Rune)
		case KeyBackspace:
			s.buffer.Backspace()
		case KeyLeft:
			s.buffer.Left()
		case KeyRight:
			s.buffer.Right()
		case KeyEsc:
			log.Debugln("[shell] normal mode")
			s.mode = ModeNormal
			fmt.Fprintln(s.printer.Writer())
			s.printer.PrintInfo(NormalHelp)
			return false
		}
		s.redraw()
	}
	return false
}

// redraw repaints the input line and puts the cursor where the buffer has
// it. The column is counted in terminal cells, not runes.
func (s *Shell) redraw() {
	w := s.printer.Writer()
	fmt.Fprintf(w, "\r\033[K%s%s\r", s.prompt, s.buffer.String())
	if col := runewidth.StringWidth(s.prompt) + runewidth.StringWidth(s.buffer.Head()); col > 0 {
		fmt.Fprintf(w, "\033[%dC", col)
	}
}

// RunKeys drives the shell from raw keystrokes until the user quits or in
// is exhausted.
func (s *Shell) RunKeys(ctx context.Context, in io.Reader) error {
	s.printer.PrintInfo(WelcomeMessage)
	s.printer.PrintInfo(NormalHelp)

	r := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		k, err := ReadKey(r)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if s.HandleKey(k) {
			fmt.Fprintln(s.printer.Writer())
			return nil
		}
	}
}
