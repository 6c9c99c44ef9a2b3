package printer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/5amu/guidconv/internal/config"
	"github.com/5amu/guidconv/internal/converter"
	"github.com/5amu/guidconv/pkg/encoder"
	"github.com/fatih/color"
	"github.com/rodaine/table"
)

type Formatter func(string, ...interface{}) string

type Printer struct {
	config  *PrinterConfig
	mutex   sync.Mutex
	history []converter.Result
}

type PrinterConfig struct {
	Writer               io.Writer
	HeaderFormatter      Formatter
	FirstColumnFormatter Formatter
	OutputFormatter      Formatter
	SuccessFormatter     Formatter
	SuccessSymbol        string
	FailureFormatter     Formatter
	FailureSymbol        string
}

func DefaultPrinterConfig() *PrinterConfig {
	return &PrinterConfig{
		Writer:               os.Stdout,
		HeaderFormatter:      color.New(color.FgGreen, color.Underline).SprintfFunc(),
		FirstColumnFormatter: color.New(color.FgYellow).SprintfFunc(),
		OutputFormatter:      color.New(color.FgHiYellow).SprintfFunc(),
		SuccessFormatter:     color.New(color.FgGreen, color.Bold).SprintfFunc(),
		FailureFormatter:     color.New(color.FgRed, color.Bold).SprintfFunc(),
		SuccessSymbol:        converter.SuccessSymbol,
		FailureSymbol:        converter.FailureSymbol,
	}
}

// PlainPrinterConfig has no escape sequences at all, whatever the terminal.
func PlainPrinterConfig(w io.Writer) *PrinterConfig {
	return &PrinterConfig{
		Writer:               w,
		HeaderFormatter:      fmt.Sprintf,
		FirstColumnFormatter: fmt.Sprintf,
		OutputFormatter:      fmt.Sprintf,
		SuccessFormatter:     fmt.Sprintf,
		FailureFormatter:     fmt.Sprintf,
		SuccessSymbol:        converter.SuccessSymbol,
		FailureSymbol:        converter.FailureSymbol,
	}
}

// NewPrinterConfig builds a printer config from the user configuration.
func NewPrinterConfig(w io.Writer, cfg *config.Config) *PrinterConfig {
	var pc *PrinterConfig
	if cfg.Color {
		pc = DefaultPrinterConfig()
		pc.Writer = w
	} else {
		pc = PlainPrinterConfig(w)
	}
	pc.SuccessSymbol = cfg.Symbols.Success
	pc.FailureSymbol = cfg.Symbols.Failure
	return pc
}

func NewPrinter() *Printer {
	return &Printer{config: DefaultPrinterConfig()}
}

func (p *Printer) SetConfigs(cfg *PrinterConfig) *Printer {
	p.config = cfg
	return p
}

func (p *Printer) Writer() io.Writer {
	return p.config.Writer
}

// Status renders the one line status of a result without printing it.
func (p *Printer) Status(r converter.Result) string {
	if r.OK() {
		return fmt.Sprintf("%s%s", p.config.SuccessFormatter("%s ", p.config.SuccessSymbol), p.config.OutputFormatter("%s", r.Message()))
	}
	return fmt.Sprintf("%s%s", p.config.FailureFormatter("%s ", p.config.FailureSymbol), r.Message())
}

// PrintResult writes the status line and records the result in the history.
func (p *Printer) PrintResult(r converter.Result) {
	p.Store(r)
	fmt.Fprintln(p.config.Writer, p.Status(r))
}

func (p *Printer) Print(msg string) {
	fmt.Fprintln(p.config.Writer, msg)
}

func (p *Printer) PrintInfo(msg string) {
	fmt.Fprintln(p.config.Writer, p.config.FirstColumnFormatter("%s", msg))
}

func (p *Printer) Store(r converter.Result) {
	p.mutex.Lock()
	p.history = append(p.history, r)
	p.mutex.Unlock()
}

func (p *Printer) History() []converter.Result {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	out := make([]converter.Result, len(p.history))
	copy(out, p.history)
	return out
}

func (p *Printer) newTable(columns ...interface{}) table.Table {
	tbl := table.New(columns...)
	tbl.WithWriter(p.config.Writer)
	tbl.WithHeaderFormatter(table.Formatter(p.config.HeaderFormatter)).WithFirstColumnFormatter(table.Formatter(p.config.FirstColumnFormatter))
	return tbl
}

// PrintHistory prints every stored result, oldest first.
func (p *Printer) PrintHistory() {
	h := p.History()
	if len(h) == 0 {
		return
	}
	tbl := p.newTable("#", "Input", "Shape", "Result")
	for i, r := range h {
		tbl.AddRow(strconv.Itoa(i+1), r.Input, r.Shape, r.String())
	}
	fmt.Fprintln(p.config.Writer)
	tbl.Print()
	fmt.Fprintln(p.config.Writer)
}

// PrintFields shows how a converted identifier maps onto the platform
// GUID struct and both textual forms.
func (p *Printer) PrintFields(r converter.Result) {
	if !r.OK() {
		return
	}
	f := encoder.Fields(r.ID)
	mixed := encoder.ToMixed(r.ID)

	tbl := p.newTable("Field", "Value", "Natural", "Raw")
	tbl.AddRow("Data1", fmt.Sprintf("0x%08X", f.Data1), fmt.Sprintf("%X", r.ID[0:4]), fmt.Sprintf("%X", mixed[0:4]))
	tbl.AddRow("Data2", fmt.Sprintf("0x%04X", f.Data2), fmt.Sprintf("%X", r.ID[4:6]), fmt.Sprintf("%X", mixed[4:6]))
	tbl.AddRow("Data3", fmt.Sprintf("0x%04X", f.Data3), fmt.Sprintf("%X", r.ID[6:8]), fmt.Sprintf("%X", mixed[6:8]))
	tbl.AddRow("Data4", fmt.Sprintf("%X", f.Data4[:]), fmt.Sprintf("%X", r.ID[8:16]), fmt.Sprintf("%X", mixed[8:16]))
	tbl.AddRow("GUID", encoder.EncodeCanonical(r.ID), "", "")
	tbl.AddRow("Raw Hex", encoder.EncodeRawHex(r.ID), "", "")
	tbl.AddRow("Struct", f.String(), "", "")
	fmt.Fprintln(p.config.Writer)
	tbl.Print()
	fmt.Fprintln(p.config.Writer)
}
