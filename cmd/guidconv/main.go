package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/5amu/guidconv/internal/config"
	"github.com/5amu/guidconv/internal/printer"
	"github.com/5amu/guidconv/internal/shell"
	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

type Options struct {
	Values struct {
		VALUES []string `description:"Guid or Raw Hex values to convert"`
	} `positional-args:"yes"`
	Config  string `short:"c" long:"config" description:"Provide a YAML config file"`
	Explain bool   `short:"e" long:"explain" description:"Show the GUID struct fields of each converted value"`
	History bool   `long:"history" description:"Print the session history on exit"`
	NoColor bool   `long:"no-color" description:"Disable colored output"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`
}

func (o *Options) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.Config != "" {
		var err error
		if cfg, err = config.Read(o.Config); err != nil {
			return nil, err
		}
	}
	if o.Explain {
		cfg.Explain = true
	}
	if o.NoColor {
		cfg.Color = false
	}
	if o.Verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

func (o *Options) Run(ctx context.Context, in *os.File, out io.Writer) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if !cfg.Color {
		color.NoColor = true
	}

	interactive := len(o.Values.VALUES) == 0 && isatty.IsTerminal(in.Fd())
	if interactive {
		out = shell.NewCRLFWriter(out)
	}

	prt := printer.NewPrinter().SetConfigs(printer.NewPrinterConfig(out, cfg))
	sh := shell.New(prt, cfg)

	switch {
	case len(o.Values.VALUES) > 0:
		for _, v := range o.Values.VALUES {
			sh.Submit(v)
		}
	case interactive:
		log.Debugln("[guidconv] interactive mode")
		err = sh.RunTerminal(ctx, in)
	default:
		log.Debugln("[guidconv] reading lines from stdin")
		err = sh.RunLines(ctx, in)
	}

	if o.History {
		prt.PrintHistory()
	}
	return err
}

func main() {
	p := flags.NewNamedParser("guidconv", flags.Default)

	var opts Options
	if _, err := p.AddGroup("Application Options", "", &opts); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if _, err := p.Parse(); err != nil {
		os.Exit(1)
	}

	if err := opts.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
