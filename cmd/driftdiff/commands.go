package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arroyodata/driftdiff"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

// MainConfig holds the flag surface of the driftdiff command
type MainConfig struct {
	Color  string `cli:"name=color desc='colorize output: auto, always, never'"`
	Stats  bool   `cli:"name=stats desc='append a one-line summary to the report'"`
	JSON   bool   `cli:"name=json desc='emit structured records as JSON instead of text'"`
	Filter string `cli:"name=filter desc='keep only records matching this expression over path and kind'"`
	Format string `cli:"name=I aliases=ifmt desc='input format: json, yaml (default: by file extension)'"`

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{Color: "auto"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "driftdiff").
		WithSynopsis("driftdiff [opts] <baseline> <candidate>").
		WithDescription("driftdiff compares two JSON or YAML documents, reporting structural\n" +
			"differences and numeric drift. purely numeric arrays are compared by their\n" +
			"summary statistics rather than element by element.\n\n" +
			"exit status: 0 when the documents are equivalent, 1 when differences were\n" +
			"found, 2 on usage or input errors.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func run(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(2)
	}
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Error: driftdiff requires 2 arguments, got %d\n", len(args))
		cfg.Main.Usage(cc, cli.ErrUsage)
		return cli.ExitCodeErr(2)
	}

	a, err := loadDocument(args[0], cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitCodeErr(2)
	}
	b, err := loadDocument(args[1], cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitCodeErr(2)
	}

	summary := &driftdiff.Summary{}
	recs := driftdiff.New(driftdiff.OptionSetSummary(summary)).Compare(a, b)

	if cfg.Filter != "" {
		recs, err = driftdiff.Filter(recs, cfg.Filter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return cli.ExitCodeErr(2)
		}
	}

	if cfg.JSON {
		enc := json.NewEncoder(cc.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(recs); err != nil {
			fmt.Fprintf(os.Stderr, "Error: encoding records: %v\n", err)
			return cli.ExitCodeErr(2)
		}
	} else {
		colorized := useColor(cfg.Color, cc.Out)
		if err := driftdiff.WriteReport(cc.Out, args[0], args[1], recs, colorized); err != nil {
			return err
		}
		if cfg.Stats {
			fmt.Fprint(cc.Out, driftdiff.FormatSummary(summary, colorized))
		}
	}

	if len(recs) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// useColor decides whether the report written to out should carry ANSI
// color. auto mode probes out itself, not os.Stdout, since the command
// context may redirect output
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := out.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
