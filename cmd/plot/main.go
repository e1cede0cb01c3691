package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/midbel/plotgraph"
	"github.com/midbel/plotgraph/dash"
	"github.com/midbel/plotgraph/dataset"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	Config  string
	Verbose bool

	Data    string
	Format  string
	Sheet   string
	Kind    string
	Kinds   []string
	X       string
	Y       string
	Screen  float64
	Title   string
	Palette string
	Output  string
}

func (o *options) bind(set *pflag.FlagSet) {
	set.StringVarP(&o.Config, "config", "c", "", "configuration file")
	set.BoolVarP(&o.Verbose, "verbose", "v", false, "log each render pass")
	set.StringVarP(&o.Data, "data", "d", "", "dataset file (csv, tsv, json, xlsx)")
	set.StringVar(&o.Format, "format", "", "dataset format when it can not be guessed from the file name")
	set.StringVar(&o.Sheet, "sheet", "", "sheet to read from a workbook")
	set.StringVarP(&o.Kind, "kind", "k", "", "chart kind: scatter, line, bar or pie")
	set.StringSliceVar(&o.Kinds, "kinds", nil, "enabled chart kinds")
	set.StringVarP(&o.X, "x", "x", "", "column used for the x axis")
	set.StringVarP(&o.Y, "y", "y", "", "column used for the y axis")
	set.Float64Var(&o.Screen, "screen", 0, "available width")
	set.StringVarP(&o.Title, "title", "t", "", "chart title")
	set.StringVar(&o.Palette, "palette", "", "palette: warm, rainbow, category10, tableau10")
	set.StringVarP(&o.Output, "output", "o", "", "output file")
}

// config loads the configuration file and applies the flags set on the
// command line on top of it.
func (o *options) config(set *pflag.FlagSet) (dash.Config, error) {
	cfg, err := dash.Load(o.Config)
	if err != nil {
		return cfg, err
	}
	if set.Changed("data") {
		cfg.Data.Path = o.Data
	}
	if set.Changed("format") {
		f, err := dataset.ParseFormat(o.Format)
		if err != nil {
			return cfg, err
		}
		cfg.Data.Format = f
	}
	if set.Changed("sheet") {
		cfg.Data.Sheet = o.Sheet
	}
	if set.Changed("kinds") {
		cfg.Kinds = o.Kinds
	}
	if set.Changed("kind") {
		cfg.Kind = o.Kind
	}
	if set.Changed("x") {
		cfg.X = o.X
	}
	if set.Changed("y") {
		cfg.Y = o.Y
	}
	if set.Changed("screen") {
		cfg.Screen = o.Screen
	}
	if set.Changed("title") {
		cfg.Title = o.Title
	}
	if set.Changed("palette") {
		cfg.Style.Palette = o.Palette
		if _, err := cfg.Style.Colorer(plotgraph.Scatter); err != nil {
			return cfg, err
		}
	}
	if set.Changed("output") {
		cfg.Path = o.Output
	}
	return cfg, nil
}

func (o *options) logger() *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// board loads the dataset of cfg into a new board. The board uses clock as
// time source when it is not nil.
func (o *options) board(cfg dash.Config, clock func() time.Time) (*dash.Board, error) {
	data, err := cfg.Dataset()
	if err != nil {
		return nil, err
	}
	b, err := dash.New(cfg, o.logger())
	if err != nil {
		return nil, err
	}
	if clock != nil {
		b.SetClock(clock)
	}
	b.SetDataset(data)
	return b, nil
}

func main() {
	var opts options
	root := &cobra.Command{
		Use:           "plot",
		Short:         "Draw a dataset as a scatter, line, bar or pie chart",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.bind(root.PersistentFlags())

	root.AddCommand(
		renderCommand(&opts),
		framesCommand(&opts),
		tableCommand(&opts),
		serveCommand(&opts),
	)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
