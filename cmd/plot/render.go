package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/plotgraph"
	"github.com/midbel/plotgraph/dash"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func renderCommand(opts *options) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the final state of the chart as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd.Flags())
			if err != nil {
				return err
			}
			if all {
				return renderAll(opts, cfg)
			}
			b, err := opts.board(cfg, nil)
			if err != nil {
				return err
			}
			if err := b.Pass().Err; err != nil {
				return err
			}
			return writeTo(cfg.Path, func(w io.Writer) error {
				b.Render(w, b.Pass().Duration())
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "render every enabled kind in its own file")
	return cmd
}

// renderAll draws each enabled kind with its own board. Output files are
// named after the configured path with the kind as suffix.
func renderAll(opts *options, cfg dash.Config) error {
	set, err := cfg.Enabled()
	if err != nil {
		return err
	}
	data, err := cfg.Dataset()
	if err != nil {
		return err
	}
	var grp errgroup.Group
	for _, k := range set.Kinds() {
		grp.Go(func() error {
			c := cfg
			c.Kind = k.String()

			b, err := dash.New(c, opts.logger())
			if err != nil {
				return err
			}
			pass := b.SetDataset(data)
			if pass.Err != nil {
				return fmt.Errorf("%s: %w", k, pass.Err)
			}
			return writeTo(kindPath(cfg.Path, k), func(w io.Writer) error {
				b.Render(w, pass.Duration())
				return nil
			})
		})
	}
	return grp.Wait()
}

func kindPath(file string, kind plotgraph.ChartKind) string {
	if file == "" || file == "-" {
		file = dash.DefaultPath
	}
	ext := filepath.Ext(file)
	return fmt.Sprintf("%s-%s%s", strings.TrimSuffix(file, ext), kind, ext)
}

func writeTo(file string, fn func(io.Writer) error) error {
	if file == "" || file == "-" {
		return fn(os.Stdout)
	}
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer w.Close()
	return fn(w)
}
