package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/midbel/plotgraph"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func framesCommand(opts *options) *cobra.Command {
	var (
		dir   string
		fps   int
		kind  string
		xKey  string
		yKey  string
		final bool
	)
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Write the frames of a transition as SVG files",
		Long: `frames renders the configured chart then, if any of the --next-* flags
is given, changes the selection and writes one SVG per frame of the
transition between both states.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps <= 0 {
				return fmt.Errorf("%d: invalid frame rate", fps)
			}
			cfg, err := opts.config(cmd.Flags())
			if err != nil {
				return err
			}
			now := time.Unix(0, 0)
			board, err := opts.board(cfg, func() time.Time {
				return now
			})
			if err != nil {
				return err
			}
			pass := board.Pass()
			if kind != "" || xKey != "" || yKey != "" {
				now = now.Add(pass.Duration())
				if kind != "" {
					k, err := plotgraph.ParseKind(kind)
					if err != nil {
						return err
					}
					if pass, err = board.Activate(k); err != nil {
						return err
					}
				}
				if xKey != "" || yKey != "" {
					x, y := board.Keys()
					if xKey != "" {
						x = xKey
					}
					if yKey != "" {
						y = yKey
					}
					pass = board.SetKeys(x, y)
				}
			}
			if pass.Err != nil {
				return pass.Err
			}
			chart := plotgraph.Chart{
				Title:  cfg.Title,
				Swatch: cfg.Style.Legend.Swatch,
			}
			return writeFrames(dir, fps, final, pass, chart)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "frames", "directory where frames are written")
	cmd.Flags().IntVar(&fps, "fps", 25, "frames per second")
	cmd.Flags().StringVar(&kind, "next-kind", "", "chart kind of the second selection")
	cmd.Flags().StringVar(&xKey, "next-x", "", "x column of the second selection")
	cmd.Flags().StringVar(&yKey, "next-y", "", "y column of the second selection")
	cmd.Flags().BoolVar(&final, "final", true, "always write the final state as last frame")
	return cmd
}

func writeFrames(dir string, fps int, final bool, pass plotgraph.Pass, chart plotgraph.Chart) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var (
		step  = time.Second / time.Duration(fps)
		total = pass.Duration()
		times []time.Duration
	)
	for t := time.Duration(0); t < total; t += step {
		times = append(times, t)
	}
	if final || len(times) == 0 {
		times = append(times, total)
	}

	var grp errgroup.Group
	grp.SetLimit(runtime.NumCPU())
	for i, elapsed := range times {
		grp.Go(func() error {
			file := filepath.Join(dir, fmt.Sprintf("frame-%04d.svg", i))
			return writeTo(file, func(w io.Writer) error {
				geo := pass.Geometry
				geo.Shapes = pass.Frame(elapsed)
				chart.Render(w, geo, plotgraph.Tooltip{})
				return nil
			})
		})
	}
	return grp.Wait()
}
