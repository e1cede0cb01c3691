package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/midbel/plotgraph/server"
	"github.com/spf13/cobra"
)

func serveCommand(opts *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart and its controls over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd.Flags())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			b, err := opts.board(cfg, nil)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			srv := server.New(b, cfg.Server, opts.logger())
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on")
	return cmd
}
