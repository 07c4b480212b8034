package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Gobd/fieldvalidation/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve form validation over HTTP",
		Long: `Serve exposes the loaded forms over HTTP:

  GET  /forms                  list form names
  POST /forms/{name}/validate  validate a JSON object of field values
  GET  /openapi.json           OpenAPI document for every route`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}

			file, err := a.loadForms()
			if err != nil {
				return err
			}
			srv, err := server.New(file, server.WithLogger(a.log))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, a.cfg.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $FORMCHECK_ADDR or :8080)")
	return cmd
}
