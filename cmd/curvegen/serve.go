package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/ukaji3/curvegen-go/internal/server"
	"github.com/ukaji3/curvegen-go/pkg/curvegen"
)

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the export pipeline over HTTP",
		Long: heredoc.Doc(`
			Serve accepts JSON curve documents:

			  POST /rows    returns the daily rows as JSON
			  POST /export  returns an xlsx attachment
		`),
		Example: heredoc.Doc(`
			$ curvegen serve --addr :8080 --mode verbose
		`),
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.bindFlags(cmd, map[string]string{
				"addr":  "addr",
				"mode":  "mode",
				"sheet": "sheet",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options()
			if err != nil {
				return err
			}

			srv := server.New(server.Config{
				Addr:      c.v.GetString("addr"),
				Options:   opts,
				Logger:    c.log,
				AccessLog: true,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Listen() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				c.log.Info("Shutting down")
				return srv.Shutdown()
			}
		},
	}

	cmd.Flags().String("addr", ":3000", "Listen address")
	cmd.Flags().String("mode", string(curvegen.ModeStandard), "Workbook mode: light, standard, verbose")
	cmd.Flags().String("sheet", curvegen.DefaultSheetName, "Data sheet name")

	return cmd
}
