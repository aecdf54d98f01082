package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"memorylane/internal/client"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a host is serving the album",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			c, err := client.New(cfg.Paths.APIBind, cfg.Paths.APIToken)
			if err != nil {
				return err
			}
			status, err := c.Status(cmd.Context())
			unavailable := errors.Is(err, client.ErrAPIUnavailable)
			if err != nil && !unavailable {
				return err
			}
			if asJSON {
				return writeJSON(cmd, status)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderSectionHeader("memorylane", colorize))
			if unavailable {
				fmt.Fprintln(out, renderStatusLine("Host", statusError, "Not running", colorize))
				fmt.Fprintln(out, renderStatusLine("Address", statusInfo, cfg.Paths.APIBind, colorize))
				return nil
			}
			fmt.Fprintln(out, renderStatusLine("Host", statusOK, fmt.Sprintf("Running (pid %d)", status.PID), colorize))
			fmt.Fprintln(out, renderStatusLine("Address", statusInfo, cfg.Paths.APIBind, colorize))
			fmt.Fprintln(out, renderStatusLine("Backend", statusInfo, status.Backend, colorize))
			fmt.Fprintln(out, renderStatusLine("Folder", statusInfo, status.Folder, colorize))
			if status.Uptime != "" {
				fmt.Fprintln(out, renderStatusLine("Uptime", statusInfo, status.Uptime, colorize))
			}
			fmt.Fprintln(out, renderStatusLine("Lock", statusInfo, status.LockFilePath, colorize))
			fmt.Fprintln(out, renderStatusLine("Token required", statusInfo, yesNo(cfg.Paths.APIToken != ""), colorize))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the status payload as JSON")
	return cmd
}
