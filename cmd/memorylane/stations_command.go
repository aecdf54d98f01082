package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"memorylane/internal/album"
	"memorylane/internal/api"
)

func newStationsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var showSkipped bool

	cmd := &cobra.Command{
		Use:   "stations",
		Short: "Load the album and list the stations it would render",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			loader, err := album.NewFromConfig(cfg, ctx.cliLogger())
			if err != nil {
				return err
			}
			session, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}
			resp := api.FromSession(session)
			if asJSON {
				return writeJSON(cmd, resp)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderStations(resp))
			if resp.Origin == string(album.OriginDemo) {
				fmt.Fprintf(out, "Showing demo stations (%s)\n", fallbackText(resp.FallbackReason))
			}
			if len(resp.Skipped) > 0 {
				fmt.Fprintf(out, "%d undated photo(s) skipped\n", len(resp.Skipped))
				if showSkipped {
					for _, name := range resp.Skipped {
						fmt.Fprintf(out, "  %s\n", name)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the album payload as JSON")
	cmd.Flags().BoolVar(&showSkipped, "skipped", false, "List the names of undated photos")
	return cmd
}

func renderStations(resp api.AlbumResponse) string {
	cols := []column{
		{Header: "#", Right: true},
		{Header: "Date"},
		{Header: ""},
		{Header: "Title"},
		{Header: "Photos", Right: true},
		{Header: "State"},
	}
	rows := make([][]string, 0, len(resp.Stations))
	for _, st := range resp.Stations {
		date := st.DisplayDate
		if date == "" {
			date = st.DateKey
		}
		state := "locked"
		if st.Unlocked {
			state = "unlocked"
		}
		rows = append(rows, []string{
			strconv.Itoa(st.Index + 1),
			date,
			st.Emblem,
			st.Title,
			strconv.Itoa(st.PhotoCount),
			state,
		})
	}
	footer := fmt.Sprintf("%s: %d stations", strings.TrimSpace(resp.Title), len(resp.Stations))
	return renderTable(cols, rows, footer)
}

func fallbackText(reason string) string {
	switch reason {
	case album.ReasonFetchFailed:
		return "storage listing failed"
	case album.ReasonEmpty:
		return "folder is empty"
	case album.ReasonUndated:
		return "no photo names carry a date"
	case "":
		return "no reason recorded"
	default:
		return reason
	}
}
