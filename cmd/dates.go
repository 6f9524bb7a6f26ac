package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"opensession-curator/internal/histdata"
	"opensession-curator/internal/model"

	"github.com/spf13/cobra"
)

var (
	datesBaseURL string
	datesShow    string
)

// datesCmd lists the dated snapshots reachable for a category, the
// same trailing-window scan the site's date selector performs.
var datesCmd = &cobra.Command{
	Use:   "dates <category>",
	Short: "List available historical dates for a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := model.ParseCategory(args[0])
		if err != nil {
			return err
		}
		base := strings.TrimRight(datesBaseURL, "/") + "/data/" + cat.Dir()

		r := histdata.NewResolver(base)
		if err := r.FetchAvailableDates(cmd.Context()); err != nil {
			return err
		}
		dates := r.AvailableDates()
		if len(dates) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No dated snapshots in the last 30 days.")
			return nil
		}
		for _, d := range dates {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}

		if datesShow != "" {
			reader := histdata.NewReader(base)
			body, fellBack, err := reader.Fetch(cmd.Context(), datesShow)
			if err != nil {
				return err
			}
			if fellBack {
				fmt.Fprintf(cmd.ErrOrStderr(), "snapshot %s not found, showing latest\n", datesShow)
			}
			var pretty map[string]any
			if err := json.Unmarshal(body, &pretty); err != nil {
				return err
			}
			out, err := json.MarshalIndent(pretty, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datesCmd)
	datesCmd.Flags().StringVar(&datesBaseURL, "base-url", "http://127.0.0.1:8080", "artifact server base URL")
	datesCmd.Flags().StringVar(&datesShow, "show", "", "also fetch and print the snapshot for this date (YYYY-MM-DD)")
}
