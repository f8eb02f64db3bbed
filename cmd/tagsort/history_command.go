package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tagsort/internal/runlog"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent copy_sort runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Paths.HistoryDB == "" {
				return errors.New("run history is disabled (paths.history_db is empty)")
			}

			store, err := runlog.Open(cfg.Paths.HistoryDB)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.StartedAt.Local().Format("2006-01-02 15:04"),
					run.Source,
					run.Destination,
					fmt.Sprintf("%d", run.Copied),
					fmt.Sprintf("%d", run.Duplicates),
					fmt.Sprintf("%d", run.Failures),
					fmt.Sprintf("%d", run.Unsupported),
					run.FinishedAt.Sub(run.StartedAt).Round(time.Second).String(),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Source", "Destination", "Copied", "Dup", "Fail", "Unsup", "Elapsed"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}
