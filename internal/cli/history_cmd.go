package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/models"
)

func newHistoryCmd(app *App, opts *outputOpts) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent background progress pushes",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, ok := app.Session.Current()
			if !ok {
				return errors.NewAuthError(0, "not signed in")
			}
			var records []models.SyncRecord
			if app.SyncLog != nil {
				var err error
				records, err = app.SyncLog.Recent(cmd.Context(), identity.ID, limit)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if opts.json {
				if records == nil {
					records = []models.SyncRecord{}
				}
				return printJSON(out, records)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "No progress pushes recorded.")
				return nil
			}
			w := newTable(out)
			fmt.Fprintln(w, "WHEN\tPROBLEM\tSTATUS\tOUTCOME")
			for _, r := range records {
				outcome := r.Outcome
				if r.Error != "" {
					outcome += ": " + r.Error
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.AttemptedAt.Local().Format("2006-01-02 15:04"), r.ProblemID, r.Status, outcome)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of entries to show")
	return cmd
}
