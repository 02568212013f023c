package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vytor/dsaportal/internal/models"
)

func newDashboardCmd(app *App, opts *outputOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show solved counts, streak and per-topic completion",
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			dash, err := app.Portal.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.json {
				return printJSON(out, dash)
			}

			fmt.Fprintf(out, "%s\n", app.paint(colorBold, dash.Identity.Username))
			fmt.Fprintf(out, "solved: %d  attempted: %d  streak: %d days\n\n",
				dash.Stats.SolvedCount, dash.Stats.AttemptedCount, dash.Stats.StreakDays)

			ids := make([]string, 0, len(dash.Stats.PerTopicCompletion))
			for id := range dash.Stats.PerTopicCompletion {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			w := newTable(out)
			fmt.Fprintln(w, "TOPIC\tPROGRESS\t")
			for _, id := range ids {
				c := dash.Stats.PerTopicCompletion[id]
				fmt.Fprintf(w, "%s\t%s\t%d/%d\n", id, bar(c.Solved, c.Total, 20), c.Solved, c.Total)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out)
			if !dash.Activity.Available {
				fmt.Fprintln(out, app.paint(colorDim, "No recent activity data."))
				return nil
			}
			fmt.Fprintln(out, "Recent activity:")
			for _, a := range dash.Activity.Items {
				fmt.Fprintf(out, "  %s %s %s\n", a.At.Format("2006-01-02"), a.Action, a.Name)
			}
			return nil
		}),
	}
}

func newTopicsCmd(app *App, opts *outputOpts) *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List topics",
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			topics, err := app.Portal.ListTopics(cmd.Context(), models.TopicLevel(difficulty))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.json {
				return printJSON(out, topics)
			}

			w := newTable(out)
			fmt.Fprintln(w, "ID\tNAME\tLEVEL\tPROBLEMS")
			for _, t := range topics {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", t.ID, t.Name, t.Difficulty, len(t.ProblemIDs))
			}
			return w.Flush()
		}),
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", string(models.LevelAll), "all, beginner, intermediate or advanced")
	return cmd
}

func newTopicCmd(app *App, opts *outputOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "topic <id>",
		Short: "Show a topic with its problems",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			detail, err := app.Portal.TopicWithProblems(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.json {
				return printJSON(out, detail)
			}

			fmt.Fprintf(out, "%s (%s)\n", app.paint(colorBold, detail.Topic.Name), detail.Topic.Difficulty)
			if detail.Topic.Description != "" {
				fmt.Fprintln(out, detail.Topic.Description)
			}
			fmt.Fprintln(out)

			solved := models.IDSet{}
			if identity, ok := app.Session.Current(); ok {
				solved = identity.SolvedProblems
			}
			w := newTable(out)
			for _, p := range detail.Problems {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", app.check(solved.Contains(p.ID)), p.ID, p.Title, p.Difficulty)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if detail.Unresolved > 0 {
				fmt.Fprintln(out, app.paint(colorDim, fmt.Sprintf("%d referenced problems are not in the catalog.", detail.Unresolved)))
			}
			return nil
		}),
	}
}

func newSheetsCmd(app *App, opts *outputOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "List practice sheets",
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			sheets, err := app.Portal.ListSheets(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.json {
				return printJSON(out, sheets)
			}

			w := newTable(out)
			fmt.Fprintln(w, "ID\tNAME\tLEVEL\tPROBLEMS")
			for _, s := range sheets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", s.ID, s.Name, s.DifficultyLevel, len(s.Problems))
			}
			return w.Flush()
		}),
	}
}

func newSheetCmd(app *App, opts *outputOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "sheet <id>",
		Short: "Show a sheet with your progress",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			detail, err := app.Portal.SheetDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.json {
				return printJSON(out, detail)
			}

			p := detail.Progress
			fmt.Fprintf(out, "%s (%s)\n", app.paint(colorBold, detail.Sheet.Name), detail.Sheet.DifficultyLevel)
			fmt.Fprintf(out, "%s %d/%d (%.0f%%)  ~%dh\n\n", bar(p.Solved, p.Total, 20), p.Solved, p.Total, p.Percent(), detail.EstimatedHours)

			solved := models.IDSet{}
			if identity, ok := app.Session.Current(); ok {
				solved = identity.SolvedProblems
			}
			w := newTable(out)
			for i, prob := range detail.Sheet.Problems {
				fmt.Fprintf(w, "%d.\t%s\t%s\t%s\n", i+1, app.check(solved.Contains(prob.ID)), prob.Title, prob.Difficulty)
			}
			return w.Flush()
		}),
	}
}

func newCompleteCmd(app *App, opts *outputOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <problem-id>",
		Short: "Mark a problem as solved",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			identity, err := app.Portal.MarkComplete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.json {
				return printJSON(out, identity)
			}
			fmt.Fprintf(out, "%s %s marked solved (%d solved)\n", app.check(true), args[0], len(identity.SolvedProblems))
			return nil
		}),
	}
}
