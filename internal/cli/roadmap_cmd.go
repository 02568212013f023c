package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/roadmap"
)

func newRoadmapsCmd(app *App, opts *outputOpts) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "roadmaps [slug]",
		Short: "List learning roadmaps, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				rm, err := roadmap.BySlug(args[0])
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(out, rm)
				}
				fmt.Fprintf(out, "%s\n%s\n%d weeks, %s\n", app.paint(colorBold, rm.Title), rm.Description, rm.DurationWeeks, rm.Level)
				for _, t := range rm.Topics {
					fmt.Fprintf(out, "  - %s\n", t)
				}
				return nil
			}

			list, err := roadmap.ByLevel(models.TopicLevel(level))
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(out, list)
			}
			w := newTable(out)
			fmt.Fprintln(w, "SLUG\tTITLE\tWEEKS\tLEVEL\tTOPICS")
			for _, rm := range list {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", rm.Slug, rm.Title, rm.DurationWeeks, rm.Level, strings.Join(rm.Topics, ", "))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&level, "level", string(models.LevelAll), "all, beginner, intermediate or advanced")
	return cmd
}
