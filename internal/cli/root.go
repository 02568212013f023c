package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vytor/dsaportal/internal/repository"
	"github.com/vytor/dsaportal/internal/services"
	"github.com/vytor/dsaportal/internal/session"
)

// App holds everything the commands need.
type App struct {
	Portal   services.PortalService
	Sessions services.SessionService
	Session  *session.Store
	// SyncLog is optional; without it "history" reports nothing.
	SyncLog repository.SyncRepository
	// Serve runs the BFF until ctx is cancelled. Nil disables "serve".
	Serve func(ctx context.Context, addr string) error
	// Addr is the default listen address for "serve".
	Addr string
	// Colors enables ANSI colors in text output.
	Colors bool
}

type outputOpts struct {
	json bool
}

// NewRootCmd creates the top-level "portal" command and registers all subcommands.
func NewRootCmd(app *App) *cobra.Command {
	opts := &outputOpts{}

	root := &cobra.Command{
		Use:           "portal",
		Short:         "Browse DSA topics, sheets and your progress from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Print JSON instead of text")

	root.AddCommand(
		newLoginCmd(app, opts),
		newRegisterCmd(app, opts),
		newLogoutCmd(app),
		newWhoamiCmd(app, opts),
		newDashboardCmd(app, opts),
		newTopicsCmd(app, opts),
		newTopicCmd(app, opts),
		newSheetsCmd(app, opts),
		newSheetCmd(app, opts),
		newCompleteCmd(app, opts),
		newRoadmapsCmd(app, opts),
		newHistoryCmd(app, opts),
		newServeCmd(app),
	)
	return root
}

// runE adapts fn into a cobra RunE that signs out when the portal rejects the token.
func (app *App) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err != nil && app.Session != nil && app.Session.ClearOnAuthError(cmd.Context(), err) {
			return &signedOutError{err: err}
		}
		return err
	}
}

type signedOutError struct {
	err error
}

func (e *signedOutError) Error() string {
	return e.err.Error() + " (signed out, run \"portal login\")"
}

func (e *signedOutError) Unwrap() error { return e.err }
