package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/models"
)

// readPassword takes the flag value, or the first line of stdin when the flag is empty.
func readPassword(in io.Reader, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.NewValidationError("password", "pass --password or pipe it on stdin")
	}
	return line, nil
}

func printIdentity(app *App, cmd *cobra.Command, opts *outputOpts, identity *models.Identity) error {
	out := cmd.OutOrStdout()
	if opts.json {
		return printJSON(out, identity)
	}
	fmt.Fprintf(out, "%s <%s>\n", app.paint(colorBold, identity.Username), identity.Email)
	fmt.Fprintf(out, "solved: %d  attempted: %d\n", len(identity.SolvedProblems), len(identity.AttemptedProblems))
	return nil
}

func newLoginCmd(app *App, opts *outputOpts) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		// A rejected login says nothing about the stored token, so no runE wrapper.
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd.InOrStdin(), password)
			if err != nil {
				return err
			}
			identity, err := app.Sessions.Login(cmd.Context(), email, pw)
			if err != nil {
				return err
			}
			return printIdentity(app, cmd, opts, identity)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRegisterCmd(app *App, opts *outputOpts) *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd.InOrStdin(), req.Password)
			if err != nil {
				return err
			}
			req.Password = pw
			identity, err := app.Sessions.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printIdentity(app, cmd, opts, identity)
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "Display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Account password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Sessions.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App, opts *outputOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			identity, err := app.Sessions.Whoami(cmd.Context())
			if err != nil {
				return err
			}
			return printIdentity(app, cmd, opts, identity)
		}),
	}
}
