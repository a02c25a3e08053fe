package cli

import (
	"bufio"
	"strings"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/foreskyapp/foresky-cli/internal/errors"
	"github.com/foreskyapp/foresky-cli/internal/service"
)

func readLine(cmd *cobra.Command, prompt string) (string, error) {
	cmd.Print(prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func addLogin(root *cobra.Command, app *App) {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in to ForeSky",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := do.MustInvoke[*service.AuthService](app.injector)

			if password == "" {
				var err error
				password, err = readLine(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			err := auth.Login(cmd.Context(), args[0], password)
			if errors.Is(err, errors.ErrUnverified) {
				notef(cmd, "Your account is not verified yet. Run `foresky resend %s` for a fresh verification email.", args[0])
				return err
			}
			if err != nil {
				return err
			}

			successf(cmd, "Signed in as %s", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")

	root.AddCommand(cmd)
}

func addLogout(root *cobra.Command, app *App) {
	root.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := do.MustInvoke[*service.AuthService](app.injector)
			if err := auth.Logout(); err != nil {
				return err
			}
			successf(cmd, "Signed out")
			return nil
		},
	})
}

func addRegister(root *cobra.Command, app *App) {
	var password string

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create a new ForeSky account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := do.MustInvoke[*service.AuthService](app.injector)

			confirmPassword := password
			if password == "" {
				var err error
				password, err = readLine(cmd, "Password: ")
				if err != nil {
					return err
				}
				confirmPassword, err = readLine(cmd, "Confirm password: ")
				if err != nil {
					return err
				}
			}

			user, err := auth.Register(cmd.Context(), args[0], password, confirmPassword)
			if err != nil {
				return err
			}

			successf(cmd, "Account created for %s", user.Email)
			notef(cmd, "Check your inbox for the verification email before signing in.")
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")

	root.AddCommand(cmd)
}

func addVerify(root *cobra.Command, app *App) {
	root.AddCommand(&cobra.Command{
		Use:   "verify <token>",
		Short: "Verify your account with the emailed token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := do.MustInvoke[*service.AuthService](app.injector)
			msg, err := auth.Verify(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			successf(cmd, "%s", msg)
			return nil
		},
	})
}

func addResend(root *cobra.Command, app *App) {
	root.AddCommand(&cobra.Command{
		Use:   "resend <email>",
		Short: "Request a fresh verification email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := do.MustInvoke[*service.AuthService](app.injector)
			if err := auth.Resend(cmd.Context(), args[0]); err != nil {
				return err
			}
			successf(cmd, "Verification email sent to %s", args[0])
			return nil
		},
	})
}

func addWhoami(root *cobra.Command, app *App) {
	root.AddCommand(&cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account and its stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := do.MustInvoke[*service.AuthService](app.injector)
			profile, err := auth.Profile(cmd.Context())
			if err != nil {
				return err
			}

			tbl := newTable()
			if profile.User != nil {
				verified := "no"
				if profile.User.IsVerified {
					verified = "yes"
				}
				tbl.AddRow("Email:", profile.User.Email)
				tbl.AddRow("Verified:", verified)
			}
			if profile.Stats != nil {
				tbl.AddRow("Notes:", profile.Stats.NotesCount)
				tbl.AddRow("Tags:", profile.Stats.TagsCount)
			}
			printTable(cmd, tbl)
			return nil
		},
	})
}
