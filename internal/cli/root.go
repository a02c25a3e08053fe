// Package cli wires the ForeSky commands to the sync engine.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/foreskyapp/foresky-cli/internal/config"
	"github.com/foreskyapp/foresky-cli/internal/di"
	"github.com/foreskyapp/foresky-cli/internal/session"
)

// App carries the DI container across a command invocation.
type App struct {
	injector *do.RootScope
}

// New builds the root command with every subcommand attached.
func New() *cobra.Command {
	app := &App{}
	ov := config.Overrides{}

	root := &cobra.Command{
		Use:           "foresky",
		Short:         "ForeSky notes from the terminal",
		Long:          "foresky keeps your ForeSky notes and tags at hand from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			injector := di.NewContainer(ov)
			if err := di.Bootstrap(injector); err != nil {
				return err
			}
			app.injector = injector

			// A forced sign-out can land mid-command when the server
			// rejects the stored token. Tell the user before the
			// command's own error surfaces. An explicit logout is not
			// an expiry and stays silent here.
			sess := do.MustInvoke[*session.Manager](injector)
			sess.Subscribe(func(_ session.State, reason session.Reason) {
				if reason == session.ReasonExpired {
					fmt.Fprintln(os.Stderr, color.YellowString("Your session has expired. Run `foresky login` to sign in again."))
				}
			})
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app.injector == nil {
				return nil
			}
			return app.injector.Shutdown()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&ov.BaseURL, "api-url", "", "API base URL (default: FORESKY_API_URL or http://localhost:8000)")
	pf.StringVar(&ov.DataDir, "data-dir", "", "local state directory (default: ~/.foresky)")
	pf.StringVar(&ov.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&ov.Environment, "env", "", "environment name (development or production)")

	addLogin(root, app)
	addLogout(root, app)
	addRegister(root, app)
	addVerify(root, app)
	addResend(root, app)
	addWhoami(root, app)
	addStats(root, app)
	addNotes(root, app)
	addTags(root, app)
	addTheme(root, app)
	addPing(root, app)

	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		return 1
	}
	return 0
}
