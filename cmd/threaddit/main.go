package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"threaddit/internal/config"
	"threaddit/internal/logging"
	"threaddit/internal/tui"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "something went wrong with the application, check logs")
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "threaddit",
	Short: "Threaddit - browse Reddit from the terminal",
	Long: `Threaddit is a full-screen terminal Reddit browser.

It needs a registered script app: set USER_AGENT, CLIENT_ID and CLIENT_SECRET
in the environment or a .env file. REDDIT_USERNAME and REDDIT_PASSWORD are
optional; when absent you are prompted for them at startup.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		log, closer, err := logging.Open(config.ErrorLogFile, config.CombinedLogFile)
		if err != nil {
			return err
		}
		defer closer.Close()

		log.Info("validating env config")
		creds := config.LoadCredentials()
		if !creds.HasAppIdentity() {
			// Fatal at bootstrap: without the app identity no client can exist.
			log.Error("missing app identity in environment")
			return fmt.Errorf("USER_AGENT, CLIENT_ID and CLIENT_SECRET must be set")
		}

		theme, err := config.LoadTheme()
		if err != nil {
			log.Error("failed to load theme", "error", err)
			return err
		}

		if err := tui.Run(creds, theme, log); err != nil {
			log.Error("application failed", "error", err)
			return err
		}
		return nil
	},
}
