package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/frsk-dev/devhub/internal/branding"
	"github.com/frsk-dev/devhub/internal/config"
	"github.com/frsk-dev/devhub/internal/output"
	"github.com/frsk-dev/devhub/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds ready-to-run project boilerplates: static sites,
React, Electron and Vue apps, and FiveM/RedM server resources.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLogging(verbose)

		// Skip the banner for commands that report versions themselves.
		name := cmd.Name()
		if name == "update" || name == "version" {
			return
		}
		if !updater.IsReleaseBuild(buildVersion) {
			return
		}

		store, err := config.Load(config.Dir())
		if err != nil {
			output.Debug("skipping update check", "err", err)
			return
		}
		settings := store.Settings()
		if !settings.UpdateCheck {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion, updater.WithRegistry(settings.RegistryURL))
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		msg := "Error"
		if cmd != nil && cmd.Name() == createCmd.Name() {
			msg = "Error creating project"
		}
		output.Error(msg, "err", err)
	}
	return err
}
