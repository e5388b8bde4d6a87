package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frsk-dev/devhub/internal/branding"
	"github.com/frsk-dev/devhub/internal/config"
	"github.com/frsk-dev/devhub/internal/output"
	"github.com/frsk-dev/devhub/internal/updater"
)

var updateCheck bool

func init() {
	updateCmd.Flags().BoolVar(&updateCheck, "check", true, "Only check for updates (the only supported mode)")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check the npm registry for a newer release",
	Long: `Asks the npm registry for the latest published version and reports whether
an upgrade is available. Nothing is downloaded; upgrade with npm itself.

  devhub update --check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !updateCheck {
			return fmt.Errorf("%s does not replace itself; run `npm install -g %s`", branding.CLIName(), branding.NPMPackage())
		}

		store, err := config.Load(config.Dir())
		if err != nil {
			return err
		}
		settings := store.Settings()

		u := updater.New(buildVersion, updater.WithRegistry(settings.RegistryURL))

		ctx, cancel := context.WithTimeout(cmd.Context(), updater.RefreshTimeout)
		defer cancel()

		out := cmd.OutOrStdout()
		fmt.Fprintln(cmd.ErrOrStderr(), "Checking for updates...")

		// Development builds have no comparable version.
		if !updater.IsReleaseBuild(buildVersion) {
			latest, err := u.LatestVersion(ctx)
			if err != nil {
				return fmt.Errorf("checking for updates: %w", err)
			}
			fmt.Fprintf(out, "Latest published version is %s (running a development build)\n", latest.Version)
			return nil
		}

		result, err := u.Check(ctx)
		if err != nil {
			return fmt.Errorf("checking for updates: %w", err)
		}
		_ = updater.SaveCache(config.Dir(), u.Record(result))

		if result.UpdateAvailable {
			updater.PrintUpdateBanner(out, result.Current, result.Latest, u.Package())
			return nil
		}
		fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("You are on the latest version (%s)", buildVersion)))
		return nil
	},
}
