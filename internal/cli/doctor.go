package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/frsk-dev/devhub/internal/config"
	"github.com/frsk-dev/devhub/internal/output"
	"github.com/frsk-dev/devhub/internal/runner"
)

var binaryAvailable = runner.Available

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the tools devhub relies on are installed",
	Long: `Run diagnostic checks: the configured package manager and editor must be on
PATH, and the config directory must be writable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.Load(config.Dir())
		if err != nil {
			return err
		}
		settings := store.Settings()
		out := cmd.OutOrStdout()

		failed := 0
		fmt.Fprintln(out, "Tools:")
		if !checkBinary(out, settings.PackageManager, true) {
			failed++
		}
		if settings.Editor != "" {
			// A missing editor only costs the auto-open step.
			checkBinary(out, settings.Editor, false)
		}

		fmt.Fprintln(out, "Config:")
		if err := checkWritable(store.Dir()); err != nil {
			fmt.Fprintf(out, "  %s\n", output.FormatFailure(err.Error()))
			failed++
		} else {
			fmt.Fprintf(out, "  %s\n", output.FormatCheckmark(config.FilePath(store.Dir())))
		}

		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

func checkBinary(w io.Writer, name string, required bool) bool {
	if binaryAvailable(name) {
		fmt.Fprintf(w, "  %s\n", output.FormatCheckmark(name+" found"))
		return true
	}
	if required {
		fmt.Fprintf(w, "  %s\n", output.FormatFailure(name+" not found on PATH"))
	} else {
		fmt.Fprintf(w, "  %s\n", output.FormatWarning(name+" not found on PATH"))
	}
	return false
}

// checkWritable creates dir if needed and probes it with a temp file.
func checkWritable(dir string) error {
	if err := config.EnsureDir(dir); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
