package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frsk-dev/devhub/internal/output"
	"github.com/frsk-dev/devhub/internal/project"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List project templates and their feature flags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := project.LoadCatalog()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, t := range catalog.Templates {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s  %s\n", output.StyleNoun.Render(string(t.ID)), t.Label)
			for _, q := range t.Questions {
				names := make([]string, 0, len(q.Choices))
				for _, ch := range q.Choices {
					name := string(ch.Flag)
					if ch.Hidden {
						name += " (--with only)"
					}
					names = append(names, name)
				}
				fmt.Fprintf(out, "    %s %s\n", q.Message, strings.Join(names, ", "))
			}
		}
		return nil
	},
}
