package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frsk-dev/devhub/internal/branding"
	"github.com/frsk-dev/devhub/internal/config"
	"github.com/frsk-dev/devhub/internal/output"
	"github.com/frsk-dev/devhub/internal/project"
	"github.com/frsk-dev/devhub/internal/prompt"
	"github.com/frsk-dev/devhub/internal/runner"
	"github.com/frsk-dev/devhub/internal/scaffold"
)

var (
	createName        string
	createTemplate    string
	createWith        []string
	createDir         string
	createSkipInstall bool
	createNoOpen      bool
	createDryRun      bool
	createYes         bool
)

// Swapped out in tests.
var (
	newPrompter = func() prompt.Prompter { return prompt.HuhPrompter{} }
	newRunner   = func() runner.Runner {
		r := &runner.ExecRunner{}
		if verbose {
			r.Stdout, r.Stderr = os.Stderr, os.Stderr
		}
		return r
	}
	launchEditor  = runner.OpenEditor
	isInteractive = func() bool { return output.IsTTY() }
)

var errNotInteractive = errors.New("no terminal attached: pass --name and --template")

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Project name (letters, numbers, underscores and hyphens)")
	createCmd.Flags().StringVarP(&createTemplate, "template", "t", "", "Template: html, react, electron, fivem, redm or vue")
	createCmd.Flags().StringSliceVar(&createWith, "with", nil, "Enable a feature flag such as window.frameless (repeatable)")
	createCmd.Flags().StringVar(&createDir, "dir", "", "Parent directory (default: projects_dir setting)")
	createCmd.Flags().BoolVar(&createSkipInstall, "skip-install", false, "Write files but do not run install or build commands")
	createCmd.Flags().BoolVar(&createNoOpen, "no-open", false, "Do not open the project in the editor")
	createCmd.Flags().BoolVar(&createDryRun, "dry-run", false, "Print the plan without writing anything")
	createCmd.Flags().BoolVarP(&createYes, "yes", "y", false, "Accept no optional features instead of asking")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	Long: `Create a new project from one of the built-in templates.

Without flags the command asks for a name, a template and the template's
optional features. Anything passed as a flag is not asked for.

Examples:
  devhub create
  devhub create --name landing --template html --with css-framework.tailwind --with meta.seo
  devhub create --name shell -t electron --with window.frameless,build.installer
  devhub create --name my_resource -t redm --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		ctx := cmd.Context()

		store, err := config.Load(config.Dir())
		if err != nil {
			return err
		}
		settings := store.Settings()

		catalog, err := project.LoadCatalog()
		if err != nil {
			return err
		}

		preset, err := createPreset()
		if err != nil {
			return err
		}

		if isInteractive() {
			fmt.Fprintln(out, output.Banner(branding.Tagline()))
		} else {
			if preset.Name == "" || preset.Template == "" {
				return errNotInteractive
			}
			preset.FeaturesSet = true
		}

		answers, err := prompt.Collect(newPrompter(), catalog, preset)
		if err != nil {
			return err
		}
		info, _ := catalog.Lookup(answers.Template)
		if err := checkFeatures(info, answers.Flags); err != nil {
			return err
		}

		parent := createDir
		if parent == "" {
			parent = settings.ProjectsDir
		}
		req, err := project.NewRequest(answers.Name, answers.Template, parent)
		if err != nil {
			return err
		}

		opts := project.NewFeatureOptions(answers.Flags...)
		env := scaffold.Env{
			PackageManager: settings.PackageManager,
			InstallVue:     settings.InstallVue,
		}
		output.Debug("planning project", "template", req.Template, "dir", req.Dir, "features", opts.String())

		plan, err := scaffold.PlanFor(req, opts, env)
		if err != nil {
			return err
		}

		if createDryRun {
			printPlan(out, req, plan)
			return nil
		}

		console := output.NewConsole(ctx, out)
		console.Info(fmt.Sprintf("Creating %s project in %s", info.Title, output.StyleNoun.Render(req.Dir)))

		exec := &scaffold.Executor{
			Runner:       newRunner(),
			Reporter:     console,
			SkipCommands: createSkipInstall,
		}
		result, err := exec.Apply(ctx, req.Dir, plan)
		if err != nil {
			return err
		}

		for _, w := range result.Warnings {
			console.Warn(w)
		}

		if !info.NPM {
			console.Success(fmt.Sprintf("%s resource created successfully!", info.Title))
			fmt.Fprintln(out, output.StyleBanner.Render("\nResource created at:"))
			fmt.Fprintf(out, "  %s\n", result.OutputDir)
			return nil
		}

		console.Success("Project structure created")
		if settings.OpenEditor && !createNoOpen && settings.Editor != "" {
			openInEditor(console, settings.Editor, result.OutputDir)
		}

		fmt.Fprintln(out, output.StyleBanner.Render("\nNext step:"))
		fmt.Fprintf(out, "  %s\n", info.NextStep)
		return nil
	},
}

// createPreset turns the create flags into answers the prompt does not ask
// again.
func createPreset() (prompt.Answers, error) {
	preset := prompt.Answers{Name: createName}

	if createTemplate != "" {
		id, err := project.ParseTemplateID(createTemplate)
		if err != nil {
			return prompt.Answers{}, err
		}
		preset.Template = id
	}

	for _, raw := range createWith {
		f, err := project.ParseFlag(raw)
		if err != nil {
			return prompt.Answers{}, err
		}
		preset.Flags = append(preset.Flags, f)
	}
	preset.FeaturesSet = len(preset.Flags) > 0 || createYes
	return preset, nil
}

func checkFeatures(info *project.TemplateInfo, flags []project.Flag) error {
	for _, f := range flags {
		if info.Supports(f) {
			continue
		}
		var known []string
		for _, k := range info.Flags() {
			known = append(known, string(k))
		}
		if len(known) == 0 {
			return fmt.Errorf("template %s has no optional features, got %q", info.ID, f)
		}
		return fmt.Errorf("template %s has no feature %q (available: %s)", info.ID, f, strings.Join(known, ", "))
	}
	return nil
}

func openInEditor(console *output.Console, editor, dir string) {
	if err := launchEditor(editor, dir); err != nil {
		output.Debug("opening editor failed", "editor", editor, "err", err)
		console.Warn(fmt.Sprintf("%s could not be opened automatically", editor))
		return
	}
	console.Success(fmt.Sprintf("Project opened in %s", editor))
}

func printPlan(w io.Writer, req project.Request, plan *scaffold.Plan) {
	fmt.Fprintf(w, "Would create %s project %s at %s\n", plan.Template, plan.Name, req.Dir)
	for _, step := range plan.Steps {
		switch step.Kind {
		case scaffold.MkdirStep:
			fmt.Fprintf(w, "  %-5s %s/\n", step.Kind, step.Path)
		case scaffold.WriteStep:
			fmt.Fprintf(w, "  %-5s %s (%d bytes)\n", step.Kind, step.Path, len(step.Content))
		case scaffold.RunStep:
			fmt.Fprintf(w, "  %-5s %s\n", step.Kind, strings.Join(step.Command, " "))
		}
	}
	for _, warning := range plan.Warnings {
		fmt.Fprintln(w, output.FormatWarning(warning))
	}
}
