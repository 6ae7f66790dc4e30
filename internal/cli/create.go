package cli

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/nextroute-dev/nextroute/internal/config"
	"github.com/nextroute-dev/nextroute/internal/interaction"
	"github.com/nextroute-dev/nextroute/internal/manifest"
	"github.com/nextroute-dev/nextroute/internal/project"
	"github.com/nextroute-dev/nextroute/internal/scaffold"
	"github.com/nextroute-dev/nextroute/internal/ui"
	"github.com/spf13/cobra"
)

var (
	createExt         string
	createNoOverwrite bool
	createDryRun      bool
	createPrompt      string
	createVariant     string
)

func init() {
	createCmd.PersistentFlags().StringVar(&createExt, "ext", "", "Page file extension: "+strings.Join(manifest.ValidExtensions, ", "))
	createCmd.PersistentFlags().BoolVar(&createNoOverwrite, "no-overwrite", false, "Fail instead of replacing files of an existing route")
	createCmd.PersistentFlags().BoolVar(&createDryRun, "dry-run", false, "Show what would be created without writing anything")
	createCmd.PersistentFlags().StringVar(&createPrompt, "prompt", "", "Prompt style: auto, tui or line")
	createDynamicCmd.Flags().StringVar(&createVariant, "variant", "", "Dynamic template: "+strings.Join(manifest.ValidDynamicVariants, ", "))

	createCmd.AddCommand(createRouteCmd)
	createCmd.AddCommand(createParamsCmd)
	createCmd.AddCommand(createParamsLegacyCmd)
	createCmd.AddCommand(createDynamicCmd)
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Scaffold a new route",
	Long: `Scaffold a new route under the project's routing root.

Names given as arguments skip the matching prompt and are validated as-is.
Missing names are asked for interactively; an empty answer cancels.`,
}

var createRouteCmd = &cobra.Command{
	Use:     "route [name]",
	Aliases: []string{"createRoute", "static"},
	Short:   "Create a static route",
	Example: `  nextroute create route service/view`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd, args, fixedVariant(scaffold.Static))
	},
}

var createParamsCmd = &cobra.Command{
	Use:     "params [name] [param]",
	Aliases: []string{"createRouteWithParamsCurrent", "params-current"},
	Short:   "Create a dynamic route whose page awaits params (Next.js 15 and later)",
	Example: `  nextroute create params users userId`,
	Args:    cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd, args, fixedVariant(scaffold.DynamicCurrent))
	},
}

var createParamsLegacyCmd = &cobra.Command{
	Use:     "params-legacy [name] [param]",
	Aliases: []string{"createRouteWithParamsLegacy"},
	Short:   "Create a dynamic route whose page reads params directly (Next.js 14 and earlier)",
	Example: `  nextroute create params-legacy users userId`,
	Args:    cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd, args, fixedVariant(scaffold.DynamicLegacy))
	},
}

var createDynamicCmd = &cobra.Command{
	Use:   "dynamic [name] [param]",
	Short: "Create a dynamic route using the configured dynamic_variant",
	Long: `Create a dynamic route. The page template follows dynamic_variant
(current, legacy or auto). With auto, the Next.js version declared in
package.json decides; current is used when it cannot be determined.`,
	Example: `  nextroute create dynamic users userId --variant auto`,
	Args:    cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd, args, func(pc *project.Context, s config.Settings) (scaffold.Variant, error) {
			configured := s.DynamicVariant
			if createVariant != "" {
				configured = createVariant
			}
			return scaffold.DynamicVariant(pc, configured)
		})
	},
}

type variantPicker func(pc *project.Context, s config.Settings) (scaffold.Variant, error)

func fixedVariant(v scaffold.Variant) variantPicker {
	return func(*project.Context, config.Settings) (scaffold.Variant, error) { return v, nil }
}

func runCreate(cmd *cobra.Command, args []string, pick variantPicker) error {
	root, err := projectRoot()
	if err != nil {
		return err
	}
	pc := project.Detect(root)

	var pf *manifest.ProjectFile
	if pc.Root != "" {
		pf, err = manifest.Load(pc.Root)
		if err != nil {
			return err
		}
	}
	settings, err := createSettings(cmd, pf)
	if err != nil {
		return err
	}

	v, err := pick(pc, settings)
	if err != nil {
		return err
	}

	var prompter interaction.Prompter = interaction.New(settings.Prompt, cmd.InOrStdin(), cmd.ErrOrStderr())
	if len(args) > 0 {
		prompter = &interaction.PresetPrompter{Answers: args, Fallback: prompter}
	}

	console := ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	s := scaffold.New(prompter, console, scaffold.Options{
		PageExtension: settings.PageExtension,
		Overwrite:     settings.Overwrite,
	})
	s.DryRun = createDryRun

	result, err := s.Run(cmd.Context(), pc, v)
	if err != nil {
		return err
	}
	if result.Cancelled {
		return nil
	}
	printResult(console, pc, result)
	return nil
}

// createSettings applies create flags on top of the resolved configuration.
func createSettings(cmd *cobra.Command, pf *manifest.ProjectFile) (config.Settings, error) {
	s := config.Resolve(pf)
	flags := cmd.Flags()
	if flags.Changed("ext") {
		s.PageExtension = createExt
	}
	if flags.Changed("no-overwrite") {
		s.Overwrite = !createNoOverwrite
	}
	if flags.Changed("prompt") {
		s.Prompt = createPrompt
	}

	if !slices.Contains(manifest.ValidExtensions, s.PageExtension) {
		return s, fmt.Errorf("invalid page extension %q: must be one of %s",
			s.PageExtension, strings.Join(manifest.ValidExtensions, ", "))
	}
	if createVariant != "" && !slices.Contains(manifest.ValidDynamicVariants, createVariant) {
		return s, fmt.Errorf("invalid variant %q: must be one of %s",
			createVariant, strings.Join(manifest.ValidDynamicVariants, ", "))
	}
	return s, nil
}

func printResult(console *ui.Console, pc *project.Context, result *scaffold.Result) {
	plan := result.Plan
	dest := path.Join(pc.RelRoutingRoot(), plan.RelDestination())
	if result.DryRun {
		console.Info("Dry run, would create %s/", dest)
	} else {
		console.Info("%s/", dest)
	}
	for _, f := range plan.Files {
		console.Info("  %s", f.Path)
	}
	for _, d := range plan.Dirs {
		if d == "." {
			continue
		}
		console.Info("  %s/", d)
	}
}
