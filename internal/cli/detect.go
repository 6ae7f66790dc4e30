package cli

import (
	"encoding/json"
	"fmt"

	"github.com/nextroute-dev/nextroute/internal/branding"
	"github.com/nextroute-dev/nextroute/internal/config"
	"github.com/nextroute-dev/nextroute/internal/manifest"
	"github.com/nextroute-dev/nextroute/internal/project"
	"github.com/nextroute-dev/nextroute/internal/scaffold"
	"github.com/nextroute-dev/nextroute/internal/ui"
	"github.com/spf13/cobra"
)

var detectJSON bool

func init() {
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Print the detection result as JSON")
	rootCmd.AddCommand(detectCmd)
}

// detectReport is the --json shape of the detect command.
type detectReport struct {
	Root                   string `json:"root"`
	HasFrameworkDependency bool   `json:"has_framework_dependency"`
	UsesNestedSourceFolder bool   `json:"uses_nested_source_folder"`
	RoutingRoot            string `json:"routing_root,omitempty"`
	Router                 string `json:"router,omitempty"`
	FrameworkSpec          string `json:"framework_spec,omitempty"`
	FrameworkVersion       string `json:"framework_version,omitempty"`
	DynamicVariant         string `json:"dynamic_variant,omitempty"`
	Error                  string `json:"error,omitempty"`
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show what nextroute sees in the project",
	Long: `Inspect the project root: whether package.json declares the framework,
which routing root new routes go to, and which dynamic template "create
dynamic" would pick.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}
		pc := project.Detect(root)
		report := buildDetectReport(pc)

		if detectJSON {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling detection result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		} else {
			console := ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
			console.Item("Project root", report.Root)
			console.Item(branding.FrameworkName()+" dependency", yesNo(report.HasFrameworkDependency))
			console.Item("Nested src/ folder", yesNo(report.UsesNestedSourceFolder))
			console.Item("Routing root", orNone(pc.RelRoutingRoot()))
			console.Item("Router", orNone(report.Router))
			console.Item("Version spec", orNone(report.FrameworkSpec))
			console.Item("Dynamic template", orNone(report.DynamicVariant))
		}

		if err := pc.Check(); err != nil {
			return err
		}
		return nil
	},
}

func buildDetectReport(pc *project.Context) detectReport {
	r := detectReport{
		Root:                   pc.Root,
		HasFrameworkDependency: pc.HasFrameworkDependency,
		UsesNestedSourceFolder: pc.UsesNestedSourceFolder,
		RoutingRoot:            pc.RoutingRoot,
		Router:                 string(pc.Router),
		FrameworkSpec:          pc.FrameworkSpec,
	}
	if pc.FrameworkVersion != nil {
		r.FrameworkVersion = pc.FrameworkVersion.String()
	}
	if err := pc.Check(); err != nil {
		r.Error = err.Error()
		return r
	}

	configured := config.Get(config.KeyDynamicVariant)
	if pf, err := manifest.Load(pc.Root); err == nil && pf != nil && pf.DynamicVariant != "" {
		configured = pf.DynamicVariant
	}
	if v, err := scaffold.DynamicVariant(pc, configured); err == nil {
		r.DynamicVariant = fmt.Sprintf("%s (%s)", v, v.Label())
	}
	return r
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
