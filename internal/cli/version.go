package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nextroute-dev/nextroute/internal/branding"
	"github.com/nextroute-dev/nextroute/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

// versionInfo is the --json shape of the version command.
type versionInfo struct {
	Version   string            `json:"version"`
	Commit    string            `json:"commit"`
	Date      string            `json:"date"`
	Framework string            `json:"framework"`
	Templates map[string]string `json:"templates"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and supported page templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		info := versionInfo{
			Version:   buildVersion,
			Commit:    buildCommit,
			Date:      buildDate,
			Framework: branding.FrameworkName(),
			Templates: make(map[string]string, len(scaffold.Variants)),
		}
		var dynamic []string
		for _, v := range scaffold.Variants {
			info.Templates[v.String()] = v.Label()
			if v.IsDynamic() {
				dynamic = append(dynamic, fmt.Sprintf("%s (%s)", v, v.Label()))
			}
		}

		if versionJSON {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
		fmt.Fprintf(out, "%s dynamic templates: %s\n", info.Framework, strings.Join(dynamic, ", "))
		return nil
	},
}
