// Package branding provides compile-time identity values for the CLI.
//
// The identity lives in branding.yaml next to this file and is baked into the
// binary with //go:embed, so a fork only has to edit one file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	FrameworkPackage string `yaml:"framework_package"`
	FrameworkName    string `yaml:"framework_name"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:          "nextroute",
			DisplayName:      "NextRoute",
			Description:      "Scaffold routes for Next.js projects",
			HomeDir:          ".nextroute",
			EnvPrefix:        "NEXTROUTE",
			FrameworkPackage: "next",
			FrameworkName:    "Next.js",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "nextroute").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".nextroute").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "NEXTROUTE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// FrameworkPackage returns the npm package whose presence in package.json
// marks a project as one we can scaffold into (e.g., "next").
func FrameworkPackage() string { load(); return defaults.FrameworkPackage }

// FrameworkName returns the display name of the framework (e.g., "Next.js").
func FrameworkName() string { load(); return defaults.FrameworkName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "NEXTROUTE_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
