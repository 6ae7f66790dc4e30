package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nextroute-dev/nextroute/internal/branding"
	"github.com/nextroute-dev/nextroute/internal/manifest"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyPageExtension  = "page_extension"
	KeyOverwrite      = "overwrite"
	KeyDynamicVariant = "dynamic_variant"
	KeyPrompt         = "prompt"
)

// Prompt modes for KeyPrompt.
const (
	PromptAuto = "auto"
	PromptTUI  = "tui"
	PromptLine = "line"
)

// Keys lists every key accepted by Set.
var Keys = []string{KeyPageExtension, KeyOverwrite, KeyDynamicVariant, KeyPrompt}

// Dir returns the config directory: $NEXTROUTE_HOME when set, else ~/.nextroute.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyPageExtension, manifest.ExtTSX)
	viper.SetDefault(KeyOverwrite, true)
	viper.SetDefault(KeyDynamicVariant, manifest.VariantCurrent)
	viper.SetDefault(KeyPrompt, PromptAuto)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	if key == KeyOverwrite {
		viper.Set(key, value == "true")
	} else {
		viper.Set(key, value)
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func validate(key, value string) error {
	var allowed []string
	switch key {
	case KeyPageExtension:
		allowed = manifest.ValidExtensions
	case KeyDynamicVariant:
		allowed = manifest.ValidDynamicVariants
	case KeyOverwrite:
		allowed = []string{"true", "false"}
	case KeyPrompt:
		allowed = []string{PromptAuto, PromptTUI, PromptLine}
	default:
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys, ", "))
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid value %q for %s: must be one of %s", value, key, strings.Join(allowed, ", "))
	}
	return nil
}

// Settings are the effective scaffolding options for one command.
type Settings struct {
	PageExtension  string
	Overwrite      bool
	DynamicVariant string
	Prompt         string
}

// Resolve merges the user configuration with an optional project file.
// Project file values win over user configuration; command flags are
// applied by the caller on top of the result.
func Resolve(pf *manifest.ProjectFile) Settings {
	s := Settings{
		PageExtension:  viper.GetString(KeyPageExtension),
		Overwrite:      viper.GetBool(KeyOverwrite),
		DynamicVariant: viper.GetString(KeyDynamicVariant),
		Prompt:         viper.GetString(KeyPrompt),
	}
	if pf == nil {
		return s
	}
	if pf.PageExtension != "" {
		s.PageExtension = pf.PageExtension
	}
	if pf.DynamicVariant != "" {
		s.DynamicVariant = pf.DynamicVariant
	}
	if pf.Overwrite != nil {
		s.Overwrite = *pf.Overwrite
	}
	return s
}
