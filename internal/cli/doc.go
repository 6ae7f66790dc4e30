// Package cli defines the Cobra command tree for the nextroute CLI. Each file
// registers one top-level command (create, detect, config, version) with the
// root command. Commands delegate to internal packages for detection and
// scaffolding and only handle flag parsing, prompting and output.
package cli
