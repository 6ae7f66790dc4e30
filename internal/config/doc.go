// Package config manages user-level settings stored at ~/.nextroute/config.yaml
// (or $NEXTROUTE_HOME/config.yaml). Values can also come from NEXTROUTE_*
// environment variables. Resolve layers an optional project file on top of
// them to produce the effective scaffolding settings.
package config
