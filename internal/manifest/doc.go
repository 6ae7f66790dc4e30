// Package manifest handles the optional nextroute.yaml project file that
// pins scaffolding options (page extension, dynamic route variant, overwrite
// policy) for everyone working in a repository. Files are validated against
// an embedded JSON Schema before they are decoded.
package manifest
