// Package route turns free-form route text typed by a user into a safe,
// slash-delimited path below a routing root, derives the component symbol
// for the generated page, and validates route and parameter names before any
// filesystem action happens.
package route
