// Package project inspects a project root to decide whether routes can be
// scaffolded into it. It reads the npm manifest (package.json) for the
// framework dependency, detects the nested "src" folder convention, and
// resolves which routing root ("app" or "pages") the project uses.
//
// Detection is read-only and never mutates the project. The result is a
// Context value that callers pass explicitly to the scaffolder.
package project
