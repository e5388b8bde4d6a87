// Package updater implements the advisory update check. It asks the npm
// registry for the latest published version of the CLI and compares it with
// the running build. A daily-cached result powers the startup banner; nothing
// is ever downloaded or installed.
package updater
