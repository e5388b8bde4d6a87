// Package cli defines the Cobra command tree for the devhub CLI. Each file
// in this package registers one top-level command (create, templates, doctor,
// etc.) with the root command. Commands only parse flags, talk to the user
// and print; generation lives in internal/scaffold.
package cli
