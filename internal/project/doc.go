// Package project defines what a user asks for: a validated project name, one
// of the six templates, and the feature flags selected for that template. It
// also carries the embedded template catalog that drives the interactive
// questions and the "templates" listing.
package project
