// Package prompt runs the interactive question flow of "devhub create":
// project name, template, then the template's feature multi-selects.
package prompt
