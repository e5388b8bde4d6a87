// Package scaffold generates new projects from embedded templates. It powers
// the "devhub create" command.
//
// Each template has its own generator that turns a project directory and a
// set of feature flags into a Plan: an ordered list of directory, file and
// command steps. Optional content is assembled from fragments listed in a
// per-generator rule table, so each flag's contribution can be rendered and
// tested on its own. An Executor then applies the plan step by step, stopping
// at the first failure.
package scaffold
