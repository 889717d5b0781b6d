// Package output renders inventory reports for the terminal or for
// machines.
//
// Text output goes through the embedded templates in templates/, with
// lipgloss styles exposed as template functions; JSON and YAML encode the
// same Report structure.
package output
