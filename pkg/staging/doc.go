// Package staging turns a dropped file into an editable PendingInstall.
//
// Inputs are classified by extension. Single-file packages and paints are
// referenced in place; zip archives are extracted into a private temporary
// directory that the PendingInstall owns until Release is called. Commit,
// cancel and application teardown all end with Release, so the temporary
// tree never outlives the pending install.
package staging
