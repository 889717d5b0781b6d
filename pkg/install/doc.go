// Package install commits a staged PendingInstall into the mods tree.
//
// A commit is a sequence of hard gates: name check, category directory,
// destination collision check, copy. Until the copy starts nothing under the
// mods root is mutated except creating the category directory. A failed
// archive copy removes the partially populated destination and a failed
// single-file copy removes the partial file, so a commit either lands
// completely or leaves the tree as it was. The pending install stays with the
// caller on any error; on success the engine releases it.
package install
