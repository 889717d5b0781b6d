// Package filesystem provides filesystem implementations for mxbmm.
//
// All staging, commit and scan code goes through the FS interface so the
// same pipeline runs against the real OS filesystem and against an
// in-memory afero filesystem in tests.
package filesystem
