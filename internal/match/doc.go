// Package match finds near misses among names, for "did you mean"
// hints in diagnostics.
package match
