// Package gen turns an archive document into a k6 script.
//
// Entries are validated and rendered in parallel, then concatenated in
// document order. What happens to an invalid entry is set by
// GeneratorConfig.OnInvalid; rendering failures always abort.
package gen
