// Package diagnostic defines the error taxonomy shared by the validator,
// the renderers and the generator, plus a bag of non-fatal diagnostics.
//
// Every failure is a *Error carrying a closed Kind, so callers branch on
// the kind instead of parsing messages:
//
//	if errors.Is(err, diagnostic.InvalidRequestURL) {
//		...
//	}
//
// Diagnostics collects findings that do not stop generation, such as
// entries skipped under the "skip" policy or references to variables
// that no earlier entry defines.
package diagnostic
