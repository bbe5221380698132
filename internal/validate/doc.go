// Package validate checks recorded entries before they are rendered.
//
// Validator.Request walks a decoded request node in a fixed order and
// stops at the first violation, returning a *diagnostic.Error:
//
//  1. method present, a string, a known HTTP method
//  2. url present and a string
//  3. url absolute or starting with a ${variable}
//  4. queryString, headers, cookies, postData and comment, each delegated
//     to its SubValidator only when the key is present
//  5. no body on a method that carries none
//  6. Content-Type header consistent with postData.mimeType
//
// The sub-validators are fields of Validator so that callers can replace
// them; tests use this to observe which ones run.
package validate
