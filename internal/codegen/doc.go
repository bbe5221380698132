// Package codegen assembles JavaScript source from skeletons with named
// holes.
//
// A Template is parsed once from a skeleton such as
//
//	vars[{{.name}}] = jsonpath.query(response.json(), {{.expression}})[0];
//
// and executed against a Context. Execution works in two stages. First
// every hole is resolved into a piece of a Fragment tree: Fragments are
// kept as nested children, strings become quoted literals, numbers,
// booleans and nil become JavaScript literals. Then Fragment.String
// serializes the tree in one pass, quoting every string through Quote
// and re-indenting nested multi-line fragments to the line they are
// spliced into.
//
// Interpolated values never reach the output unescaped: the only way to
// put text into a Fragment verbatim is Raw, which callers use for code
// they wrote themselves.
package codegen
