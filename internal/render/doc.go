// Package render turns validated archive entries into k6 script fragments.
//
// Renderers assume their input passed validation and do not check it
// again. Every literal they emit goes through the codegen package.
package render
