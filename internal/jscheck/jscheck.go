// Package jscheck verifies that generated JavaScript parses.
//
// k6 scripts are ES modules, which goja does not load, so callers check
// function bodies and plain statements instead of whole modules.
package jscheck

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
)

// FunctionBody compiles body as the body of a function named name.
func FunctionBody(name, body string) error {
	src := "(function " + name + "() {\n" + body + "\n})"

	return compile(name, src)
}

// Statements compiles src as a script.
func Statements(name, src string) error {
	return compile(name, src)
}

func compile(name, src string) error {
	_, err := goja.Compile(name+".js", src, true)
	if err == nil {
		return nil
	}

	var syntax *goja.CompilerSyntaxError
	if errors.As(err, &syntax) {
		return fmt.Errorf("%s: syntax error: %w", name, syntax)
	}

	return fmt.Errorf("%s: %w", name, err)
}
