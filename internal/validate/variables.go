package validate

import (
	"github.com/dlclark/regexp2"
	"github.com/ohler55/ojg/jp"

	"har-to-k6/internal/archive"
	"har-to-k6/internal/diagnostic"
)

// Variables validates an entry's extraction rules. Expressions are
// checked for the engine that will run them: JSONPath must parse and
// regular expressions must compile under ECMAScript rules.
type Variables struct{}

// Validate implements SubValidator.
func (Variables) Validate(node any, index int) error {
	items, ok := archive.AsArray(node)
	if !ok {
		return diagnostic.New(diagnostic.InvalidVariable, index, "variables must be array")
	}

	for i, item := range items {
		if err := validateVariable(item, i, index); err != nil {
			return err
		}
	}

	return nil
}

func validateVariable(node any, i, index int) error {
	obj, ok := archive.AsObject(node)
	if !ok {
		return diagnostic.Newf(diagnostic.InvalidVariable, index, "item %d must be object", i)
	}

	name, ok := archive.AsString(obj["name"])
	if !ok || name == "" {
		return diagnostic.Newf(diagnostic.InvalidVariable, index, "item %d name must be non-empty string", i)
	}

	n, ok := archive.AsInt(obj["type"])
	typ := archive.VariableType(n)
	if !ok || !typ.IsValid() {
		return diagnostic.Newf(diagnostic.InvalidVariable, index,
			"variable %q type must be one of 0 (JSONPath), 1 (Regex), 2 (CSSSelector)", name)
	}

	expr, ok := archive.AsString(obj["expression"])
	if !ok || expr == "" {
		return diagnostic.Newf(diagnostic.InvalidVariable, index, "variable %q expression must be non-empty string", name)
	}

	if _, ok := optionalString(obj, "comment"); !ok {
		return diagnostic.Newf(diagnostic.InvalidVariable, index, "variable %q comment must be string", name)
	}

	switch typ {
	case archive.JSONPath:
		if _, err := jp.ParseString(expr); err != nil {
			return diagnostic.Newf(diagnostic.InvalidVariable, index, "variable %q: invalid JSONPath: %v", name, err)
		}
	case archive.Regex:
		if _, err := regexp2.Compile(expr, regexp2.ECMAScript); err != nil {
			return diagnostic.Newf(diagnostic.InvalidVariable, index, "variable %q: invalid regex: %v", name, err)
		}
	case archive.CSSSelector:
		// Selectors are evaluated by k6's HTML module; only emptiness is checked.
	}

	return nil
}
