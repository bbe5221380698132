package render

import (
	"har-to-k6/internal/archive"
	"har-to-k6/internal/codegen"
	"har-to-k6/internal/diagnostic"
)

var (
	jsonPathTemplate = codegen.Must(codegen.New("jsonpath", `
		vars[{{.name}}] = jsonpath.query(response.json(), {{.expression}})[0];
	`))

	regexTemplate = codegen.Must(codegen.New("regex", `
		match = new RegExp({{.expression}}).exec(response.body);
		vars[{{.name}}] = match ? match[1] || match[0] : null;
	`))

	cssSelectorTemplate = codegen.Must(codegen.New("css-selector", `
		vars[{{.name}}] = response
		  .html()
		  .find({{.expression}})
		  .map((idx, el) => el.attr("value"))[0];
	`))
)

// Variable renders the extraction of v into vars[name], preceded by its
// comment. An unknown type is a programming error upstream and yields an
// UnrecognizedVariableType error.
func Variable(name string, v archive.Variable) (codegen.Fragment, error) {
	var tmpl *codegen.Template

	switch v.Type {
	case archive.JSONPath:
		tmpl = jsonPathTemplate
	case archive.Regex:
		tmpl = regexTemplate
	case archive.CSSSelector:
		tmpl = cssSelectorTemplate
	default:
		return codegen.Fragment{}, diagnostic.Newf(diagnostic.UnrecognizedVariableType, diagnostic.NoIndex,
			"variable %q has type %d", name, int(v.Type))
	}

	logic, err := tmpl.Execute(codegen.Context{
		"name":       name,
		"expression": v.Expression,
	})
	if err != nil {
		return codegen.Fragment{}, err
	}

	return codegen.Lines(Comment(v.Comment), logic), nil
}

// Variables renders every variable of an entry in order.
func Variables(vars []archive.Variable) (codegen.Fragment, error) {
	out := make([]codegen.Fragment, 0, len(vars))

	for _, v := range vars {
		f, err := Variable(v.Name, v)
		if err != nil {
			return codegen.Fragment{}, err
		}

		out = append(out, f)
	}

	return codegen.Lines(out...), nil
}
