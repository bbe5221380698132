package gen

import (
	"fmt"

	"har-to-k6/internal/archive"
	"har-to-k6/internal/codegen"
	"har-to-k6/internal/jscheck"
)

const jsonPathModule = "https://jslib.k6.io/jsonpath/1.0.2/index.js"

var (
	optionsTemplate = codegen.Must(codegen.New("options", `const options = {{.options}};`))

	mainTemplate = codegen.Must(codegen.New("main", `
		export default function main() {
		  {{.body}}
		}
	`))

	sleepTemplate = codegen.Must(codegen.New("sleep", `
		// Automatically added sleep
		sleep({{.seconds}});
	`))

	importTemplate = codegen.Must(codegen.New("import", `import {{.binding}} from {{.module}};`))
)

// assemble lays out the script: imports, options, and a main function
// holding the entries in order.
func (g *Generator) assemble(entries []archive.Entry, fragments []codegen.Fragment) ([]byte, error) {
	usesJSONPath, usesRegex := variableTypes(entries)

	imports, err := g.imports(usesJSONPath)
	if err != nil {
		return nil, err
	}

	options, err := optionsTemplate.Execute(codegen.Context{"options": g.config.Options})
	if err != nil {
		return nil, fmt.Errorf("rendering options: %w", err)
	}

	decls := []codegen.Fragment{codegen.Raw("let response;")}
	if usesRegex {
		decls = append(decls, codegen.Raw("let match;"))
	}

	decls = append(decls, codegen.Raw("const vars = {};"))

	blocks := []codegen.Fragment{codegen.Lines(decls...)}
	blocks = append(blocks, fragments...)

	if g.config.Sleep > 0 {
		pause, err := sleepTemplate.Execute(codegen.Context{"seconds": g.config.Sleep})
		if err != nil {
			return nil, fmt.Errorf("rendering sleep: %w", err)
		}

		blocks = append(blocks, pause)
	}

	body := codegen.Join("\n\n", blocks...)

	if g.config.Verify {
		if err := verify(options, body); err != nil {
			return nil, err
		}
	}

	mainFn, err := mainTemplate.Execute(codegen.Context{"body": body})
	if err != nil {
		return nil, fmt.Errorf("rendering main: %w", err)
	}

	script := codegen.Join("\n\n",
		imports,
		codegen.Join("", codegen.Raw("export "), options),
		mainFn,
	)

	return []byte(script.String() + "\n"), nil
}

func (g *Generator) imports(usesJSONPath bool) (codegen.Fragment, error) {
	type binding struct {
		name, module string
	}

	var bindings []binding
	if g.config.Sleep > 0 {
		bindings = append(bindings, binding{"{ sleep }", "k6"})
	}

	bindings = append(bindings, binding{"http", "k6/http"})

	if usesJSONPath {
		bindings = append(bindings, binding{"jsonpath", jsonPathModule})
	}

	lines := make([]codegen.Fragment, len(bindings))
	for i, b := range bindings {
		f, err := importTemplate.Execute(codegen.Context{
			"binding": codegen.Raw(b.name),
			"module":  b.module,
		})
		if err != nil {
			return codegen.Fragment{}, fmt.Errorf("rendering imports: %w", err)
		}

		lines[i] = f
	}

	return codegen.Lines(lines...), nil
}

func variableTypes(entries []archive.Entry) (jsonPath, regex bool) {
	for _, e := range entries {
		for _, v := range e.Variables {
			switch v.Type {
			case archive.JSONPath:
				jsonPath = true
			case archive.Regex:
				regex = true
			case archive.CSSSelector:
			}
		}
	}

	return jsonPath, regex
}

// verify compiles the generated code. Module syntax is left out since
// the compiler only takes scripts.
func verify(options, body codegen.Fragment) error {
	if err := jscheck.Statements("options", options.String()); err != nil {
		return fmt.Errorf("verifying generated script: %w", err)
	}

	if err := jscheck.FunctionBody("main", body.String()); err != nil {
		return fmt.Errorf("verifying generated script: %w", err)
	}

	return nil
}
