package render

import (
	"encoding/json"
	"testing"

	"github.com/dop251/goja"
	"github.com/ohler55/ojg/jp"
	"github.com/stretchr/testify/require"

	"har-to-k6/internal/codegen"
)

// prelude stands in for the k6 runtime: a canned response, an http
// module that records its calls, and a jsonpath module backed by ojg.
const prelude = `
const response = {
  body: body,
  json() { return JSON.parse(this.body); },
  html() {
    const found = JSON.parse(elements);
    return {
      find(sel) {
        const values = found[sel] || [];
        return {
          map(fn) {
            return values.map((v, idx) => fn(idx, { attr: (name) => (name === "value" ? v : undefined) }));
          },
        };
      },
    };
  },
};
const calls = [];
const http = {};
for (const fn of ["get", "head", "post", "put", "patch", "del", "options", "request"]) {
  http[fn] = (...args) => {
    calls.push({ fn: fn, args: args });
    return response;
  };
}
const vars = JSON.parse(seed);
let match;
`

type env struct {
	body     string
	elements map[string][]string
	vars     map[string]any
}

type result struct {
	vars  map[string]any
	calls []any
}

// run executes f against env in a fresh VM.
func run(t *testing.T, e env, f codegen.Fragment) result {
	t.Helper()

	vm := goja.New()

	elements, err := json.Marshal(e.elements)
	require.NoError(t, err)

	seed := e.vars
	if seed == nil {
		seed = map[string]any{}
	}

	seedJSON, err := json.Marshal(seed)
	require.NoError(t, err)

	require.NoError(t, vm.Set("body", e.body))
	require.NoError(t, vm.Set("elements", string(elements)))
	require.NoError(t, vm.Set("seed", string(seedJSON)))
	require.NoError(t, vm.Set("jsonpath", map[string]any{
		"query": func(doc any, expr string) []any {
			return jp.MustParseString(expr).Get(doc)
		},
	}))

	src := "(function () {\n" + prelude + f.String() + "\nreturn { vars: Object.assign({}, vars), calls: calls };\n})()"

	v, err := vm.RunString(src)
	require.NoError(t, err, f.String())

	out, ok := v.Export().(map[string]any)
	require.True(t, ok)

	vars, _ := out["vars"].(map[string]any)
	calls, _ := out["calls"].([]any)

	return result{vars: vars, calls: calls}
}
