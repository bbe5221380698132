package codegen

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_ExecuteQuotesStrings(t *testing.T) {
	tmpl := Must(New("assign", `vars[{{.name}}] = {{.value}};`))

	f, err := tmpl.Execute(Context{"name": "id", "value": `say "hi"`})
	require.NoError(t, err)

	assert.Equal(t, `vars["id"] = "say \"hi\"";`, f.String())
}

func TestTemplate_ExecuteSplicesFragmentsRaw(t *testing.T) {
	inner := Must(New("inner", `response.{{.method}}()`))
	outer := Must(New("outer", `x = {{.call}};`))

	call, err := inner.Execute(Context{"method": Raw("json")})
	require.NoError(t, err)

	f, err := outer.Execute(Context{"call": call})
	require.NoError(t, err)

	assert.Equal(t, `x = response.json();`, f.String())
}

func TestTemplate_ExecuteLiterals(t *testing.T) {
	tmpl := Must(New("literals", `[{{.i}}, {{.f}}, {{.b}}, {{.n}}, {{.list}}]`))

	f, err := tmpl.Execute(Context{
		"i":    42,
		"f":    1.5,
		"b":    true,
		"n":    nil,
		"list": []any{"a", int64(2)},
	})
	require.NoError(t, err)

	assert.Equal(t, `[42, 1.5, true, null, ["a", 2]]`, f.String())
}

func TestTemplate_ExecuteMissingValue(t *testing.T) {
	tmpl := Must(New("missing", `{{.a}} + {{.b}}`))

	_, err := tmpl.Execute(Context{"a": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no value for "b"`)
}

func TestTemplate_ExecuteUnsupportedValue(t *testing.T) {
	tmpl := Must(New("bad", `{{.a}}`))

	_, err := tmpl.Execute(Context{"a": struct{}{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported value type")
}

func TestNew_RejectsNonFieldActions(t *testing.T) {
	for _, skeleton := range []string{
		`{{if .a}}x{{end}}`,
		`{{.a.b}}`,
		`{{$x := .a}}`,
		`{{.a | printf "%s"}}`,
	} {
		_, err := New("bad", skeleton)
		assert.Error(t, err, skeleton)
	}

	_, err := New("unclosed", `{{.a`)
	assert.Error(t, err)
}

func TestNew_DedentsSkeleton(t *testing.T) {
	tmpl := Must(New("multi", `
		match = {{.re}}.exec(body);
		value = match ? match[0] : null;
	`))

	f, err := tmpl.Execute(Context{"re": Raw("/a/")})
	require.NoError(t, err)

	assert.Equal(t, "match = /a/.exec(body);\nvalue = match ? match[0] : null;", f.String())
}

func TestTemplate_Deterministic(t *testing.T) {
	tmpl := Must(New("options", `export const options = {{.options}};`))
	ctx := Context{"options": map[string]any{"vus": 10, "duration": "30s", "tags": map[string]any{"b": "2", "a": "1"}}}

	first, err := tmpl.Execute(ctx)
	require.NoError(t, err)

	second, err := tmpl.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, heredoc.Doc(`
		export const options = {
		  duration: "30s",
		  tags: {
		    a: "1",
		    b: "2",
		  },
		  vus: 10,
		};`), first.String())
}

func TestValue_Float(t *testing.T) {
	for in, want := range map[float64]string{
		1:      "1",
		0.25:   "0.25",
		1e21:   "1e+21",
		-3.125: "-3.125",
	} {
		f, err := Value(in)
		require.NoError(t, err)
		assert.Equal(t, want, f.String())
	}
}
