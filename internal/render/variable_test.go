package render

import (
	"errors"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"har-to-k6/internal/archive"
	"har-to-k6/internal/diagnostic"
)

func TestVariable_JSONPath(t *testing.T) {
	f, err := Variable("id", archive.Variable{Type: archive.JSONPath, Expression: "$.data.id"})
	require.NoError(t, err)

	assert.Equal(t, `vars["id"] = jsonpath.query(response.json(), "$.data.id")[0];`, f.String())

	got := run(t, env{body: `{"data":{"id":"a1"}}`}, f)
	assert.Equal(t, "a1", got.vars["id"])

	got = run(t, env{body: `{"data":{}}`}, f)
	assert.Contains(t, got.vars, "id")
	assert.Nil(t, got.vars["id"])
}

func TestVariable_Regex(t *testing.T) {
	f, err := Variable("redir", archive.Variable{Type: archive.Regex, Expression: `token=(\w+)`})
	require.NoError(t, err)

	assert.Equal(t, heredoc.Doc(`
		match = new RegExp("token=(\\w+)").exec(response.body);
		vars["redir"] = match ? match[1] || match[0] : null;`,
	), f.String())

	got := run(t, env{body: "a token=abc123 b"}, f)
	assert.Equal(t, "abc123", got.vars["redir"])

	got = run(t, env{body: "nothing here"}, f)
	assert.Nil(t, got.vars["redir"])
}

func TestVariable_RegexWithoutGroupStoresWholeMatch(t *testing.T) {
	f, err := Variable("n", archive.Variable{Type: archive.Regex, Expression: `\d+`})
	require.NoError(t, err)

	got := run(t, env{body: "id=42;"}, f)
	assert.Equal(t, "42", got.vars["n"])
}

func TestVariable_RegexEmptyGroupFallsBackToWholeMatch(t *testing.T) {
	f, err := Variable("n", archive.Variable{Type: archive.Regex, Expression: `id=(\d*);`})
	require.NoError(t, err)

	got := run(t, env{body: "id=;"}, f)
	assert.Equal(t, "id=;", got.vars["n"])

	got = run(t, env{body: "id=7;"}, f)
	assert.Equal(t, "7", got.vars["n"])
}

func TestVariable_CSSSelector(t *testing.T) {
	f, err := Variable("redir", archive.Variable{Type: archive.CSSSelector, Expression: "input[name=redir]"})
	require.NoError(t, err)

	assert.Equal(t, heredoc.Doc(`
		vars["redir"] = response
		  .html()
		  .find("input[name=redir]")
		  .map((idx, el) => el.attr("value"))[0];`,
	), f.String())

	got := run(t, env{elements: map[string][]string{"input[name=redir]": {"/my_messages.php", "/other"}}}, f)
	assert.Equal(t, "/my_messages.php", got.vars["redir"])

	got = run(t, env{}, f)
	assert.Nil(t, got.vars["redir"])
}

func TestVariable_Comment(t *testing.T) {
	f, err := Variable("id", archive.Variable{
		Type:       archive.JSONPath,
		Expression: "$.id",
		Comment:    "User id\nfrom the login response",
	})
	require.NoError(t, err)

	assert.Equal(t, heredoc.Doc(`
		// User id
		// from the login response
		vars["id"] = jsonpath.query(response.json(), "$.id")[0];`,
	), f.String())
}

func TestVariable_EscapesNameAndExpression(t *testing.T) {
	f, err := Variable(`a"b`, archive.Variable{Type: archive.CSSSelector, Expression: `input[name="x"]`})
	require.NoError(t, err)

	got := run(t, env{elements: map[string][]string{`input[name="x"]`: {"v"}}}, f)
	assert.Equal(t, "v", got.vars[`a"b`])
}

func TestVariable_UnrecognizedType(t *testing.T) {
	_, err := Variable("id", archive.Variable{Type: archive.VariableType(7), Expression: "$.id"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.UnrecognizedVariableType))
}

func TestVariable_Deterministic(t *testing.T) {
	for typ := range archive.VariableTypeTotal {
		v := archive.Variable{Type: archive.VariableType(typ), Expression: "x", Comment: "c"}

		first, err := Variable("n", v)
		require.NoError(t, err)

		second, err := Variable("n", v)
		require.NoError(t, err)

		assert.Equal(t, first.String(), second.String())
	}
}

func TestVariables_KeepsOrder(t *testing.T) {
	f, err := Variables([]archive.Variable{
		{Name: "a", Type: archive.Regex, Expression: `a=(\w+)`},
		{Name: "b", Type: archive.Regex, Expression: `b=(\w+)`},
	})
	require.NoError(t, err)

	got := run(t, env{body: "a=1&b=2"}, f)
	assert.Equal(t, "1", got.vars["a"])
	assert.Equal(t, "2", got.vars["b"])
}
