package jscheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionBody(t *testing.T) {
	assert.NoError(t, FunctionBody("main", "let response;\nconst vars = {};\nvars[\"a\"] = 1;"))
	assert.NoError(t, FunctionBody("main", ""))

	err := FunctionBody("main", "vars[\"a\" = 1;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "main: syntax error")
}

func TestFunctionBody_Unbalanced(t *testing.T) {
	assert.Error(t, FunctionBody("main", "}"))
	assert.Error(t, FunctionBody("main", "if (true) {"))
}

func TestFunctionBody_StrictMode(t *testing.T) {
	assert.Error(t, FunctionBody("main", "with (Math) { max(1, 2); }"))
}

func TestStatements(t *testing.T) {
	assert.NoError(t, Statements("options", "const options = {\n  vus: 10,\n};"))
	assert.Error(t, Statements("options", "const options = {"))
}
