package diagnostic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "with index and detail",
			err:  New(InvalidRequestURL, 0, "must be string"),
			want: "Invalid request url (0): must be string",
		},
		{
			name: "without detail",
			err:  New(MissingRequestMethod, 3, ""),
			want: "Missing request method (3)",
		},
		{
			name: "without index",
			err:  Newf(UnrecognizedVariableType, NoIndex, "%d", 7),
			want: "Unrecognized variable type: 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "MissingRequestUrl", MissingRequestURL.String())
	assert.Equal(t, "InvalidRequestUrl", InvalidRequestURL.String())
	assert.Equal(t, "InconsistentContentType", InconsistentContentType.String())
	assert.Equal(t, "InvalidArchive", InvalidArchive.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.False(t, Kind(0).IsValid())
	assert.True(t, InvalidArchive.IsValid())
}

func TestError_IsAndKindOf(t *testing.T) {
	err := fmt.Errorf("entry 2: %w", New(InvalidRequestHeaders, 2, "must be array"))

	assert.True(t, errors.Is(err, InvalidRequestHeaders))
	assert.False(t, errors.Is(err, InvalidRequestCookies))
	assert.True(t, errors.Is(err, &Error{Kind: InvalidRequestHeaders}))

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, InvalidRequestHeaders, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestDiagnostics_Report(t *testing.T) {
	var d Diagnostics

	d.Report(DiagnosticWarning, New(InvalidComment, 4, "must be string"))
	assert.False(t, d.HasErrors())

	d.Report(DiagnosticError, errors.New("boom"))
	d.AddWarning("undefined_variable", "variable \"token\" is not defined", 1, "url")

	require.Len(t, d.Warnings, 2)
	assert.Equal(t, "InvalidComment", d.Warnings[0].Code)
	assert.Equal(t, 4, d.Warnings[0].Entry)
	assert.Equal(t, "entry 4: [InvalidComment] Invalid comment (4): must be string", d.Warnings[0].String())
	assert.Equal(t, "entry 1 url: [undefined_variable] variable \"token\" is not defined", d.Warnings[1].String())

	require.Len(t, d.Errors, 1)
	assert.Equal(t, DiagnosticError, d.Errors[0].Severity)
	assert.Equal(t, "[error] boom", d.Errors[0].String())
	assert.True(t, d.HasErrors())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(7).String())
}
