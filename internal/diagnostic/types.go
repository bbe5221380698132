package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds findings collected while generating a script.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is the Kind name, or a free-form identifier for findings
	// that have no Kind.
	Code string
	// Message is the human-readable description.
	Message string
	// Entry is the position of the entry this relates to, or NoIndex.
	Entry int
	// Field names the entry field this relates to (if any).
	Field string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticWarning DiagnosticSeverity = iota
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return "unknown"
	}
}

// Add appends a diagnostic of the given severity.
func (d *Diagnostics) Add(severity DiagnosticSeverity, code, message string, entry int, field string) {
	diag := Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Entry:    entry,
		Field:    field,
	}

	switch severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	default:
		d.Warnings = append(d.Warnings, diag)
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, entry int, field string) {
	d.Add(DiagnosticWarning, code, message, entry, field)
}

// Report records err with the given severity. A *Error contributes its
// kind and entry index; any other error is recorded under "error".
func (d *Diagnostics) Report(severity DiagnosticSeverity, err error) {
	var de *Error
	if errors.As(err, &de) {
		d.Add(severity, de.Kind.String(), err.Error(), de.Index, "")
		return
	}

	d.Add(severity, "error", err.Error(), NoIndex, "")
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Entry != NoIndex {
		prefix = append(prefix, fmt.Sprintf("entry %d", d.Entry))
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
