package validate

import (
	"har-to-k6/internal/archive"
	"har-to-k6/internal/diagnostic"
)

// SubValidator checks one optional part of an entry. It returns nil or a
// single *diagnostic.Error.
type SubValidator interface {
	Validate(node any, index int) error
}

// SubValidatorFunc adapts a function to SubValidator.
type SubValidatorFunc func(node any, index int) error

// Validate calls f.
func (f SubValidatorFunc) Validate(node any, index int) error {
	return f(node, index)
}

// Validator validates entries. Use New to get one with the default
// sub-validators.
type Validator struct {
	Query     SubValidator
	Headers   SubValidator
	Cookies   SubValidator
	PostData  SubValidator
	Comment   SubValidator
	Variables SubValidator
}

// New returns a Validator wired with the default sub-validators.
func New() *Validator {
	return &Validator{
		Query:     QueryString{},
		Headers:   Headers{},
		Cookies:   Cookies{},
		PostData:  PostData{},
		Comment:   Comment{},
		Variables: Variables{},
	}
}

// Entry validates a raw archive entry: its request object and, when
// present, its variables.
func (v *Validator) Entry(raw archive.RawEntry) error {
	reqNode, ok := raw.Request()
	if !ok {
		return diagnostic.New(diagnostic.InvalidArchive, raw.Index, "missing request")
	}

	req, ok := archive.AsObject(reqNode)
	if !ok {
		return diagnostic.New(diagnostic.InvalidArchive, raw.Index, "request must be object")
	}

	if err := v.Request(req, raw.Index); err != nil {
		return err
	}

	if vars, ok := raw.Variables(); ok {
		if err := v.Variables.Validate(vars, raw.Index); err != nil {
			return err
		}
	}

	return nil
}

// Request validates a request node. It returns on the first violation.
func (v *Validator) Request(node map[string]any, index int) error {
	if err := validateMethod(node, index); err != nil {
		return err
	}

	if err := validateURL(node, index); err != nil {
		return err
	}

	delegates := []struct {
		key string
		sub SubValidator
	}{
		{"queryString", v.Query},
		{"headers", v.Headers},
		{"cookies", v.Cookies},
		{"postData", v.PostData},
		{"comment", v.Comment},
	}

	for _, d := range delegates {
		value, ok := node[d.key]
		if !ok {
			continue
		}

		if err := d.sub.Validate(value, index); err != nil {
			return err
		}
	}

	if err := validateBodyAllowed(node, index); err != nil {
		return err
	}

	return validateContentType(node, index)
}
