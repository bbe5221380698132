package validate

import (
	"har-to-k6/internal/archive"
	"har-to-k6/internal/diagnostic"
)

// QueryString validates request.queryString.
type QueryString struct{}

// Validate implements SubValidator.
func (QueryString) Validate(node any, index int) error {
	return validatePairs(node, index, diagnostic.InvalidRequestQuery, "", false)
}

// Headers validates request.headers.
type Headers struct{}

// Validate implements SubValidator.
func (Headers) Validate(node any, index int) error {
	return validatePairs(node, index, diagnostic.InvalidRequestHeaders, "", true)
}

// Cookies validates request.cookies.
type Cookies struct{}

// Validate implements SubValidator.
func (Cookies) Validate(node any, index int) error {
	return validatePairs(node, index, diagnostic.InvalidRequestCookies, "", true)
}

// PostData validates request.postData.
type PostData struct{}

// Validate implements SubValidator.
func (PostData) Validate(node any, index int) error {
	obj, ok := archive.AsObject(node)
	if !ok {
		return diagnostic.New(diagnostic.InvalidRequestData, index, "must be object")
	}

	mimeType, ok := optionalString(obj, "mimeType")
	if !ok {
		return diagnostic.New(diagnostic.InvalidRequestData, index, "mimeType must be string")
	}

	text, ok := optionalString(obj, "text")
	if !ok {
		return diagnostic.New(diagnostic.InvalidRequestData, index, "text must be string")
	}

	hasParams := false
	if params, ok := obj["params"]; ok && params != nil {
		if err := validatePairs(params, index, diagnostic.InvalidRequestData, "params ", true); err != nil {
			return err
		}

		hasParams = !archive.IsEmpty(params)
	}

	if hasParams && text != "" {
		return diagnostic.New(diagnostic.InvalidRequestData, index, "params and text are mutually exclusive")
	}

	if (hasParams || text != "") && mimeType == "" {
		return diagnostic.New(diagnostic.InvalidRequestData, index, "mimeType is required with params or text")
	}

	return nil
}

// Comment validates request.comment.
type Comment struct{}

// Validate implements SubValidator.
func (Comment) Validate(node any, index int) error {
	if _, ok := archive.AsString(node); !ok {
		return diagnostic.New(diagnostic.InvalidComment, index, "must be string")
	}

	return nil
}

// validatePairs checks an array of {name, value} objects. The prefix
// names the array inside its parent, e.g. "params ".
func validatePairs(node any, index int, kind diagnostic.Kind, prefix string, nameRequired bool) error {
	items, ok := archive.AsArray(node)
	if !ok {
		return diagnostic.Newf(kind, index, "%smust be array", prefix)
	}

	for i, item := range items {
		obj, ok := archive.AsObject(item)
		if !ok {
			return diagnostic.Newf(kind, index, "%sitem %d must be object", prefix, i)
		}

		name, ok := archive.AsString(obj["name"])
		if !ok {
			return diagnostic.Newf(kind, index, "%sitem %d name must be string", prefix, i)
		}

		if nameRequired && name == "" {
			return diagnostic.Newf(kind, index, "%sitem %d name must not be empty", prefix, i)
		}

		if _, ok := optionalString(obj, "value"); !ok {
			return diagnostic.Newf(kind, index, "%sitem %d value must be string", prefix, i)
		}
	}

	return nil
}

// optionalString returns obj[key] as a string. An absent or null key is
// the empty string; any other non-string reports false.
func optionalString(obj map[string]any, key string) (string, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", true
	}

	return archive.AsString(v)
}
