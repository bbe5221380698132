package validate

import (
	"maps"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"har-to-k6/internal/archive"
	"har-to-k6/internal/diagnostic"
	"har-to-k6/internal/match"
)

// methods is the HTTP method vocabulary (RFC 9110 and RFC 5789).
var methods = map[string]struct{}{
	"GET":     {},
	"HEAD":    {},
	"POST":    {},
	"PUT":     {},
	"DELETE":  {},
	"CONNECT": {},
	"OPTIONS": {},
	"TRACE":   {},
	"PATCH":   {},
}

var methodNames = slices.Sorted(maps.Keys(methods))

// bodiless lists the methods that must not carry a request body.
var bodiless = map[string]struct{}{
	"GET":   {},
	"HEAD":  {},
	"TRACE": {},
}

// schemes accepted for absolute URLs.
var schemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"ftp":   {},
	"ftps":  {},
	"ws":    {},
	"wss":   {},
}

var variablePrefixRe = regexp.MustCompile(`^\$\{[^{}\s]+\}`)

// KnownMethod reports whether m is an HTTP method, ignoring case.
func KnownMethod(m string) bool {
	_, ok := methods[strings.ToUpper(m)]
	return ok
}

// CarriesBody reports whether a request with method m may have a body.
func CarriesBody(m string) bool {
	_, ok := bodiless[strings.ToUpper(m)]
	return !ok
}

// IsAbsoluteURL reports whether s has an accepted scheme and a host.
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	if _, ok := schemes[strings.ToLower(u.Scheme)]; !ok {
		return false
	}

	return u.Host != ""
}

// IsVariableURL reports whether s starts with a ${name} reference.
func IsVariableURL(s string) bool {
	return variablePrefixRe.MatchString(s)
}

func validateMethod(node map[string]any, index int) error {
	value, ok := node["method"]
	if !ok || value == nil || value == "" {
		return diagnostic.New(diagnostic.MissingRequestMethod, index, "")
	}

	method, ok := archive.AsString(value)
	if !ok {
		return diagnostic.New(diagnostic.InvalidRequestMethod, index, "must be string")
	}

	if !KnownMethod(method) {
		if hint, ok := match.Closest(strings.ToUpper(method), methodNames); ok {
			return diagnostic.Newf(diagnostic.InvalidRequestMethod, index, "unknown method %q, did you mean %q?", method, hint)
		}

		return diagnostic.Newf(diagnostic.InvalidRequestMethod, index, "unknown method %q", method)
	}

	return nil
}

func validateURL(node map[string]any, index int) error {
	value, ok := node["url"]
	if !ok || value == nil || value == "" {
		return diagnostic.New(diagnostic.MissingRequestURL, index, "")
	}

	raw, ok := archive.AsString(value)
	if !ok {
		return diagnostic.New(diagnostic.InvalidRequestURL, index, "must be string")
	}

	if !IsAbsoluteURL(raw) && !IsVariableURL(raw) {
		return diagnostic.New(diagnostic.InvalidRequestURL, index, "must be absolute or start with variable")
	}

	return nil
}

func validateBodyAllowed(node map[string]any, index int) error {
	method, _ := archive.AsString(node["method"])
	if CarriesBody(method) || !hasBody(node["postData"]) {
		return nil
	}

	return diagnostic.Newf(diagnostic.InvalidRequestData, index, "%s request must not have body", strings.ToUpper(method))
}

// hasBody reports whether a postData node carries a mime type, params or
// text.
func hasBody(node any) bool {
	obj, ok := archive.AsObject(node)
	if !ok {
		return false
	}

	for _, key := range []string{"mimeType", "params", "text"} {
		if v, ok := obj[key]; ok && !archive.IsEmpty(v) {
			return true
		}
	}

	return false
}

func validateContentType(node map[string]any, index int) error {
	header, ok := contentTypeHeader(node["headers"])
	if !ok {
		return nil
	}

	postData, _ := archive.AsObject(node["postData"])
	mimeType, _ := archive.AsString(postData["mimeType"])

	if mimeType == "" {
		return nil
	}

	if MediaType(header) != MediaType(mimeType) {
		return diagnostic.Newf(diagnostic.InconsistentContentType, index,
			"header %q does not match body %q", header, mimeType)
	}

	return nil
}

// contentTypeHeader returns the value of the first Content-Type header.
func contentTypeHeader(node any) (string, bool) {
	items, _ := archive.AsArray(node)
	for _, item := range items {
		obj, ok := archive.AsObject(item)
		if !ok {
			continue
		}

		name, _ := archive.AsString(obj["name"])
		if !strings.EqualFold(name, "Content-Type") {
			continue
		}

		value, _ := archive.AsString(obj["value"])
		if value == "" {
			continue
		}

		return value, true
	}

	return "", false
}

// MediaType returns the lower-cased media type of a Content-Type value,
// without parameters.
func MediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}
