package render

import (
	"net/url"
	"regexp"
	"strings"

	"har-to-k6/internal/archive"
	"har-to-k6/internal/codegen"
	"har-to-k6/internal/diagnostic"
)

// referenceRe matches a ${name} variable reference.
var referenceRe = regexp.MustCompile(`\$\{([^{}\s]+)\}`)

var callTemplate = codegen.Must(codegen.New("request", `response = http.{{.fn}}({{.args}});`))

// functions maps methods to their k6/http shorthand. The flag tells
// whether the shorthand takes a body argument.
var functions = map[string]struct {
	name string
	body bool
}{
	"GET":     {"get", false},
	"HEAD":    {"head", false},
	"POST":    {"post", true},
	"PUT":     {"put", true},
	"PATCH":   {"patch", true},
	"DELETE":  {"del", true},
	"OPTIONS": {"options", true},
}

// Request renders the entry's comment, the HTTP call storing its result
// in response, and the entry's variables.
func Request(e archive.Entry) (codegen.Fragment, error) {
	method := strings.ToUpper(e.Method)
	target := interpolate(withQuery(e.URL, e.QueryString))
	body := renderBody(e.PostData)
	params := renderParams(e)

	var fn string
	var args []codegen.Fragment

	if f, ok := functions[method]; ok {
		fn = f.name
		args = []codegen.Fragment{target}

		if f.body {
			args = append(args, body)
		}
	} else {
		fn = "request"
		args = []codegen.Fragment{codegen.String(method), target, body}
	}

	if params.IsZero() {
		// A trailing null body says nothing.
		if last := len(args) - 1; last > 0 && args[last].String() == "null" {
			args = args[:last]
		}
	} else {
		args = append(args, params)
	}

	call, err := callTemplate.Execute(codegen.Context{
		"fn":   codegen.Raw(fn),
		"args": codegen.Join(", ", args...),
	})
	if err != nil {
		return codegen.Fragment{}, err
	}

	vars, err := Variables(e.Variables)
	if err != nil {
		return codegen.Fragment{}, diagnostic.WithIndex(err, e.Index)
	}

	return codegen.Lines(Comment(e.Comment), call, vars), nil
}

// References returns the names of the variables the entry's request uses,
// in order of first appearance.
func References(e archive.Entry) []string {
	texts := []string{e.URL}

	for _, p := range e.QueryString {
		texts = append(texts, p.Name, p.Value)
	}

	for _, h := range e.Headers {
		texts = append(texts, h.Value)
	}

	for _, c := range e.Cookies {
		texts = append(texts, c.Value)
	}

	if e.PostData != nil {
		for _, p := range e.PostData.Params {
			texts = append(texts, p.Name, p.Value)
		}

		texts = append(texts, e.PostData.Text)
	}

	var names []string

	seen := map[string]struct{}{}
	for _, text := range texts {
		for _, m := range referenceRe.FindAllStringSubmatch(text, -1) {
			if _, ok := seen[m[1]]; ok {
				continue
			}

			seen[m[1]] = struct{}{}
			names = append(names, m[1])
		}
	}

	return names
}

// interpolate renders s as a string literal, or as a template literal
// reading from vars when s holds ${name} references.
func interpolate(s string) codegen.Fragment {
	locs := referenceRe.FindAllStringSubmatchIndex(s, -1)
	if len(locs) == 0 {
		return codegen.String(s)
	}

	segs := make([]codegen.Segment, 0, 2*len(locs)+1)
	last := 0

	for _, loc := range locs {
		segs = append(segs,
			codegen.Segment{Text: s[last:loc[0]]},
			codegen.Segment{Expr: varRef(s[loc[2]:loc[3]])},
		)
		last = loc[1]
	}

	segs = append(segs, codegen.Segment{Text: s[last:]})

	return codegen.TemplateLiteral(segs...)
}

func varRef(name string) codegen.Fragment {
	return codegen.Join("", codegen.Raw("vars["), codegen.String(name), codegen.Raw("]"))
}

// withQuery appends params to the query of rawURL, ahead of any
// fragment. Pairs already present in the URL's query are not repeated,
// since archives usually list the URL's own query again. Pairs are
// compared decoded.
func withQuery(rawURL string, params []archive.Param) string {
	if len(params) == 0 {
		return rawURL
	}

	base, fragment, hasFragment := strings.Cut(rawURL, "#")
	base, query, hasQuery := strings.Cut(base, "?")

	present := map[archive.Param]struct{}{}

	// Pairs that fail to decode are left out; they are kept in the URL
	// as written.
	existing, _ := url.ParseQuery(query)
	for name, values := range existing {
		for _, v := range values {
			present[archive.Param{Name: name, Value: v}] = struct{}{}
		}
	}

	var b strings.Builder
	b.WriteString(base)

	sep := "?"
	if hasQuery {
		b.WriteString("?")
		b.WriteString(query)

		sep = "&"
		if query == "" || strings.HasSuffix(query, "&") {
			sep = ""
		}
	}

	for _, p := range params {
		if _, ok := present[p]; ok {
			continue
		}

		present[p] = struct{}{}

		b.WriteString(sep)
		b.WriteString(encodeQuery(p.Name))
		b.WriteString("=")
		b.WriteString(encodeQuery(p.Value))
		sep = "&"
	}

	if hasFragment {
		b.WriteString("#")
		b.WriteString(fragment)
	}

	return b.String()
}

// encodeQuery percent-encodes s for a query component, leaving ${name}
// references intact.
func encodeQuery(s string) string {
	var b strings.Builder

	last := 0
	for _, loc := range referenceRe.FindAllStringIndex(s, -1) {
		b.WriteString(url.QueryEscape(s[last:loc[0]]))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}

	b.WriteString(url.QueryEscape(s[last:]))

	return b.String()
}

// renderBody returns the body argument: an object for form params, a
// string for text, null otherwise. Repeated param names cannot live in an
// object and are sent url-encoded instead.
func renderBody(p *archive.PostData) codegen.Fragment {
	switch {
	case p.IsEmpty():
		return codegen.Raw("null")
	case len(p.Params) > 0:
		if !uniqueNames(p.Params) {
			pairs := make([]string, len(p.Params))
			for i, param := range p.Params {
				pairs[i] = encodeQuery(param.Name) + "=" + encodeQuery(param.Value)
			}

			return interpolate(strings.Join(pairs, "&"))
		}

		fields := make([]codegen.Field, len(p.Params))
		for i, param := range p.Params {
			fields[i] = codegen.Field{Key: param.Name, Value: interpolate(param.Value)}
		}

		return codegen.Object(fields...)
	case p.Text != "":
		return interpolate(p.Text)
	default:
		return codegen.Raw("null")
	}
}

func uniqueNames(params []archive.Param) bool {
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if _, ok := seen[p.Name]; ok {
			return false
		}

		seen[p.Name] = struct{}{}
	}

	return true
}

// renderParams returns the params argument, or an empty fragment when
// there are neither headers nor cookies to send.
func renderParams(e archive.Entry) codegen.Fragment {
	var fields []codegen.Field

	if headers := renderHeaders(e); !headers.IsZero() {
		fields = append(fields, codegen.Field{Key: "headers", Value: headers})
	}

	if cookies := renderCookies(e.Cookies); !cookies.IsZero() {
		fields = append(fields, codegen.Field{Key: "cookies", Value: cookies})
	}

	if len(fields) == 0 {
		return codegen.Fragment{}
	}

	return codegen.Object(fields...)
}

type namedValue struct {
	name  string
	value string
}

// renderHeaders builds the headers object. Repeated names are merged
// into one comma separated value under the first spelling.
func renderHeaders(e archive.Entry) codegen.Fragment {
	var headers []namedValue

	pos := map[string]int{}
	hasContentType := false

	for _, h := range e.Headers {
		key := strings.ToLower(h.Name)

		switch {
		case strings.HasPrefix(key, ":"), key == "content-length":
			continue
		case key == "cookie" && len(e.Cookies) > 0:
			continue
		case key == "content-type":
			hasContentType = true
		}

		if i, ok := pos[key]; ok {
			sep := ", "
			if key == "cookie" {
				sep = "; "
			}

			headers[i].value += sep + h.Value

			continue
		}

		pos[key] = len(headers)
		headers = append(headers, namedValue{h.Name, h.Value})
	}

	if !hasContentType && e.PostData != nil && e.PostData.MimeType != "" {
		headers = append(headers, namedValue{"Content-Type", e.PostData.MimeType})
	}

	return objectOf(headers)
}

// renderCookies builds the cookies object. A repeated name keeps its
// first position and its last value.
func renderCookies(cookies []archive.Cookie) codegen.Fragment {
	var out []namedValue

	pos := map[string]int{}
	for _, c := range cookies {
		if i, ok := pos[c.Name]; ok {
			out[i].value = c.Value
			continue
		}

		pos[c.Name] = len(out)
		out = append(out, namedValue{c.Name, c.Value})
	}

	return objectOf(out)
}

func objectOf(values []namedValue) codegen.Fragment {
	if len(values) == 0 {
		return codegen.Fragment{}
	}

	fields := make([]codegen.Field, len(values))
	for i, v := range values {
		fields[i] = codegen.Field{Key: v.name, Value: interpolate(v.value)}
	}

	return codegen.Object(fields...)
}
