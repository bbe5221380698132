package archive

//go:generate go tool stringer -type=VariableType -output=variabletype_string.go

// VariableType selects how a Variable reads its value from a response.
// The numeric values are the ones used in archive documents.
type VariableType int

const (
	JSONPath VariableType = iota
	Regex
	CSSSelector

	// VariableTypeTotal is the number of variable types.
	VariableTypeTotal = int(iota)
)

// IsValid reports whether t is a known variable type.
func (t VariableType) IsValid() bool {
	return t >= 0 && int(t) < VariableTypeTotal
}

// Document is a loaded archive whose entries have not been validated yet.
type Document struct {
	Entries []RawEntry
}

// RawEntry is one entry as decoded from the document.
type RawEntry struct {
	// Index is the entry position in the document.
	Index int
	// Node is the decoded entry object.
	Node map[string]any
}

// Request returns the raw request node.
func (r RawEntry) Request() (any, bool) {
	v, ok := r.Node["request"]
	return v, ok
}

// Variables returns the raw variables node.
func (r RawEntry) Variables() (any, bool) {
	v, ok := r.Node["variables"]
	return v, ok
}

// Entry is a validated, typed entry.
type Entry struct {
	Index       int
	Method      string
	URL         string
	QueryString []Param
	Headers     []Header
	Cookies     []Cookie
	PostData    *PostData
	Comment     string
	Variables   []Variable
}

// Param is a query string or form parameter.
type Param struct {
	Name  string
	Value string
}

// Header is a request header. Names may repeat.
type Header struct {
	Name  string
	Value string
}

// Cookie is a request cookie.
type Cookie struct {
	Name  string
	Value string
}

// PostData is a request body. Params and Text are mutually exclusive.
type PostData struct {
	MimeType string
	Params   []Param
	Text     string
}

// IsEmpty reports whether the body carries nothing.
func (p *PostData) IsEmpty() bool {
	return p == nil || (p.MimeType == "" && len(p.Params) == 0 && p.Text == "")
}

// Variable extracts a named value from the most recent response.
type Variable struct {
	Name       string
	Type       VariableType
	Expression string
	Comment    string
}
