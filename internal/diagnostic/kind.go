package diagnostic

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind identifies a class of failure. The String form is stable and is
// what diagnostics report as their code.
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	MissingRequestMethod
	InvalidRequestMethod
	MissingRequestURL // MissingRequestUrl
	InvalidRequestURL // InvalidRequestUrl
	InvalidRequestQuery
	InvalidRequestHeaders
	InvalidRequestCookies
	InvalidRequestData
	InvalidComment
	InconsistentContentType
	UnrecognizedVariableType
	InvalidVariable
	InvalidArchive

	kindTotal = int(iota)
)

var titles = [kindTotal]string{
	MissingRequestMethod:     "Missing request method",
	InvalidRequestMethod:     "Invalid request method",
	MissingRequestURL:        "Missing request url",
	InvalidRequestURL:        "Invalid request url",
	InvalidRequestQuery:      "Invalid request query",
	InvalidRequestHeaders:    "Invalid request headers",
	InvalidRequestCookies:    "Invalid request cookies",
	InvalidRequestData:       "Invalid request data",
	InvalidComment:           "Invalid comment",
	InconsistentContentType:  "Inconsistent Content-Type",
	UnrecognizedVariableType: "Unrecognized variable type",
	InvalidVariable:          "Invalid variable",
	InvalidArchive:           "Invalid archive",
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < kindTotal
}

// Title returns the human-readable prefix used in error messages.
func (k Kind) Title() string {
	if !k.IsValid() {
		return k.String()
	}

	return titles[k]
}

// Error lets a Kind be used as an errors.Is target.
func (k Kind) Error() string {
	return k.String()
}
