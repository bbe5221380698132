package render

import (
	"strings"

	"har-to-k6/internal/codegen"
)

// lineBreaks splits comment text on every JavaScript line terminator, so
// no part of it can leave the comment.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\u2028", "\n", "\u2029", "\n")

// Comment formats text as line comments, one per input line. Empty text
// yields an empty fragment.
func Comment(text string) codegen.Fragment {
	text = strings.TrimRight(lineBreaks.Replace(text), " \t\n")
	if text == "" {
		return codegen.Fragment{}
	}

	lines := strings.Split(text, "\n")
	out := make([]codegen.Fragment, len(lines))

	for i, line := range lines {
		out[i] = codegen.Comment(line)
	}

	return codegen.Lines(out...)
}
