package codegen

import (
	"regexp"
	"strings"
)

type pieceKind int

const (
	pieceRaw pieceKind = iota
	pieceString
	pieceTemplateText
	pieceComment
	pieceFragment
)

type piece struct {
	kind pieceKind
	text string
	frag Fragment
}

// Fragment is an immutable unit of generated source. The zero value is an
// empty fragment.
type Fragment struct {
	pieces []piece
}

// Raw wraps trusted source text. It must never carry user data.
func Raw(text string) Fragment {
	if text == "" {
		return Fragment{}
	}

	return Fragment{pieces: []piece{{kind: pieceRaw, text: text}}}
}

// commentBreaks maps every JavaScript line terminator to a space.
var commentBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\u2028", " ", "\u2029", " ")

// Comment returns a fragment holding text as a single line comment.
// Line terminators in text become spaces, so it cannot leave the
// comment.
func Comment(text string) Fragment {
	return Fragment{pieces: []piece{{kind: pieceComment, text: text}}}
}

// String returns a fragment holding s as a quoted string literal.
func String(s string) Fragment {
	return Fragment{pieces: []piece{{kind: pieceString, text: s}}}
}

// IsZero reports whether f renders to nothing.
func (f Fragment) IsZero() bool {
	return len(f.pieces) == 0
}

// String serializes the fragment.
func (f Fragment) String() string {
	w := &writer{lineStart: true}
	f.writeTo(w)

	return w.sb.String()
}

func (f Fragment) writeTo(w *writer) {
	for _, p := range f.pieces {
		switch p.kind {
		case pieceRaw:
			w.write(p.text)
		case pieceString:
			w.write(Quote(p.text))
		case pieceTemplateText:
			var b strings.Builder
			writeEscaped(&b, p.text, '`')
			w.write(b.String())
		case pieceComment:
			text := strings.TrimRight(commentBreaks.Replace(p.text), " \t")
			if text == "" {
				w.write("//")
				continue
			}

			w.write("// " + text)
		case pieceFragment:
			w.splice(p.frag)
		}
	}
}

// Join concatenates the non-empty fragments, separated by sep.
func Join(sep string, frags ...Fragment) Fragment {
	var out Fragment

	for _, f := range frags {
		if f.IsZero() {
			continue
		}

		if !out.IsZero() && sep != "" {
			out.pieces = append(out.pieces, piece{kind: pieceRaw, text: sep})
		}

		out.pieces = append(out.pieces, piece{kind: pieceFragment, frag: f})
	}

	return out
}

// Lines joins the non-empty fragments with newlines.
func Lines(frags ...Fragment) Fragment {
	return Join("\n", frags...)
}

// Field is one property of an object literal.
type Field struct {
	Key   string
	Value Fragment
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Object renders an object literal with one property per line, in the
// given order. Keys that are valid identifiers are left bare.
func Object(fields ...Field) Fragment {
	if len(fields) == 0 {
		return Raw("{}")
	}

	out := Fragment{pieces: []piece{{kind: pieceRaw, text: "{\n"}}}
	for _, fld := range fields {
		out.pieces = append(out.pieces, piece{kind: pieceRaw, text: "  "})

		if identifierRe.MatchString(fld.Key) {
			out.pieces = append(out.pieces, piece{kind: pieceRaw, text: fld.Key})
		} else {
			out.pieces = append(out.pieces, piece{kind: pieceString, text: fld.Key})
		}

		out.pieces = append(out.pieces,
			piece{kind: pieceRaw, text: ": "},
			piece{kind: pieceFragment, frag: fld.Value},
			piece{kind: pieceRaw, text: ",\n"},
		)
	}

	out.pieces = append(out.pieces, piece{kind: pieceRaw, text: "}"})

	return out
}

// Array renders an inline array literal.
func Array(items ...Fragment) Fragment {
	out := Fragment{pieces: []piece{{kind: pieceRaw, text: "["}}}

	for i, item := range items {
		if i > 0 {
			out.pieces = append(out.pieces, piece{kind: pieceRaw, text: ", "})
		}

		out.pieces = append(out.pieces, piece{kind: pieceFragment, frag: item})
	}

	out.pieces = append(out.pieces, piece{kind: pieceRaw, text: "]"})

	return out
}

// Segment is a part of a template literal: either literal Text or, when
// Expr is non-empty, a substitution.
type Segment struct {
	Text string
	Expr Fragment
}

// TemplateLiteral renders a backtick literal from its segments.
func TemplateLiteral(segments ...Segment) Fragment {
	out := Fragment{pieces: []piece{{kind: pieceRaw, text: "`"}}}

	for _, seg := range segments {
		if !seg.Expr.IsZero() {
			out.pieces = append(out.pieces,
				piece{kind: pieceRaw, text: "${"},
				piece{kind: pieceFragment, frag: seg.Expr},
				piece{kind: pieceRaw, text: "}"},
			)

			continue
		}

		if seg.Text != "" {
			out.pieces = append(out.pieces, piece{kind: pieceTemplateText, text: seg.Text})
		}
	}

	out.pieces = append(out.pieces, piece{kind: pieceRaw, text: "`"})

	return out
}

// writer serializes fragments. Continuation lines of a spliced fragment
// are prefixed with the indentation of the line it was spliced into.
type writer struct {
	sb         strings.Builder
	prefix     string
	lineStart  bool
	lineIndent string
	lineText   bool
}

func (w *writer) write(s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]

		if c == '\n' {
			w.sb.WriteByte(c)
			w.lineStart = true
			w.lineIndent = ""
			w.lineText = false

			continue
		}

		if w.lineStart {
			w.sb.WriteString(w.prefix)
			w.lineIndent = w.prefix
			w.lineStart = false
		}

		if !w.lineText && (c == ' ' || c == '\t') {
			w.lineIndent += string(c)
		} else {
			w.lineText = true
		}

		w.sb.WriteByte(c)
	}
}

func (w *writer) splice(f Fragment) {
	saved := w.prefix

	if w.lineStart {
		w.prefix = saved
	} else {
		w.prefix = w.lineIndent
	}

	f.writeTo(w)
	w.prefix = saved
}
