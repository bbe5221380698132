package codegen

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"text/template/parse"

	"github.com/MakeNowJust/heredoc"
)

// Context maps hole names to values.
type Context map[string]any

// Template is a parsed skeleton. It is safe for concurrent use.
type Template struct {
	name  string
	nodes []node
}

// node is either skeleton text or a named hole.
type node struct {
	text string
	hole string
}

// New parses skeleton. The skeleton is dedented and its trailing newline
// dropped, so it can be written as an indented raw string. Only {{.name}}
// actions are allowed.
func New(name, skeleton string) (*Template, error) {
	if skeleton != "" {
		skeleton = strings.TrimSuffix(heredoc.Doc(skeleton), "\n")
	}

	trees, err := parse.Parse(name, skeleton, "", "")
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	t := &Template{name: name}

	tree := trees[name]
	if tree == nil || tree.Root == nil {
		return t, nil
	}

	for _, n := range tree.Root.Nodes {
		switch n := n.(type) {
		case *parse.TextNode:
			t.nodes = append(t.nodes, node{text: string(n.Text)})
		case *parse.ActionNode:
			hole, ok := holeName(n)
			if !ok {
				return nil, fmt.Errorf("template %s: unsupported action %s", name, n)
			}

			t.nodes = append(t.nodes, node{hole: hole})
		default:
			return nil, fmt.Errorf("template %s: unsupported node %s", name, n)
		}
	}

	return t, nil
}

// Must panics if err is non-nil. It is meant for package-level templates.
func Must(t *Template, err error) *Template {
	if err != nil {
		panic(err)
	}

	return t
}

func holeName(n *parse.ActionNode) (string, bool) {
	if n.Pipe == nil || len(n.Pipe.Decl) > 0 || len(n.Pipe.Cmds) != 1 {
		return "", false
	}

	args := n.Pipe.Cmds[0].Args
	if len(args) != 1 {
		return "", false
	}

	field, ok := args[0].(*parse.FieldNode)
	if !ok || len(field.Ident) != 1 {
		return "", false
	}

	return field.Ident[0], true
}

// Execute resolves every hole against ctx. A hole without a value or a
// value of an unsupported type is an error.
func (t *Template) Execute(ctx Context) (Fragment, error) {
	var out Fragment

	for _, n := range t.nodes {
		if n.hole == "" {
			out.pieces = append(out.pieces, piece{kind: pieceRaw, text: n.text})
			continue
		}

		v, ok := ctx[n.hole]
		if !ok {
			return Fragment{}, fmt.Errorf("template %s: no value for %q", t.name, n.hole)
		}

		f, err := Value(v)
		if err != nil {
			return Fragment{}, fmt.Errorf("template %s: hole %q: %w", t.name, n.hole, err)
		}

		out.pieces = append(out.pieces, piece{kind: pieceFragment, frag: f})
	}

	return out, nil
}

// Value converts a Go value into a fragment holding its JavaScript
// literal. Maps render with sorted keys.
func Value(v any) (Fragment, error) {
	switch v := v.(type) {
	case Fragment:
		return v, nil
	case string:
		return String(v), nil
	case nil:
		return Raw("null"), nil
	case bool:
		return Raw(strconv.FormatBool(v)), nil
	case int:
		return Raw(strconv.FormatInt(int64(v), 10)), nil
	case int8:
		return Raw(strconv.FormatInt(int64(v), 10)), nil
	case int16:
		return Raw(strconv.FormatInt(int64(v), 10)), nil
	case int32:
		return Raw(strconv.FormatInt(int64(v), 10)), nil
	case int64:
		return Raw(strconv.FormatInt(v, 10)), nil
	case uint:
		return Raw(strconv.FormatUint(uint64(v), 10)), nil
	case uint8:
		return Raw(strconv.FormatUint(uint64(v), 10)), nil
	case uint16:
		return Raw(strconv.FormatUint(uint64(v), 10)), nil
	case uint32:
		return Raw(strconv.FormatUint(uint64(v), 10)), nil
	case uint64:
		return Raw(strconv.FormatUint(v, 10)), nil
	case float32:
		return Raw(formatFloat(float64(v))), nil
	case float64:
		return Raw(formatFloat(v)), nil
	case []string:
		items := make([]Fragment, len(v))
		for i, s := range v {
			items[i] = String(s)
		}

		return Array(items...), nil
	case []any:
		items := make([]Fragment, len(v))
		for i, item := range v {
			f, err := Value(item)
			if err != nil {
				return Fragment{}, fmt.Errorf("index %d: %w", i, err)
			}

			items[i] = f
		}

		return Array(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		fields := make([]Field, len(keys))
		for i, k := range keys {
			f, err := Value(v[k])
			if err != nil {
				return Fragment{}, fmt.Errorf("key %q: %w", k, err)
			}

			fields[i] = Field{Key: k, Value: f}
		}

		return Object(fields...), nil
	default:
		return Fragment{}, fmt.Errorf("unsupported value type %T", v)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
