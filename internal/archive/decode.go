package archive

import (
	"errors"
	"fmt"
)

// Decode converts a validated raw entry into an Entry. It reports an
// error for any shape the validator would have rejected.
func Decode(raw RawEntry) (Entry, error) {
	reqNode, _ := raw.Request()

	req, ok := AsObject(reqNode)
	if !ok {
		return Entry{}, fmt.Errorf("entry %d: request is not an object", raw.Index)
	}

	e := Entry{Index: raw.Index}
	e.Method, _ = AsString(req["method"])
	e.URL, _ = AsString(req["url"])
	e.Comment, _ = AsString(req["comment"])

	var err error
	if e.QueryString, err = decodePairs(req["queryString"], newParam); err != nil {
		return Entry{}, fmt.Errorf("entry %d: queryString: %w", raw.Index, err)
	}

	if e.Headers, err = decodePairs(req["headers"], newHeader); err != nil {
		return Entry{}, fmt.Errorf("entry %d: headers: %w", raw.Index, err)
	}

	if e.Cookies, err = decodePairs(req["cookies"], newCookie); err != nil {
		return Entry{}, fmt.Errorf("entry %d: cookies: %w", raw.Index, err)
	}

	if e.PostData, err = decodePostData(req["postData"]); err != nil {
		return Entry{}, fmt.Errorf("entry %d: postData: %w", raw.Index, err)
	}

	if varsNode, ok := raw.Variables(); ok {
		if e.Variables, err = decodeVariables(varsNode); err != nil {
			return Entry{}, fmt.Errorf("entry %d: variables: %w", raw.Index, err)
		}
	}

	return e, nil
}

func newParam(name, value string) Param   { return Param{Name: name, Value: value} }
func newHeader(name, value string) Header { return Header{Name: name, Value: value} }
func newCookie(name, value string) Cookie { return Cookie{Name: name, Value: value} }

func decodePairs[T any](node any, mk func(name, value string) T) ([]T, error) {
	if node == nil {
		return nil, nil
	}

	items, ok := AsArray(node)
	if !ok {
		return nil, errors.New("not an array")
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		obj, ok := AsObject(item)
		if !ok {
			return nil, fmt.Errorf("item %d is not an object", i)
		}

		name, _ := AsString(obj["name"])
		value, _ := AsString(obj["value"])
		out = append(out, mk(name, value))
	}

	return out, nil
}

func decodePostData(node any) (*PostData, error) {
	if node == nil {
		return nil, nil
	}

	obj, ok := AsObject(node)
	if !ok {
		return nil, errors.New("not an object")
	}

	pd := &PostData{}
	pd.MimeType, _ = AsString(obj["mimeType"])
	pd.Text, _ = AsString(obj["text"])

	params, err := decodePairs(obj["params"], newParam)
	if err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}

	pd.Params = params

	return pd, nil
}

func decodeVariables(node any) ([]Variable, error) {
	items, ok := AsArray(node)
	if !ok {
		return nil, errors.New("not an array")
	}

	out := make([]Variable, 0, len(items))
	for i, item := range items {
		obj, ok := AsObject(item)
		if !ok {
			return nil, fmt.Errorf("item %d is not an object", i)
		}

		typ, ok := AsInt(obj["type"])
		if !ok {
			return nil, fmt.Errorf("item %d: type is not an integer", i)
		}

		v := Variable{Type: VariableType(typ)}
		v.Name, _ = AsString(obj["name"])
		v.Expression, _ = AsString(obj["expression"])
		v.Comment, _ = AsString(obj["comment"])
		out = append(out, v)
	}

	return out, nil
}
