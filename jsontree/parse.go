package jsontree

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse decodes raw upload bytes as UTF-8 text (accepting a leading BOM) and
// parses them into a Value tree. maxDepth bounds nesting; zero or negative
// means unbounded.
func Parse(data []byte, maxDepth int) (Value, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return Value{}, &DecodeError{Msg: "invalid UTF-8 encoding"}
	}
	if !gjson.ValidBytes(data) {
		return Value{}, &ParseError{Msg: syntaxDiagnostic(data)}
	}
	return fromResult(gjson.ParseBytes(data), 1, maxDepth)
}

// syntaxDiagnostic recovers a human-readable message for invalid JSON from
// the stdlib decoder, which reports offsets and offending characters.
func syntaxDiagnostic(data []byte) string {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err.Error()
	}
	return "invalid JSON document"
}

func fromResult(res gjson.Result, depth, maxDepth int) (Value, error) {
	if maxDepth > 0 && depth > maxDepth {
		return Value{}, &DepthLimitError{Max: maxDepth}
	}
	switch {
	case res.IsObject():
		v := Value{Kind: Object, Raw: res.Raw}
		var walkErr error
		res.ForEach(func(key, val gjson.Result) bool {
			child, err := fromResult(val, depth+1, maxDepth)
			if err != nil {
				walkErr = err
				return false
			}
			v.Members = append(v.Members, Member{Key: key.String(), Value: child})
			return true
		})
		if walkErr != nil {
			return Value{}, walkErr
		}
		return v, nil
	case res.IsArray():
		v := Value{Kind: Array, Raw: res.Raw}
		var walkErr error
		res.ForEach(func(_, val gjson.Result) bool {
			child, err := fromResult(val, depth+1, maxDepth)
			if err != nil {
				walkErr = err
				return false
			}
			v.Items = append(v.Items, child)
			return true
		})
		if walkErr != nil {
			return Value{}, walkErr
		}
		return v, nil
	}
	switch res.Type {
	case gjson.String:
		return Value{Kind: String, Str: res.Str, Raw: res.Raw}, nil
	case gjson.Number:
		return Value{Kind: Number, Raw: res.Raw}, nil
	case gjson.True:
		return Value{Kind: Bool, Bool: true, Raw: res.Raw}, nil
	case gjson.False:
		return Value{Kind: Bool, Bool: false, Raw: res.Raw}, nil
	default:
		return Value{Kind: Null, Raw: res.Raw}, nil
	}
}
