package utils

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Package utils contains the JSON helpers shared by the storage engine and the
// dictionary form of update.

// ParseDictLiteral turns a brace-delimited literal such as {'x': 1, 'y': "a"}
// into a map. Single quotes are rewritten to double quotes, so the result must
// then be valid JSON.
func ParseDictLiteral(literal string) (map[string]any, error) {
	trimmed := strings.TrimSpace(literal)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return nil, errors.Errorf("not a dictionary literal: %q", literal)
	}
	normalized := strings.ReplaceAll(trimmed, "'", `"`)
	obj, err := DecodeObject([]byte(normalized))
	if err != nil {
		return nil, errors.Wrap(err, "parse dictionary literal")
	}
	return obj, nil
}

// DecodeObject decodes a JSON object keeping integers and floats apart: a
// number written with a fraction or exponent becomes float64, any other
// number becomes int.
func DecodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON object")
	}
	if obj == nil {
		return nil, errors.New("JSON value is not an object")
	}
	return normalizeNumbers(obj).(map[string]any), nil
}

func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		s := x.String()
		if !strings.ContainsAny(s, ".eE") {
			if n, err := x.Int64(); err == nil {
				return int(n)
			}
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return s
	case map[string]any:
		for k, e := range x {
			x[k] = normalizeNumbers(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = normalizeNumbers(e)
		}
		return x
	default:
		return v
	}
}

// FormatFloat renders f so that it always reads back as a float.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

// PreserveFloats returns a copy of v in which every float64 is replaced by a
// json.Number that keeps its decimal point, so 1.0 is written as 1.0 rather
// than 1. NaN and infinities have no JSON form and are written as strings.
func PreserveFloats(v any) any {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return FormatFloat(x)
		}
		return json.Number(FormatFloat(x))
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = PreserveFloats(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = PreserveFloats(e)
		}
		return out
	default:
		return v
	}
}
