package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Giddy-K/AirBnB-clone/pkg/utils"
)

// Cast is the coercion applied to a registered attribute before it is stored.
type Cast int

const (
	CastAny   Cast = iota // keep the value as is
	CastText              // render the value as a string
	CastInt               // parse the value as an integer
	CastFloat             // parse the value as a float
)

func (c Cast) String() string {
	switch c {
	case CastText:
		return "text"
	case CastInt:
		return "int"
	case CastFloat:
		return "float"
	default:
		return "any"
	}
}

// Apply coerces v. Text input for CastInt must be an integer literal; float
// input is truncated toward zero.
func (c Cast) Apply(v any) (any, error) {
	switch c {
	case CastText:
		return toText(v), nil
	case CastInt:
		return toInt(v)
	case CastFloat:
		return toFloat(v)
	default:
		return v, nil
	}
}

func toText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case int:
		return strconv.Itoa(x)
	case float64:
		return utils.FormatFloat(x)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

func toInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case float64:
		return int(x), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), nil
		}
		f, err := x.Float64()
		if err != nil {
			return 0, errors.Wrapf(err, "cast %q to int", x)
		}
		return int(f), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, errors.Wrapf(err, "cast %q to int", x)
		}
		return n, nil
	default:
		return 0, errors.Errorf("cannot cast %T to int", v)
	}
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, errors.Wrapf(err, "cast %q to float", x)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, errors.Wrapf(err, "cast %q to float", x)
		}
		return f, nil
	default:
		return 0, errors.Errorf("cannot cast %T to float", v)
	}
}

// GuessNumber applies the free-form cast used for unregistered attributes:
// float when raw contains a '.', int otherwise. ok is false when raw is
// neither, in which case the caller keeps the text.
func GuessNumber(raw string) (v any, ok bool) {
	if strings.Contains(raw, ".") {
		f, err := toFloat(raw)
		return f, err == nil
	}
	n, err := toInt(raw)
	return n, err == nil
}
