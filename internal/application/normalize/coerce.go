package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type object = map[string]any

// str returns v if it is a string, else "".
func str(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// text is str that also accepts numbers, rendered in their JSON form.
func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	}
	return ""
}

var numberReplacer = strings.NewReplacer("$", "", ",", "", "%", "", " ", "")

// number returns v as a finite float, accepting numeric strings such as "$12,000" or "25%".
func number(v any) float64 {
	var f float64
	var err error
	switch t := v.(type) {
	case json.Number:
		f, err = t.Float64()
	case float64:
		f = t
	case string:
		f, err = strconv.ParseFloat(numberReplacer.Replace(strings.TrimSpace(t)), 64)
	default:
		return 0
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// strs returns the string and number elements of an array; anything else yields an empty slice.
func strs(v any) []string {
	arr, _ := v.([]any)
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		switch t := item.(type) {
		case string:
			out = append(out, t)
		case json.Number:
			out = append(out, t.String())
		}
	}
	return out
}

// objects returns the object elements of an array.
func objects(v any) []object {
	arr, _ := v.([]any)
	out := make([]object, 0, len(arr))
	for _, item := range arr {
		if o, ok := item.(object); ok {
			out = append(out, o)
		}
	}
	return out
}

// dedupe keeps the first occurrence of each value, compared case-insensitively.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
