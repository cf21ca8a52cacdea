package uiconfig

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidJSON is returned when the document is not valid JSON.
	ErrInvalidJSON = errors.New("uiconfig: invalid JSON")
	// ErrNotObject is returned when the document root is not a JSON object.
	ErrNotObject = errors.New("uiconfig: document root is not an object")
)

// Document indexes the top-level keys of a UI configuration file by their
// lowercased form. When several keys differ only by case, the first one in
// document order wins.
type Document struct {
	index map[string]gjson.Result
}

// ParseDocument validates data and builds the case-insensitive index.
func ParseDocument(data []byte) (Document, error) {
	if !gjson.ValidBytes(data) {
		return Document{}, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Document{}, ErrNotObject
	}
	doc := Document{index: make(map[string]gjson.Result)}
	root.ForEach(func(key, value gjson.Result) bool {
		lowered := strings.ToLower(key.String())
		if _, exists := doc.index[lowered]; !exists {
			doc.index[lowered] = value
		}
		return true
	})
	return doc, nil
}

// Len reports the number of distinct (case-folded) keys.
func (d Document) Len() int {
	return len(d.index)
}

// Lookup returns the raw value stored under key, ignoring case.
func (d Document) Lookup(key string) (gjson.Result, bool) {
	if d.index == nil {
		return gjson.Result{}, false
	}
	value, ok := d.index[strings.ToLower(key)]
	return value, ok
}

// Int looks up key and coerces its value to an int. JSON numbers are
// truncated toward zero; strings must hold a base-10 integer, surrounding
// whitespace allowed. Anything else reports false.
func (d Document) Int(key string) (int, bool) {
	value, ok := d.Lookup(key)
	if !ok {
		return 0, false
	}
	return coerceInt(value)
}

func coerceInt(value gjson.Result) (int, bool) {
	switch value.Type {
	case gjson.Number:
		if n, err := strconv.ParseInt(value.Raw, 10, 0); err == nil {
			return int(n), true
		}
		f := value.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt || f < math.MinInt {
			return 0, false
		}
		return int(f), true
	case gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(value.Str))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
