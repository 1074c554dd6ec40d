package codec

import (
	"math"
	"strconv"
	"strings"

	"github.com/webaccess/aria/internal/schema"
	. "github.com/webaccess/aria/internal/types"
)

// serialize dispatches on the attribute's domain and returns the string
// to store. write is false when the input is a legal no-op (a nil
// reference), in which case the store must not be touched.
func (c *Codec) serialize(desc schema.Descriptor, v any) (s string, write bool, err error) {
	switch desc.Domain {
	case schema.ArbitraryString:
		typed, ok := v.(string)
		if !ok {
			err = invalidValue(desc, v)
			return
		}
		// Verbatim: no trimming, no case change.
		s, write = typed, true
	case schema.SingleReference:
		switch typed := v.(type) {
		case nil:
		case string:
			s, write = typed, true
		case Store:
			// A nil handle is a no-op, like an absent value.
			if id := c.ResolveID(typed); id != "" {
				s, write = id, true
			}
		default:
			err = invalidValue(desc, v)
		}
	case schema.ReferenceList:
		switch typed := v.(type) {
		case nil:
		case string:
			s, write = typed, true
		case Store:
			if id := c.ResolveID(typed); id != "" {
				s, write = id, true
			}
		case []Store:
			refs := make([]any, len(typed))
			for i, ref := range typed {
				refs[i] = ref
			}
			s, write = c.resolveList(refs), true
		case []any:
			s, write = c.resolveList(typed), true
		default:
			err = invalidValue(desc, v)
		}
	case schema.BooleanOnly, schema.BooleanWithTokens:
		switch typed := v.(type) {
		case nil:
			// Omitted value asserts the attribute.
			s, write = "true", true
		case bool:
			s, write = strconv.FormatBool(typed), true
		case string:
			if desc.Domain == schema.BooleanWithTokens && desc.HasToken(typed) {
				s, write = typed, true
			} else {
				err = invalidValue(desc, v)
			}
		default:
			err = invalidValue(desc, v)
		}
	case schema.EnumeratedTokens:
		typed, ok := v.(string)
		if !ok || !desc.HasToken(typed) {
			err = invalidValue(desc, v)
			return
		}
		s, write = typed, true
	case schema.Number:
		f, ok := numericValue(v)
		if !ok {
			err = invalidValue(desc, v)
			return
		}
		// Canonical form: parsed and restringified, so "007" stores as "7".
		s, write = strconv.FormatFloat(f, 'g', -1, 64), true
	}
	return
}

func invalidValue(desc schema.Descriptor, v any) error {
	return NewError(ErrInvalidValue, "codec.invalidValue", "name", desc.Name, "domain", desc.Domain, "value", v)
}

// numericValue widens any Go numeric kind to float64 and parses numeric
// strings. NaN never serializes.
func numericValue(v any) (f float64, ok bool) {
	switch typed := v.(type) {
	case float64:
		f, ok = typed, true
	case float32:
		f, ok = float64(typed), true
	case int:
		f, ok = float64(typed), true
	case int8:
		f, ok = float64(typed), true
	case int16:
		f, ok = float64(typed), true
	case int32:
		f, ok = float64(typed), true
	case int64:
		f, ok = float64(typed), true
	case uint:
		f, ok = float64(typed), true
	case uint8:
		f, ok = float64(typed), true
	case uint16:
		f, ok = float64(typed), true
	case uint32:
		f, ok = float64(typed), true
	case uint64:
		f, ok = float64(typed), true
	case string:
		f, ok = parseNumber(typed)
	}
	if ok && math.IsNaN(f) {
		ok = false
	}
	return
}

// parseNumber is the read-side numeric parse. Surrounding whitespace is
// tolerated, matching standard numeric coercion of stored strings.
func parseNumber(raw string) (f float64, ok bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	ok = err == nil && !math.IsNaN(f)
	return
}
