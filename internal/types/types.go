// Package types defines the core system types.
package types

import (
	"fmt"
	"strconv"
)

// Value is an immutable scalar read from an attribute. Nil is not a valid
// value; an absent or malformed attribute is represented by a nil Value.
type Value interface {
	IsEmpty() bool
}

// String is the raw stored form of a string or reference-valued attribute.
type String string

func (s String) String() string {
	return fmt.Sprintf("#str(%q)", string(s))
}

// Token is one of the permitted literals of an enumerated domain.
type Token string

func (t Token) String() string {
	return fmt.Sprintf("#tok(%s)", string(t))
}

// Bool is a boolean attribute value.
type Bool bool

func (b Bool) String() string {
	if bool(b) {
		return "#t"
	} else {
		return "#f"
	}
}

// Number is a numeric attribute value.
type Number float64

func (n Number) String() string {
	return "#num(" + strconv.FormatFloat(float64(n), 'g', -1, 64) + ")"
}

func (x String) IsEmpty() bool { return string(x) == "" }
func (x Token) IsEmpty() bool  { return string(x) == "" }
func (x Bool) IsEmpty() bool   { return !bool(x) }
func (x Number) IsEmpty() bool { return float64(x) == 0 }
