// Package codec validates, serializes, and parses attribute values against
// the closed schema.
//
// Writes are strict: a value outside the attribute's domain is a caller
// error and leaves the store untouched. Reads are lenient to nil: a stored
// string that does not parse exactly is treated as if the attribute were
// absent, since the store may have been mutated out-of-band.
package codec

import (
	"strings"

	"github.com/webaccess/aria/internal/ident"
	"github.com/webaccess/aria/internal/schema"
	. "github.com/webaccess/aria/internal/types"
)

// Store is the attribute surface of a host tree node.
type Store interface {
	// GetAttribute returns the stored value and whether it is present.
	GetAttribute(name string) (value string, ok bool)
	SetAttribute(name string, value string)
	RemoveAttribute(name string)
	// ID returns the node identifier, empty if unassigned.
	ID() string
	SetID(id string)
}

// Codec reads and writes typed attribute values on a single store.
type Codec struct {
	store  Store
	prefix string
	alloc  ident.Allocator
}

// New returns a codec writing attributes under "<prefix>-" on store,
// drawing generated node identifiers from alloc.
func New(store Store, prefix string, alloc ident.Allocator) *Codec {
	return &Codec{store: store, prefix: prefix, alloc: alloc}
}

func (c *Codec) describe(name string) (desc schema.Descriptor, err error) {
	desc, ok := schema.Describe(strings.ToLower(name))
	if !ok {
		err = NewError(ErrInvalidAttribute, "codec.unknownAttribute", "name", name)
	}
	return
}

// Set validates value against the attribute's domain and writes its
// serialized form. Omit value on a boolean-capable attribute to assert
// true. Either the single store write happens or the store is untouched.
func (c *Codec) Set(name string, value ...any) (err error) {
	desc, err := c.describe(name)
	if err != nil {
		return
	}
	var v any
	if len(value) > 0 {
		v = value[0]
	}
	s, write, err := c.serialize(desc, v)
	if err != nil || !write {
		return
	}
	c.store.SetAttribute(schema.FullName(c.prefix, desc.Name), s)
	return
}

// Get reads and strictly parses the attribute. A nil value means the
// attribute is absent or its stored form is malformed. Get never mutates
// the store and never assigns identifiers.
func (c *Codec) Get(name string) (v Value, err error) {
	desc, err := c.describe(name)
	if err != nil {
		return
	}
	raw, ok := c.store.GetAttribute(schema.FullName(c.prefix, desc.Name))
	if !ok {
		return
	}
	switch desc.Domain {
	case schema.ArbitraryString, schema.SingleReference, schema.ReferenceList:
		v = String(raw)
	case schema.BooleanOnly:
		v = parseBool(raw)
	case schema.BooleanWithTokens:
		if desc.HasToken(raw) {
			v = Token(raw)
		} else {
			v = parseBool(raw)
		}
	case schema.EnumeratedTokens:
		if desc.HasToken(raw) {
			v = Token(raw)
		}
	case schema.Number:
		f, ok := parseNumber(raw)
		if ok {
			v = Number(f)
		}
	}
	return
}

// Unset removes the attribute. Removing an absent attribute is not an
// error; only an unknown name is.
func (c *Codec) Unset(name string) (err error) {
	desc, err := c.describe(name)
	if err != nil {
		return
	}
	c.store.RemoveAttribute(schema.FullName(c.prefix, desc.Name))
	return
}

// parseBool accepts exactly "true" or "false". No trimming, no folding:
// " true" and "TRUE" are malformed.
func parseBool(raw string) Value {
	switch raw {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return nil
}
