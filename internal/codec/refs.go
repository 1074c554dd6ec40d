package codec

import (
	"reflect"
	"strings"
)

// ResolveID returns the identifier of a referenced node, assigning the
// next identifier from the allocator if the node has none. Resolving is
// idempotent: a node that already carries an identifier keeps it.
//
// Non-node values and nil handles resolve to the empty string. Inside a
// reference list that is a filter condition, not an error.
func (c *Codec) ResolveID(v any) string {
	ref, ok := v.(Store)
	if !ok || ref == nil || nilHandle(ref) {
		return ""
	}
	if id := ref.ID(); id != "" {
		return id
	}
	id := c.alloc.NextID()
	ref.SetID(id)
	return id
}

// nilHandle reports whether the interface wraps a typed-nil pointer.
func nilHandle(ref Store) bool {
	rv := reflect.ValueOf(ref)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// resolveList resolves each element in input order, dropping those that
// resolve to empty, and joins the rest with single spaces.
func (c *Codec) resolveList(refs []any) string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		id := c.ResolveID(ref)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return strings.Join(ids, " ")
}
