// Package aria contains the public accessor types and functions.
//
// An Aria wraps one host tree node and provides typed get/set/unset
// access to its prefixed attribute namespace. The vocabulary of
// recognized attributes is closed; values are validated strictly on
// write and parsed strictly on read.
package aria

import (
	"github.com/webaccess/aria/internal/bind"
	"github.com/webaccess/aria/internal/codec"
	"github.com/webaccess/aria/internal/ident"
	"github.com/webaccess/aria/internal/types"
)

// Node is the contract a host tree node must satisfy. The node owns the
// stored attribute strings; the accessor owns nothing but the identifier
// allocator.
type Node = codec.Store

// Value is a typed attribute value. A nil Value from Get means the
// attribute is absent or its stored form is malformed.
type Value = types.Value

// The concrete value types returned by Get.
type (
	String = types.String
	Token  = types.Token
	Bool   = types.Bool
	Number = types.Number
)

// The two kinds of caller error.
var (
	ErrInvalidAttribute = types.ErrInvalidAttribute
	ErrInvalidValue     = types.ErrInvalidValue
)

// Allocator issues identifiers for referenced nodes.
type Allocator = ident.Allocator

// NewSequence returns an isolated monotonic allocator issuing
// "<prefix>-<n>" identifiers. Useful for tests wanting determinism.
func NewSequence(prefix string) Allocator {
	return ident.NewSequence(prefix)
}

// DefaultPrefix is the attribute namespace prefix used unless overridden.
const DefaultPrefix = "aria"

type config struct {
	prefix string
	alloc  Allocator
}

// Option configures an accessor.
type Option func(*config)

// WithPrefix sets the attribute namespace prefix. Attributes are stored
// under "<prefix>-<name>".
func WithPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}

// WithAllocator sets the identifier allocator used when a referenced node
// has no identifier yet. Defaults to the process-wide sequence.
func WithAllocator(alloc Allocator) Option {
	return func(c *config) {
		c.alloc = alloc
	}
}

// Aria is a typed accessor over one node's attribute namespace.
type Aria struct {
	node  Node
	codec *codec.Codec
}

// New returns an accessor for node.
func New(node Node, opts ...Option) *Aria {
	c := config{prefix: DefaultPrefix, alloc: ident.Default()}
	for _, opt := range opts {
		opt(&c)
	}
	return &Aria{node: node, codec: codec.New(node, c.prefix, c.alloc)}
}

// Node returns the wrapped host node.
func (a *Aria) Node() Node {
	return a.node
}

// Set writes the attribute. Omit value on a boolean-capable attribute to
// assert true. Reference-valued attributes accept a string, a Node, or
// for lists a []Node, assigning identifiers to nodes that lack them.
// Returns the accessor for chaining.
func (a *Aria) Set(name string, value ...any) (*Aria, error) {
	return a, a.codec.Set(name, value...)
}

// Get reads the attribute. Nil means absent or malformed; only an
// unknown attribute name is an error.
func (a *Aria) Get(name string) (Value, error) {
	return a.codec.Get(name)
}

// Unset removes the attribute. Removing an absent attribute is fine.
// Returns the accessor for chaining.
func (a *Aria) Unset(name string) (*Aria, error) {
	return a, a.codec.Unset(name)
}

// Has reports whether the attribute is present and well-formed.
func (a *Aria) Has(name string) (bool, error) {
	v, err := a.codec.Get(name)
	return v != nil, err
}

// Shred writes each `aria`-tagged field of the struct x onto the node.
func (a *Aria) Shred(x any) error {
	return bind.Shred(a.codec, x)
}

// Assemble populates the `aria`-tagged fields of the struct pointed to
// by ptr from the node's attributes.
func (a *Aria) Assemble(ptr any) error {
	return bind.Assemble(a.codec, ptr)
}
