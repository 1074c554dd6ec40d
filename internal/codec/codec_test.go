package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webaccess/aria/internal/ident"
	"github.com/webaccess/aria/internal/schema"
	. "github.com/webaccess/aria/internal/types"
)

// node is an in-memory store satisfying the host contract.
type node struct {
	attrs map[string]string
	id    string
}

func newNode() *node {
	return &node{attrs: map[string]string{}}
}

func (n *node) GetAttribute(name string) (value string, ok bool) {
	value, ok = n.attrs[name]
	return
}

func (n *node) SetAttribute(name string, value string) {
	n.attrs[name] = value
}

func (n *node) RemoveAttribute(name string) {
	delete(n.attrs, name)
}

func (n *node) ID() string {
	return n.id
}

func (n *node) SetID(id string) {
	n.id = id
}

func newCodec() (*Codec, *node) {
	n := newNode()
	return New(n, "aria", ident.NewSequence("aria")), n
}

func TestSet(t *testing.T) {
	t.Run("unknown attribute", func(t *testing.T) {
		c, n := newCodec()
		err := c.Set("frobnicate", true)
		assert.ErrorIs(t, err, ErrInvalidAttribute)
		assert.Empty(t, n.attrs)
	})

	t.Run("name is lowercased", func(t *testing.T) {
		c, n := newCodec()
		assert.NoError(t, c.Set("CHECKED", true))
		assert.Equal(t, map[string]string{"aria-checked": "true"}, n.attrs)
	})

	t.Run("arbitrary string verbatim", func(t *testing.T) {
		c, n := newCodec()
		assert.NoError(t, c.Set("label", " Save  Document "))
		assert.Equal(t, " Save  Document ", n.attrs["aria-label"])
		err := c.Set("label", 23)
		assert.ErrorIs(t, err, ErrInvalidValue)
		err = c.Set("label")
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("booleans", func(t *testing.T) {
		c, n := newCodec()
		assert.NoError(t, c.Set("disabled", true))
		assert.Equal(t, "true", n.attrs["aria-disabled"])
		assert.NoError(t, c.Set("disabled", false))
		assert.Equal(t, "false", n.attrs["aria-disabled"])
		assert.ErrorIs(t, c.Set("disabled", "true"), ErrInvalidValue)
		assert.ErrorIs(t, c.Set("disabled", 1), ErrInvalidValue)
	})

	t.Run("omitted value asserts true", func(t *testing.T) {
		for _, name := range schema.Names() {
			desc, _ := schema.Describe(name)
			if !desc.Domain.Boolean() {
				continue
			}
			c, _ := newCodec()
			assert.NoError(t, c.Set(name), name)
			v, err := c.Get(name)
			assert.NoError(t, err, name)
			assert.Equal(t, Bool(true), v, name)
		}
	})

	t.Run("boolean with tokens", func(t *testing.T) {
		c, n := newCodec()
		assert.NoError(t, c.Set("checked", "mixed"))
		assert.Equal(t, "mixed", n.attrs["aria-checked"])
		assert.NoError(t, c.Set("checked", "undefined"))
		assert.Equal(t, "undefined", n.attrs["aria-checked"])
		assert.NoError(t, c.Set("checked", false))
		assert.Equal(t, "false", n.attrs["aria-checked"])
		assert.ErrorIs(t, c.Set("checked", "Mixed"), ErrInvalidValue)
	})

	t.Run("enumerated tokens", func(t *testing.T) {
		c, n := newCodec()
		assert.NoError(t, c.Set("sort", "descending"))
		assert.Equal(t, "descending", n.attrs["aria-sort"])
		assert.ErrorIs(t, c.Set("live"), ErrInvalidValue)
		assert.ErrorIs(t, c.Set("live", true), ErrInvalidValue)
	})

	t.Run("rejected token leaves store unmutated", func(t *testing.T) {
		c, n := newCodec()
		err := c.Set("sort", "upwards")
		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.Empty(t, n.attrs)
	})

	t.Run("numbers are canonicalized", func(t *testing.T) {
		c, n := newCodec()
		assert.NoError(t, c.Set("posinset", 32))
		assert.Equal(t, "32", n.attrs["aria-posinset"])
		assert.NoError(t, c.Set("colcount", "007"))
		assert.Equal(t, "7", n.attrs["aria-colcount"])
		assert.NoError(t, c.Set("valuenow", 2.5))
		assert.Equal(t, "2.5", n.attrs["aria-valuenow"])
		assert.ErrorIs(t, c.Set("level", "one"), ErrInvalidValue)
		assert.ErrorIs(t, c.Set("level", true), ErrInvalidValue)
		assert.ErrorIs(t, c.Set("level"), ErrInvalidValue)
	})
}

func TestSetReferences(t *testing.T) {
	t.Run("single reference", func(t *testing.T) {
		c, n := newCodec()
		assert.NoError(t, c.Set("activedescendant", "row-4"))
		assert.Equal(t, "row-4", n.attrs["aria-activedescendant"])

		other := newNode()
		assert.NoError(t, c.Set("activedescendant", other))
		assert.Equal(t, "aria-1", other.id)
		assert.Equal(t, "aria-1", n.attrs["aria-activedescendant"])

		assert.ErrorIs(t, c.Set("activedescendant", 23), ErrInvalidValue)
	})

	t.Run("nil reference is a no-op", func(t *testing.T) {
		c, n := newCodec()
		assert.NoError(t, c.Set("errormessage", "msg"))
		assert.NoError(t, c.Set("errormessage", nil))
		assert.Equal(t, "msg", n.attrs["aria-errormessage"])
		assert.NoError(t, c.Set("owns"))
		_, ok := n.attrs["aria-owns"]
		assert.False(t, ok)
	})

	t.Run("list assigns sequential identifiers in order", func(t *testing.T) {
		c, n := newCodec()
		h1, h2, h3 := newNode(), newNode(), newNode()
		assert.NoError(t, c.Set("owns", []Store{h1, h2, h3}))
		assert.Equal(t, "aria-1 aria-2 aria-3", n.attrs["aria-owns"])
		assert.Equal(t, "aria-1", h1.id)
		assert.Equal(t, "aria-2", h2.id)
		assert.Equal(t, "aria-3", h3.id)
	})

	t.Run("list keeps existing identifiers", func(t *testing.T) {
		c, n := newCodec()
		h1, h2 := newNode(), newNode()
		h1.id = "menu"
		assert.NoError(t, c.Set("controls", []Store{h1, h2}))
		assert.Equal(t, "menu aria-1", n.attrs["aria-controls"])
	})

	t.Run("list drops non-nodes", func(t *testing.T) {
		c, n := newCodec()
		h := newNode()
		assert.NoError(t, c.Set("describedby", []any{23, h, "nope", nil}))
		assert.Equal(t, "aria-1", n.attrs["aria-describedby"])
	})

	t.Run("list drops nil handles", func(t *testing.T) {
		c, n := newCodec()
		h := newNode()
		assert.NoError(t, c.Set("owns", []any{(*node)(nil), h}))
		assert.Equal(t, "aria-1", n.attrs["aria-owns"])
		assert.Equal(t, "aria-1", h.id)
	})

	t.Run("nil handle resolves to empty", func(t *testing.T) {
		c, n := newCodec()
		assert.Empty(t, c.ResolveID((*node)(nil)))
		assert.NoError(t, c.Set("activedescendant", (*node)(nil)))
		_, ok := n.attrs["aria-activedescendant"]
		assert.False(t, ok)
	})

	t.Run("resolving twice yields the same identifier", func(t *testing.T) {
		c, _ := newCodec()
		h := newNode()
		first := c.ResolveID(h)
		assert.Equal(t, first, c.ResolveID(h))
	})

	t.Run("distinct handles yield distinct identifiers", func(t *testing.T) {
		c, _ := newCodec()
		seen := map[string]bool{}
		for i := 0; i < 8; i++ {
			id := c.ResolveID(newNode())
			assert.False(t, seen[id], id)
			seen[id] = true
		}
	})
}

func TestGet(t *testing.T) {
	t.Run("unknown attribute", func(t *testing.T) {
		c, _ := newCodec()
		_, err := c.Get("frobnicate")
		assert.ErrorIs(t, err, ErrInvalidAttribute)
	})

	t.Run("absent is nil for every domain", func(t *testing.T) {
		c, _ := newCodec()
		for _, name := range schema.Names() {
			v, err := c.Get(name)
			assert.NoError(t, err, name)
			assert.Nil(t, v, name)
		}
	})

	t.Run("string domains return the raw string", func(t *testing.T) {
		c, n := newCodec()
		n.attrs["aria-label"] = " raw  value "
		n.attrs["aria-owns"] = "a b c"
		v, err := c.Get("label")
		assert.NoError(t, err)
		assert.Equal(t, String(" raw  value "), v)
		v, err = c.Get("owns")
		assert.NoError(t, err)
		assert.Equal(t, String("a b c"), v)
	})

	t.Run("strict booleans", func(t *testing.T) {
		c, n := newCodec()
		for raw, expected := range map[string]Value{
			"true":  Bool(true),
			"false": Bool(false),
			" true": nil,
			"TRUE":  nil,
			"1":     nil,
			"":      nil,
		} {
			n.attrs["aria-busy"] = raw
			v, err := c.Get("busy")
			assert.NoError(t, err, raw)
			assert.Equal(t, expected, v, raw)
		}
	})

	t.Run("boolean with tokens prefers the token", func(t *testing.T) {
		c, n := newCodec()
		n.attrs["aria-pressed"] = "mixed"
		v, err := c.Get("pressed")
		assert.NoError(t, err)
		assert.Equal(t, Token("mixed"), v)
		n.attrs["aria-pressed"] = "true"
		v, err = c.Get("pressed")
		assert.NoError(t, err)
		assert.Equal(t, Bool(true), v)
		n.attrs["aria-pressed"] = "undefined"
		v, err = c.Get("pressed")
		assert.NoError(t, err)
		assert.Equal(t, Token("undefined"), v)
	})

	t.Run("strict tokens", func(t *testing.T) {
		c, n := newCodec()
		n.attrs["aria-sort"] = "ascending"
		v, err := c.Get("sort")
		assert.NoError(t, err)
		assert.Equal(t, Token("ascending"), v)
		for _, raw := range []string{" ascending", "Ascending", "upwards", "true"} {
			n.attrs["aria-sort"] = raw
			v, err = c.Get("sort")
			assert.NoError(t, err, raw)
			assert.Nil(t, v, raw)
		}
	})

	t.Run("numbers coerce on read", func(t *testing.T) {
		c, n := newCodec()
		n.attrs["aria-setsize"] = " 59 "
		v, err := c.Get("setsize")
		assert.NoError(t, err)
		assert.Equal(t, Number(59), v)
		n.attrs["aria-setsize"] = "one"
		v, err = c.Get("setsize")
		assert.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("read never assigns identifiers", func(t *testing.T) {
		c, n := newCodec()
		n.attrs["aria-activedescendant"] = "x"
		_, err := c.Get("activedescendant")
		assert.NoError(t, err)
		assert.Empty(t, n.id)
	})
}

func TestRoundTrips(t *testing.T) {
	cases := []struct {
		name     string
		input    any
		expected Value
	}{
		{"label", "Close dialog", String("Close dialog")},
		{"valuetext", "half", String("half")},
		{"activedescendant", "opt-2", String("opt-2")},
		{"checked", true, Bool(true)},
		{"checked", "mixed", Token("mixed")},
		{"hidden", false, Bool(false)},
		{"haspopup", "menu", Token("menu")},
		{"autocomplete", "both", Token("both")},
		{"orientation", "undefined", Token("undefined")},
		{"posinset", 32, Number(32)},
		{"colcount", "007", Number(7)},
		{"valuemax", 99.5, Number(99.5)},
	}
	for _, c := range cases {
		codec, _ := newCodec()
		assert.NoError(t, codec.Set(c.name, c.input))
		v, err := codec.Get(c.name)
		assert.NoError(t, err, c.name)
		assert.Equal(t, c.expected, v, c.name)
	}
}

func TestUnset(t *testing.T) {
	t.Run("unknown attribute", func(t *testing.T) {
		c, _ := newCodec()
		assert.ErrorIs(t, c.Unset("frobnicate"), ErrInvalidAttribute)
	})

	t.Run("idempotent", func(t *testing.T) {
		c, n := newCodec()
		assert.NoError(t, c.Set("modal", true))
		assert.NoError(t, c.Unset("modal"))
		v, err := c.Get("modal")
		assert.NoError(t, err)
		assert.Nil(t, v)
		assert.NoError(t, c.Unset("modal"))
		assert.Empty(t, n.attrs)
	})
}
