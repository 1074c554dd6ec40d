// Package schema defines the closed vocabulary of recognized attributes.
//
// The vocabulary is total and immutable: every recognized name maps to
// exactly one descriptor, and any name outside the table is invalid input.
package schema

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Domain classifies the legal values of an attribute.
type Domain int

const (
	ArbitraryString Domain = iota + 1
	SingleReference
	ReferenceList
	BooleanOnly
	BooleanWithTokens
	EnumeratedTokens
	Number
)

func (d Domain) String() string {
	switch d {
	case ArbitraryString:
		return "string"
	case SingleReference:
		return "ref"
	case ReferenceList:
		return "reflist"
	case BooleanOnly:
		return "bool"
	case BooleanWithTokens:
		return "bool+tokens"
	case EnumeratedTokens:
		return "tokens"
	case Number:
		return "number"
	}
	return "invalid"
}

// Boolean reports whether the domain accepts boolean values.
func (d Domain) Boolean() bool {
	return d == BooleanOnly || d == BooleanWithTokens
}

// Tokenized reports whether the domain carries a permitted token set.
func (d Domain) Tokenized() bool {
	return d == BooleanWithTokens || d == EnumeratedTokens
}

// Descriptor describes one recognized attribute.
type Descriptor struct {
	// Name is the lowercase attribute name, without the namespace prefix.
	Name string
	// Domain specifies the legal values of the attribute.
	Domain Domain
	// Tokens lists the permitted non-boolean literals for token domains,
	// in specification order. Matches are exact and case-sensitive.
	Tokens []string
}

// HasToken reports whether token is one of the descriptor's permitted
// literals. The match is exact: no case folding, no whitespace trimming.
func (desc Descriptor) HasToken(token string) bool {
	for _, t := range desc.Tokens {
		if t == token {
			return true
		}
	}
	return false
}

// Descriptors is the closed attribute vocabulary, keyed by lowercase name.
//
// "undefined" appears as a literal permitted token wherever the attribute
// vocabulary defines the literal string value, distinct from the attribute
// being absent.
var Descriptors = map[string]Descriptor{
	"activedescendant": {Name: "activedescendant", Domain: SingleReference},
	"atomic":           {Name: "atomic", Domain: BooleanOnly},
	"autocomplete":     {Name: "autocomplete", Domain: EnumeratedTokens, Tokens: []string{"inline", "list", "both", "none"}},
	"busy":             {Name: "busy", Domain: BooleanOnly},
	"checked":          {Name: "checked", Domain: BooleanWithTokens, Tokens: []string{"mixed", "undefined"}},
	"colcount":         {Name: "colcount", Domain: Number},
	"controls":         {Name: "controls", Domain: ReferenceList},
	"describedby":      {Name: "describedby", Domain: ReferenceList},
	"disabled":         {Name: "disabled", Domain: BooleanOnly},
	"errormessage":     {Name: "errormessage", Domain: SingleReference},
	"expanded":         {Name: "expanded", Domain: BooleanWithTokens, Tokens: []string{"undefined"}},
	"haspopup":         {Name: "haspopup", Domain: BooleanWithTokens, Tokens: []string{"menu", "listbox", "tree", "grid", "dialog"}},
	"hidden":           {Name: "hidden", Domain: BooleanWithTokens, Tokens: []string{"undefined"}},
	"invalid":          {Name: "invalid", Domain: BooleanWithTokens, Tokens: []string{"grammar", "spelling"}},
	"keyshortcuts":     {Name: "keyshortcuts", Domain: ArbitraryString},
	"label":            {Name: "label", Domain: ArbitraryString},
	"labelledby":       {Name: "labelledby", Domain: ReferenceList},
	"level":            {Name: "level", Domain: Number},
	"live":             {Name: "live", Domain: EnumeratedTokens, Tokens: []string{"off", "assertive", "polite"}},
	"modal":            {Name: "modal", Domain: BooleanOnly},
	"multiline":        {Name: "multiline", Domain: BooleanOnly},
	"multiselectable":  {Name: "multiselectable", Domain: BooleanOnly},
	"orientation":      {Name: "orientation", Domain: EnumeratedTokens, Tokens: []string{"horizontal", "vertical", "undefined"}},
	"owns":             {Name: "owns", Domain: ReferenceList},
	"placeholder":      {Name: "placeholder", Domain: ArbitraryString},
	"posinset":         {Name: "posinset", Domain: Number},
	"pressed":          {Name: "pressed", Domain: BooleanWithTokens, Tokens: []string{"mixed", "undefined"}},
	"readonly":         {Name: "readonly", Domain: BooleanOnly},
	"required":         {Name: "required", Domain: BooleanOnly},
	"roledescription":  {Name: "roledescription", Domain: ArbitraryString},
	"rowcount":         {Name: "rowcount", Domain: Number},
	"selected":         {Name: "selected", Domain: BooleanWithTokens, Tokens: []string{"undefined"}},
	"setsize":          {Name: "setsize", Domain: Number},
	"sort":             {Name: "sort", Domain: EnumeratedTokens, Tokens: []string{"ascending", "descending", "none", "other"}},
	"valuemax":         {Name: "valuemax", Domain: Number},
	"valuemin":         {Name: "valuemin", Domain: Number},
	"valuenow":         {Name: "valuenow", Domain: Number},
	"valuetext":        {Name: "valuetext", Domain: ArbitraryString},
}

// Describe resolves a lowercase attribute name. Callers are responsible
// for lowercasing; the table stores only lowercase keys.
func Describe(name string) (desc Descriptor, ok bool) {
	desc, ok = Descriptors[name]
	return
}

// Names returns the sorted attribute names, derived from Descriptors so
// the vocabulary exists in exactly one place.
func Names() []string {
	names := maps.Keys(Descriptors)
	slices.Sort(names)
	return names
}

// FullName is the key of the attribute on the host node.
func FullName(prefix, name string) string {
	return prefix + "-" + name
}
