// Package template parses CV template HTML into a small typed tree.
//
// A template mixes three kinds of markup: scalar placeholders written as a
// dotted path in double braces, repeatable blocks bracketed by
// <!-- START name --> / <!-- END name --> comments, and HTML elements whose
// id marks an optional, data-dependent fragment. Parsing happens once per
// template name; rendering walks the tree instead of re-matching patterns
// against a mutating string.
package template

import "strings"

// Node is one parsed template fragment.
type Node interface {
	node()
}

// Text is literal markup copied to the output untouched.
type Text struct {
	Value string
}

// Placeholder is a {{dotted.path}} scalar substitution point.
type Placeholder struct {
	Path string
}

// Section is a repeatable block bound to a list-valued field. Prefix and
// Suffix hold the wrapping container markup (section element plus title)
// that must disappear together with the block when the list is empty.
type Section struct {
	Name   string
	Prefix string
	Inner  []Node
	Suffix string
}

// Slot is an element carrying a recognized id. The renderer either fills it
// or deletes it outright, so empty wrappers never reach the output.
type Slot struct {
	ID    string
	Tag   string
	Open  string
	Inner []Node
	Close string
}

func (Text) node()        {}
func (Placeholder) node() {}
func (Section) node()     {}
func (Slot) node()        {}

// Template is a parsed, immutable template tree.
type Template struct {
	Name  string
	Nodes []Node
}

// HasSlot reports whether any slot with the given id exists in the tree.
func (t *Template) HasSlot(id string) bool {
	return hasSlot(t.Nodes, id)
}

func hasSlot(nodes []Node, id string) bool {
	for _, n := range nodes {
		switch v := n.(type) {
		case Slot:
			if v.ID == id || hasSlot(v.Inner, id) {
				return true
			}
		case Section:
			if hasSlot(v.Inner, id) {
				return true
			}
		}
	}
	return false
}

// SectionNames returns the names of all repeatable blocks in document order.
func (t *Template) SectionNames() []string {
	var names []string
	for _, n := range t.Nodes {
		if s, ok := n.(Section); ok {
			names = append(names, s.Name)
		}
	}
	return names
}

// voidTags are HTML elements without a closing tag.
var voidTags = map[string]bool{
	"img": true, "br": true, "hr": true, "input": true, "meta": true, "link": true,
}

func isVoidTag(tag string) bool {
	return voidTags[strings.ToLower(tag)]
}
