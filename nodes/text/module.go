// Package text provides the "string.*" node family. The subject text is read
// from the "input" key, or "value" then "text" when it is absent, and coerced
// with coerce.ToString. Lengths and indices count Unicode scalar values, not
// bytes.
package text

import (
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/registry"
)

const category = "string"

// Module implements the registry.Module interface for this package.
type Module struct{}

func def(op, description string) node.Definition {
	return node.Definition{Type: category + "." + op, Category: category, Description: description}
}

// Register registers every string node with the registry.
func (m *Module) Register(r *registry.Registry) {
	add := func(d node.Definition, fn node.ExecuteFunc) {
		r.RegisterFunc(d, node.WithAliases(fn, inputKey, "value", "text"))
	}
	add(def("upper", "Convert text to upper case"), Upper)
	add(def("lower", "Convert text to lower case"), Lower)
	add(def("trim", "Remove leading and trailing whitespace"), Trim)
	add(def("reverse", "Reverse text character by character"), Reverse)
	add(def("length", "Count the characters of a text"), Length)
	add(def("concat", "Join a list of texts with a separator"), Concat)
	add(def("split", "Split text by a separator"), Split)
	add(def("replace", "Replace every occurrence of a text"), Replace)
	add(def("contains", "Check whether text contains a search string"), Contains)
	add(def("starts_with", "Check whether text starts with a search string"), StartsWith)
	add(def("ends_with", "Check whether text ends with a search string"), EndsWith)
	add(def("substring", "Extract a character range of a text"), Substring)
	add(def("sha256", "SHA-256 hex digest of a text"), SHA256)
	add(def("distance", "Levenshtein edit distance between two texts"), Distance)
	add(def("format", "Fill {name} placeholders from values or the store"), Format)
	add(def("graphemes", "Split text into user-perceived characters"), Graphemes)
}
