package list

import (
	"slices"
	"strings"

	"github.com/vk/gridnodes/internal/coerce"
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

const listKey = "list"

// Length returns the number of elements.
func Length(in node.Inputs, _ varstore.Reader) node.Outputs {
	return node.Result(value.Number(len(in.List(listKey))))
}

// Get returns the element at "index", or Null when out of range.
func Get(in node.Inputs, _ varstore.Reader) node.Outputs {
	return node.Result(at(in.List(listKey), in.Int("index", 0)))
}

// First returns the first element, or Null for an empty list.
func First(in node.Inputs, _ varstore.Reader) node.Outputs {
	return node.Result(at(in.List(listKey), 0))
}

// Last returns the last element, or Null for an empty list.
func Last(in node.Inputs, _ varstore.Reader) node.Outputs {
	return node.Result(at(in.List(listKey), -1))
}

func at(l value.List, i int) value.Value {
	idx, ok := coerce.NormalizeIndex(i, len(l))
	if !ok {
		return value.Null{}
	}
	return l[idx]
}

// IndexOf returns the position of the first element structurally equal to
// "value", or -1.
func IndexOf(in node.Inputs, _ varstore.Reader) node.Outputs {
	return node.Result(value.Number(indexOf(in.List(listKey), in.Value("value"))))
}

func indexOf(l value.List, target value.Value) int {
	return slices.IndexFunc(l, func(v value.Value) bool { return value.Equal(v, target) })
}

// Slice returns the elements in ["start", "end"). Bounds accept negative
// indices and are clamped; an inverted range yields an empty list.
func Slice(in node.Inputs, _ varstore.Reader) node.Outputs {
	l := in.List(listKey)
	lo, hi := coerce.ClampRange(in.Int("start", 0), in.Int("end", len(l)), len(l))
	return node.Result(l[lo:hi].Clone())
}

// Reverse returns the elements in reverse order.
func Reverse(in node.Inputs, _ varstore.Reader) node.Outputs {
	out := in.List(listKey).Clone()
	slices.Reverse(out)
	return node.Result(out)
}

// Sort returns a stably sorted copy, descending when the "descending" flag is
// set. See coerce.Compare for the ordering of mixed lists.
func Sort(in node.Inputs, _ varstore.Reader) node.Outputs {
	l := in.List(listKey)
	if in.Bool("descending", false) {
		return node.Result(coerce.SortDescending(l))
	}
	return node.Result(coerce.Sort(l))
}

// Unique drops elements structurally equal to an earlier one.
func Unique(in node.Inputs, _ varstore.Reader) node.Outputs {
	out := value.List{}
	for _, v := range in.List(listKey) {
		if indexOf(out, v) < 0 {
			out = append(out, v)
		}
	}
	return node.Result(out)
}

// Concat flattens "lists" by one level; each element is coerced to a list.
func Concat(in node.Inputs, _ varstore.Reader) node.Outputs {
	out := value.List{}
	for _, item := range in.List("lists") {
		out = append(out, coerce.ToList(item)...)
	}
	return node.Result(out)
}

// Append returns the list with "value" added at the end.
func Append(in node.Inputs, _ varstore.Reader) node.Outputs {
	l := in.List(listKey)
	out := make(value.List, 0, len(l)+1)
	out = append(out, l...)
	return node.Result(append(out, in.Value("value")))
}

// Contains reports whether the list holds an element equal to "value".
func Contains(in node.Inputs, _ varstore.Reader) node.Outputs {
	return node.Result(value.Bool(indexOf(in.List(listKey), in.Value("value")) >= 0))
}

// Join renders every element with coerce.ToString and joins them with
// "separator" (default ",").
func Join(in node.Inputs, _ varstore.Reader) node.Outputs {
	l := in.List(listKey)
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = coerce.ToString(v)
	}
	return node.Result(value.String(strings.Join(parts, in.String("separator", ","))))
}
