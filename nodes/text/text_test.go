package text

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

func input(s string) node.Inputs {
	return node.Inputs{"input": value.String(s)}
}

func TestCaseAndTrim(t *testing.T) {
	assert.Equal(t, value.String("HELLO"), Upper(input("hello"), nil).Result())
	assert.Equal(t, value.String("hello"), Lower(input("HeLLo"), nil).Result())
	assert.Equal(t, value.String("x y"), Trim(input("  x y\n\t"), nil).Result())
	assert.Equal(t, value.String(""), Upper(node.Inputs{}, nil).Result())
	assert.Equal(t, value.String("42"), Upper(node.Inputs{"input": value.Number(42)}, nil).Result())
}

func TestReverseAndLength(t *testing.T) {
	assert.Equal(t, value.String("日é a"), Reverse(input("a é日"), nil).Result())
	assert.Equal(t, value.Number(4), Length(input("a é日"), nil).Result())
	assert.Equal(t, value.Number(0), Length(node.Inputs{}, nil).Result())
}

func TestConcat(t *testing.T) {
	in := node.Inputs{
		"strings":   value.List{value.String("a"), value.Number(1), value.Null{}},
		"separator": value.String("-"),
	}
	assert.Equal(t, value.String("a-1-"), Concat(in, nil).Result())
	assert.Equal(t, value.String(""), Concat(node.Inputs{}, nil).Result())
}

func TestSplit(t *testing.T) {
	out := Split(node.Inputs{"input": value.String("a,b,,c"), "separator": value.String(",")}, nil)
	assert.Equal(t, value.Strings("a", "b", "", "c"), out.Result())

	out = Split(input("hé"), nil)
	assert.Equal(t, value.Strings("h", "é"), out.Result())
}

func TestReplace(t *testing.T) {
	in := node.Inputs{"input": value.String("a.b.c"), "old": value.String("."), "new": value.String("/")}
	assert.Equal(t, value.String("a/b/c"), Replace(in, nil).Result())
	assert.Equal(t, value.String("abc"), Replace(input("abc"), nil).Result())
}

func TestMatchers(t *testing.T) {
	in := node.Inputs{"input": value.String("Hello World"), "search": value.String("world")}
	assert.Equal(t, value.Bool(false), Contains(in, nil).Result())

	in["ignore_case"] = value.String("yes")
	assert.Equal(t, value.Bool(true), Contains(in, nil).Result())
	assert.Equal(t, value.Bool(true), EndsWith(in, nil).Result())
	assert.Equal(t, value.Bool(false), StartsWith(in, nil).Result())

	in["search"] = value.String("hello")
	assert.Equal(t, value.Bool(true), StartsWith(in, nil).Result())
}

func TestSubstring(t *testing.T) {
	tests := []struct {
		name string
		in   node.Inputs
		want string
	}{
		{"defaults", input("héllo"), "héllo"},
		{"range", node.Inputs{"input": value.String("héllo"), "start": value.Number(1), "end": value.Number(3)}, "él"},
		{"negative start", node.Inputs{"input": value.String("héllo"), "start": value.Number(-2)}, "lo"},
		{"inverted", node.Inputs{"input": value.String("héllo"), "start": value.Number(4), "end": value.Number(1)}, ""},
		{"past end", node.Inputs{"input": value.String("abc"), "start": value.Number(10)}, ""},
		{"empty", node.Inputs{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, value.String(tt.want), Substring(tt.in, nil).Result())
		})
	}
}

func TestSHA256(t *testing.T) {
	const helloWorld = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"

	assert.Equal(t, value.String(helloWorld), SHA256(input("hello world"), nil).Result())

	in := input("hello world")
	in["prefix"] = value.Bool(true)
	assert.Equal(t, value.String("sha256:"+helloWorld), SHA256(in, nil).Result())

	assert.Equal(t,
		value.String("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"),
		SHA256(node.Inputs{}, nil).Result())
}

func TestDistance(t *testing.T) {
	in := node.Inputs{"a": value.String("kitten"), "b": value.String("sitting")}
	assert.Equal(t, value.Number(3), Distance(in, nil).Result())
	assert.Equal(t, value.Number(0), Distance(node.Inputs{}, nil).Result())
}

func TestGraphemes(t *testing.T) {
	// "e" followed by a combining acute accent is one grapheme.
	out := Graphemes(input("ae\u0301b"), nil)
	assert.Equal(t, value.Strings("a", "e\u0301", "b"), out.Result())
	assert.Equal(t, value.Number(4), Length(input("ae\u0301b"), nil).Result())

	assert.Equal(t, value.List{}, Graphemes(node.Inputs{}, nil).Result())
}

func TestFormat(t *testing.T) {
	store := varstore.Snapshot{"name": value.String("store"), "n": value.Number(3)}

	in := node.Inputs{
		"template": value.String("{greeting}, {name}! n={n} {}"),
		"values":   value.Object{"greeting": value.String("Hi"), "name": value.String("Ada")},
	}
	assert.Equal(t, value.String("Hi, Ada! n=3 {}"), Format(in, store).Result())

	out := Format(node.Inputs{"template": value.String("a {missing} b")}, store)
	msg, failed := out.Error()
	assert.True(t, failed)
	assert.Equal(t, "placeholder {missing} not found", msg)
	assert.Equal(t, value.String(""), out.Result())

	assert.Equal(t, value.String("open { only"), Format(node.Inputs{"template": value.String("open { only")}, nil).Result())
	assert.Equal(t, value.String(""), Format(node.Inputs{}, nil).Result())
}
