package text

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
	"github.com/apparentlymart/go-textseg/v15/textseg"

	"github.com/vk/gridnodes/internal/coerce"
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

const inputKey = "input"

func str(s string) node.Outputs {
	return node.Result(value.String(s))
}

func boolean(b bool) node.Outputs {
	return node.Result(value.Bool(b))
}

// Upper converts "input" to upper case.
func Upper(in node.Inputs, _ varstore.Reader) node.Outputs {
	return str(strings.ToUpper(in.String(inputKey, "")))
}

// Lower converts "input" to lower case.
func Lower(in node.Inputs, _ varstore.Reader) node.Outputs {
	return str(strings.ToLower(in.String(inputKey, "")))
}

// Trim strips Unicode whitespace from both ends of "input".
func Trim(in node.Inputs, _ varstore.Reader) node.Outputs {
	return str(strings.TrimSpace(in.String(inputKey, "")))
}

// Reverse reverses "input" scalar value by scalar value.
func Reverse(in node.Inputs, _ varstore.Reader) node.Outputs {
	runes := []rune(in.String(inputKey, ""))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return str(string(runes))
}

// Length counts the scalar values of "input".
func Length(in node.Inputs, _ varstore.Reader) node.Outputs {
	return node.Result(value.Number(utf8.RuneCountInString(in.String(inputKey, ""))))
}

// Concat joins the "strings" list with "separator".
func Concat(in node.Inputs, _ varstore.Reader) node.Outputs {
	items := in.List("strings")
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = coerce.ToString(item)
	}
	return str(strings.Join(parts, in.String("separator", "")))
}

// Split splits "input" around "separator". An empty separator splits into
// single characters.
func Split(in node.Inputs, _ varstore.Reader) node.Outputs {
	s := in.String(inputKey, "")
	sep := in.String("separator", "")
	if sep == "" {
		return node.Result(coerce.Chars(s))
	}
	return node.Result(value.Strings(strings.Split(s, sep)...))
}

// Replace substitutes every occurrence of "old" with "new". An empty "old"
// leaves the input unchanged.
func Replace(in node.Inputs, _ varstore.Reader) node.Outputs {
	s := in.String(inputKey, "")
	old := in.String("old", "")
	if old == "" {
		return str(s)
	}
	return str(strings.ReplaceAll(s, old, in.String("new", "")))
}

// Contains reports whether "input" contains "search".
func Contains(in node.Inputs, _ varstore.Reader) node.Outputs {
	return match(in, strings.Contains)
}

// StartsWith reports whether "input" begins with "search".
func StartsWith(in node.Inputs, _ varstore.Reader) node.Outputs {
	return match(in, strings.HasPrefix)
}

// EndsWith reports whether "input" ends with "search".
func EndsWith(in node.Inputs, _ varstore.Reader) node.Outputs {
	return match(in, strings.HasSuffix)
}

func match(in node.Inputs, fn func(s, search string) bool) node.Outputs {
	s, search := in.String(inputKey, ""), in.String("search", "")
	if in.Bool("ignore_case", false) {
		s, search = strings.ToLower(s), strings.ToLower(search)
	}
	return boolean(fn(s, search))
}

// Substring returns the characters of "input" in [start, end). Negative
// bounds count from the end; bounds are clamped and an inverted range yields
// the empty string.
func Substring(in node.Inputs, _ varstore.Reader) node.Outputs {
	runes := []rune(in.String(inputKey, ""))
	lo, hi := coerce.ClampRange(in.Int("start", 0), in.Int("end", len(runes)), len(runes))
	return str(string(runes[lo:hi]))
}

// SHA256 returns the hex digest of "input", prefixed with "sha256:" when the
// "prefix" flag is set.
func SHA256(in node.Inputs, _ varstore.Reader) node.Outputs {
	sum := sha256.Sum256([]byte(in.String(inputKey, "")))
	digest := hex.EncodeToString(sum[:])
	if in.Bool("prefix", false) {
		digest = "sha256:" + digest
	}
	return str(digest)
}

// Distance returns the Levenshtein edit distance between "a" and "b".
func Distance(in node.Inputs, _ varstore.Reader) node.Outputs {
	d := levenshtein.Distance(in.String("a", ""), in.String("b", ""), nil)
	return node.Result(value.Number(d))
}

// Graphemes splits "input" into extended grapheme clusters, so a base letter
// and its combining marks stay together.
func Graphemes(in node.Inputs, _ varstore.Reader) node.Outputs {
	s := in.String(inputKey, "")
	tokens, err := textseg.AllTokens([]byte(s), textseg.ScanGraphemeClusters)
	if err != nil {
		return node.Fail(value.List{}, "grapheme segmentation failed: "+err.Error())
	}
	out := make(value.List, len(tokens))
	for i, tok := range tokens {
		out[i] = value.String(tok)
	}
	return node.Result(out)
}

// Format replaces each {name} placeholder in "template" with values[name],
// falling back to the store variable of that name. "{}" is kept as is. An
// unresolved placeholder fails with an empty result.
func Format(in node.Inputs, store varstore.Reader) node.Outputs {
	tmpl := in.String("template", "")
	values := in.Object("values")

	var b strings.Builder
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(tmpl[open+1:], '}')
		if end < 0 {
			break
		}
		end += open + 1
		b.WriteString(tmpl[:open])
		name := tmpl[open+1 : end]
		if name == "" {
			b.WriteString("{}")
			tmpl = tmpl[end+1:]
			continue
		}
		v, ok := values[name]
		if !ok {
			v, ok = varstore.Lookup(store, name)
		}
		if !ok {
			return node.Fail(value.String(""), fmt.Sprintf("placeholder {%s} not found", name))
		}
		b.WriteString(coerce.ToString(v))
		tmpl = tmpl[end+1:]
	}
	b.WriteString(tmpl)
	return str(b.String())
}
