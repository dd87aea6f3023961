package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as '0' and '1' characters.
// The first character is the first bit, i.e. the branch taken at the root of
// the tree.
type Code string

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// HasPrefix reports whether prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// CodeTable maps each Symbol to its assigned Code.
type CodeTable map[Symbol]Code

// Symbols returns the symbols in this table, sorted by code point.
func (ct CodeTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(ct))
	for symbol := range ct {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// Dump writes a programmer-readable listing of the table to the given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\t%s: %s\n", symbol, ct[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
