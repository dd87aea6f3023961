package huffman

import (
	"sort"
	"strconv"
	"unicode"
)

// Symbol represents a single character of the input text.  Negative symbols
// are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// String returns the Go-quoted character, or "InvalidSymbol".
func (s Symbol) String() string {
	if s < 0 {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(s))
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
