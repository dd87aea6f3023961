package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Encoder maps Symbols to the Huffman codes built for some text.
type Encoder struct {
	codes   CodeTable
	minSize int
	maxSize int
}

// Init initializes this Encoder from a table of symbol frequencies.  Symbols
// with a frequency of 0 are left out of the code.
func (e *Encoder) Init(freqs FrequencyTable) {
	nonZero := make(FrequencyTable, len(freqs))
	for symbol, freq := range freqs {
		if freq != 0 {
			nonZero[symbol] = freq
		}
	}

	codes := GenerateCodes(BuildTree(nonZero))

	var minSize, maxSize int
	var hasMinMax bool
	for _, hc := range codes {
		size := hc.Size()
		if !hasMinMax {
			hasMinMax = true
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}

	*e = Encoder{
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// InitFromText initializes this Encoder with the frequencies of the runes
// in text.
func (e *Encoder) InitFromText(text string) {
	e.Init(CountFrequencies(text))
}

// Encode returns the code for a Symbol.  Asking for a symbol that is not
// part of the code is a programming error and panics.
func (e Encoder) Encode(symbol Symbol) Code {
	hc, found := e.codes[symbol]
	assert.Assertf(found, "symbol %s is not part of this code", symbol)
	return hc
}

// EncodeString returns the concatenated codes for every rune of text, in
// order.
func (e Encoder) EncodeString(text string) string {
	var sb strings.Builder
	for _, ch := range text {
		sb.WriteString(string(e.Encode(Symbol(ch))))
	}
	return sb.String()
}

// Codes returns a copy of the code table.
func (e Encoder) Codes() CodeTable {
	out := make(CodeTable, len(e.codes))
	for symbol, hc := range e.codes {
		out[symbol] = hc
	}
	return out
}

// MinSize is the bit length of the shortest code.
func (e Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e Encoder) MaxSize() int {
	return e.maxSize
}

// NumSymbols is the number of symbols in the code.
func (e Encoder) NumSymbols() int {
	return len(e.codes)
}

// SizeBySymbol returns the bit length for each Symbol in the code.
func (e Encoder) SizeBySymbol() map[Symbol]int {
	out := make(map[Symbol]int, len(e.codes))
	for symbol, hc := range e.codes {
		out[symbol] = hc.Size()
	}
	return out
}

// String returns a short human-readable description of this Encoder.
func (e Encoder) String() string {
	return fmt.Sprintf("(Huffman encoder with %d symbols, with coded lengths of %d .. %d bits)", len(e.codes), e.minSize, e.maxSize)
}

var _ fmt.Stringer = Encoder{}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range e.codes.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, e.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
