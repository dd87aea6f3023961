package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Decoder implements a decoder for an arbitrary prefix-free code table, such
// as the one produced by GenerateCodes.
type Decoder struct {
	table   map[Code]decoderData
	minSize int
	maxSize int
}

// Init initializes this Decoder from a code table.
//
// Every code must be non-empty and consist only of '0' and '1', and no code
// may be a prefix of another.  A table with 0 symbols is permitted and
// decodes only the empty bit-string.
//
func (d *Decoder) Init(codes CodeTable) error {
	if len(codes) == 0 {
		*d = Decoder{}
		return nil
	}

	// Insert the codes shortest-first, so that any code that is a prefix
	// of another is already present by the time the longer one arrives.
	symbolOf := make(map[Code]Symbol, len(codes))
	sorted := make(byCode, 0, len(codes))
	for symbol, hc := range codes {
		if hc.Size() == 0 {
			return fmt.Errorf("%w: symbol %s", ErrEmptyCode, symbol)
		}
		if strings.Trim(string(hc), "01") != "" {
			return fmt.Errorf("%w: code %s for symbol %s", ErrInvalidBit, hc, symbol)
		}
		if other, found := symbolOf[hc]; found {
			return fmt.Errorf("%w: symbols %s and %s share code %s", ErrNotPrefixFree, other, symbol, hc)
		}
		symbolOf[hc] = symbol
		sorted = append(sorted, hc)
	}
	sorted.Sort()

	// len(table) is approximately n×log2(n) when filled.
	numSymbols := uint32(len(codes))
	numTableSlots := numSymbols * log2uint32(numSymbols)

	table := make(map[Code]decoderData, numTableSlots)
	for _, hc := range sorted {
		if err := fillTable(table, symbolOf[hc], hc); err != nil {
			return err
		}
	}

	*d = Decoder{
		table:   table,
		minSize: sorted[0].Size(),
		maxSize: sorted[len(sorted)-1].Size(),
	}
	return nil
}

// Decode attempts to decode a Huffman code into a Symbol.
//
// If the Decode is completely successful, symbol >= 0 and minSize == maxSize.
//
// If the Decode fails due to insufficient bits, symbol == InvalidSymbol and at
// least (minSize - hc.Size()) additional bits are required to decode this
// symbol.  No more than (maxSize - hc.Size()) additional bits will be required.
//
// If the Decode fails due to unreasonable input, symbol == InvalidSymbol and
// minSize == maxSize == 0.
//
func (d Decoder) Decode(hc Code) (symbol Symbol, minSize int, maxSize int) {
	dd, found := d.table[hc]
	if !found {
		return InvalidSymbol, 0, 0
	}
	return dd.symbol, dd.minSize, dd.maxSize
}

// DecodeString decodes a whole bit-string, as produced by
// Encoder.EncodeString, back into text.
func (d Decoder) DecodeString(bits string) (string, error) {
	var sb strings.Builder
	start := 0
	for end := 1; end <= len(bits); end++ {
		if b := bits[end-1]; b != '0' && b != '1' {
			return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, b, end-1)
		}
		symbol, minSize, _ := d.Decode(Code(bits[start:end]))
		switch {
		case symbol >= 0:
			sb.WriteRune(rune(symbol))
			start = end
		case minSize == 0:
			return "", fmt.Errorf("%w: %q at offset %d", ErrUnknownCode, bits[start:end], start)
		}
	}
	if start != len(bits) {
		return "", fmt.Errorf("%w: %q left over at offset %d", ErrTruncated, bits[start:], start)
	}
	return sb.String(), nil
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() int {
	return d.maxSize
}

// String returns a short human-readable description of this Decoder.
func (d Decoder) String() string {
	var numSymbols int
	for _, dd := range d.table {
		if dd.symbol >= 0 {
			numSymbols++
		}
	}
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", numSymbols, d.minSize, d.maxSize)
}

var _ fmt.Stringer = Decoder{}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		fmt.Fprintf(&buf, "\tDecode(%s) = {%s, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData struct {
	symbol  Symbol
	minSize int
	maxSize int
}

// fillTable records hc as a complete code for symbol, and widens the
// (minSize, maxSize) range of every proper prefix of hc.  Codes must arrive
// shortest-first.
func fillTable(table map[Code]decoderData, symbol Symbol, hc Code) error {
	size := hc.Size()
	table[hc] = decoderData{symbol, size, size}

	for i := size - 1; i >= 0; i-- {
		prefix := hc[:i]
		dd, found := table[prefix]
		if !found {
			table[prefix] = decoderData{InvalidSymbol, size, size}
			continue
		}
		if dd.symbol >= 0 {
			return fmt.Errorf("%w: code %s for symbol %s is a prefix of code %s for symbol %s", ErrNotPrefixFree, prefix, dd.symbol, hc, symbol)
		}
		if dd.minSize > size {
			dd.minSize = size
		}
		if dd.maxSize < size {
			dd.maxSize = size
		}
		table[prefix] = dd
	}
	return nil
}
