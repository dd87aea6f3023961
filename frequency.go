package huffman

// FrequencyTable maps each Symbol to its number of occurrences.
type FrequencyTable map[Symbol]uint32

// CountFrequencies counts the occurrences of each rune in text.  Invalid
// UTF-8 bytes are counted as U+FFFD, matching a range loop over the string.
func CountFrequencies(text string) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, ch := range text {
		symbol := Symbol(ch)
		freqs[symbol] = saturatingAdd(freqs[symbol], 1)
	}
	return freqs
}

// Symbols returns the symbols in this table, sorted by code point.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(ft))
	for symbol := range ft {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}
