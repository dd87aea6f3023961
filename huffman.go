package huffman

// Encode builds a Huffman code for text and returns text encoded under it, as
// a string of '0' and '1' characters.  Empty text encodes to "".
func Encode(text string) string {
	encoded, _ := EncodeWithCodes(text)
	return encoded
}

// EncodeWithCodes is like Encode, but also returns the code table that was
// used.
func EncodeWithCodes(text string) (string, CodeTable) {
	var e Encoder
	e.InitFromText(text)
	return e.EncodeString(text), e.Codes()
}
