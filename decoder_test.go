package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestDecoder(t *testing.T) Decoder {
	t.Helper()
	var d Decoder
	err := d.Init(CodeTable{'a': "1100", 'b': "1101", 'c': "100", 'd': "101", 'e': "111", 'f': "0"})
	require.NoError(t, err)
	return d
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder(t)

	type testRow struct {
		hc  Code
		min int
		max int
		sym Symbol
	}

	testData := [...]testRow{
		{hc: "", min: 1, max: 4, sym: InvalidSymbol},
		{hc: "0", min: 1, max: 1, sym: 'f'},
		{hc: "1", min: 3, max: 4, sym: InvalidSymbol},
		{hc: "10", min: 3, max: 3, sym: InvalidSymbol},
		{hc: "11", min: 3, max: 4, sym: InvalidSymbol},
		{hc: "100", min: 3, max: 3, sym: 'c'},
		{hc: "101", min: 3, max: 3, sym: 'd'},
		{hc: "110", min: 4, max: 4, sym: InvalidSymbol},
		{hc: "111", min: 3, max: 3, sym: 'e'},
		{hc: "1100", min: 4, max: 4, sym: 'a'},
		{hc: "1101", min: 4, max: 4, sym: 'b'},
		{hc: "1110", min: 0, max: 0, sym: InvalidSymbol},
		{hc: "01", min: 0, max: 0, sym: InvalidSymbol},
	}
	for _, row := range testData {
		row := row
		t.Run(row.hc.String(), func(t *testing.T) {
			sym, min, max := d.Decode(row.hc)
			assert.Equal(t, row.sym, sym, "symbol")
			assert.Equal(t, row.min, min, "minimum size")
			assert.Equal(t, row.max, max, "maximum size")
		})
	}
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder(t)

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tDecode(\"\") = {InvalidSymbol, 1, 4}\n",
		"\tDecode(\"0\") = {'f', 1, 1}\n",
		"\tDecode(\"1\") = {InvalidSymbol, 3, 4}\n",
		"\tDecode(\"10\") = {InvalidSymbol, 3, 3}\n",
		"\tDecode(\"11\") = {InvalidSymbol, 3, 4}\n",
		"\tDecode(\"100\") = {'c', 3, 3}\n",
		"\tDecode(\"101\") = {'d', 3, 3}\n",
		"\tDecode(\"110\") = {InvalidSymbol, 4, 4}\n",
		"\tDecode(\"111\") = {'e', 3, 3}\n",
		"\tDecode(\"1100\") = {'a', 4, 4}\n",
		"\tDecode(\"1101\") = {'b', 4, 4}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, err := d.Dump(&buf)
	require.NoError(t, err)
	assert.Equal(t, expectDump, buf.String())
}

func TestDecoder_String(t *testing.T) {
	d := makeTestDecoder(t)

	expectString := "(Huffman decoder with 6 symbols, with coded lengths of 1 .. 4 bits)"
	assert.Equal(t, expectString, d.String())
	assert.Equal(t, 1, d.MinSize())
	assert.Equal(t, 4, d.MaxSize())
}

func TestDecoder_DecodeString(t *testing.T) {
	d := makeTestDecoder(t)

	text, err := d.DecodeString("0" + "1100" + "111" + "1101")
	require.NoError(t, err)
	assert.Equal(t, "faeb", text)

	text, err = d.DecodeString("")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestDecoder_DecodeStringErrors(t *testing.T) {
	d := makeTestDecoder(t)

	_, err := d.DecodeString("0x")
	assert.ErrorIs(t, err, ErrInvalidBit)

	_, err = d.DecodeString("011")
	assert.ErrorIs(t, err, ErrTruncated)

	var sparse Decoder
	require.NoError(t, sparse.Init(CodeTable{'a': "00", 'b': "01"}))
	_, err = sparse.DecodeString("001")
	assert.ErrorIs(t, err, ErrUnknownCode)

	var empty Decoder
	require.NoError(t, empty.Init(nil))
	_, err = empty.DecodeString("0")
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestDecoder_InitErrors(t *testing.T) {
	type testRow struct {
		name   string
		codes  CodeTable
		expect error
	}

	testData := [...]testRow{
		{name: "empty code", codes: CodeTable{'a': "", 'b': "1"}, expect: ErrEmptyCode},
		{name: "bad character", codes: CodeTable{'a': "0", 'b': "1x"}, expect: ErrInvalidBit},
		{name: "duplicate", codes: CodeTable{'a': "01", 'b': "01"}, expect: ErrNotPrefixFree},
		{name: "prefix", codes: CodeTable{'a': "0", 'b': "01", 'c': "1"}, expect: ErrNotPrefixFree},
		{name: "deep prefix", codes: CodeTable{'a': "10", 'b': "1011", 'c': "0"}, expect: ErrNotPrefixFree},
	}
	for _, row := range testData {
		row := row
		t.Run(row.name, func(t *testing.T) {
			var d Decoder
			err := d.Init(row.codes)
			assert.ErrorIs(t, err, row.expect)
		})
	}
}
