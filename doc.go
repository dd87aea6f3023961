// Package huffman implements Huffman coding over the characters of a text.
//
// The code is built greedily: every distinct rune starts out as a leaf
// weighted by its frequency, and the two lightest nodes are merged until a
// single tree remains.  Ties are broken by a fixed total order, so the same
// text always yields the same code:
//
//     1. lower frequency first
//     2. internal nodes before leaves
//     3. leaves by code point
//     4. internal nodes by creation order
//
// The encoded form is a string of '0' and '1' characters.  It is not packed
// into bytes.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
