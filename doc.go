// Package huffpack builds a Huffman prefix code over the byte values of an
// input and packs the encoded bit stream into bytes.
//
// Encoding is a two pass process: the input is read once to count byte
// frequencies and a second time to emit one code per input byte.  The packed
// output carries no header, no code table and no bit count; a reader needs
// the CodeTable and the exact number of encoded bits (EncodeResult.Bits) to
// make sense of it.
//
// Bits are packed least significant bit first: bit i of the stream lands in
// byte i/8 at position i%8.  The final byte is padded with zero bits.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
