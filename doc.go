// Package huffman builds Huffman prefix codes for text messages and reports
// how the size of the code compares to the size of the raw message.
//
// The pipeline has three stages: CountFrequencies tallies each character,
// BuildTree merges the two least frequent nodes until one root remains, and
// GenerateCodes reads each character's codeword off its root-to-leaf path.
// Analyze runs all three.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
