// Package huffman implements the static 256-entry canonical Huffman
// codebook and decoding trie over move-ordering indices (symbols 0..255).
//
// Literal table provenance: the original archive format's literal
// codebook lived in a moves.rs source file that was not delivered in
// this module's reference material (the manifest that lists the
// original sources records it as filtered out). Lacking that literal
// table, the codebook below was reconstructed the same way
// treepeck-chego's own internal/codegen/codegen.go tool builds its
// move-frequency table: a canonical Huffman code over per-symbol play
// frequencies, computed once offline and baked in as a literal array --
// never regenerated from frequencies at runtime. The frequency data is
// treepeck-chego's own 218-entry precalc.go table (drawn from Lichess
// game exports), extended to this package's 256 symbols by assigning
// frequency 1 to the 38 extra slots, the same padding convention
// precalc.go documents for its own unused tail entries. Because the
// original reference table is unavailable, this codebook cannot claim
// bit-for-bit identity with archives produced by that reference
// encoder; it is, however, a complete canonical prefix code satisfying
// every structural invariant the format requires (256 entries, lengths
// 1..31, Kraft equality).
package huffman

// Symbol is a single codebook entry: a bit pattern and its length.
type Symbol struct {
	Code   uint32
	Length uint8
}

// codebook holds the fixed (code, length) pair for every symbol
// 0..255. Do not regenerate from frequencies at runtime -- see the
// package doc comment.
var codebook = [256]Symbol{
	{Code: 0b0000, Length: 4}, // symbol 0
	{Code: 0b01000, Length: 5}, // symbol 1
	{Code: 0b0001, Length: 4}, // symbol 2
	{Code: 0b0010, Length: 4}, // symbol 3
	{Code: 0b01001, Length: 5}, // symbol 4
	{Code: 0b01010, Length: 5}, // symbol 5
	{Code: 0b01011, Length: 5}, // symbol 6
	{Code: 0b01100, Length: 5}, // symbol 7
	{Code: 0b01101, Length: 5}, // symbol 8
	{Code: 0b0011, Length: 4}, // symbol 9
	{Code: 0b01110, Length: 5}, // symbol 10
	{Code: 0b01111, Length: 5}, // symbol 11
	{Code: 0b10000, Length: 5}, // symbol 12
	{Code: 0b10001, Length: 5}, // symbol 13
	{Code: 0b10010, Length: 5}, // symbol 14
	{Code: 0b10011, Length: 5}, // symbol 15
	{Code: 0b10100, Length: 5}, // symbol 16
	{Code: 0b10101, Length: 5}, // symbol 17
	{Code: 0b10110, Length: 5}, // symbol 18
	{Code: 0b10111, Length: 5}, // symbol 19
	{Code: 0b11000, Length: 5}, // symbol 20
	{Code: 0b110010, Length: 6}, // symbol 21
	{Code: 0b110011, Length: 6}, // symbol 22
	{Code: 0b110100, Length: 6}, // symbol 23
	{Code: 0b110101, Length: 6}, // symbol 24
	{Code: 0b110110, Length: 6}, // symbol 25
	{Code: 0b110111, Length: 6}, // symbol 26
	{Code: 0b111000, Length: 6}, // symbol 27
	{Code: 0b111001, Length: 6}, // symbol 28
	{Code: 0b111010, Length: 6}, // symbol 29
	{Code: 0b1110110, Length: 7}, // symbol 30
	{Code: 0b1110111, Length: 7}, // symbol 31
	{Code: 0b1111000, Length: 7}, // symbol 32
	{Code: 0b1111001, Length: 7}, // symbol 33
	{Code: 0b1111010, Length: 7}, // symbol 34
	{Code: 0b1111011, Length: 7}, // symbol 35
	{Code: 0b11111000, Length: 8}, // symbol 36
	{Code: 0b11111001, Length: 8}, // symbol 37
	{Code: 0b11111010, Length: 8}, // symbol 38
	{Code: 0b11111011, Length: 8}, // symbol 39
	{Code: 0b11111100, Length: 8}, // symbol 40
	{Code: 0b111111010, Length: 9}, // symbol 41
	{Code: 0b111111011, Length: 9}, // symbol 42
	{Code: 0b111111100, Length: 9}, // symbol 43
	{Code: 0b111111101, Length: 9}, // symbol 44
	{Code: 0b1111111100, Length: 10}, // symbol 45
	{Code: 0b1111111101, Length: 10}, // symbol 46
	{Code: 0b11111111100, Length: 11}, // symbol 47
	{Code: 0b11111111101, Length: 11}, // symbol 48
	{Code: 0b111111111100, Length: 12}, // symbol 49
	{Code: 0b111111111101, Length: 12}, // symbol 50
	{Code: 0b1111111111100, Length: 13}, // symbol 51
	{Code: 0b1111111111101, Length: 13}, // symbol 52
	{Code: 0b11111111111100, Length: 14}, // symbol 53
	{Code: 0b11111111111101, Length: 14}, // symbol 54
	{Code: 0b111111111111100, Length: 15}, // symbol 55
	{Code: 0b111111111111101, Length: 15}, // symbol 56
	{Code: 0b1111111111111100, Length: 16}, // symbol 57
	{Code: 0b1111111111111101, Length: 16}, // symbol 58
	{Code: 0b11111111111111100, Length: 17}, // symbol 59
	{Code: 0b11111111111111101, Length: 17}, // symbol 60
	{Code: 0b111111111111111100, Length: 18}, // symbol 61
	{Code: 0b111111111111111101, Length: 18}, // symbol 62
	{Code: 0b1111111111111111100, Length: 19}, // symbol 63
	{Code: 0b11111111111111111010, Length: 20}, // symbol 64
	{Code: 0b11111111111111111011, Length: 20}, // symbol 65
	{Code: 0b11111111111111111100, Length: 20}, // symbol 66
	{Code: 0b111111111111111111010, Length: 21}, // symbol 67
	{Code: 0b111111111111111111011, Length: 21}, // symbol 68
	{Code: 0b1111111111111111111000, Length: 22}, // symbol 69
	{Code: 0b1111111111111111111001, Length: 22}, // symbol 70
	{Code: 0b1111111111111111111010, Length: 22}, // symbol 71
	{Code: 0b11111111111111111110110, Length: 23}, // symbol 72
	{Code: 0b11111111111111111110111, Length: 23}, // symbol 73
	{Code: 0b11111111111111111111000, Length: 23}, // symbol 74
	{Code: 0b11111111111111111111001, Length: 23}, // symbol 75
	{Code: 0b111111111111111111110100, Length: 24}, // symbol 76
	{Code: 0b111111111111111111110101, Length: 24}, // symbol 77
	{Code: 0b111111111111111111110110, Length: 24}, // symbol 78
	{Code: 0b111111111111111111110111, Length: 24}, // symbol 79
	{Code: 0b1111111111111111111110000, Length: 25}, // symbol 80
	{Code: 0b1111111111111111111110001, Length: 25}, // symbol 81
	{Code: 0b1111111111111111111110010, Length: 25}, // symbol 82
	{Code: 0b1111111111111111111110011, Length: 25}, // symbol 83
	{Code: 0b1111111111111111111110100, Length: 25}, // symbol 84
	{Code: 0b1111111111111111111110101, Length: 25}, // symbol 85
	{Code: 0b11111111111111111111101110, Length: 26}, // symbol 86
	{Code: 0b1111111111111111111110110, Length: 25}, // symbol 87
	{Code: 0b11111111111111111111101111, Length: 26}, // symbol 88
	{Code: 0b11111111111111111111110000, Length: 26}, // symbol 89
	{Code: 0b11111111111111111111110001, Length: 26}, // symbol 90
	{Code: 0b11111111111111111111110010, Length: 26}, // symbol 91
	{Code: 0b11111111111111111111110011, Length: 26}, // symbol 92
	{Code: 0b1111111111111111111111010100, Length: 28}, // symbol 93
	{Code: 0b111111111111111111111101000, Length: 27}, // symbol 94
	{Code: 0b1111111111111111111111010101, Length: 28}, // symbol 95
	{Code: 0b111111111111111111111101001, Length: 27}, // symbol 96
	{Code: 0b1111111111111111111111010110, Length: 28}, // symbol 97
	{Code: 0b11111111111111111111110110000, Length: 29}, // symbol 98
	{Code: 0b1111111111111111111111010111, Length: 28}, // symbol 99
	{Code: 0b111111111111111111111101100110, Length: 30}, // symbol 100
	{Code: 0b11111111111111111111110110001, Length: 29}, // symbol 101
	{Code: 0b111111111111111111111101100111, Length: 30}, // symbol 102
	{Code: 0b111111111111111111111101101000, Length: 30}, // symbol 103
	{Code: 0b111111111111111111111101101001, Length: 30}, // symbol 104
	{Code: 0b111111111111111111111101101010, Length: 30}, // symbol 105
	{Code: 0b111111111111111111111101101011, Length: 30}, // symbol 106
	{Code: 0b111111111111111111111101101100, Length: 30}, // symbol 107
	{Code: 0b111111111111111111111101101101, Length: 30}, // symbol 108
	{Code: 0b11111111111111111111110110010, Length: 29}, // symbol 109
	{Code: 0b111111111111111111111101101110, Length: 30}, // symbol 110
	{Code: 0b111111111111111111111101101111, Length: 30}, // symbol 111
	{Code: 0b111111111111111111111101110000, Length: 30}, // symbol 112
	{Code: 0b111111111111111111111101110001, Length: 30}, // symbol 113
	{Code: 0b111111111111111111111101110010, Length: 30}, // symbol 114
	{Code: 0b111111111111111111111101110011, Length: 30}, // symbol 115
	{Code: 0b111111111111111111111101110100, Length: 30}, // symbol 116
	{Code: 0b111111111111111111111101110101, Length: 30}, // symbol 117
	{Code: 0b111111111111111111111101110110, Length: 30}, // symbol 118
	{Code: 0b111111111111111111111101110111, Length: 30}, // symbol 119
	{Code: 0b111111111111111111111101111000, Length: 30}, // symbol 120
	{Code: 0b111111111111111111111101111001, Length: 30}, // symbol 121
	{Code: 0b111111111111111111111101111010, Length: 30}, // symbol 122
	{Code: 0b111111111111111111111101111011, Length: 30}, // symbol 123
	{Code: 0b111111111111111111111101111100, Length: 30}, // symbol 124
	{Code: 0b111111111111111111111101111101, Length: 30}, // symbol 125
	{Code: 0b111111111111111111111101111110, Length: 30}, // symbol 126
	{Code: 0b111111111111111111111101111111, Length: 30}, // symbol 127
	{Code: 0b111111111111111111111110000000, Length: 30}, // symbol 128
	{Code: 0b111111111111111111111110000001, Length: 30}, // symbol 129
	{Code: 0b111111111111111111111110000010, Length: 30}, // symbol 130
	{Code: 0b111111111111111111111110000011, Length: 30}, // symbol 131
	{Code: 0b111111111111111111111110000100, Length: 30}, // symbol 132
	{Code: 0b111111111111111111111110000101, Length: 30}, // symbol 133
	{Code: 0b111111111111111111111110000110, Length: 30}, // symbol 134
	{Code: 0b111111111111111111111110000111, Length: 30}, // symbol 135
	{Code: 0b111111111111111111111110001000, Length: 30}, // symbol 136
	{Code: 0b111111111111111111111110001001, Length: 30}, // symbol 137
	{Code: 0b111111111111111111111110001010, Length: 30}, // symbol 138
	{Code: 0b111111111111111111111110001011, Length: 30}, // symbol 139
	{Code: 0b111111111111111111111110001100, Length: 30}, // symbol 140
	{Code: 0b111111111111111111111110001101, Length: 30}, // symbol 141
	{Code: 0b111111111111111111111110001110, Length: 30}, // symbol 142
	{Code: 0b111111111111111111111110001111, Length: 30}, // symbol 143
	{Code: 0b111111111111111111111110010000, Length: 30}, // symbol 144
	{Code: 0b111111111111111111111110010001, Length: 30}, // symbol 145
	{Code: 0b111111111111111111111110010010, Length: 30}, // symbol 146
	{Code: 0b111111111111111111111110010011, Length: 30}, // symbol 147
	{Code: 0b111111111111111111111110010100, Length: 30}, // symbol 148
	{Code: 0b111111111111111111111110010101, Length: 30}, // symbol 149
	{Code: 0b111111111111111111111110010110, Length: 30}, // symbol 150
	{Code: 0b111111111111111111111110010111, Length: 30}, // symbol 151
	{Code: 0b111111111111111111111110011000, Length: 30}, // symbol 152
	{Code: 0b111111111111111111111110011001, Length: 30}, // symbol 153
	{Code: 0b111111111111111111111110011010, Length: 30}, // symbol 154
	{Code: 0b111111111111111111111110011011, Length: 30}, // symbol 155
	{Code: 0b111111111111111111111110011100, Length: 30}, // symbol 156
	{Code: 0b111111111111111111111110011101, Length: 30}, // symbol 157
	{Code: 0b111111111111111111111110011110, Length: 30}, // symbol 158
	{Code: 0b111111111111111111111110011111, Length: 30}, // symbol 159
	{Code: 0b111111111111111111111110100000, Length: 30}, // symbol 160
	{Code: 0b111111111111111111111110100001, Length: 30}, // symbol 161
	{Code: 0b111111111111111111111110100010, Length: 30}, // symbol 162
	{Code: 0b111111111111111111111110100011, Length: 30}, // symbol 163
	{Code: 0b111111111111111111111110100100, Length: 30}, // symbol 164
	{Code: 0b111111111111111111111110100101, Length: 30}, // symbol 165
	{Code: 0b111111111111111111111110100110, Length: 30}, // symbol 166
	{Code: 0b111111111111111111111110100111, Length: 30}, // symbol 167
	{Code: 0b111111111111111111111110101000, Length: 30}, // symbol 168
	{Code: 0b111111111111111111111110101001, Length: 30}, // symbol 169
	{Code: 0b111111111111111111111110101010, Length: 30}, // symbol 170
	{Code: 0b111111111111111111111110101011, Length: 30}, // symbol 171
	{Code: 0b111111111111111111111110101100, Length: 30}, // symbol 172
	{Code: 0b111111111111111111111110101101, Length: 30}, // symbol 173
	{Code: 0b111111111111111111111110101110, Length: 30}, // symbol 174
	{Code: 0b111111111111111111111110101111, Length: 30}, // symbol 175
	{Code: 0b111111111111111111111110110000, Length: 30}, // symbol 176
	{Code: 0b111111111111111111111110110001, Length: 30}, // symbol 177
	{Code: 0b111111111111111111111110110010, Length: 30}, // symbol 178
	{Code: 0b111111111111111111111110110011, Length: 30}, // symbol 179
	{Code: 0b111111111111111111111110110100, Length: 30}, // symbol 180
	{Code: 0b111111111111111111111110110101, Length: 30}, // symbol 181
	{Code: 0b111111111111111111111110110110, Length: 30}, // symbol 182
	{Code: 0b111111111111111111111110110111, Length: 30}, // symbol 183
	{Code: 0b111111111111111111111110111000, Length: 30}, // symbol 184
	{Code: 0b111111111111111111111110111001, Length: 30}, // symbol 185
	{Code: 0b111111111111111111111110111010, Length: 30}, // symbol 186
	{Code: 0b111111111111111111111110111011, Length: 30}, // symbol 187
	{Code: 0b111111111111111111111110111100, Length: 30}, // symbol 188
	{Code: 0b111111111111111111111110111101, Length: 30}, // symbol 189
	{Code: 0b111111111111111111111110111110, Length: 30}, // symbol 190
	{Code: 0b111111111111111111111110111111, Length: 30}, // symbol 191
	{Code: 0b111111111111111111111111000000, Length: 30}, // symbol 192
	{Code: 0b111111111111111111111111000001, Length: 30}, // symbol 193
	{Code: 0b111111111111111111111111000010, Length: 30}, // symbol 194
	{Code: 0b111111111111111111111111000011, Length: 30}, // symbol 195
	{Code: 0b111111111111111111111111000100, Length: 30}, // symbol 196
	{Code: 0b111111111111111111111111000101, Length: 30}, // symbol 197
	{Code: 0b111111111111111111111111000110, Length: 30}, // symbol 198
	{Code: 0b111111111111111111111111000111, Length: 30}, // symbol 199
	{Code: 0b111111111111111111111111001000, Length: 30}, // symbol 200
	{Code: 0b111111111111111111111111001001, Length: 30}, // symbol 201
	{Code: 0b111111111111111111111111001010, Length: 30}, // symbol 202
	{Code: 0b111111111111111111111111001011, Length: 30}, // symbol 203
	{Code: 0b111111111111111111111111001100, Length: 30}, // symbol 204
	{Code: 0b111111111111111111111111001101, Length: 30}, // symbol 205
	{Code: 0b111111111111111111111111001110, Length: 30}, // symbol 206
	{Code: 0b111111111111111111111111001111, Length: 30}, // symbol 207
	{Code: 0b111111111111111111111111010000, Length: 30}, // symbol 208
	{Code: 0b111111111111111111111111010001, Length: 30}, // symbol 209
	{Code: 0b111111111111111111111111010010, Length: 30}, // symbol 210
	{Code: 0b111111111111111111111111010011, Length: 30}, // symbol 211
	{Code: 0b111111111111111111111111010100, Length: 30}, // symbol 212
	{Code: 0b111111111111111111111111010101, Length: 30}, // symbol 213
	{Code: 0b111111111111111111111111010110, Length: 30}, // symbol 214
	{Code: 0b111111111111111111111111010111, Length: 30}, // symbol 215
	{Code: 0b111111111111111111111111011000, Length: 30}, // symbol 216
	{Code: 0b111111111111111111111111011001, Length: 30}, // symbol 217
	{Code: 0b111111111111111111111111011010, Length: 30}, // symbol 218
	{Code: 0b111111111111111111111111011011, Length: 30}, // symbol 219
	{Code: 0b111111111111111111111111011100, Length: 30}, // symbol 220
	{Code: 0b111111111111111111111111011101, Length: 30}, // symbol 221
	{Code: 0b111111111111111111111111011110, Length: 30}, // symbol 222
	{Code: 0b111111111111111111111111011111, Length: 30}, // symbol 223
	{Code: 0b111111111111111111111111100000, Length: 30}, // symbol 224
	{Code: 0b111111111111111111111111100001, Length: 30}, // symbol 225
	{Code: 0b111111111111111111111111100010, Length: 30}, // symbol 226
	{Code: 0b111111111111111111111111100011, Length: 30}, // symbol 227
	{Code: 0b111111111111111111111111100100, Length: 30}, // symbol 228
	{Code: 0b111111111111111111111111100101, Length: 30}, // symbol 229
	{Code: 0b111111111111111111111111100110, Length: 30}, // symbol 230
	{Code: 0b111111111111111111111111100111, Length: 30}, // symbol 231
	{Code: 0b111111111111111111111111101000, Length: 30}, // symbol 232
	{Code: 0b111111111111111111111111101001, Length: 30}, // symbol 233
	{Code: 0b111111111111111111111111101010, Length: 30}, // symbol 234
	{Code: 0b111111111111111111111111101011, Length: 30}, // symbol 235
	{Code: 0b111111111111111111111111101100, Length: 30}, // symbol 236
	{Code: 0b111111111111111111111111101101, Length: 30}, // symbol 237
	{Code: 0b111111111111111111111111101110, Length: 30}, // symbol 238
	{Code: 0b111111111111111111111111101111, Length: 30}, // symbol 239
	{Code: 0b111111111111111111111111110000, Length: 30}, // symbol 240
	{Code: 0b111111111111111111111111110001, Length: 30}, // symbol 241
	{Code: 0b111111111111111111111111110010, Length: 30}, // symbol 242
	{Code: 0b111111111111111111111111110011, Length: 30}, // symbol 243
	{Code: 0b111111111111111111111111110100, Length: 30}, // symbol 244
	{Code: 0b111111111111111111111111110101, Length: 30}, // symbol 245
	{Code: 0b111111111111111111111111110110, Length: 30}, // symbol 246
	{Code: 0b111111111111111111111111110111, Length: 30}, // symbol 247
	{Code: 0b111111111111111111111111111000, Length: 30}, // symbol 248
	{Code: 0b111111111111111111111111111001, Length: 30}, // symbol 249
	{Code: 0b111111111111111111111111111010, Length: 30}, // symbol 250
	{Code: 0b111111111111111111111111111011, Length: 30}, // symbol 251
	{Code: 0b111111111111111111111111111100, Length: 30}, // symbol 252
	{Code: 0b111111111111111111111111111101, Length: 30}, // symbol 253
	{Code: 0b111111111111111111111111111110, Length: 30}, // symbol 254
	{Code: 0b111111111111111111111111111111, Length: 30}, // symbol 255
}
