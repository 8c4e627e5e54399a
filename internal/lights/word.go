package lights

// word is a board-sized bit vector, one bit per cell. The largest board is
// MaxSize x MaxSize, so every state and toggle pattern fits in 64 bits.
type word uint64

// Count the bits in a word. Needs to cope with all 64 bits.
func (word word) bitCount() int {
	word = ((word & 0xaaaaaaaaaaaaaaaa) >> 1) + (word & 0x5555555555555555)
	word = ((word & 0xcccccccccccccccc) >> 2) + (word & 0x3333333333333333)
	word = ((word & 0xf0f0f0f0f0f0f0f0) >> 4) + (word & 0x0f0f0f0f0f0f0f0f)
	word = ((word & 0xff00ff00ff00ff00) >> 8) + (word & 0x00ff00ff00ff00ff)
	word = ((word & 0xffff0000ffff0000) >> 16) + (word & 0x0000ffff0000ffff)
	word = ((word & 0xffffffff00000000) >> 32) + (word & 0x00000000ffffffff)
	return int(word)
}
