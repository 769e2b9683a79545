package cpu

import (
	"encoding/binary"
	"errors"
	"io"
)

// WORD_MASK is the machine word width mask. All stored values wrap to
// 16 bits.
const WORD_MASK = 0xffff

// Memory is the fixed-capacity, word-addressable store.
type Memory struct {
	words []uint16
}

// NewMemory creates a zeroed memory of the given word capacity.
func NewMemory(size int) *Memory {
	return &Memory{words: make([]uint16, size)}
}

// Size returns the capacity in words.
func (m *Memory) Size() int {
	return len(m.words)
}

// Get reads the word at an absolute address.
func (m *Memory) Get(address int) (value int, err error) {
	if address < 0 || address >= len(m.words) {
		err = ErrAddress{Address: address, Size: len(m.words)}
		return
	}

	value = int(m.words[address])
	return
}

// Set writes a word (masked to 16 bits) at an absolute address.
func (m *Memory) Set(address int, value int) (err error) {
	if address < 0 || address >= len(m.words) {
		err = ErrAddress{Address: address, Size: len(m.words)}
		return
	}

	m.words[address] = uint16(value & WORD_MASK)
	return
}

// Words returns the backing word slice. Callers must not resize it.
func (m *Memory) Words() []uint16 {
	return m.words
}

// LoadImage reads a program image (little-endian 16-bit words) from r
// into memory starting at offset, until EOF. Returns the number of words
// stored; an image that runs past the end of memory fails with
// ErrAddress.
func (m *Memory) LoadImage(r io.Reader, offset int) (n int, err error) {
	for {
		var word uint16
		err = binary.Read(r, binary.LittleEndian, &word)
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		err = m.Set(offset+n, int(word))
		if err != nil {
			return
		}
		n++
	}
}
