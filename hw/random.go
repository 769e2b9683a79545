package hw

import (
	"math/rand"

	"botvm/cpu"
)

// Random loads a pseudo-random word into the data register on every
// interrupt. It is deliberately not stateful: a restored machine reseeds
// rather than replaying the sequence.
type Random struct {
	c *cpu.Cpu
}

var _ cpu.Hardware = (*Random)(nil)

func NewRandom(c *cpu.Cpu) *Random {
	return &Random{c: c}
}

func (rnd *Random) HandleInterrupt(st *cpu.Status) {
	r := data(rnd.c)
	if r == nil {
		return
	}

	r.SetValue(int(rand.Uint32() & cpu.WORD_MASK))
}
