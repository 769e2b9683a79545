package instr

import (
	"botvm/cpu"
)

// hwi delivers a hardware interrupt to the address named by its lone
// operand. Interrupting an unbound address is not a fault; the machine
// just moves on.
func (in *instructions) hwi(src, dst cpu.Operand, st *cpu.Status) (err error) {
	var address int
	if address, err = src.Get(); err != nil {
		return
	}

	in.c.HardwareInterrupt(address)
	return
}
