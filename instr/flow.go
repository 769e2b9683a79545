package instr

import (
	"botvm/cpu"
)

// brk raises the break flag, ending the run after this dispatch.
func (in *instructions) brk(src, dst cpu.Operand, st *cpu.Status) error {
	st.Break = true
	return nil
}

func (in *instructions) nop(src, dst cpu.Operand, st *cpu.Status) error {
	return nil
}

// jumpIf redirects the instruction pointer to the source value when the
// condition holds. The pointer already sits past the whole instruction,
// so a not-taken jump needs no adjustment.
func (in *instructions) jumpIf(src cpu.Operand, taken bool) (err error) {
	var target int
	if target, err = src.Get(); err != nil {
		return
	}

	if taken {
		in.c.Ip = target
	}

	return
}

func (in *instructions) jmp(src, dst cpu.Operand, st *cpu.Status) error {
	return in.jumpIf(src, true)
}

func (in *instructions) jz(src, dst cpu.Operand, st *cpu.Status) error {
	return in.jumpIf(src, st.Zero)
}

func (in *instructions) jnz(src, dst cpu.Operand, st *cpu.Status) error {
	return in.jumpIf(src, !st.Zero)
}

func (in *instructions) jg(src, dst cpu.Operand, st *cpu.Status) error {
	return in.jumpIf(src, !st.Sign && !st.Zero)
}

func (in *instructions) jge(src, dst cpu.Operand, st *cpu.Status) error {
	return in.jumpIf(src, !st.Sign)
}

func (in *instructions) jl(src, dst cpu.Operand, st *cpu.Status) error {
	return in.jumpIf(src, st.Sign)
}

func (in *instructions) jle(src, dst cpu.Operand, st *cpu.Status) error {
	return in.jumpIf(src, st.Sign || st.Zero)
}

func (in *instructions) js(src, dst cpu.Operand, st *cpu.Status) error {
	return in.jumpIf(src, st.Sign)
}

func (in *instructions) jns(src, dst cpu.Operand, st *cpu.Status) error {
	return in.jumpIf(src, !st.Sign)
}
