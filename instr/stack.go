package instr

import (
	"botvm/cpu"
)

// The stack grows toward lower addresses. SP points at the next free
// cell: a push stores there then decrements, a pop increments then
// loads. SP wraps at the word boundary like any register.

func (in *instructions) pushWord(value int) (err error) {
	sp, err := in.named(cpu.REG_SP)
	if err != nil {
		return
	}

	if err = in.c.Memory.Set(sp.Value(), value); err != nil {
		return
	}

	sp.SetValue(sp.Value() - 1)
	return
}

func (in *instructions) popWord() (value int, err error) {
	sp, err := in.named(cpu.REG_SP)
	if err != nil {
		return
	}

	sp.SetValue(sp.Value() + 1)
	return in.c.Memory.Get(sp.Value())
}

// push stores its lone operand on the stack.
func (in *instructions) push(src, dst cpu.Operand, st *cpu.Status) (err error) {
	var value int
	if value, err = src.Get(); err != nil {
		return
	}

	return in.pushWord(value)
}

// pop loads the top of the stack into its lone operand.
func (in *instructions) pop(src, dst cpu.Operand, st *cpu.Status) (err error) {
	var value int
	if value, err = in.popWord(); err != nil {
		return
	}

	return src.Set(value)
}

// call pushes the return address and jumps to the source value. The
// instruction pointer already sits past the whole call instruction, so
// it is the return address as-is.
func (in *instructions) call(src, dst cpu.Operand, st *cpu.Status) (err error) {
	var target int
	if target, err = src.Get(); err != nil {
		return
	}

	if err = in.pushWord(in.c.Ip); err != nil {
		return
	}

	in.c.Ip = target
	return
}

// ret pops the return address into the instruction pointer.
func (in *instructions) ret(src, dst cpu.Operand, st *cpu.Status) (err error) {
	var target int
	if target, err = in.popWord(); err != nil {
		return
	}

	in.c.Ip = target
	return
}
