package cpu

import (
	"errors"

	"botvm/translate"
)

var f = translate.From

var (
	// Construction errors
	ErrCancelled = errors.New(f("construction cancelled"))

	// Instruction set errors
	ErrOpcodeRange = errors.New(f("opcode out of range"))
	ErrOpcodeTaken = errors.New(f("opcode already registered"))

	// Snapshot errors
	ErrSnapshotMemory = errors.New(f("memory snapshot size mismatch"))
)

// ErrAddress reports a memory access outside 0..Size-1.
type ErrAddress struct {
	Address int
	Size    int
}

func (ea ErrAddress) Error() string {
	return f("address 0x%04x outside memory of %d words", ea.Address, ea.Size)
}

func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

// ErrRegister reports a register slot outside 1..N.
type ErrRegister int

func (er ErrRegister) Error() string {
	return f("register slot %d invalid", int(er))
}

func (er ErrRegister) Is(err error) (ok bool) {
	_, ok = err.(ErrRegister)
	return
}

// ErrOperandWrite reports a write through a non-writable operand.
type ErrOperandWrite OperandKind

func (eo ErrOperandWrite) Error() string {
	return f("operand %v not writable", OperandKind(eo))
}

func (eo ErrOperandWrite) Is(err error) (ok bool) {
	_, ok = err.(ErrOperandWrite)
	return
}
