package cpu

import (
	"fmt"
)

// Instruction word layout: source field in bits 15-11, destination field
// in bits 10-6, opcode in bits 5-0.
const (
	OPCODE_MASK  = 0x003f
	FIELD_MASK   = 0x001f
	DEST_SHIFT   = 6
	SOURCE_SHIFT = 11
)

// Reserved operand field codes. They sit above the register range
// (2N <= 28 for any supported register file) and are fixed by the
// toolchain that encodes program images; do not renumber them.
const (
	IMMEDIATE_VALUE     = 29 // literal word follows the instruction
	IMMEDIATE_VALUE_MEM = 30 // absolute address word follows the instruction
)

// DecodeWord splits a machine word into its opcode and raw operand fields.
func DecodeWord(word int) (opcode, source, destination int) {
	opcode = word & OPCODE_MASK
	source = (word >> SOURCE_SHIFT) & FIELD_MASK
	destination = (word >> DEST_SHIFT) & FIELD_MASK
	return
}

// EncodeWord packs an opcode and two raw operand fields into a machine
// word.
func EncodeWord(opcode, source, destination int) int {
	return ((source & FIELD_MASK) << SOURCE_SHIFT) |
		((destination & FIELD_MASK) << DEST_SHIFT) |
		(opcode & OPCODE_MASK)
}

// AddressingMode is the classification of a raw 5-bit operand field.
type AddressingMode int

//go:generate go tool stringer -linecomment -type=AddressingMode
const (
	MODE_NONE         = AddressingMode(0) // none
	MODE_IMMEDIATE    = AddressingMode(1) // immediate
	MODE_ABSOLUTE     = AddressingMode(2) // absolute
	MODE_REGISTER     = AddressingMode(3) // register
	MODE_INDIRECT     = AddressingMode(4) // indirect
	MODE_DISPLACEMENT = AddressingMode(5) // displacement
)

// ClassifyField maps a raw operand field value to its addressing mode,
// given the register file size n.
func ClassifyField(field int, n int) AddressingMode {
	switch {
	case field == 0:
		return MODE_NONE
	case field == IMMEDIATE_VALUE:
		return MODE_IMMEDIATE
	case field == IMMEDIATE_VALUE_MEM:
		return MODE_ABSOLUTE
	case field <= n:
		return MODE_REGISTER
	case field <= 2*n:
		return MODE_INDIRECT
	default:
		return MODE_DISPLACEMENT
	}
}

// ExtraWords returns how many trailing instruction words a field in this
// mode consumes.
func (mode AddressingMode) ExtraWords() int {
	switch mode {
	case MODE_IMMEDIATE, MODE_ABSOLUTE, MODE_DISPLACEMENT:
		return 1
	default:
		return 0
	}
}

// OperandKind tags a resolved operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_NONE      = OperandKind(0) // none
	OPERAND_IMMEDIATE = OperandKind(1) // imm
	OPERAND_MEMORY    = OperandKind(2) // mem
	OPERAND_REGISTER  = OperandKind(3) // reg
)

// Operand is a resolved operand location. Kind selects how Value is
// interpreted: a bare literal (imm), an absolute word address (mem), or a
// 1-based register slot (reg). Memory and register operands carry a
// reference to the store they read and write through, so a behavior needs
// no knowledge of how the operand was addressed.
type Operand struct {
	Kind  OperandKind
	Value int

	memory    *Memory
	registers *RegisterSet
}

// MemoryOperand resolves an absolute address in m.
func MemoryOperand(m *Memory, address int) Operand {
	return Operand{Kind: OPERAND_MEMORY, Value: address, memory: m}
}

// RegisterOperand resolves a 1-based register slot in rs.
func RegisterOperand(rs *RegisterSet, slot int) Operand {
	return Operand{Kind: OPERAND_REGISTER, Value: slot, registers: rs}
}

// ImmediateOperand resolves a bare literal value.
func ImmediateOperand(value int) Operand {
	return Operand{Kind: OPERAND_IMMEDIATE, Value: value}
}

// Get reads the operand's current value. A none operand reads as 0.
func (op Operand) Get() (value int, err error) {
	switch op.Kind {
	case OPERAND_IMMEDIATE:
		value = op.Value
	case OPERAND_MEMORY:
		value, err = op.memory.Get(op.Value)
	case OPERAND_REGISTER:
		value, err = op.registers.Get(op.Value)
	}

	return
}

// Set writes through the operand. Immediate and none operands are not
// writable.
func (op Operand) Set(value int) (err error) {
	switch op.Kind {
	case OPERAND_MEMORY:
		err = op.memory.Set(op.Value, value)
	case OPERAND_REGISTER:
		err = op.registers.Set(op.Value, value)
	default:
		err = ErrOperandWrite(op.Kind)
	}

	return
}

// String renders the operand for trace logs, e.g. "imm 0x002a" or "reg 3".
func (op Operand) String() string {
	switch op.Kind {
	case OPERAND_REGISTER:
		return fmt.Sprintf("%v %d", op.Kind, op.Value)
	case OPERAND_IMMEDIATE, OPERAND_MEMORY:
		return fmt.Sprintf("%v 0x%04x", op.Kind, op.Value)
	default:
		return op.Kind.String()
	}
}
