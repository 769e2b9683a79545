package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeWord(t *testing.T) {
	assert := assert.New(t)

	opcode, source, destination := DecodeWord(0xe8c1)
	assert.Equal(0x01, opcode)
	assert.Equal(IMMEDIATE_VALUE, source)
	assert.Equal(3, destination)

	opcode, source, destination = DecodeWord(0x0000)
	assert.Equal(0, opcode)
	assert.Equal(0, source)
	assert.Equal(0, destination)
}

func TestEncodeWord(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0xe8c1, EncodeWord(0x01, IMMEDIATE_VALUE, 3))

	for _, word := range []int{0x0000, 0xe8c1, 0xffff, 0x1234} {
		opcode, source, destination := DecodeWord(word)
		assert.Equal(word, EncodeWord(opcode, source, destination))
	}
}

func TestClassifyField(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		field int
		n     int
		mode  AddressingMode
	}{
		{0, 8, MODE_NONE},
		{1, 8, MODE_REGISTER},
		{8, 8, MODE_REGISTER},
		{9, 8, MODE_INDIRECT},
		{16, 8, MODE_INDIRECT},
		{17, 8, MODE_DISPLACEMENT},
		{28, 8, MODE_DISPLACEMENT},
		{29, 8, MODE_IMMEDIATE},
		{30, 8, MODE_ABSOLUTE},
		{31, 8, MODE_DISPLACEMENT},

		// Smaller register file shifts the range boundaries but not
		// the reserved codes.
		{4, 4, MODE_REGISTER},
		{5, 4, MODE_INDIRECT},
		{8, 4, MODE_INDIRECT},
		{9, 4, MODE_DISPLACEMENT},
		{29, 4, MODE_IMMEDIATE},
		{30, 4, MODE_ABSOLUTE},
	}

	for _, test := range tests {
		mode := ClassifyField(test.field, test.n)
		assert.Equal(test.mode, mode, fmt.Sprintf("field %d, n %d", test.field, test.n))
	}
}

func TestAddressingMode_ExtraWords(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, MODE_NONE.ExtraWords())
	assert.Equal(1, MODE_IMMEDIATE.ExtraWords())
	assert.Equal(1, MODE_ABSOLUTE.ExtraWords())
	assert.Equal(0, MODE_REGISTER.ExtraWords())
	assert.Equal(0, MODE_INDIRECT.ExtraWords())
	assert.Equal(1, MODE_DISPLACEMENT.ExtraWords())
}

func TestAddressingMode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("none", MODE_NONE.String())
	assert.Equal("immediate", MODE_IMMEDIATE.String())
	assert.Equal("absolute", MODE_ABSOLUTE.String())
	assert.Equal("register", MODE_REGISTER.String())
	assert.Equal("indirect", MODE_INDIRECT.String())
	assert.Equal("displacement", MODE_DISPLACEMENT.String())
}

func TestOperandKind_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("none", OPERAND_NONE.String())
	assert.Equal("imm", OPERAND_IMMEDIATE.String())
	assert.Equal("mem", OPERAND_MEMORY.String())
	assert.Equal("reg", OPERAND_REGISTER.String())
}

func TestOperand_Get(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(16)
	m.Set(5, 0x1234)
	rs := NewRegisterSet("A", "B")
	rs.Set(2, 0x42)

	value, err := Operand{}.Get()
	assert.NoError(err)
	assert.Equal(0, value)

	value, err = ImmediateOperand(7).Get()
	assert.NoError(err)
	assert.Equal(7, value)

	value, err = MemoryOperand(m, 5).Get()
	assert.NoError(err)
	assert.Equal(0x1234, value)

	value, err = RegisterOperand(rs, 2).Get()
	assert.NoError(err)
	assert.Equal(0x42, value)

	_, err = MemoryOperand(m, 16).Get()
	assert.ErrorIs(err, ErrAddress{})

	_, err = RegisterOperand(rs, 3).Get()
	assert.ErrorIs(err, ErrRegister(0))
}

func TestOperand_Set(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(16)
	rs := NewRegisterSet("A", "B")

	assert.NoError(MemoryOperand(m, 5).Set(0x1234))
	value, err := m.Get(5)
	assert.NoError(err)
	assert.Equal(0x1234, value)

	assert.NoError(RegisterOperand(rs, 1).Set(0x42))
	value, err = rs.Get(1)
	assert.NoError(err)
	assert.Equal(0x42, value)

	assert.ErrorIs(ImmediateOperand(7).Set(1), ErrOperandWrite(0))
	assert.ErrorIs(Operand{}.Set(1), ErrOperandWrite(0))
	assert.ErrorIs(MemoryOperand(m, 16).Set(1), ErrAddress{})
}

func TestOperand_String(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(16)
	rs := NewRegisterSet("A")

	assert.Equal("none", Operand{}.String())
	assert.Equal("imm 0x002a", ImmediateOperand(42).String())
	assert.Equal("mem 0x1234", MemoryOperand(m, 0x1234).String())
	assert.Equal("reg 3", RegisterOperand(rs, 3).String())
}
