package cpu

import (
	"fmt"
	"strings"
)

// Names of the registers with reserved roles, reinitialized on Reset.
const (
	REG_SP = "SP" // stack pointer
	REG_BP = "BP" // base pointer
)

// Register is a single named 16-bit register.
type Register struct {
	name  string
	value int
}

// Name returns the register's assembly name.
func (r *Register) Name() string {
	return r.name
}

// Value returns the current 16-bit value.
func (r *Register) Value() int {
	return r.value
}

// SetValue stores a value, masked to 16 bits.
func (r *Register) SetValue(value int) {
	r.value = value & WORD_MASK
}

// RegisterSet is the ordered, named register file. Slots are 1-based to
// match the operand field encoding: a field value k in 1..N addresses
// slot k directly.
type RegisterSet struct {
	registers []*Register
}

// NewRegisterSet creates a zeroed register file with the given slot order.
func NewRegisterSet(names ...string) (rs *RegisterSet) {
	rs = &RegisterSet{}
	for _, name := range names {
		rs.registers = append(rs.registers, &Register{name: name})
	}

	return
}

// DefaultRegisterSet returns the standard eight-register file.
func DefaultRegisterSet() *RegisterSet {
	return NewRegisterSet("A", "B", "C", "D", "X", "Y", REG_SP, REG_BP)
}

// Size returns the number of slots (N).
func (rs *RegisterSet) Size() int {
	return len(rs.registers)
}

// Get returns the value held in a 1-based slot.
func (rs *RegisterSet) Get(slot int) (value int, err error) {
	if slot < 1 || slot > len(rs.registers) {
		err = ErrRegister(slot)
		return
	}

	value = rs.registers[slot-1].value
	return
}

// Set stores a value (masked to 16 bits) into a 1-based slot.
func (rs *RegisterSet) Set(slot int, value int) (err error) {
	if slot < 1 || slot > len(rs.registers) {
		err = ErrRegister(slot)
		return
	}

	rs.registers[slot-1].SetValue(value)
	return
}

// Named returns the register with the given name, or nil.
func (rs *RegisterSet) Named(name string) *Register {
	for _, reg := range rs.registers {
		if reg.name == name {
			return reg
		}
	}

	return nil
}

// Slot returns the 1-based slot of a named register.
func (rs *RegisterSet) Slot(name string) (slot int, ok bool) {
	for n, reg := range rs.registers {
		if reg.name == name {
			return n + 1, true
		}
	}

	return
}

// String returns the register file as "NAME=hhhh" pairs in slot order.
func (rs *RegisterSet) String() string {
	var parts []string
	for _, reg := range rs.registers {
		parts = append(parts, fmt.Sprintf("%s=%04x", reg.name, reg.value))
	}

	return strings.Join(parts, " ")
}
