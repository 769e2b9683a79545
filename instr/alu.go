package instr

import (
	"botvm/cpu"
)

// SIGN_BIT is the sign position of a machine word.
const SIGN_BIT = 0x8000

// Registers with catalogue-reserved roles in mul and div.
const (
	REG_ACC = "A" // low word
	REG_EXT = "Y" // high word
)

// named resolves a role register, failing instead of panicking when a
// restored register file does not carry it.
func (in *instructions) named(name string) (*cpu.Register, error) {
	r := in.c.Registers.Named(name)
	if r == nil {
		return nil, ErrRegisterMissing(name)
	}

	return r, nil
}

// fetch reads both operand values ahead of an arithmetic behavior.
func fetch(src, dst cpu.Operand) (srcV, dstV int, err error) {
	if srcV, err = src.Get(); err != nil {
		return
	}

	dstV, err = dst.Get()
	return
}

// logic sets zero and sign from a masked value and clears carry and
// overflow, the flag effect shared by the bitwise behaviors.
func logic(st *cpu.Status, value int) {
	st.Zero = value == 0
	st.Sign = value&SIGN_BIT != 0
	st.Carry = false
	st.Overflow = false
}

// mov copies the source value into the destination. Flags are untouched.
func (in *instructions) mov(src, dst cpu.Operand, st *cpu.Status) (err error) {
	var value int
	if value, err = src.Get(); err != nil {
		return
	}

	return dst.Set(value)
}

func (in *instructions) add(src, dst cpu.Operand, st *cpu.Status) (err error) {
	srcV, dstV, err := fetch(src, dst)
	if err != nil {
		return
	}

	wide := dstV + srcV
	value := wide & cpu.WORD_MASK

	st.Zero = value == 0
	st.Sign = value&SIGN_BIT != 0
	st.Carry = wide > cpu.WORD_MASK
	st.Overflow = (dstV^value)&(srcV^value)&SIGN_BIT != 0

	return dst.Set(value)
}

func (in *instructions) sub(src, dst cpu.Operand, st *cpu.Status) (err error) {
	value, err := in.subFlags(src, dst, st)
	if err != nil {
		return
	}

	return dst.Set(value)
}

// cmp is sub without the writeback.
func (in *instructions) cmp(src, dst cpu.Operand, st *cpu.Status) (err error) {
	_, err = in.subFlags(src, dst, st)
	return
}

// subFlags computes dst-src, setting zero and sign from the masked
// difference, carry on unsigned borrow, and overflow on signed overflow.
func (in *instructions) subFlags(src, dst cpu.Operand, st *cpu.Status) (value int, err error) {
	srcV, dstV, err := fetch(src, dst)
	if err != nil {
		return
	}

	value = (dstV - srcV) & cpu.WORD_MASK

	st.Zero = value == 0
	st.Sign = value&SIGN_BIT != 0
	st.Carry = dstV < srcV
	st.Overflow = (dstV^srcV)&(dstV^value)&SIGN_BIT != 0

	return
}

func (in *instructions) and(src, dst cpu.Operand, st *cpu.Status) (err error) {
	srcV, dstV, err := fetch(src, dst)
	if err != nil {
		return
	}

	value := dstV & srcV
	logic(st, value)

	return dst.Set(value)
}

// test is and without the writeback.
func (in *instructions) test(src, dst cpu.Operand, st *cpu.Status) (err error) {
	srcV, dstV, err := fetch(src, dst)
	if err != nil {
		return
	}

	logic(st, dstV&srcV)
	return
}

func (in *instructions) or(src, dst cpu.Operand, st *cpu.Status) (err error) {
	srcV, dstV, err := fetch(src, dst)
	if err != nil {
		return
	}

	value := dstV | srcV
	logic(st, value)

	return dst.Set(value)
}

func (in *instructions) xor(src, dst cpu.Operand, st *cpu.Status) (err error) {
	srcV, dstV, err := fetch(src, dst)
	if err != nil {
		return
	}

	value := dstV ^ srcV
	logic(st, value)

	return dst.Set(value)
}

func (in *instructions) shl(src, dst cpu.Operand, st *cpu.Status) (err error) {
	srcV, dstV, err := fetch(src, dst)
	if err != nil {
		return
	}

	count := srcV & 0x1f
	wide := dstV << count
	value := wide & cpu.WORD_MASK

	logic(st, value)
	st.Carry = wide&(cpu.WORD_MASK+1) != 0

	return dst.Set(value)
}

func (in *instructions) shr(src, dst cpu.Operand, st *cpu.Status) (err error) {
	srcV, dstV, err := fetch(src, dst)
	if err != nil {
		return
	}

	count := srcV & 0x1f
	value := dstV >> count

	logic(st, value)
	if count > 0 {
		st.Carry = (dstV>>(count-1))&1 != 0
	}

	return dst.Set(value)
}

// neg two's-complements its lone operand in place.
func (in *instructions) neg(src, dst cpu.Operand, st *cpu.Status) (err error) {
	var srcV int
	if srcV, err = src.Get(); err != nil {
		return
	}

	value := (-srcV) & cpu.WORD_MASK

	st.Zero = value == 0
	st.Sign = value&SIGN_BIT != 0
	st.Carry = srcV != 0
	st.Overflow = srcV == SIGN_BIT

	return src.Set(value)
}

// not inverts its lone operand in place.
func (in *instructions) not(src, dst cpu.Operand, st *cpu.Status) (err error) {
	var srcV int
	if srcV, err = src.Get(); err != nil {
		return
	}

	value := ^srcV & cpu.WORD_MASK
	logic(st, value)

	return src.Set(value)
}

// mul multiplies A by the source, leaving the low word in A and the high
// word in Y. Carry and overflow signal a nonzero high word.
func (in *instructions) mul(src, dst cpu.Operand, st *cpu.Status) (err error) {
	var srcV int
	if srcV, err = src.Get(); err != nil {
		return
	}

	a, err := in.named(REG_ACC)
	if err != nil {
		return
	}
	y, err := in.named(REG_EXT)
	if err != nil {
		return
	}

	product := a.Value() * srcV
	low := product & cpu.WORD_MASK
	high := (product >> 16) & cpu.WORD_MASK

	a.SetValue(low)
	y.SetValue(high)

	st.Zero = product == 0
	st.Sign = low&SIGN_BIT != 0
	st.Carry = high != 0
	st.Overflow = high != 0

	return
}

// div divides the 32-bit value Y:A by the source, leaving the quotient
// in A and the remainder in Y. Division by zero faults the machine and
// stops the run.
func (in *instructions) div(src, dst cpu.Operand, st *cpu.Status) (err error) {
	var srcV int
	if srcV, err = src.Get(); err != nil {
		return
	}

	if srcV == 0 {
		st.Fault = true
		st.Break = true
		return
	}

	a, err := in.named(REG_ACC)
	if err != nil {
		return
	}
	y, err := in.named(REG_EXT)
	if err != nil {
		return
	}

	dividend := y.Value()<<16 | a.Value()
	quotient := dividend / srcV
	remainder := dividend % srcV

	a.SetValue(quotient)
	y.SetValue(remainder)

	st.Zero = quotient&cpu.WORD_MASK == 0
	st.Sign = quotient&SIGN_BIT != 0
	st.Carry = false
	st.Overflow = quotient > cpu.WORD_MASK

	return
}
