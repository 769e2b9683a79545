package instr

import (
	"botvm/cpu"
)

// operation binds an opcode to one behavior of the catalogue.
type operation struct {
	opcode Op
	run    func(src, dst cpu.Operand, st *cpu.Status) error
}

var _ cpu.Instruction = (*operation)(nil)

func (op *operation) Opcode() int {
	return int(op.opcode)
}

func (op *operation) Mnemonic() string {
	return op.opcode.String()
}

func (op *operation) Execute(src, dst cpu.Operand, st *cpu.Status) error {
	return op.run(src, dst, st)
}

// instructions is the catalogue bound to one machine. Behaviors reach
// registers and memory through the machine itself, so they stay valid
// when a restore swaps the underlying stores.
type instructions struct {
	c *cpu.Cpu
}

// Catalog populates set with the standard catalogue bound to c. Unmapped
// opcodes fall back to brk, stopping runaway programs instead of
// executing garbage.
func Catalog(c *cpu.Cpu, set *cpu.InstructionSet) (err error) {
	in := &instructions{c: c}

	ops := []*operation{
		{BRK, in.brk},
		{NOP, in.nop},
		{MOV, in.mov},
		{ADD, in.add},
		{SUB, in.sub},
		{AND, in.and},
		{OR, in.or},
		{XOR, in.xor},
		{SHL, in.shl},
		{SHR, in.shr},
		{TEST, in.test},
		{CMP, in.cmp},
		{NEG, in.neg},
		{NOT, in.not},
		{JMP, in.jmp},
		{JNZ, in.jnz},
		{JZ, in.jz},
		{JG, in.jg},
		{JGE, in.jge},
		{JLE, in.jle},
		{JL, in.jl},
		{JNS, in.jns},
		{JS, in.js},
		{PUSH, in.push},
		{POP, in.pop},
		{CALL, in.call},
		{RET, in.ret},
		{MUL, in.mul},
		{DIV, in.div},
		{HWI, in.hwi},
	}

	for _, op := range ops {
		if err = set.Add(op); err != nil {
			return
		}
	}

	set.SetDefault(ops[0])
	return
}
