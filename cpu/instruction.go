package cpu

// Instruction is one executable behavior of the machine. Execute receives
// the resolved source and destination operands; instructions with a single
// operand receive it as src with a none dst, and no-operand instructions
// receive two none operands. Flag changes go through st.
type Instruction interface {
	Opcode() int
	Mnemonic() string
	Execute(src, dst Operand, st *Status) error
}

// InstructionSet maps opcodes to behaviors for one machine instance.
type InstructionSet struct {
	instructions map[int]Instruction
	fallback     Instruction
}

// NewInstructionSet returns an empty instruction set.
func NewInstructionSet() *InstructionSet {
	return &InstructionSet{
		instructions: make(map[int]Instruction),
	}
}

// Add registers in under its opcode.
func (set *InstructionSet) Add(in Instruction) (err error) {
	opcode := in.Opcode()
	if opcode < 0 || opcode > OPCODE_MASK {
		return ErrOpcodeRange
	}

	if _, ok := set.instructions[opcode]; ok {
		return ErrOpcodeTaken
	}

	set.instructions[opcode] = in
	return
}

// SetDefault installs the behavior returned for opcodes with no
// registration of their own.
func (set *InstructionSet) SetDefault(in Instruction) {
	set.fallback = in
}

// Get returns the behavior for opcode, or the default behavior when none
// is registered. May be nil if no default was installed.
func (set *InstructionSet) Get(opcode int) Instruction {
	if in, ok := set.instructions[opcode]; ok {
		return in
	}

	return set.fallback
}

// Size returns the number of registered opcodes, not counting the default.
func (set *InstructionSet) Size() int {
	return len(set.instructions)
}

// Catalog populates a machine's instruction set during construction.
type Catalog func(c *Cpu, set *InstructionSet) error
