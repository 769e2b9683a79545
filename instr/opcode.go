package instr

// Op is an opcode of the standard catalogue. The values are an
// external-interface contract with the toolchain that encodes program
// images; do not renumber them.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	BRK  = Op(0x00) // brk
	MOV  = Op(0x01) // mov
	ADD  = Op(0x02) // add
	SUB  = Op(0x03) // sub
	AND  = Op(0x04) // and
	OR   = Op(0x05) // or
	SHL  = Op(0x06) // shl
	SHR  = Op(0x07) // shr
	XOR  = Op(0x08) // xor
	TEST = Op(0x09) // test
	CMP  = Op(0x0a) // cmp
	NEG  = Op(0x0b) // neg
	NOT  = Op(0x0c) // not
	JMP  = Op(0x0d) // jmp
	JNZ  = Op(0x0e) // jnz
	JZ   = Op(0x0f) // jz
	JG   = Op(0x10) // jg
	JGE  = Op(0x11) // jge
	JLE  = Op(0x12) // jle
	JL   = Op(0x13) // jl
	JNS  = Op(0x14) // jns
	JS   = Op(0x15) // js
	PUSH = Op(0x16) // push
	POP  = Op(0x17) // pop
	CALL = Op(0x18) // call
	RET  = Op(0x19) // ret
	MUL  = Op(0x1a) // mul
	DIV  = Op(0x1b) // div
	HWI  = Op(0x1c) // hwi
	NOP  = Op(0x3f) // nop
)
