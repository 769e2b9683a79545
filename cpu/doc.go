// Package cpu implements a cycle-bounded 16-bit virtual CPU.
//
// A machine word carries a 5-bit source field, a 5-bit destination field,
// and a 6-bit opcode. Operand fields classify into six addressing modes
// (none, immediate literal, absolute memory, register direct, register
// indirect, register indirect with displacement), with immediate,
// absolute, and displacement modes consuming one trailing word each, so
// instructions are one to three words long.
//
// The execution loop is wall-clock bounded: a run polls its configured
// timeout every 1000 dispatched instructions, which lets a multi-tenant
// host execute untrusted and potentially non-terminating programs with a
// hard budget. Instruction behaviors, the register file layout, and the
// configuration source are collaborators; the engine owns fetch, decode,
// operand resolution, the hardware interrupt registry, and snapshots.
package cpu
