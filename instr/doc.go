// Package instr provides the standard instruction catalogue: data
// movement, 16-bit arithmetic and logic with flag effects, conditional
// jumps, stack and subroutine linkage, and hardware interrupt delivery.
// Catalog binds the whole catalogue to one machine.
package instr
