// Package hw provides the stock peripherals reachable through hardware
// interrupts: a console sink, a pseudo-random source, and a tick clock.
// Devices exchange data through the A register by convention.
package hw

import (
	"io"

	"botvm/cpu"
)

// REG_DATA is the register devices read and write on an interrupt.
const REG_DATA = "A"

// Standard interrupt addresses of the stock devices.
const (
	ADDR_CONSOLE = 0x03
	ADDR_RANDOM  = 0x07
	ADDR_CLOCK   = 0x08
)

// AttachDefaults binds the stock devices at their standard addresses,
// leaving any address that already has an occupant alone. Console output
// goes to output.
func AttachDefaults(c *cpu.Cpu, output io.Writer) {
	if _, ok := c.Hardware(ADDR_CONSOLE); !ok {
		c.AttachHardware(NewConsole(c, output), ADDR_CONSOLE)
	}

	if _, ok := c.Hardware(ADDR_RANDOM); !ok {
		c.AttachHardware(NewRandom(c), ADDR_RANDOM)
	}

	if _, ok := c.Hardware(ADDR_CLOCK); !ok {
		c.AttachHardware(NewClock(c), ADDR_CLOCK)
	}
}

// data resolves the data register, or nil if the machine's register
// file does not carry one.
func data(c *cpu.Cpu) *cpu.Register {
	return c.Registers.Named(REG_DATA)
}
