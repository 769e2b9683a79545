package cpu

import (
	"github.com/sirupsen/logrus"
)

// Hardware is a device reachable through the hardware interrupt
// instruction. HandleInterrupt runs synchronously between instruction
// dispatches and may read and write machine state through whatever the
// device captured at construction.
type Hardware interface {
	HandleInterrupt(st *Status)
}

// Stateful is implemented by hardware whose device state travels with a
// machine snapshot. HardwareType names the factory used to rebuild the
// device on restore, and SaveState must return a JSON document so the
// state embeds in the snapshot as-is.
type Stateful interface {
	Hardware
	HardwareType() string
	SaveState() ([]byte, error)
	LoadState(state []byte) error
}

// HardwareFactory builds a device bound to c.
type HardwareFactory func(c *Cpu) Hardware

var hardwareRegistry = make(map[string]HardwareFactory)

// RegisterHardware records a factory under a hardware type name, making
// devices of that type restorable from snapshots.
func RegisterHardware(name string, factory HardwareFactory) {
	hardwareRegistry[name] = factory
}

// AttachHardware binds hw to an interrupt address, replacing any device
// already bound there.
func (c *Cpu) AttachHardware(hw Hardware, address int) {
	c.hardware[address] = hw
}

// DetachHardware unbinds the device at address. Unbound addresses are
// left alone.
func (c *Cpu) DetachHardware(address int) {
	delete(c.hardware, address)
}

// Hardware returns the device bound at address, if any.
func (c *Cpu) Hardware(address int) (hw Hardware, ok bool) {
	hw, ok = c.hardware[address]
	return
}

// HardwareInterrupt delivers an interrupt to the device bound at address
// and reports whether a device was there to handle it.
func (c *Cpu) HardwareInterrupt(address int) (handled bool) {
	hw, ok := c.hardware[address]
	if !ok {
		logrus.WithField("address", address).
			Warn("cpu: interrupt for unbound hardware address")
		return false
	}

	hw.HandleInterrupt(c.Status)
	return true
}
