package hw

import (
	"encoding/json"

	"botvm/cpu"
)

// HW_CLOCK names the clock factory in snapshots.
const HW_CLOCK = "clock"

func init() {
	cpu.RegisterHardware(HW_CLOCK, func(c *cpu.Cpu) cpu.Hardware {
		return NewClock(c)
	})
}

// Clock counts interrupts across the lifetime of a machine, including
// across snapshot and restore. Each interrupt loads the low word of the
// running tick count into the data register.
type Clock struct {
	c *cpu.Cpu

	Ticks int `json:"ticks"`
}

var _ cpu.Stateful = (*Clock)(nil)

func NewClock(c *cpu.Cpu) *Clock {
	return &Clock{c: c}
}

func (clk *Clock) HandleInterrupt(st *cpu.Status) {
	clk.Ticks++

	if r := data(clk.c); r != nil {
		r.SetValue(clk.Ticks)
	}
}

func (clk *Clock) HardwareType() string {
	return HW_CLOCK
}

func (clk *Clock) SaveState() ([]byte, error) {
	return json.Marshal(clk)
}

func (clk *Clock) LoadState(state []byte) error {
	return json.Unmarshal(state, clk)
}
