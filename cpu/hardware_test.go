package cpu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testDevice counts interrupts and optionally scripts a reaction.
type testDevice struct {
	interrupts int
	fn         func(st *Status)
}

func (d *testDevice) HandleInterrupt(st *Status) {
	d.interrupts++
	if d.fn != nil {
		d.fn(st)
	}
}

// testCounterDevice is a stateful device double whose state is a bare
// counter.
type testCounterDevice struct {
	testDevice
	Count int `json:"count"`
}

func (d *testCounterDevice) HardwareType() string {
	return "test-counter"
}

func (d *testCounterDevice) SaveState() ([]byte, error) {
	return json.Marshal(d)
}

func (d *testCounterDevice) LoadState(state []byte) error {
	return json.Unmarshal(state, d)
}

func TestCpu_AttachHardware(t *testing.T) {
	assert := assert.New(t)

	c, err := New(DefaultConfig(), "tester", testCatalog(), nil)
	assert.NoError(err)

	first := &testDevice{}
	c.AttachHardware(first, 0x03)

	assert.True(c.HardwareInterrupt(0x03))
	assert.Equal(1, first.interrupts)

	assert.False(c.HardwareInterrupt(0x07))

	// A second attach at the same address replaces the first device.
	second := &testDevice{}
	c.AttachHardware(second, 0x03)

	assert.True(c.HardwareInterrupt(0x03))
	assert.Equal(1, first.interrupts)
	assert.Equal(1, second.interrupts)
}

func TestCpu_DetachHardware(t *testing.T) {
	assert := assert.New(t)

	c, err := New(DefaultConfig(), "tester", testCatalog(), nil)
	assert.NoError(err)

	d := &testDevice{}
	c.AttachHardware(d, 0x03)
	c.DetachHardware(0x03)

	assert.False(c.HardwareInterrupt(0x03))
	assert.Equal(0, d.interrupts)

	c.DetachHardware(0x03)
	c.DetachHardware(0x1f)
}

func TestCpu_Hardware(t *testing.T) {
	assert := assert.New(t)

	c, err := New(DefaultConfig(), "tester", testCatalog(), nil)
	assert.NoError(err)

	d := &testDevice{}
	c.AttachHardware(d, 0x03)

	hw, ok := c.Hardware(0x03)
	assert.True(ok)
	assert.Equal(Hardware(d), hw)

	_, ok = c.Hardware(0x04)
	assert.False(ok)
}

func TestCpu_HardwareInterrupt_Status(t *testing.T) {
	assert := assert.New(t)

	c, err := New(DefaultConfig(), "tester", testCatalog(), nil)
	assert.NoError(err)

	d := &testDevice{fn: func(st *Status) {
		st.Carry = true
	}}
	c.AttachHardware(d, 0x03)

	assert.True(c.HardwareInterrupt(0x03))
	assert.True(c.Status.Carry)
}

func TestRegisterHardware(t *testing.T) {
	assert := assert.New(t)

	RegisterHardware("test-probe", func(c *Cpu) Hardware {
		return &testDevice{}
	})

	factory, ok := hardwareRegistry["test-probe"]
	assert.True(ok)

	c, err := New(DefaultConfig(), "tester", testCatalog(), nil)
	assert.NoError(err)
	assert.NotNil(factory(c))
}
