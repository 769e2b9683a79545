package hw

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"botvm/cpu"
)

func testCpu(t *testing.T) *cpu.Cpu {
	t.Helper()

	c, err := cpu.New(cpu.DefaultConfig(), "tester", nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	return c
}

func TestConsole(t *testing.T) {
	assert := assert.New(t)

	c := testCpu(t)
	out := &bytes.Buffer{}
	con := NewConsole(c, out)

	for _, ch := range []byte("Hi") {
		c.Registers.Named(REG_DATA).SetValue(int(ch))
		con.HandleInterrupt(c.Status)
	}

	assert.Equal("Hi", out.String())
}

func TestConsole_LowByte(t *testing.T) {
	assert := assert.New(t)

	c := testCpu(t)
	out := &bytes.Buffer{}
	con := NewConsole(c, out)

	c.Registers.Named(REG_DATA).SetValue(0x1248)
	con.HandleInterrupt(c.Status)

	assert.Equal([]byte{0x48}, out.Bytes())
}

func TestConsole_NilOutput(t *testing.T) {
	assert := assert.New(t)

	c := testCpu(t)
	con := NewConsole(c, nil)

	c.Registers.Named(REG_DATA).SetValue('x')
	con.HandleInterrupt(c.Status)
	assert.Equal(cpu.Status{}, *c.Status)
}

func TestRandom(t *testing.T) {
	assert := assert.New(t)

	c := testCpu(t)
	rnd := NewRandom(c)

	seen := map[int]bool{}
	for range 100 {
		rnd.HandleInterrupt(c.Status)
		seen[c.Registers.Named(REG_DATA).Value()] = true
	}

	assert.Greater(len(seen), 1)
}

func TestClock(t *testing.T) {
	assert := assert.New(t)

	c := testCpu(t)
	clk := NewClock(c)

	for range 3 {
		clk.HandleInterrupt(c.Status)
	}

	assert.Equal(3, clk.Ticks)
	assert.Equal(3, c.Registers.Named(REG_DATA).Value())
}

func TestClock_State(t *testing.T) {
	assert := assert.New(t)

	c := testCpu(t)
	clk := NewClock(c)
	clk.Ticks = 41

	state, err := clk.SaveState()
	assert.NoError(err)
	assert.JSONEq(`{"ticks": 41}`, string(state))

	back := NewClock(c)
	assert.NoError(back.LoadState(state))
	assert.Equal(41, back.Ticks)
}

// The clock registers its factory at package load, so it survives a
// snapshot and restore cycle with its count intact.
func TestClock_Restore(t *testing.T) {
	assert := assert.New(t)

	c := testCpu(t)
	clk := NewClock(c)
	clk.Ticks = 41
	c.AttachHardware(clk, ADDR_CLOCK)
	c.HardwareInterrupt(ADDR_CLOCK)

	snap, err := c.Snapshot()
	assert.NoError(err)

	back, err := cpu.Restore(snap, cpu.DefaultConfig(), "tester", nil, nil)
	assert.NoError(err)

	device, ok := back.Hardware(ADDR_CLOCK)
	if assert.True(ok) {
		restored, ok := device.(*Clock)
		if assert.True(ok) {
			assert.Equal(42, restored.Ticks)
		}
	}
}

func TestAttachDefaults(t *testing.T) {
	assert := assert.New(t)

	c := testCpu(t)
	AttachDefaults(c, &bytes.Buffer{})

	for _, address := range []int{ADDR_CONSOLE, ADDR_RANDOM, ADDR_CLOCK} {
		_, ok := c.Hardware(address)
		assert.True(ok, "address %d", address)
	}
}

func TestAttachDefaults_KeepsOccupants(t *testing.T) {
	assert := assert.New(t)

	c := testCpu(t)
	clk := NewClock(c)
	clk.Ticks = 7
	c.AttachHardware(clk, ADDR_CLOCK)

	AttachDefaults(c, nil)

	device, ok := c.Hardware(ADDR_CLOCK)
	assert.True(ok)
	assert.Equal(cpu.Hardware(clk), device)
}
