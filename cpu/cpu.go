package cpu

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Config carries the construction parameters of a machine.
type Config struct {
	// OrgOffset is the code segment origin, where program images load
	// and where the instruction pointer starts after a reset.
	OrgOffset int

	// Timeout bounds a single Execute call in wall-clock time.
	Timeout time.Duration

	// MemorySize is the word count of the flat memory.
	MemorySize int

	// StackBottom is the initial value of SP and BP. The stack grows
	// toward lower addresses.
	StackBottom int
}

// DefaultConfig returns the stock machine parameters.
func DefaultConfig() Config {
	return Config{
		OrgOffset:   0x4000,
		Timeout:     100 * time.Millisecond,
		MemorySize:  0x10000,
		StackBottom: 0xffff,
	}
}

// InitHook runs after a machine is assembled and before it is handed to
// its owner. Returning an error vetoes construction.
type InitHook func(c *Cpu, owner string) error

// Cpu is one 16-bit machine instance. Exported fields are free to read
// between Execute calls; Execute itself is not safe for concurrent use.
type Cpu struct {
	Verbose bool

	// Ip is the instruction pointer. It always holds the address of the
	// next unread word and moves the moment a word is consumed.
	Ip int

	// CodeSegmentOffset is where Reset points Ip.
	CodeSegmentOffset int

	Memory    *Memory
	Registers *RegisterSet
	Status    *Status

	conf         Config
	owner        string
	instructions *InstructionSet
	hardware     map[int]Hardware
	registerSize int
}

// New assembles a machine for owner: default register file, zeroed
// memory, and the instruction set populated by catalog. A non-nil hook
// may veto the construction, in which case no machine is returned.
func New(conf Config, owner string, catalog Catalog, hook InitHook) (c *Cpu, err error) {
	c = &Cpu{
		CodeSegmentOffset: conf.OrgOffset,
		Memory:            NewMemory(conf.MemorySize),
		Registers:         DefaultRegisterSet(),
		Status:            &Status{},
		conf:              conf,
		owner:             owner,
		instructions:      NewInstructionSet(),
		hardware:          make(map[int]Hardware),
	}
	c.registerSize = c.Registers.Size()

	if catalog != nil {
		if err = catalog(c, c.instructions); err != nil {
			return nil, err
		}
	}

	c.Reset()

	if hook != nil {
		if err = hook(c, owner); err != nil {
			return nil, errors.Join(ErrCancelled, err)
		}
	}

	return
}

// Owner returns the name the machine was constructed for.
func (c *Cpu) Owner() string {
	return c.owner
}

// Instructions returns the machine's instruction set.
func (c *Cpu) Instructions() *InstructionSet {
	return c.instructions
}

// Reset clears the status flags, points SP and BP at the stack bottom,
// and rewinds Ip to the code segment offset. Memory and the remaining
// registers keep their contents.
func (c *Cpu) Reset() {
	c.Status.Clear()
	c.Registers.Named(REG_SP).SetValue(c.conf.StackBottom)
	c.Registers.Named(REG_BP).SetValue(c.conf.StackBottom)
	c.Ip = c.CodeSegmentOffset

	if c.Verbose {
		logrus.WithField("ip", fmt.Sprintf("0x%04x", c.Ip)).
			Debug("cpu: reset")
	}
}

// Execute runs instructions from Ip until the break flag rises, the
// configured timeout elapses, or an instruction fails. The wall clock is
// polled once every 1000 dispatches, so short overruns past the timeout
// are expected. Hitting the timeout is a normal stop, not an error; the
// machine state stays wherever the last dispatch left it.
func (c *Cpu) Execute() (err error) {
	start := time.Now()
	count := 0

	c.Status.Clear()
	c.registerSize = c.Registers.Size()

	for !c.Status.Break {
		if err = c.step(); err != nil {
			return
		}

		count++
		if count%1000 == 0 && time.Since(start) >= c.conf.Timeout {
			c.logRun("timeout", count, start)
			return nil
		}
	}

	c.logRun("break", count, start)
	return
}

// step consumes one whole instruction and dispatches it.
func (c *Cpu) step() (err error) {
	at := c.Ip

	word, err := c.nextWord()
	if err != nil {
		return
	}

	opcode, source, destination := DecodeWord(word)

	in := c.instructions.Get(opcode)
	if in == nil {
		logrus.WithFields(logrus.Fields{
			"ip":     fmt.Sprintf("0x%04x", at),
			"opcode": fmt.Sprintf("0x%02x", opcode),
		}).Error("cpu: opcode not registered")
		return nil
	}

	// A none source turns the whole instruction into a no-operand
	// dispatch, whatever the destination field says.
	if source == 0 {
		return c.dispatch(in, Operand{}, Operand{})
	}

	src, err := c.resolveField(source)
	if err != nil {
		return
	}

	// A literal cannot be written. The instruction is logged and
	// dropped; its trailing literal word is never consumed, so the
	// stream stays misaligned exactly as the encoding left it.
	if destination == IMMEDIATE_VALUE {
		logrus.WithFields(logrus.Fields{
			"ip":   fmt.Sprintf("0x%04x", at),
			"word": fmt.Sprintf("0x%04x", word),
		}).Error("cpu: literal destination, instruction dropped")
		return nil
	}

	var dst Operand
	if destination != 0 {
		if dst, err = c.resolveField(destination); err != nil {
			return
		}
	}

	return c.dispatch(in, src, dst)
}

// resolveField turns a raw operand field into a resolved operand,
// consuming trailing instruction words as the addressing mode demands.
func (c *Cpu) resolveField(field int) (op Operand, err error) {
	n := c.registerSize

	switch ClassifyField(field, n) {
	case MODE_IMMEDIATE:
		var value int
		if value, err = c.nextWord(); err != nil {
			return
		}
		op = ImmediateOperand(value)

	case MODE_ABSOLUTE:
		var address int
		if address, err = c.nextWord(); err != nil {
			return
		}
		op = MemoryOperand(c.Memory, address)

	case MODE_REGISTER:
		op = RegisterOperand(c.Registers, field)

	case MODE_INDIRECT:
		var address int
		if address, err = c.Registers.Get(field - n); err != nil {
			return
		}
		op = MemoryOperand(c.Memory, address)

	case MODE_DISPLACEMENT:
		var displacement, base int
		if displacement, err = c.nextWord(); err != nil {
			return
		}
		if base, err = c.Registers.Get(field - 2*n); err != nil {
			return
		}
		op = MemoryOperand(c.Memory, base+displacement)
	}

	return
}

// nextWord consumes the word at Ip. Ip only moves on a successful read.
func (c *Cpu) nextWord() (word int, err error) {
	if word, err = c.Memory.Get(c.Ip); err != nil {
		return
	}

	c.Ip++
	return
}

func (c *Cpu) dispatch(in Instruction, src, dst Operand) error {
	if c.Verbose {
		logrus.WithFields(logrus.Fields{
			"ip":  fmt.Sprintf("0x%04x", c.Ip),
			"src": src.String(),
			"dst": dst.String(),
		}).Debug("cpu: " + in.Mnemonic())
	}

	return in.Execute(src, dst, c.Status)
}

func (c *Cpu) logRun(event string, count int, start time.Time) {
	if !c.Verbose {
		return
	}

	elapsed := time.Since(start)

	mhz := 0.0
	if elapsed > 0 {
		mhz = float64(count) / elapsed.Seconds() / 1e6
	}

	logrus.WithFields(logrus.Fields{
		"instructions": count,
		"elapsed":      elapsed,
		"mhz":          fmt.Sprintf("%.2f", mhz),
	}).Debug("cpu: " + event)
}

// String renders the machine registers and flags for dumps.
func (c *Cpu) String() string {
	return fmt.Sprintf("ip=%04x %v\n%v", c.Ip, c.Status, c.Registers)
}
