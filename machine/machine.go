// Package machine assembles a ready-to-run virtual machine: a Cpu wired
// with the default instruction catalogue and the stock peripherals, plus
// file helpers for program images and snapshots.
package machine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"botvm/cpu"
	"botvm/hw"
	"botvm/instr"
)

// Machine is a fully wired processor.
type Machine struct {
	Verbose  bool // If set, enables verbose machine logging.
	*cpu.Cpu      // Reference to the wired processor.
}

// New builds a machine for owner with the default catalogue and the
// stock peripherals attached. Bytes the program writes to the console
// device go to output.
func New(conf cpu.Config, owner string, output io.Writer, hook cpu.InitHook) (m *Machine, err error) {
	c, err := cpu.New(conf, owner, instr.Catalog, hook)
	if err != nil {
		return
	}

	hw.AttachDefaults(c, output)

	m = &Machine{Cpu: c}

	return
}

// LoadProgram reads a little-endian word image from r into memory at
// the code segment offset. It returns the number of words loaded.
func (m *Machine) LoadProgram(r io.Reader) (n int, err error) {
	n, err = m.Memory.LoadImage(r, m.CodeSegmentOffset)
	if err != nil {
		err = errors.Join(ErrProgram, err)
		return
	}

	if m.Verbose {
		logrus.WithFields(logrus.Fields{
			"words":  n,
			"offset": fmt.Sprintf("0x%04x", m.CodeSegmentOffset),
		}).Debug("machine: program loaded")
	}

	return
}

// LoadProgramFile loads the word image stored at path.
func (m *Machine) LoadProgramFile(path string) (n int, err error) {
	file, err := os.Open(path)
	if err != nil {
		err = errors.Join(ErrProgram, err)
		return
	}
	defer file.Close()

	n, err = m.LoadProgram(file)

	return
}

// Run resets the machine and executes the loaded program from the code
// segment until it breaks or its time budget runs out.
func (m *Machine) Run() (err error) {
	m.Cpu.Verbose = m.Verbose

	m.Reset()

	return m.Execute()
}

// SaveSnapshot writes the machine state to path as indented JSON.
func (m *Machine) SaveSnapshot(path string) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrSnapshot, err)
		}
	}()

	snap, err := m.Snapshot()
	if err != nil {
		return
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return
	}

	err = os.WriteFile(path, data, 0o644)

	return
}

// RestoreSnapshot rebuilds a machine from a snapshot file. Stateful
// peripherals come back from the snapshot; the rest of the stock set is
// attached fresh. The restored machine is parked, so the next Run
// starts it from the code segment with its memory and registers intact.
func RestoreSnapshot(path string, conf cpu.Config, owner string, output io.Writer, hook cpu.InitHook) (m *Machine, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrSnapshot, err)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	snap := &cpu.Snapshot{}
	err = json.Unmarshal(data, snap)
	if err != nil {
		return
	}

	c, err := cpu.Restore(snap, conf, owner, instr.Catalog, hook)
	if err != nil {
		return
	}

	hw.AttachDefaults(c, output)

	m = &Machine{Cpu: c}

	return
}
