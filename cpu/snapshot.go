package cpu

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"maps"
	"slices"

	"github.com/sirupsen/logrus"
)

// Snapshot is the serializable state of a parked machine: memory, the
// register file, the code segment offset, and any stateful hardware.
// The instruction pointer and status flags are not part of it; a
// restored machine is positioned with Reset before its next run.
type Snapshot struct {
	Memory            *MemorySnapshot      `json:"memory"`
	RegisterSet       *RegisterSetSnapshot `json:"registerSet"`
	CodeSegmentOffset int                  `json:"codeSegmentOffset"`
	Hardware          []HardwareSnapshot   `json:"hardware,omitempty"`
}

// MemorySnapshot holds a memory image as base64 over a zlib stream of
// little-endian words.
type MemorySnapshot struct {
	Size int    `json:"size"`
	Zlib string `json:"zlib"`
}

// RegisterSetSnapshot holds the register file in slot order.
type RegisterSetSnapshot struct {
	Registers []RegisterSnapshot `json:"registers"`
}

// RegisterSnapshot is one named register value.
type RegisterSnapshot struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// HardwareSnapshot records one stateful device: where it was attached,
// the factory name that rebuilds it, and its own state document.
type HardwareSnapshot struct {
	Address int             `json:"address"`
	Type    string          `json:"type"`
	State   json.RawMessage `json:"state,omitempty"`
}

// Snapshot captures the memory contents.
func (m *Memory) Snapshot() (snap *MemorySnapshot, err error) {
	var buf bytes.Buffer

	w := zlib.NewWriter(&buf)
	if err = binary.Write(w, binary.LittleEndian, m.words); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	snap = &MemorySnapshot{
		Size: m.Size(),
		Zlib: base64.StdEncoding.EncodeToString(buf.Bytes()),
	}
	return
}

// MemoryFromSnapshot rebuilds a memory from its snapshot. The decoded
// stream must hold exactly Size words.
func MemoryFromSnapshot(snap *MemorySnapshot) (m *Memory, err error) {
	raw, err := base64.StdEncoding.DecodeString(snap.Zlib)
	if err != nil {
		return nil, err
	}

	r, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	m = NewMemory(snap.Size)
	if err = binary.Read(r, binary.LittleEndian, m.words); err != nil {
		return nil, errors.Join(ErrSnapshotMemory, err)
	}

	var extra [1]byte
	if n, _ := r.Read(extra[:]); n != 0 {
		return nil, ErrSnapshotMemory
	}

	return
}

// Snapshot captures the register file.
func (rs *RegisterSet) Snapshot() *RegisterSetSnapshot {
	snap := &RegisterSetSnapshot{
		Registers: make([]RegisterSnapshot, 0, rs.Size()),
	}

	for _, r := range rs.registers {
		snap.Registers = append(snap.Registers, RegisterSnapshot{
			Name:  r.Name(),
			Value: r.Value(),
		})
	}

	return snap
}

// RegisterSetFromSnapshot rebuilds a register file from its snapshot,
// keeping slot order.
func RegisterSetFromSnapshot(snap *RegisterSetSnapshot) *RegisterSet {
	names := make([]string, 0, len(snap.Registers))
	for _, r := range snap.Registers {
		names = append(names, r.Name)
	}

	rs := NewRegisterSet(names...)
	for slot, r := range snap.Registers {
		rs.registers[slot].SetValue(r.Value)
	}

	return rs
}

// Snapshot captures the machine state. Hardware entries appear in
// address order and cover stateful devices only; anything else attached
// is considered rebuildable from scratch and left out.
func (c *Cpu) Snapshot() (snap *Snapshot, err error) {
	memory, err := c.Memory.Snapshot()
	if err != nil {
		return nil, err
	}

	snap = &Snapshot{
		Memory:            memory,
		RegisterSet:       c.Registers.Snapshot(),
		CodeSegmentOffset: c.CodeSegmentOffset,
	}

	for _, address := range slices.Sorted(maps.Keys(c.hardware)) {
		st, ok := c.hardware[address].(Stateful)
		if !ok {
			continue
		}

		var state []byte
		if state, err = st.SaveState(); err != nil {
			return nil, err
		}

		snap.Hardware = append(snap.Hardware, HardwareSnapshot{
			Address: address,
			Type:    st.HardwareType(),
			State:   state,
		})
	}

	return
}

// Restore builds a fresh machine from snap. Construction runs exactly as
// in New, hook veto included, then the snapshot is layered on: code
// segment offset first, stateful hardware rebuilt through the factory
// registry, and the memory and register file swapped in last so devices
// never see a half-restored store. Hardware entries with no registered
// factory are logged and skipped.
func Restore(snap *Snapshot, conf Config, owner string, catalog Catalog, hook InitHook) (c *Cpu, err error) {
	if c, err = New(conf, owner, catalog, hook); err != nil {
		return
	}

	c.CodeSegmentOffset = snap.CodeSegmentOffset

	for _, entry := range snap.Hardware {
		factory, ok := hardwareRegistry[entry.Type]
		if !ok {
			logrus.WithFields(logrus.Fields{
				"type":    entry.Type,
				"address": entry.Address,
			}).Warn("cpu: unknown hardware type, skipped")
			continue
		}

		device := factory(c)
		if st, ok := device.(Stateful); ok && len(entry.State) > 0 {
			if err = st.LoadState(entry.State); err != nil {
				return nil, err
			}
		}

		c.AttachHardware(device, entry.Address)
	}

	memory, err := MemoryFromSnapshot(snap.Memory)
	if err != nil {
		return nil, err
	}

	c.Memory = memory
	c.Registers = RegisterSetFromSnapshot(snap.RegisterSet)
	c.registerSize = c.Registers.Size()

	return
}
