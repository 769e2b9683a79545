package hw

import (
	"io"

	"github.com/sirupsen/logrus"

	"botvm/cpu"
)

// Console is a write-only character device. An interrupt emits the low
// byte of the data register to the output. The console carries no state
// worth snapshotting; a restored machine gets a fresh one.
type Console struct {
	c      *cpu.Cpu
	output io.Writer
}

var _ cpu.Hardware = (*Console)(nil)

// NewConsole builds a console writing to output, or to io.Discard when
// output is nil.
func NewConsole(c *cpu.Cpu, output io.Writer) *Console {
	if output == nil {
		output = io.Discard
	}

	return &Console{c: c, output: output}
}

func (con *Console) HandleInterrupt(st *cpu.Status) {
	r := data(con.c)
	if r == nil {
		return
	}

	if _, err := con.output.Write([]byte{byte(r.Value())}); err != nil {
		logrus.WithField("error", err).Error("hw: console write failed")
	}
}
