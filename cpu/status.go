package cpu

// Status is the CPU flag register. Instruction behaviors consult and
// mutate the arithmetic flags; the execution loop itself acts only on
// Break.
type Status struct {
	Break    bool // Terminates the execution loop when set.
	Zero     bool
	Sign     bool
	Carry    bool
	Overflow bool
	Fault    bool // Set by behaviors on unrecoverable instruction faults.
}

// Clear resets every flag.
func (st *Status) Clear() {
	*st = Status{}
}

// String lists the asserted flags.
func (st *Status) String() (text string) {
	flags := []struct {
		name string
		set  bool
	}{
		{"break", st.Break},
		{"zero", st.Zero},
		{"sign", st.Sign},
		{"carry", st.Carry},
		{"overflow", st.Overflow},
		{"fault", st.Fault},
	}

	text = "flags:"
	for _, flag := range flags {
		if flag.set {
			text += " " + flag.name
		}
	}
	if text == "flags:" {
		text += " none"
	}

	return
}
