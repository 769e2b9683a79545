package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Clear(t *testing.T) {
	assert := assert.New(t)

	st := &Status{Break: true, Zero: true, Sign: true, Carry: true, Overflow: true, Fault: true}
	st.Clear()
	assert.Equal(Status{}, *st)
}

func TestStatus_String(t *testing.T) {
	assert := assert.New(t)

	st := &Status{}
	assert.Equal("flags: none", st.String())

	st.Zero = true
	st.Sign = true
	assert.Equal("flags: zero sign", st.String())

	st.Clear()
	st.Break = true
	st.Fault = true
	assert.Equal("flags: break fault", st.String())
}
