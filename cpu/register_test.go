package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister_SetValue(t *testing.T) {
	assert := assert.New(t)

	r := &Register{name: "A"}
	assert.Equal("A", r.Name())
	assert.Equal(0, r.Value())

	r.SetValue(0x1234)
	assert.Equal(0x1234, r.Value())

	r.SetValue(0x12345)
	assert.Equal(0x2345, r.Value())

	r.SetValue(-1)
	assert.Equal(0xffff, r.Value())
}

func TestDefaultRegisterSet(t *testing.T) {
	assert := assert.New(t)

	rs := DefaultRegisterSet()
	assert.Equal(8, rs.Size())

	names := []string{"A", "B", "C", "D", "X", "Y", "SP", "BP"}
	for n, name := range names {
		value, err := rs.Get(n + 1)
		assert.NoError(err)
		assert.Equal(0, value)

		slot, ok := rs.Slot(name)
		assert.True(ok)
		assert.Equal(n+1, slot)
	}
}

func TestRegisterSet_Get(t *testing.T) {
	assert := assert.New(t)

	rs := NewRegisterSet("A", "B")
	assert.NoError(rs.Set(2, 0x42))

	value, err := rs.Get(2)
	assert.NoError(err)
	assert.Equal(0x42, value)

	_, err = rs.Get(0)
	assert.ErrorIs(err, ErrRegister(0))

	_, err = rs.Get(3)
	assert.ErrorIs(err, ErrRegister(0))
}

func TestRegisterSet_Set(t *testing.T) {
	assert := assert.New(t)

	rs := NewRegisterSet("A", "B")
	assert.NoError(rs.Set(1, 0x1ffff))

	value, err := rs.Get(1)
	assert.NoError(err)
	assert.Equal(0xffff, value)

	assert.ErrorIs(rs.Set(0, 1), ErrRegister(0))
	assert.ErrorIs(rs.Set(3, 1), ErrRegister(0))
}

func TestRegisterSet_Named(t *testing.T) {
	assert := assert.New(t)

	rs := DefaultRegisterSet()

	sp := rs.Named(REG_SP)
	if assert.NotNil(sp) {
		sp.SetValue(0xfffe)
		value, err := rs.Get(7)
		assert.NoError(err)
		assert.Equal(0xfffe, value)
	}

	assert.Nil(rs.Named("Z"))
}

func TestRegisterSet_Slot(t *testing.T) {
	assert := assert.New(t)

	rs := DefaultRegisterSet()

	slot, ok := rs.Slot(REG_BP)
	assert.True(ok)
	assert.Equal(8, slot)

	_, ok = rs.Slot("Z")
	assert.False(ok)
}

func TestRegisterSet_String(t *testing.T) {
	assert := assert.New(t)

	rs := NewRegisterSet("A", "B")
	rs.Set(1, 0x12)
	rs.Set(2, 0xabcd)

	assert.Equal("A=0012 B=abcd", rs.String())
}
