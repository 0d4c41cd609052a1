package parameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterDefaults(t *testing.T) {
	regs := NewRenderRegisters()
	assert.Equal(t, 16, regs.N(P_MAXDEPTH))
	assert.Equal(t, 0, regs.N(P_DEPTH))
	assert.True(t, regs.B(P_NEWTAB))
	assert.Equal(t, "", regs.S(P_BASEDIR))
}

func TestRegisterGroups(t *testing.T) {
	regs := NewRenderRegisters()
	regs.Push(P_BASEDIR, "/posts")
	regs.Begingroup()
	regs.Push(P_DEPTH, 1)
	assert.Equal(t, 1, regs.N(P_DEPTH))
	assert.Equal(t, "/posts", regs.S(P_BASEDIR), "outer value should shine through")
	regs.Begingroup() // nothing pushed at this level
	assert.Equal(t, 1, regs.N(P_DEPTH))
	regs.Endgroup()
	assert.Equal(t, 1, regs.Level())
	regs.Endgroup()
	assert.Equal(t, 0, regs.N(P_DEPTH))
	assert.Equal(t, 0, regs.Level())
	regs.Endgroup() // unbalanced end is ignored
	assert.Equal(t, 0, regs.Level())
}

func TestRegisterKeyRange(t *testing.T) {
	regs := NewRenderRegisters()
	assert.Panics(t, func() { regs.Get(P_STOPPER) })
	assert.Equal(t, "P_MAXDEPTH", P_MAXDEPTH.String())
}
