/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import "fmt"

// RenderParameter is a key for a rendering register.
type RenderParameter int

const (
	none RenderParameter = iota
	P_BASEDIR
	P_DEPTH
	P_MAXDEPTH
	P_NEWTAB
	P_LAZYIMAGES
	P_STOPPER
)

func (p RenderParameter) String() string {
	switch p {
	case P_BASEDIR:
		return "P_BASEDIR"
	case P_DEPTH:
		return "P_DEPTH"
	case P_MAXDEPTH:
		return "P_MAXDEPTH"
	case P_NEWTAB:
		return "P_NEWTAB"
	case P_LAZYIMAGES:
		return "P_LAZYIMAGES"
	}
	return fmt.Sprintf("RenderParameter(%d)", int(p))
}

// ParameterGroup holds the values pushed within one group level.
type ParameterGroup struct {
	params map[RenderParameter]interface{}
	level  int
	next   *ParameterGroup
}

// RenderRegisters is a set of rendering parameters with TeX-like grouping:
// values pushed inside a group are forgotten at the end of the group.
//
// Registers are not safe for concurrent use; every rendering call owns
// its own set.
type RenderRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

// NewRenderRegisters creates registers initialized to default values.
func NewRenderRegisters() *RenderRegisters {
	regs := &RenderRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_BASEDIR] = ""      // a string
	p[P_DEPTH] = 0         // current nesting of sub-documents (int)
	p[P_MAXDEPTH] = 16     // limit for nested sub-documents (int)
	p[P_NEWTAB] = true     // external links open in a new tab (bool)
	p[P_LAZYIMAGES] = true // images are loaded lazily (bool)
}

// Begingroup opens a new group level.
func (regs *RenderRegisters) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes the innermost group, dropping every value pushed within it.
func (regs *RenderRegisters) Endgroup() {
	if regs.grouplevel == 0 {
		return
	}
	if regs.groups != nil && regs.groups.level == regs.grouplevel {
		regs.groups = regs.groups.next
	}
	regs.grouplevel--
}

// Level returns the current group level (0 = outermost).
func (regs *RenderRegisters) Level() int {
	return regs.grouplevel
}

// Push sets a parameter value for the current group.
func (regs *RenderRegisters) Push(key RenderParameter, value interface{}) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of render parameters")
	}
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[RenderParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

// Get returns the innermost value of a parameter.
func (regs *RenderRegisters) Get(key RenderParameter) interface{} {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of render parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

// S returns a string parameter.
func (regs *RenderRegisters) S(key RenderParameter) string {
	return regs.Get(key).(string)
}

// N returns an integer parameter.
func (regs *RenderRegisters) N(key RenderParameter) int {
	return regs.Get(key).(int)
}

// B returns a boolean parameter.
func (regs *RenderRegisters) B(key RenderParameter) bool {
	return regs.Get(key).(bool)
}
