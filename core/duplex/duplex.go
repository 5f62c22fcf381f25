// Package duplex models the paired region of two collinear strands: one
// contiguous interval on each strand, shifted by a fixed registry offset.
//
// Positions are 1-based. The vacant state uses 0 for every edge.
package duplex

import "fmt"

// State is the live duplex. Left1..Right1 is the paired interval on strand 1,
// Left2..Right2 the matching interval on strand 2.
type State struct {
	Left1, Right1 int
	Left2, Right2 int
	Bonds         int
}

// Vacant reports whether no bond is formed.
func (s State) Vacant() bool { return s.Bonds == 0 }

// Offset is the registry: strand-2 position minus strand-1 position of any
// paired base.
func (s State) Offset() int { return s.Left2 - s.Left1 }

// Width is the number of paired positions implied by the edges.
func (s State) Width() int {
	if s.Vacant() {
		return 0
	}
	return s.Right1 - s.Left1 + 1
}

func (s State) String() string {
	if s.Vacant() {
		return "vacant"
	}
	return fmt.Sprintf("[%d,%d]/[%d,%d] bonds=%d offset=%d", s.Left1, s.Right1, s.Left2, s.Right2, s.Bonds, s.Offset())
}

// Nucleate returns a one-bond duplex pairing strand-1 position x with strand-2
// position y.
func Nucleate(x, y int) State {
	return State{Left1: x, Right1: x, Left2: y, Right2: y, Bonds: 1}
}

// Bounds returns the largest right edge and smallest left edge on strand 1
// that keep both strands' intervals inside [1, n] at the given offset.
func Bounds(offset, n int) (rMax, lMin int) {
	if offset >= 0 {
		return n - offset, 1
	}
	return n, 1 - offset
}

// Check validates the structural invariants of s for strands of length n.
func (s State) Check(n int) error {
	if s.Bonds == 0 {
		if s.Left1 != 0 || s.Right1 != 0 || s.Left2 != 0 || s.Right2 != 0 {
			return fmt.Errorf("duplex: zero bonds but edges set: %+v", s)
		}
		return nil
	}
	if s.Bonds < 0 {
		return fmt.Errorf("duplex: negative bond count %d", s.Bonds)
	}
	if s.Left1 > s.Right1 || s.Left2 > s.Right2 {
		return fmt.Errorf("duplex: inverted interval %s", s)
	}
	if s.Right1-s.Left1 != s.Right2-s.Left2 {
		return fmt.Errorf("duplex: unequal intervals %s", s)
	}
	if s.Bonds != s.Right1-s.Left1+1 {
		return fmt.Errorf("duplex: bond count does not match interval %s", s)
	}
	rMax, lMin := Bounds(s.Offset(), n)
	if s.Left1 < lMin || s.Right1 > rMax {
		return fmt.Errorf("duplex: %s outside [%d,%d] for n=%d", s, lMin, rMax, n)
	}
	return nil
}

// Event is one of the four competing reactions, in selection order.
type Event int

const (
	UnbindLeft Event = iota
	UnbindRight
	ExtendLeft
	ExtendRight
)

// NumEvents is the number of distinct events.
const NumEvents = 4

var eventNames = [NumEvents]string{"unbind-left", "unbind-right", "extend-left", "extend-right"}

func (e Event) String() string {
	if e < 0 || int(e) >= NumEvents {
		return fmt.Sprintf("event(%d)", int(e))
	}
	return eventNames[e]
}

// Apply returns the state after e fires. Unbinding the last bond yields the
// vacant state. Apply does not check boundaries; the rate calculator never
// gives an out-of-bounds event a nonzero rate.
func Apply(s State, e Event) State {
	switch e {
	case UnbindLeft:
		s.Left1++
		s.Left2++
		s.Bonds--
	case UnbindRight:
		s.Right1--
		s.Right2--
		s.Bonds--
	case ExtendLeft:
		s.Left1--
		s.Left2--
		s.Bonds++
	case ExtendRight:
		s.Right1++
		s.Right2++
		s.Bonds++
	}
	if s.Bonds <= 0 {
		return State{}
	}
	return s
}
