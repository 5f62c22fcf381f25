// core/kinetics/rates.go
// Rate calculation for the four competing duplex-edge reactions.
//
// Binding is diffusion limited and sequence independent (KForm); unbinding
// follows detailed balance, k = KForm·exp(ΔG) with ΔG in kT from the energy
// model. Extension at an edge already at its strand boundary has rate 0.

package kinetics

import (
	"math"

	"hybsim-core/duplex"
	"hybsim-core/seq"
	"hybsim-core/thermo"
)

// DefaultKForm is the bimolecular formation rate used by the original runs.
const DefaultKForm = 1e9

// Rates holds the four reaction rates in selection order.
type Rates struct {
	UnbindLeft  float64
	UnbindRight float64
	ExtendLeft  float64
	ExtendRight float64
}

// Of returns the rate of event e.
func (r Rates) Of(e duplex.Event) float64 {
	switch e {
	case duplex.UnbindLeft:
		return r.UnbindLeft
	case duplex.UnbindRight:
		return r.UnbindRight
	case duplex.ExtendLeft:
		return r.ExtendLeft
	case duplex.ExtendRight:
		return r.ExtendRight
	default:
		return 0
	}
}

// Total is the sum of all four rates.
func (r Rates) Total() float64 {
	return r.UnbindLeft + r.UnbindRight + r.ExtendLeft + r.ExtendRight
}

// Cumulative returns the right ends of the four selection intervals on
// [0,1), normalized by Total. The last end is exactly 1.
func (r Rates) Cumulative() [duplex.NumEvents]float64 {
	var out [duplex.NumEvents]float64
	total := r.Total()
	acc := 0.0
	for e := duplex.Event(0); e < duplex.NumEvents; e++ {
		acc += r.Of(e)
		out[e] = acc / total
	}
	out[duplex.NumEvents-1] = 1
	return out
}

// Select maps u ∈ [0,1) onto exactly one event: the intervals are contiguous,
// half-open, and laid out in event order with widths proportional to the
// rates. Events with zero rate are never selected.
func (r Rates) Select(u float64) duplex.Event {
	cum := r.Cumulative()
	last := duplex.Event(-1)
	lo := 0.0
	for e := duplex.Event(0); e < duplex.NumEvents; e++ {
		if r.Of(e) <= 0 {
			continue
		}
		last = e
		if u >= lo && u < cum[e] {
			return e
		}
		lo = cum[e]
	}
	// Rounding can leave u just past the last finite end.
	return last
}

// Calculator computes rates for one pair of encoded strands.
type Calculator struct {
	strands seq.Strands
	model   thermo.Model
	kForm   float64
}

// New returns a Calculator. kForm <= 0 selects DefaultKForm.
func New(strands seq.Strands, model thermo.Model, kForm float64) *Calculator {
	if kForm <= 0 {
		kForm = DefaultKForm
	}
	return &Calculator{strands: strands, model: model, kForm: kForm}
}

// KForm returns the formation rate in use.
func (c *Calculator) KForm() float64 { return c.kForm }

// Len is the strand length.
func (c *Calculator) Len() int { return c.strands.Len() }

// NucleationRate is the collision rate over all n² alignments.
func (c *Calculator) NucleationRate() float64 {
	n := float64(c.strands.Len())
	return n * n * c.kForm
}

// Context returns the stack read at strand-1 position x and strand-2
// position y: the pairs (x, x+1) and (y, y+1). Positions past the strand end
// read as the zero Code.
func (c *Calculator) Context(x, y int) thermo.Context {
	return thermo.Context{
		Top:     c.strands.TopAt(x),
		TopNext: c.strands.TopAt(x + 1),
		Bot:     c.strands.BottomAt(y),
		BotNext: c.strands.BottomAt(y + 1),
	}
}

// UnbindRate is KForm·exp(ΔG) for the stack at (x, y).
func (c *Calculator) UnbindRate(x, y int) float64 {
	return c.kForm * math.Exp(c.model.Energy(c.Context(x, y)))
}

// Rates computes the four rates for a bound state s. It never mutates s.
func (c *Calculator) Rates(s duplex.State) Rates {
	var r Rates
	// Left stack is (Left1, Left1+1), inside the duplex; right is
	// (Right1, Right1+1), reaching one base past it. The asymmetry is intended.
	r.UnbindLeft = c.UnbindRate(s.Left1, s.Left2)
	// A single bond has one way to break.
	if s.Left1 != s.Right1 {
		r.UnbindRight = c.UnbindRate(s.Right1, s.Right2)
	}

	rMax, lMin := duplex.Bounds(s.Offset(), c.strands.Len())
	if s.Left1 != lMin {
		r.ExtendLeft = c.kForm
	}
	if s.Right1 != rMax {
		r.ExtendRight = c.kForm
	}
	return r
}
