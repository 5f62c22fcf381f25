package ssa

import (
	"errors"
	"fmt"
	"math"

	"hybsim-core/duplex"
	"hybsim-core/kinetics"
)

// Source is the random stream an Engine draws from. *rand.Rand satisfies it.
// Float64 must return values in [0,1).
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Nucleation chooses the anchor pair for a new duplex.
type Nucleation interface {
	Anchors(src Source) (x, y int)
	// Range is the inclusive interval anchors are drawn from.
	Range() (lo, hi int)
}

// Distinct draws two independent anchors and redraws the pair until they
// differ. Draw order: x, y (repeated until x != y).
type Distinct struct{ Lo, Hi int }

func (d Distinct) Anchors(src Source) (int, int) {
	for {
		x := uniform(src, d.Lo, d.Hi)
		y := uniform(src, d.Lo, d.Hi)
		if x != y {
			return x, y
		}
	}
}

func (d Distinct) Range() (int, int) { return d.Lo, d.Hi }

// Aligned draws one anchor and uses it on both strands (offset 0).
type Aligned struct{ Lo, Hi int }

func (a Aligned) Anchors(src Source) (int, int) {
	x := uniform(src, a.Lo, a.Hi)
	return x, x
}

func (a Aligned) Range() (int, int) { return a.Lo, a.Hi }

func uniform(src Source, lo, hi int) int { return lo + src.Intn(hi-lo+1) }

// Config selects the engine's nucleation rule and optional zipping target.
type Config struct {
	Nucleation Nucleation
	// Target > 0 ends a duplex as soon as it holds Target bonds.
	Target int
}

// Outcome describes one engine step.
type Outcome struct {
	Nucleated bool
	// Event is meaningful only when Nucleated is false.
	Event duplex.Event
	Tau   float64
	// Offset is the registry of the duplex this step acted on. It stays
	// valid after the duplex dissociates or zips.
	Offset      int
	Dissociated bool
	Zipped      bool
	State       duplex.State
}

// Engine owns one duplex, its clock, and its random stream. It is not safe
// for concurrent use; run one Engine per goroutine.
type Engine struct {
	calc   *kinetics.Calculator
	nuc    Nucleation
	target int
	src    Source

	state duplex.State
	clock float64
	steps int64
}

// New validates cfg against the calculator's strand length.
func New(calc *kinetics.Calculator, cfg Config, src Source) (*Engine, error) {
	if calc == nil || src == nil {
		return nil, errors.New("ssa: calculator and source are required")
	}
	if cfg.Nucleation == nil {
		return nil, errors.New("ssa: nucleation rule is required")
	}
	n := calc.Len()
	if n == 0 {
		return nil, errors.New("ssa: empty strands")
	}
	lo, hi := cfg.Nucleation.Range()
	if lo < 1 || hi > n || lo > hi {
		return nil, fmt.Errorf("ssa: nucleation range [%d,%d] outside [1,%d]", lo, hi, n)
	}
	if _, ok := cfg.Nucleation.(Distinct); ok && lo == hi {
		return nil, fmt.Errorf("ssa: distinct nucleation needs at least two positions, got [%d,%d]", lo, hi)
	}
	if cfg.Target < 0 || cfg.Target > n {
		return nil, fmt.Errorf("ssa: target %d outside [0,%d]", cfg.Target, n)
	}
	return &Engine{calc: calc, nuc: cfg.Nucleation, target: cfg.Target, src: src}, nil
}

func (e *Engine) State() duplex.State { return e.state }
func (e *Engine) Clock() float64      { return e.clock }
func (e *Engine) Steps() int64        { return e.steps }
func (e *Engine) Len() int            { return e.calc.Len() }

// ResetClock zeroes the simulation clock without touching the duplex.
func (e *Engine) ResetClock() { e.clock = 0 }

// Step performs one transition: nucleation from the vacant state, otherwise
// one reaction chosen in proportion to its rate.
//
// Draw order per step is fixed: nucleation consumes the anchor draws then
// one holding-time draw; a bound step consumes u (event) then r (holding
// time).
func (e *Engine) Step() Outcome {
	var out Outcome
	if e.state.Vacant() {
		x, y := e.nuc.Anchors(e.src)
		e.state = duplex.Nucleate(x, y)
		out.Nucleated = true
		out.Tau = HoldingTime(e.calc.NucleationRate(), e.src.Float64())
	} else {
		u := e.src.Float64()
		r := e.src.Float64()
		out.Offset = e.state.Offset()
		e.state, out.Event, out.Tau = Advance(e.state, e.calc.Rates(e.state), u, r)
		out.Dissociated = e.state.Vacant()
	}
	if out.Nucleated {
		out.Offset = e.state.Offset()
	}
	if e.target > 0 && e.state.Bonds == e.target {
		out.Zipped = true
		e.state = duplex.State{}
	}
	e.clock += out.Tau
	e.steps++
	out.State = e.state
	return out
}

// Advance is the pure bound-state transition: u selects the event and r
// samples the exponential waiting time with rate rates.Total().
func Advance(s duplex.State, rates kinetics.Rates, u, r float64) (duplex.State, duplex.Event, float64) {
	ev := rates.Select(u)
	return duplex.Apply(s, ev), ev, HoldingTime(rates.Total(), r)
}

// HoldingTime samples Exp(k) by inversion: −ln(1−r)/k. With r drawn from
// [0,1) the logarithm is always finite, so no guard is needed.
func HoldingTime(k, r float64) float64 {
	return -math.Log1p(-r) / k
}
