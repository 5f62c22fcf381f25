package ssa

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"hybsim-core/duplex"
	"hybsim-core/kinetics"
	"hybsim-core/seq"
	"hybsim-core/thermo"
)

// script replays fixed draws and records which kind was consumed.
type script struct {
	floats []float64
	ints   []int
	log    []byte
}

func (s *script) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	s.log = append(s.log, 'f')
	return v
}

func (s *script) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic("scripted Intn out of range")
	}
	s.log = append(s.log, 'i')
	return v
}

func calc(t *testing.T, s string, tab *thermo.Table) *kinetics.Calculator {
	t.Helper()
	st, err := seq.Encode(s)
	require.NoError(t, err)
	return kinetics.New(st, tab, 0)
}

func TestNewRejectsBadConfig(t *testing.T) {
	c := calc(t, "ATCG", thermo.NN37)
	src := rand.New(rand.NewSource(1))
	bad := []Config{
		{},
		{Nucleation: Distinct{Lo: 0, Hi: 4}},
		{Nucleation: Distinct{Lo: 1, Hi: 5}},
		{Nucleation: Distinct{Lo: 3, Hi: 2}},
		{Nucleation: Distinct{Lo: 2, Hi: 2}},
		{Nucleation: Aligned{Lo: 1, Hi: 4}, Target: 5},
	}
	for _, cfg := range bad {
		_, err := New(c, cfg, src)
		require.Error(t, err, "%+v", cfg)
	}
	_, err := New(c, Config{Nucleation: Aligned{Lo: 2, Hi: 2}, Target: 4}, src)
	require.NoError(t, err)
}

func TestDistinctNucleationDrawOrder(t *testing.T) {
	c := calc(t, "ATCG", thermo.NN37)
	src := &script{ints: []int{0, 0, 1, 3}, floats: []float64{0.5}}
	eng, err := New(c, Config{Nucleation: Distinct{Lo: 1, Hi: 4}}, src)
	require.NoError(t, err)

	out := eng.Step()
	require.Equal(t, "iiiif", string(src.log), "equal pair redrawn, then one holding-time draw")
	require.True(t, out.Nucleated)
	require.Equal(t, duplex.Nucleate(2, 4), out.State)
	require.Equal(t, 2, out.Offset)
	require.InDelta(t, math.Ln2/(16*kinetics.DefaultKForm), out.Tau, 1e-24)
	require.Equal(t, out.Tau, eng.Clock())
}

func TestAlignedNucleation(t *testing.T) {
	c := calc(t, "ATCG", thermo.NN55)
	src := &script{ints: []int{1}, floats: []float64{0}}
	eng, err := New(c, Config{Nucleation: Aligned{Lo: 2, Hi: 3}}, src)
	require.NoError(t, err)

	out := eng.Step()
	require.Equal(t, "if", string(src.log))
	require.Equal(t, duplex.Nucleate(3, 3), out.State)
	require.Zero(t, out.Offset)
	require.Zero(t, out.Tau)
}

// u picks the event, r the waiting time: swapping them would change both.
func TestBoundStepDrawsEventThenTime(t *testing.T) {
	c := calc(t, "ATCG", thermo.NN37)
	src := &script{ints: []int{1}, floats: []float64{0, 0.999999, 0.5}}
	eng, err := New(c, Config{Nucleation: Aligned{Lo: 1, Hi: 4}}, src)
	require.NoError(t, err)
	eng.Step()

	before := eng.State()
	rates := c.Rates(before)
	clock := eng.Clock()

	out := eng.Step()
	require.Equal(t, "ifff", string(src.log))
	require.False(t, out.Nucleated)
	require.Equal(t, duplex.ExtendRight, out.Event)
	require.Equal(t, duplex.Apply(before, duplex.ExtendRight), out.State)
	require.InDelta(t, math.Ln2/rates.Total(), out.Tau, 1e-24)
	require.InDelta(t, clock+out.Tau, eng.Clock(), 1e-24)
}

func TestDissociationReported(t *testing.T) {
	c := calc(t, "ATCG", thermo.NN37)
	src := &script{ints: []int{0, 2}, floats: []float64{0.3, 0, 0.3}}
	eng, err := New(c, Config{Nucleation: Distinct{Lo: 1, Hi: 4}}, src)
	require.NoError(t, err)
	first := eng.Step()
	require.Equal(t, 2, first.Offset)

	out := eng.Step()
	require.Equal(t, duplex.UnbindLeft, out.Event)
	require.True(t, out.Dissociated)
	require.True(t, out.State.Vacant())
	require.Equal(t, 2, out.Offset, "offset survives dissociation")
}

func TestZipTargetForcesVacant(t *testing.T) {
	c := calc(t, "ACGT", thermo.NN55)
	// Nucleate at 1. The left edge stays at lMin, so extend-right is always
	// the last interval with nonzero rate and u≈1 selects it.
	src := &script{
		ints:   []int{0},
		floats: []float64{0.1, 0.999999, 0.1, 0.999999, 0.1, 0.999999, 0.1},
	}
	eng, err := New(c, Config{Nucleation: Aligned{Lo: 1, Hi: 4}, Target: 4}, src)
	require.NoError(t, err)

	eng.Step()
	for i := 0; i < 2; i++ {
		out := eng.Step()
		require.False(t, out.Zipped)
		require.Equal(t, duplex.ExtendRight, out.Event)
	}
	out := eng.Step()
	require.True(t, out.Zipped)
	require.False(t, out.Dissociated)
	require.True(t, eng.State().Vacant())
	require.Equal(t, int64(4), eng.Steps())
}

func TestZipTargetOfOneZipsOnNucleation(t *testing.T) {
	c := calc(t, "A", thermo.NN55)
	src := &script{ints: []int{0}, floats: []float64{0.2}}
	eng, err := New(c, Config{Nucleation: Aligned{Lo: 1, Hi: 1}, Target: 1}, src)
	require.NoError(t, err)
	out := eng.Step()
	require.True(t, out.Nucleated)
	require.True(t, out.Zipped)
	require.True(t, eng.State().Vacant())
}

func TestInvariantsHoldAlongTrajectory(t *testing.T) {
	for _, tc := range []struct {
		seq string
		nuc Nucleation
		tab *thermo.Table
	}{
		{"ATCGGCTAAT", Distinct{Lo: 1, Hi: 10}, thermo.NN37},
		{"AAGATGgccatcttAAAC", Aligned{Lo: 1, Hi: 18}, thermo.NN55},
		{"GCGCGC", Distinct{Lo: 1, Hi: 6}, thermo.NN55},
	} {
		c := calc(t, tc.seq, tc.tab)
		n := c.Len()
		eng, err := New(c, Config{Nucleation: tc.nuc}, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		for i := 0; i < 20000; i++ {
			out := eng.Step()
			s := eng.State()
			require.NoError(t, s.Check(n), "%s step %d", tc.seq, i)
			require.Equal(t, s.Bonds == 0, s == duplex.State{}, "vacant iff all edges are sentinel")
			require.False(t, out.Zipped)
			require.GreaterOrEqual(t, out.Tau, 0.0)
			if !s.Vacant() {
				require.Equal(t, out.Offset, s.Offset(), "registry is fixed while bound")
			}
		}
	}
}

func TestMeanHoldingTime(t *testing.T) {
	rates := kinetics.Rates{UnbindLeft: 3e8, UnbindRight: 2e8, ExtendLeft: 1e9, ExtendRight: 1e9}
	want := 1 / rates.Total()
	rng := rand.New(rand.NewSource(2024))
	const n = 200000
	sum := 0.0
	s := duplex.State{Left1: 2, Right1: 3, Left2: 2, Right2: 3, Bonds: 2}
	for i := 0; i < n; i++ {
		_, _, tau := Advance(s, rates, rng.Float64(), rng.Float64())
		require.GreaterOrEqual(t, tau, 0.0)
		sum += tau
	}
	require.InEpsilon(t, want, sum/n, 0.02)
}

func TestHoldingTimeAtZero(t *testing.T) {
	require.Zero(t, HoldingTime(1e9, 0))
	require.True(t, !math.IsInf(HoldingTime(1, math.Nextafter(1, 0)), 0))
}
