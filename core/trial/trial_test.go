package trial

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"hybsim-core/kinetics"
	"hybsim-core/seq"
	"hybsim-core/ssa"
	"hybsim-core/thermo"
)

type TrialSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *TrialSuite) SetupTest() { s.ctx = context.Background() }

func (s *TrialSuite) engine(sequence string, tab *thermo.Table, cfg ssa.Config, seed int64) *ssa.Engine {
	st, err := seq.Encode(sequence)
	require.NoError(s.T(), err)
	eng, err := ssa.New(kinetics.New(st, tab, 0), cfg, rand.New(rand.NewSource(seed)))
	require.NoError(s.T(), err)
	return eng
}

func (s *TrialSuite) collect(c *Controller) ([]Record, Summary, error) {
	var recs []Record
	sum, err := c.Run(s.ctx, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	return recs, sum, err
}

// ATCG, stop=1: exactly one record, offset within ±3, positive time.
func (s *TrialSuite) TestRegistrySingle() {
	eng := s.engine("ATCG", thermo.NN37, ssa.Config{Nucleation: ssa.Distinct{Lo: 1, Hi: 4}}, 1)
	c, err := New(eng, Config{Policy: Registry, Stop: 1})
	require.NoError(s.T(), err)

	recs, sum, err := s.collect(c)
	require.NoError(s.T(), err)
	require.Len(s.T(), recs, 1)
	require.Equal(s.T(), 1, sum.Successes)
	r := recs[0]
	require.Equal(s.T(), 1, r.Trial)
	require.GreaterOrEqual(s.T(), r.Offset, -3)
	require.LessOrEqual(s.T(), r.Offset, 3)
	require.NotZero(s.T(), r.Offset, "distinct anchors never give offset 0")
	require.Greater(s.T(), r.Time, 0.0)
	require.Equal(s.T(), 1, r.Attempts)
	require.Zero(s.T(), eng.Clock(), "clock restarts after a success")
}

func (s *TrialSuite) TestRegistryManyOffsetsInRange() {
	eng := s.engine("ATCGGCTA", thermo.NN37, ssa.Config{Nucleation: ssa.Distinct{Lo: 1, Hi: 8}}, 9)
	c, err := New(eng, Config{Policy: Registry, Stop: 200})
	require.NoError(s.T(), err)

	recs, sum, err := s.collect(c)
	require.NoError(s.T(), err)
	require.Len(s.T(), recs, 200)
	require.Equal(s.T(), 200, sum.Successes)
	for i, r := range recs {
		require.Equal(s.T(), i+1, r.Trial)
		require.True(s.T(), r.Offset >= -7 && r.Offset <= 7 && r.Offset != 0, "offset %d", r.Offset)
		require.Greater(s.T(), r.Time, 0.0)
		require.GreaterOrEqual(s.T(), r.Steps, int64(2))
	}
}

// Every zipping success must line up with an engine Zipped outcome, never a
// plain return to zero.
func (s *TrialSuite) TestZippingCountsOnlyTarget() {
	const seed = 5
	cfg := ssa.Config{Nucleation: ssa.Aligned{Lo: 2, Hi: 2}, Target: 4}
	c, err := New(s.engine("ACGT", thermo.NN55, cfg, seed), Config{Policy: Zipping, Stop: 25})
	require.NoError(s.T(), err)
	recs, sum, err := s.collect(c)
	require.NoError(s.T(), err)
	require.Len(s.T(), recs, 25)
	require.Equal(s.T(), 25, sum.Successes)

	// Replay the same stream by hand.
	ref := s.engine("ACGT", thermo.NN55, cfg, seed)
	zipped, failed := 0, 0
	var steps int64
	for zipped < 25 {
		out := ref.Step()
		steps++
		if out.Dissociated {
			failed++
			require.Less(s.T(), ref.State().Bonds, 4)
			ref.ResetClock()
		}
		if out.Zipped {
			zipped++
			rec := recs[zipped-1]
			require.Equal(s.T(), zipped, rec.Trial)
			require.Equal(s.T(), steps, rec.Steps)
			require.InDelta(s.T(), ref.Clock(), rec.Time, 1e-18)
			require.Zero(s.T(), rec.Offset)
			require.GreaterOrEqual(s.T(), rec.Attempts, 1)
			ref.ResetClock()
			steps = 0
		}
	}
	require.Equal(s.T(), sum.Steps, ref.Steps())
	s.T().Logf("zipping: %d successes, %d failed attempts", zipped, failed)
}

// Same random stream, so KeepClock only changes when the clock restarts.
func (s *TrialSuite) TestKeepClockAccumulatesFailedAttempts() {
	cfg := ssa.Config{Nucleation: ssa.Aligned{Lo: 1, Hi: 6}, Target: 6}
	run := func(keep bool) []Record {
		c, err := New(s.engine("AAgcTT", thermo.NN55, cfg, 11), Config{Policy: Zipping, Stop: 30, KeepClock: keep})
		require.NoError(s.T(), err)
		recs, _, err := s.collect(c)
		require.NoError(s.T(), err)
		return recs
	}
	fresh, kept := run(false), run(true)
	require.Len(s.T(), kept, len(fresh))
	for i := range fresh {
		require.Equal(s.T(), fresh[i].Steps, kept[i].Steps)
		require.Equal(s.T(), fresh[i].Attempts, kept[i].Attempts)
		require.GreaterOrEqual(s.T(), kept[i].Time, fresh[i].Time)
		if kept[i].Attempts == 1 {
			require.InDelta(s.T(), fresh[i].Time, kept[i].Time, 1e-18)
		}
	}
}

func (s *TrialSuite) TestHorizonGuard() {
	eng := s.engine("ATCG", thermo.NN37, ssa.Config{Nucleation: ssa.Distinct{Lo: 1, Hi: 4}}, 3)
	c, err := New(eng, Config{Policy: Registry, Stop: 10, Horizon: 1e-30})
	require.NoError(s.T(), err)
	recs, sum, err := s.collect(c)
	require.ErrorIs(s.T(), err, ErrHorizon)
	require.Empty(s.T(), recs)
	require.Equal(s.T(), int64(1), sum.Steps)
	require.Greater(s.T(), sum.Clock, 1e-30)
}

// Failed attempts restart the reported clock but still count toward the
// horizon, so a strand that almost never zips stops with ErrHorizon.
func (s *TrialSuite) TestZippingHorizonSpansFailedAttempts() {
	cfg := ssa.Config{Nucleation: ssa.Aligned{Lo: 1, Hi: 16}, Target: 16}
	run := func(keep bool) (Summary, error) {
		eng := s.engine("gcgcgcgcgcgcgcgc", thermo.NN55, cfg, 21)
		c, err := New(eng, Config{Policy: Zipping, Stop: 1, Horizon: 1e-6, KeepClock: keep})
		require.NoError(s.T(), err)
		ctx, cancel := context.WithTimeout(s.ctx, 20*time.Second)
		defer cancel()
		return c.Run(ctx, func(Record) error { return nil })
	}
	fresh, err := run(false)
	require.ErrorIs(s.T(), err, ErrHorizon)
	require.GreaterOrEqual(s.T(), fresh.Clock, 1e-6)

	kept, err := run(true)
	require.ErrorIs(s.T(), err, ErrHorizon)
	require.Equal(s.T(), kept.Steps, fresh.Steps, "same stream, same stopping step")
	require.Equal(s.T(), kept.Successes, fresh.Successes)
	require.InDelta(s.T(), kept.Clock, fresh.Clock, 1e-18)
}

func (s *TrialSuite) TestCancellation() {
	eng := s.engine("ATCGATCG", thermo.NN37, ssa.Config{Nucleation: ssa.Distinct{Lo: 1, Hi: 8}}, 4)
	c, err := New(eng, Config{Policy: Registry})
	require.NoError(s.T(), err)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	sum, err := c.Run(ctx, func(Record) error { return nil })
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Equal(s.T(), int64(ctxCheckEvery), sum.Steps)
}

func (s *TrialSuite) TestEmitErrorStops() {
	eng := s.engine("ATCG", thermo.NN37, ssa.Config{Nucleation: ssa.Distinct{Lo: 1, Hi: 4}}, 8)
	c, err := New(eng, Config{Policy: Registry, Stop: 5})
	require.NoError(s.T(), err)
	boom := errors.New("boom")
	sum, err := c.Run(s.ctx, func(Record) error { return boom })
	require.ErrorIs(s.T(), err, boom)
	require.Equal(s.T(), 1, sum.Successes)
}

func (s *TrialSuite) TestNewDefaults() {
	eng := s.engine("ATCG", thermo.NN37, ssa.Config{Nucleation: ssa.Distinct{Lo: 1, Hi: 4}}, 1)
	c, err := New(eng, Config{Policy: Zipping})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1e7, c.Config().Horizon)

	c, err = New(eng, Config{Policy: Registry})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1e6, c.Config().Horizon)

	_, err = New(eng, Config{Stop: -1})
	require.Error(s.T(), err)
	_, err = New(nil, Config{})
	require.Error(s.T(), err)

	require.Equal(s.T(), "registry", Registry.String())
	require.Equal(s.T(), "zipping", Zipping.String())
}

func TestTrialSuite(t *testing.T) {
	suite.Run(t, new(TrialSuite))
}
