// Package ssa runs the Gillespie stochastic simulation of one duplex: it owns
// the simulation clock and duplex state, nucleates from the vacant state,
// selects reactions in proportion to their rates, and samples exponential
// holding times.
//
// It never imports app, writers, cli, or pipeline; keep it domain-only.
package ssa
