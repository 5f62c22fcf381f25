// core/thermo/nn.go
// Nearest-neighbor free-energy lookup for the hybridization kinetics model.
// Units: dimensionless free energy in kT. Negative values stabilize a stack.
//
// A table is data: a map from a stacking Context to its energy. Tables are
// built from TOP/BOT string keys and both orientations of every entry are
// stored explicitly, so Energy never has to canonicalize at lookup time.
//
// This package has no app/output deps; the kinetics package imports it cleanly.

package thermo

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"hybsim-core/seq"
)

// Context is the local four-base neighborhood that decides an unbinding
// rate: the strand-1 pair (Top, TopNext) at positions (x, x+1) over the
// strand-2 pair (Bot, BotNext) at positions (y, y+1).
type Context struct {
	Top, TopNext seq.Code
	Bot, BotNext seq.Code
}

// Mirror returns the same stack read from the other strand.
func (c Context) Mirror() Context {
	return Context{Top: c.BotNext, TopNext: c.Bot, Bot: c.TopNext, BotNext: c.Top}
}

// Key renders c as "TOP/BOT" with lowercase stem bases, e.g. "CA/GT".
func (c Context) Key() string {
	return string([]byte{c.Top.Letter(), c.TopNext.Letter(), '/', c.Bot.Letter(), c.BotNext.Letter()})
}

// ParseContext is the inverse of Key. Off-strand positions are not
// expressible; every letter must be a base.
func ParseContext(key string) (Context, error) {
	if len(key) != 5 || key[2] != '/' {
		return Context{}, fmt.Errorf("context %q: want TOP/BOT with two bases each", key)
	}
	codes := make([]seq.Code, 0, 4)
	for _, i := range []int{0, 1, 3, 4} {
		r := rune(key[i])
		b, ok := seq.BaseOf(r)
		if !ok {
			return Context{}, fmt.Errorf("context %q: invalid base %q", key, r)
		}
		codes = append(codes, seq.Code{Base: b, Stem: unicode.IsLower(r)})
	}
	return Context{Top: codes[0], TopNext: codes[1], Bot: codes[2], BotNext: codes[3]}, nil
}

// Model is the pluggable energy lookup consumed by the rate calculator.
type Model interface {
	Energy(c Context) float64
	Name() string
	// SupportsStem reports whether the model has a stem-loop coding range.
	SupportsStem() bool
}

// Table is a Model backed by a lookup map. Unknown contexts (including any
// context touching an off-strand position or mixing stem and plain bases)
// have energy 0.
type Table struct {
	name   string
	stem   bool
	energy map[Context]float64
}

func (t *Table) Energy(c Context) float64 { return t.energy[c] }
func (t *Table) Name() string             { return t.name }
func (t *Table) SupportsStem() bool       { return t.stem }

// Len returns the number of stored contexts (both orientations counted).
func (t *Table) Len() int { return len(t.energy) }

// Contexts returns every stored context sorted by key.
func (t *Table) Contexts() []Context {
	out := make([]Context, 0, len(t.energy))
	for c := range t.energy {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// newTable merges entry groups into one table, inserting each key and its
// mirror. A key that reappears with a different value is a data bug and
// panics at init.
func newTable(name string, groups ...map[string]float64) *Table {
	t := &Table{name: name, energy: make(map[Context]float64, 128)}
	for _, g := range groups {
		for key, e := range g {
			c, err := ParseContext(key)
			if err != nil {
				panic(err)
			}
			t.put(c, e)
			t.put(c.Mirror(), e)
		}
	}
	return t
}

func (t *Table) put(c Context, e float64) {
	if prev, ok := t.energy[c]; ok && prev != e {
		panic(fmt.Sprintf("thermo %s: conflicting energies for %s: %v vs %v", t.name, c.Key(), prev, e))
	}
	if c.Top.Stem || c.TopNext.Stem || c.Bot.Stem || c.BotNext.Stem {
		t.stem = true
	}
	t.energy[c] = e
}

// repulsive turns canonical stacks into the stem-loop range: same stacks in
// lowercase, sign flipped.
func repulsive(stacks map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(stacks))
	for k, e := range stacks {
		out[strings.ToLower(k)] = -e
	}
	return out
}

var (
	// NN37 is the 37 °C table (no stem-loop range).
	NN37 = newTable("37C", stacks37, mismatches37)
	// NN55 is the 55 °C table with the repulsive stem-loop range.
	NN55 = newTable("55C", stacks55, mismatches55, repulsive(stacks55))
)

var registry = map[string]*Table{
	"37":  NN37,
	"37c": NN37,
	"55":  NN55,
	"55c": NN55,
}

// Lookup selects a table by temperature name ("37", "37C", "55", "55C").
func Lookup(name string) (*Table, error) {
	t, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown energy table %q (want one of: %s)", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names lists the canonical table names.
func Names() []string { return []string{NN37.name, NN55.name} }
