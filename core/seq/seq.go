// core/seq/seq.go
// Sequence encoding for the two-strand hybridization model.
//
// Strand 1 carries the input bases as written; strand 2 carries their
// complements at the same indices. Uppercase ACGT are ordinary bases,
// lowercase acgt mark a stem-loop region whose intermolecular stacks are
// penalized instead of rewarded.

package seq

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrEmpty is returned by Encode for an empty (or all-whitespace) sequence.
var ErrEmpty = errors.New("empty sequence")

// Base is one of the four canonical nucleotides. The zero value means
// "no base" and never appears inside a strand.
type Base uint8

const (
	None Base = iota
	A
	T
	C
	G
)

// Complement returns the Watson–Crick partner of b.
func (b Base) Complement() Base {
	switch b {
	case A:
		return T
	case T:
		return A
	case C:
		return G
	case G:
		return C
	default:
		return None
	}
}

// Letter returns the uppercase letter for b, or '-' for None.
func (b Base) Letter() byte {
	switch b {
	case A:
		return 'A'
	case T:
		return 'T'
	case C:
		return 'C'
	case G:
		return 'G'
	default:
		return '-'
	}
}

func (b Base) String() string { return string(b.Letter()) }

// BaseOf maps a letter (either case) to its Base.
func BaseOf(r rune) (Base, bool) {
	switch unicode.ToUpper(r) {
	case 'A':
		return A, true
	case 'T':
		return T, true
	case 'C':
		return C, true
	case 'G':
		return G, true
	default:
		return None, false
	}
}

// Code is a base together with its pairing role. The zero Code stands for a
// position off either end of a strand.
type Code struct {
	Base Base
	Stem bool
}

// Valid reports whether c refers to a real base.
func (c Code) Valid() bool { return c.Base != None }

// Complement keeps the stem flag and complements the base.
func (c Code) Complement() Code { return Code{Base: c.Base.Complement(), Stem: c.Stem} }

// Letter renders c the way it is written in input: lowercase for stem bases.
func (c Code) Letter() byte {
	l := c.Base.Letter()
	if c.Stem && c.Valid() {
		return byte(unicode.ToLower(rune(l)))
	}
	return l
}

// Strands holds both encoded strands of one input sequence.
type Strands struct {
	Top    []Code // strand 1, as written
	Bottom []Code // strand 2, complement of Top at each index
}

// Len is the strand length n; valid positions are 1..n.
func (s Strands) Len() int { return len(s.Top) }

// TopAt returns the strand-1 code at 1-based position i, or the zero Code
// when i is outside [1, n].
func (s Strands) TopAt(i int) Code {
	if i < 1 || i > len(s.Top) {
		return Code{}
	}
	return s.Top[i-1]
}

// BottomAt is TopAt for strand 2.
func (s Strands) BottomAt(i int) Code {
	if i < 1 || i > len(s.Bottom) {
		return Code{}
	}
	return s.Bottom[i-1]
}

// HasStem reports whether any position belongs to a stem-loop region.
func (s Strands) HasStem() bool {
	for _, c := range s.Top {
		if c.Stem {
			return true
		}
	}
	return false
}

// String renders strand 1 back to its input form.
func (s Strands) String() string {
	out := make([]byte, len(s.Top))
	for i, c := range s.Top {
		out[i] = c.Letter()
	}
	return string(out)
}

// Encode validates raw and returns both strands. Whitespace is ignored; any
// other character outside ACGTacgt is rejected with its 1-based position.
func Encode(raw string) (Strands, error) {
	var st Strands
	pos := 0
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		pos++
		b, ok := BaseOf(r)
		if !ok {
			return Strands{}, fmt.Errorf("invalid base %q at %d; allowed: A C G T (lowercase marks a stem-loop)", r, pos)
		}
		c := Code{Base: b, Stem: unicode.IsLower(r)}
		st.Top = append(st.Top, c)
		st.Bottom = append(st.Bottom, c.Complement())
	}
	if len(st.Top) == 0 {
		return Strands{}, ErrEmpty
	}
	return st, nil
}
