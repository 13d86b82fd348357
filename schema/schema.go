// Package schema describes formulas: compile-time-known binary layouts,
// decoupled from the host value types that can be written under them. A
// formula is a concrete, usually zero-size Go type implementing Formula;
// the relationship between formulas and host types is many-to-many, with
// the pairing enforced per call site by the generic interfaces in ser and
// de rather than by any method on Formula itself.
package schema

import "github.com/zform/zform/wire"

// Bound describes a formula's statically-known stack footprint. Bounded
// means every value under the formula occupies exactly Size bytes on the
// stack; unbounded formulas vary in size and must go through reference
// indirection (or the last-field tail extension) instead.
type Bound struct {
	Size    int
	Bounded bool
}

// Unbounded returns the bound of a formula with no fixed stack footprint.
func Unbounded() Bound { return Bound{} }

// Fixed returns the bound of a formula occupying exactly n stack bytes.
func Fixed(n int) Bound { return Bound{Size: n, Bounded: true} }

// Ref returns the bound contributed by a reference-indirected field: a
// fixed two-word header, regardless of the referenced formula's own bound.
func Ref() Bound { return Fixed(wire.HeaderSize) }

// SumBound combines the bounds of two sequentially-packed fields. The
// result is unbounded if either operand is.
func SumBound(a, b Bound) Bound {
	if !a.Bounded || !b.Bounded {
		return Unbounded()
	}
	return Fixed(a.Size + b.Size)
}

// MaxBound combines the bounds of two alternatives sharing the same slot
// (e.g. enum variants). The result is unbounded if either operand is.
func MaxBound(a, b Bound) Bound {
	if !a.Bounded || !b.Bounded {
		return Unbounded()
	}
	if a.Size > b.Size {
		return a
	}
	return b
}

// Formula is implemented by a zero-size marker type describing a
// compile-time binary layout: its statically-known stack footprint
// (Bound), whether every value under it serializes to exactly that many
// bytes (ExactSize), and whether it ever touches the heap region
// (Heapless).
type Formula interface {
	Bound() Bound
	ExactSize() bool
	Heapless() bool
}

// BareTag marks a Formula as bare: one that is not a reference wrapper and
// can appear inline. It is a type-level label only; ser and de never
// consult it, and whether a field is written inline or behind a reference
// header is decided by its Bound alone. Embed BareTag in a formula struct
// to satisfy BareFormula.
type BareTag struct{}

func (BareTag) Bare() {}

// BareFormula is satisfied by formulas embedding BareTag.
type BareFormula interface {
	Formula
	Bare()
}

// NonRefTag marks a Formula as non-ref: the formula is not itself a
// reference wrapper. It is a type-level label only; ser and de never
// consult it, so a composing formula still routes an unbounded NonRef
// formula through a reference header like any other unbounded field.
// Embed NonRefTag in a formula struct to satisfy NonRefFormula.
type NonRefTag struct{}

func (NonRefTag) NonRef() {}

// NonRefFormula is satisfied by formulas embedding NonRefTag.
type NonRefFormula interface {
	Formula
	NonRef()
}
