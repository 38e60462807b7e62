// SPDX-License-Identifier: MIT
package model

// Load is an ordered abelian monoid with a fitness predicate: the algebra
// demands are expressed over. Concrete loads (scalar capacity, per-commodity
// vectors, ...) implement this interface; the rest of vrpcore operates on
// Load alone, mirroring the fast-path/fallback split lvlath/matrix uses for
// *matrix.Dense vs. the generic matrix.Matrix interface — VectorLoad below
// is the one fast concrete implementation every caller is expected to use,
// and the interface exists so alternate algebras can be dropped in.
type Load interface {
	// Add returns the monoid sum of this load and other.
	Add(other Load) Load
	// Sub returns this load minus other (may go negative per-dimension).
	Sub(other Load) Load
	// CanFit reports whether this load does not exceed capacity in any dimension.
	CanFit(capacity Load) bool
	// IsEmpty reports whether this load is the monoid identity (all-zero).
	IsEmpty() bool
	// Max returns the element-wise maximum of this load and other — the
	// running high-water mark package capacity folds over a route.
	Max(other Load) Load
}

// VectorLoad is a fixed-arity integer capacity vector (e.g. [weight, volume]).
// Arithmetic between VectorLoads of different arity pads the shorter operand
// with zeros rather than panicking, so callers never need to pre-align
// dimensions by hand.
type VectorLoad []int64

var _ Load = VectorLoad{}

func widen(a, b VectorLoad) (VectorLoad, VectorLoad) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	wa := make(VectorLoad, n)
	wb := make(VectorLoad, n)
	copy(wa, a)
	copy(wb, b)
	return wa, wb
}

// Add implements Load.
func (v VectorLoad) Add(other Load) Load {
	o, _ := other.(VectorLoad)
	a, b := widen(v, o)
	out := make(VectorLoad, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// Sub implements Load.
func (v VectorLoad) Sub(other Load) Load {
	o, _ := other.(VectorLoad)
	a, b := widen(v, o)
	out := make(VectorLoad, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// CanFit implements Load.
func (v VectorLoad) CanFit(capacity Load) bool {
	c, _ := capacity.(VectorLoad)
	a, b := widen(v, c)
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

// IsEmpty implements Load.
func (v VectorLoad) IsEmpty() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Max implements Load.
func (v VectorLoad) Max(other Load) Load {
	o, _ := other.(VectorLoad)
	return Max(v, o)
}

// Compare returns -1, 0, or 1 by summed-dimension magnitude: a total order
// over VectorLoads. Capacity propagation does not use it; it folds with the
// element-wise Max.
func (v VectorLoad) Compare(other VectorLoad) int {
	a, b := widen(v, other)
	var sa, sb int64
	for i := range a {
		sa += a[i]
		sb += b[i]
	}
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

// Max returns the element-wise maximum of two VectorLoads.
func Max(a, b VectorLoad) VectorLoad {
	wa, wb := widen(a, b)
	out := make(VectorLoad, len(wa))
	for i := range wa {
		if wa[i] > wb[i] {
			out[i] = wa[i]
		} else {
			out[i] = wb[i]
		}
	}
	return out
}

// PairLoad is a (static, dynamic) pair of the same algebra — the two demand
// components spec.md §3 calls out: the static component is aboard for the
// whole activity interval, the dynamic component rides only between a
// pickup and its matched delivery within one multi-job.
type PairLoad struct {
	Static  Load
	Dynamic Load
}

// Total returns Static + Dynamic.
func (p PairLoad) Total() Load {
	if p.Static == nil {
		return p.Dynamic
	}
	if p.Dynamic == nil {
		return p.Static
	}
	return p.Static.Add(p.Dynamic)
}

// Demand is the pickup/delivery pair a Single contributes to capacity
// propagation (spec.md §3, §4.F).
type Demand struct {
	Pickup   PairLoad
	Delivery PairLoad
}

// Change returns the net demand change applied at this activity:
// pickup.static + pickup.dynamic - delivery.static - delivery.dynamic.
func (d Demand) Change() Load {
	pickup := orZero(d.Pickup.Total())
	delivery := orZero(d.Delivery.Total())
	return pickup.Sub(delivery)
}

// orZero substitutes the VectorLoad identity for a nil Load so arithmetic
// never has to special-case an absent pickup or delivery side.
func orZero(l Load) Load {
	if l == nil {
		return VectorLoad{}
	}
	return l
}

// Zero returns the monoid identity Load. Exported for packages outside
// model (package capacity) that need a safe default when no state has been
// cached yet for a given activity.
func Zero() Load { return VectorLoad{} }

// IsEmpty reports whether the demand carries no pickup or delivery at all.
func (d Demand) IsEmpty() bool {
	empty := func(l Load) bool { return l == nil || l.IsEmpty() }
	return empty(d.Pickup.Static) && empty(d.Pickup.Dynamic) &&
		empty(d.Delivery.Static) && empty(d.Delivery.Dynamic)
}
