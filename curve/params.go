// Package curve implements the complete, constant-time short-Weierstrass
// point arithmetic (Renes-Costello-Batina 2015) shared by every
// pairing-friendly curve's G1 and G2, generic over the coordinate field.
//
// Only a = 0 curves are supported, matching every BN/BLS curve in scope.
// Per the design note this generalizes from, extending to a general `a`
// is a compile-time-rejected case: there is no field in Params for it,
// so a curve with a != 0 simply cannot be expressed through this API
// rather than being caught by a runtime check.
package curve

import "github.com/zacksfF/towercurve/field"

// TwistKind selects which family of twist adjustments apply to the
// complete-addition and doubling formulas when the coordinate field F is
// the Fp2 of a G2 twist. It is always a compile-time (construction-time)
// property of a Params value, never derived from point data, so
// selecting on it inside Sum/Madd/Double is not a secret-dependent
// branch.
type TwistKind int

const (
	// NoTwist is used for G1 (and any subgroup defined directly over the
	// curve's base field, with no sextic twist involved).
	NoTwist TwistKind = iota
	// DTwist is the D-twist family (ξ multiplies the cross terms).
	DTwist
	// MTwist is the M-twist family (ξ multiplies the b-scaled terms).
	MTwist
)

// Params bundles the compile-time constants Sum, Madd and Double need:
// the curve coefficient b (embedded into F — for G1, F == Fp and B is the
// curve's b; for G2, F == Fp2 and B is b embedded as (b, 0), with ξ
// entering through the twist adjustments rather than a separately
// twisted constant), which twist family applies, and how to multiply an
// F value by the sextic non-residue ξ when the twist calls for it.
//
// a is implicitly 0: there is no field for it, by design (see package
// doc).
type Params[F field.Ring[F]] struct {
	B             F
	Twist         TwistKind
	NonResidueMul func(F) F
}

// threeB returns 3*B, computed once per call rather than cached, since
// Params values are long-lived constants shared across many point
// operations and b is tiny relative to a full field multiplication.
func (p *Params[F]) threeB() F {
	return p.B.Double().Add(p.B)
}

// nr multiplies x by ξ when the twist requires it; NoTwist curves never
// call this (there is nothing to adjust), so NonResidueMul may be left
// nil for G1 parameters.
func (p *Params[F]) nr(x F) F {
	return p.NonResidueMul(x)
}

// EffectiveB returns b', the curve constant for which points in F satisfy
// y² = x³ + b': B itself under NoTwist, B/ξ under a D-twist, B·ξ under an
// M-twist. Params.B always holds the untwisted value regardless of twist
// kind (see the Params doc comment); the twist-adjusted Sum/Madd/Double
// formulas fold ξ into their internal temporaries rather than into B, so
// B alone is the wrong constant to use in a membership check or to seed
// TrySetFromX for a twisted coordinate field. EffectiveB recovers the
// equation those formulas actually preserve.
func EffectiveB[F field.Ring[F]](p *Params[F]) F {
	switch p.Twist {
	case DTwist:
		xi := p.nr(p.B.One())
		return p.B.Mul(xi.Inverse())
	case MTwist:
		xi := p.nr(p.B.One())
		return p.B.Mul(xi)
	default:
		return p.B
	}
}
