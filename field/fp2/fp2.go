// Package fp2 implements the quadratic extension 𝔽p[i]/(i²+1) generically
// over whatever base field F the curve plugs in. Grounded on the
// Karatsuba and complex-squaring identities in the gnark-crypto point
// and field templates, adapted here to a generic, constant-time-shaped
// formulation instead of per-curve code generation.
package fp2

import "github.com/zacksfF/towercurve/field"

// Element represents a0 + a1·i with i² = -1.
type Element[F field.Sqrtable[F]] struct {
	A0, A1 F
}

// New builds an Fp2 element from its two coordinates.
func New[F field.Sqrtable[F]](a0, a1 F) Element[F] {
	return Element[F]{A0: a0, A1: a1}
}

// Zero returns 0 + 0i.
func (z Element[F]) Zero() Element[F] {
	return Element[F]{A0: z.A0.Zero(), A1: z.A0.Zero()}
}

// One returns 1 + 0i.
func (z Element[F]) One() Element[F] {
	return Element[F]{A0: z.A0.One(), A1: z.A0.Zero()}
}

func (z Element[F]) Add(y Element[F]) Element[F] {
	return Element[F]{A0: z.A0.Add(y.A0), A1: z.A1.Add(y.A1)}
}

func (z Element[F]) Sub(y Element[F]) Element[F] {
	return Element[F]{A0: z.A0.Sub(y.A0), A1: z.A1.Sub(y.A1)}
}

func (z Element[F]) Neg() Element[F] {
	return Element[F]{A0: z.A0.Neg(), A1: z.A1.Neg()}
}

func (z Element[F]) Double() Element[F] {
	return Element[F]{A0: z.A0.Double(), A1: z.A1.Double()}
}

// Conj returns a0 - a1·i.
func (z Element[F]) Conj() Element[F] {
	return Element[F]{A0: z.A0, A1: z.A1.Neg()}
}

// Mul computes z*y via the three-multiplication Karatsuba scheme:
// t0 = a0·b0, t1 = a1·b1, t2 = (a0+a1)(b0+b1); result (t0-t1, t2-t0-t1).
func (z Element[F]) Mul(y Element[F]) Element[F] {
	t0 := z.A0.Mul(y.A0)
	t1 := z.A1.Mul(y.A1)
	t2 := z.A0.Add(z.A1).Mul(y.A0.Add(y.A1))
	return Element[F]{
		A0: t0.Sub(t1),
		A1: t2.Sub(t0).Sub(t1),
	}
}

// Square uses the complex-squaring identity:
// (a0+a1·i)² = (a0+a1)(a0-a1) + 2·a0·a1·i.
func (z Element[F]) Square() Element[F] {
	sum := z.A0.Add(z.A1)
	diff := z.A0.Sub(z.A1)
	return Element[F]{
		A0: sum.Mul(diff),
		A1: z.A0.Mul(z.A1).Double(),
	}
}

// Inverse computes (a0 - a1·i) / (a0² + a1²). Unspecified on z == 0, but
// does not branch: the division is attempted unconditionally and the
// caller is responsible for never inverting zero, per the Fp2 contract.
func (z Element[F]) Inverse() Element[F] {
	norm := z.A0.Square().Add(z.A1.Square())
	normInv := norm.Inverse()
	return Element[F]{
		A0: z.A0.Mul(normInv),
		A1: z.A1.Neg().Mul(normInv),
	}
}

// MulByNonResidue multiplies z by ξ = 1+i: (a0-a1, a0+a1).
func (z Element[F]) MulByNonResidue() Element[F] {
	return Element[F]{A0: z.A0.Sub(z.A1), A1: z.A0.Add(z.A1)}
}

func (z Element[F]) IsZero() field.SecretBool {
	return z.A0.IsZero().And(z.A1.IsZero())
}

func (z Element[F]) Equal(y Element[F]) field.SecretBool {
	return z.A0.Equal(y.A0).And(z.A1.Equal(y.A1))
}

// CCopy returns y if ctl is true, z otherwise, coordinatewise.
func (z Element[F]) CCopy(ctl field.SecretBool, y Element[F]) Element[F] {
	return Element[F]{
		A0: z.A0.CCopy(ctl, y.A0),
		A1: z.A1.CCopy(ctl, y.A1),
	}
}

// SqrtIfSquare attempts the principal square root of z by reducing to a
// base-field square root of the norm a0²+a1², the standard two-case
// complex sqrt construction. Both candidate branches (norm-plus-root and
// norm-minus-root) are evaluated unconditionally and selected with
// CCopy, so which branch actually held the square root is never
// revealed by a data-dependent jump.
func (z Element[F]) SqrtIfSquare() (Element[F], field.SecretBool) {
	norm := z.A0.Square().Add(z.A1.Square())
	normRoot, normIsSquare := norm.SqrtIfSquare()

	two := z.A0.One().Double()
	invTwo := two.Inverse()

	deltaPos := z.A0.Add(normRoot).Mul(invTwo)
	deltaNeg := z.A0.Sub(normRoot).Mul(invTwo)

	x0FromPos, okPos := deltaPos.SqrtIfSquare()
	x1FromPos := z.A1.Mul(invTwo).Mul(x0FromPos.Inverse())

	x0FromNeg, okNeg := deltaNeg.SqrtIfSquare()
	x1FromNeg := z.A1.Mul(invTwo).Mul(x0FromNeg.Inverse())

	useFirst := okPos
	x0 := x0FromNeg.CCopy(useFirst, x0FromPos)
	x1 := x1FromNeg.CCopy(useFirst, x1FromPos)

	candidate := Element[F]{A0: x0, A1: x1}
	valid := normIsSquare.And(okPos.Or(okNeg)).And(candidate.Square().Equal(z))
	return candidate, valid
}
