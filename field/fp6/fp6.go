// Package fp6 implements the sextic extension 𝔽p²[v]/(v³-ξ), generic
// over the quadratic field F2 it is built on (field/fp2 instantiated
// with a curve's Fp). The 6-multiplication Karatsuba-style scheme below
// matches the one used throughout pairing implementations for this
// tower shape (go-ethereum's bls12381/fp6.go among them), generalized
// here to any QuadRing instead of one hard-coded field.
package fp6

import "github.com/zacksfF/towercurve/field"

// Element represents c0 + c1·v + c2·v² with v³ = ξ, ξ = 1+i.
type Element[F2 field.QuadRing[F2]] struct {
	C0, C1, C2 F2
}

// New builds an Fp6 element from its three Fp2 coordinates.
func New[F2 field.QuadRing[F2]](c0, c1, c2 F2) Element[F2] {
	return Element[F2]{C0: c0, C1: c1, C2: c2}
}

func (z Element[F2]) Zero() Element[F2] {
	zero := z.C0.Zero()
	return Element[F2]{C0: zero, C1: zero, C2: zero}
}

func (z Element[F2]) One() Element[F2] {
	return Element[F2]{C0: z.C0.One(), C1: z.C0.Zero(), C2: z.C0.Zero()}
}

func (z Element[F2]) Add(y Element[F2]) Element[F2] {
	return Element[F2]{C0: z.C0.Add(y.C0), C1: z.C1.Add(y.C1), C2: z.C2.Add(y.C2)}
}

func (z Element[F2]) Sub(y Element[F2]) Element[F2] {
	return Element[F2]{C0: z.C0.Sub(y.C0), C1: z.C1.Sub(y.C1), C2: z.C2.Sub(y.C2)}
}

func (z Element[F2]) Neg() Element[F2] {
	return Element[F2]{C0: z.C0.Neg(), C1: z.C1.Neg(), C2: z.C2.Neg()}
}

func (z Element[F2]) Double() Element[F2] {
	return Element[F2]{C0: z.C0.Double(), C1: z.C1.Double(), C2: z.C2.Double()}
}

// Mul implements the 6-multiplication Karatsuba-like scheme:
//
//	v0 = a0·b0, v1 = a1·b1, v2 = a2·b2
//	c0 = v0 + ξ·((a1+a2)(b1+b2) - v1 - v2)
//	c1 = (a0+a1)(b0+b1) - v0 - v1 + ξ·v2
//	c2 = (a0+a2)(b0+b2) - v0 - v2 + v1
func (z Element[F2]) Mul(y Element[F2]) Element[F2] {
	v0 := z.C0.Mul(y.C0)
	v1 := z.C1.Mul(y.C1)
	v2 := z.C2.Mul(y.C2)

	t0 := z.C1.Add(z.C2).Mul(y.C1.Add(y.C2)).Sub(v1).Sub(v2)
	c0 := v0.Add(t0.MulByNonResidue())

	t1 := z.C0.Add(z.C1).Mul(y.C0.Add(y.C1)).Sub(v0).Sub(v1)
	c1 := t1.Add(v2.MulByNonResidue())

	t2 := z.C0.Add(z.C2).Mul(y.C0.Add(y.C2)).Sub(v0).Sub(v2)
	c2 := t2.Add(v1)

	return Element[F2]{C0: c0, C1: c1, C2: c2}
}

// Square is z.Mul(z): the Karatsuba-style scheme of Mul with a == b,
// kept bit-identical to Mul rather than diverging into a separate
// (Chung-Hasan) squaring formula, since the savings over the generic
// field are not worth the duplicated derivation at this layer.
func (z Element[F2]) Square() Element[F2] {
	return z.Mul(z)
}

// Inverse computes the cubic-extension inverse:
//
//	t0 = a0² - ξ·a1·a2
//	t1 = ξ·a2² - a0·a1
//	t2 = a1² - a0·a2
//	f  = a0·t0 + ξ·a2·t1 + ξ·a1·t2
//	result = (t0/f, t1/f, t2/f)
func (z Element[F2]) Inverse() Element[F2] {
	t0 := z.C0.Square().Sub(z.C1.Mul(z.C2).MulByNonResidue())
	t1 := z.C2.Square().MulByNonResidue().Sub(z.C0.Mul(z.C1))
	t2 := z.C1.Square().Sub(z.C0.Mul(z.C2))

	f := z.C0.Mul(t0)
	f = f.Add(z.C2.Mul(t1).MulByNonResidue())
	f = f.Add(z.C1.Mul(t2).MulByNonResidue())
	fInv := f.Inverse()

	return Element[F2]{
		C0: t0.Mul(fInv),
		C1: t1.Mul(fInv),
		C2: t2.Mul(fInv),
	}
}

// MulByNonResidue shifts coordinates up a degree and multiplies the
// wrapped-around top coefficient by ξ: (a0,a1,a2) -> (ξ·a2, a0, a1).
func (z Element[F2]) MulByNonResidue() Element[F2] {
	return Element[F2]{C0: z.C2.MulByNonResidue(), C1: z.C0, C2: z.C1}
}

func (z Element[F2]) IsZero() field.SecretBool {
	return z.C0.IsZero().And(z.C1.IsZero()).And(z.C2.IsZero())
}

func (z Element[F2]) Equal(y Element[F2]) field.SecretBool {
	return z.C0.Equal(y.C0).And(z.C1.Equal(y.C1)).And(z.C2.Equal(y.C2))
}

// CCopy returns y if ctl is true, z otherwise, coordinatewise.
func (z Element[F2]) CCopy(ctl field.SecretBool, y Element[F2]) Element[F2] {
	return Element[F2]{
		C0: z.C0.CCopy(ctl, y.C0),
		C1: z.C1.CCopy(ctl, y.C1),
		C2: z.C2.CCopy(ctl, y.C2),
	}
}
