package curve

import "github.com/zacksfF/towercurve/field"

// Point is a projective short-Weierstrass point (X, Y, Z) over F, for a
// curve y² = x³ + b. The representation is not unique: (λX, λY, λZ) for
// any nonzero λ denotes the same affine point. Infinity is (0, *, 0);
// SetInfinity produces the canonical (0, 1, 0).
//
// Every operation below may alias its result with any input: they are
// written against local temporaries (t0..t5, x3, y3, z3) exactly as the
// fused formulas name them, never mutating an input slot mid-computation.
type Point[F field.Ring[F]] struct {
	X, Y, Z F
}

// Affine is the companion non-projective representation; it has no
// explicit infinity encoding. Callers that need to represent infinity in
// affine form must do so out of band (a flag, or the batch sentinel
// produced by BatchToAffine).
type Affine[F field.Ring[F]] struct {
	X, Y F
}

// SetInfinity assigns the canonical point at infinity (0, 1, 0).
func SetInfinity[F field.Ring[F]](p *Point[F]) {
	p.X = p.X.Zero()
	p.Y = p.Y.One()
	p.Z = p.Z.Zero()
}

// IsInfinity reports X = 0 ∧ Z = 0, the only predicate this engine ever
// uses to detect infinity, computed without branching.
func IsInfinity[F field.Ring[F]](p *Point[F]) field.SecretBool {
	return p.X.IsZero().And(p.Z.IsZero())
}

// CCopy sets p to q iff ctl is true, leaving p unchanged otherwise, with
// no timing variation between the two outcomes.
func CCopy[F field.Ring[F]](p *Point[F], q *Point[F], ctl field.SecretBool) {
	p.X = p.X.CCopy(ctl, q.X)
	p.Y = p.Y.CCopy(ctl, q.Y)
	p.Z = p.Z.CCopy(ctl, q.Z)
}

// Neg writes -p (the Y coordinate negated) into dst.
func Neg[F field.Ring[F]](dst *Point[F], p *Point[F]) {
	x, y, z := p.X, p.Y.Neg(), p.Z
	dst.X, dst.Y, dst.Z = x, y, z
}

// NegInPlace negates p.
func NegInPlace[F field.Ring[F]](p *Point[F]) {
	Neg(p, p)
}

// CNeg negates p's Y coordinate iff ctl is true, in constant time.
func CNeg[F field.Ring[F]](p *Point[F], ctl field.SecretBool) {
	p.Y = field.CNeg[F](p.Y, ctl)
}

// Equality checks X1Z2 = X2Z1 ∧ Y1Z2 = Y2Z1; both cross-multiplications
// are performed unconditionally.
func Equality[F field.Ring[F]](p, q *Point[F]) field.SecretBool {
	lhsX := p.X.Mul(q.Z)
	rhsX := q.X.Mul(p.Z)
	lhsY := p.Y.Mul(q.Z)
	rhsY := q.Y.Mul(p.Z)
	return lhsX.Equal(rhsX).And(lhsY.Equal(rhsY))
}

// Sum implements Renes-Costello-Batina 2015 Algorithm 7 (complete
// addition for a = 0): it is correct for every pair of inputs, including
// P = Q (doubling), P = -Q (infinity) and either operand at infinity,
// with no branch on the point data. Twist adjustments for G2's Fp2
// coordinate field are applied inline on the canonical temporaries
// introduced below: t3, t4, t0, t1 for a D-twist; threeBZ (3b·Z1Z2) and
// threeBX (3b·(X1Z2+X2Z1)) for an M-twist.
func Sum[F field.Ring[F]](r *Point[F], p, q *Point[F], params *Params[F]) {
	t0 := p.X.Mul(q.X)                                             // t0 = X1X2
	t1 := p.Y.Mul(q.Y)                                             // t1 = Y1Y2
	t2 := p.Z.Mul(q.Z)                                             // t2 = Z1Z2
	t3 := p.X.Add(p.Y).Mul(q.X.Add(q.Y)).Sub(t0).Sub(t1)           // t3 = X1Y2+X2Y1
	t4 := p.Y.Add(p.Z).Mul(q.Y.Add(q.Z)).Sub(t1).Sub(t2)           // t4 = Y1Z2+Y2Z1
	t5 := p.X.Add(p.Z).Mul(q.X.Add(q.Z)).Sub(t0).Sub(t2)           // t5 = X1Z2+X2Z1

	if params.Twist == DTwist {
		t3 = params.nr(t3)
		t4 = params.nr(t4)
		t0 = params.nr(t0)
		t1 = params.nr(t1)
	}

	threeBZ := params.threeB().Mul(t2) // 3b·Z1Z2
	if params.Twist == MTwist {
		threeBZ = params.nr(threeBZ)
	}
	z3sum := t1.Add(threeBZ) // Y1Y2 + 3bZ1Z2
	t1m := t1.Sub(threeBZ)   // Y1Y2 - 3bZ1Z2

	threeBX := params.threeB().Mul(t5) // 3b·(X1Z2+X2Z1)
	if params.Twist == MTwist {
		threeBX = params.nr(threeBX)
	}

	threeT0 := t0.Double().Add(t0) // 3·X1X2

	x3 := t4.Mul(threeBX)
	x3 = t3.Mul(t1m).Sub(x3) // X3 = t3·t1m - t4·threeBX

	y3 := threeBX.Mul(threeT0)
	y3 = t1m.Mul(z3sum).Add(y3) // Y3 = z3sum·t1m + threeBX·threeT0

	z3 := z3sum.Mul(t4)
	z3 = z3.Add(threeT0.Mul(t3)) // Z3 = z3sum·t4 + threeT0·t3

	r.X, r.Y, r.Z = x3, y3, z3
}

// Madd implements Algorithm 8, the mixed-addition specialisation of Sum
// with Z2 = 1 eliminated, saving the three multiplications that would
// otherwise involve it.
func Madd[F field.Ring[F]](r *Point[F], p *Point[F], q *Affine[F], params *Params[F]) {
	t0 := p.X.Mul(q.X)                                   // t0 = X1X2
	t1 := p.Y.Mul(q.Y)                                   // t1 = Y1Y2
	t3 := p.X.Add(p.Y).Mul(q.X.Add(q.Y)).Sub(t0).Sub(t1) // t3 = X1Y2+X2Y1
	t4 := q.Y.Mul(p.Z).Add(p.Y)                          // t4 = Y1Z2+Y2Z1, Z2=1
	t5 := q.X.Mul(p.Z).Add(p.X)                          // t5 = X1Z2+X2Z1, Z2=1

	if params.Twist == DTwist {
		t3 = params.nr(t3)
		t4 = params.nr(t4)
		t0 = params.nr(t0)
		t1 = params.nr(t1)
	}

	threeBZ := params.threeB().Mul(p.Z) // 3b·Z1Z2, Z2=1
	if params.Twist == MTwist {
		threeBZ = params.nr(threeBZ)
	}
	z3sum := t1.Add(threeBZ)
	t1m := t1.Sub(threeBZ)

	threeBX := params.threeB().Mul(t5)
	if params.Twist == MTwist {
		threeBX = params.nr(threeBX)
	}

	threeT0 := t0.Double().Add(t0)

	x3 := t4.Mul(threeBX)
	x3 = t3.Mul(t1m).Sub(x3)

	y3 := threeBX.Mul(threeT0)
	y3 = t1m.Mul(z3sum).Add(y3)

	z3 := z3sum.Mul(t4)
	z3 = z3.Add(threeT0.Mul(t3))

	r.X, r.Y, r.Z = x3, y3, z3
}

// Double implements Algorithm 9, complete doubling for a = 0:
//
//	X3 = 2XY(Y² - 9bZ²)
//	Y3 = (Y² - 9bZ²)(Y² + 3bZ²) + 24bY²Z²
//	Z3 = 8Y³Z
//
// with the D-twist adjustment scaling the Y², YZ and XY temporaries by ξ,
// and the M-twist adjustment scaling the 3bZ² temporary.
func Double[F field.Ring[F]](r *Point[F], p *Point[F], params *Params[F]) {
	b3 := params.threeB()

	t0 := p.Y.Square()
	switch params.Twist {
	case DTwist:
		t0 = params.nr(t0)
	}
	z3 := t0.Double().Double()
	z3 = z3.Double()

	t1 := p.Y.Mul(p.Z)
	switch params.Twist {
	case DTwist:
		t1 = params.nr(t1)
	}
	t2 := p.Z.Square()
	t2 = b3.Mul(t2)
	switch params.Twist {
	case MTwist:
		t2 = params.nr(t2)
	}

	x3 := t2.Mul(z3)
	y3 := t0.Add(t2)
	z3 = t1.Mul(z3)

	t1a := t2.Double().Add(t2)
	t0a := t0.Sub(t1a)
	y3 = t0a.Mul(y3)
	y3 = x3.Add(y3)

	t1b := p.X.Mul(p.Y)
	switch params.Twist {
	case DTwist:
		t1b = params.nr(t1b)
	}
	x3 = t0a.Mul(t1b)
	x3 = x3.Double()

	r.X, r.Y, r.Z = x3, y3, z3
}

// Diff computes r = p + (-q) via a composed negation and Sum, remaining
// alias-safe even when r and q are the same slot because the negated
// value is held in a local temporary before Sum runs.
func Diff[F field.Ring[F]](r *Point[F], p, q *Point[F], params *Params[F]) {
	negQ := Point[F]{X: q.X, Y: q.Y.Neg(), Z: q.Z}
	Sum(r, p, &negQ, params)
}

// ToAffine computes A.x = X·Z⁻¹, A.y = Y·Z⁻¹. Undefined if p is infinity;
// callers must check IsInfinity first.
func ToAffine[F field.Ring[F]](a *Affine[F], p *Point[F]) {
	zInv := p.Z.Inverse()
	a.X = p.X.Mul(zInv)
	a.Y = p.Y.Mul(zInv)
}

// FromAffine sets p = (a.X, a.Y, 1). Callers encoding affine infinity out
// of band must call SetInfinity instead of this constructor.
func FromAffine[F field.Ring[F]](p *Point[F], a *Affine[F]) {
	p.X = a.X
	p.Y = a.Y
	p.Z = a.X.One()
}

// Sqrtable is the extra capability TrySetFromX needs beyond field.Ring:
// a way to attempt a square root while reporting success as a
// SecretBool, never via a branch on the root's existence.
type Sqrtable[F any] interface {
	field.Ring[F]
	SqrtIfSquare() (F, field.SecretBool)
}

// TrySetFromX computes rhs = x³ + b and attempts a square root; on
// success it assigns p = (x, sqrt(rhs), 1). On failure p is left in an
// unspecified but valid field state. Used by test-case generation; the
// retry loop needed to turn this ~50%-success primitive into "a random
// point" lives in the test harness, not here.
func TrySetFromX[F Sqrtable[F]](p *Point[F], params *Params[F], x F) field.SecretBool {
	rhs := x.Square().Mul(x).Add(params.B)
	y, ok := rhs.SqrtIfSquare()
	p.X = x
	p.Y = y
	p.Z = x.One()
	return ok
}

// TrySetFromXAndZ is the two-argument form of TrySetFromX: on success it
// scales the resulting affine point by z, assigning p = (x·z, y·z, z).
func TrySetFromXAndZ[F Sqrtable[F]](p *Point[F], params *Params[F], x, z F) field.SecretBool {
	ok := TrySetFromX(p, params, x)
	p.X = p.X.Mul(z)
	p.Y = p.Y.Mul(z)
	p.Z = z
	return ok
}
