package field

// Ring is the contract every tower field in this module builds on: the
// base field Fp satisfies it (see field/fp), and so do the extensions
// built on top of it (field/fp2, field/fp6), which is what lets Fp6 be
// expressed generically over "whatever quadratic field sits underneath".
//
// Every method is total and branch-free on secret inputs: Inverse is
// unspecified-but-safe on zero, IsZero/Equal report a SecretBool instead
// of a bool, and CCopy never inspects ctl with an `if`. The math/big
// reference base field in field/fp is total but not branch-free (see its
// package doc), and the extensions built on it inherit that.
type Ring[T any] interface {
	Zero() T
	One() T
	Add(y T) T
	Sub(y T) T
	Neg() T
	Double() T
	Mul(y T) T
	Square() T
	Inverse() T
	IsZero() SecretBool
	Equal(y T) SecretBool
	// CCopy returns y if ctl is true, and the receiver unchanged otherwise.
	// Both outcomes are computed; no branch is taken on ctl.
	CCopy(ctl SecretBool, y T) T
}

// Sqrtable is a Ring that can attempt a principal square root, reporting
// success as a SecretBool rather than an error. Fp satisfies it directly;
// Fp2 satisfies it by reducing to an Fp sqrt via the norm, which is why
// Fp2's base field is required to be Sqrtable rather than a bare Ring.
type Sqrtable[T any] interface {
	Ring[T]
	SqrtIfSquare() (T, SecretBool)
}

// QuadRing is a Ring that additionally knows how to multiply by the
// sextic non-residue used to build a cubic extension on top of it. Fp2
// satisfies this; Fp does not, because only quadratic extensions carry a
// natural "multiply by ξ" operator in this tower.
type QuadRing[T any] interface {
	Ring[T]
	MulByNonResidue() T
}

// CNeg negates x iff ctl is true, without branching: it is defined
// generically for any Ring in terms of Neg and CCopy, matching the Fp
// contract's cneg while avoiding a duplicate implementation in every
// extension field.
func CNeg[T Ring[T]](x T, ctl SecretBool) T {
	return x.CCopy(ctl, x.Neg())
}

// CSetZero sets x to zero iff ctl is true.
func CSetZero[T Ring[T]](x T, ctl SecretBool) T {
	return x.CCopy(ctl, x.Zero())
}

// CSetOne sets x to one iff ctl is true.
func CSetOne[T Ring[T]](x T, ctl SecretBool) T {
	return x.CCopy(ctl, x.One())
}
