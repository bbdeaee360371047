// Package fp provides the base-field collaborator consumed by the rest
// of this module: a dedicated multiprecision Montgomery field sits
// outside this core's concerns, so this package is a reference
// implementation of that contract, good enough to drive the tower and
// point engines built on top of it. It is built on math/big and is not
// constant time: big.Int arithmetic and comparisons take time that
// depends on operand values, and Inverse and SqrtIfSquare branch on
// whether a result exists. Only CCopy avoids a branch on its SecretBool.
package fp

import (
	"crypto/rand"
	"math/big"

	"github.com/zacksfF/towercurve/field"
)

// Modulus names a curve's base-field prime at the type level. Each
// pairing-friendly curve registered in curveparams defines one of these
// as a zero-size marker type, which is what lets Element[M] stand in for
// "Fp of curve C" without carrying the modulus at every value.
type Modulus interface {
	P() *big.Int
}

// Element is a value in [0, M.P()). The zero value is not a valid
// element; use Zero, One or FromBigInt.
type Element[M Modulus] struct {
	v *big.Int
}

func modulus[M Modulus]() *big.Int {
	var m M
	return m.P()
}

func reduced[M Modulus](v *big.Int) Element[M] {
	r := new(big.Int).Mod(v, modulus[M]())
	return Element[M]{v: r}
}

// Zero returns the additive identity.
func (Element[M]) Zero() Element[M] {
	return Element[M]{v: new(big.Int)}
}

// One returns the multiplicative identity.
func (Element[M]) One() Element[M] {
	return Element[M]{v: big.NewInt(1)}
}

// FromBigInt builds an element from an arbitrary integer, reducing it
// modulo the curve's prime.
func FromBigInt[M Modulus](v *big.Int) Element[M] {
	return reduced[M](v)
}

// FromUint64 builds an element from a small unsigned integer.
func FromUint64[M Modulus](v uint64) Element[M] {
	return reduced[M](new(big.Int).SetUint64(v))
}

// BigInt returns the element's canonical representative in [0, p).
func (x Element[M]) BigInt() *big.Int {
	return new(big.Int).Set(x.v)
}

// Random draws a uniformly distributed element using the supplied
// reader (crypto/rand.Reader in production, a seeded PRNG in tests). The
// sampling loop itself is not part of this core's constant-time
// envelope: randomness belongs to the test harness, not the arithmetic.
func Random[M Modulus](reader ...func([]byte) (int, error)) (Element[M], error) {
	read := rand.Read
	if len(reader) > 0 {
		read = reader[0]
	}
	p := modulus[M]()
	buf := make([]byte, (p.BitLen()+7)/8+8)
	for {
		if _, err := read(buf); err != nil {
			return Element[M]{}, err
		}
		v := new(big.Int).SetBytes(buf)
		v.Mod(v, p)
		return Element[M]{v: v}, nil
	}
}

func (x Element[M]) Add(y Element[M]) Element[M] {
	return reduced[M](new(big.Int).Add(x.v, y.v))
}

func (x Element[M]) Sub(y Element[M]) Element[M] {
	return reduced[M](new(big.Int).Sub(x.v, y.v))
}

func (x Element[M]) Neg() Element[M] {
	return reduced[M](new(big.Int).Neg(x.v))
}

func (x Element[M]) Double() Element[M] {
	return reduced[M](new(big.Int).Lsh(x.v, 1))
}

func (x Element[M]) Mul(y Element[M]) Element[M] {
	return reduced[M](new(big.Int).Mul(x.v, y.v))
}

func (x Element[M]) Square() Element[M] {
	return reduced[M](new(big.Int).Mul(x.v, x.v))
}

// Inverse returns x⁻¹. Per the Fp contract, the value it returns when x
// is zero is unspecified; big.Int.ModInverse returns nil on a
// non-invertible input, which this implementation maps to the zero
// element rather than propagating a nil pointer, so the operation stays
// total. Correct callers never invert zero.
func (x Element[M]) Inverse() Element[M] {
	inv := new(big.Int).ModInverse(x.v, modulus[M]())
	if inv == nil {
		return Element[M]{v: new(big.Int)}
	}
	return Element[M]{v: inv}
}

// IsZero reports whether x is the additive identity.
func (x Element[M]) IsZero() field.SecretBool {
	return field.NewSecretBool(x.v.Sign() == 0)
}

// Equal reports whether x == y.
func (x Element[M]) Equal(y Element[M]) field.SecretBool {
	return field.NewSecretBool(x.v.Cmp(y.v) == 0)
}

// CCopy returns y if ctl is true, x otherwise, with no branch taken on
// ctl: both operands are serialized into fixed-width buffers sized to the
// modulus and selected with field.CSelectBytes, which wraps
// crypto/subtle's constant-time copy, matching the Ring contract's "no
// branch is taken on ctl" requirement.
func (x Element[M]) CCopy(ctl field.SecretBool, y Element[M]) Element[M] {
	n := (modulus[M]().BitLen()+7)/8 + 1
	xBuf := make([]byte, n)
	yBuf := make([]byte, n)
	x.v.FillBytes(xBuf)
	y.v.FillBytes(yBuf)
	field.CSelectBytes(ctl, xBuf, yBuf)
	return Element[M]{v: new(big.Int).SetBytes(xBuf)}
}

// SqrtIfSquare attempts to compute the principal square root of x. It
// returns (root, true) if x is a quadratic residue, and (zero, false)
// otherwise; success is reported only through the SecretBool. It is
// built on big.Int.ModSqrt, which returns early for a non-residue, and
// it branches on that outcome, so it is not constant time.
func (x Element[M]) SqrtIfSquare() (Element[M], field.SecretBool) {
	p := modulus[M]()
	root := new(big.Int).ModSqrt(x.v, p)
	ok := root != nil
	if !ok {
		root = new(big.Int)
	}
	check := new(big.Int).Mul(root, root)
	check.Mod(check, p)
	valid := field.NewSecretBool(ok && check.Cmp(x.v) == 0)
	return Element[M]{v: root}, valid
}

// IsSquare reports whether x has a square root in the field.
func (x Element[M]) IsSquare() field.SecretBool {
	_, ok := x.SqrtIfSquare()
	return ok
}
