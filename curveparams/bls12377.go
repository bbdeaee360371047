package curveparams

import "math/big"

// bls12377P is BLS12-377's base-field modulus.
var bls12377P = hex("01ae3a4617c510eac63b05c06ca1493b1a22d9f300f5138f1ef3622fba094800170b5d44300000008508c00000000001")

// BLS12377Modulus is the type-level marker for BLS12-377's base field.
type BLS12377Modulus struct{}

func (BLS12377Modulus) P() *big.Int { return bls12377P }

// bls12377B is BLS12-377's G1 curve coefficient b in y² = x³ + b.
const bls12377B = 1

// BLS12377Twist is BLS12-377's G2 twist kind.
const BLS12377Twist = "D"

// BLS12377B returns BLS12-377's G1 curve coefficient b.
func BLS12377B() *big.Int { return big.NewInt(bls12377B) }

// Unlike BN254 and BLS12-381, this registry does not pin a standard
// generator for BLS12-377: the test suite instead derives a
// representative G1/G2 point with TrySetFromX, since this core never
// needs a canonical base point (that belongs to the scalar-multiplication
// layer above it, which is out of scope here).
