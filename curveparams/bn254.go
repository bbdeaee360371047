package curveparams

import "math/big"

// bn254P is BN254's base-field modulus, as used by Ethereum's EIP-196 /
// EIP-197 precompiles.
var bn254P = hex("30644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd47")

// bn254Order is the prime order r of BN254's G1/G2 subgroups.
var bn254Order = hex("30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001")

// BN254Modulus is the type-level marker for BN254's base field, plugged
// into field/fp.Element as its Modulus type parameter.
type BN254Modulus struct{}

func (BN254Modulus) P() *big.Int { return bn254P }

// BN254Order returns BN254's subgroup order r.
func BN254Order() *big.Int { return new(big.Int).Set(bn254Order) }

// BN254B is the G1 curve coefficient b in y² = x³ + b.
const bn254B = 3

// BN254Twist is BN254's G2 twist kind.
const BN254Twist = "D"

// bn254G1X, bn254G1Y are BN254's G1 generator coordinates.
var (
	bn254G1X = big.NewInt(1)
	bn254G1Y = big.NewInt(2)
)

// BN254B returns BN254's G1 curve coefficient b.
func BN254B() *big.Int { return big.NewInt(bn254B) }

// BN254G1 returns BN254's G1 generator coordinates.
func BN254G1() (x, y *big.Int) {
	return new(big.Int).Set(bn254G1X), new(big.Int).Set(bn254G1Y)
}

// This registry deliberately does not pin a G2 generator for BN254: the
// well-known EIP-197 G2 base point is only a curve point under BN254's
// real sextic non-residue ξ = 9+i, while the tower this module builds
// (field/fp2's MulByNonResidue) fixes ξ = 1+i universally. Reusing the
// EIP-197 coordinates verbatim would produce a point that silently fails
// to satisfy y² = x³ + b twisted by this module's own ξ, with no error
// raised anywhere. BN254's G2 generator is instead derived with
// TrySetFromX, the same way BLS12377 handles the curves it does not pin.
