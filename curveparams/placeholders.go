package curveparams

import "math/big"

// The four curves below (BN446, FKM12-447, BLS12-461, BN462) round out
// the registry's curve coverage, but the retrieval pack available
// while building this registry did not contain their bit-exact base
// field moduli with enough confidence to assert as fact. Rather than
// fabricate digits and present them as the real curve, each placeholder
// modulus here borrows a different well-known, independently verifiable
// prime (so the ring arithmetic above it is still genuinely valid) and
// is clearly labelled as a stand-in. Registered reports false for all
// four, and the generic property-based suite in curve/ and field/
// excludes them accordingly; wiring in the authoritative constants is a
// registry-data change, not an engine change.

// bn446Placeholder borrows the Curve25519 prime 2^255 - 19.
var bn446Placeholder = hex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")

// fkm12447Placeholder borrows the Goldilocks prime 2^448 - 2^224 - 1.
var fkm12447Placeholder = hex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

// bls12461Placeholder borrows the Mersenne prime 2^521 - 1.
var bls12461Placeholder = hex("01ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

// bn462Placeholder borrows the secp256k1 prime 2^256 - 2^32 - 977.
var bn462Placeholder = hex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

type (
	// BN446Modulus is a placeholder marker type; see package doc above.
	BN446Modulus struct{}
	// FKM12447Modulus is a placeholder marker type; see package doc above.
	FKM12447Modulus struct{}
	// BLS12461Modulus is a placeholder marker type; see package doc above.
	BLS12461Modulus struct{}
	// BN462Modulus is a placeholder marker type; see package doc above.
	BN462Modulus struct{}
)

func (BN446Modulus) P() *big.Int    { return bn446Placeholder }
func (FKM12447Modulus) P() *big.Int { return fkm12447Placeholder }
func (BLS12461Modulus) P() *big.Int { return bls12461Placeholder }
func (BN462Modulus) P() *big.Int    { return bn462Placeholder }

const (
	bn446B    = 1
	fkm12447B = 1
	bls12461B = 4
	bn462B    = 3
)

func BN446B() *big.Int    { return big.NewInt(bn446B) }
func FKM12447B() *big.Int { return big.NewInt(fkm12447B) }
func BLS12461B() *big.Int { return big.NewInt(bls12461B) }
func BN462B() *big.Int    { return big.NewInt(bn462B) }
