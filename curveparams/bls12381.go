package curveparams

import "math/big"

// bls12381P is BLS12-381's base-field modulus.
var bls12381P = hex("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab")

// bls12381Order is the prime order r of BLS12-381's subgroups.
var bls12381Order = hex("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")

// BLS12381Modulus is the type-level marker for BLS12-381's base field.
type BLS12381Modulus struct{}

func (BLS12381Modulus) P() *big.Int { return bls12381P }

// BLS12381Order returns BLS12-381's subgroup order r.
func BLS12381Order() *big.Int { return new(big.Int).Set(bls12381Order) }

// bls12381B is BLS12-381's G1 curve coefficient b in y² = x³ + b.
const bls12381B = 4

// BLS12381Twist is BLS12-381's G2 twist kind.
const BLS12381Twist = "M"

var (
	bls12381G1X = hex("17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb")
	bls12381G1Y = hex("08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1")
)

var (
	bls12381G2X0 = hex("024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8")
	bls12381G2X1 = hex("13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e")
	bls12381G2Y0 = hex("0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801")
	bls12381G2Y1 = hex("0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be")
)

// BLS12381B returns BLS12-381's G1 curve coefficient b.
func BLS12381B() *big.Int { return big.NewInt(bls12381B) }

// BLS12381G1 returns BLS12-381's G1 generator coordinates.
func BLS12381G1() (x, y *big.Int) {
	return new(big.Int).Set(bls12381G1X), new(big.Int).Set(bls12381G1Y)
}

// BLS12381G2 returns BLS12-381's G2 generator coordinates as (x0, x1, y0, y1).
func BLS12381G2() (x0, x1, y0, y1 *big.Int) {
	return new(big.Int).Set(bls12381G2X0), new(big.Int).Set(bls12381G2X1),
		new(big.Int).Set(bls12381G2Y0), new(big.Int).Set(bls12381G2Y1)
}
