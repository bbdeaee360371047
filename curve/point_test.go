package curve_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/zacksfF/towercurve/bls12381"
	"github.com/zacksfF/towercurve/bn254"
	"github.com/zacksfF/towercurve/curve"
)

// randomG1 derives a pseudo-random BN254 G1 point by retrying TrySetFromX
// over consecutive x candidates until one lands on the curve. The retry
// loop itself is test/setup machinery, not part of the constant-time core
// (see curve.TrySetFromX's doc comment).
func randomG1(seed uint64) bn254.G1Point {
	for x := seed; ; x++ {
		xe := bn254ElementFromUint64(x)
		var p bn254.G1Point
		if curve.TrySetFromX[bn254.Fp](&p, bn254.G1Params, xe).Declassify() {
			return p
		}
	}
}

func TestGroupAxiomsBN254G1(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	genPoint := gen.UInt64().Map(randomG1)

	properties.Property("P + 0 = P", prop.ForAll(
		func(seed uint64) bool {
			p := randomG1(seed)
			var inf, sum bn254.G1Point
			curve.SetInfinity(&inf)
			curve.Sum(&sum, &p, &inf, bn254.G1Params)
			return curve.Equality(&sum, &p).Declassify()
		},
		gen.UInt64(),
	))

	properties.Property("P + (-P) = infinity", prop.ForAll(
		func(seed uint64) bool {
			p := randomG1(seed)
			var negP, sum bn254.G1Point
			curve.Neg(&negP, &p)
			curve.Sum(&sum, &p, &negP, bn254.G1Params)
			return curve.IsInfinity(&sum).Declassify()
		},
		gen.UInt64(),
	))

	properties.Property("addition commutes", prop.ForAll(
		func(p, q bn254.G1Point) bool {
			var pq, qp bn254.G1Point
			curve.Sum(&pq, &p, &q, bn254.G1Params)
			curve.Sum(&qp, &q, &p, bn254.G1Params)
			return curve.Equality(&pq, &qp).Declassify()
		},
		genPoint, genPoint,
	))

	properties.Property("addition associates", prop.ForAll(
		func(p, q, r bn254.G1Point) bool {
			var pq, pqR, qr, pQr bn254.G1Point
			curve.Sum(&pq, &p, &q, bn254.G1Params)
			curve.Sum(&pqR, &pq, &r, bn254.G1Params)
			curve.Sum(&qr, &q, &r, bn254.G1Params)
			curve.Sum(&pQr, &p, &qr, bn254.G1Params)
			return curve.Equality(&pqR, &pQr).Declassify()
		},
		genPoint, genPoint, genPoint,
	))

	properties.Property("doubling equals self-addition", prop.ForAll(
		func(p bn254.G1Point) bool {
			var doubled, summed bn254.G1Point
			curve.Double(&doubled, &p, bn254.G1Params)
			curve.Sum(&summed, &p, &p, bn254.G1Params)
			return curve.Equality(&doubled, &summed).Declassify()
		},
		genPoint,
	))

	properties.Property("mixed addition matches projective addition", prop.ForAll(
		func(p, q bn254.G1Point) bool {
			var qAffine bn254.G1Affine
			curve.ToAffine(&qAffine, &q)

			var viaMadd, viaSum bn254.G1Point
			curve.Madd(&viaMadd, &p, &qAffine, bn254.G1Params)
			curve.Sum(&viaSum, &p, &q, bn254.G1Params)
			return curve.Equality(&viaMadd, &viaSum).Declassify()
		},
		genPoint, genPoint,
	))

	properties.Property("affine round-trip", prop.ForAll(
		func(p bn254.G1Point) bool {
			var a bn254.G1Affine
			curve.ToAffine(&a, &p)
			var back bn254.G1Point
			curve.FromAffine(&back, &a)
			return curve.Equality(&back, &p).Declassify()
		},
		genPoint,
	))

	properties.TestingRun(t)
}

func TestCompletenessBN254G1(t *testing.T) {
	p := randomG1(1)
	var negP bn254.G1Point
	curve.Neg(&negP, &p)

	var infinity bn254.G1Point
	curve.SetInfinity(&infinity)

	var sumSelf, sumNeg, sumInfLeft, sumInfRight bn254.G1Point
	curve.Sum(&sumSelf, &p, &p, bn254.G1Params)
	curve.Sum(&sumNeg, &p, &negP, bn254.G1Params)
	curve.Sum(&sumInfLeft, &infinity, &p, bn254.G1Params)
	curve.Sum(&sumInfRight, &p, &infinity, bn254.G1Params)

	var doubled bn254.G1Point
	curve.Double(&doubled, &p, bn254.G1Params)

	require.True(t, curve.Equality(&sumSelf, &doubled).Declassify())
	require.True(t, curve.IsInfinity(&sumNeg).Declassify())
	require.True(t, curve.Equality(&sumInfLeft, &p).Declassify())
	require.True(t, curve.Equality(&sumInfRight, &p).Declassify())
}

// TestBLS12381GeneratorIdentities is the concrete seed scenario for
// P<Fp[BLS12_381], G1>.
func TestBLS12381GeneratorIdentities(t *testing.T) {
	g := bls12381.G1Generator()

	var doubled, summed bls12381.G1Point
	curve.Double(&doubled, &g, bls12381.G1Params)
	curve.Sum(&summed, &g, &g, bls12381.G1Params)
	require.True(t, curve.Equality(&doubled, &summed).Declassify())

	var negG, sumNeg bls12381.G1Point
	curve.Neg(&negG, &g)
	curve.Sum(&sumNeg, &g, &negG, bls12381.G1Params)
	require.True(t, curve.IsInfinity(&sumNeg).Declassify())

	var infinity, sumInf bls12381.G1Point
	curve.SetInfinity(&infinity)
	curve.Sum(&sumInf, &infinity, &g, bls12381.G1Params)
	require.True(t, curve.Equality(&sumInf, &g).Declassify())
}

func TestCCopyAndCNeg(t *testing.T) {
	p := randomG1(5)
	q := randomG1(9999)

	var dstFalse, dstTrue bn254.G1Point
	dstFalse = p
	dstTrue = p
	curve.CCopy(&dstFalse, &q, secretBoolFrom(false))
	curve.CCopy(&dstTrue, &q, secretBoolFrom(true))

	require.True(t, curve.Equality(&dstFalse, &p).Declassify())
	require.True(t, curve.Equality(&dstTrue, &q).Declassify())

	negP := p
	curve.CNeg(&negP, secretBoolFrom(true))
	var expectedNeg bn254.G1Point
	curve.Neg(&expectedNeg, &p)
	require.True(t, curve.Equality(&negP, &expectedNeg).Declassify())
}
