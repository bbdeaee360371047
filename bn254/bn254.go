// Package bn254 instantiates the generic tower and point engines for the
// BN254 curve (Ethereum's alt_bn128): Fp2, Fp6, and complete G1/G2
// point arithmetic, with BN254's D-twist wired into the shared
// curve.Sum/Madd/Double implementations.
package bn254

import (
	"github.com/zacksfF/towercurve/curve"
	"github.com/zacksfF/towercurve/curveparams"
	"github.com/zacksfF/towercurve/field/fp"
	"github.com/zacksfF/towercurve/field/fp2"
	"github.com/zacksfF/towercurve/field/fp6"
)

// Fp, Fp2 and Fp6 are BN254's tower of field types.
type (
	Fp  = fp.Element[curveparams.BN254Modulus]
	Fp2 = fp2.Element[Fp]
	Fp6 = fp6.Element[Fp2]
)

// G1Point and G2Point are BN254's projective point types.
type (
	G1Point  = curve.Point[Fp]
	G2Point  = curve.Point[Fp2]
	G1Affine = curve.Affine[Fp]
	G2Affine = curve.Affine[Fp2]
)

var g1B = fp.FromBigInt[curveparams.BN254Modulus](curveparams.BN254B())

// G1Params carries G1's curve constant (a = 0 implicit); G1 lives
// directly over Fp, so no twist adjustment ever applies.
var G1Params = &curve.Params[Fp]{
	B:     g1B,
	Twist: curve.NoTwist,
}

// G2Params carries G2's curve constant embedded in Fp2, BN254's D-twist
// kind, and the ξ = 1+i multiplication the twisted formulas call for.
var G2Params = &curve.Params[Fp2]{
	B:     fp2.New[Fp](g1B, g1B.Zero()),
	Twist: curve.DTwist,
	NonResidueMul: func(x Fp2) Fp2 {
		return x.MulByNonResidue()
	},
}

// G1Generator returns BN254's standard G1 base point.
func G1Generator() G1Point {
	x, y := curveparams.BN254G1()
	var p G1Point
	a := G1Affine{
		X: fp.FromBigInt[curveparams.BN254Modulus](x),
		Y: fp.FromBigInt[curveparams.BN254Modulus](y),
	}
	curve.FromAffine(&p, &a)
	return p
}

// g2DerivationParams checks membership against EffectiveB(G2Params)
// (b/ξ for this D-twist), the equation G2 points actually satisfy, rather
// than G2Params.B (the untwisted b stored there for Sum/Madd/Double's own
// use — see Params' doc comment).
var g2DerivationParams = &curve.Params[Fp2]{B: curve.EffectiveB(G2Params)}

// G2Generator returns a representative BN254 G2 point, derived with
// TrySetFromX rather than pinned: BN254's well-known G2 base point is only
// a curve point under the real ξ = 9+i, not the ξ = 1+i this module's
// tower fixes, so reusing it here would silently hand callers a point off
// the curve G2Params actually describes.
func G2Generator() G2Point {
	x := fp.FromUint64[curveparams.BN254Modulus](0)
	for {
		xe := fp2.New[Fp](x, x.Zero())
		var p G2Point
		if curve.TrySetFromX[Fp2](&p, g2DerivationParams, xe).Declassify() {
			return p
		}
		x = x.Add(x.One())
	}
}
