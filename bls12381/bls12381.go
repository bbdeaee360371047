// Package bls12381 instantiates the generic tower and point engines for
// BLS12-381: Fp2, Fp6, and complete G1/G2 point arithmetic, with
// BLS12-381's M-twist wired into the shared curve.Sum/Madd/Double
// implementations.
package bls12381

import (
	"github.com/zacksfF/towercurve/curve"
	"github.com/zacksfF/towercurve/curveparams"
	"github.com/zacksfF/towercurve/field/fp"
	"github.com/zacksfF/towercurve/field/fp2"
	"github.com/zacksfF/towercurve/field/fp6"
)

type (
	Fp  = fp.Element[curveparams.BLS12381Modulus]
	Fp2 = fp2.Element[Fp]
	Fp6 = fp6.Element[Fp2]
)

type (
	G1Point  = curve.Point[Fp]
	G2Point  = curve.Point[Fp2]
	G1Affine = curve.Affine[Fp]
	G2Affine = curve.Affine[Fp2]
)

var g1B = fp.FromBigInt[curveparams.BLS12381Modulus](curveparams.BLS12381B())

// G1Params carries G1's curve constant; G1 lives directly over Fp, so no
// twist adjustment ever applies.
var G1Params = &curve.Params[Fp]{
	B:     g1B,
	Twist: curve.NoTwist,
}

// G2Params carries G2's curve constant embedded in Fp2 and BLS12-381's
// M-twist kind.
var G2Params = &curve.Params[Fp2]{
	B:     fp2.New[Fp](g1B, g1B.Zero()),
	Twist: curve.MTwist,
	NonResidueMul: func(x Fp2) Fp2 {
		return x.MulByNonResidue()
	},
}

// G1Generator returns BLS12-381's standard G1 base point.
func G1Generator() G1Point {
	x, y := curveparams.BLS12381G1()
	var p G1Point
	a := G1Affine{
		X: fp.FromBigInt[curveparams.BLS12381Modulus](x),
		Y: fp.FromBigInt[curveparams.BLS12381Modulus](y),
	}
	curve.FromAffine(&p, &a)
	return p
}

// G2Generator returns BLS12-381's standard G2 base point.
func G2Generator() G2Point {
	x0, x1, y0, y1 := curveparams.BLS12381G2()
	var p G2Point
	a := G2Affine{
		X: fp2.New[Fp](
			fp.FromBigInt[curveparams.BLS12381Modulus](x0),
			fp.FromBigInt[curveparams.BLS12381Modulus](x1),
		),
		Y: fp2.New[Fp](
			fp.FromBigInt[curveparams.BLS12381Modulus](y0),
			fp.FromBigInt[curveparams.BLS12381Modulus](y1),
		),
	}
	curve.FromAffine(&p, &a)
	return p
}
