// Package bls12377 instantiates the generic tower and point engines for
// BLS12-377: Fp2, Fp6, and complete G1/G2 point arithmetic, with
// BLS12-377's D-twist wired into the shared curve.Sum/Madd/Double
// implementations.
//
// Unlike bn254 and bls12381, this package does not expose a standard
// generator: curveparams does not pin BLS12-377's generator coordinates
// (see the note at the end of curveparams/bls12377.go), and the engine this
// core provides never needs a canonical base point. Tests derive a
// representative point with curve.TrySetFromX instead.
package bls12377

import (
	"github.com/zacksfF/towercurve/curve"
	"github.com/zacksfF/towercurve/curveparams"
	"github.com/zacksfF/towercurve/field/fp"
	"github.com/zacksfF/towercurve/field/fp2"
	"github.com/zacksfF/towercurve/field/fp6"
)

type (
	Fp  = fp.Element[curveparams.BLS12377Modulus]
	Fp2 = fp2.Element[Fp]
	Fp6 = fp6.Element[Fp2]
)

type (
	G1Point  = curve.Point[Fp]
	G2Point  = curve.Point[Fp2]
	G1Affine = curve.Affine[Fp]
	G2Affine = curve.Affine[Fp2]
)

var g1B = fp.FromBigInt[curveparams.BLS12377Modulus](curveparams.BLS12377B())

var G1Params = &curve.Params[Fp]{
	B:     g1B,
	Twist: curve.NoTwist,
}

var G2Params = &curve.Params[Fp2]{
	B:     fp2.New[Fp](g1B, g1B.Zero()),
	Twist: curve.DTwist,
	NonResidueMul: func(x Fp2) Fp2 {
		return x.MulByNonResidue()
	},
}
