package bls12377_test

import (
	"github.com/zacksfF/towercurve/bls12377"
	"github.com/zacksfF/towercurve/curve"
	"github.com/zacksfF/towercurve/curveparams"
	"github.com/zacksfF/towercurve/field/fp"
	"github.com/zacksfF/towercurve/field/fp2"
)

func fromUint64(v uint64) bls12377.Fp {
	return fp.FromUint64[curveparams.BLS12377Modulus](v)
}

// g2DerivationParams checks membership against EffectiveB(G2Params)
// (b/ξ for this D-twist), the equation G2 points actually satisfy, rather
// than G2Params.B (the untwisted b Sum/Madd/Double keep for themselves).
var g2DerivationParams = &curve.Params[bls12377.Fp2]{B: curve.EffectiveB(bls12377.G2Params)}

// randomG2 derives a representative BLS12-377 G2 point the same way
// randomG1 does, against the curve equation G2 actually satisfies.
func randomG2(seed uint64) bls12377.G2Point {
	for x := seed; ; x++ {
		xe := fp2.New[bls12377.Fp](fromUint64(x), fromUint64(x).Zero())
		var p bls12377.G2Point
		if curve.TrySetFromX[bls12377.Fp2](&p, g2DerivationParams, xe).Declassify() {
			return p
		}
	}
}
