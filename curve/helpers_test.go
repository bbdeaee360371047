package curve_test

import (
	"github.com/zacksfF/towercurve/bn254"
	"github.com/zacksfF/towercurve/curveparams"
	"github.com/zacksfF/towercurve/field"
	"github.com/zacksfF/towercurve/field/fp"
)

func bn254ElementFromUint64(v uint64) bn254.Fp {
	return fp.FromUint64[curveparams.BN254Modulus](v)
}

func secretBoolFrom(b bool) field.SecretBool {
	return field.NewSecretBool(b)
}
