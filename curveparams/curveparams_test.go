package curveparams_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zacksfF/towercurve/curveparams"
)

func TestRegisteredCurves(t *testing.T) {
	require.True(t, curveparams.Registered(curveparams.BN254))
	require.True(t, curveparams.Registered(curveparams.BLS12377))
	require.True(t, curveparams.Registered(curveparams.BLS12381))

	require.False(t, curveparams.Registered(curveparams.BN446))
	require.False(t, curveparams.Registered(curveparams.FKM12447))
	require.False(t, curveparams.Registered(curveparams.BLS12461))
	require.False(t, curveparams.Registered(curveparams.BN462))
}

func TestAllListsEveryCurve(t *testing.T) {
	require.Len(t, curveparams.All(), 7)
}

func TestStringNames(t *testing.T) {
	require.Equal(t, "BN254", curveparams.BN254.String())
	require.Equal(t, "BLS12-381", curveparams.BLS12381.String())
	require.Equal(t, "BN462", curveparams.BN462.String())
}

func TestModuliAreOdd(t *testing.T) {
	require.True(t, curveparams.BN254Modulus{}.P().Bit(0) == 1)
	require.True(t, curveparams.BLS12381Modulus{}.P().Bit(0) == 1)
	require.True(t, curveparams.BLS12377Modulus{}.P().Bit(0) == 1)
	require.True(t, curveparams.BN446Modulus{}.P().Bit(0) == 1)
	require.True(t, curveparams.FKM12447Modulus{}.P().Bit(0) == 1)
	require.True(t, curveparams.BLS12461Modulus{}.P().Bit(0) == 1)
	require.True(t, curveparams.BN462Modulus{}.P().Bit(0) == 1)
}
