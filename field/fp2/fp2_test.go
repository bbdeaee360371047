package fp2_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/zacksfF/towercurve/curveparams"
	"github.com/zacksfF/towercurve/field/fp"
	"github.com/zacksfF/towercurve/field/fp2"
)

type baseFp = fp.Element[curveparams.BN254Modulus]
type element = fp2.Element[baseFp]

const splitter = 0x9E3779B97F4A7C15

func fromSeed(seed uint64) element {
	a0 := fp.FromUint64[curveparams.BN254Modulus](seed)
	a1 := fp.FromUint64[curveparams.BN254Modulus](seed ^ splitter)
	return fp2.New[baseFp](a0, a1)
}

func genElement() gopter.Gen {
	return gen.UInt64().Map(fromSeed)
}

func TestRingAxioms(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("addition commutes", prop.ForAll(
		func(a, b element) bool { return a.Add(b).Equal(b.Add(a)).Declassify() },
		genElement(), genElement(),
	))

	properties.Property("addition associates", prop.ForAll(
		func(a, b, c element) bool {
			return a.Add(b).Add(c).Equal(a.Add(b.Add(c))).Declassify()
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("multiplication commutes", prop.ForAll(
		func(a, b element) bool { return a.Mul(b).Equal(b.Mul(a)).Declassify() },
		genElement(), genElement(),
	))

	properties.Property("multiplication associates", prop.ForAll(
		func(a, b, c element) bool {
			return a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))).Declassify()
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("distributes over addition", prop.ForAll(
		func(a, b, c element) bool {
			return a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))).Declassify()
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("square matches self-multiplication", prop.ForAll(
		func(a element) bool { return a.Square().Equal(a.Mul(a)).Declassify() },
		genElement(),
	))

	properties.Property("identities", prop.ForAll(
		func(a element) bool {
			zero := a.Zero()
			one := a.One()
			return a.Add(zero).Equal(a).Declassify() &&
				a.Mul(one).Equal(a).Declassify() &&
				a.Mul(zero).Equal(zero).Declassify()
		},
		genElement(),
	))

	properties.Property("nonzero a * inv(a) = 1", prop.ForAll(
		func(seed uint64) bool {
			a := fromSeed(seed + 1)
			if a.IsZero().Declassify() {
				return true
			}
			inv := a.Inverse()
			one := a.One()
			return a.Mul(inv).Equal(one).Declassify() && inv.Mul(a).Equal(one).Declassify()
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestMulByNonResidueMatchesMulByOnePlusI(t *testing.T) {
	a := fromSeed(123456789)
	// (a0 - a1) + (a0 + a1)i must equal a * (1+i).
	one := a.One()
	i := element{A0: one.A0.Zero(), A1: one.A0.One()}
	xi := one.Add(i)
	require.True(t, a.MulByNonResidue().Equal(a.Mul(xi)).Declassify())
}

func TestConjAndNorm(t *testing.T) {
	a := fromSeed(777)
	norm := a.Mul(a.Conj())
	// a * conj(a) has zero imaginary part: norm.A1 == 0.
	require.True(t, norm.A1.IsZero().Declassify())
}

func TestSqrtIfSquare(t *testing.T) {
	a := fromSeed(42)
	square := a.Square()
	root, ok := square.SqrtIfSquare()
	require.True(t, ok.Declassify())
	require.True(t, root.Square().Equal(square).Declassify())
}
