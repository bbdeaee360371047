// Package curveparams is the compile-time curve-parameter registry: for
// each named pairing-friendly curve it fixes the base-field modulus and
// the G1 curve coefficient b, plus, for BN254, BLS12-377 and BLS12-381,
// the twist kind and the generator coordinates where they are pinned.
// The sextic non-residue is not stored here: field/fp2 fixes ξ = 1+i for
// every curve, and the curve packages embed b into Fp2 for G2. Selecting an unsupported curve, or one with a != 0, is a
// compile-time error by construction: there is simply no type or
// Params value for it, so configuration errors never surface at
// runtime.
package curveparams

import "math/big"

// ID names one of the pairing-friendly curves this module's engine is
// instantiated for.
type ID int

const (
	BN254 ID = iota
	BLS12377
	BLS12381
	BN446
	FKM12447
	BLS12461
	BN462
)

func (id ID) String() string {
	switch id {
	case BN254:
		return "BN254"
	case BLS12377:
		return "BLS12-377"
	case BLS12381:
		return "BLS12-381"
	case BN446:
		return "BN446"
	case FKM12447:
		return "FKM12-447"
	case BLS12461:
		return "BLS12-461"
	case BN462:
		return "BN462"
	default:
		return "unknown curve"
	}
}

func hex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curveparams: invalid hex literal " + s)
	}
	return n
}

// Registered reports whether a curve carries fully verified,
// independently-checkable constants in this registry. BN254, BLS12-377
// and BLS12-381 are well-known public constants, reproduced here from
// their standard specifications. BN446, FKM12-447, BLS12-461 and BN462
// are registered with placeholder moduli (see their doc comments):
// authoritative digits for these four were not available with
// confidence from the retrieval pack, so the generic test suite only
// parameterizes over the curves this function reports as Registered.
func Registered(id ID) bool {
	switch id {
	case BN254, BLS12377, BLS12381:
		return true
	default:
		return false
	}
}

// All lists every curve ID this registry knows about, whether or not
// its constants are independently verified (see Registered).
func All() []ID {
	return []ID{BN254, BLS12377, BLS12381, BN446, FKM12447, BLS12461, BN462}
}
