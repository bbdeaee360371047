package curve

import "github.com/zacksfF/towercurve/field"

// BatchToAffine normalises every point in p into the corresponding slot
// of a using Montgomery's batched-inversion trick: one field inversion
// plus 3(N-1) multiplications for the shared inverse, and two more per
// entry to scale X and Y, regardless of how many entries are infinity. Infinity entries are substituted with 1 in the running
// product so they cannot taint the shared inverse, and their affine
// output is forced to the sentinel (0, 0) rather than left
// uninitialised.
//
// len(a) must equal len(p); a[i] is overwritten for every i, including
// the scratch use of a[i].X to hold the running product before the
// final pass replaces it with the real coordinate.
func BatchToAffine[F field.Ring[F]](a []Affine[F], p []Point[F]) {
	n := len(p)
	if n == 0 {
		return
	}

	isZero := make([]field.SecretBool, n)

	isZero[0] = IsInfinity(&p[0])
	a[0].X = p[0].Z.CCopy(isZero[0], p[0].Z.One())
	for i := 1; i < n; i++ {
		isZero[i] = IsInfinity(&p[i])
		factor := p[i].Z.CCopy(isZero[i], p[i].Z.One())
		a[i].X = a[i-1].X.Mul(factor)
	}

	accInv := a[n-1].X.Inverse()

	for i := n - 1; i > 0; i-- {
		inv := accInv.Mul(a[i-1].X)
		inv = field.CSetZero[F](inv, isZero[i])

		a[i].X = p[i].X.Mul(inv)
		a[i].Y = p[i].Y.Mul(inv)

		factor := p[i].Z.CCopy(isZero[i], p[i].Z.One())
		accInv = accInv.Mul(factor)
	}

	inv0 := field.CSetZero[F](accInv, isZero[0])
	a[0].X = p[0].X.Mul(inv0)
	a[0].Y = p[0].Y.Mul(inv0)
}
