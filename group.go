// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// Group carries the short-Weierstrass curve coefficients (a, b) of
// y^2 = x^3 + a*x + b. It is intentionally a small value type with no
// back-reference to the owning Secp256k1 context or field modulus, which
// would otherwise create a reference cycle; the modulus is carried by each
// FieldElement instead, which keeps Group copyable and comparable.
type Group struct {
	A *big.Int
	B *big.Int
}

// GetY computes a square root of x^3 + a*x + b mod p, i.e. one of the two
// y-coordinates a point with the given x-coordinate may have. The caller
// picks the branch it wants (even/odd, or quadratic-residue/non-residue) by
// calling FieldElement.Reflect on the result if needed.
func (g Group) GetY(x FieldElement) FieldElement {
	x3 := x.Mul(x).Mul(x)
	aFe := NewFieldElement(g.A, x.modulus)
	bFe := NewFieldElement(g.B, x.modulus)
	rhs := x3.Add(aFe.Mul(x)).Add(bFe)
	return rhs.Sqrt()
}

// satisfiesCurve reports whether y^2 == x^3 + a*x + b (mod p).
func (g Group) satisfiesCurve(x, y FieldElement) bool {
	lhs := y.Mul(y)
	x3 := x.Mul(x).Mul(x)
	aFe := NewFieldElement(g.A, x.modulus)
	bFe := NewFieldElement(g.B, x.modulus)
	rhs := x3.Add(aFe.Mul(x)).Add(bFe)
	return lhs.Equal(rhs)
}
