// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// Point is an affine point on the curve y^2 = x^3 + a*x + b, or the
// distinguished point at infinity when both coordinates carry the infinity
// marker. Point is a value type: every arithmetic method returns a fresh
// Point rather than mutating the receiver. Go has no operator overloading,
// so the named methods Add/Double/ScalarMult stand in for it directly.
type Point struct {
	X     FieldElement
	Y     FieldElement
	Group Group
}

// IsOnInfinity reports whether p is the point at infinity.
func (p Point) IsOnInfinity() bool {
	return p.X.IsInfinity() && p.Y.IsInfinity()
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + a*x + b (mod p), or is
// the point at infinity.
func (p Point) IsOnCurve() bool {
	if p.IsOnInfinity() {
		return true
	}
	return p.Group.satisfiesCurve(p.X, p.Y)
}

// Negate returns the additive inverse of p, i.e. (x, -y).
func (p Point) Negate() Point {
	if p.IsOnInfinity() {
		return p
	}
	return Point{X: p.X, Y: p.Y.Negate(), Group: p.Group}
}

// Add implements the standard short Weierstrass group law:
//  1. either operand at infinity -> the other operand.
//  2. equal x, opposite y -> infinity (mutual inverses).
//  3. equal points -> doubling.
//  4. otherwise -> the general chord-and-tangent addition formula.
func (p Point) Add(q Point) Point {
	if p.IsOnInfinity() {
		return q
	}
	if q.IsOnInfinity() {
		return p
	}
	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y) {
			return p.Double()
		}
		// x1 == x2, y1 == -y2: mutual inverses, sum is infinity.
		return Point{
			X:     InfinityFieldElement(p.X.modulus),
			Y:     InfinityFieldElement(p.X.modulus),
			Group: p.Group,
		}
	}

	// lambda = (y2 - y1) / (x2 - x1)
	lambda := q.Y.Sub(p.Y).Div(q.X.Sub(p.X))
	x3 := lambda.Mul(lambda).Sub(p.X).Sub(q.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return Point{X: x3, Y: y3, Group: p.Group}
}

// Double returns p + p using the tangent-line doubling formula.
func (p Point) Double() Point {
	if p.IsOnInfinity() || p.Y.IsZero() {
		return Point{
			X:     InfinityFieldElement(p.X.modulus),
			Y:     InfinityFieldElement(p.X.modulus),
			Group: p.Group,
		}
	}

	// lambda = (3*x^2 + a) / (2*y)
	aFe := NewFieldElement(p.Group.A, p.X.modulus)
	three := p.X.Mul(p.X).MulInt(3).Add(aFe)
	twoY := p.Y.MulInt(2)
	lambda := three.Div(twoY)
	x3 := lambda.Mul(lambda).Sub(p.X).Sub(p.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return Point{X: x3, Y: y3, Group: p.Group}
}

// ScalarMult computes k*p using classical binary double-and-add. A
// constant-time ladder is preferable for operations on secret scalars;
// this implementation is not constant-time.
func (p Point) ScalarMult(k *big.Int) Point {
	result := Point{
		X:     InfinityFieldElement(p.X.modulus),
		Y:     InfinityFieldElement(p.X.modulus),
		Group: p.Group,
	}
	if k.Sign() == 0 {
		return result
	}

	k = new(big.Int).Mod(k, curveOrderForScalarReduction(p))
	addend := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = result.Add(addend)
		}
		addend = addend.Double()
	}
	return result
}

// curveOrderForScalarReduction is a small seam so ScalarMult can reduce its
// exponent modulo the group order without importing the domain context
// directly into point arithmetic. Points constructed by this package always
// carry the secp256k1 coordinate field, so the order is looked up from the
// process-wide context.
func curveOrderForScalarReduction(p Point) *big.Int {
	return getContext().order
}
