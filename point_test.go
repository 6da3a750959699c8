// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"
	"testing"
)

func TestGeneratorIsOnCurve(t *testing.T) {
	g := getContext().generator
	if !g.IsOnCurve() {
		t.Fatal("generator point does not satisfy the curve equation")
	}
}

func TestPointAddCommutative(t *testing.T) {
	ctx := getContext()
	p := ctx.generator.ScalarMult(big.NewInt(7))
	q := ctx.generator.ScalarMult(big.NewInt(11))

	pq := p.Add(q)
	qp := q.Add(p)
	if !pq.X.Equal(qp.X) || !pq.Y.Equal(qp.Y) {
		t.Fatal("P+Q != Q+P")
	}
}

func TestPointAddInverseIsInfinity(t *testing.T) {
	ctx := getContext()
	p := ctx.generator.ScalarMult(big.NewInt(13))
	sum := p.Add(p.Negate())
	if !sum.IsOnInfinity() {
		t.Fatal("P + (-P) != infinity")
	}
}

func TestPointAddInfinityIdentity(t *testing.T) {
	ctx := getContext()
	p := ctx.generator.ScalarMult(big.NewInt(17))
	inf := Point{
		X:     InfinityFieldElement(ctx.modulo),
		Y:     InfinityFieldElement(ctx.modulo),
		Group: ctx.generator.Group,
	}

	if !p.Add(inf).X.Equal(p.X) {
		t.Fatal("P + infinity != P")
	}
	if !inf.Add(p).X.Equal(p.X) {
		t.Fatal("infinity + P != P")
	}
}

func TestScalarMultDistributesOverAddition(t *testing.T) {
	ctx := getContext()
	a := big.NewInt(19)
	b := big.NewInt(23)
	sum := new(big.Int).Add(a, b)

	lhs := ctx.generator.ScalarMult(sum)
	rhs := ctx.generator.ScalarMult(a).Add(ctx.generator.ScalarMult(b))

	if !lhs.X.Equal(rhs.X) || !lhs.Y.Equal(rhs.Y) {
		t.Fatal("(a+b)*P != a*P + b*P")
	}
}

func TestScalarMultByZeroIsInfinity(t *testing.T) {
	ctx := getContext()
	p := ctx.generator.ScalarMult(big.NewInt(0))
	if !p.IsOnInfinity() {
		t.Fatal("0*P != infinity")
	}
}

func TestDoubleMatchesAddToSelf(t *testing.T) {
	ctx := getContext()
	p := ctx.generator.ScalarMult(big.NewInt(29))
	doubled := p.Double()
	added := p.Add(p)
	if !doubled.X.Equal(added.X) || !doubled.Y.Equal(added.Y) {
		t.Fatal("Double() != Add(self)")
	}
}

func TestGetYRecoversCurvePoint(t *testing.T) {
	ctx := getContext()
	p := ctx.generator.ScalarMult(big.NewInt(31))

	y := ctx.generator.Group.GetY(p.X)
	if !y.Equal(p.Y) {
		y.Reflect()
		if !y.Equal(p.Y) {
			t.Fatal("neither root returned by GetY matches the known point's y")
		}
	}
}

func TestPointOnCurveAfterArithmetic(t *testing.T) {
	ctx := getContext()
	p := ctx.generator.ScalarMult(big.NewInt(101)).Add(ctx.generator.ScalarMult(big.NewInt(202)))
	if !p.IsOnCurve() {
		t.Fatal("sum of two curve points is not on the curve")
	}
}
