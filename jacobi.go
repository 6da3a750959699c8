// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// Jacobi is the result of a Jacobi symbol computation: the argument is a
// nonzero quadratic residue (One), a nonzero quadratic non-residue
// (MinusOne), or congruent to zero (Zero).
type Jacobi int

const (
	// JacobiZero indicates the argument is congruent to 0 modulo n.
	JacobiZero Jacobi = 0
	// JacobiOne indicates the argument is a nonzero quadratic residue mod n.
	JacobiOne Jacobi = 1
	// JacobiMinusOne indicates the argument is a nonzero quadratic
	// non-residue mod n.
	JacobiMinusOne Jacobi = -1
)

// JacobiSymbol computes the Jacobi symbol (a/n) using the standard
// quadratic-reciprocity iteration. n must be odd and positive; secp256k1's
// field prime p satisfies both.
func JacobiSymbol(a, n *big.Int) Jacobi {
	if n.Sign() <= 0 || n.Bit(0) == 0 {
		panic("secp256k1: Jacobi symbol requires an odd positive modulus")
	}

	a = new(big.Int).Mod(a, n)
	n = new(big.Int).Set(n)
	result := 1

	two := big.NewInt(2)
	three := big.NewInt(3)
	four := big.NewInt(4)
	eight := big.NewInt(8)

	for a.Sign() != 0 {
		for a.Bit(0) == 0 {
			a.Div(a, two)
			nMod8 := new(big.Int).Mod(n, eight)
			if nMod8.Cmp(three) == 0 || nMod8.Cmp(big.NewInt(5)) == 0 {
				result = -result
			}
		}

		a, n = n, a

		aMod4 := new(big.Int).Mod(a, four)
		nMod4 := new(big.Int).Mod(n, four)
		if aMod4.Cmp(three) == 0 && nMod4.Cmp(three) == 0 {
			result = -result
		}

		a.Mod(a, n)
	}

	if n.Cmp(big.NewInt(1)) != 0 {
		return JacobiZero
	}
	if result == 1 {
		return JacobiOne
	}
	return JacobiMinusOne
}
