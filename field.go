// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// FieldElement is an element of a prime field Z/mZ, represented as a reduced
// non-negative big.Int together with the modulus it lives in. The same type
// backs both the curve's coordinate field (modulus p) and the scalar field
// used for signature components (modulus n); which one a given FieldElement
// belongs to is determined entirely by which Modulus it carries.
//
// A FieldElement may also represent the distinguished "infinity" marker used
// by Point to denote the identity of the group. Infinity carries no numeric
// value; IsInfinity, Int (which returns nil), IsZero, Equal and Modulus
// accept it, and every other method treats it as undefined input.
//
// FieldElement is a value type; every operation below returns a fresh
// FieldElement rather than mutating the receiver, with the sole exception of
// Reflect, which is an in-place negation.
type FieldElement struct {
	num      *big.Int
	modulus  *big.Int
	infinity bool
}

// NewFieldElement reduces num modulo mod and returns the resulting element.
// Negative inputs are accepted and reduced into [0, mod).
func NewFieldElement(num, mod *big.Int) FieldElement {
	n := new(big.Int).Mod(num, mod)
	return FieldElement{num: n, modulus: new(big.Int).Set(mod)}
}

// InfinityFieldElement returns the distinguished infinity marker for the
// given modulus. It is used as a coordinate of Point's identity element.
func InfinityFieldElement(mod *big.Int) FieldElement {
	return FieldElement{modulus: new(big.Int).Set(mod), infinity: true}
}

// FieldElementFromBytes parses a big-endian byte string and reduces it
// modulo mod.
func FieldElementFromBytes(b []byte, mod *big.Int) FieldElement {
	n := new(big.Int).SetBytes(b)
	return NewFieldElement(n, mod)
}

// IsInfinity reports whether fe is the infinity marker.
func (fe FieldElement) IsInfinity() bool {
	return fe.infinity
}

// Modulus returns the modulus fe was reduced against.
func (fe FieldElement) Modulus() *big.Int {
	return new(big.Int).Set(fe.modulus)
}

// Int returns a fresh copy of the reduced value as a big.Int, or nil for the
// infinity marker. The copy aliases no internal state, so the caller may
// modify it freely.
func (fe FieldElement) Int() *big.Int {
	if fe.infinity {
		return nil
	}
	return new(big.Int).Set(fe.num)
}

// sameField panics if a and b do not share a modulus; arithmetic between
// elements of the field and the scalar ring is a programmer error, not a
// runtime condition callers are expected to recover from.
func sameField(a, b FieldElement) {
	if a.modulus.Cmp(b.modulus) != 0 {
		panic("secp256k1: field element modulus mismatch")
	}
}

// Add returns fe + other (mod modulus).
func (fe FieldElement) Add(other FieldElement) FieldElement {
	sameField(fe, other)
	r := new(big.Int).Add(fe.num, other.num)
	return NewFieldElement(r, fe.modulus)
}

// Sub returns fe - other (mod modulus).
func (fe FieldElement) Sub(other FieldElement) FieldElement {
	sameField(fe, other)
	r := new(big.Int).Sub(fe.num, other.num)
	return NewFieldElement(r, fe.modulus)
}

// Mul returns fe * other (mod modulus).
func (fe FieldElement) Mul(other FieldElement) FieldElement {
	sameField(fe, other)
	r := new(big.Int).Mul(fe.num, other.num)
	return NewFieldElement(r, fe.modulus)
}

// MulInt returns fe * k (mod modulus) for a small integer multiplier.
func (fe FieldElement) MulInt(k int64) FieldElement {
	r := new(big.Int).Mul(fe.num, big.NewInt(k))
	return NewFieldElement(r, fe.modulus)
}

// Div returns fe / other (mod modulus), computed as fe * other^-1 via the
// extended-Euclidean inverse. It panics if other is zero: zero has no
// multiplicative inverse, and a caller dividing by zero has already
// violated a domain invariant upstream (e.g. an ECDSA nonce that collided
// to zero, which is caught and retried before Div is ever reached).
func (fe FieldElement) Div(other FieldElement) FieldElement {
	sameField(fe, other)
	inv := new(big.Int).ModInverse(other.num, other.modulus)
	if inv == nil {
		panic("secp256k1: division by zero field element")
	}
	r := new(big.Int).Mul(fe.num, inv)
	return NewFieldElement(r, fe.modulus)
}

// Sqrt returns pow(fe, (p+1)/4) mod p, which is a square root of fe whenever
// fe is a quadratic residue and the modulus is a prime congruent to 3 mod 4 —
// true for secp256k1's field prime. The caller is responsible for checking
// whether the returned root (or its negation) is the one actually wanted;
// this leaves the even/odd (or quadratic-residue) branch to the caller.
func (fe FieldElement) Sqrt() FieldElement {
	exp := new(big.Int).Add(fe.modulus, big.NewInt(1))
	exp.Rsh(exp, 2)
	r := new(big.Int).Exp(fe.num, exp, fe.modulus)
	return NewFieldElement(r, fe.modulus)
}

// IsEven reports whether the element's value has an even least-significant
// bit.
func (fe FieldElement) IsEven() bool {
	return fe.num.Bit(0) == 0
}

// IsZero reports whether the element is the additive identity.
func (fe FieldElement) IsZero() bool {
	return !fe.infinity && fe.num.Sign() == 0
}

// Negate returns -fe (mod modulus), i.e. modulus - num.
func (fe FieldElement) Negate() FieldElement {
	r := new(big.Int).Sub(fe.modulus, fe.num)
	return NewFieldElement(r, fe.modulus)
}

// Reflect replaces fe with its negation in place. Used to flip the parity
// of a Point's y-coordinate after decompression.
func (fe *FieldElement) Reflect() {
	*fe = fe.Negate()
}

// Equal reports whether fe and other carry the same modulus and value.
func (fe FieldElement) Equal(other FieldElement) bool {
	if fe.infinity != other.infinity {
		return false
	}
	if fe.infinity {
		return fe.modulus.Cmp(other.modulus) == 0
	}
	return fe.modulus.Cmp(other.modulus) == 0 && fe.num.Cmp(other.num) == 0
}

// Serialize returns the minimal-length big-endian encoding of fe's value,
// with no leading zero padding. Callers that need a fixed-width 32-byte
// encoding should use Bytes32 instead.
func (fe FieldElement) Serialize() []byte {
	return fe.num.Bytes()
}

// Bytes32 returns the value left-padded with zeros to 32 bytes, the
// canonical width for both field elements (mod p) and scalars (mod n) on
// secp256k1.
func (fe FieldElement) Bytes32() [32]byte {
	var out [32]byte
	b := fe.num.Bytes()
	copy(out[32-len(b):], b)
	return out
}
