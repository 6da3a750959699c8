// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"

	sha256simd "github.com/minio/sha256-simd"
)

// hashMessage returns SHA-256(msg) when toHash is set, otherwise it returns
// msg unmodified after checking it is already exactly 32 bytes, matching
// ECDSA's usual "caller may pass a prehashed digest" convention.
func hashMessage(msg []byte, toHash bool) [32]byte {
	if toHash {
		return sha256simd.Sum256(msg)
	}
	if len(msg) != 32 {
		panic("secp256k1: prehashed message must be exactly 32 bytes")
	}
	var out [32]byte
	copy(out[:], msg)
	return out
}

// Sign produces a deterministic ECDSA signature over msg (or, if toHash is
// false, over msg treated as an already-computed 32-byte digest) using the
// RFC 6979 deterministic nonce derivation and low-s normalization.
func (priv *PrivateKey) Sign(msg []byte, toHash bool) *Signature {
	order := getContext().order
	digest := hashMessage(msg, toHash)
	z := new(big.Int).SetBytes(digest[:])
	z.Mod(z, order)

	drbg := newHMACDRBG(priv.Serialize(), digest[:])
	for {
		k := nextValidNonce(drbg, order)
		sig, ok := signWithNonce(priv.scalar, k, z, order)
		if ok {
			return sig
		}
		// r == 0 or s == 0: retry with the next nonce in the DRBG stream,
		// per RFC 6979 §3.2 step h.3, so stir and pull again from the same
		// generator.
		drbg.Reseed()
	}
}

// signWithNonce computes R = k*G, r = R.x mod n, s = (z + r*d)/k mod n,
// normalizes s to the low half of the group order, and reports whether both
// r and s came out nonzero.
func signWithNonce(d, k, z, order *big.Int) (*Signature, bool) {
	ctx := getContext()
	r := ctx.generator.ScalarMult(k)
	rVal := new(big.Int).Mod(r.X.Int(), order)
	if rVal.Sign() == 0 {
		return nil, false
	}

	kInv := new(big.Int).ModInverse(k, order)
	if kInv == nil {
		return nil, false
	}
	s := new(big.Int).Mul(rVal, d)
	s.Add(s, z)
	s.Mul(s, kInv)
	s.Mod(s, order)

	half := new(big.Int).Rsh(order, 1)
	if s.Cmp(half) > 0 {
		s.Sub(order, s)
	}
	if s.Sign() == 0 {
		return nil, false
	}

	return &Signature{r: NewScalar(rVal.Bytes()), s: NewScalar(s.Bytes())}, true
}

// Verify reports whether sig is a valid ECDSA signature over msg by pub.
func (pub *PublicKey) Verify(msg []byte, sig *Signature, toHash bool) bool {
	order := getContext().order
	rVal := new(big.Int).SetBytes(sig.r[:])
	sVal := new(big.Int).SetBytes(sig.s[:])

	nMinus1 := new(big.Int).Sub(order, big.NewInt(1))
	if rVal.Sign() <= 0 || rVal.Cmp(nMinus1) > 0 {
		return false
	}
	if sVal.Sign() <= 0 || sVal.Cmp(nMinus1) > 0 {
		return false
	}

	digest := hashMessage(msg, toHash)
	z := new(big.Int).SetBytes(digest[:])
	z.Mod(z, order)

	sInv := new(big.Int).ModInverse(sVal, order)
	if sInv == nil {
		return false
	}
	u1 := new(big.Int).Mul(z, sInv)
	u1.Mod(u1, order)
	u2 := new(big.Int).Mul(rVal, sInv)
	u2.Mod(u2, order)

	ctx := getContext()
	p := ctx.generator.ScalarMult(u1).Add(pub.point.ScalarMult(u2))
	if p.IsOnInfinity() {
		return false
	}

	px := new(big.Int).Mod(p.X.Int(), order)
	return px.Cmp(rVal) == 0
}
