// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"fmt"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"

	"github.com/kryptlab/secp256k1"
)

// SignatureSize is the length in bytes of a serialized Schnorr signature:
// a 32-byte Rx followed by a 32-byte s.
const SignatureSize = 64

// Signature is a Schnorr signature: the x-coordinate of the signing nonce's
// public point R, together with the scalar s = k + e*d mod n.
type Signature struct {
	rx secp256k1.Scalar
	s  secp256k1.Scalar
}

// NewSignature builds a Signature from raw rx/s byte slices, left-padding
// each to 32 bytes.
func NewSignature(rx, s []byte) *Signature {
	return &Signature{rx: secp256k1.NewScalar(rx), s: secp256k1.NewScalar(s)}
}

// RX returns the R.x component.
func (sig *Signature) RX() secp256k1.Scalar { return sig.rx }

// S returns the s component.
func (sig *Signature) S() secp256k1.Scalar { return sig.s }

// IsEqual reports whether sig and other carry identical rx and s.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.rx == other.rx && sig.s == other.s
}

// Serialize returns the raw 64-byte rx||s encoding.
func (sig *Signature) Serialize() [SignatureSize]byte {
	var out [SignatureSize]byte
	copy(out[:32], sig.rx[:])
	copy(out[32:], sig.s[:])
	return out
}

// ParseSignature parses a raw 64-byte rx||s encoding, rejecting values with
// rx >= p or s >= n.
func ParseSignature(ser []byte) (*Signature, error) {
	if len(ser) != SignatureSize {
		return nil, newError(ErrSigInvalidLen,
			fmt.Sprintf("schnorr signature must be %d bytes, got %d", SignatureSize, len(ser)))
	}

	ctx := secp256k1.Params()
	rx := new(big.Int).SetBytes(ser[:32])
	if rx.Cmp(ctx.Modulo()) >= 0 {
		return nil, newError(ErrSigRTooBig, "malformed signature: R.x >= field prime")
	}
	s := new(big.Int).SetBytes(ser[32:])
	if s.Cmp(ctx.Order()) >= 0 {
		return nil, newError(ErrSigSTooBig, "malformed signature: s >= group order")
	}

	return &Signature{rx: secp256k1.NewScalar(ser[:32]), s: secp256k1.NewScalar(ser[32:])}, nil
}

// TaggedHash implements the tagged-hash construction
// SHA256(SHA256(tag) || SHA256(tag) || msg), the domain-separation primitive
// used elsewhere for address- and script-related hashing. It is exported
// independently of the challenge hash below, which deliberately does not use
// it; see this package's doc comment.
func TaggedHash(tag string, msg []byte) [32]byte {
	tagHash := sha256simd.Sum256([]byte(tag))
	h := sha256simd.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	h.Write(msg)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// deterministicNonce derives k = SHA256(d || m) mod n, where d is the
// signer's 32-byte private scalar and m is the message (or prehashed
// digest). Unlike the root package's RFC-6979 ECDSA nonce, this is a single
// unstirred hash with no retry DRBG; a zero result is rejected outright
// rather than regenerated, since it would require re-deriving from a
// different input the construction doesn't define.
func deterministicNonce(priv *secp256k1.PrivateKey, msg []byte) (*big.Int, error) {
	order := secp256k1.Params().Order()
	h := sha256simd.New()
	h.Write(priv.Serialize())
	h.Write(msg)
	digest := h.Sum(nil)

	k := new(big.Int).SetBytes(digest)
	k.Mod(k, order)
	if k.Sign() == 0 {
		return nil, newError(ErrNonceIsZero, "deterministic nonce reduced to zero")
	}
	return k, nil
}

// Challenge computes e = SHA256(Rx || P_compressed || m) mod n. This is a
// plain SHA-256 hash, not BIP-340's tagged challenge hash; see this
// package's doc comment for why. It is exported so the musig subpackage can
// compute the identical challenge against an aggregate nonce and aggregate
// public key.
func Challenge(rx [32]byte, pubCompressed [33]byte, msg []byte) *big.Int {
	order := secp256k1.Params().Order()
	h := sha256simd.New()
	h.Write(rx[:])
	h.Write(pubCompressed[:])
	h.Write(msg)
	digest := h.Sum(nil)

	e := new(big.Int).SetBytes(digest)
	e.Mod(e, order)
	return e
}

// hashMessage returns SHA-256(msg) when toHash is set, otherwise msg
// unmodified after checking it is already exactly 32 bytes.
func hashMessage(msg []byte, toHash bool) []byte {
	if toHash {
		digest := sha256simd.Sum256(msg)
		return digest[:]
	}
	if len(msg) != 32 {
		panic("schnorr: prehashed message must be exactly 32 bytes")
	}
	return msg
}

// Sign produces a Schnorr signature over msg (or, if toHash is false, over
// msg treated as an already-computed 32-byte digest) using this package's
// deterministic nonce and plain-SHA-256 challenge.
//
// The nonce point R is flipped (k -> n-k) whenever its y-coordinate is not a
// quadratic residue mod p, per the Jacobi-symbol parity convention this
// package uses in place of BIP-340's explicit y-oddness check.
func Sign(priv *secp256k1.PrivateKey, msg []byte, toHash bool) (*Signature, error) {
	ctx := secp256k1.Params()
	order := ctx.Order()
	digest := hashMessage(msg, toHash)

	k, err := deterministicNonce(priv, digest)
	if err != nil {
		return nil, err
	}

	r := ctx.Generator().ScalarMult(k)
	rPub := secp256k1.NewPublicKey(r)
	if !rPub.IsSquareY() {
		k.Sub(order, k)
		r = ctx.Generator().ScalarMult(k)
	}

	rx := r.X.Bytes32()
	pub := priv.PubKey()
	e := Challenge(rx, pub.Compressed(), digest)

	d := new(big.Int).SetBytes(priv.Serialize())
	s := new(big.Int).Mul(e, d)
	s.Add(s, k)
	s.Mod(s, order)

	return &Signature{rx: secp256k1.NewScalar(rx[:]), s: secp256k1.NewScalar(s.Bytes())}, nil
}

// Verify reports whether sig is a valid Schnorr signature over msg by pub:
// it recomputes R' = s*G - e*P and accepts only if R' is not infinity, its
// y-coordinate is a quadratic residue mod p, and its x-coordinate matches
// sig's Rx.
func Verify(pub *secp256k1.PublicKey, msg []byte, sig *Signature, toHash bool) bool {
	ctx := secp256k1.Params()
	order := ctx.Order()
	digest := hashMessage(msg, toHash)

	e := Challenge([32]byte(sig.rx), pub.Compressed(), digest)

	sVal := new(big.Int).SetBytes(sig.s[:])
	if sVal.Cmp(order) >= 0 {
		return false
	}

	sG := ctx.Generator().ScalarMult(sVal)
	eP := pub.Point().ScalarMult(e).Negate()
	rPrime := sG.Add(eP)
	if rPrime.IsOnInfinity() {
		return false
	}

	rPrimePub := secp256k1.NewPublicKey(rPrime)
	if !rPrimePub.IsSquareY() {
		return false
	}

	rxWant := new(big.Int).SetBytes(sig.rx[:])
	return rPrime.X.Int().Cmp(rxWant) == 0
}
