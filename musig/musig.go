// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package musig implements a MuSig-style interactive multi-signature
// aggregation protocol over secp256k1: Wagner-delinearized key aggregation,
// nonce aggregation with parity fix-up, partial signing, and signature
// aggregation into a single Schnorr signature the schnorr subpackage can
// verify against the aggregate public key.
package musig

import (
	"math/big"
	"sort"

	sha256simd "github.com/minio/sha256-simd"

	"github.com/kryptlab/secp256k1"
	"github.com/kryptlab/secp256k1/schnorr"
)

// KeyAggregation is the result of aggregating a list of participant public
// keys: the per-participant delinearization challenge c_i alongside the
// contributing key (Challenges[i] belongs to Keys[i]), plus the resulting
// aggregate public key.
type KeyAggregation struct {
	Challenges []secp256k1.Scalar
	Keys       []*secp256k1.PublicKey
	Aggregate  *secp256k1.PublicKey
}

// AggregateKeys computes the MuSig aggregate of the given public keys:
//  1. sort the keys' x-coordinates lexicographically and concatenate them,
//  2. c_all = SHA256(concatenation),
//  3. c_i = SHA256(c_all || x(P_i)) for each key in its ORIGINAL order,
//  4. P_agg = sum(c_i * P_i).
//
// The sort in step 1 makes c_all independent of the order callers pass
// pubkeys in, which is what prevents a participant from picking their key to
// cancel out everyone else's (a rogue-key attack). Challenges is returned in
// the same order as the pubkeys argument, not the sorted order, so callers
// can zip it back against their own per-signer state.
func AggregateKeys(pubkeys []*secp256k1.PublicKey) (*KeyAggregation, error) {
	if len(pubkeys) == 0 {
		return nil, newError(ErrNoSigners, "musig key aggregation requires at least one signer")
	}

	xs := make([][32]byte, len(pubkeys))
	for i, pub := range pubkeys {
		x := pub.Point().X.Bytes32()
		xs[i] = x
	}

	sorted := make([][32]byte, len(xs))
	copy(sorted, xs)
	sort.Slice(sorted, func(i, j int) bool {
		return bytesLess(sorted[i][:], sorted[j][:])
	})

	concat := make([]byte, 0, 32*len(sorted))
	for _, x := range sorted {
		concat = append(concat, x[:]...)
	}
	cAll := sha256simd.Sum256(concat)

	challenges := make([]secp256k1.Scalar, len(pubkeys))
	agg := secp256k1.ZeroPublicKey()
	order := secp256k1.Params().Order()

	for i, pub := range pubkeys {
		h := sha256simd.New()
		h.Write(cAll[:])
		h.Write(xs[i][:])
		digest := h.Sum(nil)

		c := new(big.Int).SetBytes(digest)
		c.Mod(c, order)
		cScalar := secp256k1.NewScalar(c.Bytes())
		challenges[i] = cScalar

		agg = agg.Add(pub.Mul(cScalar))
	}

	keys := make([]*secp256k1.PublicKey, len(pubkeys))
	copy(keys, pubkeys)

	return &KeyAggregation{Challenges: challenges, Keys: keys, Aggregate: agg}, nil
}

func bytesLess(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// NonceAggregation is the result of summing participant nonce commitments:
// the aggregate point R and whether every participant must negate their
// nonce scalar to match it.
type NonceAggregation struct {
	Aggregate *secp256k1.PublicKey
	Negated   bool
}

// AggregateNonces sums the given per-signer nonce commitments R_i = k_i*G
// and applies the BIP-340 parity fix-up: if the sum's y-coordinate is not a
// quadratic residue mod p, every participant must negate their own nonce
// scalar (not just the sum) to keep k_i*G consistent with R_agg, which is
// why Negated is returned rather than applied internally.
func AggregateNonces(nonces []*secp256k1.PublicKey) (*NonceAggregation, error) {
	if len(nonces) == 0 {
		return nil, newError(ErrNoSigners, "musig nonce aggregation requires at least one signer")
	}

	agg := secp256k1.ZeroPublicKey()
	for _, r := range nonces {
		agg = agg.Add(r)
	}

	if agg.IsSquareY() {
		return &NonceAggregation{Aggregate: agg, Negated: false}, nil
	}
	return &NonceAggregation{Aggregate: agg.Negate(), Negated: true}, nil
}

// PartialSign computes signer i's partial signature s_i = k_i + d_i' * e mod
// n, where d_i' = d_i * c_i mod n is the delinearized private key and e is
// the Schnorr challenge over the aggregate nonce and aggregate public key.
//
// k is the signer's own nonce scalar, already negated by the caller (k ->
// n-k) if the session's NonceAggregation reported Negated. c is this
// signer's delinearization challenge from AggregateKeys. aggNonceX is the
// aggregate nonce's x-coordinate and aggPub is the aggregate public key,
// both shared by every participant in the session.
func PartialSign(priv *secp256k1.PrivateKey, c secp256k1.Scalar, k *big.Int, aggNonceX [32]byte, aggPub *secp256k1.PublicKey, msg []byte) secp256k1.Scalar {
	order := secp256k1.Params().Order()

	d := new(big.Int).SetBytes(priv.Serialize())
	cVal := new(big.Int).SetBytes(c[:])
	dPrime := new(big.Int).Mul(d, cVal)
	dPrime.Mod(dPrime, order)

	e := schnorr.Challenge(aggNonceX, aggPub.Compressed(), msg)

	s := new(big.Int).Mul(dPrime, e)
	s.Add(s, k)
	s.Mod(s, order)

	return secp256k1.NewScalar(s.Bytes())
}

// AggregateSignatures sums the given partial signatures mod n and returns
// the final Schnorr signature (aggNonceX, sum(s_i)).
func AggregateSignatures(aggNonceX [32]byte, partials []secp256k1.Scalar) (*schnorr.Signature, error) {
	if len(partials) == 0 {
		return nil, newError(ErrNoSigners, "musig signature aggregation requires at least one partial signature")
	}

	order := secp256k1.Params().Order()
	s := new(big.Int)
	for _, p := range partials {
		v := new(big.Int).SetBytes(p[:])
		s.Add(s, v)
	}
	s.Mod(s, order)

	return schnorr.NewSignature(aggNonceX[:], s.Bytes()), nil
}

// NegateNonceScalar returns n - k mod n, the adjustment every participant
// must apply to their own nonce scalar when AggregateNonces reports Negated.
func NegateNonceScalar(k *big.Int) *big.Int {
	order := secp256k1.Params().Order()
	out := new(big.Int).Sub(order, new(big.Int).Mod(k, order))
	out.Mod(out, order)
	return out
}
