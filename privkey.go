// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"fmt"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"
)

// PrivateKey is a non-zero integer strictly less than the curve order n,
// serialized as a 32-byte big-endian buffer wherever it crosses an API
// boundary.
type PrivateKey struct {
	scalar *big.Int
}

// NewPrivateKey wraps an arbitrary integer as a private key, reducing it
// modulo the curve order the way the original reference implementation's
// PrivateKey::new does. It does not itself enforce non-zero-ness, and
// neither does PrivKeyFromBytes, which applies the same reduction;
// GeneratePrivateKey is the constructor that always yields a key in [1, n-1].
func NewPrivateKey(key *big.Int) *PrivateKey {
	order := getContext().order
	d := new(big.Int).Mod(key, order)
	return &PrivateKey{scalar: d}
}

// PrivKeyFromBytes interprets ser as an unsigned 256-bit big-endian integer
// and reduces it modulo the curve order n. Passing an already out-of-range
// value is silently reduced; GeneratePrivateKey is the preferred way to
// obtain a key.
func PrivKeyFromBytes(ser []byte) *PrivateKey {
	d := new(big.Int).SetBytes(ser)
	return NewPrivateKey(d)
}

// GeneratePrivateKey returns a cryptographically random private key in
// [1, n-1].
func GeneratePrivateKey() (*PrivateKey, error) {
	order := getContext().order
	nMinus1 := new(big.Int).Sub(order, big.NewInt(1))
	for {
		d, err := rand.Int(rand.Reader, nMinus1)
		if err != nil {
			return nil, err
		}
		d.Add(d, big.NewInt(1))
		return &PrivateKey{scalar: d}, nil
	}
}

// PubKey computes and returns the public key d*G corresponding to this
// private key.
func (priv *PrivateKey) PubKey() *PublicKey {
	point := getContext().generator.ScalarMult(priv.scalar)
	return &PublicKey{point: point}
}

// Serialize returns the private key as a 32-byte big-endian binary-encoded
// number, left-padded with zeros.
func (priv *PrivateKey) Serialize() []byte {
	var out [32]byte
	b := priv.scalar.Bytes()
	copy(out[32-len(b):], b)
	return out[:]
}

// ECDH computes a shared secret with the given peer public key using plain
// Diffie-Hellman key exchange over the curve group: it multiplies the
// peer's point by this key's scalar, serializes the resulting point in
// SEC1-compressed form, and hashes that encoding with SHA-256. This differs
// from the bare x-coordinate convention some ECDH implementations use
// (e.g. RFC 5903 §9); both agree on the underlying scalar multiplication
// and only the post-processing differs.
func (priv *PrivateKey) ECDH(peer *PublicKey) [32]byte {
	shared := peer.point.ScalarMult(priv.scalar)
	sharedPub := PublicKey{point: shared}
	compressed := sharedPub.Compressed()
	return sha256simd.Sum256(compressed[:])
}

// String implements fmt.Stringer without ever revealing the scalar, so
// accidental logging or fmt.Println of a PrivateKey cannot leak it.
func (priv *PrivateKey) String() string {
	return fmt.Sprintf("PrivateKey{%d bytes, redacted}", len(priv.Serialize()))
}
