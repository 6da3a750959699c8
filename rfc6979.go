// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/hmac"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"
)

// hmacDRBG implements the RFC 6979 deterministic nonce generator: an
// HMAC-SHA-256 DRBG seeded from a private key and a message digest, with the
// K/V state transition RFC 6979 §3.2 describes. Each Generate call produces
// the next 32 bytes of deterministic output (V = HMAC(K, V)); Generate itself
// does not touch K. Reseed stirs K and V, and nextValidNonce and Sign call it
// between a rejected candidate and the next draw.
type hmacDRBG struct {
	k [32]byte
	v [32]byte
}

func hmacSum(key, msg []byte) [32]byte {
	mac := hmac.New(sha256simd.New, key)
	mac.Write(msg)
	var out [32]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// newHMACDRBG seeds the generator per RFC 6979 §3.2 steps a-d, using the
// private scalar's 32-byte serialization and the message digest as the two
// inputs folded into K.
func newHMACDRBG(privKey, msgDigest []byte) *hmacDRBG {
	var d hmacDRBG
	for i := range d.v {
		d.v[i] = 0x01
	}
	for i := range d.k {
		d.k[i] = 0x00
	}

	seed := make([]byte, 0, len(d.v)+1+len(privKey)+len(msgDigest))
	seed = append(seed, d.v[:]...)
	seed = append(seed, 0x00)
	seed = append(seed, privKey...)
	seed = append(seed, msgDigest...)
	d.k = hmacSum(d.k[:], seed)
	d.v = hmacSum(d.k[:], d.v[:])

	seed = seed[:0]
	seed = append(seed, d.v[:]...)
	seed = append(seed, 0x01)
	seed = append(seed, privKey...)
	seed = append(seed, msgDigest...)
	d.k = hmacSum(d.k[:], seed)
	d.v = hmacSum(d.k[:], d.v[:])

	return &d
}

// Generate produces the next 32 bytes of DRBG output (V).
func (d *hmacDRBG) Generate() [32]byte {
	d.v = hmacSum(d.k[:], d.v[:])
	return d.v
}

// Reseed stirs K and V as RFC 6979 §3.2 step h.3 requires when a generated
// candidate must be rejected (k == 0 or k >= n).
func (d *hmacDRBG) Reseed() {
	seed := append(append([]byte{}, d.v[:]...), 0x00)
	d.k = hmacSum(d.k[:], seed)
	d.v = hmacSum(d.k[:], d.v[:])
}

// nextValidNonce pulls candidates from drbg until one lands in [1, n-1], per
// RFC 6979 §3.2 step h.2-h.3: generate a candidate k = V; if k == 0 or
// k >= n, stir K/V and regenerate. This is a pull-based bounded loop over
// the DRBG stream, not recursion. The same drbg instance is reused across
// calls so that a caller retrying after a downstream r==0/s==0 failure (also
// handled by stirring and pulling the next candidate) continues the same
// deterministic stream rather than restarting it.
func nextValidNonce(drbg *hmacDRBG, order *big.Int) *big.Int {
	for {
		candidate := drbg.Generate()
		k := new(big.Int).SetBytes(candidate[:])
		if k.Sign() != 0 && k.Cmp(order) < 0 {
			return k
		}
		drbg.Reseed()
	}
}
