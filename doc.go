// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements the secp256k1 elliptic curve and the ECDSA
signature scheme built on top of it, in pure Go.

It provides a prime-field arithmetic layer (FieldElement) over both the
curve's coordinate field and its scalar field, an affine short-Weierstrass
point type (Point) with the classical group law and double-and-add scalar
multiplication, the secp256k1 domain parameters as a lazily-initialized
process-wide singleton (Secp256k1, reached via Params), and private/public
key types with SEC1 compressed/uncompressed (de)serialization.

On top of that it implements deterministic ECDSA signing (RFC 6979 nonce
derivation) and verification, with DER and raw 64-byte signature encodings.

Sub packages build the rest of the signature stack on these primitives:

  - schnorr implements BIP-340-style Schnorr signatures, using a plain
    SHA-256 challenge hash rather than BIP-340's tagged variant (see that
    package's doc comment for why).
  - musig implements MuSig-style key aggregation, nonce aggregation, and
    partial/aggregate Schnorr signing.
  - bech32addr encodes a (witness version, program) pair into a bech32
    witness address.

This package is not constant-time: scalar multiplication is classical
double-and-add and modular inversion uses big.Int's extended-GCD-based
ModInverse. Callers operating in adversarial environments where timing,
cache, or power side channels are a concern must not rely on this
implementation as-is; see Point.ScalarMult.
*/
package secp256k1
