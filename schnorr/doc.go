// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package schnorr implements BIP-340-style Schnorr signatures over secp256k1:
deterministic signing, verification, and 64-byte signature (de)serialization.

Challenge hash. BIP-340 itself specifies a tagged challenge hash,
SHA256(SHA256("BIP0340/challenge")*2 || Rx || Px || m). This package instead
uses a plain SHA256(Rx || P_compressed || m); the test vectors this
package is validated against require the plain form, not the tagged one.
TaggedHash is still provided and correct — it is exercised directly by its
own test vectors — it is simply not what the challenge function below
uses. A caller building a strictly BIP-340-conformant stack on top of this
package should compute its own tagged challenge instead of calling
Sign/Verify as-is.

Parity convention. Both signing and verification enforce BIP-340's
requirement that the nonce point R have a y-coordinate that is a quadratic
residue mod p (Jacobi symbol +1), flipping the nonce scalar k to n-k when
it is not.
*/
package schnorr
