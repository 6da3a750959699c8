// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// Scalar is the on-wire representation of a 32-byte big-endian quantity —
// an ECDSA/Schnorr signature component r or s, or a MuSig challenge c_i.
// Unlike FieldElement it carries no modulus; it is purely a byte buffer,
// interpreted against p or n by whichever caller parses it.
type Scalar [32]byte

// NewScalar left-pads b with zeros to 32 bytes. It panics if b is longer
// than 32 bytes, which would indicate a value already out of range for
// either of secp256k1's moduli.
func NewScalar(b []byte) Scalar {
	if len(b) > 32 {
		panic("secp256k1: scalar longer than 32 bytes")
	}
	var s Scalar
	copy(s[32-len(b):], b)
	return s
}

// Bytes returns the scalar's 32-byte big-endian encoding.
func (s Scalar) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, s[:])
	return out
}
