// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "fmt"

// PublicKey wraps a curve Point. The zero value is not meaningful; use
// ZeroPublicKey for the point-at-infinity identity used as an aggregation
// accumulator, or one of the New/Parse constructors otherwise.
type PublicKey struct {
	point Point
}

// NewPublicKey wraps an already-validated point as a public key. It does not
// check curve membership; callers constructing points directly (as opposed
// to parsing untrusted bytes) are expected to have done so correctly.
func NewPublicKey(p Point) *PublicKey {
	return &PublicKey{point: p}
}

// ZeroPublicKey returns the public key at infinity, used purely as the
// identity element when summing public keys (MuSig key and nonce
// aggregation). It must never be treated as a real signer's key.
func ZeroPublicKey() *PublicKey {
	ctx := getContext()
	inf := InfinityFieldElement(ctx.modulo)
	return &PublicKey{point: Point{X: inf, Y: inf, Group: ctx.generator.Group}}
}

// Point returns the underlying curve point.
func (pub *PublicKey) Point() Point {
	return pub.point
}

// IsEqual reports whether pub and other represent the same point.
func (pub *PublicKey) IsEqual(other *PublicKey) bool {
	if pub.point.IsOnInfinity() || other.point.IsOnInfinity() {
		return pub.point.IsOnInfinity() == other.point.IsOnInfinity()
	}
	return pub.point.X.Equal(other.point.X) && pub.point.Y.Equal(other.point.Y)
}

// Add returns the public key corresponding to pub's point plus other's
// point, i.e. the curve-group sum of the two keys. It is the primitive the
// musig subpackage's key and nonce aggregation are built from.
func (pub *PublicKey) Add(other *PublicKey) *PublicKey {
	return &PublicKey{point: pub.point.Add(other.point)}
}

// Mul returns the public key scaled by the given scalar value, interpreted
// as an integer modulo the group order.
func (pub *PublicKey) Mul(scalar Scalar) *PublicKey {
	ctx := getContext()
	k := ctx.ScalarFieldElementFromBytes(scalar[:]).Int()
	return &PublicKey{point: pub.point.ScalarMult(k)}
}

// Negate returns the additive inverse of pub, i.e. the public key whose
// point has the negated y-coordinate.
func (pub *PublicKey) Negate() *PublicKey {
	return &PublicKey{point: pub.point.Negate()}
}

// IsSquareY reports whether the public key's y-coordinate is a quadratic
// residue mod p, i.e. has Jacobi symbol +1. This is the test MuSig nonce
// aggregation and Schnorr signing use to decide whether to negate.
func (pub *PublicKey) IsSquareY() bool {
	return JacobiSymbol(pub.point.Y.Int(), pub.point.Y.modulus) == JacobiOne
}

// Compressed returns the 33-byte SEC1 compressed encoding: a parity prefix
// byte (0x02 for even y, 0x03 for odd y) followed by the 32-byte big-endian
// x-coordinate.
func (pub *PublicKey) Compressed() [33]byte {
	var out [33]byte
	if pub.point.Y.IsEven() {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	x := pub.point.X.Bytes32()
	copy(out[1:], x[:])
	return out
}

// Uncompressed returns the 65-byte SEC1 uncompressed encoding:
// 0x04 || x || y.
func (pub *PublicKey) Uncompressed() [65]byte {
	var out [65]byte
	out[0] = 0x04
	x := pub.point.X.Bytes32()
	y := pub.point.Y.Bytes32()
	copy(out[1:33], x[:])
	copy(out[33:65], y[:])
	return out
}

// ParseCompressedPubKey decodes a 33-byte SEC1 compressed public key,
// recovering the y-coordinate from x via Group.GetY and selecting the
// branch the prefix byte requests.
func ParseCompressedPubKey(ser []byte) (*PublicKey, error) {
	if len(ser) != 33 {
		return nil, newError(ErrPubKeyInvalidLen,
			fmt.Sprintf("compressed public key must be 33 bytes, got %d", len(ser)))
	}
	if ser[0] != 0x02 && ser[0] != 0x03 {
		return nil, newError(ErrPubKeyInvalidPrefix,
			fmt.Sprintf("compressed public key prefix must be 0x02 or 0x03, got %#x", ser[0]))
	}

	ctx := getContext()
	x := ctx.FieldElementFromBytes(ser[1:33])
	y := ctx.generator.Group.GetY(x)
	wantEven := ser[0] == 0x02
	if y.IsEven() != wantEven {
		y.Reflect()
	}

	point := Point{X: x, Y: y, Group: ctx.generator.Group}
	if !point.IsOnCurve() {
		return nil, newError(ErrPubKeyNotOnCurve, "decoded compressed public key is not on the curve")
	}
	return &PublicKey{point: point}, nil
}

// ParseUncompressedPubKey decodes a 65-byte SEC1 uncompressed public key.
func ParseUncompressedPubKey(ser []byte) (*PublicKey, error) {
	if len(ser) != 65 {
		return nil, newError(ErrPubKeyInvalidLen,
			fmt.Sprintf("uncompressed public key must be 65 bytes, got %d", len(ser)))
	}
	if ser[0] != 0x04 {
		return nil, newError(ErrPubKeyInvalidPrefix,
			fmt.Sprintf("uncompressed public key prefix must be 0x04, got %#x", ser[0]))
	}

	ctx := getContext()
	x := ctx.FieldElementFromBytes(ser[1:33])
	y := ctx.FieldElementFromBytes(ser[33:65])
	point := Point{X: x, Y: y, Group: ctx.generator.Group}
	if !point.IsOnCurve() {
		return nil, newError(ErrPubKeyNotOnCurve, "decoded uncompressed public key is not on the curve")
	}
	return &PublicKey{point: point}, nil
}

// String implements fmt.Stringer for debugging.
func (pub *PublicKey) String() string {
	if pub.point.IsOnInfinity() {
		return "PublicKey{infinity}"
	}
	return fmt.Sprintf("PublicKey{X: %#x, Y: %#x}", pub.point.X.Int(), pub.point.Y.Int())
}
