// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

// findNonCurveX searches small integers for an x-coordinate with no
// corresponding point on y^2 = x^3 + 7 (mod p), i.e. one where x^3+7 is a
// quadratic non-residue. Roughly half of all x values qualify, so this
// terminates quickly.
func findNonCurveX(t *testing.T) *big.Int {
	t.Helper()
	ctx := getContext()
	seven := big.NewInt(7)
	for x := int64(0); x < 64; x++ {
		xi := big.NewInt(x)
		rhs := new(big.Int).Exp(xi, big.NewInt(3), ctx.modulo)
		rhs.Add(rhs, seven)
		rhs.Mod(rhs, ctx.modulo)
		if JacobiSymbol(rhs, ctx.modulo) == JacobiMinusOne {
			return xi
		}
	}
	t.Fatal("no non-curve x found in search range")
	return nil
}

func TestCompressedUncompressedRoundTrip(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(424242))
	pub := priv.PubKey()

	compressed := pub.Compressed()
	parsed, err := ParseCompressedPubKey(compressed[:])
	if err != nil {
		t.Fatalf("ParseCompressedPubKey: %v", err)
	}
	if !parsed.IsEqual(pub) {
		t.Fatal("compressed round trip did not reproduce the original public key")
	}

	uncompressed := pub.Uncompressed()
	parsedU, err := ParseUncompressedPubKey(uncompressed[:])
	if err != nil {
		t.Fatalf("ParseUncompressedPubKey: %v", err)
	}
	if !parsedU.IsEqual(pub) {
		t.Fatal("uncompressed round trip did not reproduce the original public key")
	}
}

func TestCompressedPrefixMatchesParity(t *testing.T) {
	for seed := int64(1); seed < 50; seed++ {
		priv := NewPrivateKey(big.NewInt(seed))
		pub := priv.PubKey()
		compressed := pub.Compressed()

		wantEvenPrefix := compressed[0] == 0x02
		if wantEvenPrefix != pub.point.Y.IsEven() {
			t.Fatalf("seed %d: compressed prefix %#x does not match y parity", seed, compressed[0])
		}
	}
}

func TestParseCompressedPubKeyRejectsBadPrefix(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(7))
	compressed := priv.PubKey().Compressed()
	compressed[0] = 0x05

	if _, err := ParseCompressedPubKey(compressed[:]); err == nil {
		t.Fatal("expected error for bad compressed prefix")
	}
}

func TestParseCompressedPubKeyRejectsBadLength(t *testing.T) {
	if _, err := ParseCompressedPubKey(make([]byte, 32)); err == nil {
		t.Fatal("expected error for short compressed pubkey")
	}
}

func TestParseUncompressedPubKeyRejectsBadPrefix(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(7))
	uncompressed := priv.PubKey().Uncompressed()
	uncompressed[0] = 0x02

	if _, err := ParseUncompressedPubKey(uncompressed[:]); err == nil {
		t.Fatal("expected error for bad uncompressed prefix")
	}
}

func TestZeroPublicKeyIsAdditionIdentity(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(99))
	pub := priv.PubKey()

	zero := ZeroPublicKey()
	if !pub.Add(zero).IsEqual(pub) {
		t.Fatal("pub + ZeroPublicKey() != pub")
	}
}

func TestPublicKeyMulByOneIsIdentity(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(55))
	pub := priv.PubKey()

	one := NewScalar(big.NewInt(1).Bytes())
	if !pub.Mul(one).IsEqual(pub) {
		t.Fatal("pub * 1 != pub")
	}
}

func TestPublicKeyNegateAddIsZero(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(321))
	pub := priv.PubKey()

	sum := pub.Add(pub.Negate())
	if !sum.IsEqual(ZeroPublicKey()) {
		t.Fatal("pub + (-pub) != infinity")
	}
}

// TestParseCompressedPubKeyRejectsMalformedXCoordinate is the
// parse-pubkey-only coverage mode: an x-coordinate for which no curve point
// exists must be rejected with ErrPubKeyNotOnCurve, not silently accepted
// with a bogus y.
func TestParseCompressedPubKeyRejectsMalformedXCoordinate(t *testing.T) {
	x := findNonCurveX(t)

	var ser [33]byte
	ser[0] = 0x02
	xb := x.Bytes()
	copy(ser[33-len(xb):], xb)

	_, err := ParseCompressedPubKey(ser[:])
	if err == nil {
		t.Fatal("expected error parsing a compressed pubkey with a malformed x-coordinate")
	}
	if !errors.Is(err, ErrPubKeyNotOnCurve) {
		t.Fatalf("expected ErrPubKeyNotOnCurve, got %v", err)
	}
}

// TestParseUncompressedPubKeyRejectsMalformedXCoordinate is the uncompressed
// counterpart: any y paired with an x that has no curve point must fail the
// on-curve check.
func TestParseUncompressedPubKeyRejectsMalformedXCoordinate(t *testing.T) {
	x := findNonCurveX(t)

	var ser [65]byte
	ser[0] = 0x04
	xb := x.Bytes()
	copy(ser[33-len(xb):33], xb)
	// y = 1 is never a root of x^3+7 for a non-curve x, but the exact value
	// doesn't matter: any y fails the curve-membership check for this x.
	ser[64] = 0x01

	_, err := ParseUncompressedPubKey(ser[:])
	if err == nil {
		t.Fatal("expected error parsing an uncompressed pubkey with a malformed x-coordinate")
	}
	if !errors.Is(err, ErrPubKeyNotOnCurve) {
		t.Fatalf("expected ErrPubKeyNotOnCurve, got %v", err)
	}
}

func TestPrivKeyFromBytesSerializeRoundTrip(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(13371337))
	serialized := priv.Serialize()

	reconstructed := PrivKeyFromBytes(serialized)
	if !bytes.Equal(reconstructed.Serialize(), serialized) {
		t.Fatal("PrivKeyFromBytes(priv.Serialize()) did not reproduce the key")
	}
}
