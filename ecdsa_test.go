// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"
	"testing"
)

func TestECDSASignVerifyRoundTrip(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(13131313))
	pub := priv.PubKey()

	msg := []byte("a message worth signing")
	sig := priv.Sign(msg, true)

	if !pub.Verify(msg, sig, true) {
		t.Fatal("Verify rejected a genuine ECDSA signature")
	}
}

func TestECDSASignatureIsLowS(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(2468))
	msg := []byte("low-s check")
	sig := priv.Sign(msg, true)

	order := getContext().order
	half := new(big.Int).Rsh(order, 1)
	sVal := new(big.Int).SetBytes(sig.s[:])
	if sVal.Cmp(half) > 0 {
		t.Fatalf("s = %v exceeds n/2 = %v", sVal, half)
	}
}

func TestECDSASignIsDeterministic(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(999999))
	msg := []byte("determinism check")

	sig1 := priv.Sign(msg, true)
	sig2 := priv.Sign(msg, true)
	if !sig1.IsEqual(sig2) {
		t.Fatal("two signatures over the same key and message differed")
	}
}

func TestECDSAVerifyRejectsTamperedMessage(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(314159))
	pub := priv.PubKey()

	sig := priv.Sign([]byte("original message"), true)
	if pub.Verify([]byte("different message"), sig, true) {
		t.Fatal("Verify accepted a signature over a different message")
	}
}

func TestECDSAVerifyRejectsWrongKey(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(271828))
	other := NewPrivateKey(big.NewInt(161803))

	msg := []byte("message")
	sig := priv.Sign(msg, true)
	if other.PubKey().Verify(msg, sig, true) {
		t.Fatal("Verify accepted a signature under the wrong public key")
	}
}

func TestECDSAVerifyRejectsOutOfRangeComponents(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(42))
	pub := priv.PubKey()
	msg := []byte("range check")
	sig := priv.Sign(msg, true)

	order := getContext().order
	tampered := NewSignature(order.Bytes(), sig.s[:])
	if pub.Verify(msg, tampered, true) {
		t.Fatal("Verify accepted r == n")
	}
}

func TestECDSAPrehashedRequiresExactLength(t *testing.T) {
	priv := NewPrivateKey(big.NewInt(7))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-32-byte prehashed message")
		}
	}()
	priv.Sign([]byte("short"), false)
}
