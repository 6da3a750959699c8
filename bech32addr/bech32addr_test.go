// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32addr

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	sha256simd "github.com/minio/sha256-simd"

	"github.com/kryptlab/secp256k1"
)

func TestCompressedPubkeyFromHashedLabelVector(t *testing.T) {
	digest := sha256simd.Sum256([]byte("key0"))
	d := new(big.Int).SetBytes(digest[:])
	priv := secp256k1.NewPrivateKey(d)

	want, err := hex.DecodeString("026C5D5E73124F3C821C0985DF787E11B3D018A86ADD577FA8661613A0D49DDE59")
	if err != nil {
		t.Fatalf("decoding expected hex: %v", err)
	}
	got := priv.PubKey().Compressed()
	if !bytes.Equal(got[:], want) {
		t.Fatalf("compressed(d*G) = %X, want %X", got, want)
	}
}

func TestP2WPKHAddressVector(t *testing.T) {
	digest := sha256simd.Sum256([]byte("key0"))
	d := new(big.Int).SetBytes(digest[:])
	priv := secp256k1.NewPrivateKey(d)
	compressed := priv.PubKey().Compressed()

	program := Hash160(compressed[:])
	if len(program) != 20 {
		t.Fatalf("hash160 output length = %d, want 20", len(program))
	}

	addr, err := ProgramToWitness("bcrt", 0, program)
	if err != nil {
		t.Fatalf("ProgramToWitness: %v", err)
	}

	want := "bcrt1q4x4lwgmsdlatsfmpzgewtnuz9865arkcj6wj4r"
	if addr != want {
		t.Fatalf("address = %q, want %q", addr, want)
	}
}

func TestProgramToWitnessRejectsBadVersion(t *testing.T) {
	_, err := ProgramToWitness("bcrt", 17, make([]byte, 20))
	if err == nil {
		t.Fatal("expected error for witness version 17")
	}
}

func TestProgramToWitnessRejectsBadProgramLength(t *testing.T) {
	if _, err := ProgramToWitness("bcrt", 0, make([]byte, 1)); err == nil {
		t.Fatal("expected error for 1-byte program")
	}
	if _, err := ProgramToWitness("bcrt", 0, make([]byte, 41)); err == nil {
		t.Fatal("expected error for 41-byte program")
	}
}

func TestHash160KnownAnswer(t *testing.T) {
	// hash160("") has a well-known value used across Bitcoin-adjacent test
	// suites: RIPEMD160(SHA256("")).
	want, err := hex.DecodeString("b472a266d0bd89c13706a4132ccfb16f7c3b9fcb")
	if err != nil {
		t.Fatalf("decoding expected hex: %v", err)
	}
	got := Hash160(nil)
	if !bytes.Equal(got, want) {
		t.Fatalf("hash160(\"\") = %X, want %X", got, want)
	}
}
