// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bech32addr encodes a (witness version, program) pair into a
// bech32 witness address, and provides the hash160 (RIPEMD160(SHA256(x)))
// helper used to turn a compressed public key into a P2WPKH program.
package bech32addr

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for Bitcoin-style hash160
)

// Hash160 computes RIPEMD160(SHA256(data)), the digest P2WPKH programs are
// built from.
func Hash160(data []byte) []byte {
	sha := sha256simd.Sum256(data)
	r := ripemd160.New()
	r.Write(sha[:])
	return r.Sum(nil)
}

// ProgramToWitness encodes a witness version and program as a bech32 witness
// address under the given human-readable network prefix (e.g. "bcrt" for
// regtest, "bc" for mainnet), per BIP-173's data layout: the version as a
// single 5-bit group followed by the program re-packed from 8-bit to 5-bit
// groups, checksummed with the standard bech32 polynomial (constant 1).
func ProgramToWitness(hrp string, version byte, program []byte) (string, error) {
	if version > 16 {
		return "", newError(ErrInvalidWitnessVersion,
			fmt.Sprintf("witness version must be in [0, 16], got %d", version))
	}
	if len(program) < 2 || len(program) > 40 {
		return "", newError(ErrInvalidProgramLength,
			fmt.Sprintf("witness program must be 2-40 bytes, got %d", len(program)))
	}

	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("bech32addr: converting program to 5-bit groups: %w", err)
	}

	data := make([]byte, 0, 1+len(converted))
	data = append(data, version)
	data = append(data, converted...)

	return bech32.Encode(hrp, data)
}
