// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// asn1SequenceID and asn1IntegerID are the ASN.1 identifiers used when
// parsing and serializing signatures encoded with the Distinguished
// Encoding Rules (DER), ITU-T X.690 / ISO/IEC 8825-1.
const (
	asn1SequenceID = 0x30
	asn1IntegerID  = 0x02
)

// Signature is an ECDSA signature: a pair of scalars (r, s) where r is the
// x-coordinate of k*G reduced mod n and s is derived from r, the message
// digest, and the private key per the standard ECDSA signing equation.
type Signature struct {
	r Scalar
	s Scalar
}

// NewSignature builds a Signature from raw r/s byte slices, left-padding
// each to 32 bytes.
func NewSignature(r, s []byte) *Signature {
	return &Signature{r: NewScalar(r), s: NewScalar(s)}
}

// R returns the r component.
func (sig *Signature) R() Scalar { return sig.r }

// S returns the s component.
func (sig *Signature) S() Scalar { return sig.s }

// IsEqual reports whether sig and other carry identical r and s.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.r == other.r && sig.s == other.s
}

// Serialize returns the raw 64-byte r||s encoding.
func (sig *Signature) Serialize() [64]byte {
	var out [64]byte
	copy(out[:32], sig.r[:])
	copy(out[32:], sig.s[:])
	return out
}

// ParseSignature parses a raw 64-byte r||s encoding.
func ParseSignature(sig []byte) (*Signature, error) {
	if len(sig) != 64 {
		return nil, newError(ErrSigInvalidLen,
			fmt.Sprintf("raw signature must be 64 bytes, got %d", len(sig)))
	}
	return &Signature{r: NewScalar(sig[:32]), s: NewScalar(sig[32:])}, nil
}

// der33 left-pads a value to 33 bytes so a leading 0x00 is always available
// to strip or keep when canonicalizing.
func der33(b []byte) [33]byte {
	var out [33]byte
	copy(out[33-len(b):], b)
	return out
}

// canonicalizeDERInt trims leading zero bytes from a 33-byte buffer down to
// the minimal-length DER encoding, keeping exactly one leading 0x00 when the
// next byte's high bit is set (to keep the integer non-negative).
func canonicalizeDERInt(buf [33]byte) []byte {
	b := buf[:]
	for len(b) > 1 && b[0] == 0x00 && b[1]&0x80 == 0 {
		b = b[1:]
	}
	return b
}

// SerializeDER returns the ECDSA signature in the Distinguished Encoding
// Rules (DER) format:
//
//	0x30 <len> 0x02 <rlen> R 0x02 <slen> S
func (sig *Signature) SerializeDER() []byte {
	r := canonicalizeDERInt(der33(sig.r[:]))
	s := canonicalizeDERInt(der33(sig.s[:]))

	totalLen := 4 + len(r) + len(s)
	out := make([]byte, 0, 2+totalLen)
	out = append(out, asn1SequenceID, byte(totalLen))
	out = append(out, asn1IntegerID, byte(len(r)))
	out = append(out, r...)
	out = append(out, asn1IntegerID, byte(len(s)))
	out = append(out, s...)
	return out
}

// ParseDERSignature parses a DER-encoded signature, rejecting extra bytes,
// wrong markers, and inconsistent length fields.
func ParseDERSignature(sig []byte) (*Signature, error) {
	const minLen = 8
	if len(sig) < minLen {
		return nil, newError(ErrSigTooShort,
			fmt.Sprintf("malformed signature: too short: %d < %d", len(sig), minLen))
	}
	if len(sig) > 72 {
		return nil, newError(ErrSigTooLong,
			fmt.Sprintf("malformed signature: too long: %d > 72", len(sig)))
	}
	if sig[0] != asn1SequenceID {
		return nil, newError(ErrSigInvalidSeqID,
			fmt.Sprintf("malformed signature: wrong sequence type: %#x", sig[0]))
	}
	if int(sig[1]) != len(sig)-2 {
		return nil, newError(ErrSigInvalidDataLen,
			fmt.Sprintf("malformed signature: bad length: %d != %d", sig[1], len(sig)-2))
	}

	if sig[2] != asn1IntegerID {
		return nil, newError(ErrSigInvalidRIntID,
			fmt.Sprintf("malformed signature: R integer marker: %#x != %#x", sig[2], asn1IntegerID))
	}
	rLen := int(sig[3])
	if rLen == 0 {
		return nil, newError(ErrSigZeroRLen, "malformed signature: R length is zero")
	}
	rOffset := 4
	if rOffset+rLen > len(sig) {
		return nil, newError(ErrSigInvalidDataLen, "malformed signature: R overruns buffer")
	}
	if sig[rOffset]&0x80 != 0 {
		return nil, newError(ErrSigNegativeR, "malformed signature: R is negative")
	}
	if rLen > 1 && sig[rOffset] == 0x00 && sig[rOffset+1]&0x80 == 0 {
		return nil, newError(ErrSigTooMuchRPadding, "malformed signature: R has too much padding")
	}
	r := sig[rOffset : rOffset+rLen]

	sTypeOffset := rOffset + rLen
	if sTypeOffset >= len(sig) {
		return nil, newError(ErrSigMissingSTypeID, "malformed signature: S type indicator missing")
	}
	if sig[sTypeOffset] != asn1IntegerID {
		return nil, newError(ErrSigInvalidSIntID,
			fmt.Sprintf("malformed signature: S integer marker: %#x != %#x", sig[sTypeOffset], asn1IntegerID))
	}
	sLenOffset := sTypeOffset + 1
	if sLenOffset >= len(sig) {
		return nil, newError(ErrSigMissingSLen, "malformed signature: S length missing")
	}
	sLen := int(sig[sLenOffset])
	if sLen == 0 {
		return nil, newError(ErrSigZeroSLen, "malformed signature: S length is zero")
	}
	sOffset := sLenOffset + 1
	if sOffset+sLen != len(sig) {
		return nil, newError(ErrSigInvalidSLen, "malformed signature: invalid S length")
	}
	if sig[sOffset]&0x80 != 0 {
		return nil, newError(ErrSigNegativeS, "malformed signature: S is negative")
	}
	if sLen > 1 && sig[sOffset] == 0x00 && sig[sOffset+1]&0x80 == 0 {
		return nil, newError(ErrSigTooMuchSPadding, "malformed signature: S has too much padding")
	}
	s := sig[sOffset : sOffset+sLen]

	order := getContext().order
	rBig := new(big.Int).SetBytes(r)
	if rBig.Cmp(order) >= 0 {
		return nil, newError(ErrSigRTooBig, "malformed signature: R >= group order")
	}
	sBig := new(big.Int).SetBytes(s)
	if sBig.Cmp(order) >= 0 {
		return nil, newError(ErrSigSTooBig, "malformed signature: S >= group order")
	}

	return &Signature{r: NewScalar(r), s: NewScalar(s)}, nil
}
