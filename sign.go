// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto"
	"io"
)

// SignOptions adapts a crypto.Hash to the crypto.SignerOpts interface, for
// callers that want to route a *PrivateKey through generic
// crypto.SignerOpts-shaped plumbing.
type SignOptions struct {
	Hash crypto.Hash
}

// HashFunc implements crypto.SignerOpts.
func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// SignDigest treats digest as an already-hashed 32-byte message and returns
// a DER-encoded ECDSA signature. rand and opts are accepted for signature
// compatibility with crypto.Signer but unused — signing here is always the
// deterministic RFC-6979 construction, so there is no randomness to draw
// and no alternate hash to honor.
//
// PrivateKey intentionally does not satisfy crypto.Signer directly: its own
// Sign method already has the two-argument (msg, toHash) shape callers of
// this package expect, and Go has no method overloading to let the same
// name carry both signatures.
func (priv *PrivateKey) SignDigest(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	sig := priv.Sign(digest, false)
	return sig.SerializeDER(), nil
}

// Public returns the public key, matching the accessor crypto.Signer
// requires.
func (priv *PrivateKey) Public() crypto.PublicKey {
	return priv.PubKey()
}
