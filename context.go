// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"
	"sync"
)

// Secp256k1 holds the process-wide domain parameters for the curve: the
// field prime p, the group order n, and the generator point G. It is
// immutable once constructed; see getContext for the one-shot
// initialization barrier built on sync.Once.
type Secp256k1 struct {
	modulo    *big.Int
	order     *big.Int
	generator Point
}

const (
	gxHex = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	gyHex = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	pHex  = "fffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"
	nHex  = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

func mustHexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: invalid hex constant " + s)
	}
	return n
}

// newSecp256k1 constructs the curve parameters. Called exactly once, from
// getContext.
func newSecp256k1() *Secp256k1 {
	p := mustHexInt(pHex)
	n := mustHexInt(nHex)
	gx := mustHexInt(gxHex)
	gy := mustHexInt(gyHex)

	group := Group{A: big.NewInt(0), B: big.NewInt(7)}
	generator := Point{
		X:     NewFieldElement(gx, p),
		Y:     NewFieldElement(gy, p),
		Group: group,
	}

	return &Secp256k1{modulo: p, order: n, generator: generator}
}

var (
	contextOnce sync.Once
	context     *Secp256k1
)

// getContext returns the process-wide secp256k1 domain parameters,
// constructing them on first use under a sync.Once barrier. Concurrent
// first callers observe a fully-constructed, read-only Secp256k1; no
// further synchronization is needed for reads after that point.
func getContext() *Secp256k1 {
	contextOnce.Do(func() {
		context = newSecp256k1()
	})
	return context
}

// Generator returns the curve's base point G.
func (s *Secp256k1) Generator() Point {
	return s.generator
}

// Modulo returns the field prime p.
func (s *Secp256k1) Modulo() *big.Int {
	return new(big.Int).Set(s.modulo)
}

// Order returns the group order n.
func (s *Secp256k1) Order() *big.Int {
	return new(big.Int).Set(s.order)
}

// SerializedOrder returns n as a 32-byte big-endian buffer.
func (s *Secp256k1) SerializedOrder() [32]byte {
	var out [32]byte
	b := s.order.Bytes()
	copy(out[32-len(b):], b)
	return out
}

// FieldElementFromBytes builds a FieldElement reduced modulo the curve's
// field prime p from a big-endian byte slice.
func (s *Secp256k1) FieldElementFromBytes(b []byte) FieldElement {
	return FieldElementFromBytes(b, s.modulo)
}

// ScalarFieldElementFromBytes builds a FieldElement reduced modulo the
// group order n from a big-endian byte slice.
func (s *Secp256k1) ScalarFieldElementFromBytes(b []byte) FieldElement {
	return FieldElementFromBytes(b, s.order)
}

// Params returns the curve's (p, n, G) triple.
func Params() *Secp256k1 {
	return getContext()
}
