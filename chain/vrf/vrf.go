// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vrf carries the canonical byte encodings of verifiable-random-
// function values. The VRF scheme itself lives in the consensus layer;
// headers only transport the encoded public key and proven output that attest
// a producer's eligibility to lead a slot.
package vrf

import (
	"errors"
	"fmt"
)

const (
	// PublicKeyLen is the wire width of an encoded VRF public key
	PublicKeyLen = 32
	// ProofLen is the wire width of an encoded VRF proven output
	ProofLen = 96
)

var (
	errWrongPublicKeySize = errors.New("wrong vrf public key size")
	errWrongProofSize     = errors.New("wrong vrf proof size")
)

// PublicKey is the canonical encoding of a VRF public key.
type PublicKey [PublicKeyLen]byte

// ToPublicKey attempts to convert a byte slice into a vrf public key
func ToPublicKey(b []byte) (PublicKey, error) {
	pk := PublicKey{}
	if len(b) != PublicKeyLen {
		return pk, fmt.Errorf("%w: expected %d bytes but got %d", errWrongPublicKeySize, PublicKeyLen, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

func (pk PublicKey) Bytes() []byte {
	return pk[:]
}

// Proof is the canonical encoding of a VRF proven output: the pseudorandom
// output together with the material needed to verify it against the public
// key.
type Proof [ProofLen]byte

// ToProof attempts to convert a byte slice into a vrf proof
func ToProof(b []byte) (Proof, error) {
	proof := Proof{}
	if len(b) != ProofLen {
		return proof, fmt.Errorf("%w: expected %d bytes but got %d", errWrongProofSize, ProofLen, len(b))
	}
	copy(proof[:], b)
	return proof, nil
}

func (proof Proof) Bytes() []byte {
	return proof[:]
}
