// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package leadership

import (
	"errors"
	"fmt"

	"github.com/hdevalence/ed25519consensus"

	"golang.org/x/crypto/ed25519"

	"github.com/ava-labs/mockchain/utils/crypto"
	"github.com/ava-labs/mockchain/utils/formatting"
)

const (
	// LeaderIDLen is the wire width of a leader identity
	LeaderIDLen = ed25519.PublicKeySize
	// SignatureLen is the wire width of a leader's signature
	SignatureLen = ed25519.SignatureSize
)

var (
	// EmptyLeaderID is a useful all zero value
	EmptyLeaderID = LeaderID{}

	errWrongLeaderIDSize  = errors.New("wrong leader id size")
	errWrongSignatureSize = errors.New("wrong signature size")
)

// LeaderID identifies a block producer by its public key. The key doubles as
// the verification key for the signatures the producer attaches to its
// headers.
type LeaderID [LeaderIDLen]byte

// ToLeaderID attempts to convert a byte slice into a leader id
func ToLeaderID(b []byte) (LeaderID, error) {
	id := LeaderID{}
	if len(b) != LeaderIDLen {
		return id, fmt.Errorf("%w: expected %d bytes but got %d", errWrongLeaderIDSize, LeaderIDLen, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// LeaderIDFromKey returns the leader id embedding [key].
func LeaderIDFromKey(key crypto.PublicKey) (LeaderID, error) {
	return ToLeaderID(key.Bytes())
}

// Any modification to Bytes will be lost since id is passed-by-value
func (id LeaderID) Bytes() []byte {
	return id[:]
}

func (id LeaderID) String() string {
	str, _ := formatting.EncodeCB58(id[:])
	return str
}

// Verify returns whether [sig] was produced over [message] by this leader's
// key. Verification follows the ZIP-215 consensus rules.
func (id LeaderID) Verify(message []byte, sig Signature) bool {
	return ed25519consensus.Verify(ed25519.PublicKey(id[:]), message, sig[:])
}

// Signature authenticates a byte range under a leader's key.
type Signature [SignatureLen]byte

// ToSignature attempts to convert a byte slice into a signature
func ToSignature(b []byte) (Signature, error) {
	sig := Signature{}
	if len(b) != SignatureLen {
		return sig, fmt.Errorf("%w: expected %d bytes but got %d", errWrongSignatureSize, SignatureLen, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

func (sig Signature) Bytes() []byte {
	return sig[:]
}

// Sign produces a leader signature over [message] with [key].
func Sign(key crypto.PrivateKey, message []byte) (Signature, error) {
	sigBytes, err := key.Sign(message)
	if err != nil {
		return Signature{}, err
	}
	return ToSignature(sigBytes)
}
