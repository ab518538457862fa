// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

// Factory creates and parses signing keys.
type Factory interface {
	NewPrivateKey() (PrivateKey, error)

	ToPublicKey([]byte) (PublicKey, error)
	ToPrivateKey([]byte) (PrivateKey, error)
}

type PublicKey interface {
	// Verify returns whether [signature] was produced over [message] by this
	// key's holder.
	Verify(message, signature []byte) bool

	Bytes() []byte
}

type PrivateKey interface {
	PublicKey() PublicKey

	Sign(message []byte) ([]byte, error)

	Bytes() []byte
}
