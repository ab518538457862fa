// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"errors"

	"github.com/hdevalence/ed25519consensus"

	"golang.org/x/crypto/ed25519"
)

const (
	PublicKeyLen  = ed25519.PublicKeySize
	PrivateKeyLen = ed25519.PrivateKeySize
	SignatureLen  = ed25519.SignatureSize
)

var (
	errWrongPublicKeySize  = errors.New("wrong public key size")
	errWrongPrivateKeySize = errors.New("wrong private key size")

	_ Factory = (*FactoryED25519)(nil)
)

type FactoryED25519 struct{}

// NewPrivateKey implements the Factory interface
func (*FactoryED25519) NewPrivateKey() (PrivateKey, error) {
	_, k, err := ed25519.GenerateKey(nil)
	return &PrivateKeyED25519{sk: k}, err
}

// ToPublicKey implements the Factory interface
func (*FactoryED25519) ToPublicKey(b []byte) (PublicKey, error) {
	if len(b) != ed25519.PublicKeySize {
		return nil, errWrongPublicKeySize
	}
	return &PublicKeyED25519{pk: b}, nil
}

// ToPrivateKey implements the Factory interface
func (*FactoryED25519) ToPrivateKey(b []byte) (PrivateKey, error) {
	if len(b) != ed25519.PrivateKeySize {
		return nil, errWrongPrivateKeySize
	}
	return &PrivateKeyED25519{sk: b}, nil
}

type PublicKeyED25519 struct {
	pk ed25519.PublicKey
}

// Verify implements the PublicKey interface. Verification follows the ZIP-215
// consensus rules so that every implementation agrees on which signatures are
// valid.
func (k *PublicKeyED25519) Verify(msg, sig []byte) bool {
	return ed25519consensus.Verify(k.pk, msg, sig)
}

// Bytes implements the PublicKey interface
func (k *PublicKeyED25519) Bytes() []byte {
	return k.pk
}

type PrivateKeyED25519 struct {
	sk ed25519.PrivateKey
	pk *PublicKeyED25519
}

// PublicKey implements the PrivateKey interface
func (k *PrivateKeyED25519) PublicKey() PublicKey {
	if k.pk == nil {
		k.pk = &PublicKeyED25519{
			pk: k.sk.Public().(ed25519.PublicKey),
		}
	}
	return k.pk
}

// Sign implements the PrivateKey interface
func (k *PrivateKeyED25519) Sign(msg []byte) ([]byte, error) {
	return ed25519.Sign(k.sk, msg), nil
}

// Bytes implements the PrivateKey interface
func (k *PrivateKeyED25519) Bytes() []byte {
	return k.sk
}
