// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package block

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/mockchain/chain/date"
	"github.com/ava-labs/mockchain/chain/leadership"
	"github.com/ava-labs/mockchain/chain/vrf"
	"github.com/ava-labs/mockchain/ids"
	"github.com/ava-labs/mockchain/utils/crypto"
	"github.com/ava-labs/mockchain/utils/hashing"
	"github.com/ava-labs/mockchain/utils/wrappers"
)

func TestHeaderAccessors(t *testing.T) {
	require := require.New(t)

	blockDate := date.Date{Epoch: 12, Slot: 34}
	contentHash := ids.ID{1, 2}
	parentHash := ids.ID{3, 4}

	header := BuildUnsigned(blockDate, 56, contentHash, parentHash)
	require.Equal(VersionNone, header.Version())
	require.Equal(blockDate, header.Date())
	require.Equal(uint32(56), header.ContentSize())
	require.Equal(contentHash, header.ContentHash())
	require.Equal(parentHash, header.ParentHash())
}

func TestHeaderLeader(t *testing.T) {
	require := require.New(t)

	factory := crypto.FactoryED25519{}
	key, err := factory.NewPrivateKey()
	require.NoError(err)
	leader, err := leadership.LeaderIDFromKey(key.PublicKey())
	require.NoError(err)

	unsigned := BuildUnsigned(date.Date{}, 0, ids.Empty, ids.Empty)
	_, ok := unsigned.Leader()
	require.False(ok)

	bft, err := BuildBFT(date.Date{}, 0, ids.Empty, ids.Empty, key)
	require.NoError(err)
	claimed, ok := bft.Leader()
	require.True(ok)
	require.Equal(leader, claimed)

	praos, err := BuildGenesisPraos(date.Date{}, 0, ids.Empty, ids.Empty, vrf.PublicKey{}, vrf.Proof{}, key)
	require.NoError(err)
	claimed, ok = praos.Leader()
	require.True(ok)
	require.Equal(leader, claimed)
}

func TestHeaderIDStripsSizePrefix(t *testing.T) {
	require := require.New(t)

	factory := crypto.FactoryED25519{}
	key, err := factory.NewPrivateKey()
	require.NoError(err)

	header, err := BuildBFT(date.Date{Epoch: 8, Slot: 15}, 99, ids.ID{9}, ids.ID{10}, key)
	require.NoError(err)

	headerBytes, err := header.Bytes()
	require.NoError(err)

	id, err := header.ID()
	require.NoError(err)
	require.Equal(
		ids.ID(hashing.ComputeHash256Array(headerBytes[wrappers.ShortLen:])),
		id,
	)

	// identity is stable across decode
	parsed, err := Parse(headerBytes)
	require.NoError(err)
	parsedID, err := parsed.ID()
	require.NoError(err)
	require.Equal(id, parsedID)
}

func TestVerifyProofTamperedCommon(t *testing.T) {
	factory := crypto.FactoryED25519{}
	key, err := factory.NewPrivateKey()
	require.NoError(t, err)

	header, err := BuildBFT(date.Date{Epoch: 1, Slot: 2}, 3, ids.ID{4}, ids.ID{5}, key)
	require.NoError(t, err)
	require.True(t, header.VerifyProof())

	tests := []struct {
		name   string
		tamper func(*Header)
	}{
		{
			name:   "content size",
			tamper: func(h *Header) { h.Common.ContentSize++ },
		},
		{
			name:   "epoch",
			tamper: func(h *Header) { h.Common.Date.Epoch++ },
		},
		{
			name:   "slot",
			tamper: func(h *Header) { h.Common.Date.Slot++ },
		},
		{
			name:   "content hash",
			tamper: func(h *Header) { h.Common.ContentHash[0] ^= 0x01 },
		},
		{
			name:   "parent hash",
			tamper: func(h *Header) { h.Common.ParentHash[ids.IDLen-1] ^= 0x80 },
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tampered := *header
			test.tamper(&tampered)
			require.False(t, tampered.VerifyProof())
		})
	}
}

func TestVerifyProofCorruptedSignature(t *testing.T) {
	require := require.New(t)

	factory := crypto.FactoryED25519{}
	key, err := factory.NewPrivateKey()
	require.NoError(err)

	header, err := BuildBFT(date.Date{}, 0, ids.Empty, ids.Empty, key)
	require.NoError(err)

	proof := *header.Proof.(*BftProof)
	proof.Signature[0] ^= 0x01
	corrupted := Header{
		Common: header.Common,
		Proof:  &proof,
	}
	require.False(corrupted.VerifyProof())
}
