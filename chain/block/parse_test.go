// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package block

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/mockchain/chain/date"
	"github.com/ava-labs/mockchain/chain/leadership"
	"github.com/ava-labs/mockchain/chain/vrf"
	"github.com/ava-labs/mockchain/ids"
	"github.com/ava-labs/mockchain/utils/crypto"
	"github.com/ava-labs/mockchain/utils/wrappers"
)

func TestParseBFTZeroContent(t *testing.T) {
	require := require.New(t)

	factory := crypto.FactoryED25519{}
	key, err := factory.NewPrivateKey()
	require.NoError(err)

	header, err := BuildBFT(date.Date{}, 0, ids.Empty, ids.Empty, key)
	require.NoError(err)

	headerBytes, err := header.Bytes()
	require.NoError(err)

	// prefix + common fixed fields + 2 hashes + leader id + signature
	require.Len(headerBytes, wrappers.ShortLen+commonLen+bftProofLen)
	require.Equal(
		uint16(len(headerBytes)-wrappers.ShortLen),
		binary.BigEndian.Uint16(headerBytes),
	)

	parsed, err := Parse(headerBytes)
	require.NoError(err)
	require.Equal(header, parsed)
	require.True(parsed.VerifyProof())

	// the same common fields under any other key must not verify
	otherKey, err := factory.NewPrivateKey()
	require.NoError(err)
	otherLeader, err := leadership.LeaderIDFromKey(otherKey.PublicKey())
	require.NoError(err)

	forged := *parsed
	forged.Proof = &BftProof{
		LeaderID:  otherLeader,
		Signature: parsed.Proof.(*BftProof).Signature,
	}
	require.False(forged.VerifyProof())
}

func TestParseNoProof(t *testing.T) {
	require := require.New(t)

	header := BuildUnsigned(
		date.Date{Epoch: 1, Slot: 7},
		42,
		ids.ID{1},
		ids.ID{2},
	)

	headerBytes, err := header.Bytes()
	require.NoError(err)
	require.Len(headerBytes, wrappers.ShortLen+commonLen)

	parsed, err := Parse(headerBytes)
	require.NoError(err)
	require.Equal(header, parsed)
	require.IsType(&NoProof{}, parsed.Proof)
	require.True(parsed.VerifyProof())
}

func TestParseGenesisPraos(t *testing.T) {
	require := require.New(t)

	factory := crypto.FactoryED25519{}
	kesKey, err := factory.NewPrivateKey()
	require.NoError(err)

	vrfKey := vrf.PublicKey{0xaa}
	vrfProof := vrf.Proof{0xbb}

	header, err := BuildGenesisPraos(
		date.Date{Epoch: 3, Slot: 11},
		1024,
		ids.ID{3},
		ids.ID{4},
		vrfKey,
		vrfProof,
		kesKey,
	)
	require.NoError(err)

	headerBytes, err := header.Bytes()
	require.NoError(err)
	require.Len(headerBytes, wrappers.ShortLen+commonLen+genesisPraosProofLen)

	parsed, err := Parse(headerBytes)
	require.NoError(err)
	require.Equal(header, parsed)
	require.True(parsed.VerifyProof())

	praos := parsed.Proof.(*GenesisPraosProof)
	require.Equal(vrfKey, praos.VRFPublicKey)
	require.Equal(vrfProof, praos.VRFProof)
}

func TestParseUnsupportedVersion(t *testing.T) {
	require := require.New(t)

	headerBytes, err := BuildUnsigned(date.Date{}, 0, ids.Empty, ids.Empty).Bytes()
	require.NoError(err)

	// overwrite the version field, just past the size prefix
	binary.BigEndian.PutUint16(headerBytes[wrappers.ShortLen:], 7)

	_, err = Parse(headerBytes)
	require.ErrorIs(err, ErrUnsupportedBlockVersion)
}

func TestParseTruncated(t *testing.T) {
	factory := crypto.FactoryED25519{}
	key, err := factory.NewPrivateKey()
	require.NoError(t, err)

	header, err := BuildBFT(date.Date{Epoch: 2, Slot: 5}, 9, ids.ID{5}, ids.ID{6}, key)
	require.NoError(t, err)

	headerBytes, err := header.Bytes()
	require.NoError(t, err)

	tests := []struct {
		name string
		size int
	}{
		{
			name: "empty",
			size: 0,
		},
		{
			name: "inside common",
			size: wrappers.ShortLen + commonLen/2,
		},
		{
			name: "one byte short of the proof",
			size: len(headerBytes) - 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(headerBytes[:test.size])
			require.ErrorIs(t, err, wrappers.ErrInsufficientLength)
		})
	}
}

func TestBytesVersionMismatch(t *testing.T) {
	tests := []struct {
		name   string
		header Header
	}{
		{
			name: "bft version with no proof",
			header: Header{
				Common: Common{Version: VersionBFT},
				Proof:  &NoProof{},
			},
		},
		{
			name: "none version with bft proof",
			header: Header{
				Common: Common{Version: VersionNone},
				Proof:  &BftProof{},
			},
		},
		{
			name: "genesis praos version with bft proof",
			header: Header{
				Common: Common{Version: VersionGenesisPraos},
				Proof:  &BftProof{},
			},
		},
		{
			name: "missing proof",
			header: Header{
				Common: Common{Version: VersionNone},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.header.Bytes()
			require.ErrorIs(t, err, ErrVersionMismatch)
		})
	}
}

func TestParseIgnoresSizePrefixValue(t *testing.T) {
	require := require.New(t)

	header := BuildUnsigned(date.Date{Epoch: 9, Slot: 1}, 3, ids.ID{7}, ids.ID{8})
	headerBytes, err := header.Bytes()
	require.NoError(err)

	wantID, err := header.ID()
	require.NoError(err)

	// A corrupted size prefix is a framing problem, not a content problem:
	// decoding still succeeds and re-encoding restores the single canonical
	// prefix, so no distinct header with a different id is constructible.
	corrupted := make([]byte, len(headerBytes))
	copy(corrupted, headerBytes)
	binary.BigEndian.PutUint16(corrupted, 0xffff)

	parsed, err := Parse(corrupted)
	require.NoError(err)

	parsedID, err := parsed.ID()
	require.NoError(err)
	require.Equal(wantID, parsedID)

	reencoded, err := parsed.Bytes()
	require.NoError(err)
	require.Equal(headerBytes, reencoded)
}
