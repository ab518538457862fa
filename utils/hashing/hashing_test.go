// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeHash256(t *testing.T) {
	require := require.New(t)

	// blake2b-256 of the empty string
	expected, err := hex.DecodeString("0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8")
	require.NoError(err)
	require.Equal(expected, ComputeHash256(nil))

	arr := ComputeHash256Array([]byte("hello"))
	require.Equal(ComputeHash256([]byte("hello")), arr[:])
}

func TestChecksum(t *testing.T) {
	require := require.New(t)

	sum := Checksum([]byte{0, 1, 2, 3}, 4)
	require.Len(sum, 4)

	full := ComputeHash256([]byte{0, 1, 2, 3})
	require.Equal(full[HashLen-4:], sum)
}

func TestToHash256(t *testing.T) {
	require := require.New(t)

	_, err := ToHash256(make([]byte, HashLen-1))
	require.ErrorIs(err, ErrInvalidHashLen)

	in := make([]byte, HashLen)
	in[0] = 0xff
	h, err := ToHash256(in)
	require.NoError(err)
	require.Equal(in, h[:])
}
