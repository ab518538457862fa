// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ava-labs/mockchain/utils/formatting"
)

// IDLen is the width in bytes of every hash value on the chain.
const IDLen = 32

const nullStr = "null"

var (
	// Empty is a useful all zero value
	Empty = ID{}

	errMissingQuotes = errors.New("first and last characters should be quotes")
	errWrongIDSize   = errors.New("wrong ID size")
)

// ID wraps a 32 byte hash used as an identifier
type ID [IDLen]byte

// ToID attempts to convert a byte slice into an id
func ToID(b []byte) (ID, error) {
	id := ID{}
	if len(b) != IDLen {
		return id, fmt.Errorf("%w: expected %d bytes but got %d", errWrongIDSize, IDLen, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// FromString is the inverse of ID.String()
func FromString(idStr string) (ID, error) {
	b, err := formatting.DecodeCB58(idStr)
	if err != nil {
		return ID{}, err
	}
	return ToID(b)
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == nullStr { // If "null", do nothing
		return nil
	}
	if len(str) < 2 || str[0] != '"' || str[len(str)-1] != '"' {
		return errMissingQuotes
	}

	var err error
	*id, err = FromString(str[1 : len(str)-1])
	return err
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	var err error
	*id, err = FromString(string(text))
	return err
}

// Any modification to Bytes will be lost since id is passed-by-value
func (id ID) Bytes() []byte {
	return id[:]
}

// Hex returns a hex encoded string of this id.
func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id ID) String() string {
	// We assume that the maximum size of a byte slice that
	// can be stringified is at least the length of an ID
	str, _ := formatting.EncodeCB58(id[:])
	return str
}

func (id ID) Less(other ID) bool {
	return bytes.Compare(id[:], other[:]) == -1
}
