// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// headertool decodes a serialized block header from the command line, prints
// its fields, and optionally verifies the embedded proof.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ava-labs/mockchain/chain/block"
	"github.com/ava-labs/mockchain/utils/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	v, err := getViper(args)
	if err != nil {
		return err
	}

	level, err := logging.ToLevel(v.GetString(logLevelKey))
	if err != nil {
		return err
	}
	log := logging.NewDefaultLogger("headertool", level)
	defer log.Stop()

	headerHex := v.GetString(headerKey)
	if headerHex == "" {
		return fmt.Errorf("--%s is required", headerKey)
	}
	headerBytes, err := hex.DecodeString(headerHex)
	if err != nil {
		return fmt.Errorf("couldn't decode header hex: %w", err)
	}

	header, err := block.Parse(headerBytes)
	if err != nil {
		return fmt.Errorf("couldn't parse header: %w", err)
	}

	id, err := header.ID()
	if err != nil {
		return fmt.Errorf("couldn't compute header id: %w", err)
	}

	fields := []zap.Field{
		zap.Stringer("id", id),
		zap.Stringer("version", header.Version()),
		zap.Stringer("date", header.Date()),
		zap.Uint32("contentSize", header.ContentSize()),
		zap.Stringer("contentHash", header.ContentHash()),
		zap.Stringer("parentHash", header.ParentHash()),
	}
	if leader, ok := header.Leader(); ok {
		fields = append(fields, zap.Stringer("leader", leader))
	}
	log.Info("decoded header", fields...)

	if v.GetBool(verifyKey) {
		if !header.VerifyProof() {
			log.Error("proof verification failed", zap.Stringer("id", id))
			return fmt.Errorf("proof verification failed for header %s", id)
		}
		log.Info("proof verified", zap.Stringer("id", id))
	}
	return nil
}
