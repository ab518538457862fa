// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	headerKey   = "header"
	verifyKey   = "verify"
	logLevelKey = "log-level"
)

func buildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("headertool", pflag.ContinueOnError)

	fs.String(headerKey, "", "hex-encoded header bytes, including the size prefix")
	fs.Bool(verifyKey, false, "verify the header's proof and exit non-zero on failure")
	fs.String(logLevelKey, "info", "log level for tool output")

	return fs
}

// getViper binds the parsed command line into a viper environment so flags
// may also be supplied as environment variables or config entries.
func getViper(args []string) (*viper.Viper, error) {
	v := viper.New()

	fs := buildFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	return v, nil
}
