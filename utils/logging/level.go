// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

type Level zapcore.Level

const (
	Trace Level = iota - 2
	Debug
	Info
	Warn
	Error
	Fatal
	Off Level = 9
)

var errUnknownLevel = fmt.Errorf("unknown log level")

// ToLevel returns the level corresponding to [l], ignoring case.
func ToLevel(l string) (Level, error) {
	switch strings.ToUpper(l) {
	case "TRACE":
		return Trace, nil
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARN":
		return Warn, nil
	case "ERROR":
		return Error, nil
	case "FATAL":
		return Fatal, nil
	case "OFF":
		return Off, nil
	default:
		return Off, fmt.Errorf("%w: %q", errUnknownLevel, l)
	}
}

func (l Level) String() string {
	switch l {
	case Trace:
		return "TRACE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	case Off:
		return "OFF"
	default:
		// "unknown" is not a valid level, so this should never be used
		return "UNKNO"
	}
}
