// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "go.uber.org/zap"

// Logger defines the interface that is used to keep a record of all events
// that happen to the program
type Logger interface {
	// Log that a fatal error has occurred. The program should likely exit soon
	// after this is called
	Fatal(msg string, fields ...zap.Field)
	// Log that an error has occurred. The program should be able to recover
	// from this error
	Error(msg string, fields ...zap.Field)
	// Log that an event has occurred that may indicate a future error or
	// vulnerability
	Warn(msg string, fields ...zap.Field)
	// Log an event that may be useful for a user to see to measure the
	// progress of the program
	Info(msg string, fields ...zap.Field)
	// Log an event that may be useful for understanding the order of the
	// execution of the program
	Debug(msg string, fields ...zap.Field)
	// Log extremely detailed events that can be useful for inspecting every
	// aspect of the program
	Trace(msg string, fields ...zap.Field)

	// Stop this logger and write back all meta-data.
	Stop()
}

var _ Logger = NoLog{}

// NoLog drops all messages. Useful for tests.
type NoLog struct{}

func (NoLog) Fatal(string, ...zap.Field) {}
func (NoLog) Error(string, ...zap.Field) {}
func (NoLog) Warn(string, ...zap.Field)  {}
func (NoLog) Info(string, ...zap.Field)  {}
func (NoLog) Debug(string, ...zap.Field) {}
func (NoLog) Trace(string, ...zap.Field) {}
func (NoLog) Stop()                      {}
