// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*log)(nil)

type log struct {
	wrappedCores   []WrappedCore
	internalLogger *zap.Logger
}

type WrappedCore struct {
	Core        zapcore.Core
	Writer      io.WriteCloser
	AtomicLevel zap.AtomicLevel
}

func NewWrappedCore(level Level, rw io.WriteCloser, encoder zapcore.Encoder) WrappedCore {
	atomicLevel := zap.NewAtomicLevelAt(zapcore.Level(level))

	core := zapcore.NewCore(encoder, zapcore.AddSync(rw), atomicLevel)
	return WrappedCore{AtomicLevel: atomicLevel, Core: core, Writer: rw}
}

func newZapLogger(prefix string, wrappedCores ...WrappedCore) *zap.Logger {
	cores := make([]zapcore.Core, len(wrappedCores))
	for i, wc := range wrappedCores {
		cores[i] = wc.Core
	}
	core := zapcore.NewTee(cores...)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2))
	if prefix != "" {
		logger = logger.Named(prefix)
	}

	return logger
}

// NewLogger returns a new logger that writes to the provided cores
func NewLogger(prefix string, wrappedCores ...WrappedCore) Logger {
	return &log{
		internalLogger: newZapLogger(prefix, wrappedCores...),
		wrappedCores:   wrappedCores,
	}
}

// NewDefaultLogger returns a logger that writes human-readable output to
// stderr at [level].
func NewDefaultLogger(prefix string, level Level) Logger {
	consoleEnc := zapcore.NewConsoleEncoder(newDefaultEncoderConfig())
	return NewLogger(prefix, NewWrappedCore(level, os.Stderr, consoleEnc))
}

func newDefaultEncoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	return config
}

func (l *log) Stop() {
	_ = l.internalLogger.Sync()
}

// Should only be called from [Level] functions.
func (l *log) logMsg(level Level, msg string, fields ...zap.Field) {
	if ce := l.internalLogger.Check(zapcore.Level(level), msg); ce != nil {
		ce.Write(fields...)
	}
}

func (l *log) Fatal(msg string, fields ...zap.Field) {
	l.logMsg(Fatal, msg, fields...)
}

func (l *log) Error(msg string, fields ...zap.Field) {
	l.logMsg(Error, msg, fields...)
}

func (l *log) Warn(msg string, fields ...zap.Field) {
	l.logMsg(Warn, msg, fields...)
}

func (l *log) Info(msg string, fields ...zap.Field) {
	l.logMsg(Info, msg, fields...)
}

func (l *log) Debug(msg string, fields ...zap.Field) {
	l.logMsg(Debug, msg, fields...)
}

func (l *log) Trace(msg string, fields ...zap.Field) {
	l.logMsg(Trace, msg, fields...)
}
