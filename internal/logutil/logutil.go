// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil builds the zap loggers used by the command-line tools.
package logutil

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownFormat is returned for a Format other than console or json.
var ErrUnknownFormat = errors.New("logutil: unknown log format")

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultConfig logs info and above to stderr in console format.
func DefaultConfig() LogConfig {
	return LogConfig{Level: "info", Format: "console"}
}

func (cfg LogConfig) getLevel() (zap.AtomicLevel, error) {
	if cfg.Level == "" {
		return zap.NewAtomicLevelAt(zap.InfoLevel), nil
	}
	return zap.ParseAtomicLevel(strings.ToLower(cfg.Level))
}

func (cfg LogConfig) getEncoding() (string, error) {
	switch strings.ToLower(cfg.Format) {
	case "", "console":
		return "console", nil
	case "json":
		return "json", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}
}

func (cfg LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

// Build returns a logger writing to stderr.
func (cfg LogConfig) Build() (*zap.Logger, error) {
	level, err := cfg.getLevel()
	if err != nil {
		return nil, fmt.Errorf("logutil: level %q: %w", cfg.Level, err)
	}
	encoding, err := cfg.getEncoding()
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zc := zap.Config{
		Level:            level,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zc.Build(cfg.getOptions()...)
}
