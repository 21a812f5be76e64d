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

package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the resolved configuration shared by all subcommands.
type app struct {
	cfg        Config
	configPath string
	out        io.Writer
	logger     *zap.Logger
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{cfg: DefaultConfig(), out: out}

	cmd := &cobra.Command{
		Use:           "runsort",
		Short:         "Demonstrate and benchmark the runsort stable sort",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML config file")
	flags.String("log-level", a.cfg.Log.Level, "log level (debug, info, warn, error)")
	flags.String("log-format", a.cfg.Log.Format, "log format (console, json)")
	flags.Int64("seed", 0, "input generator seed (0 = time based)")

	cmd.AddCommand(demoCommand(a), benchCommand(a))
	return cmd
}

// setup resolves defaults < config file < flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		if err := loadConfigFile(a.configPath, &a.cfg); err != nil {
			return err
		}
	}
	if err := a.applyFlags(cmd); err != nil {
		return err
	}
	if a.cfg.Seed == 0 {
		a.cfg.Seed = time.Now().UnixNano()
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := a.cfg.Log.Build()
	if err != nil {
		return err
	}
	a.logger = logger.Named("runsort")
	a.logger.Debug("config resolved",
		zap.String("file", a.configPath),
		zap.Int64("seed", a.cfg.Seed),
		zap.Int("trials", a.cfg.Trials),
		zap.Int("workers", a.cfg.Workers),
		zap.Ints("sizes", a.cfg.Sizes),
		zap.Strings("patterns", a.cfg.Patterns),
	)
	return nil
}

// applyFlags copies explicitly set flags over the configuration.
func (a *app) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("log-level") {
		a.cfg.Log.Level, err = flags.GetString("log-level")
	}
	if err == nil && flags.Changed("log-format") {
		a.cfg.Log.Format, err = flags.GetString("log-format")
	}
	if err == nil && flags.Changed("seed") {
		a.cfg.Seed, err = flags.GetInt64("seed")
	}
	if err == nil && flags.Changed("size") {
		a.cfg.Size, err = flags.GetInt("size")
	}
	if err == nil && flags.Changed("trials") {
		a.cfg.Trials, err = flags.GetInt("trials")
	}
	if err == nil && flags.Changed("workers") {
		a.cfg.Workers, err = flags.GetInt("workers")
	}
	if err == nil && flags.Changed("sizes") {
		a.cfg.Sizes, err = flags.GetIntSlice("sizes")
	}
	if err == nil && flags.Changed("patterns") {
		a.cfg.Patterns, err = flags.GetStringSlice("patterns")
	}
	return err
}
