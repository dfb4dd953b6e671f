// Copyright 2015 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// Package utils contains internal helper functions for lrusim commands.
package utils

import (
	"github.com/Babylone245/cacheLRU/internal/flags"
	"github.com/Babylone245/cacheLRU/internal/replay"
	"github.com/urfave/cli/v2"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	CapacityFlag = &cli.IntFlag{
		Name:     "cache.capacity",
		Usage:    "Maximum number of entries held by each replayed cache",
		Value:    replay.Defaults.Capacity,
		Category: flags.CacheCategory,
	}
	WorkersFlag = &cli.IntFlag{
		Name:     "replay.workers",
		Usage:    "Number of traces replayed concurrently",
		Value:    replay.Defaults.Workers,
		Category: flags.ReplayCategory,
	}
	ShowKeysFlag = &cli.BoolFlag{
		Name:     "keys",
		Usage:    "Print the final recency order of every trace (least recent first)",
		Category: flags.ReplayCategory,
	}
)

// SetReplayConfig applies replay-related command line flags to the config.
// Flags left at their default do not override values loaded from file.
// SetReplayConfig 将回放相关的命令行标志应用到配置中。
func SetReplayConfig(ctx *cli.Context, cfg *replay.Config) {
	if ctx.IsSet(CapacityFlag.Name) {
		cfg.Capacity = ctx.Int(CapacityFlag.Name)
	}
	if ctx.IsSet(WorkersFlag.Name) {
		cfg.Workers = ctx.Int(WorkersFlag.Name)
	}
	if ctx.IsSet(ShowKeysFlag.Name) {
		cfg.ShowKeys = ctx.Bool(ShowKeysFlag.Name)
	}
}
