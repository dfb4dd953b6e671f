// Copyright 2026 The go-ethereum Authors
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

package main

import (
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Babylone245/cacheLRU/internal/flags"
	"github.com/Babylone245/cacheLRU/internal/replay"
	"github.com/Babylone245/cacheLRU/log"
	"github.com/urfave/cli/v2"
)

var errNoTraces = errors.New("no trace files given")

// replayTraces is the main entry point into the system if no special
// subcommand is run. It replays every trace named on the command line and
// logs a summary per trace.
func replayTraces(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errNoTraces
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	paths := make([]string, ctx.NArg())
	for i, arg := range ctx.Args().Slice() {
		paths[i] = flags.ExpandPath(arg)
	}

	sigctx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Replaying traces", "count", len(paths), "capacity", cfg.Replay.Capacity, "workers", cfg.Replay.Workers)
	start := time.Now()
	results, err := replay.Run(sigctx, cfg.Replay, paths)
	if err != nil {
		return err
	}
	for _, res := range results {
		reportResult(res, cfg.Replay.ShowKeys)
	}
	log.Info("Replay finished", "traces", len(results), "elapsed", time.Since(start))
	return nil
}

func reportResult(res *replay.Result, showKeys bool) {
	log.Info("Replayed trace", "name", res.Name, "ops", res.Ops, "hits", res.Hits, "misses", res.Misses,
		"evictions", res.Evictions, "distinct", res.Distinct, "resident", res.Resident, "ratio", res.HitRatio())
	if showKeys {
		log.Info("Recency order", "name", res.Name, "keys", strings.Join(res.Keys, ","))
	}
}
