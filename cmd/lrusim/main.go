// Copyright 2014 The go-ethereum Authors
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

// lrusim replays cache access traces against fixed-capacity LRU caches.
package main

import (
	"os"

	"github.com/Babylone245/cacheLRU/cmd/utils"
	"github.com/Babylone245/cacheLRU/internal/debug"
	"github.com/Babylone245/cacheLRU/internal/flags"
	"github.com/urfave/cli/v2"
)

const clientIdentifier = "lrusim"

var (
	replayFlags = []cli.Flag{
		configFileFlag,
		utils.CapacityFlag,
		utils.WorkersFlag,
		utils.ShowKeysFlag,
	}
)

var app = flags.NewApp("the LRU cache trace simulator")

func init() {
	app.Name = clientIdentifier
	app.ArgsUsage = "<trace> [<trace>...]"
	app.Action = replayTraces
	app.Commands = []*cli.Command{
		// See config.go
		dumpConfigCommand,
	}
	app.Flags = append(app.Flags, replayFlags...)
	app.Flags = append(app.Flags, debug.Flags...)

	app.Before = func(ctx *cli.Context) error {
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		utils.Fatalf("%v", err)
	}
}
