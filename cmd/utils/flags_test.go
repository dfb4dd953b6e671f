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

package utils

import (
	"testing"

	"github.com/Babylone245/cacheLRU/internal/replay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetReplayConfig(t *testing.T) {
	tests := []struct {
		args []string
		want replay.Config
	}{
		{nil, replay.Config{Capacity: 7, Workers: 3}},
		{[]string{"--cache.capacity", "64"}, replay.Config{Capacity: 64, Workers: 3}},
		{[]string{"--replay.workers", "1", "--keys"}, replay.Config{Capacity: 7, Workers: 1, ShowKeys: true}},
	}
	for _, tt := range tests {
		cfg := replay.Config{Capacity: 7, Workers: 3}
		app := &cli.App{
			Flags: []cli.Flag{CapacityFlag, WorkersFlag, ShowKeysFlag},
			Action: func(ctx *cli.Context) error {
				SetReplayConfig(ctx, &cfg)
				return nil
			},
		}
		require.NoError(t, app.Run(append([]string{"test"}, tt.args...)))
		assert.Equal(t, tt.want, cfg, "args %v", tt.args)
	}
}
