// Copyright 2026 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package replay

import (
	"fmt"

	"github.com/Babylone245/cacheLRU/common/lru"
	"github.com/Babylone245/cacheLRU/log"
)

// Defaults contains default settings for trace replay.
var Defaults = Config{
	Capacity: 1024,
	Workers:  4,
}

// Config contains the configuration options of a replay run.
type Config struct {
	// Capacity is the maximum number of entries of each replayed cache.
	Capacity int

	// Workers bounds the number of traces replayed at the same time.
	// Every trace gets its own cache; caches are never shared.
	Workers int

	// ShowKeys requests the final recency order to be reported.
	ShowKeys bool `toml:",omitempty"`
}

// Sanitize checks the provided user configurations and changes anything
// that's unreasonable or unworkable. Capacity is left alone: a non-positive
// capacity is rejected by validate instead.
func (config Config) Sanitize() Config {
	conf := config
	if conf.Workers < 1 {
		log.Warn("Sanitizing invalid replay worker count", "provided", conf.Workers, "updated", 1)
		conf.Workers = 1
	}
	return conf
}

func (config Config) validate() error {
	if config.Capacity <= 0 {
		return fmt.Errorf("capacity %d: %w", config.Capacity, lru.ErrInvalidCapacity)
	}
	return nil
}
