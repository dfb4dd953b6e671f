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

// Package replay drives LRU caches with recorded access traces.
package replay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Babylone245/cacheLRU/common/lru"
	"github.com/Babylone245/cacheLRU/log"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/golang/snappy"
	"golang.org/x/sync/errgroup"
)

const (
	// checkInterval is the number of trace lines processed between two
	// cancellation checks.
	checkInterval = 1024

	// maxLineSize caps a single trace line, value included.
	maxLineSize = 16 * 1024 * 1024
)

// ErrStdinReused is returned by Run if standard input is named more than once.
var ErrStdinReused = errors.New("standard input can only be replayed once")

// Result summarizes the replay of a single trace.
type Result struct {
	Name      string
	Ops       int // executed operations, puts plus gets
	Puts      int
	Gets      int
	Hits      int
	Misses    int
	Evictions int
	Distinct  int      // distinct keys referenced by the trace
	Resident  int      // entries left in the cache
	Keys      []string // resident keys, least recently used first
}

// HitRatio returns the fraction of gets that were served from the cache.
func (r *Result) HitRatio() float64 {
	if r.Gets == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Gets)
}

// Replay executes the trace read from r against a fresh cache holding at
// most capacity entries.
func Replay(ctx context.Context, name string, r io.Reader, capacity int) (*Result, error) {
	cache, err := lru.NewBasicLRU[string, string](capacity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	var (
		res     = &Result{Name: name}
		seen    = mapset.NewThreadUnsafeSet[string]()
		logger  = log.New("trace", name)
		scanner = bufio.NewScanner(r)
		lineno  int
	)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if lineno%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lineno++

		o, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineno, err)
		}
		if !ok {
			continue
		}
		res.Ops++
		seen.Add(o.key)

		switch o.kind {
		case opPut:
			res.Puts++
			if logger.Enabled(ctx, log.LevelTrace) && !cache.Contains(o.key) && cache.Len() == cache.Cap() {
				victim, _, _ := cache.GetOldest()
				logger.Trace("Evicting entry", "key", victim, "for", o.key)
			}
			if cache.Add(o.key, o.value) {
				res.Evictions++
			}
		case opGet:
			res.Gets++
			value, hit := cache.Get(o.key)
			if hit {
				res.Hits++
			} else {
				res.Misses++
			}
			if o.checks && !matches(o, value, hit) {
				got := "miss"
				if hit {
					got = fmt.Sprintf("hit %q", value)
				}
				return nil, fmt.Errorf("%s:%d: %w: get %s: want %s, got %s", name, lineno, ErrUnexpected, o.key, o.expectation(), got)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	res.Distinct = seen.Cardinality()
	res.Resident = cache.Len()
	res.Keys = cache.Keys()

	logger.Debug("Trace replayed", "ops", res.Ops, "hits", res.Hits, "misses", res.Misses, "evictions", res.Evictions)
	return res, nil
}

func matches(o op, value string, hit bool) bool {
	if o.value == missMarker {
		return !hit
	}
	return hit && value == o.value
}

// ReplayFile replays the trace stored at path. Files ending in .sz are
// decoded as snappy framed streams, and "-" reads standard input.
func ReplayFile(ctx context.Context, path string, capacity int) (*Result, error) {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	if strings.HasSuffix(path, ".sz") {
		in = snappy.NewReader(in)
	}
	return Replay(ctx, path, in, capacity)
}

// Run replays all traces, at most cfg.Workers of them at a time. Results are
// returned in the order of paths. The first failure aborts the run.
func Run(ctx context.Context, cfg Config, paths []string) ([]*Result, error) {
	cfg = cfg.Sanitize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	stdin := 0
	for _, path := range paths {
		if path == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, ErrStdinReused
	}
	results := make([]*Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res, err := ReplayFile(gctx, path, cfg.Capacity)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
