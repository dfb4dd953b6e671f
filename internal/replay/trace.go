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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSyntax is returned for trace lines that cannot be parsed.
	ErrSyntax = errors.New("malformed trace line")

	// ErrUnexpected is returned when a lookup does not match the result the
	// trace expects.
	ErrUnexpected = errors.New("unexpected lookup result")
)

// missMarker as the expectation of a get line asserts that the key is absent.
const missMarker = "-"

type opKind uint8

const (
	opPut opKind = iota
	opGet
)

// op is a single parsed trace line.
//
//	put <key> <value>
//	get <key> [<value>|-]
type op struct {
	kind   opKind
	key    string
	value  string // stored value for puts, expected value for checked gets
	checks bool   // get carries an expectation
}

// parseLine parses one trace line. Blank lines and comments yield ok == false.
func parseLine(line string) (o op, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return op{}, false, nil
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case "put":
		if len(fields) != 3 {
			return op{}, false, fmt.Errorf("%w: put takes a key and a value", ErrSyntax)
		}
		return op{kind: opPut, key: fields[1], value: fields[2]}, true, nil
	case "get":
		switch len(fields) {
		case 2:
			return op{kind: opGet, key: fields[1]}, true, nil
		case 3:
			return op{kind: opGet, key: fields[1], value: fields[2], checks: true}, true, nil
		}
		return op{}, false, fmt.Errorf("%w: get takes a key and an optional expectation", ErrSyntax)
	default:
		return op{}, false, fmt.Errorf("%w: unknown operation %q", ErrSyntax, fields[0])
	}
}

// expectation renders the expected result of a checked get.
func (o op) expectation() string {
	if o.value == missMarker {
		return "miss"
	}
	return fmt.Sprintf("hit %q", o.value)
}
