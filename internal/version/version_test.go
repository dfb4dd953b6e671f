// Copyright 2016 The go-ethereum Authors
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

package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestWithCommit(t *testing.T) {
	if got := WithCommit("", ""); got != WithMeta {
		t.Fatalf("got %q, want %q", got, WithMeta)
	}
	got := WithCommit("0123456789abcdef", "20261015")
	if !strings.HasPrefix(got, Semantic) {
		t.Fatalf("%q lacks semantic version prefix", got)
	}
	if !strings.Contains(got, "-01234567") {
		t.Fatalf("%q lacks short commit", got)
	}
	if !strings.HasSuffix(got, "-20261015") {
		t.Fatalf("%q lacks commit date", got)
	}
}

func TestBuildInfoVCS(t *testing.T) {
	info := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "deadbeefcafe"},
		{Key: "vcs.time", Value: "2026-10-15T08:30:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}}
	vcs, ok := buildInfoVCS(info)
	if !ok {
		t.Fatal("expected vcs info")
	}
	if vcs.Commit != "deadbeefcafe" || vcs.Date != "20261015" || !vcs.Dirty {
		t.Fatalf("wrong vcs info: %+v", vcs)
	}
	if _, ok := buildInfoVCS(&debug.BuildInfo{}); ok {
		t.Fatal("empty build info reported as valid")
	}
}
