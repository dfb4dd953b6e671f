// Copyright 2022 The go-ethereum Authors
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

package lru

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

func mustNew[K comparable, V any](t testing.TB, capacity int) BasicLRU[K, V] {
	t.Helper()
	c, err := NewBasicLRU[K, V](capacity)
	if err != nil {
		t.Fatalf("NewBasicLRU(%d): %v", capacity, err)
	}
	return c
}

// checkInvariants verifies that the index and the recency list describe the
// same set of keys and that the capacity bound holds.
func checkInvariants[K comparable, V any](t *testing.T, c *BasicLRU[K, V]) {
	t.Helper()

	if c.Len() > c.Cap() {
		t.Fatalf("cache over capacity: len %d, cap %d", c.Len(), c.Cap())
	}
	listKeys := mapset.NewThreadUnsafeSet[K]()
	n := 0
	for e := c.list.root.next; e != &c.list.root; e = e.next {
		if e.next.prev != e || e.prev.next != e {
			t.Fatalf("broken links around %v", e.v)
		}
		listKeys.Add(e.v)
		n++
	}
	if n != listKeys.Cardinality() {
		t.Fatalf("recency list holds duplicate keys: %s", spew.Sdump(c.Keys()))
	}
	indexKeys := mapset.NewThreadUnsafeSetWithSize[K](len(c.items))
	for k, item := range c.items {
		if item.elem.v != k {
			t.Fatalf("index entry %v points at list element %v", k, item.elem.v)
		}
		indexKeys.Add(k)
	}
	if !listKeys.Equal(indexKeys) {
		t.Fatalf("recency list and index diverged\nlist:  %s\nindex: %s", spew.Sdump(listKeys.ToSlice()), spew.Sdump(indexKeys.ToSlice()))
	}
}

func TestBasicLRUInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -128} {
		_, err := NewBasicLRU[int, int](capacity)
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("capacity %d: got err %v, want %v", capacity, err, ErrInvalidCapacity)
		}
	}
	c, err := NewBasicLRU[int, int](1)
	if err != nil {
		t.Fatalf("capacity 1 rejected: %v", err)
	}
	if c.Cap() != 1 {
		t.Fatalf("wrong capacity %d", c.Cap())
	}
}

func TestBasicLRU(t *testing.T) {
	cache := mustNew[int, int](t, 128)

	for i := 0; i < 256; i++ {
		cache.Add(i, i)
	}
	if cache.Len() != 128 {
		t.Fatalf("bad len: %v", cache.Len())
	}

	// Check that Keys returns least-recent key first.
	keys := cache.Keys()
	if len(keys) != 128 {
		t.Fatal("wrong Keys() length", len(keys))
	}
	for i, k := range keys {
		v, ok := cache.Peek(k)
		if !ok {
			t.Fatalf("expected key %d be present", i)
		}
		if v != k {
			t.Fatalf("expected %d == %d", k, v)
		}
		if v != i+128 {
			t.Fatalf("wrong value at key %d: %d, want %d", i, v, i+128)
		}
	}

	for i := 0; i < 128; i++ {
		_, ok := cache.Get(i)
		if ok {
			t.Fatalf("%d should be evicted", i)
		}
	}
	for i := 128; i < 256; i++ {
		_, ok := cache.Get(i)
		if !ok {
			t.Fatalf("%d should not be evicted", i)
		}
	}
	checkInvariants(t, &cache)
}

// Checks the capacity bound and the exact eviction order against a naive
// model that keeps entries in a slice ordered from oldest to newest.
func TestBasicLRUAgainstModel(t *testing.T) {
	type pair struct{ k, v int }

	const (
		capacity = 8
		keySpace = 24
		ops      = 5000
	)
	var (
		rng   = rand.New(rand.NewSource(1))
		cache = mustNew[int, int](t, capacity)
		model []pair
	)
	find := func(k int) int {
		return slices.IndexFunc(model, func(p pair) bool { return p.k == k })
	}
	for i := 0; i < ops; i++ {
		k := rng.Intn(keySpace)
		if rng.Intn(2) == 0 {
			v := rng.Int()
			evicted := cache.Add(k, v)

			wantEvict := false
			if pos := find(k); pos >= 0 {
				model = slices.Delete(model, pos, pos+1)
			} else if len(model) == capacity {
				model = model[1:]
				wantEvict = true
			}
			model = append(model, pair{k, v})
			if evicted != wantEvict {
				t.Fatalf("op %d: Add(%d) evicted=%v, want %v", i, k, evicted, wantEvict)
			}
		} else {
			v, ok := cache.Get(k)

			pos := find(k)
			if ok != (pos >= 0) {
				t.Fatalf("op %d: Get(%d) ok=%v, want %v", i, k, ok, pos >= 0)
			}
			if ok {
				p := model[pos]
				if v != p.v {
					t.Fatalf("op %d: Get(%d) = %d, want %d", i, k, v, p.v)
				}
				model = append(slices.Delete(model, pos, pos+1), p)
			}
		}
		checkInvariants(t, &cache)

		want := make([]int, len(model))
		for j, p := range model {
			want[j] = p.k
		}
		if got := cache.Keys(); !slices.Equal(got, want) {
			t.Fatalf("op %d: recency order mismatch\ngot:  %v\nwant: %v", i, got, want)
		}
	}
}

func TestBasicLRURoundTrip(t *testing.T) {
	cache := mustNew[string, string](t, 4)

	for i := 0; i < 4; i++ {
		cache.Add(fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i))
	}
	for i := 0; i < 4; i++ {
		v, ok := cache.Get(fmt.Sprintf("k%d", i))
		if !ok || v != fmt.Sprintf("v%d", i) {
			t.Fatalf("k%d: got (%q, %v)", i, v, ok)
		}
	}
}

func TestBasicLRUEvictsFirstInserted(t *testing.T) {
	for _, n := range []int{1, 2, 3, 16} {
		cache := mustNew[int, int](t, n)
		for i := 0; i <= n; i++ {
			evicted := cache.Add(i, i)
			if evicted != (i == n) {
				t.Fatalf("cap %d: Add(%d) evicted=%v", n, i, evicted)
			}
		}
		if cache.Contains(0) {
			t.Fatalf("cap %d: first inserted key still resident", n)
		}
		for i := 1; i <= n; i++ {
			if !cache.Contains(i) {
				t.Fatalf("cap %d: key %d missing", n, i)
			}
		}
		checkInvariants(t, &cache)
	}
}

func TestBasicLRUGetRefreshesRecency(t *testing.T) {
	cache := mustNew[string, int](t, 2)
	cache.Add("A", 1)
	cache.Add("B", 2)
	if _, ok := cache.Get("A"); !ok {
		t.Fatal("A missing")
	}
	cache.Add("C", 3)

	if cache.Contains("B") {
		t.Fatal("B should have been evicted")
	}
	if v, ok := cache.Get("A"); !ok || v != 1 {
		t.Fatalf("A: got (%d, %v)", v, ok)
	}
	if v, ok := cache.Get("C"); !ok || v != 3 {
		t.Fatalf("C: got (%d, %v)", v, ok)
	}
}

func TestBasicLRUAddExistingKey(t *testing.T) {
	cache := mustNew[string, int](t, 1)

	cache.Add("A", 1)
	if evicted := cache.Add("A", 2); evicted {
		t.Fatal("overwriting a resident key must not evict")
	}
	if cache.Len() != 1 {
		t.Fatalf("wrong len %d", cache.Len())
	}
	if v, ok := cache.Get("A"); !ok || v != 2 {
		t.Fatalf("A: got (%d, %v), want (2, true)", v, ok)
	}
}

func TestBasicLRUAddRefreshesRecency(t *testing.T) {
	cache := mustNew[int, int](t, 2)
	cache.Add(1, 1)
	cache.Add(2, 2)
	cache.Add(1, 10)
	cache.Add(3, 3)

	if cache.Contains(2) {
		t.Fatal("2 should have been evicted")
	}
	if v, _ := cache.Peek(1); v != 10 {
		t.Fatalf("wrong value for 1: %d", v)
	}
}

func TestBasicLRUMissHasNoEffect(t *testing.T) {
	cache := mustNew[int, int](t, 3)
	cache.Add(1, 1)
	cache.Add(2, 2)

	before := cache.Keys()
	for i := 0; i < 3; i++ {
		v, ok := cache.Get(42)
		if ok || v != 0 {
			t.Fatalf("miss returned (%d, %v)", v, ok)
		}
	}
	if after := cache.Keys(); !slices.Equal(before, after) {
		t.Fatalf("miss changed recency order: %v -> %v", before, after)
	}
	if cache.Len() != 2 {
		t.Fatalf("miss changed size: %d", cache.Len())
	}
}

func TestBasicLRUScenario(t *testing.T) {
	cache := mustNew[string, int](t, 3)
	cache.Add("A", 1)
	cache.Add("B", 2)
	cache.Add("C", 3)
	cache.Add("D", 4)

	if _, ok := cache.Get("A"); ok {
		t.Fatal("A should be evicted")
	}
	for k, want := range map[string]int{"B": 2, "C": 3, "D": 4} {
		if v, ok := cache.Get(k); !ok || v != want {
			t.Errorf("%s: got (%d, %v), want %d", k, v, ok, want)
		}
	}
}

func TestBasicLRUAddReturnValue(t *testing.T) {
	cache := mustNew[int, int](t, 1)
	if cache.Add(1, 1) {
		t.Error("Add 1 should not have evicted")
	}
	if !cache.Add(2, 2) {
		t.Error("Add 2 should have evicted")
	}
}

func TestBasicLRUGetOldest(t *testing.T) {
	cache := mustNew[int, int](t, 128)

	if _, _, ok := cache.GetOldest(); ok {
		t.Fatal("empty cache has an oldest entry")
	}
	for i := 0; i < 256; i++ {
		cache.Add(i, i)
	}
	k, v, ok := cache.GetOldest()
	if !ok {
		t.Fatalf("missing")
	}
	if k != 128 || v != 128 {
		t.Fatalf("bad oldest: (%d, %d)", k, v)
	}

	// GetOldest must not refresh the entry.
	cache.Add(256, 256)
	if cache.Contains(128) {
		t.Fatal("128 should have been the eviction victim")
	}
}

func TestBasicLRUContainsAndPeekKeepRecency(t *testing.T) {
	cache := mustNew[int, int](t, 2)
	cache.Add(1, 1)
	cache.Add(2, 2)
	if !cache.Contains(1) {
		t.Errorf("1 should be contained")
	}
	if v, ok := cache.Peek(1); !ok || v != 1 {
		t.Errorf("Peek(1) = (%d, %v)", v, ok)
	}
	cache.Add(3, 3)
	if cache.Contains(1) {
		t.Errorf("Contains/Peek should not have updated recency of 1")
	}
}

func TestBasicLRUReferenceValues(t *testing.T) {
	cache := mustNew[string, []byte](t, 2)
	cache.Add("buf", []byte("hello"))

	v, ok := cache.Get("buf")
	if !ok {
		t.Fatal("buf missing")
	}
	v[0] = 'j'
	if got, _ := cache.Peek("buf"); string(got) != "jello" {
		t.Fatalf("returned value does not alias stored value: %q", got)
	}
}

func TestBasicLRUArrayKeys(t *testing.T) {
	cache := mustNew[uuid.UUID, int](t, 16)

	ids := make([]uuid.UUID, 32)
	for i := range ids {
		ids[i] = uuid.New()
		cache.Add(ids[i], i)
	}
	for i, id := range ids {
		v, ok := cache.Get(id)
		if i < 16 && ok {
			t.Fatalf("id %d should be evicted", i)
		}
		if i >= 16 && (!ok || v != i) {
			t.Fatalf("id %d: got (%d, %v)", i, v, ok)
		}
	}
	// Keys built from the same bytes compare equal.
	var copied uuid.UUID
	copy(copied[:], ids[31][:])
	if _, ok := cache.Peek(copied); !ok {
		t.Fatal("copied key not found")
	}
	checkInvariants(t, &cache)
}

func BenchmarkLRU(b *testing.B) {
	var (
		capacity = 1000
		indexes  = make([]int, capacity*20)
		keys     = make([]string, capacity)
		values   = make([][]byte, capacity)
	)
	for i := range indexes {
		indexes[i] = rand.Intn(capacity)
	}
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
		values[i] = []byte(keys[i])
	}

	b.Run("Add/BasicLRU", func(b *testing.B) {
		cache := mustNew[string, []byte](b, capacity/2)
		for i := 0; i < b.N; i++ {
			k := indexes[i%len(indexes)]
			cache.Add(keys[k], values[k])
		}
	})
	b.Run("Get/BasicLRU", func(b *testing.B) {
		cache := mustNew[string, []byte](b, capacity)
		for i := range keys {
			cache.Add(keys[i], values[i])
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			k := keys[indexes[i%len(indexes)]]
			cache.Get(k)
		}
	})
}
