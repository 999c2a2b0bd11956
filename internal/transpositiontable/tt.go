/*
 * Corvid - a chess engine core in Go, written for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2026 The Corvid Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package transpositiontable implements a fixed-size, open-addressed
// transposition table keyed by a position's (hash32, lock16) pair. The
// Table type is not thread safe: callers must not probe or store from
// more than one goroutine concurrently, and must not call Resize or
// Clear while a search is in flight.
package transpositiontable

import (
	"context"
	"math"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB is the largest table size Resize accepts.
const MaxSizeInMB = 65_536

// Table is the transposition table.
type Table struct {
	log         *logging.Logger
	data        []Entry
	sizeInBytes uint64
	indexMask   uint32
	maxEntries  uint32
	usedEntries uint64
	generation  uint16
	Stats       Stats
}

// Stats holds counters on table usage, reported via String for UCI-style
// "info string" diagnostics.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// New creates a Table sized to at most sizeInMByte megabytes.
func New(sizeInMByte int) *Table {
	t := &Table{log: myLogging.GetLog()}
	t.Resize(sizeInMByte)
	return t
}

// Resize discards all entries and rebuilds the table at the given size.
// Actual capacity is rounded down to a power of two number of entries so
// hashing can mask instead of mod.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		t.log.Warningf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB)
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}

	bytes := uint64(sizeInMByte) * 1024 * 1024
	maxEntries := uint64(0)
	if bytes >= EntrySize {
		maxEntries = uint64(1) << uint(math.Floor(math.Log2(float64(bytes/EntrySize))))
	}

	t.maxEntries = uint32(maxEntries)
	t.indexMask = t.maxEntries - 1
	t.sizeInBytes = maxEntries * EntrySize
	t.data = make([]Entry, maxEntries)
	t.usedEntries = 0
	t.generation = 1
	t.Stats = Stats{}

	t.log.Infof("transposition table resized to %d MB, %d entries of %d bytes each",
		t.sizeInBytes/(1024*1024), t.maxEntries, EntrySize)
}

// Clear empties every slot without changing capacity.
func (t *Table) Clear() {
	t.data = make([]Entry, t.maxEntries)
	t.usedEntries = 0
	t.generation = 1
	t.Stats = Stats{}
}

// NewSearch bumps the table's generation, making every previously stored
// entry look one generation older for replacement purposes without
// touching the data itself. Called once per SearchGo.
func (t *Table) NewSearch() {
	t.generation++
	if t.generation > maxGen {
		t.generation = 1
	}
}

func (t *Table) index(hash uint32) uint32 {
	if t.maxEntries == 0 {
		return 0
	}
	return hash & t.indexMask
}

// Probe looks up (hash, lock, ply) and returns the stored score (already
// denormalized for the current ply), packed move, depth and bound. ok is
// false on a miss or a lock mismatch.
func (t *Table) Probe(hash uint32, lock uint16, ply int) (score Value, move uint16, depth int8, bound Bound, ok bool) {
	t.Stats.Probes++
	if t.maxEntries == 0 {
		t.Stats.Misses++
		return 0, PackedNone, 0, BoundNone, false
	}
	e := &t.data[t.index(hash)]
	if !e.occupied() || e.hash != hash || e.lock != lock {
		t.Stats.Misses++
		return 0, PackedNone, 0, BoundNone, false
	}
	t.Stats.Hits++
	return denormalizeMate(e.Score(), ply), e.move, e.Depth(), e.BoundKind(), true
}

// Store writes (hash, lock, score, move, depth, bound) into its slot,
// applying mate-score normalization so the stored value is ply independent.
// Replacement favors the higher depth; an equal or lower depth entry from
// an older generation is still replaced so stale lines get evicted.
func (t *Table) Store(hash uint32, lock uint16, score Value, move uint16, depth int8, bound Bound, ply int) {
	if t.maxEntries == 0 {
		return
	}
	t.Stats.Puts++
	e := &t.data[t.index(hash)]
	normalized := normalizeMate(score, ply)

	if !e.occupied() {
		t.usedEntries++
		*e = Entry{hash: hash, lock: lock, move: move, score: int16(normalized), vmeta: packVmeta(depth, bound, t.generation)}
		return
	}

	if e.hash != hash || e.lock != lock {
		t.Stats.Collisions++
		if depth >= e.Depth() || e.generation() != t.generation {
			t.Stats.Overwrites++
			*e = Entry{hash: hash, lock: lock, move: move, score: int16(normalized), vmeta: packVmeta(depth, bound, t.generation)}
		}
		return
	}

	// Same position: keep the existing move when the caller has none to offer.
	if move == PackedNone {
		move = e.move
	}
	*e = Entry{hash: hash, lock: lock, move: move, score: int16(normalized), vmeta: packVmeta(depth, bound, t.generation)}
}

// normalizeMate converts a mate score found at ply plies from the root
// into a ply-independent "mate from here" score safe to store.
func normalizeMate(v Value, ply int) Value {
	if v > ValueMateThreshold {
		return v + Value(ply)
	}
	if v < -ValueMateThreshold {
		return v - Value(ply)
	}
	return v
}

// denormalizeMate is the inverse of normalizeMate, applied on probe.
func denormalizeMate(v Value, ply int) Value {
	if v > ValueMateThreshold {
		return v - Value(ply)
	}
	if v < -ValueMateThreshold {
		return v + Value(ply)
	}
	return v
}

// Hashfull reports how full the table is in permill, as UCI's "info
// hashfull" expects.
func (t *Table) Hashfull() int {
	if t.maxEntries == 0 {
		return 0
	}
	return int((1000 * t.usedEntries) / uint64(t.maxEntries))
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 { return t.usedEntries }

// AgeEntries sweeps the whole table and re-stamps every occupied entry
// from an earlier generation with the current one; no entry is removed.
// The sweep is fanned out over a bounded number of goroutines the way the
// teacher's AgeEntries does, but using errgroup in place of the teacher's
// raw sync.WaitGroup loop since it is the one place in this
// single-threaded-search engine where fixed, bounded concurrency over
// slices is legitimate.
func (t *Table) AgeEntries() {
	if t.usedEntries == 0 {
		return
	}
	const workers = 32
	slice := uint32(len(t.data)) / workers

	g, _ := errgroup.WithContext(context.Background())
	for w := uint32(0); w < workers; w++ {
		start := w * slice
		end := start + slice
		if w == workers-1 {
			end = uint32(len(t.data))
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				e := &t.data[i]
				if e.occupied() && e.generation() != t.generation {
					e.vmeta = packVmeta(e.Depth(), e.BoundKind(), t.generation)
				}
			}
			return nil
		})
	}
	_ = g.Wait()
}

// String reports a one-line summary of table size and hit rate.
func (t *Table) String() string {
	return out.Sprintf("TT: %d MB, %d/%d entries (%d%%), probes %d hits %d (%d%%) misses %d collisions %d overwrites %d",
		t.sizeInBytes/(1024*1024), t.usedEntries, t.maxEntries, t.Hashfull()/10,
		t.Stats.Probes, t.Stats.Hits, (t.Stats.Hits*100)/(1+t.Stats.Probes),
		t.Stats.Misses, t.Stats.Collisions, t.Stats.Overwrites)
}
