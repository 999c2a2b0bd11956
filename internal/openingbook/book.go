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

// Package openingbook loads a segmented, on-disk Polyglot opening book and
// probes it for a move in a given position: compute the position's
// Polyglot key, binary-search the resident segments for matching entries,
// and weight-select among them.
package openingbook

import (
	"time"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Book is a read-only-after-init Polyglot opening book: a single tier's
// segments, tried in the configured priority order at load time, plus the
// shared 781-value random table used to compute position keys.
type Book struct {
	log *logging.Logger

	randoms *[numRandoms]uint64

	segments     []*segment
	tierName     string
	totalEntries int

	rngSeed uint32
	ready   bool
}

// New returns an uninitialized book; call Initialize before probing.
func New() *Book {
	return &Book{log: myLogging.GetLog()}
}

// Initialize loads the shared random table and the first tier (in
// priority order) that has at least one segment on disk. A missing random
// table is fatal: the book cannot compute keys without it. Missing
// segments are not an error; the book simply stays not-ready.
func (b *Book) Initialize() error {
	if b.ready {
		return nil
	}
	if !config.Settings.Book.UseBook {
		return nil
	}

	b.log.Info("Initializing opening book")
	start := time.Now()

	randoms, err := loadRandomTable(config.Settings.Book.RandomTablePath)
	if err != nil {
		b.log.Errorf("opening book random table could not be loaded: %s", err)
		return err
	}
	b.randoms = randoms

	for _, tier := range config.Settings.Book.TierPriority {
		segments, err := loadTier(config.Settings.Book.BookPath, tier, config.Settings.Book.MaxSegments)
		if err != nil {
			b.log.Warningf("tier %q failed to load cleanly: %s", tier, err)
		}
		if len(segments) == 0 {
			continue
		}
		b.segments = segments
		b.tierName = tier
		break
	}

	for _, seg := range b.segments {
		b.totalEntries += len(seg.entries)
	}
	b.ready = b.totalEntries > 0
	b.rngSeed = uint32(time.Now().UnixNano())

	if b.ready {
		b.log.Infof("Opening book ready: tier %q, %d segments, %d entries, loaded in %d ms",
			b.tierName, len(b.segments), b.totalEntries, time.Since(start).Milliseconds())
	} else {
		b.log.Warning("Opening book found no segments for any configured tier; book is not ready")
	}
	return nil
}

// GetInfo reports readiness, the number of resident segments and the
// total entry count across them.
func (b *Book) GetInfo() (ready bool, segmentCount int, totalEntries int) {
	return b.ready, len(b.segments), b.totalEntries
}

// GetTierName returns the tier prefix that was ultimately loaded, or "" if
// the book is not ready.
func (b *Book) GetTierName() string {
	return b.tierName
}

// Close releases the book's resident data so it can be Initialize-d again.
func (b *Book) Close() {
	b.segments = nil
	b.randoms = nil
	b.tierName = ""
	b.totalEntries = 0
	b.ready = false
}

// Probe returns a weight-selected, legality-verified book move for board,
// or MoveNone, false if the book is not ready, has no matching key, or no
// candidate entry resolves to a legal move.
func (b *Book) Probe(board *position.Board) (Move, bool) {
	if !b.ready {
		return MoveNone, false
	}
	key := Hash(board, b.randoms)
	matches := b.findMatches(key)
	if len(matches) == 0 {
		return MoveNone, false
	}

	winner := b.weightedPick(key, matches)
	if m, ok := b.resolveMove(board, matches[winner].move); ok {
		return m, true
	}
	for i, e := range matches {
		if i == winner {
			continue
		}
		if m, ok := b.resolveMove(board, e.move); ok {
			return m, true
		}
	}
	return MoveNone, false
}

// findMatches collects every resident entry whose key equals target,
// binary-searching the first segment that could contain it and spilling
// into the next segment if the run of equal keys reaches the boundary.
func (b *Book) findMatches(target uint64) []entry {
	for si, seg := range b.segments {
		idx := seg.firstAtOrAfter(target)
		if idx == len(seg.entries) {
			continue
		}
		if seg.entries[idx].key != target {
			return nil
		}
		var matches []entry
		j := idx
		for ; j < len(seg.entries) && seg.entries[j].key == target; j++ {
			matches = append(matches, seg.entries[j])
		}
		if j == len(seg.entries) && si+1 < len(b.segments) {
			next := b.segments[si+1]
			for k := 0; k < len(next.entries) && next.entries[k].key == target; k++ {
				matches = append(matches, next.entries[k])
			}
		}
		return matches
	}
	return nil
}

// weightedPick applies the documented hash-mix RNG to choose among
// matches, weighted by each entry's stored weight.
func (b *Book) weightedPick(key uint64, matches []entry) int {
	var total uint32
	for _, e := range matches {
		total += uint32(e.weight)
	}
	if total == 0 {
		return 0
	}

	h := b.rngSeed ^ uint32(key) ^ uint32(key>>32)
	h ^= h >> 16
	h *= 0x45d9f3b
	h ^= h >> 16
	pick := h % total

	var cum uint32
	for i, e := range matches {
		cum += uint32(e.weight)
		if cum > pick {
			return i
		}
	}
	return len(matches) - 1
}

// resolveMove converts a Polyglot-encoded move to a move this engine can
// play: generate from the board, match by from/to/promotion, then
// make+is-in-check+unmake to confirm legality.
func (b *Book) resolveMove(board *position.Board, raw uint16) (Move, bool) {
	d := decodePolyglotMove(raw)
	if board.PieceAt(d.from).TypeOf() != King {
		// Only a king's e-file move is a castling encoding; keep the raw square.
		d.to = SquareOf(7-int((raw>>3)&0x7), int(raw&0x7))
	}

	var buf [256]Move
	n := movegen.Generate(board, movegen.All, buf[:])
	us := board.Side()

	for i := 0; i < n; i++ {
		m := buf[i]
		if m.From() != d.from || m.To() != d.to {
			continue
		}
		if m.IsPromotion() != (d.promo != PtNone) {
			continue
		}
		if m.IsPromotion() && m.PromotionType() != d.promo {
			continue
		}

		var undo position.Undo
		board.Make(m, &undo)
		legal := !board.InCheck(us)
		board.Unmake(m, &undo)
		if legal {
			return m, true
		}
	}
	return MoveNone, false
}
