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

package openingbook

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func sequentialRandoms() *[numRandoms]uint64 {
	var r [numRandoms]uint64
	for i := range r {
		r[i] = uint64(i)*0x9E3779B97F4A7C15 + 1
	}
	return &r
}

func TestHashSideToMoveOnlyDiffersByTurnKey(t *testing.T) {
	randoms := sequentialRandoms()
	white, err := position.NewBoardFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	black, err := position.NewBoardFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)

	hw := Hash(white, randoms)
	hb := Hash(black, randoms)
	assert.Equal(t, hw^randoms[randTurn], hb)
}

func TestHashIsDeterministic(t *testing.T) {
	randoms := sequentialRandoms()
	b, err := position.NewBoardFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	h1 := Hash(b, randoms)
	h2 := Hash(b, randoms)
	assert.Equal(t, h1, h2, "hashing the same position twice must be deterministic")
}

func TestEpKeyOnlyFoldedInWhenCapturable(t *testing.T) {
	// Black to move, white just played e2-e4; a black pawn on d4 can
	// capture en passant, so the e-file key must be folded in.
	capturable, err := position.NewBoardFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)
	assert.True(t, epCapturable(capturable))

	// Same en-passant square, but no black pawn flanks it.
	notCapturable, err := position.NewBoardFEN("rnbqkbnr/pppp1ppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)
	assert.False(t, epCapturable(notCapturable))
}

func TestDecodePolyglotMoveNonCastling(t *testing.T) {
	// e2-e4: from e2 (file 4, poly rank 1) to e4 (file 4, poly rank 3), no promo.
	raw := uint16(4) | uint16(3)<<3 | uint16(4)<<6 | uint16(1)<<9
	d := decodePolyglotMove(raw)
	assert.Equal(t, SquareOf(6, 4), d.from, "poly rank 1 is rank 2, row 6 in this engine's convention")
	assert.Equal(t, SquareOf(4, 4), d.to, "poly rank 3 is rank 4, row 4")
	assert.Equal(t, PtNone, d.promo)
}

func TestDecodePolyglotMoveCastlingRewrite(t *testing.T) {
	// White kingside castling encoded king-e1-to-rook-h1: from-file=4,
	// from-rank=0 (rank1), to-file=7, to-rank=0.
	raw := uint16(7) | uint16(0)<<3 | uint16(4)<<6 | uint16(0)<<9
	d := decodePolyglotMove(raw)
	assert.Equal(t, SqE1, d.from)
	assert.Equal(t, SqG1, d.to, "king-to-rook-square castling encoding must rewrite to g1")
}

func TestDecodePolyglotMoveQueensideCastlingRewrite(t *testing.T) {
	raw := uint16(0) | uint16(0)<<3 | uint16(4)<<6 | uint16(0)<<9
	d := decodePolyglotMove(raw)
	assert.Equal(t, SqE1, d.from)
	assert.Equal(t, SqC1, d.to)
}

func TestFindMatchesWithinOneSegment(t *testing.T) {
	b := &Book{segments: []*segment{
		{entries: []entry{{key: 1, move: 1, weight: 10}, {key: 5, move: 2, weight: 5}, {key: 5, move: 3, weight: 5}, {key: 9, move: 4, weight: 1}}},
	}}
	matches := b.findMatches(5)
	require.Len(t, matches, 2)
	assert.Equal(t, uint16(2), matches[0].move)
	assert.Equal(t, uint16(3), matches[1].move)
}

func TestFindMatchesSpillsIntoNextSegment(t *testing.T) {
	b := &Book{segments: []*segment{
		{entries: []entry{{key: 1, move: 1, weight: 1}, {key: 7, move: 2, weight: 1}}},
		{entries: []entry{{key: 7, move: 3, weight: 1}, {key: 8, move: 4, weight: 1}}},
	}}
	matches := b.findMatches(7)
	require.Len(t, matches, 2)
	assert.Equal(t, uint16(2), matches[0].move)
	assert.Equal(t, uint16(3), matches[1].move)
}

func TestFindMatchesNoneWhenKeyAbsent(t *testing.T) {
	b := &Book{segments: []*segment{
		{entries: []entry{{key: 1, move: 1, weight: 1}, {key: 9, move: 2, weight: 1}}},
	}}
	assert.Nil(t, b.findMatches(5))
}

func TestWeightedPickConvergesToWeightRatio(t *testing.T) {
	b := &Book{rngSeed: 12345}
	matches := []entry{{key: 1, move: 1, weight: 3}, {key: 1, move: 2, weight: 1}}
	counts := map[int]int{}
	for seed := uint32(0); seed < 4000; seed++ {
		b.rngSeed = seed
		counts[b.weightedPick(0xABCDEF, matches)]++
	}
	assert.Greater(t, counts[0], counts[1], "higher-weighted entry should win substantially more often")
}

// writeTestSegment writes a minimal valid segment file: a little-endian
// count header followed by big-endian 16-byte entries.
func writeTestSegment(t *testing.T, path string, entries []entry) {
	t.Helper()
	buf := make([]byte, 4+len(entries)*entrySize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(entries)))
	off := 4
	for _, e := range entries {
		binary.BigEndian.PutUint64(buf[off:off+8], e.key)
		binary.BigEndian.PutUint16(buf[off+8:off+10], e.move)
		binary.BigEndian.PutUint16(buf[off+10:off+12], e.weight)
		off += entrySize
	}
	require.NoError(t, os.WriteFile(path, buf, 0o644))
}

func writeTestRandomTable(t *testing.T, path string, randoms *[numRandoms]uint64) {
	t.Helper()
	buf := make([]byte, numRandoms*8)
	for i, v := range randoms {
		binary.BigEndian.PutUint64(buf[i*8:i*8+8], v)
	}
	require.NoError(t, os.WriteFile(path, buf, 0o644))
}

func TestBookProbeReturnsLegalMoveFromSingleEntryBook(t *testing.T) {
	dir := t.TempDir()
	randoms := sequentialRandoms()
	writeTestRandomTable(t, filepath.Join(dir, "randoms.bin"), randoms)

	start, err := position.NewBoardFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	key := Hash(start, randoms)

	// e2-e4: from-rank=1 (rank2), to-rank=3 (rank4), file 4, no promo.
	e2e4 := uint16(4) | uint16(3)<<3 | uint16(4)<<6 | uint16(1)<<9
	writeTestSegment(t, filepath.Join(dir, "test01.bin"), []entry{{key: key, move: e2e4, weight: 1}})

	oldPath, oldPrio, oldTable, oldUse := config.Settings.Book.BookPath, config.Settings.Book.TierPriority, config.Settings.Book.RandomTablePath, config.Settings.Book.UseBook
	defer func() {
		config.Settings.Book.BookPath = oldPath
		config.Settings.Book.TierPriority = oldPrio
		config.Settings.Book.RandomTablePath = oldTable
		config.Settings.Book.UseBook = oldUse
	}()
	config.Settings.Book.UseBook = true
	config.Settings.Book.BookPath = dir
	config.Settings.Book.TierPriority = []string{"test"}
	config.Settings.Book.RandomTablePath = filepath.Join(dir, "randoms.bin")

	book := New()
	require.NoError(t, book.Initialize())
	ready, segCount, total := book.GetInfo()
	assert.True(t, ready)
	assert.Equal(t, 1, segCount)
	assert.Equal(t, 1, total)
	assert.Equal(t, "test", book.GetTierName())

	move, ok := book.Probe(start)
	require.True(t, ok)
	assert.Equal(t, "e2e4", move.StringUCI())
}

func TestBookNotReadyWithoutSegments(t *testing.T) {
	dir := t.TempDir()
	randoms := sequentialRandoms()
	writeTestRandomTable(t, filepath.Join(dir, "randoms.bin"), randoms)

	oldPath, oldPrio, oldTable, oldUse := config.Settings.Book.BookPath, config.Settings.Book.TierPriority, config.Settings.Book.RandomTablePath, config.Settings.Book.UseBook
	defer func() {
		config.Settings.Book.BookPath = oldPath
		config.Settings.Book.TierPriority = oldPrio
		config.Settings.Book.RandomTablePath = oldTable
		config.Settings.Book.UseBook = oldUse
	}()
	config.Settings.Book.UseBook = true
	config.Settings.Book.BookPath = dir
	config.Settings.Book.TierPriority = []string{"missing"}
	config.Settings.Book.RandomTablePath = filepath.Join(dir, "randoms.bin")

	book := New()
	require.NoError(t, book.Initialize())
	ready, _, _ := book.GetInfo()
	assert.False(t, ready)

	start := position.NewBoard()
	_, ok := book.Probe(start)
	assert.False(t, ok)
}
