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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/history"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
)

func newTestContext() *Context {
	return NewContext(transpositiontable.New(1), history.NewKillers(), history.NewTable(), NewRepetitionHistory())
}

// TestNegamaxScoresThreefoldRepetitionAsDraw exercises the ply>0 repetition
// gate directly (alphabeta.go's negamax, repetition.go's IsRepetition):
// a position hash occurring three times at the same side to move, two plies
// apart, must score as ValueDraw without even reaching move generation.
func TestNegamaxScoresThreefoldRepetitionAsDraw(t *testing.T) {
	c := newTestContext()
	b := position.NewBoard()
	repeated := b.Hash()

	// Build a stack where `repeated` occurs at the current ply and two
	// plies back twice, i.e. three occurrences of the same position for
	// the side now to move: hashes[0], hashes[2] and hashes[4] (the one
	// IsRepetition treats as "just pushed").
	c.Repetition.Push(repeated)
	c.Repetition.Push(repeated + 1) // opponent's intervening position
	c.Repetition.Push(repeated)
	c.Repetition.Push(repeated + 2)
	c.Repetition.Push(repeated)

	score := c.negamax(b, 3, -ValueInfinite, ValueInfinite, 1, true, 0)
	assert.Equal(t, ValueDraw, score)
}

// TestNegamaxFindsMateInTwo checks the mate-in-N property via the full
// iterative-deepening entry point: a classical mate-in-2 must be reported
// with a score within the spec's documented tolerance, score = MATE - k
// for k <= 2*2+1.
func TestNegamaxFindsMateInTwo(t *testing.T) {
	c := newTestContext()
	b, err := position.NewBoardFEN("r1b1k2r/pppp1Npp/1b3n2/4p3/3nP3/2N5/PPPP1qPP/R1BQKB1R w KQkq - 0 1")
	require.NoError(t, err)

	res := c.Go(b, Limits{MaxDepth: 6})
	require.True(t, res.BestMove.IsValid())
	assert.Greater(t, int(res.Score), int(ValueMateThreshold), "a mate-in-2 must be reported as a forced mate score")
	assert.GreaterOrEqual(t, int(res.Score), int(ValueMate)-5, "score = MATE - k for some k <= 2*2+1")
}

// TestTranspositionTableExactEntryReproducesScoreAndMove stores an EXACT
// entry (alphabeta.go's TT-store at the end of negamax) with a full
// [-inf, +inf] window, then confirms both a direct probe and a second
// negamax call from the same node reproduce the stored score and move.
func TestTranspositionTableExactEntryReproducesScoreAndMove(t *testing.T) {
	c := newTestContext()
	b, err := position.NewBoardFEN("r1b1k2r/pppp1Npp/1b3n2/4p3/3nP3/2N5/PPPP1qPP/R1BQKB1R w KQkq - 0 1")
	require.NoError(t, err)

	const depth = 3
	first := c.negamax(b, depth, -ValueInfinite, ValueInfinite, 1, true, 0)

	score, move, ttDepth, bound, ok := c.TT.Probe(b.Hash(), b.Lock(), 1)
	require.True(t, ok, "a full-window search must leave an entry behind")
	assert.Equal(t, BoundExact, bound)
	assert.Equal(t, first, score)
	assert.GreaterOrEqual(t, int(ttDepth), depth)
	assert.True(t, UnpackMove(move).IsValid())

	second := c.negamax(b, depth, -ValueInfinite, ValueInfinite, 1, true, 0)
	assert.Equal(t, first, second, "re-searching the same node must reproduce the TT-backed score")

	score2, move2, _, _, ok2 := c.TT.Probe(b.Hash(), b.Lock(), 1)
	require.True(t, ok2)
	assert.Equal(t, move, move2, "the re-search must land on the same best move")
	assert.Equal(t, score, score2)
}
