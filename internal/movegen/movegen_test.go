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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// TestPerftStartPosition and TestPerftKiwipete check perft at shallow
// depths that run fast enough for every normal test invocation. The
// mandated deep seed cases (including these two positions at their full
// specified depth) live in perft_slow_test.go, built with the "slow" tag.
func TestPerftStartPosition(t *testing.T) {
	b := position.NewBoard()
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		got := Run(b, c.depth)
		assert.Equal(t, c.nodes, got.Nodes, "perft depth %d", c.depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	b, err := position.NewBoardFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	got := Run(b, 1)
	assert.Equal(t, uint64(48), got.Nodes)
	got2 := Run(b, 2)
	assert.Equal(t, uint64(2039), got2.Nodes)
}

func TestPerftPromotionPosition(t *testing.T) {
	b, err := position.NewBoardFEN("n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1")
	require.NoError(t, err)
	got := Run(b, 1)
	assert.Equal(t, uint64(24), got.Nodes)
}

func TestGenerateModesPartitionAllMoves(t *testing.T) {
	b, err := position.NewBoardFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var all, captures, quiets [256]Move
	nAll := Generate(b, All, all[:])
	nCaptures := Generate(b, Captures, captures[:])
	nQuiets := Generate(b, Quiets, quiets[:])

	assert.Equal(t, nAll, nCaptures+nQuiets, "captures+quiets should partition all pseudo-legal moves")
}

func TestIsLegalRejectsMoveThatExposesKing(t *testing.T) {
	b, err := position.NewBoardFEN("4k3/8/8/8/8/8/8/r2RK3 w - - 0 1")
	require.NoError(t, err)
	pinnedRookMove := CreateMove(ParseSquare("d1"), ParseSquare("d5"), 0, PtNone)
	assert.False(t, IsLegal(b, pinnedRookMove))

	alongPinMove := CreateMove(ParseSquare("d1"), ParseSquare("a1"), FlagCapture, PtNone)
	assert.True(t, IsLegal(b, alongPinMove))
}

func TestComputeLegalInfoFindsSingleChecker(t *testing.T) {
	b, err := position.NewBoardFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	info := ComputeLegalInfo(b, White)
	assert.True(t, info.InCheck)
	assert.Equal(t, 1, info.NumCheckers)
	assert.Equal(t, ParseSquare("e2"), info.Checkers[0])
}

func TestComputeLegalInfoFindsPin(t *testing.T) {
	b, err := position.NewBoardFEN("4k3/8/8/8/8/8/8/r2RK3 w - - 0 1")
	require.NoError(t, err)
	info := ComputeLegalInfo(b, White)
	assert.False(t, info.InCheck)
	assert.True(t, info.Pinned[ParseSquare("d1")])
}

func TestIsEvasionCandidateFiltersNonEvasions(t *testing.T) {
	b, err := position.NewBoardFEN("4k3/8/8/8/8/8/4r3/1N2K3 w - - 0 1")
	require.NoError(t, err)
	info := ComputeLegalInfo(b, White)

	kingStep := CreateMove(ParseSquare("e1"), ParseSquare("d2"), 0, PtNone)
	assert.True(t, IsEvasionCandidate(b, kingStep, White, info))

	unrelatedMove := CreateMove(ParseSquare("b1"), ParseSquare("c3"), 0, PtNone)
	assert.False(t, IsEvasionCandidate(b, unrelatedMove, White, info))
}
