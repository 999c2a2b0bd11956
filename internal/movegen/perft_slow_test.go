//go:build slow

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
)

// The mandated perft seed cases, run at their full specified depth: run
// with "go test -tags slow ./internal/movegen/". Each runs in parallel
// since they are independent and some take a while at these depths.

func TestPerftStartPositionDepth5(t *testing.T) {
	t.Parallel()
	b := position.NewBoard()
	got := Run(b, 5)
	assert.Equal(t, uint64(4_865_609), got.Nodes)
}

func TestPerftKiwipeteDepth4(t *testing.T) {
	t.Parallel()
	b, err := position.NewBoardFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	got := Run(b, 4)
	assert.Equal(t, uint64(4_085_603), got.Nodes)
}

func TestPerftPosition3Depth5(t *testing.T) {
	t.Parallel()
	b, err := position.NewBoardFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)
	got := Run(b, 5)
	assert.Equal(t, uint64(674_624), got.Nodes)
}

func TestPerftPosition4Depth5(t *testing.T) {
	t.Parallel()
	b, err := position.NewBoardFEN("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	require.NoError(t, err)
	got := Run(b, 5)
	assert.Equal(t, uint64(15_833_292), got.Nodes)
}

func TestPerftPosition5Depth4(t *testing.T) {
	t.Parallel()
	b, err := position.NewBoardFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	require.NoError(t, err)
	got := Run(b, 4)
	assert.Equal(t, uint64(2_103_487), got.Nodes)
}

func TestPerftEdgeEnPassantDepth6(t *testing.T) {
	t.Parallel()
	b, err := position.NewBoardFEN("8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1")
	require.NoError(t, err)
	got := Run(b, 6)
	assert.Equal(t, uint64(1_440_467), got.Nodes)
}
