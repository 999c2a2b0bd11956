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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/position"
)

func TestEvaluateStartPositionIsSymmetricModuloTempo(t *testing.T) {
	b := position.NewBoard()
	white := Evaluate(b)
	assert.Equal(t, int32(10), int32(white), "only the tempo bonus should separate the sides at move one")
}

func TestEvaluateRewardsMaterialAdvantage(t *testing.T) {
	b, err := position.NewBoardFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)
	score := Evaluate(b)
	assert.Greater(t, int32(score), int32(800), "a lone extra queen must dominate the score")
}

func TestEvaluateBishopPairBonus(t *testing.T) {
	withPair, err := position.NewBoardFEN("4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1")
	require.NoError(t, err)
	withoutPair, err := position.NewBoardFEN("4k3/8/8/8/8/8/8/3NKB2 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, int32(Evaluate(withPair)), int32(Evaluate(withoutPair))-1,
		"two bishops should score at least as well as a minor-piece-for-minor-piece swap plus the pair bonus")
}

func TestEvaluateFlipsSignForBlackToMove(t *testing.T) {
	b, err := position.NewBoardFEN("4k3/8/8/8/8/8/8/4KQ2 b - - 0 1")
	require.NoError(t, err)
	score := Evaluate(b)
	assert.Less(t, int32(score), int32(0), "Black to move and down a queen must see a negative score")
}
