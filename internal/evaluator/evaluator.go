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

// Package evaluator computes a static score for a position from the
// side-to-move's perspective. The search treats Evaluate as an opaque
// black box: everything it needs from a position is either already
// tracked incrementally on the board (material, phase) or cheap to
// recompute from the piece lists (piece-square placement, bishop pair).
package evaluator

import (
	. "github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Evaluate scores b from the perspective of the side to move: positive
// favors the mover, negative favors the opponent.
func Evaluate(b *position.Board) Value {
	white := sideScore(b, White)
	black := sideScore(b, Black)
	score := white - black

	if b.Side() == White {
		score += int32(Settings.Eval.Tempo)
	} else {
		score -= int32(Settings.Eval.Tempo)
	}

	if b.Side() == Black {
		score = -score
	}
	return Value(score)
}

func sideScore(b *position.Board, c Color) int32 {
	score := b.Material(c)
	score += placementScore(b, c)
	if hasBishopPair(b, c) {
		score += int32(Settings.Eval.BishopPairBonus)
	}
	return score
}

func hasBishopPair(b *position.Board, c Color) bool {
	bishops := 0
	for _, sq := range b.PieceList(c) {
		if b.PieceAt(sq).TypeOf() == Bishop {
			bishops++
		}
	}
	return bishops >= 2
}

// placementScore sums piece-square table contributions, tapering each
// piece's table between its middlegame and endgame value by the board's
// current phase (PhaseMaxMaterial at the numerator's cap means "pure
// middlegame", zero means "pure endgame").
func placementScore(b *position.Board, c Color) int32 {
	phase := b.Phase()
	maxPhase := int32(Settings.Eval.PhaseMaxMaterial)
	if maxPhase <= 0 {
		maxPhase = 1
	}
	if phase > maxPhase {
		phase = maxPhase
	}

	var mg, eg int32
	for _, sq := range b.PieceList(c) {
		p := b.PieceAt(sq)
		idx := pstIndex(sq, c)
		mg += int32(pieceSquareTable[p.TypeOf()].mg[idx])
		eg += int32(pieceSquareTable[p.TypeOf()].eg[idx])
	}
	return (mg*phase + eg*(maxPhase-phase)) / maxPhase
}

// pstIndex mirrors the table vertically for Black so every table is
// written once, from White's point of view, with rank 1 first.
func pstIndex(sq Square, c Color) int {
	if c == White {
		return (7-sq.RowOf())*8 + sq.ColOf()
	}
	return sq.RowOf()*8 + sq.ColOf()
}
