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

package position

import (
	"github.com/corvidchess/corvid/internal/config"
	. "github.com/corvidchess/corvid/internal/types"
)

// pieceValue returns the material value of a single piece in centipawns,
// kept incrementally on every placePiece/removePiece so the evaluator
// never needs to walk the board just to know material balance. The king
// contributes nothing; its presence is tracked separately via kingSquare.
func pieceValue(p Piece) int32 {
	switch p.TypeOf() {
	case Pawn:
		return int32(config.Settings.Eval.PawnValue)
	case Knight:
		return int32(config.Settings.Eval.KnightValue)
	case Bishop:
		return int32(config.Settings.Eval.BishopValue)
	case Rook:
		return int32(config.Settings.Eval.RookValue)
	case Queen:
		return int32(config.Settings.Eval.QueenValue)
	}
	return 0
}

// phaseWeight is the tapered-eval contribution of one piece of the given
// type, following the common convention of weighting minor pieces 1,
// rooks 2 and the queen 4; pawns and kings don't move the needle between
// middlegame and endgame.
func phaseWeight(pt PieceType) int32 {
	switch pt {
	case Knight, Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 4
	}
	return 0
}

// Material returns the raw material balance for color c in centipawns.
func (b *Board) Material(c Color) int32 { return b.material[c] }
