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

// Package movegen generates pseudo-legal moves for a position and filters
// them down to legal moves. Generation writes into a caller-supplied
// slice and returns how many entries it used, so hot search code can
// reuse one backing array across an entire search instead of allocating
// a move list per node.
package movegen

import (
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Mode selects which subset of pseudo-legal moves Generate produces.
type Mode int

const (
	// All generates every pseudo-legal move.
	All Mode = iota
	// Captures generates captures and capture-promotions only.
	Captures
	// Quiets generates non-capturing moves, including quiet promotions.
	Quiets
)

var promotionKinds = [4]PieceType{Queen, Rook, Bishop, Knight}

// Generate writes pseudo-legal moves for the side to move into out and
// returns the count written. It panics if out is too small; callers are
// expected to size their backing arrays generously (256 is always
// enough for any reachable chess position).
func Generate(b *position.Board, mode Mode, out []Move) int {
	n := 0
	us := b.Side()
	them := us.Flip()

	for _, from := range b.PieceList(us) {
		p := b.PieceAt(from)
		switch p.TypeOf() {
		case Pawn:
			n = genPawnMoves(b, from, us, mode, out, n)
		case Knight:
			n = genStepMoves(b, from, KnightOffsets[:], us, mode, out, n)
		case Bishop:
			n = genSlideMoves(b, from, BishopDirections[:], us, mode, out, n)
		case Rook:
			n = genSlideMoves(b, from, RookDirections[:], us, mode, out, n)
		case Queen:
			n = genSlideMoves(b, from, QueenDirections[:], us, mode, out, n)
		case King:
			n = genKingSteps(b, from, us, mode, out, n)
		}
	}

	if mode != Captures {
		n = genCastling(b, us, them, out, n)
	}

	return n
}

func genStepMoves(b *position.Board, from Square, offsets []Direction, us Color, mode Mode, out []Move, n int) int {
	for _, d := range offsets {
		to := from.Add(d)
		if !to.IsValid() {
			continue
		}
		target := b.PieceAt(to)
		n = emitStep(target, us, from, to, mode, out, n)
	}
	return n
}

func genKingSteps(b *position.Board, from Square, us Color, mode Mode, out []Move, n int) int {
	return genStepMoves(b, from, QueenDirections[:], us, mode, out, n)
}

func emitStep(target Piece, us Color, from, to Square, mode Mode, out []Move, n int) int {
	if target == PieceNone {
		if mode != Captures {
			out[n] = CreateMove(from, to, 0, PtNone)
			n++
		}
		return n
	}
	if target.ColorOf() != us && mode != Quiets {
		out[n] = CreateMove(from, to, FlagCapture, PtNone)
		n++
	}
	return n
}

func genSlideMoves(b *position.Board, from Square, dirs []Direction, us Color, mode Mode, out []Move, n int) int {
	for _, d := range dirs {
		to := from.Add(d)
		for to.IsValid() {
			target := b.PieceAt(to)
			if target == PieceNone {
				if mode != Captures {
					out[n] = CreateMove(from, to, 0, PtNone)
					n++
				}
				to = to.Add(d)
				continue
			}
			if target.ColorOf() != us && mode != Quiets {
				out[n] = CreateMove(from, to, FlagCapture, PtNone)
				n++
			}
			break
		}
	}
	return n
}

func genPawnMoves(b *position.Board, from Square, us Color, mode Mode, out []Move, n int) int {
	fwd := us.PawnDirection()
	promoRow := us.PawnPromotionRow()

	if mode != Captures {
		one := from.Add(fwd)
		if one.IsValid() && b.PieceAt(one) == PieceNone {
			n = emitPawnAdvance(from, one, promoRow, out, n)
			if from.RowOf() == us.PawnStartRow() {
				two := one.Add(fwd)
				if two.IsValid() && b.PieceAt(two) == PieceNone {
					out[n] = CreateMove(from, two, FlagDoublePush, PtNone)
					n++
				}
			}
		}
	}

	if mode != Quiets {
		them := us.Flip()
		for _, side := range [2]Direction{West, East} {
			to := from.Add(fwd).Add(side)
			if !to.IsValid() {
				continue
			}
			if to == b.EpSquare() {
				out[n] = CreateMove(from, to, FlagCapture|FlagEnPassant, PtNone)
				n++
				continue
			}
			target := b.PieceAt(to)
			if target != PieceNone && target.ColorOf() == them {
				n = emitPawnCapture(from, to, promoRow, out, n)
			}
		}
	}

	return n
}

func emitPawnAdvance(from, to Square, promoRow int, out []Move, n int) int {
	if to.RowOf() == promoRow {
		for _, pt := range promotionKinds {
			out[n] = CreateMove(from, to, FlagPromotion, pt)
			n++
		}
		return n
	}
	out[n] = CreateMove(from, to, 0, PtNone)
	return n + 1
}

func emitPawnCapture(from, to Square, promoRow int, out []Move, n int) int {
	if to.RowOf() == promoRow {
		for _, pt := range promotionKinds {
			out[n] = CreateMove(from, to, FlagCapture|FlagPromotion, pt)
			n++
		}
		return n
	}
	out[n] = CreateMove(from, to, FlagCapture, PtNone)
	return n + 1
}

func genCastling(b *position.Board, us, them Color, out []Move, n int) int {
	rights := b.Castling()
	if us == White {
		if rights.Has(CastleWhiteKingside) &&
			b.PieceAt(SqF1) == PieceNone && b.PieceAt(SqG1) == PieceNone &&
			!b.IsSquareAttacked(SqE1, them) && !b.IsSquareAttacked(SqF1, them) && !b.IsSquareAttacked(SqG1, them) {
			out[n] = CreateMove(SqE1, SqG1, FlagCastle, PtNone)
			n++
		}
		if rights.Has(CastleWhiteQueenside) &&
			b.PieceAt(SqD1) == PieceNone && b.PieceAt(SqC1) == PieceNone && b.PieceAt(SqB1) == PieceNone &&
			!b.IsSquareAttacked(SqE1, them) && !b.IsSquareAttacked(SqD1, them) && !b.IsSquareAttacked(SqC1, them) {
			out[n] = CreateMove(SqE1, SqC1, FlagCastle, PtNone)
			n++
		}
		return n
	}
	if rights.Has(CastleBlackKingside) &&
		b.PieceAt(SqF8) == PieceNone && b.PieceAt(SqG8) == PieceNone &&
		!b.IsSquareAttacked(SqE8, them) && !b.IsSquareAttacked(SqF8, them) && !b.IsSquareAttacked(SqG8, them) {
		out[n] = CreateMove(SqE8, SqG8, FlagCastle, PtNone)
		n++
	}
	if rights.Has(CastleBlackQueenside) &&
		b.PieceAt(SqD8) == PieceNone && b.PieceAt(SqC8) == PieceNone && b.PieceAt(SqB8) == PieceNone &&
		!b.IsSquareAttacked(SqE8, them) && !b.IsSquareAttacked(SqD8, them) && !b.IsSquareAttacked(SqC8, them) {
		out[n] = CreateMove(SqE8, SqC8, FlagCastle, PtNone)
		n++
	}
	return n
}

// IsLegal applies m and checks whether it leaves the mover's own king
// attacked - the final legality gate every pseudo-legal move must pass
// before a search node is allowed to recurse into it.
func IsLegal(b *position.Board, m Move) bool {
	mover := b.Side()
	var undo position.Undo
	b.Make(m, &undo)
	legal := !b.InCheck(mover)
	b.Unmake(m, &undo)
	return legal
}
