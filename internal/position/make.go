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

import . "github.com/corvidchess/corvid/internal/types"

// castleRookSquares returns the rook's from/to squares for a castling
// move whose king lands on kingTo.
func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	}
	panic("corvid: castleRookSquares called with a non-castling destination")
}

// Make applies m to the board, filling in undo with everything Unmake
// needs to reverse it. The caller owns undo's storage - one local Undo
// per search ply is the idiomatic pattern, since Go gives each recursive
// call its own stack frame for free.
//
// Make does not check legality: it applies any pseudo-legal move, and
// callers that need a legal move test InCheck for the mover after Make.
func (b *Board) Make(m Move, undo *Undo) {
	from := m.From()
	to := m.To()
	moved := b.squares[from]

	*undo = Undo{
		move:           m,
		movedPiece:     moved,
		castlingRights: b.castling,
		epSquare:       b.epSquare,
		halfmoveClock:  b.halfmoveClock,
		hash:           b.hash,
		lock:           b.lock,
		material:       b.material,
		phase:          b.phase,
	}

	isPawnMove := moved.TypeOf() == Pawn

	switch {
	case m.IsEnPassant():
		capturedSq := SquareOf(from.RowOf(), to.ColOf())
		undo.capturedPiece = b.removePiece(capturedSq)
		undo.capturedSquare = capturedSq
	case m.IsCapture():
		undo.capturedPiece = b.removePiece(to)
		undo.capturedSquare = to
	default:
		undo.capturedPiece = PieceNone
		undo.capturedSquare = SquareNone
	}

	b.removePiece(from)
	if m.IsPromotion() {
		b.placePiece(to, MakePiece(moved.ColorOf(), m.PromotionType()))
	} else {
		b.placePiece(to, moved)
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(to)
		rook := b.removePiece(rookFrom)
		b.placePiece(rookTo, rook)
	}

	newCastling := b.castling &^ (CastleRightsLostAt(from) | CastleRightsLostAt(to))
	if newCastling != b.castling {
		b.hash ^= sharedZobrist.Castle[b.castling] ^ sharedZobrist.Castle[newCastling]
		b.lock ^= sharedZobrist.CastleLock[b.castling] ^ sharedZobrist.CastleLock[newCastling]
		b.castling = newCastling
	}

	if b.epSquare.IsValid() {
		b.hash ^= sharedZobrist.EpFile[b.epSquare.ColOf()]
		b.lock ^= sharedZobrist.EpFileLock[b.epSquare.ColOf()]
	}
	if m.IsDoublePush() {
		b.epSquare = SquareOf((from.RowOf()+to.RowOf())/2, from.ColOf())
		b.hash ^= sharedZobrist.EpFile[b.epSquare.ColOf()]
		b.lock ^= sharedZobrist.EpFileLock[b.epSquare.ColOf()]
	} else {
		b.epSquare = SquareNone
	}

	if m.IsCapture() || isPawnMove {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	if b.sideToMove == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = b.sideToMove.Flip()
	b.hash ^= sharedZobrist.Side
	b.lock ^= sharedZobrist.SideLock
}

// Unmake reverses the move m previously applied with Make, using the
// undo record Make filled in. It must be called with the same (m, undo)
// pair passed to the matching Make, in LIFO order.
func (b *Board) Unmake(m Move, undo *Undo) {
	b.sideToMove = b.sideToMove.Flip()
	from := m.From()
	to := m.To()

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(to)
		rook := b.pieceAtRaw(rookTo)
		b.removePieceRaw(rookTo)
		b.placePieceRaw(rookFrom, rook)
	}

	b.removePieceRaw(to)
	b.placePieceRaw(from, undo.movedPiece)

	if undo.capturedPiece != PieceNone {
		b.placePieceRaw(undo.capturedSquare, undo.capturedPiece)
	}

	b.castling = undo.castlingRights
	b.epSquare = undo.epSquare
	b.halfmoveClock = undo.halfmoveClock
	if b.sideToMove == Black {
		b.fullmoveNumber--
	}

	b.hash = undo.hash
	b.lock = undo.lock
	b.material = undo.material
	b.phase = undo.phase
}

// pieceAtRaw, removePieceRaw and placePieceRaw mirror PieceAt/removePiece/
// placePiece but skip every hash/material update: Unmake restores those
// from the saved Undo record in one shot instead of re-deriving them move
// by move, which both is cheaper and sidesteps floating-point-style drift
// from doing the same XORs in reverse order.
func (b *Board) pieceAtRaw(sq Square) Piece {
	return b.squares[sq]
}

func (b *Board) removePieceRaw(sq Square) {
	p := b.squares[sq]
	c := p.ColorOf()
	idx := b.pieceIndex[sq]
	last := int8(b.pieceCount[c] - 1)
	lastSq := b.pieceList[c][last]
	b.pieceList[c][idx] = lastSq
	b.pieceIndex[lastSq] = idx
	b.pieceCount[c]--
	b.squares[sq] = PieceNone
}

func (b *Board) placePieceRaw(sq Square, p Piece) {
	b.addPieceRaw(sq, p)
}

// NullUndo records what MakeNull changes so UnmakeNull can restore it. A
// null move flips the side to move and clears the en passant square,
// without moving any piece. Used by null-move pruning.
type NullUndo struct {
	epSquare Square
	hash     uint32
	lock     uint16
}

// MakeNull applies a null move, recorded in undo for UnmakeNull.
func (b *Board) MakeNull(undo *NullUndo) {
	undo.epSquare = b.epSquare
	undo.hash = b.hash
	undo.lock = b.lock

	if b.epSquare.IsValid() {
		b.hash ^= sharedZobrist.EpFile[b.epSquare.ColOf()]
		b.lock ^= sharedZobrist.EpFileLock[b.epSquare.ColOf()]
	}
	b.epSquare = SquareNone

	b.sideToMove = b.sideToMove.Flip()
	b.hash ^= sharedZobrist.Side
	b.lock ^= sharedZobrist.SideLock
}

// UnmakeNull reverses MakeNull.
func (b *Board) UnmakeNull(undo *NullUndo) {
	b.sideToMove = b.sideToMove.Flip()
	b.epSquare = undo.epSquare
	b.hash = undo.hash
	b.lock = undo.lock
}
