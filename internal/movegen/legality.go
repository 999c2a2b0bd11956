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
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// LegalInfo is computed once per search node and lets the move picker
// skip a full make+legality check for the common case: a move from an
// unpinned non-king square while not in check is legal by construction.
type LegalInfo struct {
	InCheck     bool
	NumCheckers int
	Checkers    [2]Square
	Pinned      [128]bool
}

// ComputeLegalInfo finds whether us's king is in check, who is checking
// it, and which of us's squares are pinned to the king.
func ComputeLegalInfo(b *position.Board, us Color) LegalInfo {
	them := us.Flip()
	kingSq := b.KingSquare(us)

	info := LegalInfo{Checkers: [2]Square{SquareNone, SquareNone}}
	addChecker := func(sq Square) {
		if info.NumCheckers < 2 {
			info.Checkers[info.NumCheckers] = sq
		}
		info.NumCheckers++
	}

	back := them.PawnDirection()
	for _, side := range [2]Direction{West, East} {
		from := kingSq.Add(-back).Add(side)
		if from.IsValid() && b.PieceAt(from) == MakePiece(them, Pawn) {
			addChecker(from)
		}
	}
	for _, off := range KnightOffsets {
		from := kingSq.Add(off)
		if from.IsValid() && b.PieceAt(from) == MakePiece(them, Knight) {
			addChecker(from)
		}
	}

	for _, d := range BishopDirections {
		scanRayForCheckerOrPin(b, kingSq, d, us, them, Bishop, addChecker, &info)
	}
	for _, d := range RookDirections {
		scanRayForCheckerOrPin(b, kingSq, d, us, them, Rook, addChecker, &info)
	}

	info.InCheck = info.NumCheckers > 0
	return info
}

// scanRayForCheckerOrPin walks one ray from the king. The first piece
// hit is either an enemy slider of the matching kind (check), a friendly
// piece that might be pinned (if an enemy slider of the matching kind
// follows with nothing in between), or anything else (ray is dead).
func scanRayForCheckerOrPin(b *position.Board, kingSq Square, d Direction, us, them Color, kind PieceType, addChecker func(Square), info *LegalInfo) {
	sq := kingSq.Add(d)
	var blocker Square = SquareNone
	for sq.IsValid() {
		p := b.PieceAt(sq)
		if p == PieceNone {
			sq = sq.Add(d)
			continue
		}
		isSlider := p.TypeOf() == kind || p.TypeOf() == Queen
		if blocker == SquareNone {
			if p.ColorOf() == them && isSlider {
				addChecker(sq)
				return
			}
			if p.ColorOf() == us {
				blocker = sq
				sq = sq.Add(d)
				continue
			}
			return
		}
		if p.ColorOf() == them && isSlider {
			info.Pinned[blocker] = true
		}
		return
	}
}

// IsEvasionCandidate implements the pre-make evasion filter used while in
// check: it is necessary but not sufficient, real legality is still
// decided by make + the attacked-king check.
func IsEvasionCandidate(b *position.Board, m Move, us Color, info LegalInfo) bool {
	if info.NumCheckers >= 2 {
		return b.PieceAt(m.From()).TypeOf() == King
	}

	if b.PieceAt(m.From()).TypeOf() == King {
		return true
	}

	checker := info.Checkers[0]
	if m.To() == checker {
		return true
	}
	if m.IsEnPassant() {
		capturedSq := SquareOf(m.From().RowOf(), m.To().ColOf())
		if capturedSq == checker {
			return true
		}
	}

	if isSlidingPieceAt(b, checker, them(us)) {
		kingSq := b.KingSquare(us)
		if squareBetween(kingSq, checker, m.To()) {
			return true
		}
	}

	return false
}

func them(c Color) Color { return c.Flip() }

func isSlidingPieceAt(b *position.Board, sq Square, c Color) bool {
	p := b.PieceAt(sq)
	if p.ColorOf() != c {
		return false
	}
	return p.TypeOf() == Bishop || p.TypeOf() == Rook || p.TypeOf() == Queen
}

// squareBetween reports whether mid lies strictly between a and b on a
// shared rank, file or diagonal.
func squareBetween(a, b, mid Square) bool {
	dRow := sign(b.RowOf() - a.RowOf())
	dCol := sign(b.ColOf() - a.ColOf())
	if dRow == 0 && dCol == 0 {
		return false
	}
	sq := a.Add(Direction(dRow*16 + dCol))
	for sq.IsValid() && sq != b {
		if sq == mid {
			return true
		}
		sq = sq.Add(Direction(dRow*16 + dCol))
	}
	return false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// IsPseudoLegalFast reports whether m from a non-check position is
// guaranteed legal without an explicit make+attacked check: it isn't
// en-passant, doesn't move the king, and doesn't start from a pinned
// square. Must only be called when info.InCheck is false.
func IsPseudoLegalFast(b *position.Board, m Move, info LegalInfo) bool {
	if m.IsEnPassant() {
		return false
	}
	if b.PieceAt(m.From()).TypeOf() == King {
		return false
	}
	return !info.Pinned[m.From()]
}
