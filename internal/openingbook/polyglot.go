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
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// numRandoms is the size of the Polyglot shared random table: 768 piece
// keys (12 pieces x 64 squares), 4 castling keys, 8 en-passant file keys
// and 1 side-to-move key.
const numRandoms = 781

const (
	randPieceBase  = 0
	randCastleBase = 768
	randEpBase     = 772
	randTurn       = 780
)

// pieceTypeOffset orders piece types the way Polyglot's piece index does:
// pawn, knight, bishop, rook, queen, king.
var pieceTypeOffset = [PtLength]int{
	PtNone: -1,
	Pawn:   0,
	Knight: 1,
	Bishop: 2,
	Rook:   3,
	Queen:  4,
	King:   5,
}

// pieceIndex computes the fixed Polyglot piece index: BP=0, WP=1, BN=2,
// WN=3, ..., BK=10, WK=11 - black and white pieces of the same type are
// adjacent, black first.
func pieceIndex(p Piece) int {
	colorBit := 0
	if p.ColorOf() == White {
		colorBit = 1
	}
	return pieceTypeOffset[p.TypeOf()]*2 + colorBit
}

// polySquare converts an 0x88 square to Polyglot's rank-major index, where
// a1=0 and h8=63: rank 0 is rank 1, unlike this engine's row 0 = rank 8.
func polySquare(sq Square) int {
	return (7-sq.RowOf())*8 + sq.ColOf()
}

var castleKeyBit = [4]CastlingRights{CastleWhiteKingside, CastleWhiteQueenside, CastleBlackKingside, CastleBlackQueenside}

// epCapturable reports whether a pawn of the side to move actually flanks
// b's en-passant target square, the strict Polyglot condition for folding
// the ep file into the hash at all.
func epCapturable(b *position.Board) bool {
	ep := b.EpSquare()
	if !ep.IsValid() {
		return false
	}
	us := b.Side()
	row := ep.RowOf()
	if us == White {
		row++
	} else {
		row--
	}
	if row < 0 || row > 7 {
		return false
	}
	col := ep.ColOf()
	pawn := MakePiece(us, Pawn)
	if col-1 >= 0 && b.PieceAt(SquareOf(row, col-1)) == pawn {
		return true
	}
	if col+1 <= 7 && b.PieceAt(SquareOf(row, col+1)) == pawn {
		return true
	}
	return false
}

// Hash computes the Polyglot zobrist-like key for b using randoms, the 781
// consecutive 64-bit values loaded from the shared random-table resource.
func Hash(b *position.Board, randoms *[numRandoms]uint64) uint64 {
	var key uint64
	for _, side := range [2]Color{White, Black} {
		for _, sq := range b.PieceList(side) {
			p := b.PieceAt(sq)
			key ^= randoms[randPieceBase+pieceIndex(p)*64+polySquare(sq)]
		}
	}
	for i, bit := range castleKeyBit {
		if b.Castling().Has(bit) {
			key ^= randoms[randCastleBase+i]
		}
	}
	if epCapturable(b) {
		key ^= randoms[randEpBase+b.EpSquare().ColOf()]
	}
	if b.Side() == White {
		key ^= randoms[randTurn]
	}
	return key
}

// decodedMove is a Polyglot move's fields after flipping ranks into this
// engine's row convention (row 0 = rank 8).
type decodedMove struct {
	from  Square
	to    Square
	promo PieceType
}

var polyPromoPiece = [8]PieceType{PtNone, Knight, Bishop, Rook, Queen, PtNone, PtNone, PtNone}

// decodePolyglotMove unpacks the 16-bit field
// to_file:3 | to_rank:3 | from_file:3 | from_rank:3 | promo:3 (lsb first)
// and rewrites any e-file move to the a- or h-file into this engine's
// king-to-g/c castling destination. It does not look at the moving piece:
// resolveMove restores the raw destination when that piece is not a king.
func decodePolyglotMove(raw uint16) decodedMove {
	toFile := int(raw & 0x7)
	toRank := int((raw >> 3) & 0x7)
	fromFile := int((raw >> 6) & 0x7)
	fromRank := int((raw >> 9) & 0x7)
	promo := polyPromoPiece[(raw>>12)&0x7]

	from := SquareOf(7-fromRank, fromFile)
	to := SquareOf(7-toRank, toFile)

	if from.ColOf() == 4 {
		if toFile == 0 {
			to = SquareOf(7-toRank, 2)
		} else if toFile == 7 {
			to = SquareOf(7-toRank, 6)
		}
	}

	return decodedMove{from: from, to: to, promo: promo}
}
