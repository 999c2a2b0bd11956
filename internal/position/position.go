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

// Package position implements the board representation: a 0x88 mailbox
// array with piece lists, incremental make/unmake, Zobrist hash/lock
// identity and incremental material/phase accumulators. Create a board
// with NewBoard() for the start position or NewBoardFEN(fen) for any
// other position.
package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/assert"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/zobrist"
)

var log *logging.Logger

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxPiecesPerSide bounds the dense piece list: a side can never hold more
// than its original 16 pieces, promotions only change what they are.
const maxPiecesPerSide = 16

// defaultZobristSeed seeds the package-wide Zobrist tables. Any caller that
// needs a reproducible-but-different key space (tests comparing two
// independently seeded engines, for instance) can build its own tables
// with zobrist.New and assign them with SetZobristTables.
const defaultZobristSeed = 0x5EED1E55

var sharedZobrist = zobrist.New(defaultZobristSeed)

// SetZobristTables replaces the package-wide Zobrist tables used by every
// Board created afterwards. Exists for tests and for multi-instance setups
// that want key spaces that cannot collide with each other.
func SetZobristTables(t *zobrist.Tables) {
	sharedZobrist = t
}

// Undo captures everything Make needs to reverse a single move. Callers
// own the storage - typically one local Undo per recursion level in the
// search - so unmaking is just "restore the fields, skip the hash/lock
// recomputation".
type Undo struct {
	move            Move
	movedPiece      Piece
	capturedPiece   Piece
	capturedSquare  Square
	castlingRights  CastlingRights
	epSquare        Square
	halfmoveClock   int
	hash            uint32
	lock            uint16
	material        [ColorLength]int32
	phase           int32
}

// Board is a single chess position: piece placement, game state (side to
// move, castling rights, en passant square, move clocks) and the
// incrementally maintained Zobrist hash/lock pair and material/phase
// accumulators used by the evaluator.
type Board struct {
	squares [128]Piece

	pieceList  [ColorLength][maxPiecesPerSide]Square
	pieceCount [ColorLength]int
	pieceIndex [128]int8

	kingSquare [ColorLength]Square

	sideToMove     Color
	castling       CastlingRights
	epSquare       Square
	halfmoveClock  int
	fullmoveNumber int

	hash uint32
	lock uint16

	material [ColorLength]int32
	phase    int32
}

// NewBoard returns a board set up in the standard starting position.
func NewBoard() *Board {
	b, err := NewBoardFEN(StartFEN)
	if err != nil {
		panic("corvid: start FEN is malformed: " + err.Error())
	}
	return b
}

// NewBoardFEN builds a board from Forsyth-Edwards Notation. Returns an
// error if fen does not describe a structurally valid position (wrong
// number of fields, bad piece placement, etc.) - it does not check chess
// legality such as "exactly one king per side is in check".
func NewBoardFEN(fen string) (*Board, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	b := &Board{}
	if err := b.setFromFEN(fen); err != nil {
		log.Errorf("invalid fen %q: %v", fen, err)
		return nil, err
	}
	return b, nil
}

func (b *Board) setFromFEN(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("fen needs at least 4 fields, got %d", len(fields))
	}

	for i := range b.squares {
		b.squares[i] = PieceOffBoard
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			b.squares[SquareOf(row, col)] = PieceNone
		}
	}
	b.pieceCount = [ColorLength]int{}
	b.kingSquare = [ColorLength]Square{SquareNone, SquareNone}

	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return fmt.Errorf("fen piece placement needs 8 ranks, got %d", len(rows))
	}
	for row, rankStr := range rows {
		col := 0
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				if col > 7 {
					return fmt.Errorf("fen rank %d overflows the board", row+1)
				}
				p := PieceFromChar(byte(c))
				if p == PieceNone {
					return fmt.Errorf("fen has unrecognized piece letter %q", c)
				}
				b.addPieceRaw(SquareOf(row, col), p)
				col++
			}
		}
		if col != 8 {
			return fmt.Errorf("fen rank %d does not fill 8 files", row+1)
		}
	}
	if !b.kingSquare[White].IsValid() || !b.kingSquare[Black].IsValid() {
		return errors.New("fen position is missing a king")
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return fmt.Errorf("fen side-to-move must be w or b, got %q", fields[1])
	}

	b.castling = CastleNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				b.castling |= CastleWhiteKingside
			case 'Q':
				b.castling |= CastleWhiteQueenside
			case 'k':
				b.castling |= CastleBlackKingside
			case 'q':
				b.castling |= CastleBlackQueenside
			default:
				return fmt.Errorf("fen has unrecognized castling letter %q", c)
			}
		}
	}

	b.epSquare = SquareNone
	if fields[3] != "-" {
		sq := ParseSquare(fields[3])
		if !sq.IsValid() {
			return fmt.Errorf("fen has invalid en passant square %q", fields[3])
		}
		b.epSquare = sq
	}

	b.halfmoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return fmt.Errorf("fen has invalid halfmove clock %q", fields[4])
		}
		b.halfmoveClock = n
	}

	b.fullmoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return fmt.Errorf("fen has invalid fullmove number %q", fields[5])
		}
		b.fullmoveNumber = n
	}

	b.hash, b.lock = b.computeZobrist()
	b.material, b.phase = b.computeMaterial()
	return nil
}

// FEN renders the board back to Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := b.squares[SquareOf(row, col)]
			if p == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())

	sb.WriteByte(' ')
	sb.WriteString(b.epSquare.String())

	sb.WriteString(fmt.Sprintf(" %d %d", b.halfmoveClock, b.fullmoveNumber))
	return sb.String()
}

// Side returns the color to move.
func (b *Board) Side() Color { return b.sideToMove }

// PieceAt returns the piece occupying sq, PieceNone if empty, or
// PieceOffBoard if sq is outside the playable area. sq must be a square
// produced by SquareOf/ParseSquare/Square.Add - never an unchecked
// arithmetic result that might have gone negative.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Color) Square { return b.kingSquare[c] }

// Castling returns the castling rights still available.
func (b *Board) Castling() CastlingRights { return b.castling }

// EpSquare returns the en passant target square, or SquareNone.
func (b *Board) EpSquare() Square { return b.epSquare }

// HalfmoveClock returns the number of halfmoves since the last capture or
// pawn move, used for the fifty-move rule.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the current full move number, starting at 1.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Hash returns the 32-bit Zobrist hash identifying this position.
func (b *Board) Hash() uint32 { return b.hash }

// Lock returns the 16-bit Zobrist lock used alongside Hash to make
// transposition-table collisions vanishingly unlikely.
func (b *Board) Lock() uint16 { return b.lock }

// Phase returns the current game-phase accumulator, used by the evaluator
// to taper scores between middlegame and endgame piece-square tables.
func (b *Board) Phase() int32 { return b.phase }

// PieceList returns the squares occupied by c's pieces. The returned
// slice aliases Board-internal storage and must not be retained past the
// next call that mutates the board.
func (b *Board) PieceList(c Color) []Square {
	return b.pieceList[c][:b.pieceCount[c]]
}

// IsSquareAttacked reports whether any piece of color by attacks sq. This
// is a pure board query: it does not consider pins, check evasions, or
// whose turn it is - callers (castling legality, check detection, the
// move generator's legality filter) combine it with that context.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	// Pawn attacks: a pawn of color `by` attacks sq if it sits one step
	// "backwards" (from sq's point of view) diagonally from sq.
	back := by.PawnDirection()
	for _, side := range [2]Direction{West, East} {
		from := sq.Add(-back).Add(side)
		if from.IsValid() && b.squares[from] == MakePiece(by, Pawn) {
			return true
		}
	}

	for _, off := range KnightOffsets {
		from := sq.Add(off)
		if from.IsValid() && b.squares[from] == MakePiece(by, Knight) {
			return true
		}
	}

	for _, d := range QueenDirections {
		from := sq.Add(d)
		if from.IsValid() && b.squares[from] == MakePiece(by, King) {
			return true
		}
	}

	for _, d := range BishopDirections {
		from := sq.Add(d)
		for from.IsValid() {
			p := b.squares[from]
			if p != PieceNone {
				if p.ColorOf() == by && (p.TypeOf() == Bishop || p.TypeOf() == Queen) {
					return true
				}
				break
			}
			from = from.Add(d)
		}
	}

	for _, d := range RookDirections {
		from := sq.Add(d)
		for from.IsValid() {
			p := b.squares[from]
			if p != PieceNone {
				if p.ColorOf() == by && (p.TypeOf() == Rook || p.TypeOf() == Queen) {
					return true
				}
				break
			}
			from = from.Add(d)
		}
	}

	return false
}

// InCheck reports whether c's king is currently attacked.
func (b *Board) InCheck(c Color) bool {
	return b.IsSquareAttacked(b.kingSquare[c], c.Flip())
}

// addPieceRaw places a piece during FEN parsing, without touching the
// Zobrist/material accumulators (computeZobrist and computeMaterial run
// once after the whole board is populated).
func (b *Board) addPieceRaw(sq Square, p Piece) {
	c := p.ColorOf()
	idx := int8(b.pieceCount[c])
	b.pieceList[c][idx] = sq
	b.pieceIndex[sq] = idx
	b.pieceCount[c]++
	b.squares[sq] = p
	if p.TypeOf() == King {
		b.kingSquare[c] = sq
	}
}

// placePiece adds p to sq, updating piece lists, hash/lock and material.
func (b *Board) placePiece(sq Square, p Piece) {
	b.addPieceRaw(sq, p)
	h, l := pieceKey(p, sq)
	b.hash ^= h
	b.lock ^= l
	c := p.ColorOf()
	b.material[c] += pieceValue(p)
	b.phase += phaseWeight(p.TypeOf())
}

// removePiece takes the piece off sq, updating piece lists (via
// swap-with-last so the dense list never has holes), hash/lock and
// material. sq must currently be occupied.
func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	c := p.ColorOf()
	idx := b.pieceIndex[sq]
	last := int8(b.pieceCount[c] - 1)
	lastSq := b.pieceList[c][last]
	b.pieceList[c][idx] = lastSq
	b.pieceIndex[lastSq] = idx
	b.pieceCount[c]--
	b.squares[sq] = PieceNone

	h, l := pieceKey(p, sq)
	b.hash ^= h
	b.lock ^= l
	b.material[c] -= pieceValue(p)
	b.phase -= phaseWeight(p.TypeOf())
	return p
}

func pieceKey(p Piece, sq Square) (uint32, uint16) {
	idx := pieceZobristIndex(p)
	return sharedZobrist.Piece[idx][sq], sharedZobrist.PieceLock[idx][sq]
}

func pieceZobristIndex(p Piece) int {
	if p.ColorOf() == Black {
		return int(p.TypeOf()) + 8
	}
	return int(p.TypeOf())
}

func (b *Board) computeZobrist() (uint32, uint16) {
	var hash uint32
	var lock uint16
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := SquareOf(row, col)
			if p := b.squares[sq]; p != PieceNone {
				h, l := pieceKey(p, sq)
				hash ^= h
				lock ^= l
			}
		}
	}
	if b.sideToMove == Black {
		hash ^= sharedZobrist.Side
		lock ^= sharedZobrist.SideLock
	}
	hash ^= sharedZobrist.Castle[b.castling]
	lock ^= sharedZobrist.CastleLock[b.castling]
	if b.epSquare.IsValid() {
		hash ^= sharedZobrist.EpFile[b.epSquare.ColOf()]
		lock ^= sharedZobrist.EpFileLock[b.epSquare.ColOf()]
	}
	return hash, lock
}

// computeMaterial recomputes the material/phase accumulators from the
// current piece lists without mutating the board - used once after FEN
// parsing and by assertInvariants to check the incremental bookkeeping
// hasn't drifted.
func (b *Board) computeMaterial() (material [ColorLength]int32, phase int32) {
	for c := White; c <= Black; c++ {
		for _, sq := range b.PieceList(c) {
			material[c] += pieceValue(b.squares[sq])
			phase += phaseWeight(b.squares[sq].TypeOf())
		}
	}
	return material, phase
}

// assertInvariants runs the board's internal consistency checks. The calls
// are not guarded by assert.DEBUG, so the recomputations always run; only
// in builds tagged debug does a failed check panic.
func (b *Board) assertInvariants() {
	assert.Assert(b.kingSquare[White].IsValid() && b.squares[b.kingSquare[White]] == WhiteKing,
		"white king square out of sync")
	assert.Assert(b.kingSquare[Black].IsValid() && b.squares[b.kingSquare[Black]] == BlackKing,
		"black king square out of sync")
	h, l := b.computeZobrist()
	assert.Assert(h == b.hash, "zobrist hash drifted from incremental updates")
	assert.Assert(l == b.lock, "zobrist lock drifted from incremental updates")
	material, phase := b.computeMaterial()
	assert.Assert(material == b.material, "material accumulator drifted from incremental updates")
	assert.Assert(phase == b.phase, "phase accumulator drifted from incremental updates")
}
