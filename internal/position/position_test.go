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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestNewBoardStartPosition(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, White, b.Side())
	assert.Equal(t, CastleAll, b.Castling())
	assert.False(t, b.EpSquare().IsValid())
	assert.Equal(t, StartFEN, b.FEN())
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
		"rnbq1rk1/pppp1ppp/4pn2/8/1bPP4/2N2N2/PP2PPPP/R1BQKB1R w KQ - 4 5",
	}
	for _, fen := range fens {
		b, err := NewBoardFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, b.FEN())
	}
}

func TestNewBoardFENRejectsGarbage(t *testing.T) {
	_, err := NewBoardFEN("not a fen")
	assert.Error(t, err)
}

func makeUnmake(t *testing.T, fen string, m Move) *Board {
	t.Helper()
	b, err := NewBoardFEN(fen)
	require.NoError(t, err)
	before := *b

	var undo Undo
	b.Make(m, &undo)
	b.assertInvariants()
	b.Unmake(m, &undo)
	b.assertInvariants()

	assert.Equal(t, before, *b, "unmake should restore the exact prior state for %s", m.StringUCI())
	return b
}

func TestMakeUnmakeQuietMove(t *testing.T) {
	b, err := NewBoardFEN(StartFEN)
	require.NoError(t, err)
	m := CreateMove(ParseSquare("g1"), ParseSquare("f3"), 0, PtNone)
	makeUnmake(t, StartFEN, m)

	var undo Undo
	b.Make(m, &undo)
	assert.Equal(t, WhiteKnight, b.PieceAt(ParseSquare("f3")))
	assert.Equal(t, PieceNone, b.PieceAt(ParseSquare("g1")))
	assert.Equal(t, Black, b.Side())
}

func TestMakeUnmakeDoublePushSetsEpSquare(t *testing.T) {
	b, err := NewBoardFEN(StartFEN)
	require.NoError(t, err)
	m := CreateMove(ParseSquare("e2"), ParseSquare("e4"), FlagDoublePush, PtNone)
	var undo Undo
	b.Make(m, &undo)
	assert.Equal(t, ParseSquare("e3"), b.EpSquare())
	b.Unmake(m, &undo)
	assert.False(t, b.EpSquare().IsValid())
}

func TestMakeUnmakeEnPassantCapture(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"
	m := CreateMove(ParseSquare("e5"), ParseSquare("d6"), FlagCapture|FlagEnPassant, PtNone)
	b := makeUnmake(t, fen, m)

	b2, err := NewBoardFEN(fen)
	require.NoError(t, err)
	var undo Undo
	b2.Make(m, &undo)
	assert.Equal(t, PieceNone, b2.PieceAt(ParseSquare("d5")), "captured pawn should be removed")
	assert.Equal(t, WhitePawn, b2.PieceAt(ParseSquare("d6")))
	_ = b
}

func TestMakeUnmakeCastlingKingside(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	m := CreateMove(ParseSquare("e1"), ParseSquare("g1"), FlagCastle, PtNone)
	makeUnmake(t, fen, m)

	b, err := NewBoardFEN(fen)
	require.NoError(t, err)
	var undo Undo
	b.Make(m, &undo)
	assert.Equal(t, WhiteKing, b.PieceAt(ParseSquare("g1")))
	assert.Equal(t, WhiteRook, b.PieceAt(ParseSquare("f1")))
	assert.False(t, b.Castling().Has(CastleWhiteKingside))
	assert.False(t, b.Castling().Has(CastleWhiteQueenside))
}

func TestMakeUnmakePromotionWithCapture(t *testing.T) {
	fen := "r1bqkbnr/pPpppppp/8/8/8/8/P1PPPPPP/RNBQKBNR w KQkq - 0 1"
	m := CreateMove(ParseSquare("b7"), ParseSquare("a8"), FlagCapture|FlagPromotion, Queen)
	b := makeUnmake(t, fen, m)
	_ = b

	b2, err := NewBoardFEN(fen)
	require.NoError(t, err)
	var undo Undo
	b2.Make(m, &undo)
	assert.Equal(t, WhiteQueen, b2.PieceAt(ParseSquare("a8")))
}

func TestRookCaptureRevokesCastlingRights(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	m := CreateMove(ParseSquare("a1"), ParseSquare("a8"), FlagCapture, PtNone)
	b, err := NewBoardFEN(fen)
	require.NoError(t, err)
	var undo Undo
	b.Make(m, &undo)
	assert.False(t, b.Castling().Has(CastleBlackQueenside))
	assert.False(t, b.Castling().Has(CastleWhiteQueenside))
	b.Unmake(m, &undo)
	assert.Equal(t, CastleAll, b.Castling())
}

func TestMakeUnmakeNullMove(t *testing.T) {
	b, err := NewBoardFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	before := *b
	var undo NullUndo
	b.MakeNull(&undo)
	assert.Equal(t, Black, b.Side())
	assert.False(t, b.EpSquare().IsValid())
	b.UnmakeNull(&undo)
	assert.Equal(t, before, *b)
}

func TestIsSquareAttacked(t *testing.T) {
	b, err := NewBoardFEN("4k3/8/8/8/4N3/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	assert.True(t, b.IsSquareAttacked(ParseSquare("f6"), White), "knight on e4 covers f6")
	assert.True(t, b.IsSquareAttacked(ParseSquare("h2"), White), "rook on h1 covers the h-file")
	assert.False(t, b.IsSquareAttacked(ParseSquare("a8"), White))
}

func TestInCheck(t *testing.T) {
	b, err := NewBoardFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, b.InCheck(White))
	assert.False(t, b.InCheck(Black))
}
