package types

// Piece packs a Color and a PieceType into one small integer, plus two
// sentinels: PieceNone for an empty on-board square and PieceOffBoard for
// the border squares of the 0x88 board. Keeping the sentinels numerically
// distinct from every real piece lets sliding move generation do a single
// read of the board array to decide "empty / friend / foe / off-board".
type Piece int8

const (
	PieceNone Piece = 0

	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	colorShift = 3

	BlackPawn   Piece = Piece(Pawn) | (1 << colorShift)
	BlackKnight Piece = Piece(Knight) | (1 << colorShift)
	BlackBishop Piece = Piece(Bishop) | (1 << colorShift)
	BlackRook   Piece = Piece(Rook) | (1 << colorShift)
	BlackQueen  Piece = Piece(Queen) | (1 << colorShift)
	BlackKing   Piece = Piece(King) | (1 << colorShift)

	// PieceOffBoard marks a square outside the playable 8x8 area.
	PieceOffBoard Piece = 127

	// PieceLength bounds the piece-indexed arrays (Zobrist keys, PSTs):
	// indices 0 (none) and 1..6 (white), 9..14 (black) are used.
	PieceLength = 15
)

// MakePiece builds the piece of the given color and type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(pt) | Piece(c)<<colorShift
}

// TypeOf returns the piece type, meaningless if p is PieceNone or PieceOffBoard.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ColorOf returns the piece's color, meaningless if p is PieceNone or PieceOffBoard.
func (p Piece) ColorOf() Color {
	return Color(p >> colorShift)
}

// IsWhite reports whether p is an on-board white piece.
func (p Piece) IsWhite() bool {
	return p != PieceNone && p != PieceOffBoard && p.ColorOf() == White
}

// IsBlack reports whether p is an on-board black piece.
func (p Piece) IsBlack() bool {
	return p != PieceNone && p != PieceOffBoard && p.ColorOf() == Black
}

var pieceChars = map[Piece]byte{
	WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B', WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
	BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b', BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
}

// String renders the piece as a FEN letter, "." for empty, "X" off-board.
func (p Piece) String() string {
	switch p {
	case PieceNone:
		return "."
	case PieceOffBoard:
		return "X"
	}
	if c, ok := pieceChars[p]; ok {
		return string(c)
	}
	return "?"
}

// PieceFromChar parses a single FEN piece letter into a Piece, or
// PieceNone if c is not a recognized letter.
func PieceFromChar(c byte) Piece {
	for p, ch := range pieceChars {
		if ch == c {
			return p
		}
	}
	return PieceNone
}
