package types

import "fmt"

// Move packs a from/to square pair and a small flag set into a single
// 32-bit integer:
//
//	bits 0-6   from square (0x88 index)
//	bits 7-13  to square (0x88 index)
//	bit  14    capture
//	bit  15    double pawn push
//	bit  16    en passant capture
//	bit  17    castling
//	bit  18    promotion
//	bits 19-20 promotion piece kind (0=N 1=B 2=R 3=Q), valid only if bit 18 is set
//
// Equality for move-identity purposes (TT lookups, killer/history matching)
// only ever compares from, to and the promotion kind - never the
// capture/en-passant/castle/double-push bits - since those are derived
// from context rather than being part of what the move generator produces
// as distinct moves. See MoveOf.
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 7
	moveSquareMask = 0x7F

	FlagCapture     Move = 1 << 14
	FlagDoublePush  Move = 1 << 15
	FlagEnPassant   Move = 1 << 16
	FlagCastle      Move = 1 << 17
	FlagPromotion   Move = 1 << 18
	movePromoShift       = 19
	movePromoMask        = 0x3 << movePromoShift

	moveIdentityMask = (moveSquareMask << moveFromShift) | (moveSquareMask << moveToShift) | FlagPromotion | movePromoMask
)

// MoveNone is the sentinel move: its "from" field is SquareNone, which is
// never a square a real move can start from.
const MoveNone Move = Move(SquareNone)

// CreateMove builds a move from its squares and flag bits. promo is only
// meaningful when flags includes FlagPromotion.
func CreateMove(from, to Square, flags Move, promo PieceType) Move {
	m := Move(from)<<moveFromShift | Move(to)<<moveToShift | (flags &^ (movePromoMask))
	if flags&FlagPromotion != 0 {
		kind := promo - Knight
		m |= Move(kind) << movePromoShift
	}
	return m
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((m >> moveFromShift) & moveSquareMask)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((m >> moveToShift) & moveSquareMask)
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m&FlagCapture != 0
}

// IsDoublePush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePush() bool {
	return m&FlagDoublePush != 0
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m&FlagEnPassant != 0
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m&FlagCastle != 0
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m&FlagPromotion != 0
}

// PromotionType returns the piece type promoted to. Only meaningful when
// IsPromotion is true.
func (m Move) PromotionType() PieceType {
	return Knight + PieceType((m&movePromoMask)>>movePromoShift)
}

// IsValid reports whether m has a real origin square. MoveNone is not valid.
func (m Move) IsValid() bool {
	return m.From().IsValid()
}

// MoveOf returns the identity-comparable subset of the move: from, to, and
// promotion bits, with capture/en-passant/castle/double-push stripped.
// Two moves compare equal for TT/killer/history purposes iff MoveOf matches.
func (m Move) MoveOf() Move {
	return m & moveIdentityMask
}

// Equals compares two moves using only their identity bits, per MoveOf.
func (m Move) Equals(other Move) bool {
	return m.MoveOf() == other.MoveOf()
}

// PackedNone is the TT sentinel for "no move stored" (TT_MOVE_NONE).
const PackedNone uint16 = 0

// compactSquare folds a valid 0x88 square down to 0..63 (rank*8+file) so
// that a from/to/promotion triple fits comfortably in 16 bits alongside an
// explicit "no promotion" code - the 0x88 index itself needs 7 bits and
// would leave no room for that.
func compactSquare(sq Square) uint16 {
	return uint16(sq.RowOf()*8 + sq.ColOf())
}

func expandSquare(c uint16) Square {
	return SquareOf(int(c/8), int(c%8))
}

// promoCode/promoFromCode map PieceType<->the 3-bit field packed into a TT
// move: 0 means "not a promotion", 1..4 are N,B,R,Q.
func promoCode(pt PieceType) uint16 {
	switch pt {
	case Knight:
		return 1
	case Bishop:
		return 2
	case Rook:
		return 3
	case Queen:
		return 4
	}
	return 0
}

func promoFromCode(code uint16) PieceType {
	switch code {
	case 1:
		return Knight
	case 2:
		return Bishop
	case 3:
		return Rook
	case 4:
		return Queen
	}
	return PtNone
}

// Packed returns the 16-bit from/to/promotion encoding stored in the
// transposition table - never capture/en-passant/castle/double-push.
func (m Move) Packed() uint16 {
	if m == MoveNone {
		return PackedNone
	}
	packed := compactSquare(m.From()) | compactSquare(m.To())<<6
	if m.IsPromotion() {
		packed |= promoCode(m.PromotionType()) << 12
	}
	return packed
}

// UnpackMove rebuilds enough of a move from its packed TT form to compare
// against a freshly generated move via Equals/MoveOf. Capture and other
// context flags are left unset; callers must not rely on them.
func UnpackMove(packed uint16) Move {
	if packed == PackedNone {
		return MoveNone
	}
	from := expandSquare(packed & 0x3F)
	to := expandSquare((packed >> 6) & 0x3F)
	if kind := promoFromCode((packed >> 12) & 0x7); kind != PtNone {
		return CreateMove(from, to, FlagPromotion, kind)
	}
	return CreateMove(from, to, 0, PtNone)
}

// StringUCI renders the move the way UCI expects: "e2e4", "e7e8q".
func (m Move) StringUCI() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(promotionLetter(m.PromotionType()))
	}
	return s
}

func promotionLetter(pt PieceType) byte {
	switch pt {
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	}
	return '?'
}

// String renders the move for debugging/logging.
func (m Move) String() string {
	if m == MoveNone {
		return "MoveNone"
	}
	return fmt.Sprintf("%s%s", m.From(), m.To())
}
