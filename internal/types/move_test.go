package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	sqE2 = ParseSquare("e2")
	sqE4 = ParseSquare("e4")
	sqE7 = ParseSquare("e7")
	sqE8 = ParseSquare("e8")
	sqD7 = ParseSquare("d7")
	sqC8 = ParseSquare("c8")
	sqA7 = ParseSquare("a7")
)

func TestCreateMoveFromTo(t *testing.T) {
	m := CreateMove(sqE2, sqE4, FlagDoublePush, PtNone)
	assert.Equal(t, sqE2, m.From())
	assert.Equal(t, sqE4, m.To())
	assert.True(t, m.IsDoublePush())
	assert.False(t, m.IsCapture())
}

func TestMoveOfIgnoresContextFlags(t *testing.T) {
	quiet := CreateMove(sqE2, sqE4, 0, PtNone)
	capture := CreateMove(sqE2, sqE4, FlagCapture, PtNone)
	assert.True(t, quiet.Equals(capture))
	assert.Equal(t, quiet.MoveOf(), capture.MoveOf())
}

func TestMoveOfDistinguishesPromotion(t *testing.T) {
	promoQ := CreateMove(sqE7, sqE8, FlagPromotion, Queen)
	promoN := CreateMove(sqE7, sqE8, FlagPromotion, Knight)
	assert.False(t, promoQ.Equals(promoN))
}

func TestMoveNoneIsInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.Equal(t, "0000", MoveNone.StringUCI())
}

func TestStringUCI(t *testing.T) {
	m := CreateMove(sqE2, sqE4, FlagDoublePush, PtNone)
	assert.Equal(t, "e2e4", m.StringUCI())

	promo := CreateMove(sqE7, sqE8, FlagPromotion, Queen)
	assert.Equal(t, "e7e8q", promo.StringUCI())
}

func TestPackedRoundTripQuiet(t *testing.T) {
	m := CreateMove(SqA1, SqH8, 0, PtNone)
	packed := m.Packed()
	got := UnpackMove(packed)
	assert.True(t, m.Equals(got))
}

func TestPackedRoundTripPromotion(t *testing.T) {
	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
		m := CreateMove(sqD7, sqC8, FlagPromotion|FlagCapture, pt)
		packed := m.Packed()
		got := UnpackMove(packed)
		assert.True(t, m.Equals(got), "promotion kind %s should survive packing", pt)
	}
}

func TestPackedNoneRoundTrip(t *testing.T) {
	assert.Equal(t, PackedNone, MoveNone.Packed())
	assert.Equal(t, MoveNone, UnpackMove(PackedNone))
}

func TestPackedDistinguishesNoPromotionFromKnight(t *testing.T) {
	quiet := CreateMove(sqA7, SqA8, 0, PtNone)
	promoN := CreateMove(sqA7, SqA8, FlagPromotion, Knight)
	assert.NotEqual(t, quiet.Packed(), promoN.Packed())
}

func TestCompactSquareRoundTrip(t *testing.T) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := SquareOf(row, col)
			assert.Equal(t, sq, expandSquare(compactSquare(sq)))
		}
	}
}
