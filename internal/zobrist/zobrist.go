// Package zobrist builds the two independent pseudo-random key tables
// (a 32-bit hash and a 16-bit lock) that the position package XORs
// together incrementally to identify a chess position. Using a seeded,
// deterministic generator means the same seed always reproduces the same
// tables, which is required for on-disk transposition tables and
// repeatable test fixtures to remain meaningful across runs.
package zobrist

import "github.com/corvidchess/corvid/internal/types"

// Tables holds every Zobrist feature key needed to identify a position:
// one key per (piece, square), one per castling-rights value, one per
// en-passant file, and one for side-to-move - each in both a 32-bit hash
// flavor and a 16-bit lock flavor.
type Tables struct {
	Piece     [types.PieceLength][128]uint32
	PieceLock [types.PieceLength][128]uint16

	Side     uint32
	SideLock uint16

	Castle     [16]uint32
	CastleLock [16]uint16

	EpFile     [8]uint32
	EpFileLock [8]uint16
}

// splitMix64 is a small, fast, well distributed PRNG suitable for seeding
// lookup tables deterministically from a single 32-bit seed.
type splitMix64 struct {
	state uint64
}

func newSplitMix64(seed uint64) *splitMix64 {
	return &splitMix64{state: seed}
}

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// New builds a full set of Zobrist tables from a 32-bit seed. Each table
// slot draws one 64-bit PRNG value; the low 32 bits become the hash
// contribution and bits 32-47 become the lock contribution, giving two
// values per draw that are independent for all practical purposes while
// only requiring one PRNG stream.
func New(seed uint32) *Tables {
	sm := newSplitMix64(uint64(seed))
	t := &Tables{}

	for pc := 0; pc < types.PieceLength; pc++ {
		for sq := 0; sq < 128; sq++ {
			v := sm.next()
			t.Piece[pc][sq] = uint32(v)
			t.PieceLock[pc][sq] = uint16(v >> 32)
		}
	}

	v := sm.next()
	t.Side = uint32(v)
	t.SideLock = uint16(v >> 32)

	for i := 0; i < 16; i++ {
		v := sm.next()
		t.Castle[i] = uint32(v)
		t.CastleLock[i] = uint16(v >> 32)
	}

	for f := 0; f < 8; f++ {
		v := sm.next()
		t.EpFile[f] = uint32(v)
		t.EpFileLock[f] = uint16(v >> 32)
	}

	return t
}
