package types

// Value is a centipawn score from the side-to-move's perspective.
type Value int32

const (
	// ValueZero is a dead draw.
	ValueZero Value = 0

	// ValueInfinite bounds every legal score; used to seed alpha-beta windows.
	ValueInfinite Value = 32000

	// ValueMate is the score of delivering mate on the current ply. Mate
	// in N plies scores ValueMate-N so that shorter mates sort higher.
	ValueMate Value = 31000

	// ValueMateThreshold: any |score| above this is a forced mate score.
	ValueMateThreshold Value = ValueMate - 1000

	// ValueDraw is the score of a drawn position.
	ValueDraw Value = ValueZero

	// ValueNone marks "no value computed", used as a sentinel distinct
	// from any legal score.
	ValueNone Value = -32001
)

// IsMateScore reports whether v represents a forced mate for either side.
func (v Value) IsMateScore() bool {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	return abs > ValueMateThreshold
}

// MatePlies returns the number of plies to the mate represented by v,
// meaningful only when IsMateScore is true. Positive means the side to
// move delivers mate, negative means it is mated.
func (v Value) MatePlies() int {
	if v > 0 {
		return int(ValueMate - v)
	}
	return -int(ValueMate + v)
}

// Bound classifies what relationship a stored search value has to the
// true minimax value of its node, the way a transposition table entry
// must record it to be reused safely by a later, possibly differently
// windowed, search.
type Bound uint8

const (
	// BoundNone marks an entry that has never been written.
	BoundNone Bound = 0
	// BoundExact is the true minimax value: the search fully resolved
	// the node inside its alpha-beta window.
	BoundExact Bound = 1
	// BoundUpper means the true value is at most the stored value: a
	// fail-low, so the stored value is only an upper bound.
	BoundUpper Bound = 2
	// BoundLower means the true value is at least the stored value: a
	// fail-high (beta cutoff), so the stored value is only a lower bound.
	BoundLower Bound = 3
)

// String renders the bound kind's short name.
func (b Bound) String() string {
	switch b {
	case BoundExact:
		return "exact"
	case BoundUpper:
		return "upper"
	case BoundLower:
		return "lower"
	}
	return "none"
}
