package types

// MaxPly bounds search recursion depth: killer tables, the repetition
// stack's per-node view, and the mate-score normalization window are all
// sized against it. No legal chess game approaches this many plies.
const MaxPly = 128

// QSMaxDepth caps how many plies quiescence search may recurse past the
// horizon before it is forced to stand pat.
const QSMaxDepth = 8
