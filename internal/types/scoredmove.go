package types

// ScoredMove pairs a generated move with the ordering score the search
// assigns it (MVV-LVA, killer bonus, history count, ...). Move lists are
// sorted by Score, descending, before a node's moves are tried.
type ScoredMove struct {
	Move  Move
	Score int32
}
