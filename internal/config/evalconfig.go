package config

// evalConfiguration controls the static evaluation function's tunable
// terms. The search treats Evaluate(position) as an opaque black box; only
// the evaluator package reads these.
type evalConfiguration struct {
	Tempo int

	PawnValue   int
	KnightValue int
	BishopValue int
	RookValue   int
	QueenValue  int

	BishopPairBonus int

	// Phase taper: total material points at which the position is
	// considered pure midgame; 0 points is pure endgame.
	PhaseMaxMaterial int
}

func init() {
	Settings.Eval.Tempo = 10

	Settings.Eval.PawnValue = 100
	Settings.Eval.KnightValue = 320
	Settings.Eval.BishopValue = 330
	Settings.Eval.RookValue = 500
	Settings.Eval.QueenValue = 900

	Settings.Eval.BishopPairBonus = 25

	Settings.Eval.PhaseMaxMaterial = 24
}
