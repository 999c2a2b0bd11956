package config

// searchConfiguration holds the tunable knobs of the search algorithm.
// Defaults here match the behavior described by the engine specification;
// a config.toml may override any of them.
type searchConfiguration struct {
	// Transposition table
	UseTT  bool
	TTSize int // MB

	// Move ordering
	UseKiller   bool
	UseHistory  bool
	KillerSlots int

	// Null move pruning
	UseNullMove    bool
	NullMoveDepth  int
	NullMoveReduct int

	// Late move reductions
	UseLmr          int
	LmrMinDepth     int
	LmrMinMoveIndex int

	// Futility pruning
	UseFutility      bool
	FutilityMargin1  int
	FutilityMargin2  int
	DeltaPruneMargin int

	// Aspiration windows
	UseAspiration   bool
	AspirationDelta int

	// Extension
	MaxCheckExtensions int

	// Quiescence
	QsMaxDepth int

	// Time-control safety valve
	TimeExtensionMs int

	// Opening-book-opening randomization
	EvalNoise         int
	EvalNoiseMaxMove  int

	// Node/time check cadence
	NodeCheckInterval uint64
}

func init() {
	Settings.Search.UseTT = true
	Settings.Search.TTSize = 64

	Settings.Search.UseKiller = true
	Settings.Search.UseHistory = true
	Settings.Search.KillerSlots = 2

	Settings.Search.UseNullMove = true
	Settings.Search.NullMoveDepth = 3
	Settings.Search.NullMoveReduct = 2

	Settings.Search.UseLmr = 1
	Settings.Search.LmrMinDepth = 3
	Settings.Search.LmrMinMoveIndex = 4

	Settings.Search.UseFutility = true
	Settings.Search.FutilityMargin1 = 200
	Settings.Search.FutilityMargin2 = 500
	Settings.Search.DeltaPruneMargin = 1100

	Settings.Search.UseAspiration = true
	Settings.Search.AspirationDelta = 25

	Settings.Search.MaxCheckExtensions = 2

	Settings.Search.QsMaxDepth = 8

	Settings.Search.TimeExtensionMs = 5000

	Settings.Search.EvalNoise = 0
	Settings.Search.EvalNoiseMaxMove = 6

	Settings.Search.NodeCheckInterval = 256
}
