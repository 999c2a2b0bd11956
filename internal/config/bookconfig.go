package config

// bookConfiguration controls the opening book loader.
type bookConfiguration struct {
	UseBook bool
	// BookPath is the directory containing segmented Polyglot book files.
	BookPath string
	// TierPriority lists tier prefixes to try, largest/most-preferred first.
	// Each tier is loaded as segments "<tier><NN>.bin" starting at 01.
	TierPriority []string
	// MaxSegments caps how many numbered segments are loaded per tier.
	MaxSegments int
	// RandomTablePath points to the shared resource holding the 781
	// Polyglot random 64-bit values.
	RandomTablePath string
}

func init() {
	Settings.Book.UseBook = true
	Settings.Book.BookPath = "./assets/books"
	Settings.Book.TierPriority = []string{"grnd", "mstr", "club", "open"}
	Settings.Book.MaxSegments = 99
	Settings.Book.RandomTablePath = "./assets/books/polyglot_random.bin"
}
