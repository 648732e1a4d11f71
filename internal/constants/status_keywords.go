package constants

// Workshop display-name fragments that drive status derivation when
// an order is routed. Matching is done on Turkish-folded lowercase,
// so the entries here are stored already folded.
var (
	CompletedKeywords = []string{
		"biten",
		"tamamlanan",
		"tamamlandi",
	}

	UnassignedKeywords = []string{
		"atanmamis",
	}
)
