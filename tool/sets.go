package tool

// ResearchTools returns the standard tool set for research queries:
// web search, Wikipedia lookup, and save-to-file. It panics if the
// search client cannot be constructed, which only happens with an
// invalid configuration.
func ResearchTools() []Handler {
	search, err := NewWebSearch()
	if err != nil {
		panic(err)
	}

	return []Handler{
		search,
		NewWikipedia(),
		NewSaveText(DefaultSavePath),
	}
}
