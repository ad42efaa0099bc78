package integrity

var defaultEngine = NewEngine(DefaultRegistry())

// Default returns the process-wide engine over the domain cascade table.
func Default() *Engine { return defaultEngine }
