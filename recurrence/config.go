package recurrence

// EngineConfig holds tuning options for the recurrence engine.
type EngineConfig struct {
	// MaxOccurrences caps a single enumeration when the caller does not
	// set an explicit limit. The cap guards against misconfigured rules
	// that advance too slowly for the requested window.
	MaxOccurrences int
}

// DefaultEngineConfig provides sensible defaults for production use.
var DefaultEngineConfig = EngineConfig{
	MaxOccurrences: 100,
}
