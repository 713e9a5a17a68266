package profile

// Document is the top-level access profile snapshot.
type Document struct {
	// UnlikelyUsedThreshold is the usage cutoff configured at recording
	// time: fields with at most this many value accesses count as rarely
	// used.
	UnlikelyUsedThreshold uint64          `yaml:"unlikely_used_threshold"`
	Messages              []MessageAccess `yaml:"messages"`
}

// MessageAccess holds the recorded accesses of one message type. Name is
// the generated-code type name, not the dotted schema path.
type MessageAccess struct {
	Name   string        `yaml:"name"`
	Fields []FieldAccess `yaml:"fields"`
}

// FieldAccess holds the recorded accesses of a single field.
type FieldAccess struct {
	Name     string          `yaml:"name"`
	Presence PresenceSamples `yaml:"presence"`
	Accesses AccessCounts    `yaml:"accesses"`
}

// PresenceSamples groups presence sampling by access direction.
type PresenceSamples struct {
	Read  DirectionSamples `yaml:"read"`
	Write DirectionSamples `yaml:"write"`
}

// DirectionSamples counts how many accesses were sampled in one direction
// and how many of them found the field present.
type DirectionSamples struct {
	Samples uint64 `yaml:"samples"`
	Present uint64 `yaml:"present"`
}

// AccessCounts counts value accesses, as opposed to presence checks.
type AccessCounts struct {
	Read  uint64 `yaml:"read"`
	Write uint64 `yaml:"write"`
	Other uint64 `yaml:"other"`
}
