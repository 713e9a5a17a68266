package analyzer

import (
	"profile-analyzer/internal/common"
)

// Scale grades how often a runtime behavior was observed, relative to a
// neutral baseline. The declaration order is meaningful: rules compare
// scales, Never < Rarely < Default < Likely.
type Scale int

const (
	ScaleNever Scale = iota
	ScaleRarely
	ScaleDefault
	ScaleLikely
)

// String returns the report representation of the scale.
func (s Scale) String() string {
	switch s {
	case ScaleNever:
		return "NEVER"
	case ScaleRarely:
		return "RARELY"
	case ScaleDefault:
		return "DEFAULT"
	case ScaleLikely:
		return "LIKELY"
	default:
		return common.UnknownStr
	}
}

// Optimization is the per-field verdict of the rule set. Exactly one
// verdict applies per field per run.
type Optimization int

const (
	OptimizeNone Optimization = iota
	OptimizeLazy
	OptimizeInline
	// OptimizeSplit is reserved for field splitting. No rule produces it
	// yet; it stays a distinct value so stored verdicts keep their
	// meaning when a rule lands.
	OptimizeSplit
)

// String returns the report representation of the verdict.
func (o Optimization) String() string {
	switch o {
	case OptimizeNone:
		return "NONE"
	case OptimizeLazy:
		return "LAZY"
	case OptimizeInline:
		return "INLINE"
	case OptimizeSplit:
		return "SPLIT"
	default:
		return common.UnknownStr
	}
}
