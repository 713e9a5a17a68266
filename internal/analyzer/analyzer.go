package analyzer

import (
	"google.golang.org/protobuf/reflect/protoreflect"

	"profile-analyzer/internal/profile"
	"profile-analyzer/internal/schema"
)

// Presence ratio thresholds, tuned against macrobenchmark results. Named
// so retuning stays a one-line change.
const (
	// HotPresenceRatio marks a field likely present when at least this
	// fraction of sampled accesses in either direction found it set.
	HotPresenceRatio = 0.90
	// ColdPresenceRatio marks a field rarely present when at most this
	// fraction of sampled accesses found it set, in both directions.
	// Most cold fields have zero presence samples, so classification is
	// not sensitive to the exact value.
	ColdPresenceRatio = 0.005
)

// Stats is the statistics query surface the analyzer reads. Implemented
// by profile.StatsMap; tests substitute synthetic providers.
type Stats interface {
	HasProfile(md protoreflect.MessageDescriptor) bool
	InProfile(fd protoreflect.FieldDescriptor) bool
	AccessCount(fd protoreflect.FieldDescriptor, kind profile.AccessKind) uint64
	IsHot(fd protoreflect.FieldDescriptor, dir profile.Direction, ratio float64) bool
	IsCold(fd protoreflect.FieldDescriptor, dir profile.Direction, ratio float64) bool
	UnlikelyUsedThreshold() uint64
}

// Analysis grades one field on two independent axes.
type Analysis struct {
	Presence Scale
	Usage    Scale
}

// Analyzer classifies fields against one profile snapshot. It holds no
// mutable state and is safe for concurrent use across fields.
type Analyzer struct {
	stats Stats
}

// NewAnalyzer creates an Analyzer over the given statistics provider.
func NewAnalyzer(stats Stats) *Analyzer {
	return &Analyzer{stats: stats}
}

// HasProfile reports whether the snapshot has data for the message type.
func (a *Analyzer) HasProfile(md protoreflect.MessageDescriptor) bool {
	return a.stats.HasProfile(md)
}

// UnlikelyUsedThreshold exposes the configured usage cutoff.
func (a *Analyzer) UnlikelyUsedThreshold() uint64 {
	return a.stats.UnlikelyUsedThreshold()
}

// AnalyzeField grades one field. The result is computed fresh on every
// call; nothing is memoized.
func (a *Analyzer) AnalyzeField(fd protoreflect.FieldDescriptor) Analysis {
	analysis := Analysis{Presence: ScaleDefault, Usage: ScaleDefault}

	if a.stats.InProfile(fd) {
		if a.isLikelyPresent(fd) {
			analysis.Presence = ScaleLikely
		} else if a.isRarelyPresent(fd) {
			analysis.Presence = ScaleRarely
		}
	}

	if a.stats.InProfile(fd) &&
		a.stats.AccessCount(fd, profile.AccessReadWriteOther) <= a.stats.UnlikelyUsedThreshold() {
		analysis.Usage = ScaleRarely
	}

	return analysis
}

// OptimizeField maps the field's static shape plus its analysis to
// exactly one verdict. The string and message rules are disjoint on the
// field's kind, so no priority conflict can arise.
func (a *Analyzer) OptimizeField(fd protoreflect.FieldDescriptor) Optimization {
	analysis := a.AnalyzeField(fd)

	if isStringKind(fd.Kind()) {
		if analysis.Presence >= ScaleLikely && schema.CanInlineString(fd) {
			return OptimizeInline
		}
	}

	if isMessageKind(fd.Kind()) {
		// Exclude Never as that may simply mean we have no data.
		if analysis.Presence > ScaleRarely && analysis.Usage == ScaleRarely {
			// Lazily materializing one element of a repeated field does
			// not compose with the container's access pattern.
			if fd.Cardinality() != protoreflect.Repeated {
				return OptimizeLazy
			}
		}
	}

	return OptimizeNone
}

func (a *Analyzer) isLikelyPresent(fd protoreflect.FieldDescriptor) bool {
	// A single hot direction is enough evidence of frequent presence.
	return a.stats.IsHot(fd, profile.DirectionRead, HotPresenceRatio) ||
		a.stats.IsHot(fd, profile.DirectionWrite, HotPresenceRatio)
}

func (a *Analyzer) isRarelyPresent(fd protoreflect.FieldDescriptor) bool {
	// Coldness must hold in both directions, or write-only and read-only
	// access patterns would misclassify as rare.
	return a.stats.IsCold(fd, profile.DirectionRead, ColdPresenceRatio) &&
		a.stats.IsCold(fd, profile.DirectionWrite, ColdPresenceRatio)
}

func isStringKind(k protoreflect.Kind) bool {
	return k == protoreflect.StringKind || k == protoreflect.BytesKind
}

func isMessageKind(k protoreflect.Kind) bool {
	return k == protoreflect.MessageKind || k == protoreflect.GroupKind
}
