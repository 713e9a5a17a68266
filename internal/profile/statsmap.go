package profile

import (
	"sort"

	"go.uber.org/zap"
	"google.golang.org/protobuf/reflect/protoreflect"

	"profile-analyzer/internal/common"
	"profile-analyzer/internal/schema"
)

// AccessKind selects which value-access counter bucket a query reads.
type AccessKind int

const (
	AccessRead AccessKind = iota
	AccessWrite
	AccessOther
	// AccessReadWriteOther is the aggregate of all three buckets.
	AccessReadWriteOther
)

// Direction selects the access direction of a presence query.
type Direction int

const (
	DirectionRead Direction = iota
	DirectionWrite
)

// ProfiledMessage pairs a resolved message descriptor with the
// generated-code name it was recorded under.
type ProfiledMessage struct {
	ProfileName string
	Descriptor  protoreflect.MessageDescriptor
}

// StatsMap indexes one profile snapshot by resolved schema names. It is
// read-only after construction and safe for concurrent queries.
type StatsMap struct {
	threshold uint64
	messages  []ProfiledMessage
	fields    map[protoreflect.FullName]map[string]FieldAccess
}

// NewStatsMap resolves every profiled message against the registry and
// indexes its field entries. Entries whose names do not resolve are
// skipped with a warning; that message's fields simply stay unprofiled.
func NewStatsMap(doc *Document, reg *schema.Registry, log *zap.Logger) *StatsMap {
	m := &StatsMap{
		threshold: doc.UnlikelyUsedThreshold,
		fields:    make(map[protoreflect.FullName]map[string]FieldAccess),
	}

	msgs := make([]MessageAccess, len(doc.Messages))
	copy(msgs, doc.Messages)
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].Name < msgs[j].Name })

	for i := range msgs {
		ma := &msgs[i]

		md := reg.FindMessageByGeneratedName(ma.Name)
		if md == nil {
			log.Warn("unknown generated message name", zap.String("name", ma.Name))

			continue
		}

		byField := make(map[string]FieldAccess, len(ma.Fields))
		for _, fa := range ma.Fields {
			byField[fa.Name] = fa
		}

		m.fields[md.FullName()] = byField
		m.messages = append(m.messages, ProfiledMessage{ProfileName: ma.Name, Descriptor: md})
	}

	return m
}

// Messages returns the resolved profiled messages, sorted by their
// recorded names.
func (m *StatsMap) Messages() []ProfiledMessage {
	return m.messages
}

// UnlikelyUsedThreshold returns the configured usage cutoff.
func (m *StatsMap) UnlikelyUsedThreshold() uint64 {
	return m.threshold
}

// HasProfile reports whether the snapshot has data for the message type.
func (m *StatsMap) HasProfile(md protoreflect.MessageDescriptor) bool {
	_, ok := m.fields[md.FullName()]

	return ok
}

// InProfile reports whether the snapshot has data for the field.
func (m *StatsMap) InProfile(fd protoreflect.FieldDescriptor) bool {
	_, ok := m.lookup(fd)

	return ok
}

// AccessCount returns the recorded value-access count for the field in
// the given bucket. Unprofiled fields count zero.
func (m *StatsMap) AccessCount(fd protoreflect.FieldDescriptor, kind AccessKind) uint64 {
	fa, ok := m.lookup(fd)
	if !ok {
		return 0
	}

	switch kind {
	case AccessRead:
		return fa.Accesses.Read
	case AccessWrite:
		return fa.Accesses.Write
	case AccessOther:
		return fa.Accesses.Other
	case AccessReadWriteOther:
		return fa.Accesses.Read + fa.Accesses.Write + fa.Accesses.Other
	default:
		return 0
	}
}

// IsHot reports whether the fraction of sampled accesses that found the
// field present reaches ratio in the given direction. A direction with no
// samples provides no hot evidence.
func (m *StatsMap) IsHot(fd protoreflect.FieldDescriptor, dir Direction, ratio float64) bool {
	if !common.IsInRange(0.0, ratio, 1.0) {
		return false
	}

	fa, ok := m.lookup(fd)
	if !ok {
		return false
	}

	ds := fa.Presence.direction(dir)
	if ds.Samples == 0 {
		return false
	}

	return presenceFraction(ds) >= ratio
}

// IsCold reports whether the fraction of sampled accesses that found the
// field present is at most ratio in the given direction. A direction with
// no samples is vacuously cold.
func (m *StatsMap) IsCold(fd protoreflect.FieldDescriptor, dir Direction, ratio float64) bool {
	if !common.IsInRange(0.0, ratio, 1.0) {
		return false
	}

	fa, ok := m.lookup(fd)
	if !ok {
		return false
	}

	ds := fa.Presence.direction(dir)
	if ds.Samples == 0 {
		return true
	}

	return presenceFraction(ds) <= ratio
}

func (m *StatsMap) lookup(fd protoreflect.FieldDescriptor) (FieldAccess, bool) {
	byField, ok := m.fields[fd.ContainingMessage().FullName()]
	if !ok {
		return FieldAccess{}, false
	}

	fa, ok := byField[string(fd.Name())]

	return fa, ok
}

func (p PresenceSamples) direction(dir Direction) DirectionSamples {
	if dir == DirectionWrite {
		return p.Write
	}

	return p.Read
}

func presenceFraction(ds DirectionSamples) float64 {
	return float64(ds.Present) / float64(ds.Samples)
}
