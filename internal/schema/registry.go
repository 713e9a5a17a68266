package schema

import (
	"fmt"
	"os"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Registry holds the message types of one loaded descriptor set.
//
// Generated-name lookups are memoized per registry (misses included), so a
// Registry carries per-run state and is not safe for concurrent mutation.
// The read-only descriptor data behind it is.
type Registry struct {
	files *protoregistry.Files
	memo  map[string]protoreflect.MessageDescriptor
}

// NewRegistry wraps an already-populated file registry.
func NewRegistry(files *protoregistry.Files) *Registry {
	return &Registry{
		files: files,
		memo:  make(map[string]protoreflect.MessageDescriptor),
	}
}

// LoadDescriptorSet reads a binary FileDescriptorSet (the output of
// protoc --descriptor_set_out) and registers every file in it.
func LoadDescriptorSet(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor set %s: %w", path, err)
	}

	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor set %s: %w", path, err)
	}

	files, err := protodesc.NewFiles(&set)
	if err != nil {
		return nil, fmt.Errorf("failed to build type registry: %w", err)
	}

	return NewRegistry(files), nil
}

// FindMessage looks up a message type by its full dotted name.
// Returns nil if the name does not name a message.
func (r *Registry) FindMessage(name string) protoreflect.MessageDescriptor {
	desc, err := r.files.FindDescriptorByName(protoreflect.FullName(name))
	if err != nil {
		return nil
	}

	md, ok := desc.(protoreflect.MessageDescriptor)
	if !ok {
		return nil
	}

	return md
}

// FindMessageByGeneratedName resolves a generated-code type name against
// the registry. Generated names separate namespaces with "::" and flatten
// nested type boundaries with underscores ("pkg::Outer_Inner"). An exact
// dotted lookup is tried first; on failure, underscore boundaries are
// rewritten to dots, longest known prefix first.
func (r *Registry) FindMessageByGeneratedName(name string) protoreflect.MessageDescriptor {
	if md, ok := r.memo[name]; ok {
		return md
	}

	md := r.resolveGeneratedName(name)
	r.memo[name] = md

	return md
}

func (r *Registry) resolveGeneratedName(name string) protoreflect.MessageDescriptor {
	s := strings.ReplaceAll(name, "::", ".")
	if md := r.FindMessage(s); md != nil {
		return md
	}

	b := []byte(s)
	minLen := 1

	for {
		pos := r.longestKnownPrefix(string(b), minLen)
		if pos == 0 {
			return nil
		}

		b[pos] = '.'
		if md := r.FindMessage(string(b)); md != nil {
			return md
		}

		// The committed rewrite stands; only longer prefixes remain.
		minLen = pos + 1
	}
}

// longestKnownPrefix returns the position of the rightmost underscore at
// or above minLen whose prefix names a known message type, or 0 if none
// does.
func (r *Registry) longestKnownPrefix(name string, minLen int) int {
	for pos := len(name) - 1; pos >= minLen; pos-- {
		if name[pos] == '_' && r.FindMessage(name[:pos]) != nil {
			return pos
		}
	}

	return 0
}
