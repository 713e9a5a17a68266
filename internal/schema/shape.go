package schema

import (
	"google.golang.org/protobuf/reflect/protoreflect"

	"profile-analyzer/internal/common"
)

// TypeName returns the report representation of a field's type: the
// scalar kind name, or the nested message's short name for message
// fields, with "[]" appended for repeated fields.
func TypeName(fd protoreflect.FieldDescriptor) string {
	if fd == nil {
		return common.UnknownStr
	}

	var s string

	switch fd.Kind() {
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		s = "int32"
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		s = "int64"
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		s = "uint32"
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		s = "uint64"
	case protoreflect.DoubleKind:
		s = "double"
	case protoreflect.FloatKind:
		s = "float"
	case protoreflect.BoolKind:
		s = "bool"
	case protoreflect.EnumKind:
		s = "enum"
	case protoreflect.StringKind, protoreflect.BytesKind:
		s = "string"
	case protoreflect.MessageKind, protoreflect.GroupKind:
		s = string(fd.Message().Name())
	default:
		s = common.UnknownStr
	}

	if fd.Cardinality() == protoreflect.Repeated {
		s += "[]"
	}

	return s
}

// CanInlineString reports whether a field's declared shape allows its
// value to be stored inline in the parent message: a singular string or
// bytes field.
func CanInlineString(fd protoreflect.FieldDescriptor) bool {
	if fd.Cardinality() == protoreflect.Repeated {
		return false
	}

	return fd.Kind() == protoreflect.StringKind || fd.Kind() == protoreflect.BytesKind
}
