// Package schema resolves message types out of a compiled protobuf
// descriptor set and answers the static shape questions the analyzer
// asks about fields.
//
// Key entry points:
//   - LoadDescriptorSet: read a `protoc --descriptor_set_out` blob
//   - Registry.FindMessageByGeneratedName: map a generated-code type name
//     ("pkg::Outer_Inner") back to its dotted schema path
//   - TypeName / CanInlineString: per-field shape queries
package schema
