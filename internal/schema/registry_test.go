package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// testRegistry builds a registry with nested messages and a message whose
// declared name itself contains an underscore.
func testRegistry(t *testing.T) *Registry {
	t.Helper()

	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("shop.proto"),
		Package: proto.String("shop"),
		Syntax:  proto.String("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("Order"),
				NestedType: []*descriptorpb.DescriptorProto{
					{
						Name: proto.String("Line"),
						NestedType: []*descriptorpb.DescriptorProto{
							{Name: proto.String("Discount")},
						},
					},
				},
			},
			{Name: proto.String("Snake_Case")},
		},
	}

	file, err := protodesc.NewFile(fdp, nil)
	require.NoError(t, err)

	files := new(protoregistry.Files)
	require.NoError(t, files.RegisterFile(file))

	return NewRegistry(files)
}

func TestFindMessage(t *testing.T) {
	reg := testRegistry(t)

	md := reg.FindMessage("shop.Order.Line")
	require.NotNil(t, md)
	assert.Equal(t, "shop.Order.Line", string(md.FullName()))

	assert.Nil(t, reg.FindMessage("shop.Nope"))
	assert.Nil(t, reg.FindMessage("shop"), "a package name is not a message")
}

func TestFindMessageByGeneratedName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string // full dotted name, empty for a miss
	}{
		{"top level", "shop::Order", "shop.Order"},
		{"already dotted", "shop.Order", "shop.Order"},
		{"flattened nested", "shop::Order_Line", "shop.Order.Line"},
		{"two flattened segments", "shop::Order_Line_Discount", "shop.Order.Line.Discount"},
		{"underscore in declared name", "shop::Snake_Case", "shop.Snake_Case"},
		{"unknown type", "shop::Missing_Type", ""},
		{"unknown namespace", "warehouse::Order", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := testRegistry(t)

			md := reg.FindMessageByGeneratedName(tt.input)
			if tt.expected == "" {
				assert.Nil(t, md)

				return
			}

			require.NotNil(t, md)
			assert.Equal(t, tt.expected, string(md.FullName()))
		})
	}
}

func TestFindMessageByGeneratedNameMemoizes(t *testing.T) {
	reg := testRegistry(t)

	first := reg.FindMessageByGeneratedName("shop::Order_Line")
	require.NotNil(t, first)
	assert.Contains(t, reg.memo, "shop::Order_Line")

	// Misses are memoized too.
	assert.Nil(t, reg.FindMessageByGeneratedName("shop::Missing"))
	assert.Contains(t, reg.memo, "shop::Missing")

	// A memoized hit must come back identical.
	assert.Equal(t, first, reg.FindMessageByGeneratedName("shop::Order_Line"))
}
