package analyzer

import (
	"testing"
)

func TestScaleOrdering(t *testing.T) {
	// The rule set compares scales, so the declaration order is part of
	// the contract.
	if !(ScaleNever < ScaleRarely && ScaleRarely < ScaleDefault && ScaleDefault < ScaleLikely) {
		t.Fatalf("scale ordering broken: Never=%d Rarely=%d Default=%d Likely=%d",
			ScaleNever, ScaleRarely, ScaleDefault, ScaleLikely)
	}
}

func TestScaleString(t *testing.T) {
	tests := []struct {
		scale    Scale
		expected string
	}{
		{ScaleNever, "NEVER"},
		{ScaleRarely, "RARELY"},
		{ScaleDefault, "DEFAULT"},
		{ScaleLikely, "LIKELY"},
		{Scale(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.scale.String(); got != tt.expected {
				t.Errorf("Scale.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestOptimizationString(t *testing.T) {
	tests := []struct {
		verdict  Optimization
		expected string
	}{
		{OptimizeNone, "NONE"},
		{OptimizeLazy, "LAZY"},
		{OptimizeInline, "INLINE"},
		{OptimizeSplit, "SPLIT"},
		{Optimization(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.verdict.String(); got != tt.expected {
				t.Errorf("Optimization.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSplitIsDistinctReservedValue(t *testing.T) {
	// Split has no producing rule yet but must stay distinguishable from
	// None for stored verdicts.
	if OptimizeSplit == OptimizeNone {
		t.Fatal("OptimizeSplit must differ from OptimizeNone")
	}
}
