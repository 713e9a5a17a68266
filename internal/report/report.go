// Package report renders per-field optimization verdicts as a
// line-oriented text report.
package report

import (
	"fmt"
	"io"
	"regexp"

	"go.uber.org/zap"
	"google.golang.org/protobuf/reflect/protoreflect"

	"profile-analyzer/internal/analyzer"
	"profile-analyzer/internal/profile"
	"profile-analyzer/internal/schema"
)

const headerSeparator = "-----------------------------------------"

// Options control which lines the report emits.
type Options struct {
	// MessageFilter is matched unanchored against the recorded message
	// names. Empty matches everything.
	MessageFilter string
	// PrintAllFields emits a line for every field of a profiled message,
	// not just fields with a verdict.
	PrintAllFields bool
	// PrintAnalysis adds the presence/usage grades to each line.
	PrintAnalysis bool
	// PrintUnusedThreshold prints the configured usage cutoff up front.
	PrintUnusedThreshold bool
}

// Run analyzes every profiled message matching the filter and writes the
// report to w. Profile entries that do not resolve against the schema are
// skipped with a warning; an invalid filter aborts before any output.
func Run(w io.Writer, reg *schema.Registry, doc *profile.Document, opts Options, log *zap.Logger) error {
	pattern := opts.MessageFilter
	if pattern == "" {
		pattern = ".*"
	}

	filter, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid message filter %q: %w", opts.MessageFilter, err)
	}

	stats := profile.NewStatsMap(doc, reg, log)
	an := analyzer.NewAnalyzer(stats)

	if opts.PrintUnusedThreshold {
		fmt.Fprintf(w, "Unlikely Used Threshold = %d\n", an.UnlikelyUsedThreshold())
		fmt.Fprintf(w, "%s\n", headerSeparator)
	}

	for _, pm := range stats.Messages() {
		if !filter.MatchString(pm.ProfileName) {
			continue
		}

		if !an.HasProfile(pm.Descriptor) {
			continue
		}

		writeMessage(w, an, pm.Descriptor, opts)
	}

	return nil
}

// writeMessage emits the per-field lines of one message. The message
// header is written lazily, only before the first emitted field line.
func writeMessage(w io.Writer, an *analyzer.Analyzer, md protoreflect.MessageDescriptor, opts Options) {
	fields := md.Fields()
	headerDone := false

	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		analysis := an.AnalyzeField(fd)
		verdict := an.OptimizeField(fd)

		if !opts.PrintAllFields && !opts.PrintAnalysis && verdict == analyzer.OptimizeNone {
			continue
		}

		if !headerDone {
			headerDone = true

			fmt.Fprintf(w, "Message %s\n", md.FullName())
		}

		fmt.Fprintf(w, "  %s %s:", schema.TypeName(fd), fd.Name())

		if opts.PrintAnalysis {
			if analysis.Presence != analyzer.ScaleDefault {
				fmt.Fprintf(w, " %s_PRESENT", analysis.Presence)
			}

			if analysis.Usage != analyzer.ScaleDefault {
				fmt.Fprintf(w, " %s_USED", analysis.Usage)
			}
		}

		if verdict != analyzer.OptimizeNone {
			fmt.Fprintf(w, " %s", verdict)
		}

		fmt.Fprintln(w)
	}
}
