// Package main provides the CLI entrypoint for profile-analyzer.
//
// profile-analyzer reads a compiled descriptor set plus a recorded field
// access profile and reports, per field, which code generation
// optimization applies (inline string storage, lazy sub-message
// materialization).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"profile-analyzer/internal/profile"
	"profile-analyzer/internal/report"
	"profile-analyzer/internal/schema"
)

var (
	logger *zap.Logger

	descriptorSetPath string
	profilePath       string
	messageFilter     string
	printAllFields    bool
	printAnalysis     bool
	printThreshold    bool
	debugMode         bool
)

var rootCmd = &cobra.Command{
	Use:   "profile-analyzer",
	Short: "Analyze a field access profile against a protobuf schema",
	Long: `profile-analyzer classifies how often each message field is present
and used at runtime, then reports which code generation optimization
(inline string storage, lazy sub-message materialization) applies.

Inputs are a compiled descriptor set (protoc --descriptor_set_out) and a
recorded access profile in YAML. The report goes to stdout; warnings about
unresolvable profile entries go to stderr.`,
	SilenceUsage: true,
	RunE:         runAnalyze,
}

func init() {
	rootCmd.Flags().StringVar(&descriptorSetPath, "descriptor-set", "",
		"compiled FileDescriptorSet with the message schema (required)")
	rootCmd.Flags().StringVar(&profilePath, "profile", "",
		"recorded access profile YAML (required)")
	rootCmd.Flags().StringVar(&messageFilter, "message-filter", "",
		"only report messages whose recorded name matches this pattern")
	rootCmd.Flags().BoolVar(&printAllFields, "all-fields", false,
		"emit a line for every field, not just optimized ones")
	rootCmd.Flags().BoolVar(&printAnalysis, "analysis", false,
		"include presence/usage grades on each line")
	rootCmd.Flags().BoolVar(&printThreshold, "threshold", false,
		"print the unlikely-used threshold header")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"enable debug logging")

	cobra.CheckErr(rootCmd.MarkFlagRequired("descriptor-set"))
	cobra.CheckErr(rootCmd.MarkFlagRequired("profile"))
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	if debugMode {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	var err error

	logger, err = config.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: failed to initialize logger:", err)
		os.Exit(1)
	}
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	reg, err := schema.LoadDescriptorSet(descriptorSetPath)
	if err != nil {
		return err
	}

	doc, err := profile.Load(profilePath)
	if err != nil {
		return err
	}

	opts := report.Options{
		MessageFilter:        messageFilter,
		PrintAllFields:       printAllFields,
		PrintAnalysis:        printAnalysis,
		PrintUnusedThreshold: printThreshold,
	}

	return report.Run(cmd.OutOrStdout(), reg, doc, opts, logger)
}

func main() {
	cobra.OnInitialize(initLogger)

	err := rootCmd.Execute()

	if logger != nil {
		_ = logger.Sync()
	}

	if err != nil {
		os.Exit(1)
	}
}
