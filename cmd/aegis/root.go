package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	workspace string
}

var rootCmd = &cobra.Command{
	Use:   "aegis",
	Short: "Pre-push pipeline: build, scan, audit, remediate, sync",
	Long: `Aegis runs a developer's pre-push checks as one fail-fast pipeline:
build the project, gate on the vulnerability scan and the static
analysis, audit the dependency tree, collect remediation advice, then
walk an interactive stage/commit/drift-check/push sequence.

Each stage writes its report under .dev-aegis/ in the workspace.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.workspace, "workspace", "w", ".",
		"Project directory the tools run in")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.Version = version
}
