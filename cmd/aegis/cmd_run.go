package main

import (
	"fmt"

	"github.com/spf13/cobra"

	orchestrators "aegis/internal/domain-orchestrators"
	"aegis/internal/ui"
)

var runFlags struct {
	ticket string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pre-push pipeline",
	Long: `Run every stage in order: build, security scan and static analysis
(both gated), dependency audit, remediation advice, then the interactive
stage/commit/drift-check/push sequence. The pipeline stops at the first
failing gate; remediation never gates.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runFlags.ticket, "ticket", "t", "",
		"Ticket identifier prefixed to the commit message (prompted when omitted)")
}

func runRun(cmd *cobra.Command, _ []string) error {
	// The ticket is resolved before any tool runs: a missing ticket must
	// not surface only after a half-hour build.
	ticket, err := resolveTicket(runFlags.ticket)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	sync, err := a.syncMachine(ticket)
	if err != nil {
		return err
	}

	result := a.pipeline(sync).Run(cmd.Context())
	if result.State == orchestrators.StateAborted {
		return result.Err
	}
	fmt.Println(ui.SuccessRule("All stages completed. Your branch is pushed."))
	return nil
}
