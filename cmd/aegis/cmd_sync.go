package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aegis/internal/ui"
)

var syncFlags struct {
	ticket string
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Stage, commit and push interactively",
	Long: `Walk the VCS-sync sequence on its own: protected-branch guard,
per-file staging (y/n/a/q), ticket-prefixed commit, upstream drift
check against the protected branches, then push with upstream creation.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVarP(&syncFlags.ticket, "ticket", "t", "",
		"Ticket identifier prefixed to the commit message (prompted when omitted)")
}

func runSync(cmd *cobra.Command, _ []string) error {
	ticket, err := resolveTicket(syncFlags.ticket)
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
	if err := sync.Run(cmd.Context()); err != nil {
		return err
	}
	fmt.Println(ui.SuccessRule("Branch synchronized with the remote."))
	return nil
}
