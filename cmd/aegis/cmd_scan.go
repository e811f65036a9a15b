package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aegis/internal/ui"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run the vulnerability scan and its quality gate",
	Long: `Run the security scanner, write the scan report and evaluate the
security gate: any critical finding fails, as does any high finding with
a mature exploit and an available fix.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.pipeline(nil).Scan(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(ui.SuccessRule("Security gate passed."))
		return nil
	},
}
