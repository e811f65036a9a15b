package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aegis/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the static analysis and its quality gate",
	Long: `Run the analysis scanner, wait for the server to process the
submission, then gate on blocker defects, critical defects and
instruction coverage. The server token is read from SONAR_TOKEN.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.pipeline(nil).Analyze(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(ui.SuccessRule("Analysis gate passed."))
		return nil
	},
}
