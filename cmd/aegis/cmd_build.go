package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aegis/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the project and save the build log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.builder().Build(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(ui.SuccessRule("Build succeeded."))
		return nil
	},
}
