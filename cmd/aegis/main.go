// aegis automates the pre-push workflow: build the project, gate on the
// security scan and static analysis, audit dependencies, collect
// remediation advice, then stage, commit and push interactively.
package main

import (
	"errors"
	"fmt"
	"os"

	"aegis/internal/domain/entities"
	"aegis/internal/ui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, entities.ErrUserDeclined) {
			// A declined prompt is a graceful stop, not a failure.
			fmt.Println(ui.SuccessRule("Stopped at your request. Nothing was pushed."))
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, ui.FailureBanner("aegis aborted", err.Error()))
		os.Exit(1)
	}
}
