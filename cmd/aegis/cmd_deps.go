package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	orchestrators "aegis/internal/domain-orchestrators"
	"aegis/internal/domain/entities"
	"aegis/internal/output"
)

var depsFlags struct {
	include string
}

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "List the project's dependency tree",
	Long: `Fetch the dependency tree from the build tool and write the audit
report. With --include the tree is filtered to one group:artifact
coordinate.`,
	Args: cobra.NoArgs,
	RunE: runDeps,
}

func init() {
	depsCmd.Flags().StringVar(&depsFlags.include, "include", "",
		"Filter the tree to one coordinate, as group:artifact")
}

func runDeps(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	source := a.deps()
	var tree entities.DependencyTree
	if depsFlags.include != "" {
		group, artifact, found := strings.Cut(depsFlags.include, ":")
		if !found || group == "" || artifact == "" {
			return fmt.Errorf("--include must be group:artifact, got %q", depsFlags.include)
		}
		tree, err = source.ArtifactTree(cmd.Context(), group, artifact)
	} else {
		tree, err = source.ProjectTree(cmd.Context())
	}
	if err != nil {
		return err
	}

	path, err := a.reports.Write(output.CategoryDeps, orchestrators.DepsReportName,
		output.RenderDependencyReport(tree))
	if err != nil {
		return err
	}

	fmt.Println(tree.Listing)
	fmt.Printf("Report written to %s\n", path)
	return nil
}
