package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"aegis/internal/config"
	adapters "aegis/internal/domain-adapters/gateways"
	orchestrators "aegis/internal/domain-orchestrators"
	"aegis/internal/domain/interfaces/gateways"
	"aegis/internal/logging"
	"aegis/internal/output"
	"aegis/internal/ui"
)

// app bundles the wired components every subcommand starts from.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	reports *output.Writer
	runner  *adapters.CommandRunner
}

func newApp() (*app, error) {
	cfg, err := config.Load(rootFlags.workspace)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:     *cfg,
		log:     log,
		reports: output.NewWriter(cfg.ReportRoot()),
		runner:  adapters.NewCommandRunner(30 * time.Minute),
	}, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}

func (a *app) builder() gateways.BuildTool {
	return adapters.NewMavenBuilder(a.cfg, a.runner, a.reports, a.log)
}

func (a *app) scanner() gateways.VulnerabilityScanner {
	return adapters.NewSnykScanner(a.cfg, a.runner, a.reports, a.log)
}

func (a *app) analysis() gateways.AnalysisServer {
	return adapters.NewSonarGateway(a.cfg, a.runner, a.reports, a.log)
}

func (a *app) deps() gateways.DependencySource {
	return adapters.NewMavenDependencyTree(a.cfg, a.runner, a.log)
}

func (a *app) advisor() gateways.RemediationAdvisor {
	if !a.cfg.Advisor.Enabled {
		return nil
	}
	return adapters.NewOllamaAdvisor(a.cfg.Advisor)
}

func (a *app) syncMachine(ticket string) (*orchestrators.SyncMachine, error) {
	vcs, err := adapters.OpenGitGateway(a.cfg.Workspace, a.cfg.VCS.Remote)
	if err != nil {
		return nil, err
	}
	prompter := ui.NewTerminalPrompter(os.Stdin, os.Stdout)
	return orchestrators.NewSyncMachine(vcs, prompter, a.reports, ticket, a.log), nil
}

// pipeline wires the full pipeline. sync may be nil for subcommands that
// never reach the VCS stage.
func (a *app) pipeline(sync *orchestrators.SyncMachine) *orchestrators.Pipeline {
	return orchestrators.NewPipeline(a.cfg, a.builder(), a.scanner(), a.analysis(),
		a.deps(), a.advisor(), sync, a.reports, a.log)
}

// resolveTicket returns the ticket from the flag or prompts for it.
// VCS work must not start without one.
func resolveTicket(flagValue string) (string, error) {
	ticket := strings.TrimSpace(flagValue)
	if ticket == "" {
		prompter := ui.NewTerminalPrompter(os.Stdin, os.Stdout)
		answer, err := prompter.Line("Ticket number")
		if err != nil {
			return "", err
		}
		ticket = strings.TrimSpace(answer)
	}
	if ticket == "" {
		return "", fmt.Errorf("a ticket identifier is required (--ticket)")
	}
	return ticket, nil
}
