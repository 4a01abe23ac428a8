package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/agentctl/agentctl/pkg/agent"
	"github.com/agentctl/agentctl/pkg/llm"
	"github.com/agentctl/agentctl/pkg/skills"
	"github.com/agentctl/agentctl/pkg/skills/builtin"
)

const workspaceSkillsDir = "skills"

// newRegistry builds the skill registry over the standard sources:
// workspace skills first, then user-global skills, then the builtin bundle.
func newRegistry(ctx context.Context) *skills.Registry {
	registry := skills.NewRegistry(skills.NewDirSource(workspaceSkillsDir))
	if homeDir, err := os.UserHomeDir(); err == nil {
		registry.AddSource(skills.NewDirSource(filepath.Join(homeDir, ".agentctl", "skills")))
	}
	registry.AddSource(builtin.Source())
	registry.Load(ctx)
	return registry
}

// newOrchestrator wires the harness, registry, and orchestrator for commands
// that dispatch or inspect routing state. Fatal only when no provider at all
// can be initialized.
func newOrchestrator(ctx context.Context) (*agent.Orchestrator, error) {
	cfg := llm.GetConfigFromViper()

	harness := llm.NewHarness(llm.DefaultProviders(cfg)...)
	if err := harness.Initialize(ctx); err != nil {
		return nil, errors.Wrap(err, "provider initialization failed")
	}

	orch := agent.New(harness, newRegistry(ctx), cfg.MaxTokens)

	if mode, err := loadPersistedMode(); err == nil {
		orch.SetMode(mode)
	}
	return orch, nil
}
