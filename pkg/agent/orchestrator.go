// Package agent contains the task orchestrator: the entry point that selects
// a mode persona, matches skills against the task, assembles the system
// prompt, and dispatches to the provider harness.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agentctl/agentctl/pkg/llm"
	"github.com/agentctl/agentctl/pkg/logger"
	"github.com/agentctl/agentctl/pkg/skills"
	"github.com/agentctl/agentctl/pkg/sysprompt"
	"github.com/agentctl/agentctl/pkg/telemetry"
)

// Sampling temperatures per dispatch path. Architectural reasoning benefits
// from more varied phrasing; implementation and UI work favor determinism.
const (
	temperatureArchitect = 0.8
	temperatureDefault   = 0.3
	temperatureUI        = 0.2
)

// ErrEmptyTask is returned when the task text is empty or whitespace-only.
var ErrEmptyTask = errors.New("task text is empty")

// Options carries optional per-task inputs.
type Options struct {
	// Context is caller-supplied background injected as a leading user
	// message before the task itself.
	Context string
}

// Orchestrator routes one task at a time: mode selection, UI detection,
// skill matching, prompt assembly, and harness dispatch. It holds no
// per-task state; only the current mode persists between calls.
type Orchestrator struct {
	harness   *llm.Harness
	registry  *skills.Registry
	mode      llm.Mode
	maxTokens int
	lastUsage llm.Usage
}

// Status is a point-in-time snapshot of orchestrator state.
type Status struct {
	Mode       string
	SkillCount int
	Primary    string
	Providers  []string
}

// New creates an orchestrator in worker mode.
func New(harness *llm.Harness, registry *skills.Registry, maxTokens int) *Orchestrator {
	return &Orchestrator{
		harness:   harness,
		registry:  registry,
		mode:      llm.ModeWorker,
		maxTokens: maxTokens,
	}
}

// SetMode switches the active mode. The only effect is on which persona and
// model mapping subsequent calls use.
func (o *Orchestrator) SetMode(mode llm.Mode) {
	o.mode = mode
}

// Mode returns the active mode.
func (o *Orchestrator) Mode() llm.Mode {
	return o.mode
}

// LastUsage returns token usage from the most recent successful dispatch.
func (o *Orchestrator) LastUsage() llm.Usage {
	return o.lastUsage
}

// Status reports current mode, loaded skill count, and provider chain.
func (o *Orchestrator) Status() Status {
	return Status{
		Mode:       o.mode.String(),
		SkillCount: o.registry.Len(),
		Primary:    o.harness.Primary(),
		Providers:  o.harness.Available(),
	}
}

// HandleTask routes a single task to completion and returns the model's
// textual response. Empty task text is rejected before any matching. Provider
// failures are rendered as a readable error string in the response rather
// than returned, so the command layer prints whatever comes back without
// extra handling.
func (o *Orchestrator) HandleTask(ctx context.Context, task string, opts Options) (string, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return "", ErrEmptyTask
	}

	var result string
	err := telemetry.WithSpan(ctx, "agent.handle_task", func(ctx context.Context) error {
		if isUITask(task) {
			logger.G(ctx).Debug("task routed to UI persona")
			result = o.dispatchUI(ctx, task, opts)
			return nil
		}
		result = o.dispatch(ctx, task, opts)
		return nil
	}, attribute.String("agent.mode", o.mode.String()))
	if err != nil {
		return "", err
	}
	return result, nil
}

// dispatch runs the standard path: skill selection, prompt assembly, harness
// call with mode-dependent sampling.
func (o *Orchestrator) dispatch(ctx context.Context, task string, opts Options) string {
	matches := skills.Match(task, o.registry.Skills())
	if len(matches) > 0 {
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Skill.Name)
		}
		logger.G(ctx).WithField("skills", names).Debug("matched skills")
	}

	system, err := sysprompt.SystemPrompt(o.mode, matches)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	temperature := temperatureDefault
	if o.mode == llm.ModeArchitect {
		temperature = temperatureArchitect
	}

	return o.chat(ctx, system, task, opts, temperature)
}

// dispatchUI runs the UI path: fixed persona, no skill selection, low
// temperature.
func (o *Orchestrator) dispatchUI(ctx context.Context, task string, opts Options) string {
	system, err := sysprompt.UIPrompt()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return o.chat(ctx, system, task, opts, temperatureUI)
}

func (o *Orchestrator) chat(ctx context.Context, system, task string, opts Options, temperature float64) string {
	messages := []llm.Message{{Role: llm.RoleSystem, Content: system}}
	if opts.Context != "" {
		messages = append(messages, llm.Message{Role: llm.RoleUser, Content: "Context:\n" + opts.Context})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: task})

	resp, err := o.harness.Chat(ctx, messages, o.mode, llm.ChatOptions{
		Temperature: temperature,
		MaxTokens:   o.maxTokens,
	})
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	o.lastUsage = resp.Usage
	return resp.Content
}
