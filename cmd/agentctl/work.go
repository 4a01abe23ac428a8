package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/agentctl/agentctl/pkg/agent"
	"github.com/agentctl/agentctl/pkg/beads"
	"github.com/agentctl/agentctl/pkg/hooks"
	"github.com/agentctl/agentctl/pkg/llm"
	"github.com/agentctl/agentctl/pkg/presenter"
)

// WorkConfig holds configuration for the work command.
type WorkConfig struct {
	Mode    string
	Context string
	Todos   string
}

// NewWorkConfig creates a WorkConfig with default values.
func NewWorkConfig() *WorkConfig {
	return &WorkConfig{}
}

var workCmd = &cobra.Command{
	Use:   "work [task]",
	Short: "Route a task to the model backend",
	Long: `Route a free-text task: matches it against the loaded skills, assembles
the mode persona and capability menu into a system prompt, and dispatches to
the primary provider with automatic fallback.

The task is read from the argument, or from standard input when omitted.

After a successful run the task is reported to lifecycle listeners as a
completed todo, so tasks that mention a tracker issue (such as "fix bd-12")
are closed in the tracker automatically. --todos adds further todo items from
a JSON file to the same report.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		config := getWorkConfigFromFlags(cmd)

		task, err := resolveTask(args)
		if err != nil {
			presenter.Error(err, "No task provided")
			os.Exit(1)
		}

		extraTodos, err := loadTodoPayload(config.Todos)
		if err != nil {
			presenter.Error(err, "Invalid todo payload")
			os.Exit(1)
		}

		orch, err := newOrchestrator(ctx)
		if err != nil {
			presenter.Error(err, "Initialization failed")
			os.Exit(1)
		}

		if config.Mode != "" {
			mode, err := llm.ParseMode(config.Mode)
			if err != nil {
				presenter.Error(err, "Invalid mode")
				os.Exit(1)
			}
			orch.SetMode(mode)
		}

		dispatcher := hooks.NewDispatcher()
		dispatcher.Register(beads.NewSyncListener(beads.NewClient()))

		session := hooks.NewEvent(hooks.EventSessionStarted, "")
		dispatcher.Emit(ctx, session)
		defer dispatcher.Emit(ctx, hooks.NewEvent(hooks.EventSessionEnded, session.Session))

		result, err := orch.HandleTask(ctx, task, agent.Options{Context: config.Context})
		if err != nil {
			presenter.Error(err, "Task rejected")
			os.Exit(1)
		}

		dispatcher.Emit(ctx, completionEvent(session.Session, task, extraTodos))

		fmt.Println(result)
		presenter.Stats(orch.LastUsage())
	},
}

func init() {
	defaults := NewWorkConfig()
	workCmd.Flags().String("mode", defaults.Mode, "Override the agent mode (architect, worker, intern)")
	workCmd.Flags().String("context", defaults.Context, "Additional context injected before the task")
	workCmd.Flags().String("todos", defaults.Todos, "JSON file with todo items to report alongside the task")
	rootCmd.AddCommand(withTracing(workCmd))
}

func getWorkConfigFromFlags(cmd *cobra.Command) *WorkConfig {
	config := NewWorkConfig()
	if mode, err := cmd.Flags().GetString("mode"); err == nil {
		config.Mode = mode
	}
	if context, err := cmd.Flags().GetString("context"); err == nil {
		config.Context = context
	}
	if todos, err := cmd.Flags().GetString("todos"); err == nil {
		config.Todos = todos
	}
	return config
}

// resolveTask returns the positional task argument, falling back to stdin.
func resolveTask(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "failed to read task from stdin")
	}
	task := strings.TrimSpace(string(data))
	if task == "" {
		return "", errors.New("task text is empty: pass it as an argument or on stdin")
	}
	return task, nil
}

// loadTodoPayload reads a JSON todo list from path. An empty path means no
// extra todos. The payload goes through the lenient hooks decoder so external
// producers can include fields this build does not know about.
func loadTodoPayload(path string) ([]hooks.TodoItem, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read todo payload %s", path)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrapf(err, "failed to parse todo payload %s", path)
	}
	return hooks.DecodeTodos(payload)
}

// completionEvent reports the finished task as a completed todo, with any
// caller-supplied todos ahead of it.
func completionEvent(session, task string, extra []hooks.TodoItem) hooks.Event {
	event := hooks.NewEvent(hooks.EventToolExecutionCompleted, session)
	event.Todos = append(append([]hooks.TodoItem{}, extra...), hooks.TodoItem{
		Content: task,
		Status:  hooks.TodoCompleted,
	})
	return event
}
