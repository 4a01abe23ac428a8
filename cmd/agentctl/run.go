package main

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/agentctl/agentctl/pkg/logger"
	"github.com/agentctl/agentctl/pkg/presenter"
)

const defaultScriptName = "validate"

// RunConfig holds configuration for the run command.
type RunConfig struct {
	Watch    bool
	Debounce time.Duration
}

// NewRunConfig creates a RunConfig with default values.
func NewRunConfig() *RunConfig {
	return &RunConfig{Debounce: 500 * time.Millisecond}
}

var runCmd = &cobra.Command{
	Use:   "run <skill> [script]",
	Short: "Run a skill's validation script",
	Long: `Run a script shipped with a skill, by convention located at
skills/<skill>/scripts/<script>. The script name defaults to "validate".

With --watch, the script is re-run whenever a file under the skill directory
changes.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		config := getRunConfigFromFlags(cmd)

		skillName := args[0]
		scriptName := defaultScriptName
		if len(args) > 1 {
			scriptName = args[1]
		}

		scriptPath := filepath.Join(workspaceSkillsDir, skillName, "scripts", scriptName)
		if _, err := os.Stat(scriptPath); err != nil {
			presenter.Error(errors.Errorf("no script at %s", scriptPath), "Script not found")
			os.Exit(1)
		}

		if !config.Watch {
			if err := runScript(ctx, scriptPath); err != nil {
				presenter.Error(err, "Script failed")
				os.Exit(1)
			}
			return
		}

		if err := watchAndRun(ctx, filepath.Join(workspaceSkillsDir, skillName), scriptPath, config.Debounce); err != nil {
			presenter.Error(err, "Watch failed")
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewRunConfig()
	runCmd.Flags().Bool("watch", defaults.Watch, "Re-run the script when files under the skill directory change")
	rootCmd.AddCommand(withTracing(runCmd))
}

func getRunConfigFromFlags(cmd *cobra.Command) *RunConfig {
	config := NewRunConfig()
	if watch, err := cmd.Flags().GetBool("watch"); err == nil {
		config.Watch = watch
	}
	return config
}

func runScript(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, path)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

// watchAndRun runs the script once, then re-runs it on any write or create
// under the skill directory, debounced so editor save bursts trigger a
// single run. Returns when ctx is cancelled.
func watchAndRun(ctx context.Context, dir, scriptPath string, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer watcher.Close()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
	if err != nil {
		return errors.Wrap(err, "failed to watch skill directory")
	}

	if err := runScript(ctx, scriptPath); err != nil {
		presenter.Warning("Script failed: " + err.Error())
	}
	presenter.Info("Watching " + dir + " for changes...")

	var timer *time.Timer
	runs := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case runs <- struct{}{}:
				default:
				}
			})
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.G(ctx).WithError(watchErr).Warn("watcher error")
		case <-runs:
			if err := runScript(ctx, scriptPath); err != nil {
				presenter.Warning("Script failed: " + err.Error())
			}
		}
	}
}
