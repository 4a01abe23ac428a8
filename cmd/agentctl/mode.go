package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/agentctl/agentctl/pkg/llm"
	"github.com/agentctl/agentctl/pkg/presenter"
)

var modeCmd = &cobra.Command{
	Use:   "mode [architect|worker|intern]",
	Short: "Show or switch the agent mode",
	Long: `Switch the agent mode used by subsequent work invocations. Without an
argument, prints the current mode.

Modes map to model tiers per provider: architect for high-reasoning design
work, worker for general implementation, intern for lightweight tasks.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if len(args) == 0 {
			mode, err := loadPersistedMode()
			if err != nil {
				mode = llm.ModeWorker
			}
			presenter.Info(mode.String())
			return
		}

		mode, err := llm.ParseMode(args[0])
		if err != nil {
			presenter.Error(err, "Invalid mode")
			os.Exit(1)
		}
		if err := persistMode(mode); err != nil {
			presenter.Error(err, "Failed to save mode")
			os.Exit(1)
		}
		presenter.Success("Mode set to " + mode.String())
	},
}

func init() {
	rootCmd.AddCommand(modeCmd)
}

func modeFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(homeDir, ".agentctl", "mode"), nil
}

// loadPersistedMode reads the mode saved by a previous `mode` invocation.
func loadPersistedMode() (llm.Mode, error) {
	path, err := modeFilePath()
	if err != nil {
		return llm.ModeWorker, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return llm.ModeWorker, err
	}
	return llm.ParseMode(strings.TrimSpace(string(data)))
}

func persistMode(mode llm.Mode) error {
	path, err := modeFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create state directory")
	}
	return os.WriteFile(path, []byte(mode.String()+"\n"), 0o644)
}
