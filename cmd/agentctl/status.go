package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentctl/agentctl/pkg/presenter"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current mode, skills, and providers",
	Run: func(cmd *cobra.Command, _ []string) {
		orch, err := newOrchestrator(cmd.Context())
		if err != nil {
			presenter.Error(err, "Initialization failed")
			os.Exit(1)
		}

		status := orch.Status()
		presenter.Section("agentctl status")
		presenter.Info(fmt.Sprintf("Mode:      %s", status.Mode))
		presenter.Info(fmt.Sprintf("Skills:    %d loaded", status.SkillCount))
		presenter.Info(fmt.Sprintf("Primary:   %s", status.Primary))
		presenter.Info(fmt.Sprintf("Available: %s", strings.Join(status.Providers, ", ")))
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
