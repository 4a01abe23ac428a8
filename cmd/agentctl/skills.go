package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agentctl/agentctl/pkg/presenter"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List loaded skills",
	Long:  `List every loaded skill with its triggers and description.`,
	Run: func(cmd *cobra.Command, _ []string) {
		registry := newRegistry(cmd.Context())
		loaded := registry.Skills()
		if len(loaded) == 0 {
			presenter.Info("No skills loaded")
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tTRIGGERS\tDESCRIPTION")
		fmt.Fprintln(tw, "----\t--------\t-----------")
		for _, skill := range loaded {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", skill.Name, strings.Join(skill.Triggers, ", "), truncate(skill.Description, 60))
		}
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}

// truncate shortens s to at most max runes, ellipsized. Counting runes
// rather than bytes keeps multi-byte descriptions intact.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
