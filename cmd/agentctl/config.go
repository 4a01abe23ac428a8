package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agentctl/agentctl/pkg/llm"
	"github.com/agentctl/agentctl/pkg/presenter"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show provider credential configuration",
	Long: `Show which environment variable each provider expects and whether it is
currently set. A provider whose variable is unset is skipped at
initialization; this is fatal only when every provider is unset.`,
	Run: func(_ *cobra.Command, _ []string) {
		presenter.Section("Provider credentials")

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "PROVIDER\tENVIRONMENT VARIABLE\tSTATUS")
		for _, p := range llm.DefaultProviders(llm.GetConfigFromViper()) {
			status := "unset"
			if os.Getenv(p.CredentialEnv()) != "" {
				status = "set"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name(), p.CredentialEnv(), status)
		}
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
