package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models that support content generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "\tNAME\tDISPLAY NAME\tOUTPUT TOKENS")
		for _, m := range a.models {
			mark := ""
			if m.Name == a.defaultModel {
				mark = "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", mark, m.Name, m.DisplayName, m.OutputTokenLimit)
		}
		return tw.Flush()
	},
}
