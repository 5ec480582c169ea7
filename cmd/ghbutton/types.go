package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ghbutton/pkg/button"
)

func (a *app) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported button types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tICON\tREPO\tCOUNT")
			for _, typ := range button.Types() {
				defaults := button.ComputeDefaults(typ, "user", "repo")
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", typ, defaults.Icon, yesNo(typ.RequiresRepo()), yesNo(defaults.CountAPI != ""))
			}
			return w.Flush()
		},
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
