package main

import (
	"fmt"
	"sendyourfiles/internal/config"
	"sendyourfiles/internal/core/domain"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newHostsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "hosts",
		Short: "List the supported file hosts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "HOST\tMAX SIZE\tDEFAULT")
			for _, id := range domain.Hosts {
				limit := "unlimited"
				if ceiling, ok := id.Ceiling(); ok {
					limit = fmt.Sprintf("%d MiB", ceiling/domain.MiB)
				}
				def := ""
				if string(id) == cfg.Settings.FileProvider {
					def = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", id, limit, def)
			}
			return w.Flush()
		},
	}
}
