package main

import (
	"github.com/spf13/cobra"

	"github.com/aditya-2529/portfolio/internal/admin"
	"github.com/aditya-2529/portfolio/internal/portfolio/service"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Load every admin tab and print a summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDashboard(cmd)
		if err != nil {
			return err
		}
		loadErr := d.Load(ctxOf(cmd))

		out := cmd.OutOrStdout()
		p, r, m := d.Projects(), d.Remarks(), d.Contacts()
		printTab(cmd, "projects", p.State, len(p.Items), p.Err)
		printTab(cmd, "remarks", r.State, len(r.Items), r.Err)
		if r.State == admin.StateLoaded {
			approved := len(service.FilterApproved(r.Items))
			printf(out, "  %d approved, %d pending\n", approved, len(r.Items)-approved)
		}
		printTab(cmd, "messages", m.State, len(m.Items), m.Err)
		return loadErr
	},
}

func printTab(cmd *cobra.Command, name string, state admin.State, n int, err error) {
	if err != nil {
		printf(cmd.OutOrStdout(), "%-9s %s: %v\n", name, state, err)
		return
	}
	printf(cmd.OutOrStdout(), "%-9s %d\n", name, n)
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
