package main

import (
	"github.com/spf13/cobra"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
)

var approvedOnly bool

var remarksCmd = &cobra.Command{
	Use:   "remarks",
	Short: "Moderate client remarks",
}

var remarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List remarks, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		var items []domain.Remark
		if approvedOnly {
			items, err = c.ListApprovedRemarks(ctxOf(cmd))
		} else {
			items, err = c.ListRemarks(ctxOf(cmd))
		}
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, r := range items {
			status := "pending"
			if r.IsApproved {
				status = "approved"
			}
			who := r.ClientName
			if r.CompanyName != "" {
				who += ", " + r.CompanyName
			}
			printf(out, "%s  %d/5  %-8s  %s\n    %s\n", r.ID, r.Rating, status, who, r.Comment)
		}
		return nil
	},
}

func approvalCmd(use, short string, approved bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDashboard(cmd)
			if err != nil {
				return err
			}
			_, err = d.SetRemarkApproval(ctxOf(cmd), args[0], approved)
			return err
		},
	}
}

var remarksDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a remark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDashboard(cmd)
		if err != nil {
			return err
		}
		return d.DeleteRemark(ctxOf(cmd), args[0])
	},
}

func init() {
	rootCmd.AddCommand(remarksCmd)
	remarksCmd.AddCommand(
		remarksListCmd,
		approvalCmd("approve", "Show a remark on the public site", true),
		approvalCmd("hide", "Hide a remark from the public site", false),
		remarksDeleteCmd,
	)
	remarksListCmd.Flags().BoolVar(&approvedOnly, "approved", false, "Only show approved remarks")
}
