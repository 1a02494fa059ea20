package main

import (
	"github.com/spf13/cobra"
)

var messagesCmd = &cobra.Command{
	Use:     "messages",
	Aliases: []string{"contacts"},
	Short:   "Read and delete contact messages",
}

var messagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contact messages, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		items, err := c.ListContacts(ctxOf(cmd))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, m := range items {
			printf(out, "%s  %s  %s %s <%s>\n    %s\n    %s\n",
				m.ID, m.CreatedAt.Local().Format("2006-01-02 15:04"), m.FirstName, m.LastName, m.Email, m.Subject, m.Message)
		}
		return nil
	},
}

var messagesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a contact message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDashboard(cmd)
		if err != nil {
			return err
		}
		return d.DeleteContact(ctxOf(cmd), args[0])
	},
}

func init() {
	rootCmd.AddCommand(messagesCmd)
	messagesCmd.AddCommand(messagesListCmd, messagesDeleteCmd)
}
