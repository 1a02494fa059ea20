package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	authsvc "github.com/aditya-2529/portfolio/internal/auth/service"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in as the admin and print a bearer token",
	Long: `Login exchanges the admin credentials for a token. Export it as
PORTFOLIO_TOKEN or pass it with --token to the admin commands.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		password := loginPassword
		if password == "" {
			if password, err = readLine(cmd, "Password: "); err != nil {
				return err
			}
		}
		s, err := c.Login(ctxOf(cmd), args[0], password)
		if err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "%s\n", s.Token)
		printf(cmd.ErrOrStderr(), "expires %s\n", s.ExpiresAt.Local().Format("2006-01-02 15:04"))
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the admin the current token belongs to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		email, err := c.SessionEmail(ctxOf(cmd))
		if err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "%s\n", email)
		return nil
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			var err error
			if password, err = readLine(cmd, "Password: "); err != nil {
				return err
			}
		}
		if password == "" {
			return fmt.Errorf("password is required")
		}
		hash, err := authsvc.HashPassword(password)
		if err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "%s\n", hash)
		return nil
	},
}

func readLine(cmd *cobra.Command, prompt string) (string, error) {
	printf(cmd.ErrOrStderr(), "%s", prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	rootCmd.AddCommand(loginCmd, whoamiCmd, hashPasswordCmd)
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Admin password (prompted when empty)")
}
