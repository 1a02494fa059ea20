package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aditya-2529/portfolio/config"
	"github.com/aditya-2529/portfolio/internal/admin"
	"github.com/aditya-2529/portfolio/internal/client"
)

var (
	verbose  bool
	apiURL   string
	apiToken string
)

var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Operate a portfolio API from the command line",
	Long: `portfolioctl talks to a running portfolio API: it logs in as the admin,
moderates remarks, manages projects and contact messages, and seeds demo data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (default $PORTFOLIO_API_URL)")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "Admin token (default $PORTFOLIO_TOKEN)")
}

// newClient resolves flags over environment and returns an API client.
func newClient() (*client.Client, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	base := cfg.APIURL
	if apiURL != "" {
		base = apiURL
	}
	token := cfg.Token
	if apiToken != "" {
		token = apiToken
	}
	return client.New(base,
		client.WithToken(token),
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	), nil
}

// newDashboard returns an admin dashboard over the API. Success notifications
// go to stdout; failures are returned to Execute, so they are only logged at debug.
func newDashboard(cmd *cobra.Command) (*admin.Dashboard, error) {
	c, err := newClient()
	if err != nil {
		return nil, err
	}
	return admin.New(c, func(n admin.Notification) {
		if n.Level == admin.LevelError {
			slog.Debug(n.Message)
			return
		}
		printf(cmd.OutOrStdout(), "%s\n", n.Message)
	}), nil
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
