package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aditya-2529/portfolio/config"
	"github.com/aditya-2529/portfolio/internal/bootstrap"
	"github.com/aditya-2529/portfolio/internal/portfolio/service"
	"github.com/aditya-2529/portfolio/internal/seed"
)

var (
	seedStoreURL string
	seedFile     string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo projects and remarks",
	Long: `Seed writes the bundled demo data (or --file) through the API using the
admin token. With --store it writes to the store directly instead.
Existing project titles and identical remarks are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := ctxOf(cmd)

		data, err := loadSeedData()
		if err != nil {
			return err
		}

		var target seed.Target
		if seedStoreURL != "" {
			cfg, err := config.Parse()
			if err != nil {
				return err
			}
			store, err := bootstrap.OpenStore(ctx, bootstrap.StoreOptions{
				URL:       seedStoreURL,
				ConnectTO: cfg.Store.ConnectTimeout,
				PingTO:    cfg.Store.PingTimeout,
			})
			if err != nil {
				return err
			}
			defer store.Close()

			target = seed.Services{
				Projects: service.NewProjectService(store, slog.Default()),
				Remarks:  service.NewRemarkService(store, slog.Default()),
			}
		} else {
			c, err := newClient()
			if err != nil {
				return err
			}
			target = c
		}

		res, err := seed.Apply(ctx, target, data, slog.Default())
		if err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "projects: %d created, %d skipped\nremarks: %d created, %d skipped\n",
			res.ProjectsCreated, res.ProjectsSkipped, res.RemarksCreated, res.RemarksSkipped)
		return nil
	},
}

func loadSeedData() (*seed.Data, error) {
	if seedFile == "" {
		return seed.Demo()
	}
	f, err := os.Open(seedFile)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return seed.Load(f)
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedStoreURL, "store", "", "Write straight to this store URL instead of the API")
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML seed file (defaults to the bundled demo data)")
}
