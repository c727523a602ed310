package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stayloop/hotel-backoffice/internal/config"
	"github.com/stayloop/hotel-backoffice/internal/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo data for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		db, err := database.Open(cfg)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		if err := database.Seed(db); err != nil {
			return err
		}
		fmt.Println("seed complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
