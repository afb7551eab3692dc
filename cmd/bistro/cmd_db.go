package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/bistro/config"
	"github.com/shashiranjanraj/bistro/database/seeders"
	"github.com/shashiranjanraj/bistro/pkg/database"
)

// bistro seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		db, err := database.Connect(ctx)
		if err != nil {
			return err
		}
		defer db.Disconnect()

		fmt.Println("Running seeders…")
		return seeders.RunAll(ctx, db)
	},
}
