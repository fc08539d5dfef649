package main

import (
	"context"
	"fmt"

	"campushelp/internal/db"
	"campushelp/internal/seed"
	"campushelp/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with sample data",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "Number of documents to create per collection",
			Value:   10,
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		client, database, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() {
			_ = client.Disconnect(ctx)
		}()

		logrus.Info("Connected to database")

		count := c.Int("count")

		logrus.Info("Seeding help requests...")
		if err := seed.SeedHelpRequests(ctx, store.NewHelpRequestRepository(database), count); err != nil {
			return fmt.Errorf("failed to seed help requests: %w", err)
		}

		logrus.Info("Seeding lost and found items...")
		if err := seed.SeedLostFound(ctx, store.NewLostFoundRepository(database), count); err != nil {
			return fmt.Errorf("failed to seed lost and found items: %w", err)
		}

		logrus.Info("Seed data created successfully")

		return nil
	},
}
