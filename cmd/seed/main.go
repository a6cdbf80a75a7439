package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/orderpulse/orderpulse/internal/config"
	"github.com/orderpulse/orderpulse/internal/logger"
	"github.com/orderpulse/orderpulse/internal/postgres"
	pgrepo "github.com/orderpulse/orderpulse/internal/repository/postgres"
	"github.com/orderpulse/orderpulse/internal/seed"
)

func main() {
	var params seed.Params
	flag.IntVar(&params.Users, "users", 1000, "number of users to create")
	flag.IntVar(&params.OrdersPerUser, "orders-per-user", 50, "orders created per user")
	flag.IntVar(&params.ItemsPerOrder, "items-per-order", 10, "items of each kind created per order")
	flag.IntVar(&params.DaysBack, "days-back", 365, "spread instants over the trailing N days")
	flag.Int64Var(&params.Seed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logger.GetLogger().Fatalw("failed to load config", "error", err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		logger.GetLogger().Fatalw("failed to create logger", "error", err)
	}

	client, err := postgres.NewClient(cfg, log)
	if err != nil {
		log.Fatalw("failed to connect to postgres", "error", err)
	}
	defer client.Close()

	seeder := seed.NewSeeder(
		log,
		pgrepo.NewUserRepository(client, log),
		pgrepo.NewOrderRepository(client, log),
	)

	if _, err := seeder.Run(context.Background(), params); err != nil {
		log.Errorw("seeding failed", "error", err)
		os.Exit(1)
	}
}
