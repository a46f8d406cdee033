package main

import (
	"context"
	"flag"
	"os"

	"orderdesk/cmd"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/pkg/logging"
	"orderdesk/internal/seed"

	"github.com/labstack/gommon/log"
)

func main() {
	path := flag.String("file", "seed.yaml", "YAML fixture with restaurants and clients")
	flag.Parse()

	config := cmd.LoadConfig()
	if err := config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(logging.Options{Service: "orderdesk-seed", Level: config.LogLevel})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	file, err := os.Open(*path)
	if err != nil {
		log.Fatalf("failed to open seed fixture: %v", err)
	}
	defer file.Close()

	fixture, err := seed.Load(file)
	if err != nil {
		log.Fatal(err)
	}

	gormDB, err := postgres.Open(config.DSN())
	if err != nil {
		log.Fatal(err)
	}

	// Seeding does not publish events.
	app := cmd.NewCompositionRoot(config, gormDB, nil, nil, logger)
	createRestaurant := app.CreateCreateRestaurantCommandHandler()
	createClient := app.CreateCreateClientCommandHandler()

	ctx := context.Background()
	result, err := seed.NewSeeder(&createRestaurant, &createClient).Apply(ctx, fixture)
	logger.InfoContext(ctx, "Seed applied", "restaurants", result.Restaurants, "clients", result.Clients)
	if err != nil {
		log.Fatal(err)
	}
}
