package main

import (
	"log"

	"quizbowl_backend/internals/cli"
	"quizbowl_backend/internals/configs"
	"quizbowl_backend/internals/databases"
	"quizbowl_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	if err := databases.ConnectDB(); err != nil {
		log.Fatalf("[Main] %v", err)
	}

	// Seed the bundled course bank; already-seeded courses are skipped.
	if err := seeds.RunAllSeeds(databases.DB, configs.SeedFile); err != nil {
		log.Printf("[Main] seeding skipped: %v", err)
	}

	app := cli.NewApp(databases.DB)
	if err := app.Run(); err != nil {
		log.Fatalf("[Main] %v", err)
	}

	if sqlDB, err := databases.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
