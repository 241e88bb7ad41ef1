package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/kagankarabayir/EV-Price-Estimator/cmd"
)

func main() {
	// Optional .env for local development; real environments set vars directly.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
