package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/you/credsvc/internal/app"
	"github.com/you/credsvc/internal/config"
)

func main() {
	configPath := flag.String("config", "config/config.yml", "path to config file")
	flag.Parse()

	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	c, err := app.NewContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer c.Close()

	log.Printf("root admin ready (id=%d)", c.RootAdminID)
}
