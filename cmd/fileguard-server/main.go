package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nyasuto/fileguard/internal/api"
	"github.com/nyasuto/fileguard/internal/config"
	"github.com/nyasuto/fileguard/internal/validator/file"
)

func main() {
	var (
		port       = flag.String("port", "", "Port to run the server on (overrides config)")
		dirs       = flag.String("dirs", "", "Comma separated directories to check against (overrides config)")
		configPath = flag.String("config", "", "Path to a YAML config file")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		fmt.Println("fileguard-server - REST API rejecting file names that already exist")
		fmt.Println("\nUsage:")
		fmt.Println("  fileguard-server [options]")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *dirs != "" {
		cfg.Directories = file.NewDirectoryList(file.DelimitedDirs(*dirs)).Slice()
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	log.Printf("Checking against %d directories", len(cfg.Directories))
	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
