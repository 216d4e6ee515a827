package main

import (
	"flag"
	"log"

	"ArrowBoard/internal/config"
	"ArrowBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	log.Println("Starting arrow board")
	ui.RunApp(cfg)
}
