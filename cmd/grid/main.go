package main

import (
	"flag"
	"log"
	"os"

	"cellgrid/internal/app"
	"cellgrid/internal/config"
	"cellgrid/internal/host"
	_ "cellgrid/internal/host/ebitenhost"
	_ "cellgrid/internal/host/htmlhost"
	_ "cellgrid/internal/host/memhost"
	_ "cellgrid/internal/host/termhost"
)

func main() {
	cfg := config.DefaultConfig()
	configPath := flag.String("config", "", "YAML config file; flags override its values")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		fileCfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		overrides := config.SetFlags(flag.CommandLine)
		delete(overrides, "config")
		cfg = fileCfg.Apply(overrides)
	}

	logger := log.New(os.Stderr, "grid: ", log.LstdFlags)
	a, err := app.Open(cfg, host.Env{Log: logger, Stdout: os.Stdout})
	if err != nil {
		logger.Fatal(err)
	}
	if err := a.Run(); err != nil {
		logger.Fatal(err)
	}
}
