package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/buildinfo"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/cli"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
