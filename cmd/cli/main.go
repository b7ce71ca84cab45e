package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/devhub/internal/client/cli"
	"github.com/dmitrijs2005/devhub/internal/client/config"
	"github.com/dmitrijs2005/devhub/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
