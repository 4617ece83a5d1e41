package main

import (
	"context"
	"log/slog"
	"os"

	"pizzeria/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	configs := cmd.GetConfigs()

	// Menus print to stdout; structured logs go to stderr so they do not
	// interleave with the prompts.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := cmd.NewCompositionRoot(configs, os.Stdout, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()
	defer root.Scheduler().Stop()

	c := root.CreateConsole(os.Stdin, os.Stdout)
	if err := c.Run(context.Background()); err != nil {
		log.Fatalf("Console terminated: %v", err)
	}
}
