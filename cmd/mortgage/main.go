package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/cloud-ru/mortgage-calculator-go/internal/config"
	"github.com/cloud-ru/mortgage-calculator-go/internal/logging"
)

const usage = `usage:
  mortgage [serve]
  mortgage calc -principal 300000 -rate 6.5 -years 30 [-view first12|last12|full|yearly] [-out DIR]`

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	command := "serve"
	args := os.Args[1:]
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	switch command {
	case "serve":
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Info("Received shutdown signal, shutting down gracefully...")
			cancel()
		}()

		if err := runServe(ctx, cfg); err != nil {
			log.WithError(err).Fatal("Application error")
		}
	case "calc":
		if err := runCalc(cfg, args, os.Stdout); err != nil {
			log.WithError(err).Fatal("Calculation error")
		}
	case "help", "-h", "--help":
		fmt.Println(usage)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}
