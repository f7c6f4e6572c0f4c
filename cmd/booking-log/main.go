// Command booking-log consumes the booking events published by the web
// client and appends one line per event to a log file.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/iliyamo/cinetrack-web/internal/config"
	"github.com/iliyamo/cinetrack-web/internal/queue"
)

func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file loaded before reading the environment")
	logPath := pflag.String("log-path", "logs/booking.log", "file the events are appended to")
	pflag.Parse()

	config.LoadEnvFile(*envFile)
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &queue.Consumer{URL: cfg.RabbitURL, LogPath: *logPath}
	log.Printf("booking-log: consuming %s and %s into %s", queue.ConfirmedQueue, queue.CancelledQueue, *logPath)
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
