package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"wealth-advisor-be/internal/config"
	"wealth-advisor-be/pkg/events"
	"wealth-advisor-be/pkg/nats"

	"github.com/fatih/color"
)

// Tails the funnel event stream from NATS. Handy for checking that lead
// qualifications actually reach the bus without standing up a CRM consumer.
func main() {
	cfg := config.Load()
	if cfg.App.NatsURL == "" {
		log.Fatal("Error: NATS_URL is not set")
	}

	sub, err := nats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Fatalf("Error: Failed to connect to NATS: %v", err)
	}
	defer sub.Close()

	err = sub.Subscribe("funnel.>", "funnel-tailer", func(_ context.Context, event events.Event) error {
		switch event.EventType() {
		case events.TypeLeadQualified:
			color.Green("LEAD QUALIFIED  %v", event.Payload())
		case events.TypeTurnDegraded:
			color.Red("TURN DEGRADED   %v", event.Payload())
		default:
			color.Yellow("%s  %v", event.EventType(), event.Payload())
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error: Failed to subscribe: %v", err)
	}

	color.Cyan("👂 Tailing funnel events, Ctrl+C to stop")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}
