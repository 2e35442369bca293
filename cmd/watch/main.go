package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"kelasboard/internal/backend"
	"kelasboard/internal/config"
	"kelasboard/internal/livesync"
	"kelasboard/internal/token"
)

// Watch tails the live class state on stdout: status transitions and node
// health changes, no browser needed.
func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	tokens := token.NewStore(cfg.TokenFile)
	client := backend.New(cfg.APIBaseURL, tokens)

	sync := livesync.New(livesync.Config{
		Monitor:      client.Monitor,
		Dial:         livesync.WebsocketDialer(cfg.EventStreamURL),
		PollInterval: cfg.SchedulePoll,
	})
	go sync.Run(ctx)

	states, unsubscribe := sync.Subscribe()
	defer unsubscribe()

	log.Println("watch started, waiting for state changes...")
	var lastStatus string
	var lastHealth livesync.Health

	// one direct read paints the current status before the first stream event
	if st, err := client.Monitor.StatusKelas(ctx); err == nil && st.StatusKelas != "" {
		log.Printf("status: %s (matkul=%q dosen=%q hadir=%d)",
			st.StatusKelas, st.NamaMatkul, st.NamaDosen, st.CountLive)
		lastStatus = st.StatusKelas
	}
	for {
		select {
		case <-ctx.Done():
			log.Println("watch stopped")
			return
		case st := <-states:
			status := st.Status.StatusKelas
			if status == "" {
				status = "Belum Mulai"
			}
			if status != lastStatus {
				log.Printf("status: %s (matkul=%q dosen=%q hadir=%d)",
					status, st.Status.NamaMatkul, st.Status.NamaDosen, st.Status.CountLive)
				lastStatus = status
			}
			if st.Health != lastHealth {
				log.Printf("health: esp32=%s raspi=%s", st.Health.Esp32, st.Health.Raspi)
				lastHealth = st.Health
			}
		}
	}
}
