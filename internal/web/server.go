// Package web serves a small status endpoint for health checks and a
// peek at the live queues.
package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"bruhbot/internal/playback"
)

type queueEntry struct {
	Title    string `json:"title"`
	Duration string `json:"duration,omitempty"`
	Streamed bool   `json:"streamed"`
}

type guildStatus struct {
	ChannelID string       `json:"channel_id"`
	Queue     []queueEntry `json:"queue"`
}

// RunServer serves /healthz and /status until ctx is cancelled; run in
// a goroutine.
func RunServer(ctx context.Context, addr string, engine *playback.Engine) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]guildStatus)
		for _, guildID := range engine.ConnectedGuilds() {
			channelID, ok := engine.ConnectedChannel(guildID)
			if !ok {
				continue
			}
			gs := guildStatus{ChannelID: channelID}
			for _, clip := range engine.ListQueue(guildID) {
				entry := queueEntry{Title: clip.Title, Streamed: clip.IsStreamed()}
				if clip.Duration > 0 {
					entry.Duration = clip.Duration.String()
				}
				gs.Queue = append(gs.Queue, entry)
			}
			status[guildID] = gs
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			log.Printf("[WARN] Failed to encode status: %v", err)
		}
	})

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down status server...")
		srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	log.Printf("[INFO] Status server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("[ERR] Status server exited: %v", err)
	}
}
