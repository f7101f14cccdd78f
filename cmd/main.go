package main

import (
	"context"
	"log"

	"vocably.app/internal/api"
	"vocably.app/internal/cache"
	"vocably.app/internal/config"
	"vocably.app/internal/constants"
	"vocably.app/internal/event"
	"vocably.app/internal/infra"
	"vocably.app/internal/service"
	"vocably.app/internal/store"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Initialize infrastructure
	// Postgres
	pg, err := infra.NewPostgresClient(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Redis (optional: without it the counts fan-out stays
	// single-instance)
	var bridge *infra.CountsBridge
	if cfg.Redis.Addr != "" {
		rdb := infra.NewRedisClient(cfg.Redis)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		bridge = infra.NewCountsBridge(rdb)
	}

	// 3. WebSocket hub and event bus
	hub := infra.NewWsManager()
	go hub.Start()

	bus := event.NewBus(256)
	defer bus.Shutdown()

	// Fan count snapshots out to local clients and, when configured, to
	// peer instances over Redis.
	bus.Subscribe(constants.EventParticipantsUpdated, func(ctx context.Context, ev event.Event) error {
		rooms, ok := ev.Data.(map[string]int)
		if !ok {
			return nil
		}
		hub.BroadcastCounts(rooms)
		if bridge != nil {
			bridge.Publish(ctx, rooms)
		}
		return nil
	})

	if bridge != nil {
		if err := bridge.Start(context.Background(), hub); err != nil {
			log.Fatalf("Failed to start counts bridge: %v", err)
		}
	}

	// 4. Stores and services
	roomStore := store.NewRoomStore(pg.DB)
	interestStore := store.NewInterestStore(pg.DB)
	memberStore := store.NewMemberStore(pg.DB)
	quizStore := store.NewQuizStore(pg.DB)

	counts := cache.NewParticipants()
	notifier := event.NewCountsNotifier(bus)

	deps := api.Deps{
		Rooms:     service.NewRoomService(roomStore, counts, notifier, cfg.Rooms.AtomicOps, cfg.Rooms.SwallowWriteErrors),
		Interests: service.NewInterestService(interestStore),
		Community: service.NewCommunityService(memberStore, cfg.Rooms.AtomicOps),
		Quiz:      service.NewQuizService(quizStore),
		Hub:       hub,
	}

	// 5. Set up Fiber server
	app := api.NewServer(cfg, deps)

	// 6. Start server
	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
