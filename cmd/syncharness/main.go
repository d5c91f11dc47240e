package main

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/jpp0ca/OfflineMusicBridge/internal/adapters"
	"github.com/jpp0ca/OfflineMusicBridge/internal/adapters/earphone"
	"github.com/jpp0ca/OfflineMusicBridge/internal/adapters/wearable"
	"github.com/jpp0ca/OfflineMusicBridge/internal/app"
	"github.com/jpp0ca/OfflineMusicBridge/internal/config"
	"github.com/jpp0ca/OfflineMusicBridge/internal/domain"
	"github.com/jpp0ca/OfflineMusicBridge/internal/harness"
)

// referencePlaylist is the all-songs list a freshly paired watch reports.
var referencePlaylist = wearable.Playlist{
	SortID:       0,
	PlayListID:   65535,
	MusicNum:     1,
	PlayListName: "All songs",
	MusicItems:   []wearable.TrackKey{{Key: 1734807236}},
}

func main() {
	cfg := config.Load()

	// Register device sources
	registry := adapters.NewSourceRegistry()
	registry.Register(wearable.NewSource())
	registry.Register(earphone.NewSource())

	svc := app.NewService(registry, cfg.Workers)

	payload, err := wearable.EncodePlaylistDetails(referencePlaylist)
	if err != nil {
		log.Fatalf("Failed to build reference envelope: %v", err)
	}

	log.Printf("Registered sources: %v", registry.Available())
	log.Printf("Invocations: %d, workers: %d", cfg.Invocations, cfg.Workers)

	ctx := context.Background()
	report := harness.Run(ctx, cfg.Invocations, cfg.Workers, func(ctx context.Context, id uuid.UUID) error {
		list, err := svc.ConvertPlaylist(ctx, domain.Watch, payload)
		if err != nil {
			return err
		}
		if cfg.Debug() {
			log.Printf("[harness] call %s converted %+v", id, list)
		} else {
			log.Printf("[harness] call %s converted %q (%d songs)", id, list.PlayListName, len(list.MusicList))
		}
		return nil
	})

	log.Printf("All test calls completed: %d succeeded, %d failed, %d skipped", report.Succeeded, report.Failed, report.Skipped)
}
