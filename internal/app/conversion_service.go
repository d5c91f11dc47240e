package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/jpp0ca/OfflineMusicBridge/internal/adapters"
	"github.com/jpp0ca/OfflineMusicBridge/internal/domain"
	"github.com/jpp0ca/OfflineMusicBridge/internal/ports"
)

// Service implements ports.ConversionService on top of the registered device
// sources. Conversions share no state; the worker count only bounds how
// many batch payloads are decoded at once.
type Service struct {
	registry *adapters.SourceRegistry
	workers  int
}

// NewService creates a new conversion service with the given source registry
// and number of concurrent workers for batch conversion.
func NewService(registry *adapters.SourceRegistry, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		registry: registry,
		workers:  workers,
	}
}

func (s *Service) ConvertPlaylist(_ context.Context, device domain.Device, data []byte) (domain.SongList, error) {
	source, err := s.registry.Get(device)
	if err != nil {
		return domain.SongList{}, err
	}

	list, err := source.DecodePlaylist(data)
	if err != nil {
		return domain.SongList{}, fmt.Errorf("failed to decode %s playlist: %w", device, err)
	}
	return list, nil
}

func (s *Service) ConvertPlaylists(_ context.Context, device domain.Device, data []byte) ([]domain.SongList, error) {
	source, err := s.registry.Get(device)
	if err != nil {
		return nil, err
	}

	lists, err := source.DecodePlaylists(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s playlists: %w", device, err)
	}
	return lists, nil
}

func (s *Service) ConvertSong(_ context.Context, device domain.Device, data []byte) (domain.Song, error) {
	source, err := s.registry.Get(device)
	if err != nil {
		return domain.Song{}, err
	}

	song, err := source.DecodeSong(data)
	if err != nil {
		return domain.Song{}, fmt.Errorf("failed to decode %s song: %w", device, err)
	}
	return song, nil
}

// ConvertBatch decodes independent playlist payloads with a worker pool.
// A failing payload only marks its own result; results keep input order.
func (s *Service) ConvertBatch(ctx context.Context, device domain.Device, payloads [][]byte) []domain.ConversionResult {
	source, err := s.registry.Get(device)
	if err != nil {
		results := make([]domain.ConversionResult, len(payloads))
		for i := range results {
			results[i] = domain.ConversionResult{Index: i, Status: domain.ConversionStatusError, Error: err.Error()}
		}
		return results
	}

	log.Printf("[convert] converting %d %s payloads with %d workers", len(payloads), device, s.workers)
	results := s.convertParallel(ctx, source, payloads)

	failed := 0
	for i := range results {
		if results[i].Status != domain.ConversionStatusConverted {
			failed++
		}
	}
	log.Printf("[convert] batch complete: %d converted, %d failed", len(results)-failed, failed)

	return results
}

// convertParallel fans payloads out to s.workers goroutines and collects
// results by index.
func (s *Service) convertParallel(ctx context.Context, source ports.DeviceSource, payloads [][]byte) []domain.ConversionResult {
	type job struct {
		index int
		data  []byte
	}

	jobCh := make(chan job, len(payloads))
	resultCh := make(chan domain.ConversionResult, len(payloads))

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range jobCh {
				select {
				case <-ctx.Done():
					resultCh <- domain.ConversionResult{
						Index:  j.index,
						Status: domain.ConversionStatusError,
						Error:  "context cancelled",
					}
					continue
				default:
				}

				list, err := source.DecodePlaylist(j.data)
				if err != nil {
					log.Printf("[worker-%d] payload %d rejected: %v", workerID, j.index, err)
					resultCh <- domain.ConversionResult{
						Index:  j.index,
						Status: domain.ConversionStatusError,
						Error:  err.Error(),
					}
					continue
				}

				resultCh <- domain.ConversionResult{
					Index:    j.index,
					SongList: list,
					Status:   domain.ConversionStatusConverted,
				}
			}
		}(i)
	}

	for i, data := range payloads {
		jobCh <- job{index: i, data: data}
	}
	close(jobCh)

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]domain.ConversionResult, len(payloads))
	for r := range resultCh {
		results[r.Index] = r
	}
	return results
}
