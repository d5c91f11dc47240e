package ports

import (
	"context"

	"github.com/jpp0ca/OfflineMusicBridge/internal/domain"
)

// DeviceSource defines the contract every paired-device adapter must
// implement. Implementations are stateless: each call owns its input and
// returns a freshly built model.
type DeviceSource interface {
	// DecodePlaylist decodes a single-playlist payload into the universal model.
	DecodePlaylist(data []byte) (domain.SongList, error)

	// DecodePlaylists decodes a playlist collection payload.
	DecodePlaylists(data []byte) ([]domain.SongList, error)

	// DecodeSong decodes a single media-info payload.
	DecodeSong(data []byte) (domain.Song, error)

	// Device returns the device tag this source produces models for.
	Device() domain.Device
}

// ConversionService defines the driving port for the sync use cases.
type ConversionService interface {
	// ConvertPlaylist decodes and converts one playlist payload from the given device.
	ConvertPlaylist(ctx context.Context, device domain.Device, data []byte) (domain.SongList, error)

	// ConvertPlaylists decodes and converts a playlist collection payload.
	ConvertPlaylists(ctx context.Context, device domain.Device, data []byte) ([]domain.SongList, error)

	// ConvertSong decodes and converts one media-info payload.
	ConvertSong(ctx context.Context, device domain.Device, data []byte) (domain.Song, error)

	// ConvertBatch converts independent playlist payloads concurrently,
	// returning one result per payload in input order.
	ConvertBatch(ctx context.Context, device domain.Device, payloads [][]byte) []domain.ConversionResult
}
