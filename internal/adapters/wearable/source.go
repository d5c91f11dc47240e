// Package wearable decodes the watch's base64 sync envelopes and converts its
// numeric records into the universal model.
package wearable

import (
	"github.com/jpp0ca/OfflineMusicBridge/internal/domain"
)

// Source implements ports.DeviceSource for the watch.
type Source struct{}

// NewSource creates a watch source.
func NewSource() *Source {
	return &Source{}
}

func (s *Source) Device() domain.Device {
	return domain.Watch
}

func (s *Source) DecodePlaylist(data []byte) (domain.SongList, error) {
	p, err := DecodePlaylistDetails(data)
	if err != nil {
		return domain.SongList{}, err
	}
	return ConvertPlaylist(p), nil
}

func (s *Source) DecodePlaylists(data []byte) ([]domain.SongList, error) {
	playlists, err := DecodePlaylists(data)
	if err != nil {
		return nil, err
	}
	return ConvertPlaylists(playlists), nil
}

func (s *Source) DecodeSong(data []byte) (domain.Song, error) {
	info, err := DecodeMediaInfo(data)
	if err != nil {
		return domain.Song{}, err
	}
	return ConvertMediaInfo(info), nil
}
