package wearable

import (
	"github.com/jpp0ca/OfflineMusicBridge/internal/envelope"
)

// Playlist mirrors a playlist as the watch reports it.
type Playlist struct {
	SortID       uint16     `json:"sortId"`
	PlayListID   uint32     `json:"playListId"`
	MusicNum     uint32     `json:"musicNum"`
	PlayListName string     `json:"playListName"`
	MusicItems   []TrackKey `json:"musicItems,omitempty"`
}

// TrackKey is the watch's raw track identifier.
type TrackKey struct {
	Key uint32 `json:"key"`
}

// MediaInfo mirrors the watch's description of one song. Key and IsAdded
// are filled in by the host and never travel on the wire.
type MediaInfo struct {
	Duration uint32 `json:"duration"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Title    string `json:"title"`

	Key     uint32 `json:"-"`
	IsAdded bool   `json:"-"`
}

// Sort is one entry of the watch's playlist ordering.
type Sort struct {
	SortID     uint16 `json:"sortId"`
	PlayListID uint32 `json:"playListId"`
}

// -- Wire schema (internal) --------------------------------------------------

// Pointer fields let the validator tell a missing field from a zero value.

type playlistWire struct {
	SortID       *uint16        `json:"sortId" validate:"required"`
	PlayListID   *uint32        `json:"playListId" validate:"required"`
	MusicNum     *uint32        `json:"musicNum" validate:"required"`
	PlayListName *string        `json:"playListName" validate:"required"`
	MusicItems   []trackKeyWire `json:"musicItems" validate:"omitempty,dive"`
}

type trackKeyWire struct {
	Key *uint32 `json:"key" validate:"required"`
}

type playlistDetailsWire struct {
	PlayList *playlistWire `json:"playList" validate:"required"`
}

type playlistsWire struct {
	PlayLists []playlistWire `json:"playLists" validate:"required,dive"`
}

type mediaInfoWire struct {
	Duration *uint32 `json:"duration" validate:"required"`
	Artist   *string `json:"artist" validate:"required"`
	Album    *string `json:"album" validate:"required"`
	Title    *string `json:"title" validate:"required"`
}

type musicContainerWire struct {
	MusicInfo *mediaInfoWire `json:"musicInfo" validate:"required"`
}

func (w playlistWire) record() Playlist {
	p := Playlist{
		SortID:       *w.SortID,
		PlayListID:   *w.PlayListID,
		MusicNum:     *w.MusicNum,
		PlayListName: *w.PlayListName,
	}
	if w.MusicItems != nil {
		p.MusicItems = make([]TrackKey, 0, len(w.MusicItems))
		for _, item := range w.MusicItems {
			p.MusicItems = append(p.MusicItems, TrackKey{Key: *item.Key})
		}
	}
	return p
}

func (w mediaInfoWire) record() MediaInfo {
	return MediaInfo{
		Duration: *w.Duration,
		Artist:   *w.Artist,
		Album:    *w.Album,
		Title:    *w.Title,
	}
}

// -- Decoding ----------------------------------------------------------------

// DecodePlaylistDetails decodes a base64 envelope carrying {"playList": ...}.
func DecodePlaylistDetails(data []byte) (Playlist, error) {
	w, err := envelope.Decode[playlistDetailsWire](data)
	if err != nil {
		return Playlist{}, err
	}
	return w.PlayList.record(), nil
}

// DecodePlaylists decodes a base64 envelope carrying {"playLists": [...]}.
func DecodePlaylists(data []byte) ([]Playlist, error) {
	w, err := envelope.Decode[playlistsWire](data)
	if err != nil {
		return nil, err
	}

	playlists := make([]Playlist, 0, len(w.PlayLists))
	for _, p := range w.PlayLists {
		playlists = append(playlists, p.record())
	}
	return playlists, nil
}

// DecodeMediaInfo decodes a base64 envelope carrying {"musicInfo": ...}.
func DecodeMediaInfo(data []byte) (MediaInfo, error) {
	w, err := envelope.Decode[musicContainerWire](data)
	if err != nil {
		return MediaInfo{}, err
	}
	return w.MusicInfo.record(), nil
}

// EncodePlaylistDetails builds the envelope a watch would send for p.
func EncodePlaylistDetails(p Playlist) ([]byte, error) {
	return envelope.Encode(struct {
		PlayList Playlist `json:"playList"`
	}{PlayList: p})
}

// EncodePlaylists builds the envelope a watch would send for a collection.
func EncodePlaylists(playlists []Playlist) ([]byte, error) {
	if playlists == nil {
		playlists = []Playlist{}
	}
	return envelope.Encode(struct {
		PlayLists []Playlist `json:"playLists"`
	}{PlayLists: playlists})
}

// EncodeMediaInfo builds the envelope a watch would send for info.
func EncodeMediaInfo(info MediaInfo) ([]byte, error) {
	return envelope.Encode(struct {
		MusicInfo MediaInfo `json:"musicInfo"`
	}{MusicInfo: info})
}
