// Package earphone decodes earphone sync payloads. The earphone already
// speaks the host's JSON mapping, so its documents arrive in a plain
// (non-base64) Content envelope with string identifiers; only names and
// musicNum need normalizing.
package earphone

import (
	"encoding/json"
	"strconv"

	"github.com/jpp0ca/OfflineMusicBridge/internal/domain"
	"github.com/jpp0ca/OfflineMusicBridge/internal/envelope"
	"github.com/jpp0ca/OfflineMusicBridge/internal/textnorm"
)

const (
	playlistSuffix  = ".lst"
	defaultMusicNum = "00"
)

// Source implements ports.DeviceSource for the earphone.
type Source struct{}

// NewSource creates an earphone source.
func NewSource() *Source {
	return &Source{}
}

func (s *Source) Device() domain.Device {
	return domain.Earphone
}

// -- Wire schema (internal) --------------------------------------------------

type songListWire struct {
	SortID       string          `json:"sortId"`
	PlayListID   string          `json:"playListId"`
	MusicNum     json.RawMessage `json:"musicNum"`
	PlayListName string          `json:"playListName"`
	MusicList    []songKeyWire   `json:"musicList"`
}

type songKeyWire struct {
	Index string `json:"index"`
	Key   string `json:"key"`
}

type songWire struct {
	Index     string         `json:"index"`
	Key       string         `json:"key"`
	MusicPath string         `json:"musicPath"`
	MusicInfo *musicInfoWire `json:"musicInfo" validate:"required"`
}

type musicInfoWire struct {
	Duration uint32 `json:"duration"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Title    string `json:"title"`
}

type playlistDetailsWire struct {
	PlayList *songListWire `json:"playList" validate:"required"`
}

type playlistsWire struct {
	PlayLists []songListWire `json:"playLists" validate:"required"`
}

// -- DeviceSource implementation ---------------------------------------------

func (s *Source) DecodePlaylist(data []byte) (domain.SongList, error) {
	w, err := envelope.DecodePlain[playlistDetailsWire](data)
	if err != nil {
		return domain.SongList{}, err
	}
	return toSongList(*w.PlayList), nil
}

func (s *Source) DecodePlaylists(data []byte) ([]domain.SongList, error) {
	w, err := envelope.DecodePlain[playlistsWire](data)
	if err != nil {
		return nil, err
	}

	lists := make([]domain.SongList, 0, len(w.PlayLists))
	for _, l := range w.PlayLists {
		lists = append(lists, toSongList(l))
	}
	return lists, nil
}

func (s *Source) DecodeSong(data []byte) (domain.Song, error) {
	w, err := envelope.DecodePlain[songWire](data)
	if err != nil {
		return domain.Song{}, err
	}

	return domain.Song{
		Index:     w.Index,
		Key:       w.Key,
		MusicPath: w.MusicPath,
		MusicInfo: domain.MusicInfo{
			Duration: w.MusicInfo.Duration,
			Artist:   w.MusicInfo.Artist,
			Album:    w.MusicInfo.Album,
			Title:    textnorm.BasenameWithoutExtension(w.MusicInfo.Title),
		},
		DataType: domain.Earphone,
	}, nil
}

// -- Helpers -----------------------------------------------------------------

func toSongList(w songListWire) domain.SongList {
	musicList := make([]domain.SongKey, 0, len(w.MusicList))
	for _, k := range w.MusicList {
		musicList = append(musicList, domain.SongKey{Index: k.Index, Key: k.Key})
	}

	return domain.SongList{
		SortID:       w.SortID,
		PlayListID:   w.PlayListID,
		MusicNum:     parseMusicNum(w.MusicNum),
		PlayListName: textnorm.StripPathAndSuffix(w.PlayListName, playlistSuffix),
		MusicList:    musicList,
		DataType:     domain.Earphone,
	}
}

// parseMusicNum reads the earphone's radix-16 track count. A missing value
// counts as "00"; anything that is not a hex string counts as 0.
func parseMusicNum(raw json.RawMessage) int {
	s := defaultMusicNum
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
	}

	n, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return 0
	}
	return int(n)
}
