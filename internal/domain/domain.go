package domain

import (
	"cmp"
	"slices"
)

// AllSongsSortID is the sort id reserved for the aggregate list holding every
// song on the device.
const AllSongsSortID = "00000000"

// Device identifies which paired device supplied a model.
type Device int

const (
	Earphone Device = 0
	Watch    Device = 1
)

func (d Device) String() string {
	switch d {
	case Earphone:
		return "earphone"
	case Watch:
		return "watch"
	default:
		return "unknown"
	}
}

// ShowOfflineMusicMode reports whether the host shows the offline mode switch
// for this device.
func (d Device) ShowOfflineMusicMode() bool {
	return d == Earphone
}

// ShowOfflineMusicControl reports whether the host shows playback controls
// for this device's offline music.
func (d Device) ShowOfflineMusicControl() bool {
	return d == Earphone
}

// SongList is the device-agnostic playlist model.
type SongList struct {
	SortID       string    `json:"sortId"`
	PlayListID   string    `json:"playListId"`
	MusicNum     int       `json:"musicNum"`
	PlayListName string    `json:"playListName"`
	MusicList    []SongKey `json:"musicList"`
	DataType     Device    `json:"dataType"`
}

// IsAllSongs reports whether l is the aggregate all-songs list.
func (l SongList) IsAllSongs() bool {
	return l.SortID == AllSongsSortID
}

// IsCreated reports whether l is a user-created list.
func (l SongList) IsCreated() bool {
	return l.SortID != AllSongsSortID
}

// SongKey references a song inside a list. Identity is the key alone.
type SongKey struct {
	Index string `json:"index"`
	Key   string `json:"key"`
}

func (k SongKey) Equal(other SongKey) bool { return k.Key == other.Key }

// Identity is the value to hash or index a SongKey by.
func (k SongKey) Identity() string { return k.Key }

// UniqueKeys drops later entries whose key was already seen, keeping order.
func UniqueKeys(keys []SongKey) []SongKey {
	seen := make(map[string]struct{}, len(keys))
	out := make([]SongKey, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k.Identity()]; ok {
			continue
		}
		seen[k.Identity()] = struct{}{}
		out = append(out, k)
	}
	return out
}

// MusicInfo carries the descriptive metadata of a song.
type MusicInfo struct {
	Duration uint32 `json:"duration"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Title    string `json:"title"`
}

// Song is the device-agnostic song model. IsAdded and IsPlaying are owned by
// the host UI and never derived from a payload.
type Song struct {
	Index     string    `json:"index"`
	Key       string    `json:"key"`
	MusicPath string    `json:"musicPath"`
	MusicInfo MusicInfo `json:"musicInfo"`
	DataType  Device    `json:"dataType"`

	IsAdded   bool `json:"-"`
	IsPlaying bool `json:"-"`
}

func (s Song) Equal(other Song) bool { return s.Key == other.Key }

func (s Song) Identity() string { return s.Key }

// Less orders songs lexicographically by index.
func (s Song) Less(other Song) bool { return s.Index < other.Index }

// SortSongs orders songs by index in place, keeping the input order of
// songs that share an index.
func SortSongs(songs []Song) {
	slices.SortStableFunc(songs, func(a, b Song) int {
		return cmp.Compare(a.Index, b.Index)
	})
}

// SongListSort is one entry of a device's playlist ordering.
type SongListSort struct {
	SortID     string `json:"sortId"`
	PlayListID string `json:"playListId"`
}

// ConversionStatus describes the outcome of converting a single payload.
type ConversionStatus string

const (
	ConversionStatusConverted ConversionStatus = "converted"
	ConversionStatusError     ConversionStatus = "error"
)

// ConversionResult holds the outcome of one payload in a batch conversion.
type ConversionResult struct {
	Index    int              `json:"index"`
	SongList SongList         `json:"songList"`
	Status   ConversionStatus `json:"status"`
	Error    string           `json:"error,omitempty"`
}
