package wearable

import (
	"github.com/jpp0ca/OfflineMusicBridge/internal/domain"
	"github.com/jpp0ca/OfflineMusicBridge/internal/hexcodec"
	"github.com/jpp0ca/OfflineMusicBridge/internal/textnorm"
)

const playlistSuffix = ".lst"

// ConvertPlaylist maps a watch playlist into the universal model.
//
// SortID is 16 bits on the watch but the host compares it against 8-char
// ids, so it is rendered at the same 4-byte width as the 32-bit fields.
func ConvertPlaylist(p Playlist) domain.SongList {
	musicList := make([]domain.SongKey, 0, len(p.MusicItems))
	for _, item := range p.MusicItems {
		musicList = append(musicList, domain.SongKey{Key: hexcodec.Uint32(item.Key)})
	}

	return domain.SongList{
		SortID:       hexcodec.Uint32(uint32(p.SortID)),
		PlayListID:   hexcodec.Uint32(p.PlayListID),
		MusicNum:     int(p.MusicNum),
		PlayListName: textnorm.StripPathAndSuffix(p.PlayListName, playlistSuffix),
		MusicList:    musicList,
		DataType:     domain.Watch,
	}
}

// ConvertPlaylists maps each playlist in order.
func ConvertPlaylists(playlists []Playlist) []domain.SongList {
	out := make([]domain.SongList, 0, len(playlists))
	for _, p := range playlists {
		out = append(out, ConvertPlaylist(p))
	}
	return out
}

// ConvertMediaInfo maps a watch media record into a song. Index and
// MusicPath stay empty; the watch does not report them.
func ConvertMediaInfo(info MediaInfo) domain.Song {
	return domain.Song{
		Key: hexcodec.Uint32(info.Key),
		MusicInfo: domain.MusicInfo{
			Duration: info.Duration,
			Artist:   info.Artist,
			Album:    info.Album,
			Title:    textnorm.BasenameWithoutExtension(info.Title),
		},
		DataType: domain.Watch,
	}
}

// ConvertSort maps a watch ordering entry, using the same 4-byte width for
// both ids as ConvertPlaylist.
func ConvertSort(s Sort) domain.SongListSort {
	return domain.SongListSort{
		SortID:     hexcodec.Uint32(uint32(s.SortID)),
		PlayListID: hexcodec.Uint32(s.PlayListID),
	}
}
