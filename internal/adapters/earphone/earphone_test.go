package earphone

import (
	"encoding/json"
	"testing"

	"github.com/jpp0ca/OfflineMusicBridge/internal/domain"
	"github.com/jpp0ca/OfflineMusicBridge/internal/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePlaylist(t *testing.T) {
	data := []byte(`{"Content":{"playList":{
		"sortId":"00000002","playListId":"0000abcd","musicNum":"1f",
		"playListName":"/sdcard/lists/Running.lst",
		"musicList":[{"index":"0","key":"00000010"},{"index":"1","key":"00000011"}]}}}`)

	got, err := NewSource().DecodePlaylist(data)
	require.NoError(t, err)
	assert.Equal(t, domain.SongList{
		SortID:       "00000002",
		PlayListID:   "0000abcd",
		MusicNum:     31,
		PlayListName: "Running",
		MusicList: []domain.SongKey{
			{Index: "0", Key: "00000010"},
			{Index: "1", Key: "00000011"},
		},
		DataType: domain.Earphone,
	}, got)
	assert.True(t, got.IsCreated())
}

func TestDecodePlaylist_Defaults(t *testing.T) {
	got, err := NewSource().DecodePlaylist([]byte(`{"Content":{"playList":{"sortId":"00000000"}}}`))
	require.NoError(t, err)
	assert.True(t, got.IsAllSongs())
	assert.Equal(t, 0, got.MusicNum)
	assert.NotNil(t, got.MusicList)
	assert.Empty(t, got.MusicList)
}

func TestDecodePlaylist_MissingWrapper(t *testing.T) {
	_, err := NewSource().DecodePlaylist([]byte(`{"Content":{"playLists":[]}}`))
	require.ErrorIs(t, err, envelope.ErrMalformedJSON)
}

func TestDecodePlaylists(t *testing.T) {
	data := []byte(`{"Content":{"playLists":[
		{"sortId":"00000000","playListId":"00000001","musicNum":"0a","playListName":"All songs"},
		{"sortId":"00000001","playListId":"00000002","musicNum":"02","playListName":"a/Gym.lst"}]}}`)

	got, err := NewSource().DecodePlaylists(data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 10, got[0].MusicNum)
	assert.Equal(t, "All songs", got[0].PlayListName)
	assert.Equal(t, "Gym", got[1].PlayListName)
	assert.Equal(t, domain.Earphone, got[1].DataType)
}

func TestDecodeSong(t *testing.T) {
	data := []byte(`{"Content":{"index":"3","key":"0000beef","musicPath":"/music/a.mp3",
		"musicInfo":{"duration":180,"artist":"Artist","album":"Album","title":"/music/a.b.mp3"}}}`)

	got, err := NewSource().DecodeSong(data)
	require.NoError(t, err)
	assert.Equal(t, "3", got.Index)
	assert.Equal(t, "0000beef", got.Key)
	assert.Equal(t, "/music/a.mp3", got.MusicPath)
	assert.Equal(t, domain.MusicInfo{Duration: 180, Artist: "Artist", Album: "Album", Title: "a"}, got.MusicInfo)
	assert.Equal(t, domain.Earphone, got.DataType)
}

func TestDecodeSong_RequiresMusicInfo(t *testing.T) {
	for _, data := range []string{
		`{"Content":null}`,
		`{"Content":{}}`,
		`{"Content":{"key":"0000beef","MusicInfo":{"title":"a.mp3"}}}`,
	} {
		got, err := NewSource().DecodeSong([]byte(data))
		require.ErrorIs(t, err, envelope.ErrMalformedJSON, data)
		assert.Equal(t, domain.Song{}, got)
	}
}

func TestDecodePlaylist_KeysAreCaseSensitive(t *testing.T) {
	_, err := NewSource().DecodePlaylist([]byte(`{"Content":{"PlayList":{"sortId":"00000001"}}}`))
	require.ErrorIs(t, err, envelope.ErrMalformedJSON)
}

func TestParseMusicNum(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{``, 0},
		{`null`, 0},
		{`"00"`, 0},
		{`"ff"`, 255},
		{`"FF"`, 255},
		{`"10"`, 16},
		{`"zz"`, 0},
		{`"0x10"`, 0},
		{`12`, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseMusicNum(json.RawMessage(tt.raw)), tt.raw)
	}
}

func TestSourceDevice(t *testing.T) {
	s := NewSource()
	assert.Equal(t, domain.Earphone, s.Device())
	assert.True(t, s.Device().ShowOfflineMusicMode())
}
