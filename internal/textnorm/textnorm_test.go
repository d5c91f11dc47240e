package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripPathAndSuffix(t *testing.T) {
	tests := []struct {
		in     string
		suffix string
		want   string
	}{
		{"a/b/MyList.lst", ".lst", "MyList"},
		{"MyList", ".lst", "MyList"},
		{"MyList.lst", ".lst", "MyList"},
		{"", ".lst", ""},
		{"/sdcard/music/Road trip.lst", ".lst", "Road trip"},
		{"a/b/", ".lst", ""},
		{"a/b/list.lst.bak", ".lst", "list.lst.bak"},
		{"All songs", ".lst", "All songs"},
		{"x/.lst", ".lst", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StripPathAndSuffix(tt.in, tt.suffix), tt.in)
	}
}

func TestBasenameWithoutExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/music/song.title.mp3", "song"},
		{"song.mp3", "song"},
		{"song", "song"},
		{"", ""},
		{"a/b/.hidden", ""},
		{"dir.v2/track", "track"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BasenameWithoutExtension(tt.in), tt.in)
	}
}

func TestStripPathAndSuffixKeepsInnerDots(t *testing.T) {
	// Only the known suffix is removed, unlike BasenameWithoutExtension.
	assert.Equal(t, "v1.2 mix", StripPathAndSuffix("lists/v1.2 mix.lst", ".lst"))
	assert.Equal(t, "v1", BasenameWithoutExtension("lists/v1.2 mix.lst"))
}
