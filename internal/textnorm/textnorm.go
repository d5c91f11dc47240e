// Package textnorm strips device-specific path and extension decorations
// from names carried in sync payloads.
package textnorm

import "strings"

// StripPathAndSuffix returns the last "/" segment of input with suffix
// removed when present. An empty input yields "".
func StripPathAndSuffix(input, suffix string) string {
	segment := lastSegment(input)
	return strings.TrimSuffix(segment, suffix)
}

// BasenameWithoutExtension returns the last "/" segment of input cut at its
// first ".", so "/music/song.title.mp3" becomes "song".
func BasenameWithoutExtension(input string) string {
	segment := lastSegment(input)
	base, _, _ := strings.Cut(segment, ".")
	return base
}

func lastSegment(s string) string {
	return s[strings.LastIndex(s, "/")+1:]
}
