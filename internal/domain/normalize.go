package domain

import (
	"strings"
	"unicode"
)

// CombinedTitle joins artist and title the way catalogs display them.
func CombinedTitle(artist, title string) string {
	return artist + " - " + title
}

// NormalizeCombined produces the dedup key for a catalog entry: the combined
// "artist - title" string lowercased, stripped to ASCII letters, digits and
// whitespace, with whitespace runs collapsed and the ends trimmed.
func NormalizeCombined(artist, title string) string {
	lower := strings.ToLower(CombinedTitle(artist, title))

	var b strings.Builder
	b.Grow(len(lower))
	pendingSpace := false
	for _, r := range lower {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}
	return b.String()
}

// SongFingerprint identifies a song in singer history: lowercase "artist:title".
func SongFingerprint(artist, title string) string {
	return strings.ToLower(artist) + ":" + strings.ToLower(title)
}
