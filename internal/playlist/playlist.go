package playlist

import "github.com/desertthunder/moodmix/internal/models"

// Build groups raw song records into mood playlists. Each record is
// normalized, classified against the profile, stamped with its mood, and
// appended to the matching bucket in input order. All three known buckets are
// present in the result even when empty.
func Build(songs []models.RawSong, profile models.Profile) models.PlaylistMap {
	playlists := models.PlaylistMap{
		models.MoodHype:  {},
		models.MoodChill: {},
		models.MoodMixed: {},
	}

	for _, raw := range songs {
		song := NormalizeSong(raw)
		song.Mood = Classify(song, profile)
		playlists[song.Mood] = append(playlists[song.Mood], song)
	}

	return playlists
}

// Merge combines two playlist maps into a new map keyed by the union of
// their moods. Per mood, a's songs come first, then b's. Neither input is
// mutated; every bucket in the result is a fresh slice.
func Merge(a, b models.PlaylistMap) models.PlaylistMap {
	merged := make(models.PlaylistMap, len(a)+len(b))
	for _, m := range []models.PlaylistMap{a, b} {
		for mood := range m {
			if _, done := merged[mood]; done {
				continue
			}
			songs := make([]models.Song, 0, len(a[mood])+len(b[mood]))
			songs = append(songs, a[mood]...)
			songs = append(songs, b[mood]...)
			merged[mood] = songs
		}
	}
	return merged
}
