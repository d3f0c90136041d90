package playlist

import (
	"sort"

	"github.com/desertthunder/moodmix/internal/models"
)

// BucketOrder returns the moods present in a playlist map in deterministic
// flatten order: Hype, Chill, Mixed, then any merge-introduced extras sorted
// lexically. Go maps iterate in random order, so the order is pinned here; it
// governs CSV row order and the most-common-artist tie-break.
func BucketOrder(playlists models.PlaylistMap) []models.Mood {
	order := make([]models.Mood, 0, len(playlists))
	for _, mood := range models.Moods {
		if _, ok := playlists[mood]; ok {
			order = append(order, mood)
		}
	}

	var extras []models.Mood
	for mood := range playlists {
		if !mood.Known() {
			extras = append(extras, mood)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })

	return append(order, extras...)
}

// Flatten concatenates every bucket of a playlist map into one slice,
// following [BucketOrder].
func Flatten(playlists models.PlaylistMap) []models.Song {
	var all []models.Song
	for _, mood := range BucketOrder(playlists) {
		all = append(all, playlists[mood]...)
	}
	return all
}

// ComputeStats aggregates counts, ratios, and the most common artist over a
// playlist map. HypeRatio is the Hype share of all songs and AvgEnergy is the
// mean energy across all buckets; an empty map yields all zeroes.
func ComputeStats(playlists models.PlaylistMap) models.Stats {
	all := Flatten(playlists)

	stats := models.Stats{
		TotalSongs: len(all),
		HypeCount:  len(playlists[models.MoodHype]),
		ChillCount: len(playlists[models.MoodChill]),
		MixedCount: len(playlists[models.MoodMixed]),
	}

	if stats.TotalSongs > 0 {
		totalEnergy := 0
		for _, song := range all {
			totalEnergy += song.Energy
		}
		stats.HypeRatio = float64(stats.HypeCount) / float64(stats.TotalSongs)
		stats.AvgEnergy = float64(totalEnergy) / float64(stats.TotalSongs)
	}

	stats.TopArtist, stats.TopArtistCount = MostCommonArtist(all)
	return stats
}

// MostCommonArtist returns the most frequent non-empty artist and its count.
// Ties break deterministically: the artist that reached the winning count
// first keeps it. Returns ("", 0) when no song has an artist.
func MostCommonArtist(songs []models.Song) (string, int) {
	counts := make(map[string]int, len(songs))
	topArtist, topCount := "", 0

	for _, song := range songs {
		if song.Artist == "" {
			continue
		}
		counts[song.Artist]++
		if counts[song.Artist] > topCount {
			topArtist = song.Artist
			topCount = counts[song.Artist]
		}
	}

	return topArtist, topCount
}
