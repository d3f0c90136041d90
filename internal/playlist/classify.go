package playlist

import (
	"strings"

	"github.com/desertthunder/moodmix/internal/models"
)

const (
	defaultHypeMinEnergy  = 7
	defaultChillMaxEnergy = 3
)

var (
	hypeKeywords  = []string{"rock", "punk", "party"}
	chillKeywords = []string{"lofi", "ambient", "sleep"}
)

// Classify maps a normalized song to a mood label. Rules apply in order and
// the first match wins:
//
//  1. Hype when the genre equals the profile's favorite genre, energy meets
//     the hype threshold, or the genre contains a hype keyword.
//  2. Chill when energy is at or below the chill threshold, or the title
//     contains a chill keyword.
//  3. Mixed otherwise.
//
// Titles keep their original case after normalization, so the chill keyword
// check lowercases first; genres arrive already lowercased. Non-positive
// profile thresholds resolve to the documented defaults, matching the
// behavior of a profile that never set them.
func Classify(song models.Song, profile models.Profile) models.Mood {
	hypeMin := profile.HypeMinEnergy
	if hypeMin <= 0 {
		hypeMin = defaultHypeMinEnergy
	}
	chillMax := profile.ChillMaxEnergy
	if chillMax <= 0 {
		chillMax = defaultChillMaxEnergy
	}

	if song.Genre == profile.FavoriteGenre || song.Energy >= hypeMin || containsAny(song.Genre, hypeKeywords) {
		return models.MoodHype
	}
	if song.Energy <= chillMax || containsAny(strings.ToLower(song.Title), chillKeywords) {
		return models.MoodChill
	}
	return models.MoodMixed
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
