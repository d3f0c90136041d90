package playlist

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/moodmix/internal/models"
)

// SearchSongs filters songs by substring match on the named field. An empty
// query returns the input slice unchanged. The query tolerates any input the
// same way normalization does; matching is case-insensitive. Field defaults
// to "artist", and an unrecognized field reads as "" so it never matches a
// non-empty query.
func SearchSongs(songs []models.Song, query any, field string) []models.Song {
	q := NormalizeInput(query, true)
	if q == "" {
		return songs
	}
	if field == "" {
		field = "artist"
	}

	var filtered []models.Song
	for _, song := range songs {
		value := strings.ToLower(fieldValue(song, field))
		if value != "" && strings.Contains(value, q) {
			filtered = append(filtered, song)
		}
	}
	return filtered
}

// fieldValue reads a song field by name for searching. Tags join with a
// space, energy renders as its decimal string.
func fieldValue(song models.Song, field string) string {
	switch field {
	case "id":
		return song.ID
	case "title":
		return song.Title
	case "artist":
		return song.Artist
	case "genre":
		return song.Genre
	case "mood":
		return string(song.Mood)
	case "energy":
		return strconv.Itoa(song.Energy)
	case "tags":
		return strings.Join(song.Tags, " ")
	default:
		return ""
	}
}

// Picker selects songs at random from playlist buckets. The random source is
// injected so callers can pin a seed for reproducible picks.
type Picker struct {
	rng *rand.Rand
}

// NewPicker returns a Picker drawing from rng, or from a time-seeded source
// when rng is nil.
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{rng: rng}
}

// NewSeededPicker returns a Picker with a deterministic source.
func NewSeededPicker(seed int64) *Picker {
	return NewPicker(rand.New(rand.NewSource(seed)))
}

// Pick returns one uniformly random song from the mode's candidate buckets:
// "hype" draws from Hype, "chill" from Chill, and any other mode from Hype
// followed by Chill. Mixed songs are never eligible. Returns false instead of
// panicking when no candidates exist.
func (p *Picker) Pick(playlists models.PlaylistMap, mode string) (models.Song, bool) {
	var candidates []models.Song
	switch mode {
	case "hype":
		candidates = playlists[models.MoodHype]
	case "chill":
		candidates = playlists[models.MoodChill]
	default:
		candidates = append(candidates, playlists[models.MoodHype]...)
		candidates = append(candidates, playlists[models.MoodChill]...)
	}

	if len(candidates) == 0 {
		return models.Song{}, false
	}
	return candidates[p.rng.Intn(len(candidates))], true
}

// HistorySummary tallies moods over previously classified songs. Songs with
// a missing or unrecognized mood count toward Mixed rather than introducing
// a new key.
func HistorySummary(history []models.Song) models.HistorySummary {
	summary := models.HistorySummary{
		models.MoodHype:  0,
		models.MoodChill: 0,
		models.MoodMixed: 0,
	}

	for _, song := range history {
		mood := song.Mood
		if !mood.Known() {
			mood = models.MoodMixed
		}
		summary[mood]++
	}

	return summary
}
