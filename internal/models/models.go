// package models defines the data model for the moodmix playlist engine
package models

// Mood is a classification label assigned to a song.
type Mood string

const (
	MoodHype  Mood = "Hype"
	MoodChill Mood = "Chill"
	MoodMixed Mood = "Mixed"
)

// Moods lists the known moods in canonical bucket order.
var Moods = []Mood{MoodHype, MoodChill, MoodMixed}

// Known reports whether m is one of the three recognized moods.
func (m Mood) Known() bool {
	return m == MoodHype || m == MoodChill || m == MoodMixed
}

// RawSong is an inbound song record. Keys are optional and values may be any
// type; normalization coerces them into a [Song].
type RawSong map[string]any

// Song is the canonical song representation. Title keeps its original case,
// artist and genre are lowercased and trimmed, and energy is always an int.
type Song struct {
	ID     string   `json:"id,omitempty"`
	Title  string   `json:"title"`
	Artist string   `json:"artist"`
	Genre  string   `json:"genre"`
	Energy int      `json:"energy"`
	Tags   []string `json:"tags,omitempty"`
	Mood   Mood     `json:"mood,omitempty"`
}

// Raw projects the song back into a loose record.
func (s Song) Raw() RawSong {
	raw := RawSong{
		"title":  s.Title,
		"artist": s.Artist,
		"genre":  s.Genre,
		"energy": s.Energy,
		"tags":   s.Tags,
	}
	if s.ID != "" {
		raw["id"] = s.ID
	}
	if s.Mood != "" {
		raw["mood"] = string(s.Mood)
	}
	return raw
}

// Profile holds the user thresholds and preferences consulted during
// classification. Name and IncludeMixed are carried for display but not
// consulted by the current rules.
type Profile struct {
	Name           string `json:"name" toml:"name"`
	HypeMinEnergy  int    `json:"hype_min_energy" toml:"hype_min_energy"`
	ChillMaxEnergy int    `json:"chill_max_energy" toml:"chill_max_energy"`
	FavoriteGenre  string `json:"favorite_genre" toml:"favorite_genre"`
	IncludeMixed   bool   `json:"include_mixed" toml:"include_mixed"`
}

// DefaultProfile returns the stock listening profile.
func DefaultProfile() Profile {
	return Profile{
		Name:           "Default",
		HypeMinEnergy:  7,
		ChillMaxEnergy: 3,
		FavoriteGenre:  "rock",
		IncludeMixed:   true,
	}
}

// PlaylistMap groups songs by mood. Order within each bucket reflects
// classification or merge order and is preserved by every operation.
type PlaylistMap map[Mood][]Song

// Stats aggregates counts and ratios over a playlist map.
type Stats struct {
	TotalSongs     int     `json:"total_songs"`
	HypeCount      int     `json:"hype_count"`
	ChillCount     int     `json:"chill_count"`
	MixedCount     int     `json:"mixed_count"`
	HypeRatio      float64 `json:"hype_ratio"`
	AvgEnergy      float64 `json:"avg_energy"`
	TopArtist      string  `json:"top_artist"`
	TopArtistCount int     `json:"top_artist_count"`
}

// HistorySummary maps each known mood to its occurrence count.
type HistorySummary map[Mood]int
