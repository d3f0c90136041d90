package playlist

import (
	"math"
	"testing"

	"github.com/desertthunder/moodmix/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeStats(t *testing.T) {
	t.Run("counts ratios and averages", func(t *testing.T) {
		playlists := models.PlaylistMap{
			models.MoodHype: {
				{Title: "A", Artist: "ac", Energy: 8, Mood: models.MoodHype},
				{Title: "B", Artist: "ac", Energy: 10, Mood: models.MoodHype},
			},
			models.MoodChill: {
				{Title: "C", Artist: "nora", Energy: 2, Mood: models.MoodChill},
			},
			models.MoodMixed: {
				{Title: "D", Artist: "mid", Energy: 4, Mood: models.MoodMixed},
			},
		}

		stats := ComputeStats(playlists)

		if stats.TotalSongs != 4 {
			t.Errorf("TotalSongs = %d, want 4", stats.TotalSongs)
		}
		if stats.HypeCount != 2 || stats.ChillCount != 1 || stats.MixedCount != 1 {
			t.Errorf("counts = %d/%d/%d, want 2/1/1", stats.HypeCount, stats.ChillCount, stats.MixedCount)
		}
		if !almostEqual(stats.HypeRatio, 0.5) {
			t.Errorf("HypeRatio = %v, want 0.5", stats.HypeRatio)
		}
		if !almostEqual(stats.AvgEnergy, 6.0) {
			t.Errorf("AvgEnergy = %v, want 6.0", stats.AvgEnergy)
		}
		if stats.TopArtist != "ac" || stats.TopArtistCount != 2 {
			t.Errorf("TopArtist = %q (%d), want ac (2)", stats.TopArtist, stats.TopArtistCount)
		}
	})

	t.Run("empty map yields zeroes", func(t *testing.T) {
		stats := ComputeStats(models.PlaylistMap{})
		if stats != (models.Stats{}) {
			t.Errorf("stats = %+v, want zero value", stats)
		}
	})

	t.Run("missing buckets count as zero", func(t *testing.T) {
		playlists := models.PlaylistMap{
			models.MoodChill: {{Title: "C", Energy: 2}},
		}

		stats := ComputeStats(playlists)
		if stats.HypeCount != 0 || stats.MixedCount != 0 {
			t.Errorf("absent buckets = %d/%d, want 0/0", stats.HypeCount, stats.MixedCount)
		}
		if stats.TotalSongs != 1 {
			t.Errorf("TotalSongs = %d, want 1", stats.TotalSongs)
		}
		if !almostEqual(stats.HypeRatio, 0) {
			t.Errorf("HypeRatio = %v, want 0", stats.HypeRatio)
		}
	})

	t.Run("extra keys count toward totals", func(t *testing.T) {
		playlists := models.PlaylistMap{
			models.MoodHype: {{Title: "A", Energy: 6}},
			"Focus":         {{Title: "F", Energy: 4}},
		}

		stats := ComputeStats(playlists)
		if stats.TotalSongs != 2 {
			t.Errorf("TotalSongs = %d, want 2", stats.TotalSongs)
		}
		if !almostEqual(stats.AvgEnergy, 5.0) {
			t.Errorf("AvgEnergy = %v, want 5.0", stats.AvgEnergy)
		}
	})
}

func TestBucketOrder(t *testing.T) {
	playlists := models.PlaylistMap{
		"Workout":        {},
		models.MoodMixed: {},
		"Focus":          {},
		models.MoodHype:  {},
	}

	got := BucketOrder(playlists)
	want := []models.Mood{models.MoodHype, models.MoodMixed, "Focus", "Workout"}

	if len(got) != len(want) {
		t.Fatalf("BucketOrder() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("BucketOrder() = %v, want %v", got, want)
		}
	}
}

func TestMostCommonArtist(t *testing.T) {
	tc := []struct {
		name      string
		songs     []models.Song
		want      string
		wantCount int
	}{
		{
			name:      "empty input",
			songs:     nil,
			want:      "",
			wantCount: 0,
		},
		{
			name: "skips empty artists",
			songs: []models.Song{
				{Title: "A"},
				{Title: "B", Artist: "nora"},
			},
			want:      "nora",
			wantCount: 1,
		},
		{
			name: "highest count wins",
			songs: []models.Song{
				{Artist: "ac"},
				{Artist: "nora"},
				{Artist: "nora"},
			},
			want:      "nora",
			wantCount: 2,
		},
		{
			name: "tie breaks to first encountered",
			songs: []models.Song{
				{Artist: "ac"},
				{Artist: "nora"},
				{Artist: "ac"},
				{Artist: "nora"},
			},
			want:      "ac",
			wantCount: 2,
		},
		{
			name: "all empty artists",
			songs: []models.Song{
				{Title: "A"},
				{Title: "B"},
			},
			want:      "",
			wantCount: 0,
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			artist, count := MostCommonArtist(tt.songs)
			if artist != tt.want || count != tt.wantCount {
				t.Errorf("MostCommonArtist() = (%q, %d), want (%q, %d)", artist, count, tt.want, tt.wantCount)
			}
		})
	}
}
