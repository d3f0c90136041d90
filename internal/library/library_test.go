package library

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/playlist"
	"github.com/desertthunder/moodmix/internal/shared"
	tu "github.com/desertthunder/moodmix/internal/testing"
)

func writeFixture(t *testing.T, name, content string) string {
	return tu.WriteFixture(t, name, content)
}

func TestLoadSongs(t *testing.T) {
	t.Run("parses records and stamps ids", func(t *testing.T) {
		path := writeFixture(t, "songs.json", `[
			{"title": "Go!", "artist": "AC", "genre": "rock", "energy": 5},
			{"id": "keep-me", "title": "Quiet Night", "energy": "2"}
		]`)

		raws, err := LoadSongs(path)
		if err != nil {
			t.Fatalf("LoadSongs failed: %v", err)
		}
		if len(raws) != 2 {
			t.Fatalf("got %d records, want 2", len(raws))
		}
		if id, _ := raws[0]["id"].(string); id == "" {
			t.Error("expected a generated id on the first record")
		}
		if raws[1]["id"] != "keep-me" {
			t.Errorf("id = %v, want keep-me", raws[1]["id"])
		}
	})

	t.Run("integer energy survives decoding", func(t *testing.T) {
		path := writeFixture(t, "songs.json", `[{"title": "A", "energy": 9}]`)

		raws, err := LoadSongs(path)
		if err != nil {
			t.Fatalf("LoadSongs failed: %v", err)
		}

		song := playlist.NormalizeSong(raws[0])
		if song.Energy != 9 {
			t.Errorf("Energy = %d, want 9", song.Energy)
		}
	})

	t.Run("missing file returns sentinel", func(t *testing.T) {
		_, err := LoadSongs(filepath.Join(t.TempDir(), "nope.json"))
		if !errors.Is(err, shared.ErrSongFileNotFound) {
			t.Errorf("err = %v, want ErrSongFileNotFound", err)
		}
	})

	t.Run("malformed json returns sentinel", func(t *testing.T) {
		path := writeFixture(t, "bad.json", `{"not": "an array"`)
		_, err := LoadSongs(path)
		if !errors.Is(err, shared.ErrInvalidSongFile) {
			t.Errorf("err = %v, want ErrInvalidSongFile", err)
		}
	})
}

func TestLoadPlaylists(t *testing.T) {
	t.Run("parses a serialized playlist map", func(t *testing.T) {
		path := writeFixture(t, "playlists.json", `{
			"Hype": [{"title": "Go!", "artist": "ac", "genre": "rock", "energy": 5, "mood": "Hype"}],
			"Chill": []
		}`)

		playlists, err := LoadPlaylists(path)
		if err != nil {
			t.Fatalf("LoadPlaylists failed: %v", err)
		}
		if len(playlists[models.MoodHype]) != 1 {
			t.Errorf("Hype bucket = %d songs, want 1", len(playlists[models.MoodHype]))
		}
		if playlists[models.MoodHype][0].Mood != models.MoodHype {
			t.Errorf("mood = %q, want Hype", playlists[models.MoodHype][0].Mood)
		}
	})

	t.Run("missing file returns sentinel", func(t *testing.T) {
		_, err := LoadPlaylists(filepath.Join(t.TempDir(), "nope.json"))
		if !errors.Is(err, shared.ErrPlaylistFileNotFound) {
			t.Errorf("err = %v, want ErrPlaylistFileNotFound", err)
		}
	})
}

func TestLoadHistory(t *testing.T) {
	t.Run("normalizes loose records", func(t *testing.T) {
		path := writeFixture(t, "history.json", `[
			{"title": "  Go!  ", "artist": " AC ", "mood": "Hype"},
			{"title": "Mystery"}
		]`)

		history, err := LoadHistory(path)
		if err != nil {
			t.Fatalf("LoadHistory failed: %v", err)
		}
		if len(history) != 2 {
			t.Fatalf("got %d songs, want 2", len(history))
		}
		if history[0].Title != "Go!" || history[0].Artist != "ac" {
			t.Errorf("first song not normalized: %+v", history[0])
		}
		if history[0].Mood != models.MoodHype {
			t.Errorf("mood = %q, want Hype", history[0].Mood)
		}
		if history[1].Mood != "" {
			t.Errorf("mood = %q, want empty", history[1].Mood)
		}
	})

	t.Run("malformed json returns sentinel", func(t *testing.T) {
		path := writeFixture(t, "bad.json", `[{]`)
		_, err := LoadHistory(path)
		if !errors.Is(err, shared.ErrInvalidSongFile) {
			t.Errorf("err = %v, want ErrInvalidSongFile", err)
		}
	})
}
