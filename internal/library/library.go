// Package library loads song collections, serialized playlist maps, and
// listening history from JSON files on behalf of the CLI. The engine itself
// never touches the filesystem; everything that can fail loudly lives here.
package library

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/playlist"
	"github.com/desertthunder/moodmix/internal/shared"
)

// LoadSongs reads a JSON array of raw song records. Records without an id are
// stamped with a generated one so picks and exports stay addressable. Numbers
// decode as [json.Number] so integer energies survive without a float detour.
func LoadSongs(path string) ([]models.RawSong, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSongFileNotFound, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raws []models.RawSong
	if err := decoder.Decode(&raws); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidSongFile, err)
	}

	for _, raw := range raws {
		if playlist.NormalizeInput(raw["id"], false) == "" {
			raw["id"] = shared.GenerateID()
		}
	}

	return raws, nil
}

// LoadPlaylists reads a serialized playlist map, as written by the build
// command's JSON output.
func LoadPlaylists(path string) (models.PlaylistMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrPlaylistFileNotFound, err)
	}

	var playlists models.PlaylistMap
	if err := json.Unmarshal(data, &playlists); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidPlaylistFile, err)
	}

	return playlists, nil
}

// LoadHistory reads previously classified songs. Entries pass through
// normalization so loose records from other tools still summarize cleanly.
func LoadHistory(path string) ([]models.Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSongFileNotFound, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raws []models.RawSong
	if err := decoder.Decode(&raws); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidSongFile, err)
	}

	history := make([]models.Song, 0, len(raws))
	for _, raw := range raws {
		history = append(history, playlist.NormalizeSong(raw))
	}

	return history, nil
}
