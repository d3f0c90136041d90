// package formatter renders playlist maps and stats to various formats (CSV,
// Markdown, plain text) for the CLI
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/playlist"
	"github.com/desertthunder/moodmix/internal/shared"
)

// ExportToCSV converts a playlist map to CSV with columns: Mood, ID, Title,
// Artist, Genre, Energy, Tags. Rows follow bucket order, then insertion order.
func ExportToCSV(playlists models.PlaylistMap) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Mood", "ID", "Title", "Artist", "Genre", "Energy", "Tags"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range playlist.Flatten(playlists) {
		record := []string{
			string(song.Mood),
			song.ID,
			song.Title,
			song.Artist,
			song.Genre,
			strconv.Itoa(song.Energy),
			strings.Join(song.Tags, ";"),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a playlist map to Markdown with one section per
// mood and a trailing stats block.
func ExportToMarkdown(playlists models.PlaylistMap, title string) []byte {
	var buf bytes.Buffer

	if title == "" {
		title = "Mood Playlists"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))

	for _, mood := range playlist.BucketOrder(playlists) {
		songs := playlists[mood]
		buf.WriteString(fmt.Sprintf("## %s (%d)\n\n", mood, len(songs)))
		for i, song := range songs {
			buf.WriteString(fmt.Sprintf("%d. %s - %s%s [energy %d]\n", i+1, artistOrUnknown(song), song.Title, genrePart(song), song.Energy))
		}
		buf.WriteString("\n")
	}

	stats := playlist.ComputeStats(playlists)
	buf.WriteString("## Stats\n\n")
	buf.WriteString(fmt.Sprintf("**Total**: %d\n", stats.TotalSongs))
	buf.WriteString(fmt.Sprintf("**Hype ratio**: %.2f\n", stats.HypeRatio))
	buf.WriteString(fmt.Sprintf("**Average energy**: %.2f\n", stats.AvgEnergy))
	if stats.TopArtist != "" {
		buf.WriteString(fmt.Sprintf("**Top artist**: %s (%d)\n", stats.TopArtist, stats.TopArtistCount))
	}

	return buf.Bytes()
}

// ExportToText converts a playlist map to plain text, one styled section per
// mood.
func ExportToText(playlists models.PlaylistMap) []byte {
	var buf bytes.Buffer

	for _, mood := range playlist.BucketOrder(playlists) {
		songs := playlists[mood]
		buf.WriteString(fmt.Sprintf("%s (%d)\n", RenderMood(mood), len(songs)))
		for i, song := range songs {
			buf.WriteString(fmt.Sprintf("  %d. %s - %s%s\n", i+1, artistOrUnknown(song), song.Title, genrePart(song)))
		}
	}

	return buf.Bytes()
}

// RenderStats formats stats as aligned plain text lines.
func RenderStats(stats models.Stats) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Total songs:  %d\n", stats.TotalSongs))
	buf.WriteString(fmt.Sprintf("%s:         %d\n", RenderMood(models.MoodHype), stats.HypeCount))
	buf.WriteString(fmt.Sprintf("%s:        %d\n", RenderMood(models.MoodChill), stats.ChillCount))
	buf.WriteString(fmt.Sprintf("%s:        %d\n", RenderMood(models.MoodMixed), stats.MixedCount))
	buf.WriteString(fmt.Sprintf("Hype ratio:   %.2f\n", stats.HypeRatio))
	buf.WriteString(fmt.Sprintf("Avg energy:   %.2f\n", stats.AvgEnergy))
	if stats.TopArtist != "" {
		buf.WriteString(fmt.Sprintf("Top artist:   %s (%d plays)\n", stats.TopArtist, stats.TopArtistCount))
	}

	return buf.Bytes()
}

// CSVExportResult contains the paths of files created by WriteCSVExport.
type CSVExportResult struct {
	PlaylistsFile string
	StatsFile     string
}

// WriteCSVExport writes a playlist map to {base}_playlists.csv with a
// companion {base}_stats.json file.
func WriteCSVExport(playlists models.PlaylistMap, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = "playlists"
	}

	csvData, err := ExportToCSV(playlists)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	playlistsFile := baseFilepath + "_playlists.csv"
	if err := os.WriteFile(playlistsFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	statsJSON, err := shared.MarshalJSON(playlist.ComputeStats(playlists), true)
	if err != nil {
		return nil, fmt.Errorf("failed to generate stats JSON: %w", err)
	}

	statsFile := baseFilepath + "_stats.json"
	if err := os.WriteFile(statsFile, statsJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write stats file: %w", err)
	}

	return &CSVExportResult{
		PlaylistsFile: playlistsFile,
		StatsFile:     statsFile,
	}, nil
}

func artistOrUnknown(song models.Song) string {
	if song.Artist == "" {
		return "unknown"
	}
	return song.Artist
}

func genrePart(song models.Song) string {
	if song.Genre == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", song.Genre)
}
