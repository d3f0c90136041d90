package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/moodmix/internal/formatter"
	"github.com/desertthunder/moodmix/internal/library"
	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/playlist"
	"github.com/desertthunder/moodmix/internal/shared"
	"github.com/urfave/cli/v3"
)

// Build groups a song file into mood playlists and renders the result.
func (r *Runner) Build(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("file")
	if path == "" {
		return fmt.Errorf("%w: song file", shared.ErrMissingArgument)
	}

	profile, err := r.profile(cmd)
	if err != nil {
		return err
	}

	songs, err := library.LoadSongs(path)
	if err != nil {
		return err
	}

	r.logger.Info("building playlists", "songs", len(songs), "profile", profile.Name)
	playlists := playlist.Build(songs, profile)

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	format := cmd.String("format")
	output := cmd.String("output")
	switch format {
	case "text":
		return r.writeRendered(formatter.ExportToText(playlists), output)
	case "markdown", "md":
		return r.writeRendered(formatter.ExportToMarkdown(playlists, cmd.String("title")), output)
	case "csv":
		data, err := formatter.ExportToCSV(playlists)
		if err != nil {
			return err
		}
		return r.writeRendered(data, output)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// Stats computes aggregate statistics over a song file.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("file")
	if path == "" {
		return fmt.Errorf("%w: song file", shared.ErrMissingArgument)
	}

	profile, err := r.profile(cmd)
	if err != nil {
		return err
	}

	songs, err := library.LoadSongs(path)
	if err != nil {
		return err
	}

	stats := playlist.ComputeStats(playlist.Build(songs, profile))

	if cmd.Bool("json") {
		return r.writeJSON(stats, cmd.Bool("pretty"))
	}
	return r.writePlain("%s", formatter.RenderStats(stats))
}

// Search filters a song file by substring match on a field.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	raws, err := library.LoadSongs(cmd.String("songs"))
	if err != nil {
		return err
	}

	songs := make([]models.Song, 0, len(raws))
	for _, raw := range raws {
		songs = append(songs, playlist.NormalizeSong(raw))
	}

	query := cmd.StringArg("query")
	field := cmd.String("field")
	matches := playlist.SearchSongs(songs, query, field)

	r.logger.Info("search complete", "query", query, "field", field, "matches", len(matches))

	if cmd.Bool("json") {
		return r.writeJSON(matches, cmd.Bool("pretty"))
	}

	if len(matches) == 0 {
		return r.writePlain("No songs matched %q on %s\n", query, field)
	}
	for i, song := range matches {
		r.writePlain("%d. %s - %s\n", i+1, song.Artist, song.Title)
	}
	return nil
}

// Pick selects one song at random from the mode's candidate buckets.
func (r *Runner) Pick(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("file")
	if path == "" {
		return fmt.Errorf("%w: song file", shared.ErrMissingArgument)
	}

	profile, err := r.profile(cmd)
	if err != nil {
		return err
	}

	songs, err := library.LoadSongs(path)
	if err != nil {
		return err
	}

	var picker *playlist.Picker
	if seed := cmd.Int("seed"); seed != 0 {
		picker = playlist.NewSeededPicker(int64(seed))
	} else {
		picker = playlist.NewPicker(nil)
	}

	mode := cmd.String("mode")
	song, ok := picker.Pick(playlist.Build(songs, profile), mode)
	if !ok {
		return r.writePlain("Nothing to pick: no %s songs\n", mode)
	}

	if cmd.Bool("json") {
		return r.writeJSON(song, true)
	}
	return r.writePlain("♪ %s - %s [%s]\n", song.Artist, song.Title, song.Mood)
}

// History summarizes moods across a listening history file.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("file")
	if path == "" {
		return fmt.Errorf("%w: history file", shared.ErrMissingArgument)
	}

	history, err := library.LoadHistory(path)
	if err != nil {
		return err
	}

	summary := playlist.HistorySummary(history)

	if cmd.Bool("json") {
		return r.writeJSON(summary, cmd.Bool("pretty"))
	}

	for _, mood := range models.Moods {
		r.writePlain("%s: %d\n", formatter.RenderMood(mood), summary[mood])
	}
	return nil
}

// Merge combines two playlist files into one map.
func (r *Runner) Merge(ctx context.Context, cmd *cli.Command) error {
	a, err := library.LoadPlaylists(cmd.String("a"))
	if err != nil {
		return err
	}
	b, err := library.LoadPlaylists(cmd.String("b"))
	if err != nil {
		return err
	}

	merged := playlist.Merge(a, b)
	r.logger.Info("merged playlists", "buckets", len(merged))

	output := cmd.String("output")
	if output == "" {
		return r.writeJSON(merged, cmd.Bool("pretty"))
	}

	data, err := shared.MarshalJSON(merged, cmd.Bool("pretty"))
	if err != nil {
		return err
	}
	return r.writeRendered(data, output)
}

// SetupConfig writes an example config.toml.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config created", "file", path)
	return r.writePlain("✓ Wrote %s\n", path)
}
