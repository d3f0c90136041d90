// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// profileFlag is shared by every command that classifies songs.
func profileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "Path to a profile configuration file",
	}
}

// buildCommand groups a song file into mood playlists
func buildCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Group a song file into mood playlists",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "file",
			},
		},
		Flags: []cli.Flag{
			profileFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (text, markdown, csv)",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "Title for markdown output",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Build,
	}
}

// statsCommand computes aggregate statistics over a song file
func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Compute playlist statistics for a song file",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "file",
			},
		},
		Flags: []cli.Flag{
			profileFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Stats,
	}
}

// searchCommand filters a song file by substring match
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search songs by substring match on a field",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "songs",
				Aliases:  []string{"s"},
				Usage:    "Path to the song file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "field",
				Usage: "Field to match against (title, artist, genre, mood, tags, energy)",
				Value: "artist",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Search,
	}
}

// pickCommand selects one song at random
func pickCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "pick",
		Aliases: []string{"lucky"},
		Usage:   "Pick one song at random from the hype and chill buckets",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "file",
			},
		},
		Flags: []cli.Flag{
			profileFlag(),
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "Candidate buckets (hype, chill, any)",
				Value:   "any",
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "Seed for a reproducible pick (0 uses a random source)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Pick,
	}
}

// historyCommand summarizes moods over previously classified songs
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Summarize moods across a listening history file",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "file",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.History,
	}
}

// mergeCommand combines two serialized playlist maps
func mergeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "merge",
		Usage: "Merge two playlist files into one map",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "a",
				Usage:    "First playlist file (its songs come first)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "b",
				Usage:    "Second playlist file",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Merge,
	}
}

// setupCommand handles configuration scaffolding
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write an example config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Destination path",
						Value: "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}
