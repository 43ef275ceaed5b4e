package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/woopygit/mimedetector"
)

// noResult is printed in place of a missing MIME type or location
const noResult = "-"

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "env",
			Usage: "environment file loaded before reading BEAVER_MIMEDETECT_* variables",
			Value: ".env",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "YAML file with timeout, user_agent, debug and headers",
		},
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:      "mimedetect",
		Usage:     "guess the MIME type of local files and remote URLs",
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			{
				Name:      "mime",
				Usage:     "print the MIME type of each path",
				ArgsUsage: "PATH...",
				// header values such as Accept lists contain commas
				DisableSliceFlagSeparator: true,
				Flags: append(commonFlags(),
					&cli.StringSliceFlag{
						Name:    "header",
						Aliases: []string{"H"},
						Usage:   `header sent with remote lookups, as "Name: value"`,
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "upper bound of a remote lookup",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "log why remote lookups failed",
					},
					&cli.BoolFlag{
						Name:  "details",
						Usage: "also print location, source and media group",
					},
					&cli.StringFlag{
						Name:  "log-format",
						Usage: "diagnostic log format (text or json)",
						Value: "text",
					},
				),
				Action: mimeAction,
			},
			{
				Name:      "location",
				Usage:     "print whether each path is local or remote",
				ArgsUsage: "PATH...",
				Flags:     commonFlags(),
				Action:    locationAction,
			},
		},
	}
}

func mimeAction(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errors.New("at least one path is required")
	}

	d, err := buildDetector(cmd)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	details := cmd.Bool("details")
	for _, path := range paths {
		res := d.Detect(ctx, path)

		mimeType := noResult
		if res.Found {
			mimeType = res.MIMEType
		}

		if !details {
			fmt.Fprintf(w, "%s\t%s\n", path, mimeType)
			continue
		}

		group := noResult
		if res.Found {
			group = string(mimedetector.GroupOf(res.MIMEType))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", path, orNoResult(res.Location.String()), mimeType, orNoResult(string(res.Source)), group)
	}

	return nil
}

func locationAction(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errors.New("at least one path is required")
	}

	d, err := buildDetector(cmd)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	for _, path := range paths {
		fmt.Fprintf(w, "%s\t%s\n", path, orNoResult(d.CheckFileLocation(path).String()))
	}

	return nil
}

// buildDetector layers the configuration sources: environment (optionally
// seeded from an env file), then the YAML file, then command line flags.
func buildDetector(cmd *cli.Command) (*mimedetector.Detector, error) {
	if envFile := cmd.String("env"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg, err := mimedetector.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var options []mimedetector.Option

	if path := cmd.String("config"); path != "" {
		fc, err := mimedetector.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		fc.Apply(cfg)
		options = append(options, fc.Options()...)
	}

	if cmd.IsSet("timeout") {
		cfg.Timeout = cmd.Duration("timeout").String()
	}
	if cmd.Bool("debug") {
		cfg.Debug = true
	}

	if raw := cmd.StringSlice("header"); len(raw) > 0 {
		headers := make(map[string]string, len(raw))
		for _, h := range raw {
			name, value, err := mimedetector.ParseHeader(h)
			if err != nil {
				return nil, err
			}
			headers[name] = value
		}
		options = append(options, mimedetector.WithHeaders(headers))
	}

	logCfg := DefaultLoggerConfig()
	if cmd.IsSet("log-format") {
		logCfg.Format = cmd.String("log-format")
	}
	if cfg.Debug {
		logCfg.Level = slog.LevelDebug
	}
	options = append(options, mimedetector.WithLogger(newLogger(logCfg, errWriter(cmd))))

	return mimedetector.NewFromConfig(cfg, options...)
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func orNoResult(s string) string {
	if s == "" {
		return noResult
	}
	return s
}
