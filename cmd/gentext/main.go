// gentext writes a file of random alphanumeric lines for use as test input
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jotfs/gentext/internal/config"
	"github.com/jotfs/gentext/internal/errs"
	"github.com/jotfs/gentext/internal/fixture"
	"github.com/jotfs/gentext/internal/linegen"
	"github.com/jotfs/gentext/internal/log"

	"github.com/rs/xid"
	"github.com/urfave/cli/v3"
)

// Build flags
var (
	Version   string
	BuildDate string
	CommitID  string
)

type runArgs struct {
	path    string
	lines   int
	avgSize int
}

var argNames = []string{"path", "line_count", "avg_size"}

func parseArgs(args []string) (runArgs, error) {
	if len(args) < len(argNames) {
		return runArgs{}, errs.Errorf(errs.BadArgument, "missing argument %s", argNames[len(args)])
	}
	if args[0] == "" {
		return runArgs{}, errs.Errorf(errs.BadArgument, "path must not be empty")
	}
	lines, err := parseInt(argNames[1], args[1])
	if err != nil {
		return runArgs{}, err
	}
	avg, err := parseInt(argNames[2], args[2])
	if err != nil {
		return runArgs{}, err
	}
	return runArgs{path: args[0], lines: lines, avgSize: avg}, nil
}

func parseInt(name string, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errs.Errorf(errs.BadArgument, "%s must be an integer, got %q", name, s)
	}
	return v, nil
}

// loadConfig reads the config file, if given, and applies explicitly set flags on top.
func loadConfig(c *cli.Command) (config.Config, error) {
	cfg := config.Default()
	if name := c.String("config"); name != "" {
		var err error
		if cfg, err = config.Read(name); err != nil {
			return config.Config{}, err
		}
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-console") {
		cfg.Log.Console = c.Bool("log-console")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, errs.Wrap(errs.BadArgument, err, "invalid flags")
	}
	return cfg, nil
}

func versionString() string {
	if Version == "" {
		return "dev"
	}
	return fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, CommitID)
}

func newCommand() *cli.Command {
	var cfg config.Config

	return &cli.Command{
		Name:      "gentext",
		Usage:     "write a file of random alphanumeric lines",
		ArgsUsage: "<path> <line_count> <avg_size>",
		Version:   versionString(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a TOML config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "minimum logging level (debug, info, warn, error)",
				Value: "warn",
			},
			&cli.BoolFlag{
				Name:  "log-console",
				Usage: "write human-readable logs instead of JSON",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			if cfg, err = loadConfig(c); err != nil {
				return ctx, err
			}
			log.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Console)
			return ctx, nil
		},
		OnUsageError: func(ctx context.Context, c *cli.Command, err error, isSubcommand bool) error {
			return errs.Wrap(errs.BadArgument, err, "usage")
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			args, err := parseArgs(c.Args().Slice())
			if err != nil {
				return err
			}
			if extra := c.Args().Slice()[len(argNames):]; len(extra) > 0 {
				log.Logger.Warn().Strs("args", extra).Msg("ignoring extra arguments")
			}
			return run(args, cfg)
		},
	}
}

func run(args runArgs, cfg config.Config) error {
	logger := log.Logger.With().Str("run", xid.New().String()).Logger()
	logger.Debug().
		Str("path", args.path).
		Int("lines", args.lines).
		Int("avg_size", args.avgSize).
		Msg("generating fixture")

	start := time.Now()
	res, err := fixture.WriteFile(args.path, linegen.New(nil), fixture.Options{
		Lines:      args.lines,
		AvgSize:    args.avgSize,
		BufferSize: cfg.BufferSize(),
	})
	if err != nil {
		return err
	}

	logger.Info().
		Str("path", args.path).
		Int("lines", res.Lines).
		Int64("bytes", res.Bytes).
		Str("sum", res.Sum.AsHex()).
		Int64("elapsed", time.Since(start).Milliseconds()).
		Msg("fixture written")
	return nil
}

func main() {
	err := newCommand().Run(context.Background(), os.Args)
	if err != nil {
		log.Logger.Error().Msg(err.Error())
		os.Exit(errs.ExitStatus(err))
	}
	os.Exit(0)
}
