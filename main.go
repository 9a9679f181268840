package main

import (
	"log/slog"
	"os"

	"beadkit/bead"
	"beadkit/parallel"
	"beadkit/store"
	"beadkit/trip"
	"beadkit/weight"

	"github.com/alecthomas/kong"
	"github.com/gogpu/gg"
)

type CLI struct {
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	LogJSON  bool   `help:"Log as JSON lines"`
	DataDir  string `help:"Folder for weight and trip records" type:"path" env:"BEADKIT_DATA_DIR" default:"~/.local/share/beadkit"`
	Workers  int    `help:"Number of pictures processed in parallel, 0 for one per CPU" env:"BEADKIT_WORKERS" default:"0"`

	Bead   bead.CLICmd   `cmd:"" help:"Convert pictures into bead patterns"`
	Weight weight.CLICmd `cmd:"" help:"Track daily body weight"`
	Trip   trip.CLICmd   `cmd:"" help:"Plan the stops of a trip"`
}

func (c *CLI) setupLogging() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if c.LogJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if level <= slog.LevelDebug {
		gg.SetLogger(logger.With("component", "gg"))
	}
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("beadkit"),
		kong.Description("Bead patterns from pictures, a weight calendar and a trip planner."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "~/.config/beadkit/config.json", "./beadkit.json"),
	)

	cli.setupLogging()
	slog.Debug("running", "command", kctx.Command(), "data_dir", cli.DataDir, "workers", cli.Workers)

	pool := parallel.Start(cli.Workers)
	err := kctx.Run(pool, store.Dir(cli.DataDir))
	pool.Wait()
	kctx.FatalIfErrorf(err)
}
