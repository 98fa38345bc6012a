package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/mitchelldurbincs/rpsls/internal/config"
	"github.com/mitchelldurbincs/rpsls/internal/game"
	"github.com/mitchelldurbincs/rpsls/internal/game/events"
	"github.com/mitchelldurbincs/rpsls/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/rpsls/internal/game/strategy"
)

// The two sides of the table are fixed at build time.
const (
	playerOne = strategy.KindHuman
	playerTwo = strategy.KindCycle
)

func main() {
	fs := pflag.NewFlagSet("rpsls", pflag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	env := fs.String("env", "", "Environment overlay, loads config.<env>.yaml")
	watch := fs.Bool("watch-config", false, "Reload the log level when the config file changes")
	fs.Int64("seed", 0, "Random seed for the computer player (0 for time-based)")
	fs.String("log-level", "", "Log level (debug, info, warn, error)")
	fs.String("log-format", "", "Log format (console, json)")
	fs.Bool("log-events", false, "Log every game event with full details")
	_ = fs.Parse(os.Args[1:])

	if err := config.InitWithFlags(*configPath, fs); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}

	cfg := config.Get()
	setupLogging(cfg.Logging, os.Stderr)

	if *watch {
		config.WatchConfig(func(c *config.Config) {
			zerolog.SetGlobalLevel(parseLevel(c.Logging.Level))
			log.Info().Str("log_level", c.Logging.Level).Msg("Config reloaded")
		}, func(err error) {
			log.Warn().Err(err).Msg("Ignoring invalid config change")
		})
	}

	log.Debug().
		Str("config_file", config.ConfigFilePath()).
		Str("player_one", string(playerOne)).
		Str("player_two", string(playerTwo)).
		Msg("Starting game")

	if _, err := run(cfg, os.Stdin, os.Stdout, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("Game aborted")
	}
}

// run wires two strategies into a game and plays it on the given console
func run(cfg *config.Config, in io.Reader, out io.Writer, logger zerolog.Logger) (game.Summary, error) {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug().Int64("seed", seed).Msg("Seeding computer player")

	bus := events.NewEventBus(logger)
	console := subscribers.NewConsoleReporter("console", out)
	bus.Subscribe(console)

	eventLog := subscribers.NewLoggerSubscriber("event_logger", logger, zerolog.DebugLevel)
	if cfg.Logging.Events {
		eventLog = subscribers.NewLoggerSubscriber("event_logger", logger, zerolog.InfoLevel)
		eventLog.SetDevMode(true)
	}
	bus.Subscribe(eventLog)

	deps := strategy.Deps{
		RNG:         rand.New(rand.NewSource(seed)),
		In:          in,
		Out:         out,
		Logger:      logger,
		Prompt:      cfg.Console.Prompt,
		QuitKeyword: cfg.Game.QuitKeyword,
	}

	p1, err := strategy.New(playerOne, deps)
	if err != nil {
		return game.Summary{}, fmt.Errorf("player one: %w", err)
	}
	p2, err := strategy.New(playerTwo, deps)
	if err != nil {
		return game.Summary{}, fmt.Errorf("player two: %w", err)
	}

	g := game.NewGame(p1, p2, game.WithEventBus(bus), game.WithLogger(logger))
	summary, err := g.Play()
	if err != nil {
		return summary, err
	}
	if err := console.Err(); err != nil {
		return summary, fmt.Errorf("write console: %w", err)
	}
	return summary, nil
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

func setupLogging(cfg config.LoggingConfig, out io.Writer) {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	if strings.ToLower(cfg.Format) == "json" {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return
	}
	// Pretty console output, kept off stdout so it never mixes with the game
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}
