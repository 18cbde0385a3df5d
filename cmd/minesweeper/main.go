package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	log = logrus.New()

	opts    options
	logPath string
	verbose bool
)

func init() {
	flag.IntVar(&opts.params.Width, "width", game.DefaultWidth, "field width")
	flag.IntVar(&opts.params.Height, "height", game.DefaultHeight, "field height")
	flag.IntVar(&opts.params.MineCount, "mines", -1, "mine count (asked for when negative)")
	flag.StringVar(&logPath, "log", "", "write logs to this file")
	flag.BoolVar(&verbose, "v", false, "log every move")
}

// setupLogging keeps the terminal for the game itself: log records only go
// to the rotating file given with -log.
func setupLogging() error {
	log.SetOutput(io.Discard)
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	if logPath == "" {
		mines.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.TextFormatter{DisableColors: true},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	log.AddHook(hook)

	mines.Log = slog.New(slog.NewTextHandler(
		log.WriterLevel(logrus.DebugLevel),
		&slog.HandlerOptions{Level: slog.LevelDebug},
	))
	return nil
}

func main() {
	flag.Parse()
	opts.askMines = opts.params.MineCount < 0

	if err := setupLogging(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"width":  opts.params.Width,
		"height": opts.params.Height,
		"mines":  opts.params.MineCount,
	}).Info("starting up")

	if err := run(os.Stdin, os.Stdout, opts, mines.NewRand()); err != nil {
		log.Error(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
