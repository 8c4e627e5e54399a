package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/lightsout/internal/config"
	"github.com/vancomm/lightsout/internal/lights"
)

var log = logrus.New()

// errQuit winds the errgroup down when the player leaves the shell.
var errQuit = errors.New("session ended")

func setupLogging() error {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	for _, l := range []*logrus.Logger{log, lights.Log} {
		l.SetLevel(logLevel)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	if path := config.LogFile(); path != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to create rotate file hook: %w", err)
		}
		for _, l := range []*logrus.Logger{log, lights.Log} {
			l.AddHook(hook)
		}
	}

	return nil
}

func createRand() *rand.Rand {
	if seed, ok := config.Seed(); ok {
		log.Debug("seeding rng, seed = ", seed)
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func isTerminal(files ...*os.File) bool {
	for _, f := range files {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice == 0 {
			return false
		}
	}
	return true
}

func main() {
	dotenvErr := godotenv.Load()

	if err := setupLogging(); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	if dotenvErr != nil {
		log.Debug("skipped .env: ", dotenvErr)
	}

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	session := newSession(os.Stdout, createRand(), isTerminal(os.Stdin, os.Stdout))
	lines := make(chan string)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-gCtx.Done():
				return nil
			}
		}
		if gCtx.Err() != nil {
			return nil
		}
		return scanner.Err()
	})
	g.Go(func() error {
		<-gCtx.Done()
		// Unblock the scanner so the group can wind down.
		return os.Stdin.Close()
	})
	g.Go(func() error {
		session.run(gCtx, lines)
		return errQuit
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		log.Printf("exit reason: %s\n", err)
	}
}
