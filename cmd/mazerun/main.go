package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/mazerun/client/game"
	"github.com/cbodonnell/mazerun/pkg/config"
	"github.com/cbodonnell/mazerun/pkg/device"
	"github.com/cbodonnell/mazerun/pkg/log"
	"github.com/cbodonnell/mazerun/pkg/maze"
	"github.com/cbodonnell/mazerun/pkg/sound"
	"github.com/cbodonnell/mazerun/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	cfg.RegisterFlags(flag.CommandLine)
	debug := flag.Bool("debug", false, "Draw the frame rate overlay")
	check := flag.Bool("check", false, "Validate and print the built-in mazes, then exit")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	if *check {
		os.Exit(checkCatalog())
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting simulator version %s", version.Get())

	var wrapLED func(device.LED) device.LED
	if cfg.Sound {
		if err := sound.InitSpeaker(); err != nil {
			log.Warn("Sound disabled: %v", err)
		} else {
			wrapLED = func(led device.LED) device.LED {
				return sound.NewBuzzer(sound.NewBuzzerOptions{LED: led})
			}
		}
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:   *debug,
		Config:  cfg,
		Logger:  logger,
		WrapLED: wrapLED,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Mazerun")
	ebiten.SetTPS(int(time.Second / cfg.TickInterval))
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}

func checkCatalog() int {
	if err := maze.ValidateCatalog(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid maze catalog: %v\n", err)
		return 1
	}
	for _, d := range maze.Difficulties {
		for level := 0; level < maze.LevelsPerDifficulty; level++ {
			m, err := maze.Get(d, level)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to get %s level %d: %v\n", d, level, err)
				return 1
			}
			fmt.Printf("%s %d (%s)\n%s\n\n", d, level+1, d.TimeBudget(), m)
		}
	}
	return 0
}
