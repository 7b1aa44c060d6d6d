package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbodonnell/mazerun/pkg/config"
	"github.com/cbodonnell/mazerun/pkg/device"
	"github.com/cbodonnell/mazerun/pkg/game"
	"github.com/cbodonnell/mazerun/pkg/log"
	"github.com/cbodonnell/mazerun/pkg/sound"
	"github.com/cbodonnell/mazerun/pkg/tty"
	"github.com/cbodonnell/mazerun/pkg/version"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	cfg.RegisterFlags(flag.CommandLine)
	logFile := flag.String("log-file", "mazerun.log", "File to write logs to, the terminal is used for the game")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(fmt.Sprintf("Failed to open log file: %v", err))
	}
	defer f.Close()

	logger := log.New(f, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)
	log.Info("Starting terminal simulator version %s", version.Get())

	screen, err := tcell.NewScreen()
	if err != nil {
		panic(fmt.Sprintf("Failed to create screen: %v", err))
	}
	if err := screen.Init(); err != nil {
		panic(fmt.Sprintf("Failed to initialize screen: %v", err))
	}
	defer screen.Fini()
	screen.Clear()
	tty.DrawHelp(screen)

	var led device.LED = tty.NewLED(screen)
	if cfg.Sound {
		if err := sound.InitSpeaker(); err != nil {
			log.Warn("Sound disabled: %v", err)
		} else {
			led = sound.NewBuzzer(sound.NewBuzzerOptions{LED: led})
		}
	}
	if err := led.Set(device.Off); err != nil {
		panic(fmt.Sprintf("Failed to reset led: %v", err))
	}

	keyboard := tty.NewKeyboard(tty.DefaultTiltLatch)
	gm, err := game.NewFromConfig(cfg, game.Devices{
		Display:    tty.NewDisplay(screen),
		Input:      keyboard,
		Motion:     keyboard,
		LED:        led,
		BeforeTick: keyboard.Update,
	}, logger)
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if tty.IsQuit(ev) {
					cancel()
					return
				}
				keyboard.Push(ev)
			}
		}
	}()

	if err := gm.Start(ctx); err != nil {
		log.Error("Game stopped: %v", err)
	}
	log.Info("Exiting")
}
